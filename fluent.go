package mockcmd

// Builder provides a fluent API for declaring a mock command.
type Builder struct {
	name  string
	dir   string
	steps []Step
}

// New creates a new Builder for a mock command with the given name.
func New(name string) *Builder {
	return &Builder{name: name}
}

// Dir sets the directory the artifact is generated into.
func (b *Builder) Dir(dir string) *Builder {
	b.dir = dir
	return b
}

// Step appends one declared invocation.
func (b *Builder) Step(s Step) *Builder {
	b.steps = append(b.steps, s)
	return b
}

// Steps appends multiple declared invocations.
func (b *Builder) Steps(steps ...Step) *Builder {
	b.steps = append(b.steps, steps...)
	return b
}

// Succeed appends an invocation that prints stdout and exits 0.
func (b *Builder) Succeed(stdout string) *Builder {
	return b.Step(Succeed(stdout))
}

// Fail appends an invocation that prints stderr and exits with code.
func (b *Builder) Fail(stderr string, code int) *Builder {
	return b.Step(Fail(stderr, code))
}

// Generate writes the declared mock command to disk.
func (b *Builder) Generate() error {
	return Generate(b.dir, b.name, b.steps)
}
