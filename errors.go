package mockcmd

import "fmt"

// ConfigError reports invalid generation input, a target path collision,
// or stale step files left behind by an earlier, uncleaned test run.
// These always indicate a mistake in test setup and are never retried.
type ConfigError struct {
	Name   string // mock command name, may be empty when the name itself is invalid
	Step   int    // offending step index, or -1 when not step-specific
	Reason string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Step >= 0:
		return fmt.Sprintf("mock command %q: step %d: %s", e.Name, e.Step, e.Reason)
	case e.Name == "":
		return "mock command: " + e.Reason
	default:
		return fmt.Sprintf("mock command %q: %s", e.Name, e.Reason)
	}
}

// IOError reports a filesystem failure while generating the artifact or
// its step files. Generation aborts on the first such failure.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// CorruptStepError reports a step file that exists but does not decode
// to a well-formed step record.
type CorruptStepError struct {
	Path   string
	Reason string
}

func (e *CorruptStepError) Error() string {
	return fmt.Sprintf("corrupt step file %s: %s", e.Path, e.Reason)
}
