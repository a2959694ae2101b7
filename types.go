package mockcmd

import "fmt"

// MaxSteps is the largest sequence a single mock command may replay.
// Step file ordinals carry a fixed-width two-digit suffix, which both
// bounds the sequence and lets generation enumerate the full ordinal
// range cheaply when checking for stale state.
const MaxSteps = 100

// Exit statuses reserved for the generated runtime itself. A Step may
// not be configured with either value, so a caller can always tell a
// scripted failure apart from a misused or corrupted mock.
const (
	// ExhaustedExitCode is the status of a mock launched more times
	// than it has steps.
	ExhaustedExitCode = 125

	// CorruptExitCode is the status of a mock whose next step file is
	// unreadable, malformed, or cannot be deleted after consumption.
	CorruptExitCode = 126
)

// ShimExt is the extension of the secondary launch shim emitted on
// hosts that cannot execute the runtime script directly.
const ShimExt = ".bat"

// Step declares the behavior of one invocation of a mock command: the
// bytes it writes to each standard stream and the status it exits with.
// The zero value is a silent, successful invocation.
type Step struct {
	Stdout   string // written verbatim to standard output
	Stderr   string // written verbatim to standard error
	ExitCode int    // process exit status, 0 is a legitimate success
}

// Validate checks that the step is representable by the generated runtime.
func (s Step) Validate() error {
	if s.ExitCode < 0 || s.ExitCode > 255 {
		return fmt.Errorf("exit code %d is outside [0, 255]", s.ExitCode)
	}

	if s.ExitCode == ExhaustedExitCode || s.ExitCode == CorruptExitCode {
		return fmt.Errorf("exit code %d is reserved by the mock runtime", s.ExitCode)
	}

	return nil
}

// Succeed returns a step that prints stdout and exits 0.
func Succeed(stdout string) Step {
	return Step{Stdout: stdout}
}

// Fail returns a step that prints stderr and exits with code.
func Fail(stderr string, code int) Step {
	return Step{Stderr: stderr, ExitCode: code}
}
