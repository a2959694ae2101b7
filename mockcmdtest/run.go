package mockcmdtest

import (
	"bytes"
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/google/shlex"
	"github.com/ruffel/mockcmd"
	"github.com/stretchr/testify/require"
)

// Result captures one completed invocation of a generated mock.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Exhausted reports whether the invocation hit the mock's reserved
// "no scripted invocations remain" status.
func (r Result) Exhausted() bool {
	return r.ExitCode == mockcmd.ExhaustedExitCode
}

// Corrupt reports whether the invocation failed on an unreadable or
// malformed step file.
func (r Result) Corrupt() bool {
	return r.ExitCode == mockcmd.CorruptExitCode
}

// Invoke launches the generated mock at script once and captures its
// exit status and both output streams. A scripted non-zero exit is a
// normal Result; only a failure to launch at all fails the test.
func Invoke(t *testing.T, script string, args ...string) Result {
	t.Helper()

	path := script
	if runtime.GOOS == "windows" {
		path += mockcmd.ShimExt
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.Command(path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("launch %s: %v", script, err)
		}

		res.ExitCode = exitErr.ExitCode()
	}

	return res
}

// InvokeShell splits a full command line (quoting respected) and invokes
// it; the first token is the script path.
func InvokeShell(t *testing.T, line string) Result {
	t.Helper()

	parts, err := shlex.Split(line)
	require.NoError(t, err, "parse command line")
	require.NotEmpty(t, parts, "empty command line")

	return Invoke(t, parts[0], parts[1:]...)
}
