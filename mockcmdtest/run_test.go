package mockcmdtest_test

import (
	"fmt"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ruffel/mockcmd"
	"github.com/ruffel/mockcmd/mockcmdtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("invocation tests require a POSIX shell")
	}
}

func TestInvoke(t *testing.T) {
	t.Parallel()
	requireShell(t)

	dir := t.TempDir()
	require.NoError(t, mockcmd.Generate(dir, "git", []mockcmd.Step{
		{Stdout: "on branch main\n"},
		{Stderr: "fatal: hung up\n", ExitCode: 2},
	}))

	script := filepath.Join(dir, "git")

	res := mockcmdtest.Invoke(t, script, "status")
	assert.Equal(t, "on branch main\n", res.Stdout)
	assert.Empty(t, res.Stderr)
	assert.Zero(t, res.ExitCode)
	assert.False(t, res.Exhausted())
	assert.False(t, res.Corrupt())

	res = mockcmdtest.Invoke(t, script, "push")
	assert.Equal(t, "fatal: hung up\n", res.Stderr)
	assert.Equal(t, 2, res.ExitCode)

	res = mockcmdtest.Invoke(t, script)
	assert.True(t, res.Exhausted())
}

func TestInvokeShell(t *testing.T) {
	t.Parallel()
	requireShell(t)

	dir := t.TempDir()
	require.NoError(t, mockcmd.Generate(dir, "my tool", []mockcmd.Step{mockcmd.Succeed("quoted ok\n")}))

	line := fmt.Sprintf("%q --flag %q", filepath.Join(dir, "my tool"), "arg with spaces")
	res := mockcmdtest.InvokeShell(t, line)
	assert.Equal(t, "quoted ok\n", res.Stdout)
	assert.Zero(t, res.ExitCode)
}
