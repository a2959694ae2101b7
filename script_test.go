package mockcmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "git", "'git'"},
		{"spaces", "my tool", "'my tool'"},
		{"single quote", "it's", `'it'\''s'`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, shellQuote(tt.in))
		})
	}
}

func TestGeneratedScriptContents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, generate(dir, "git", []Step{{}, {}}, false))

	data, err := os.ReadFile(filepath.Join(dir, "git"))
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "#!/bin/sh\n"), "script must start with its launch header")
	assert.Contains(t, text, "max=2", "planned step count is baked in")
	assert.Contains(t, text, "name='git'")

	abs, err := filepath.Abs(filepath.Join(dir, "git"))
	require.NoError(t, err)
	assert.Contains(t, text, "script="+shellQuote(abs))
}

func TestGenerate_Shim(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, generate(dir, "git", []Step{{}}, true))

	data, err := os.ReadFile(filepath.Join(dir, "git"+ShimExt))
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `sh "%~dp0git" %*`, "shim forwards all arguments")
	assert.Contains(t, text, "%ERRORLEVEL%", "shim forwards the exit status")
}

func TestGenerate_ShimCollision(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "git"+ShimExt), nil, 0o600))

	err := generate(dir, "git", nil, true)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "already exists")

	// The collision must be caught before the script is written.
	_, err = os.Lstat(filepath.Join(dir, "git"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
