// Package mockrunner provides an in-process, testify-backed mock for
// code that runs external commands through a Runner interface rather
// than shelling out through PATH. For code that resolves real binaries,
// generate an on-disk mock with mockcmd instead.
package mockrunner

import "github.com/stretchr/testify/mock"

// Runner abstracts running one external command to completion.
type Runner interface {
	// Run executes the named command and returns its captured stdout,
	// stderr, and exit code. err reports a failure to launch, distinct
	// from a non-zero exit code.
	Run(name string, args ...string) (stdout, stderr string, exitCode int, err error)
}

// Mock implements Runner using testify/mock.
type Mock struct {
	mock.Mock
}

var _ Runner = (*Mock)(nil)

// New creates a new mock runner.
func New() *Mock {
	return &Mock{}
}

// Run mocks running a command to completion.
func (m *Mock) Run(name string, args ...string) (string, string, int, error) {
	// Variadic capture fix for testify
	callArgs := m.Called(name, args)

	return callArgs.String(0), callArgs.String(1), callArgs.Int(2), callArgs.Error(3)
}
