// Package mockcmd fabricates fake external commands for tests.
//
// A generated mock is a real executable written into a caller-provided
// directory. Across repeated launches it replays a pre-declared sequence
// of behaviors (stdout, stderr, exit status), one step per process, so
// code that shells out can be driven through success and failure paths
// deterministically.
//
// # State model
//
// Every launch of the mock is a brand-new process sharing no memory with
// the generator or with earlier launches, so the sequence position lives
// on disk: one step file per declared step, named by ordinal next to the
// script. Each launch consumes the lowest-numbered remaining file (read,
// delete, replay). Once none remain the mock fails loudly with a reserved
// exit status, which is how "called more often than scripted" surfaces.
//
// An empty sequence is legal and useful: the resulting mock fails on its
// first launch, asserting that a command must never be called.
//
// # Scope
//
// Directory creation, cleanup, and PATH manipulation are the caller's
// job. Invocations of one mock are assumed sequential; overlapping
// launches race on step file deletion and are unsupported.
package mockcmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const osWindows = "windows"

// Generate writes a mock command called name into dir: one step file per
// sequence entry, then the executable runtime script, then (on hosts
// that cannot execute the script directly) a launch shim.
//
// It returns a *ConfigError for invalid input, a path collision, or
// stale step files from an earlier run, and an *IOError when a write
// fails. Validation runs before the first write, so a failed generation
// with a *ConfigError leaves the directory untouched.
func Generate(dir, name string, steps []Step) error {
	return generate(dir, name, steps, runtime.GOOS == osWindows)
}

func generate(dir, name string, steps []Step, shim bool) error {
	if err := validate(dir, name, steps); err != nil {
		return err
	}

	script := filepath.Join(dir, name)

	if err := checkClean(script, name, shim); err != nil {
		return err
	}

	// The script bakes in its own absolute path so the runtime finds its
	// step files regardless of the working directory it is launched from.
	absScript, err := filepath.Abs(script)
	if err != nil {
		return &IOError{Op: "resolve", Path: script, Err: err}
	}

	for i, step := range steps {
		if err := os.WriteFile(StepPath(script, i), encodeStep(step), 0o600); err != nil {
			return &IOError{Op: "write step file", Path: StepPath(script, i), Err: err}
		}
	}

	// The script is written after every step file: an aborted generation
	// must never leave a launchable artifact behind.
	if err := writeScript(script, absScript, name, len(steps)); err != nil {
		return err
	}

	if shim {
		if err := writeShim(script, name); err != nil {
			return err
		}
	}

	return nil
}

func validate(dir, name string, steps []Step) error {
	if name == "" {
		return &ConfigError{Step: -1, Reason: "command name is empty"}
	}

	// A separator would place the artifact outside dir; a control
	// character would corrupt the generated script and shim text.
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, os.PathSeparator) {
		return &ConfigError{Name: name, Step: -1, Reason: "command name contains a path separator"}
	}

	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return &ConfigError{Name: name, Step: -1, Reason: "command name contains a control character"}
		}
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return &ConfigError{Name: name, Step: -1, Reason: fmt.Sprintf("directory %q does not exist", dir)}
	}

	if len(steps) > MaxSteps {
		return &ConfigError{Name: name, Step: -1, Reason: fmt.Sprintf("sequence has %d steps, limit is %d", len(steps), MaxSteps)}
	}

	for i, step := range steps {
		if err := step.Validate(); err != nil {
			return &ConfigError{Name: name, Step: i, Reason: err.Error()}
		}
	}

	return nil
}

// checkClean refuses to generate over any trace of an earlier mock with
// the same script path. Leftover step files mean a previous test never
// cleaned up; continuing would splice two unrelated sequences together.
func checkClean(script, name string, shim bool) error {
	stale, err := Remaining(script)
	if err != nil {
		return &IOError{Op: "scan step files", Path: script, Err: err}
	}

	if len(stale) > 0 {
		return &ConfigError{
			Name:   name,
			Step:   -1,
			Reason: fmt.Sprintf("stale step file %s left by an earlier run", StepPath(script, stale[0])),
		}
	}

	targets := []string{script}
	if shim {
		targets = append(targets, script+ShimExt)
	}

	for _, target := range targets {
		_, err := os.Lstat(target)

		switch {
		case err == nil:
			return &ConfigError{Name: name, Step: -1, Reason: fmt.Sprintf("target %q already exists", target)}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return &IOError{Op: "stat", Path: target, Err: err}
		}
	}

	return nil
}
