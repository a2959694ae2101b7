package mockcmd

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// runtimeText is the fixed logic baked into every generated artifact.
// It is parameterized only by the absolute script path, the command
// name, and the planned step count; the behavior itself stays in the
// sibling step files, one consumed (read, deleted, replayed) per launch.
//
// The record parser deliberately avoids sourcing the step file as shell
// code: three `read -r` calls plus prefix checks keep a malformed record
// from ever executing, and give it a deterministic corrupt exit instead.
const runtimeText = `#!/bin/sh
# Code generated by mockcmd; DO NOT EDIT.
#
# Mock command {{.Comment}}. Each launch consumes the lowest-numbered
# step file remaining next to this script and replays its stdout,
# stderr and exit code. Exits {{.Corrupt}} on a corrupt step file and
# {{.Exhausted}} once every step has been consumed.

script={{.Script}}
name={{.Name}}
max={{.Max}}

die() {
	printf 'mock command %s: %s: %s\n' "$name" "$1" "$2" >&2
	exit {{.Corrupt}}
}

i=0
while [ "$i" -lt "$max" ]; do
	step=$(printf '%s.step-%02d' "$script" "$i")
	if [ -e "$step" ]; then
		{
			IFS= read -r out_line &&
			IFS= read -r err_line &&
			IFS= read -r code_line
		} <"$step" || die "$step" 'not a three-line step record'
		case "$out_line" in stdout=*) ;; *) die "$step" 'missing stdout field' ;; esac
		case "$err_line" in stderr=*) ;; *) die "$step" 'missing stderr field' ;; esac
		case "$code_line" in exitcode=*) ;; *) die "$step" 'missing exitcode field' ;; esac
		code=${code_line#exitcode=}
		case "$code" in
		''|*[!0-9]*) die "$step" 'exit code is not an unsigned decimal' ;;
		esac
		rm -f -- "$step" || die "$step" 'cannot delete consumed step file'
		printf '%b' "${out_line#stdout=}"
		printf '%b' "${err_line#stderr=}" >&2
		exit "$code"
	fi
	i=$((i + 1))
done

printf 'mock command %s: no scripted invocations remain\n' "$name" >&2
printf 'mock command %s: configured for at most %d invocation(s)\n' "$name" "$max" >&2
exit {{.Exhausted}}
`

// shimText forwards a launch to the runtime script on hosts that do not
// honor its shebang line. It carries no behavioral logic.
const shimText = "@echo off\r\nsh \"%~dp0{{.Comment}}\" %*\r\nexit /b %ERRORLEVEL%\r\n"

var (
	runtimeTemplate = template.Must(template.New("runtime").Parse(runtimeText))
	shimTemplate    = template.Must(template.New("shim").Parse(shimText))
)

type scriptParams struct {
	Comment   string // raw command name, comment/shim position only
	Script    string // shell-quoted absolute script path
	Name      string // shell-quoted command name
	Max       int
	Exhausted int
	Corrupt   int
}

// writeScript renders and writes the primary executable artifact.
func writeScript(path, absPath, name string, max int) error {
	var buf bytes.Buffer

	params := scriptParams{
		Comment:   name,
		Script:    shellQuote(absPath),
		Name:      shellQuote(name),
		Max:       max,
		Exhausted: ExhaustedExitCode,
		Corrupt:   CorruptExitCode,
	}
	if err := runtimeTemplate.Execute(&buf, params); err != nil {
		return &IOError{Op: "render script", Path: path, Err: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o755); err != nil {
		return &IOError{Op: "write script", Path: path, Err: err}
	}

	return nil
}

// writeShim writes the secondary launch file next to the script.
func writeShim(script, name string) error {
	var buf bytes.Buffer

	if err := shimTemplate.Execute(&buf, scriptParams{Comment: name}); err != nil {
		return &IOError{Op: "render shim", Path: script + ShimExt, Err: err}
	}

	if err := os.WriteFile(script+ShimExt, buf.Bytes(), 0o755); err != nil {
		return &IOError{Op: "write shim", Path: script + ShimExt, Err: err}
	}

	return nil
}

// shellQuote wraps s in single quotes for safe embedding in the runtime
// script, so names and paths containing spaces stay intact.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
