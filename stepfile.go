package mockcmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// StepPath returns the on-disk path of step n for the given script path.
// Records are named "<script>.step-NN" with a zero-padded two-digit
// ordinal; existence of the file is the sole "not yet consumed" signal.
func StepPath(script string, n int) string {
	return fmt.Sprintf("%s.step-%02d", script, n)
}

// Remaining reports the ordinals of the step files that have not been
// consumed yet, in ascending order. It scans the full ordinal range the
// naming scheme allows, so it also detects stale records from sequences
// longer than the one currently generated.
func Remaining(script string) ([]int, error) {
	var ordinals []int

	for n := 0; n < MaxSteps; n++ {
		_, err := os.Lstat(StepPath(script, n))

		switch {
		case err == nil:
			ordinals = append(ordinals, n)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}

	return ordinals, nil
}

// ReadStep decodes the step record at path. A record that exists but is
// malformed is reported as a *CorruptStepError.
func ReadStep(path string) (Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Step{}, err
	}

	return decodeStep(path, data)
}

// encodeStep renders a step as the three-line record the generated
// runtime parses. Values are escaped onto a single line each so the
// runtime can read them with `read -r` and emit them with `printf %b`.
func encodeStep(s Step) []byte {
	var b bytes.Buffer

	b.WriteString("stdout=")
	b.WriteString(escapeField(s.Stdout))
	b.WriteString("\nstderr=")
	b.WriteString(escapeField(s.Stderr))
	b.WriteString("\nexitcode=")
	b.WriteString(strconv.Itoa(s.ExitCode))
	b.WriteString("\n")

	return b.Bytes()
}

func decodeStep(path string, data []byte) (Step, error) {
	corrupt := func(reason string) (Step, error) {
		return Step{}, &CorruptStepError{Path: path, Reason: reason}
	}

	content, ok := strings.CutSuffix(string(data), "\n")
	if !ok {
		return corrupt("missing trailing newline")
	}

	lines := strings.Split(content, "\n")
	if len(lines) != 3 {
		return corrupt(fmt.Sprintf("expected 3 record lines, found %d", len(lines)))
	}

	rawOut, ok := strings.CutPrefix(lines[0], "stdout=")
	if !ok {
		return corrupt("missing stdout field")
	}

	rawErr, ok := strings.CutPrefix(lines[1], "stderr=")
	if !ok {
		return corrupt("missing stderr field")
	}

	rawCode, ok := strings.CutPrefix(lines[2], "exitcode=")
	if !ok {
		return corrupt("missing exitcode field")
	}

	stdout, err := unescapeField(rawOut)
	if err != nil {
		return corrupt("stdout: " + err.Error())
	}

	stderr, err := unescapeField(rawErr)
	if err != nil {
		return corrupt("stderr: " + err.Error())
	}

	code, err := parseExitCode(rawCode)
	if err != nil {
		return corrupt("exitcode: " + err.Error())
	}

	return Step{Stdout: stdout, Stderr: stderr, ExitCode: code}, nil
}

// escapeField keeps a field value on a single record line. Only two
// escapes exist: backslash and newline. Everything else is literal.
func escapeField(s string) string {
	if !strings.ContainsAny(s, "\\\n") {
		return s
	}

	var b strings.Builder

	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func unescapeField(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var b strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}

		i++
		if i == len(s) {
			return "", errors.New("dangling escape")
		}

		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		default:
			return "", fmt.Errorf("unknown escape %q", `\`+string(s[i]))
		}
	}

	return b.String(), nil
}

func parseExitCode(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%q is not an unsigned decimal", s)
		}
	}

	if s == "" {
		return 0, errors.New("empty value")
	}

	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an unsigned decimal", s)
	}

	return code, nil
}
