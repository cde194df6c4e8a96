package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line asks questions one line at a time. An empty line, or end of input,
// accepts the default.
type Line struct {
	r *bufio.Reader
	w io.Writer
}

// NewLine returns a Line reading answers from r and writing questions to w.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{r: bufio.NewReader(r), w: w}
}

// Ask prints "• question [def]: " and returns the trimmed answer, which is
// empty when the default was accepted.
func (l *Line) Ask(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(l.w, "• %s [%s]: ", question, def)
	} else {
		fmt.Fprintf(l.w, "• %s: ", question)
	}
	return l.readLine()
}

// Confirm prints "• question (y/N): " and returns true for y/yes, false for
// n/no, and def for anything else.
func (l *Line) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(l.w, "• %s (%s): ", question, hint)

	ans, err := l.readLine()
	if err != nil {
		return def, err
	}
	switch strings.ToLower(ans) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, nil
	}
}

func (l *Line) readLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
