package prompt

import (
	"errors"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted is returned when the user aborts a prompt with Ctrl+C.
var ErrInterrupted = errors.New("interrupted")

// Survey asks questions with survey's terminal widgets.
type Survey struct {
	opts []survey.AskOpt
}

// NewSurvey returns a Survey bound to the given terminal streams.
func NewSurvey(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *Survey {
	return &Survey{opts: []survey.AskOpt{survey.WithStdio(in, out, errOut)}}
}

// Ask shows a text input pre-filled with def. Pressing Enter returns def.
func (s *Survey) Ask(question, def string) (string, error) {
	var ans string
	q := &survey.Input{Message: question, Default: def}
	if err := survey.AskOne(q, &ans, s.opts...); err != nil {
		return "", wrapInterrupt(err)
	}
	return ans, nil
}

// Confirm shows a yes/no question defaulting to def.
func (s *Survey) Confirm(question string, def bool) (bool, error) {
	var ans bool
	q := &survey.Confirm{Message: question, Default: def}
	if err := survey.AskOne(q, &ans, s.opts...); err != nil {
		return def, wrapInterrupt(err)
	}
	return ans, nil
}

func wrapInterrupt(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}
