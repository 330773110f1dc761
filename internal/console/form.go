package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// FormPrompter asks each question through a single-field huh form.
type FormPrompter struct {
	out io.Writer
}

func NewFormPrompter(out io.Writer) *FormPrompter {
	return &FormPrompter{out: out}
}

func (p *FormPrompter) Ask(question string) (string, error) {
	var answer string
	err := huh.NewInput().
		Title(strings.TrimSuffix(strings.TrimSpace(question), ":")).
		Value(&answer).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return answer, nil
}

func (p *FormPrompter) Say(message string) {
	_, _ = fmt.Fprintln(p.out, WarnStyle.Render(message))
}
