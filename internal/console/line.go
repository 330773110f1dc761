package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LinePrompter reads one line per question from a plain stream. It is used
// when stdin is not a terminal or when --plain is given.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *LinePrompter) Ask(question string) (string, error) {
	_, _ = fmt.Fprint(p.out, question)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}

func (p *LinePrompter) Say(message string) {
	_, _ = fmt.Fprintln(p.out, message)
}
