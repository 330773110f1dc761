package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompterAsk(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("first\r\n\nthird"), &out)

	answer, err := p.Ask("Q1: ")
	require.NoError(t, err)
	assert.Equal(t, "first", answer)

	answer, err = p.Ask("Q2: ")
	require.NoError(t, err)
	assert.Equal(t, "", answer)

	answer, err = p.Ask("Q3: ")
	require.NoError(t, err)
	assert.Equal(t, "third", answer)

	_, err = p.Ask("Q4: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Q1: Q2: Q3: Q4: ", out.String())
}

func TestLinePrompterSay(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader(""), &out)
	p.Say("hello")
	assert.Equal(t, "hello\n", out.String())
}

func TestScript(t *testing.T) {
	s := NewScript("a")

	answer, err := s.Ask("one")
	require.NoError(t, err)
	assert.Equal(t, "a", answer)

	_, err = s.Ask("two")
	assert.ErrorIs(t, err, io.EOF)

	s.Say("note")
	assert.Equal(t, []string{"one", "two"}, s.Questions)
	assert.Equal(t, []string{"note"}, s.Messages)
}
