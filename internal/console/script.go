package console

import "io"

// Script replays a fixed list of answers and records everything asked and
// said. Once the answers run out, Ask returns io.EOF.
type Script struct {
	Answers   []string
	Questions []string
	Messages  []string
}

func NewScript(answers ...string) *Script {
	return &Script{Answers: answers}
}

func (s *Script) Ask(question string) (string, error) {
	s.Questions = append(s.Questions, question)
	if len(s.Answers) == 0 {
		return "", io.EOF
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

func (s *Script) Say(message string) {
	s.Messages = append(s.Messages, message)
}
