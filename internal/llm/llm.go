package llm

import (
	"context"
	"errors"
)

var (
	ErrNoChoices     = errors.New("no response")
	ErrEmptyResponse = errors.New("empty response")
)

// Client is a single-turn chat completion: one system message, one user
// message, one free-text answer.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
