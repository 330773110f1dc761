package imagegen

import (
	"context"
	"errors"
)

var ErrNoImage = errors.New("no image data returned")

// Generator turns one prompt into the URL of one generated image.
type Generator interface {
	GenerateURL(ctx context.Context, prompt string) (string, error)
}
