package openai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"slidecraft/internal/imagegen"
)

const DefaultModel = openai.CreateImageModelDallE3

type Generator struct {
	client *openai.Client
	model  string
}

var _ imagegen.Generator = (*Generator)(nil)

func NewGenerator(apiKey, model string) *Generator {
	return NewGeneratorWithConfig(openai.DefaultConfig(apiKey), model)
}

func NewGeneratorWithConfig(config openai.ClientConfig, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (g *Generator) GenerateURL(ctx context.Context, prompt string) (string, error) {
	req := openai.ImageRequest{
		Prompt:         prompt,
		Model:          g.model,
		Size:           openai.CreateImageSize1024x1024,
		Quality:        openai.CreateImageQualityStandard,
		ResponseFormat: openai.CreateImageResponseFormatURL,
		N:              1,
	}

	resp, err := g.client.CreateImage(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", imagegen.ErrNoImage
	}

	return resp.Data[0].URL, nil
}
