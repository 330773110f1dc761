package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"slidecraft/internal/deck"
	imageopenai "slidecraft/internal/imagegen/openai"
	"slidecraft/internal/llm"
	"slidecraft/internal/llm/gemini"
	"slidecraft/internal/llm/groq"
	llmopenai "slidecraft/internal/llm/openai"
	"slidecraft/internal/secrets"
	"slidecraft/internal/storage"
	"slidecraft/pkg/config"
	"slidecraft/pkg/httputil"
	"slidecraft/pkg/prompts"
)

type BuildResult struct {
	Service *Service
	closers []func() error
}

// Close releases cloud clients opened by BuildService.
func (r *BuildResult) Close() error {
	var first error
	for _, closeFn := range r.closers {
		if err := closeFn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// PrepareConfig fills keys from Secret Manager when enabled and validates
// the result.
func PrepareConfig(ctx context.Context, cfg *config.Config) error {
	if cfg.Secrets.Enabled && cfg.GCPProject != "" {
		manager, err := secrets.NewManager(ctx, cfg.GCPProject, cfg.GCS.CredentialsFile)
		if err != nil {
			return err
		}
		defer func() { _ = manager.Close() }()

		if err := secrets.FillKeys(ctx, cfg, manager); err != nil {
			return err
		}
	}

	return cfg.Validate()
}

func BuildService(ctx context.Context, cfg *config.Config) (*BuildResult, error) {
	p, err := prompts.Load()
	if err != nil {
		return nil, err
	}

	llmClient, err := newLLMClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	result := &BuildResult{}

	var publisher storage.Publisher
	if cfg.GCS.Enabled {
		gcs, err := storage.NewGCSPublisher(ctx, cfg.GCSBucket, cfg.GCS.Prefix, cfg.GCS.CredentialsFile)
		if err != nil {
			return nil, err
		}
		result.closers = append(result.closers, gcs.Close)
		publisher = gcs
	}

	result.Service = NewService(ServiceOptions{
		Config:    cfg,
		LLM:       llmClient,
		Images:    imageopenai.NewGenerator(cfg.OpenAIAPIKey, cfg.Image.Model),
		Fetcher:   httputil.NewFetcher(&http.Client{Timeout: cfg.HTTP.Timeout()}),
		Assembler: deck.NewAssembler(cfg.Deck.LogoPath),
		Storage:   storage.NewLocalStorage(),
		Publisher: publisher,
		Prompts:   p,
	})

	slog.Debug("Service ready",
		"text_provider", cfg.Text.Provider,
		"text_model", cfg.Text.Model,
		"image_model", cfg.Image.Model,
		"gcs", cfg.GCS.Enabled,
	)

	return result, nil
}

func newLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	switch cfg.Text.Provider {
	case config.ProviderGroq:
		client, err := groq.NewClient(cfg.GroqAPIKey, cfg.Text.Model)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, cfg.GCPProject, cfg.Text.Location, cfg.Text.Model)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderOpenAI:
		return llmopenai.NewClient(cfg.OpenAIAPIKey, cfg.Text.Model), nil
	default:
		return nil, fmt.Errorf("unknown text provider %q", cfg.Text.Provider)
	}
}
