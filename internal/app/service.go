package app

import (
	"context"

	"slidecraft/internal/deck"
	"slidecraft/internal/imagegen"
	"slidecraft/internal/llm"
	"slidecraft/internal/storage"
	"slidecraft/pkg/config"
	"slidecraft/pkg/prompts"
)

// Fetcher downloads the bytes behind a generated image URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Service struct {
	cfg       *config.Config
	llm       llm.Client
	images    imagegen.Generator
	fetcher   Fetcher
	assembler *deck.Assembler
	storage   storage.DeckSaver
	publisher storage.Publisher
	prompts   *prompts.Prompts
}

type ServiceOptions struct {
	Config    *config.Config
	LLM       llm.Client
	Images    imagegen.Generator
	Fetcher   Fetcher
	Assembler *deck.Assembler
	Storage   storage.DeckSaver
	Publisher storage.Publisher
	Prompts   *prompts.Prompts
}

func NewService(opts ServiceOptions) *Service {
	p := opts.Prompts
	if p == nil {
		p = prompts.Default()
	}
	return &Service{
		cfg:       opts.Config,
		llm:       opts.LLM,
		images:    opts.Images,
		fetcher:   opts.Fetcher,
		assembler: opts.Assembler,
		storage:   opts.Storage,
		publisher: opts.Publisher,
		prompts:   p,
	}
}

func (s *Service) Config() *config.Config       { return s.cfg }
func (s *Service) LLM() llm.Client              { return s.llm }
func (s *Service) Images() imagegen.Generator   { return s.images }
func (s *Service) Fetcher() Fetcher             { return s.fetcher }
func (s *Service) Assembler() *deck.Assembler   { return s.assembler }
func (s *Service) Storage() storage.DeckSaver   { return s.storage }
func (s *Service) Publisher() storage.Publisher { return s.publisher }
func (s *Service) Prompts() *prompts.Prompts    { return s.prompts }
