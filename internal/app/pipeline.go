package app

import (
	"context"
	"fmt"
	"log/slog"

	"slidecraft/internal/deck"
	"slidecraft/internal/outline"
	"slidecraft/pkg/prompts"
)

const (
	msgWelcome      = "Welcome to the Interactive Presentation Generator!"
	msgGenerating   = "Generating image for slide %d..."
	msgSaved        = "Presentation saved as %s"
	msgPublished    = "Presentation published to %s"
	msgPublishFail  = "Publishing failed, the local file is kept: %v"
	promptFileName  = "Enter the name for your presentation file (without extension): "
	promptDirectory = "Enter the location to save your file: "
)

// StepRunner runs one blocking step of the pipeline. The command layer uses
// it to show a spinner; the default just calls fn.
type StepRunner func(title string, fn func() error) error

type Pipeline struct {
	service  *Service
	prompter outline.Prompter
	step     StepRunner
}

type Result struct {
	Path      string
	RemoteURL string
	Slides    int
}

func NewPipeline(service *Service, prompter outline.Prompter) *Pipeline {
	return &Pipeline{
		service:  service,
		prompter: prompter,
		step:     runStep,
	}
}

func (pipeline *Pipeline) WithStepRunner(step StepRunner) *Pipeline {
	if step != nil {
		pipeline.step = step
	}
	return pipeline
}

// Run drives one interactive session: outline, generation, then the output
// name and directory. Nothing is written unless every slide was built.
func (pipeline *Pipeline) Run(ctx context.Context) (*Result, error) {
	pipeline.prompter.Say(msgWelcome)

	o, err := outline.NewCollector(pipeline.prompter).Collect()
	if err != nil {
		return nil, err
	}

	d, err := pipeline.Generate(ctx, o)
	if err != nil {
		return nil, err
	}

	return pipeline.Save(ctx, d)
}

func (pipeline *Pipeline) Generate(ctx context.Context, o *outline.Outline) (*deck.Deck, error) {
	summary, err := pipeline.summarize(ctx, o)
	if err != nil {
		return nil, err
	}

	d := deck.New(o.Title)
	assembler := pipeline.service.Assembler()
	if err := assembler.AddCover(d, o.Title, o.Subtitle); err != nil {
		return nil, fmt.Errorf("cover slide: %w", err)
	}

	for i, spec := range o.Slides {
		pipeline.prompter.Say(fmt.Sprintf(msgGenerating, i+1))

		image, err := pipeline.produceImage(ctx, i, spec, summary)
		if err != nil {
			return nil, err
		}

		if err := assembler.AddContent(d, i, spec, image); err != nil {
			return nil, err
		}
		slog.Debug("Slide assembled", "slide", i+1, "side", deck.SideForIndex(i))
	}

	return d, nil
}

func (pipeline *Pipeline) summarize(ctx context.Context, o *outline.Outline) (string, error) {
	p := pipeline.service.Prompts()
	userPrompt, err := p.RenderSummary(prompts.SummaryParams{Outline: o.Render()})
	if err != nil {
		return "", err
	}

	slog.Info("Summarizing outline...", "slides", o.Len())
	var summary string
	err = pipeline.step("Summarizing outline", func() error {
		var err error
		summary, err = pipeline.service.LLM().Complete(ctx, p.System.Summary, userPrompt)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("summarize outline: %w", err)
	}

	slog.Debug("Summary generated", "length", len(summary))
	return summary, nil
}

func (pipeline *Pipeline) produceImage(ctx context.Context, index int, spec outline.SlideSpec, summary string) ([]byte, error) {
	slide := index + 1

	imagePrompt, err := pipeline.composeImagePrompt(ctx, spec, summary)
	if err != nil {
		return nil, fmt.Errorf("compose image prompt for slide %d: %w", slide, err)
	}

	var url string
	err = pipeline.step(fmt.Sprintf("Generating image %d", slide), func() error {
		var err error
		url, err = pipeline.service.Images().GenerateURL(ctx, imagePrompt)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("generate image for slide %d: %w", slide, err)
	}

	var data []byte
	err = pipeline.step(fmt.Sprintf("Downloading image %d", slide), func() error {
		var err error
		data, err = pipeline.service.Fetcher().Fetch(ctx, url)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("download image for slide %d: %w", slide, err)
	}

	slog.Info("Image ready", "slide", slide, "bytes", len(data))
	return data, nil
}

func (pipeline *Pipeline) composeImagePrompt(ctx context.Context, spec outline.SlideSpec, summary string) (string, error) {
	p := pipeline.service.Prompts()
	userPrompt, err := p.RenderImagePrompt(prompts.ImagePromptParams{
		Summary: summary,
		Title:   spec.Title,
		Content: spec.Content(),
	})
	if err != nil {
		return "", err
	}

	var imagePrompt string
	err = pipeline.step("Composing image prompt", func() error {
		var err error
		imagePrompt, err = pipeline.service.LLM().Complete(ctx, p.System.ImagePrompt, userPrompt)
		return err
	})
	return imagePrompt, err
}

// Save asks for the file name and directory, writes the deck and, when a
// publisher is configured, uploads the written file.
func (pipeline *Pipeline) Save(ctx context.Context, d *deck.Deck) (*Result, error) {
	name, err := pipeline.prompter.Ask(promptFileName)
	if err != nil {
		return nil, fmt.Errorf("read file name: %w", err)
	}
	dir, err := pipeline.prompter.Ask(promptDirectory)
	if err != nil {
		return nil, fmt.Errorf("read location: %w", err)
	}

	path, err := pipeline.service.Storage().SaveDeck(d, dir, name)
	if err != nil {
		return nil, fmt.Errorf("save presentation: %w", err)
	}
	pipeline.prompter.Say(fmt.Sprintf(msgSaved, path))

	result := &Result{Path: path, Slides: d.Len()}

	publisher := pipeline.service.Publisher()
	if publisher == nil {
		return result, nil
	}

	var remote string
	err = pipeline.step("Publishing presentation", func() error {
		var err error
		remote, err = publisher.Publish(ctx, path)
		return err
	})
	if err != nil {
		slog.Warn("Publish failed", "path", path, "error", err)
		pipeline.prompter.Say(fmt.Sprintf(msgPublishFail, err))
		return result, nil
	}

	result.RemoteURL = remote
	pipeline.prompter.Say(fmt.Sprintf(msgPublished, remote))
	return result, nil
}

func runStep(_ string, fn func() error) error {
	return fn()
}
