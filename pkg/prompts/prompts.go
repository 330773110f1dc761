package prompts

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "prompts.yaml"

const (
	defaultSummarySystem     = "You are an AI assistant that summarizes presentation outlines."
	defaultImagePromptSystem = "You are an AI assistant that generates image prompts for presentation slides."
	defaultSummaryUser       = "Summarize the following presentation outline:\n\n{{.Outline}}"
	defaultImagePromptUser   = "Generate a detailed image prompt for a slide with the following details:\n\n" +
		"Presentation Summary: {{.Summary}}\n\n" +
		"Slide Title: {{.Title}}\n\n" +
		"Slide Content: {{.Content}}\n\n" +
		"The image should be relevant to the slide's content and the overall presentation theme."
)

type Prompts struct {
	System SystemPrompts `yaml:"system"`
	User   UserPrompts   `yaml:"user"`
}

type SystemPrompts struct {
	Summary     string `yaml:"summary"`
	ImagePrompt string `yaml:"image_prompt"`
}

type UserPrompts struct {
	Summary     string `yaml:"summary"`
	ImagePrompt string `yaml:"image_prompt"`
}

type SummaryParams struct {
	Outline string
}

type ImagePromptParams struct {
	Summary string
	Title   string
	Content string
}

func Default() *Prompts {
	return &Prompts{
		System: SystemPrompts{
			Summary:     defaultSummarySystem,
			ImagePrompt: defaultImagePromptSystem,
		},
		User: UserPrompts{
			Summary:     defaultSummaryUser,
			ImagePrompt: defaultImagePromptUser,
		},
	}
}

// Load reads prompts.yaml from the working directory, falling back to the
// built-in prompts when the file does not exist.
func Load() (*Prompts, error) {
	p, err := LoadFrom(DefaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No prompts.yaml found, using built-in prompts")
		return Default(), nil
	}
	return p, err
}

// LoadFrom reads a prompts file. Keys missing from the file keep their
// built-in values.
func LoadFrom(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse prompts file: %w", err)
	}

	return p, nil
}

func (p *Prompts) RenderSummary(params SummaryParams) (string, error) {
	return render(p.User.Summary, params)
}

func (p *Prompts) RenderImagePrompt(params ImagePromptParams) (string, error) {
	return render(p.User.ImagePrompt, params)
}

func render(tmpl string, data any) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
