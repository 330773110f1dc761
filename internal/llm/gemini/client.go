package gemini

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genai"

	"slidecraft/internal/llm"
)

const (
	DefaultModel    = "gemini-2.0-flash"
	DefaultLocation = "us-central1"

	dailyLimit = 1500
	usageName  = ".slidecraft_usage"
)

var _ llm.Client = (*Client)(nil)

// Client talks to Gemini on Vertex AI and keeps a per-day request count in
// a small file so a runaway loop cannot exhaust the project quota.
type Client struct {
	client    *genai.Client
	model     string
	usageFile string
	now       func() time.Time
}

func NewClient(ctx context.Context, project, location, model string) (*Client, error) {
	if location == "" {
		location = DefaultLocation
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  project,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	home, _ := os.UserHomeDir()

	return &Client{
		client:    client,
		model:     model,
		usageFile: filepath.Join(home, usageName),
		now:       time.Now,
	}, nil
}

func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := c.checkUsage(); err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt), config)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	c.incrementUsage()

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", llm.ErrNoChoices
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", llm.ErrEmptyResponse
	}

	return text, nil
}

func (c *Client) today() string {
	return c.now().Format("2006-01-02")
}

func (c *Client) checkUsage() error {
	date, count := c.readUsage()
	if date != c.today() {
		return nil
	}
	if count >= dailyLimit {
		return fmt.Errorf("daily limit of %d requests reached, resets tomorrow", dailyLimit)
	}
	return nil
}

func (c *Client) incrementUsage() {
	date, count := c.readUsage()
	today := c.today()

	if date != today {
		count = 0
	}
	count++

	_ = os.WriteFile(c.usageFile, []byte(fmt.Sprintf("%s:%d", today, count)), 0644)
}

func (c *Client) readUsage() (string, int) {
	data, err := os.ReadFile(c.usageFile)
	if err != nil {
		return "", 0
	}
	parts := strings.Split(strings.TrimSpace(string(data)), ":")
	if len(parts) != 2 {
		return "", 0
	}
	count, _ := strconv.Atoi(parts[1])
	return parts[0], count
}
