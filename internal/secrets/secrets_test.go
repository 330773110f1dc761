package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidecraft/pkg/config"
)

type fakeSource struct {
	values map[string]string
	calls  []string
}

func (f *fakeSource) Secret(_ context.Context, name string) (string, error) {
	f.calls = append(f.calls, name)
	v, ok := f.values[name]
	if !ok {
		return "", errors.New("not found")
	}
	return v, nil
}

func newConfig(provider string) *config.Config {
	return &config.Config{
		Text: config.TextConfig{Provider: provider},
		Secrets: config.SecretsConfig{
			Enabled:       true,
			OpenAIKeyName: "openai-api-key",
			GroqKeyName:   "groq-api-key",
		},
	}
}

func TestVersionName(t *testing.T) {
	assert.Equal(t, "projects/p1/secrets/openai-api-key/versions/latest", VersionName("p1", "openai-api-key"))
}

func TestFillKeys(t *testing.T) {
	src := &fakeSource{values: map[string]string{
		"openai-api-key": "sk-openai",
		"groq-api-key":   "gsk-groq",
	}}

	cfg := newConfig(config.ProviderGroq)
	require.NoError(t, FillKeys(t.Context(), cfg, src))

	assert.Equal(t, "sk-openai", cfg.OpenAIAPIKey)
	assert.Equal(t, "gsk-groq", cfg.GroqAPIKey)
	assert.Equal(t, []string{"openai-api-key", "groq-api-key"}, src.calls)
}

func TestFillKeysKeepsExisting(t *testing.T) {
	src := &fakeSource{values: map[string]string{"openai-api-key": "from-secret"}}

	cfg := newConfig(config.ProviderOpenAI)
	cfg.OpenAIAPIKey = "from-env"
	require.NoError(t, FillKeys(t.Context(), cfg, src))

	assert.Equal(t, "from-env", cfg.OpenAIAPIKey)
	assert.Empty(t, src.calls)
}

func TestFillKeysSkipsGroqForOpenAIProvider(t *testing.T) {
	src := &fakeSource{values: map[string]string{"openai-api-key": "sk-openai"}}

	cfg := newConfig(config.ProviderOpenAI)
	require.NoError(t, FillKeys(t.Context(), cfg, src))

	assert.Empty(t, cfg.GroqAPIKey)
	assert.Equal(t, []string{"openai-api-key"}, src.calls)
}

func TestFillKeysError(t *testing.T) {
	src := &fakeSource{}

	cfg := newConfig(config.ProviderOpenAI)
	err := FillKeys(t.Context(), cfg, src)

	require.Error(t, err)
	assert.Empty(t, cfg.OpenAIAPIKey)
}
