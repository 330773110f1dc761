package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "config.yaml"

	ProviderOpenAI = "openai"
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"

	defaultTextProvider    = ProviderOpenAI
	defaultOpenAITextModel = "gpt-4"
	defaultGroqTextModel   = "llama-3.3-70b-versatile"
	defaultGeminiModel     = "gemini-2.0-flash"
	defaultGeminiLocation  = "us-central1"
	defaultImageModel      = "dall-e-3"
	defaultLogoPath        = "assets/logo.png"
	defaultGCSPrefix       = "decks"
	defaultOpenAIKeyName   = "openai-api-key"
	defaultGroqKeyName     = "groq-api-key"
	defaultHTTPTimeout     = 60
)

type Config struct {
	OpenAIAPIKey string `yaml:"-"`
	GroqAPIKey   string `yaml:"-"`
	GCPProject   string `yaml:"-"`
	GCSBucket    string `yaml:"-"`

	Text    TextConfig    `yaml:"text"`
	Image   ImageConfig   `yaml:"image"`
	Deck    DeckConfig    `yaml:"deck"`
	GCS     GCSConfig     `yaml:"gcs"`
	Secrets SecretsConfig `yaml:"secrets"`
	HTTP    HTTPConfig    `yaml:"http"`
}

type TextConfig struct {
	Provider string `yaml:"provider"` // "openai", "groq" or "gemini"
	Model    string `yaml:"model"`
	Location string `yaml:"location"` // Vertex AI region, gemini only
}

type ImageConfig struct {
	Model string `yaml:"model"`
}

type DeckConfig struct {
	LogoPath string `yaml:"logo_path"`
}

type GCSConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Prefix          string `yaml:"prefix"`
	CredentialsFile string `yaml:"credentials_file"`
}

type SecretsConfig struct {
	Enabled       bool   `yaml:"enabled"`
	OpenAIKeyName string `yaml:"openai_key_name"`
	GroqKeyName   string `yaml:"groq_key_name"`
}

type HTTPConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

func (h HTTPConfig) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// Load reads .env and the environment, then the YAML file at path. A
// missing YAML file leaves every section at its default.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		GCPProject:   os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GCSBucket:    os.Getenv("GCS_BUCKET"),
	}

	if err := loadYAMLConfig(cfg, path); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	return cfg, nil
}

func loadYAMLConfig(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("No config file found, using defaults", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	applyTextDefaults(cfg)
	applyImageDefaults(cfg)
	applyDeckDefaults(cfg)
	applyGCSDefaults(cfg)
	applySecretsDefaults(cfg)
	applyHTTPDefaults(cfg)
}

func applyTextDefaults(cfg *Config) {
	if cfg.Text.Provider == "" {
		cfg.Text.Provider = defaultTextProvider
	}
	if cfg.Text.Model == "" {
		switch cfg.Text.Provider {
		case ProviderGroq:
			cfg.Text.Model = defaultGroqTextModel
		case ProviderGemini:
			cfg.Text.Model = defaultGeminiModel
		default:
			cfg.Text.Model = defaultOpenAITextModel
		}
	}
	if cfg.Text.Location == "" {
		cfg.Text.Location = defaultGeminiLocation
	}
}

func applyImageDefaults(cfg *Config) {
	if cfg.Image.Model == "" {
		cfg.Image.Model = defaultImageModel
	}
}

func applyDeckDefaults(cfg *Config) {
	if cfg.Deck.LogoPath == "" {
		cfg.Deck.LogoPath = defaultLogoPath
	}
}

func applyGCSDefaults(cfg *Config) {
	if cfg.GCS.Prefix == "" {
		cfg.GCS.Prefix = defaultGCSPrefix
	}
}

func applySecretsDefaults(cfg *Config) {
	if cfg.Secrets.OpenAIKeyName == "" {
		cfg.Secrets.OpenAIKeyName = defaultOpenAIKeyName
	}
	if cfg.Secrets.GroqKeyName == "" {
		cfg.Secrets.GroqKeyName = defaultGroqKeyName
	}
}

func applyHTTPDefaults(cfg *Config) {
	if cfg.HTTP.TimeoutSeconds <= 0 {
		cfg.HTTP.TimeoutSeconds = defaultHTTPTimeout
	}
}

// Validate checks that the keys needed by the selected providers are set.
// Images always go through OpenAI.
func (c *Config) Validate() error {
	switch c.Text.Provider {
	case ProviderOpenAI:
	case ProviderGroq:
		if c.GroqAPIKey == "" {
			return errors.New("GROQ_API_KEY is required when text.provider is groq")
		}
	case ProviderGemini:
		if c.GCPProject == "" {
			return errors.New("GOOGLE_CLOUD_PROJECT is required when text.provider is gemini")
		}
	default:
		return fmt.Errorf("unknown text provider %q", c.Text.Provider)
	}

	if c.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}

	if c.GCS.Enabled && c.GCSBucket == "" {
		return errors.New("GCS_BUCKET is required when gcs.enabled is true")
	}
	if c.Secrets.Enabled && c.GCPProject == "" {
		return errors.New("GOOGLE_CLOUD_PROJECT is required when secrets.enabled is true")
	}

	return nil
}
