package secrets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"

	"slidecraft/pkg/config"
)

var ErrEmptySecret = errors.New("secret payload is empty")

type Source interface {
	Secret(ctx context.Context, name string) (string, error)
}

// Manager reads the latest version of secrets stored in Google Secret Manager.
type Manager struct {
	client  *secretmanager.Client
	project string
}

func NewManager(ctx context.Context, project, credentialsFile string) (*Manager, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret manager client: %w", err)
	}

	return &Manager{client: client, project: project}, nil
}

func (m *Manager) Close() error {
	return m.client.Close()
}

func (m *Manager) Secret(ctx context.Context, name string) (string, error) {
	resp, err := m.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: VersionName(m.project, name),
	})
	if err != nil {
		return "", fmt.Errorf("access secret %s: %w", name, err)
	}

	value := strings.TrimSpace(string(resp.GetPayload().GetData()))
	if value == "" {
		return "", fmt.Errorf("secret %s: %w", name, ErrEmptySecret)
	}
	return value, nil
}

func VersionName(project, secret string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", project, secret)
}

// FillKeys resolves API keys that are still empty after env loading. Keys
// already present are never overwritten.
func FillKeys(ctx context.Context, cfg *config.Config, src Source) error {
	if cfg.OpenAIAPIKey == "" {
		key, err := src.Secret(ctx, cfg.Secrets.OpenAIKeyName)
		if err != nil {
			return err
		}
		cfg.OpenAIAPIKey = key
		slog.Debug("Resolved OpenAI key from secret manager", "secret", cfg.Secrets.OpenAIKeyName)
	}

	if cfg.Text.Provider == config.ProviderGroq && cfg.GroqAPIKey == "" {
		key, err := src.Secret(ctx, cfg.Secrets.GroqKeyName)
		if err != nil {
			return err
		}
		cfg.GroqAPIKey = key
		slog.Debug("Resolved Groq key from secret manager", "secret", cfg.Secrets.GroqKeyName)
	}

	return nil
}
