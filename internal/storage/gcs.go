package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"slidecraft/internal/deck"
)

type GCSPublisher struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewGCSPublisher(ctx context.Context, bucket, prefix, credentialsFile string) (*GCSPublisher, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSPublisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

func (p *GCSPublisher) Close() error {
	return p.client.Close()
}

// ObjectName maps a local deck path to its object key under the prefix.
func (p *GCSPublisher) ObjectName(localPath string) string {
	name := filepath.Base(localPath)
	prefix := strings.Trim(p.prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func (p *GCSPublisher) Publish(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open deck: %w", err)
	}
	defer func() { _ = f.Close() }()

	objectName := p.ObjectName(localPath)
	w := p.client.Bucket(p.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = deck.ContentType

	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to upload deck: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", p.bucket, objectName), nil
}

// List returns the object names of every deck published under the prefix.
func (p *GCSPublisher) List(ctx context.Context) ([]string, error) {
	query := &storage.Query{Prefix: strings.Trim(p.prefix, "/")}

	var decks []string
	it := p.client.Bucket(p.bucket).Objects(ctx, query)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		if strings.EqualFold(path.Ext(attrs.Name), deck.Extension) {
			decks = append(decks, attrs.Name)
		}
	}

	return decks, nil
}
