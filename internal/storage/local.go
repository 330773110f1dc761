package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"slidecraft/internal/deck"
)

type LocalStorage struct{}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{}
}

// DeckPath joins dir and name and appends the deck extension.
func DeckPath(dir, name string) string {
	return filepath.Join(dir, name+deck.Extension)
}

// SaveDeck writes d to <dir>/<name>.pptx, replacing any existing file. The
// directory must already exist. A file left half-written by a failed encode
// is removed.
func (s *LocalStorage) SaveDeck(d *deck.Deck, dir, name string) (string, error) {
	path := DeckPath(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create deck file: %w", err)
	}

	if err := d.Encode(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write deck: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close deck file: %w", err)
	}

	return path, nil
}

func (s *LocalStorage) ListDecks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck directory: %w", err)
	}

	var decks []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), deck.Extension) {
			decks = append(decks, filepath.Join(dir, entry.Name()))
		}
	}

	return decks, nil
}
