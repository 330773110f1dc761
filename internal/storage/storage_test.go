package storage

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"slidecraft/internal/deck"
)

func TestDeckPath(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		file string
		want string
	}{
		{"relativeDir", "out", "talk", filepath.Join("out", "talk.pptx")},
		{"currentDir", ".", "talk", "talk.pptx"},
		{"nameWithDots", "/tmp", "q3.review", filepath.Join("/tmp", "q3.review.pptx")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeckPath(tt.dir, tt.file); got != tt.want {
				t.Errorf("DeckPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocalStorageSaveDeck(t *testing.T) {
	tmpDir := t.TempDir()
	s := NewLocalStorage()

	d := deck.New("Talk")
	path, err := s.SaveDeck(d, tmpDir, "talk")
	if err != nil {
		t.Fatalf("SaveDeck() error = %v", err)
	}

	if path != filepath.Join(tmpDir, "talk.pptx") {
		t.Errorf("SaveDeck() path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved deck: %v", err)
	}
	if _, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
		t.Errorf("saved deck is not a zip package: %v", err)
	}

	want, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, want) {
		t.Error("saved bytes differ from Deck.Bytes()")
	}
}

func TestLocalStorageSaveDeckOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "talk.pptx")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 1<<20), 0644); err != nil {
		t.Fatal(err)
	}

	d := deck.New("Talk")
	if _, err := NewLocalStorage().SaveDeck(d, tmpDir, "talk"); err != nil {
		t.Fatalf("SaveDeck() error = %v", err)
	}

	want, _ := d.Bytes()
	got, _ := os.ReadFile(path)
	if !bytes.Equal(got, want) {
		t.Error("existing file was not truncated")
	}
}

func TestLocalStorageSaveDeckMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	_, err := NewLocalStorage().SaveDeck(deck.New("Talk"), dir, "talk")
	if err == nil {
		t.Fatal("SaveDeck() should fail when the directory does not exist")
	}
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Error("SaveDeck() must not create the directory")
	}
}

func TestLocalStorageListDecks(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"a.pptx", "b.PPTX", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "dir.pptx"), 0755); err != nil {
		t.Fatal(err)
	}

	decks, err := NewLocalStorage().ListDecks(tmpDir)
	if err != nil {
		t.Fatalf("ListDecks() error = %v", err)
	}

	if len(decks) != 2 {
		t.Errorf("ListDecks() = %v, want 2 decks", decks)
	}
}

func TestLocalStorageListDecksMissingDir(t *testing.T) {
	if _, err := NewLocalStorage().ListDecks("/nonexistent/dir"); err == nil {
		t.Error("ListDecks() should fail for a missing directory")
	}
}

func TestGCSPublisherObjectName(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		local  string
		want   string
	}{
		{"withPrefix", "decks", "/tmp/out/talk.pptx", "decks/talk.pptx"},
		{"trimsSlashes", "/team/decks/", "talk.pptx", "team/decks/talk.pptx"},
		{"noPrefix", "", "out/talk.pptx", "talk.pptx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &GCSPublisher{bucket: "b", prefix: tt.prefix}
			if got := p.ObjectName(tt.local); got != tt.want {
				t.Errorf("ObjectName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGCSPublisherPublishMissingFile(t *testing.T) {
	p := &GCSPublisher{bucket: "b", prefix: "decks"}

	if _, err := p.Publish(t.Context(), filepath.Join(t.TempDir(), "missing.pptx")); err == nil {
		t.Error("Publish() should fail for a missing local file")
	}
}
