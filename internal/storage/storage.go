package storage

import (
	"context"

	"slidecraft/internal/deck"
)

type DeckSaver interface {
	SaveDeck(d *deck.Deck, dir, name string) (string, error)
}

// Publisher copies an already saved deck to a remote location and returns
// its address.
type Publisher interface {
	Publish(ctx context.Context, localPath string) (string, error)
}
