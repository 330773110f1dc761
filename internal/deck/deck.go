package deck

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
)

var ErrInvalidImage = errors.New("image cannot be decoded")

type LayoutKind int

const (
	LayoutTitle LayoutKind = iota + 1
	LayoutTitleAndContent
)

type PlaceholderKind string

const (
	PlaceholderCenteredTitle PlaceholderKind = "ctrTitle"
	PlaceholderSubtitle      PlaceholderKind = "subTitle"
	PlaceholderTitle         PlaceholderKind = "title"
	PlaceholderBody          PlaceholderKind = "body"
)

type Font struct {
	Family string
	Size   int
	Bold   bool
}

type TextBox struct {
	Name        string
	Placeholder PlaceholderKind
	Frame       Rect
	Font        Font
	Centered    bool
	Paragraphs  []string
}

type Picture struct {
	Name  string
	Frame Rect
	Media string
}

type Slide struct {
	Layout   LayoutKind
	Side     Side
	Texts    []TextBox
	Pictures []Picture
}

// Text returns the first text box bound to the given placeholder.
func (s *Slide) Text(kind PlaceholderKind) (TextBox, bool) {
	for _, box := range s.Texts {
		if box.Placeholder == kind {
			return box, true
		}
	}
	return TextBox{}, false
}

type media struct {
	name string
	data []byte
}

// Deck is the in-memory presentation. Slides keep insertion order; images
// are normalized to PNG and stored once per distinct content.
type Deck struct {
	Title  string
	Width  EMU
	Height EMU
	Slides []*Slide

	media      []media
	mediaIndex map[[sha256.Size]byte]string
}

func New(title string) *Deck {
	return &Deck{
		Title:      title,
		Width:      Inches(SlideWidth),
		Height:     Inches(SlideHeight),
		mediaIndex: make(map[[sha256.Size]byte]string),
	}
}

func (d *Deck) Len() int {
	return len(d.Slides)
}

func (d *Deck) MediaCount() int {
	return len(d.media)
}

// AddImage decodes raw image bytes, re-encodes them as PNG and returns the
// media part name to reference from a picture.
func (d *Deck) AddImage(data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}

	sum := sha256.Sum256(buf.Bytes())
	if name, ok := d.mediaIndex[sum]; ok {
		return name, nil
	}

	name := fmt.Sprintf("image%d.png", len(d.media)+1)
	d.media = append(d.media, media{name: name, data: buf.Bytes()})
	d.mediaIndex[sum] = name
	return name, nil
}
