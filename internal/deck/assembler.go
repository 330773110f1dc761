package deck

import (
	"fmt"
	"os"

	"slidecraft/internal/outline"
)

// Assembler places text, artwork and the logo onto slides at fixed
// positions.
type Assembler struct {
	logoPath string
	readFile func(string) ([]byte, error)
}

func NewAssembler(logoPath string) *Assembler {
	return &Assembler{
		logoPath: logoPath,
		readFile: os.ReadFile,
	}
}

func (a *Assembler) AddCover(d *Deck, title, subtitle string) error {
	layout := NewCoverLayout()

	logo, err := a.logo(d)
	if err != nil {
		return err
	}

	d.Slides = append(d.Slides, &Slide{
		Layout: LayoutTitle,
		Texts: []TextBox{
			{
				Name:        "Title",
				Placeholder: PlaceholderCenteredTitle,
				Frame:       layout.Title,
				Font:        Font{Family: FontFamily, Size: CoverTitleSize, Bold: true},
				Centered:    true,
				Paragraphs:  []string{title},
			},
			{
				Name:        "Subtitle",
				Placeholder: PlaceholderSubtitle,
				Frame:       layout.Subtitle,
				Font:        Font{Family: FontFamily, Size: CoverSubtitleSize},
				Centered:    true,
				Paragraphs:  []string{subtitle},
			},
		},
		Pictures: []Picture{
			{Name: "Logo", Frame: layout.Logo, Media: logo},
		},
	})
	return nil
}

// AddContent appends content slide number index (0-based, cover excluded).
// The image side follows SideForIndex.
func (a *Assembler) AddContent(d *Deck, index int, spec outline.SlideSpec, image []byte) error {
	side := SideForIndex(index)
	layout := NewContentLayout(side)

	art, err := d.AddImage(image)
	if err != nil {
		return fmt.Errorf("slide %d image: %w", index+1, err)
	}

	logo, err := a.logo(d)
	if err != nil {
		return err
	}

	d.Slides = append(d.Slides, &Slide{
		Layout: LayoutTitleAndContent,
		Side:   side,
		Texts: []TextBox{
			{
				Name:        "Title",
				Placeholder: PlaceholderTitle,
				Frame:       layout.Title,
				Font:        Font{Family: FontFamily, Size: TitleSize, Bold: true},
				Paragraphs:  []string{spec.Title},
			},
			{
				Name:        "Content",
				Placeholder: PlaceholderBody,
				Frame:       layout.Body,
				Font:        Font{Family: FontFamily, Size: BodySize},
				Paragraphs:  append([]string(nil), spec.Bullets...),
			},
		},
		Pictures: []Picture{
			{Name: "Slide Image", Frame: layout.Image, Media: art},
			{Name: "Logo", Frame: layout.Logo, Media: logo},
		},
	})
	return nil
}

func (a *Assembler) logo(d *Deck) (string, error) {
	data, err := a.readFile(a.logoPath)
	if err != nil {
		return "", fmt.Errorf("read logo: %w", err)
	}

	name, err := d.AddImage(data)
	if err != nil {
		return "", fmt.Errorf("logo %s: %w", a.logoPath, err)
	}
	return name, nil
}
