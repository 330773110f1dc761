package deck

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"text/template"
)

const (
	Extension   = ".pptx"
	ContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

var partTemplates = template.Must(template.New("pptx").Funcs(template.FuncMap{
	"esc":  escapeXML,
	"add":  func(a, b int) int { return a + b },
	"sz":   func(points int) int { return points * 100 },
	"flag": flag,

	"masterPlaceholders":      masterPlaceholders,
	"titleLayoutPlaceholders": titleLayoutPlaceholders,
}).Parse(xmlTemplates))

type placeholderView struct {
	ID    int
	Name  string
	Kind  PlaceholderKind
	Frame Rect
}

func masterPlaceholders() []placeholderView {
	return []placeholderView{
		{ID: 2, Name: "Title Placeholder 1", Kind: PlaceholderTitle, Frame: rectInches(0.5, 0.3, 9.0, TitleHeight)},
		{ID: 3, Name: "Text Placeholder 2", Kind: PlaceholderBody, Frame: rectInches(0.5, 1.75, 9.0, 4.95)},
	}
}

func titleLayoutPlaceholders() []placeholderView {
	cover := NewCoverLayout()
	return []placeholderView{
		{ID: 2, Name: "Title 1", Kind: PlaceholderCenteredTitle, Frame: cover.Title},
		{ID: 3, Name: "Subtitle 2", Kind: PlaceholderSubtitle, Frame: cover.Subtitle},
	}
}

type slideView struct {
	Slide  *Slide
	Shapes []shapeView
}

type shapeView struct {
	ID      int
	Text    *TextBox
	Picture *Picture
	RelID   string
}

type slideRelsView struct {
	Layout int
	Media  []mediaRel
}

type mediaRel struct {
	ID   string
	Name string
}

// Encode serializes the deck as a PresentationML package. Entries are
// written in a fixed order without timestamps, so equal decks encode to
// equal bytes.
func (d *Deck) Encode(w io.Writer) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name     string
		template string
		data     any
	}{
		{"[Content_Types].xml", "contentTypes", d},
		{"_rels/.rels", "rootRels", d},
		{"docProps/app.xml", "app", d},
		{"docProps/core.xml", "core", d},
		{"ppt/presentation.xml", "presentation", d},
		{"ppt/_rels/presentation.xml.rels", "presentationRels", d},
		{"ppt/presProps.xml", "presProps", d},
		{"ppt/viewProps.xml", "viewProps", d},
		{"ppt/theme/theme1.xml", "theme", d},
		{"ppt/slideMasters/slideMaster1.xml", "slideMaster", d},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", "slideMasterRels", d},
		{"ppt/slideLayouts/slideLayout1.xml", "titleLayout", d},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", "layoutRels", d},
		{"ppt/slideLayouts/slideLayout2.xml", "contentLayout", d},
		{"ppt/slideLayouts/_rels/slideLayout2.xml.rels", "layoutRels", d},
	}

	for _, part := range parts {
		if err := writeTemplate(zw, part.name, part.template, part.data); err != nil {
			return err
		}
	}

	for i, slide := range d.Slides {
		view, rels := buildSlideView(slide)
		if err := writeTemplate(zw, fmt.Sprintf("ppt/slides/slide%d.xml", i+1), "slide", view); err != nil {
			return err
		}
		if err := writeTemplate(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), "slideRels", rels); err != nil {
			return err
		}
	}

	for _, m := range d.media {
		if err := writeEntry(zw, "ppt/media/"+m.name, m.data, zip.Store); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close package: %w", err)
	}
	return nil
}

func (d *Deck) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildSlideView(slide *Slide) (slideView, slideRelsView) {
	view := slideView{Slide: slide}
	rels := slideRelsView{Layout: int(slide.Layout)}
	relIDs := make(map[string]string)

	// id 1 is the shape tree itself
	id := 2
	for i := range slide.Texts {
		view.Shapes = append(view.Shapes, shapeView{ID: id, Text: &slide.Texts[i]})
		id++
	}
	for i := range slide.Pictures {
		pic := &slide.Pictures[i]
		relID, ok := relIDs[pic.Media]
		if !ok {
			relID = fmt.Sprintf("rId%d", len(relIDs)+2)
			relIDs[pic.Media] = relID
			rels.Media = append(rels.Media, mediaRel{ID: relID, Name: pic.Media})
		}
		view.Shapes = append(view.Shapes, shapeView{ID: id, Picture: pic, RelID: relID})
		id++
	}
	return view, rels
}

func writeTemplate(zw *zip.Writer, name, tmpl string, data any) error {
	var buf bytes.Buffer
	if err := partTemplates.ExecuteTemplate(&buf, tmpl, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return writeEntry(zw, name, buf.Bytes(), zip.Deflate)
}

func writeEntry(zw *zip.Writer, name string, data []byte, method uint16) error {
	f, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: method})
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
