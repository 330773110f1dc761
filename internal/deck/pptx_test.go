package deck

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidecraft/internal/outline"
)

func buildScenario(t *testing.T) *Deck {
	t.Helper()
	a := testAssembler(t, testPNG(t, blue))
	d := New("Garden & Co")
	require.NoError(t, a.AddCover(d, "Garden & Co", "Growing <things>"))
	require.NoError(t, a.AddContent(d, 0, outline.SlideSpec{Title: "Intro", Bullets: []string{"Welcome", "Agenda"}}, testPNG(t, red)))
	require.NoError(t, a.AddContent(d, 1, outline.SlideSpec{Title: "Conclusion"}, testPNG(t, green)))
	return d
}

func readPackage(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		_ = rc.Close()
		parts[f.Name] = string(content)
	}
	return parts
}

func assertWellFormed(t *testing.T, name, content string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(content))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		require.NoError(t, err, "part %s is not well-formed XML", name)
	}
}

func TestEncodeScenario(t *testing.T) {
	data, err := buildScenario(t).Bytes()
	require.NoError(t, err)
	parts := readPackage(t, data)

	for name, content := range parts {
		if strings.HasSuffix(name, ".xml") || strings.HasSuffix(name, ".rels") {
			assertWellFormed(t, name, content)
		}
	}

	for i := 1; i <= 3; i++ {
		assert.Contains(t, parts, fmt.Sprintf("ppt/slides/slide%d.xml", i))
		assert.Contains(t, parts["[Content_Types].xml"], fmt.Sprintf("/ppt/slides/slide%d.xml", i))
		assert.Contains(t, parts["ppt/_rels/presentation.xml.rels"], fmt.Sprintf("slides/slide%d.xml", i))
	}
	assert.NotContains(t, parts, "ppt/slides/slide4.xml")
	assert.Equal(t, 3, strings.Count(parts["ppt/presentation.xml"], "<p:sldId "))
	assert.Contains(t, parts["ppt/presentation.xml"], `<p:sldSz cx="9144000" cy="6858000"/>`)

	cover := parts["ppt/slides/slide1.xml"]
	assert.Contains(t, cover, "Garden &amp; Co")
	assert.Contains(t, cover, "Growing &lt;things&gt;")
	assert.Contains(t, cover, `sz="4000" b="1"`)
	assert.Contains(t, parts["ppt/slides/_rels/slide1.xml.rels"], "slideLayout1.xml")

	intro := parts["ppt/slides/slide2.xml"]
	welcome := strings.Index(intro, "<a:t>Welcome</a:t>")
	agenda := strings.Index(intro, "<a:t>Agenda</a:t>")
	require.True(t, welcome > 0 && agenda > welcome, "bullets out of order")
	assert.Contains(t, intro, `<a:off x="5029200" y="0"/><a:ext cx="4114800" cy="6858000"/>`)
	assert.Contains(t, intro, `typeface="Calibri"`)
	assert.Contains(t, intro, `sz="2000" b="0"`)
	assert.Contains(t, intro, `sz="2200" b="1"`)
	assert.Contains(t, parts["ppt/slides/_rels/slide2.xml.rels"], "slideLayout2.xml")

	conclusion := parts["ppt/slides/slide3.xml"]
	assert.Contains(t, conclusion, `<a:off x="0" y="0"/><a:ext cx="4114800" cy="6858000"/>`)
	assert.Contains(t, conclusion, "<a:endParaRPr")

	media := 0
	for name := range parts {
		if strings.HasPrefix(name, "ppt/media/") {
			media++
		}
	}
	assert.Equal(t, 3, media)
}

func TestEncodeDeterministic(t *testing.T) {
	first, err := buildScenario(t).Bytes()
	require.NoError(t, err)
	second, err := buildScenario(t).Bytes()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second), "encoding differs between identical decks")
}

func TestEncodeCoverOnly(t *testing.T) {
	a := testAssembler(t, testPNG(t, blue))
	d := New("Empty")
	require.NoError(t, a.AddCover(d, "Empty", ""))

	data, err := d.Bytes()
	require.NoError(t, err)
	parts := readPackage(t, data)

	assert.Contains(t, parts, "ppt/slides/slide1.xml")
	assert.NotContains(t, parts, "ppt/slides/slide2.xml")
	assert.Equal(t, 1, strings.Count(parts["ppt/presentation.xml"], "<p:sldId "))
	assertWellFormed(t, "ppt/slides/slide1.xml", parts["ppt/slides/slide1.xml"])
}

func TestEncodeSharedMediaRelationship(t *testing.T) {
	logo := testPNG(t, blue)
	a := testAssembler(t, logo)
	d := New("Deck")
	// the slide image is the logo itself: one relationship, two pictures
	require.NoError(t, a.AddContent(d, 0, outline.SlideSpec{Title: "T"}, logo))

	view, rels := buildSlideView(d.Slides[0])
	require.Len(t, rels.Media, 1)
	assert.Equal(t, "rId2", rels.Media[0].ID)
	assert.Equal(t, view.Shapes[2].RelID, view.Shapes[3].RelID)
}
