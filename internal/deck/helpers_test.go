package deck

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, c color.NRGBA) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(8, 8, c), imaging.PNG))
	return buf.Bytes()
}

func testJPEG(t *testing.T, c color.NRGBA) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(8, 8, c), imaging.JPEG))
	return buf.Bytes()
}

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	green = color.NRGBA{G: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
)

func testAssembler(t *testing.T, logo []byte) *Assembler {
	t.Helper()
	a := NewAssembler("assets/logo.png")
	a.readFile = func(path string) ([]byte, error) {
		require.Equal(t, "assets/logo.png", path)
		return logo, nil
	}
	return a
}
