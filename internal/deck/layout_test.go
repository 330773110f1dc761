package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSideForIndex(t *testing.T) {
	for i := 0; i < 10; i++ {
		want := ImageRight
		if i%2 == 1 {
			want = ImageLeft
		}
		assert.Equal(t, want, SideForIndex(i), "index %d", i)
	}
}

func TestInches(t *testing.T) {
	assert.Equal(t, EMU(9144000), Inches(10))
	assert.Equal(t, EMU(6858000), Inches(7.5))
	assert.Equal(t, EMU(4114800), Inches(4.5))
	assert.InDelta(t, 2.2, Inches(2.2).Inches(), 1e-9)
}

func TestContentLayout(t *testing.T) {
	tests := []struct {
		name string
		side Side
		want ContentLayout
	}{
		{
			name: "imageRight",
			side: ImageRight,
			want: ContentLayout{
				Image: rectInches(5.5, 0, 4.5, 7.5),
				Title: rectInches(1.0, 1.0, 3.5, 1.25),
				Body:  rectInches(0.5, 2.2, 4.5, 4.05),
				Logo:  rectInches(0.5, 6.25, 2.0, 0.75),
			},
		},
		{
			name: "imageLeft",
			side: ImageLeft,
			want: ContentLayout{
				Image: rectInches(0, 0, 4.5, 7.5),
				Title: rectInches(5.5, 1.0, 3.5, 1.25),
				Body:  rectInches(5.0, 2.2, 4.5, 4.05),
				Logo:  rectInches(7.5, 6.25, 2.0, 0.75),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewContentLayout(tt.side))
		})
	}
}

func TestContentLayoutTextClearsImage(t *testing.T) {
	for _, side := range []Side{ImageRight, ImageLeft} {
		layout := NewContentLayout(side)
		for _, box := range []Rect{layout.Title, layout.Body} {
			overlaps := box.X < layout.Image.X+layout.Image.W && layout.Image.X < box.X+box.W
			assert.False(t, overlaps, "side %s: text %+v overlaps image %+v", side, box, layout.Image)
		}
		assert.Equal(t, Inches(SlideHeight), layout.Image.H)
	}
}

func TestCoverLayout(t *testing.T) {
	layout := NewCoverLayout()
	assert.Equal(t, rectInches(3.5, 5.875, 3.0, 1.125), layout.Logo)
	assert.Equal(t, Inches(SlideWidth), layout.Title.X*2+layout.Title.W)
	assert.Equal(t, Inches(SlideWidth), layout.Subtitle.X*2+layout.Subtitle.W)
}
