package deck

import "math"

// EMU is the English Metric Unit used by OOXML drawings.
type EMU int64

const emuPerInch = 914400

func Inches(v float64) EMU {
	return EMU(math.Round(v * emuPerInch))
}

func (e EMU) Inches() float64 {
	return float64(e) / emuPerInch
}

// Slide canvas and fixed layout, in inches.
const (
	SlideWidth  = 10.0
	SlideHeight = 7.5

	ImageWidth  = 4.5
	SideMargin  = 1.0
	TitleTop    = 1.0
	BodyTop     = 2.2
	TitleHeight = 1.25
	BodyInset   = 0.5

	LogoWidth        = 2.0
	LogoHeight       = 0.75
	LogoBottomMargin = 0.5
	LogoSideMargin   = 0.5

	CoverLogoWidth  = 3.0
	CoverLogoHeight = 1.125
)

// Cover text boxes follow the standard title-slide placeholders.
const (
	CoverTitleLeft      = 0.75
	CoverTitleTop       = 2.33
	CoverTitleWidth     = 8.5
	CoverTitleHeight    = 1.6
	CoverSubtitleLeft   = 1.5
	CoverSubtitleTop    = 4.25
	CoverSubtitleWidth  = 7.0
	CoverSubtitleHeight = 1.5
)

const (
	FontFamily        = "Calibri"
	CoverTitleSize    = 40
	CoverSubtitleSize = 24
	TitleSize         = 22
	BodySize          = 20
)

type Side int

const (
	ImageRight Side = iota
	ImageLeft
)

func (s Side) String() string {
	if s == ImageLeft {
		return "left"
	}
	return "right"
}

// SideForIndex places the image of content slide i (0-based) on the right
// for even i and on the left for odd i.
func SideForIndex(i int) Side {
	if i%2 == 0 {
		return ImageRight
	}
	return ImageLeft
}

type Rect struct {
	X, Y, W, H EMU
}

func rectInches(x, y, w, h float64) Rect {
	return Rect{X: Inches(x), Y: Inches(y), W: Inches(w), H: Inches(h)}
}

// ContentLayout holds the frames of a content slide.
type ContentLayout struct {
	Image Rect
	Title Rect
	Body  Rect
	Logo  Rect
}

func NewContentLayout(side Side) ContentLayout {
	titleWidth := SlideWidth - ImageWidth - SideMargin*2
	bodyWidth := SlideWidth - ImageWidth - SideMargin
	logoTop := SlideHeight - LogoHeight - LogoBottomMargin
	bodyHeight := logoTop - BodyTop

	if side == ImageRight {
		return ContentLayout{
			Image: rectInches(SlideWidth-ImageWidth, 0, ImageWidth, SlideHeight),
			Title: rectInches(SideMargin, TitleTop, titleWidth, TitleHeight),
			Body:  rectInches(BodyInset, BodyTop, bodyWidth, bodyHeight),
			Logo:  rectInches(LogoSideMargin, logoTop, LogoWidth, LogoHeight),
		}
	}

	return ContentLayout{
		Image: rectInches(0, 0, ImageWidth, SlideHeight),
		Title: rectInches(ImageWidth+SideMargin, TitleTop, titleWidth, TitleHeight),
		Body:  rectInches(ImageWidth+BodyInset, BodyTop, bodyWidth, bodyHeight),
		Logo:  rectInches(SlideWidth-LogoWidth-LogoSideMargin, logoTop, LogoWidth, LogoHeight),
	}
}

type CoverLayout struct {
	Title    Rect
	Subtitle Rect
	Logo     Rect
}

func NewCoverLayout() CoverLayout {
	return CoverLayout{
		Title:    rectInches(CoverTitleLeft, CoverTitleTop, CoverTitleWidth, CoverTitleHeight),
		Subtitle: rectInches(CoverSubtitleLeft, CoverSubtitleTop, CoverSubtitleWidth, CoverSubtitleHeight),
		Logo: rectInches(
			(SlideWidth-CoverLogoWidth)/2,
			SlideHeight-CoverLogoHeight-LogoBottomMargin,
			CoverLogoWidth,
			CoverLogoHeight,
		),
	}
}
