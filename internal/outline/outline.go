package outline

import (
	"fmt"
	"strings"
)

type SlideSpec struct {
	Title   string
	Bullets []string
}

// Content joins the bullets into the single block of text sent to the
// prompt composer.
func (s SlideSpec) Content() string {
	return strings.Join(s.Bullets, "\n")
}

type Outline struct {
	Title    string
	Subtitle string
	Slides   []SlideSpec
}

func (o *Outline) Len() int {
	return len(o.Slides)
}

func (o *Outline) IsEmpty() bool {
	return len(o.Slides) == 0
}

// Render lists the slide titles as "Slide N: <title>", one per line.
// An outline without slides renders as the empty string.
func (o *Outline) Render() string {
	lines := make([]string, len(o.Slides))
	for i, slide := range o.Slides {
		lines[i] = fmt.Sprintf("Slide %d: %s", i+1, slide.Title)
	}
	return strings.Join(lines, "\n")
}
