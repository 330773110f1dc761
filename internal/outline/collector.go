package outline

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	choiceAddSlide = "1"
	choiceFinish   = "2"

	promptCoverTitle    = "Enter presentation title: "
	promptCoverSubtitle = "Enter presentation subtitle: "
	promptMenu          = "Press 1 to add a new slide or 2 to finish and create the presentation: "
	promptSlideTitle    = "Enter slide title: "
	promptBullet        = "Enter bullet point (leave empty to finish the slide): "
	msgInvalidChoice    = "Invalid choice. Please try again."
)

var ErrInputClosed = errors.New("input closed before the outline was finished")

// Prompter yields the next line of user input for a question.
type Prompter interface {
	Ask(question string) (string, error)
	Say(message string)
}

type Collector struct {
	prompter Prompter
}

func NewCollector(prompter Prompter) *Collector {
	return &Collector{prompter: prompter}
}

func (c *Collector) Collect() (*Outline, error) {
	title, err := c.ask(promptCoverTitle)
	if err != nil {
		return nil, err
	}
	subtitle, err := c.ask(promptCoverSubtitle)
	if err != nil {
		return nil, err
	}

	result := &Outline{Title: title, Subtitle: subtitle}

	for {
		choice, err := c.ask(promptMenu)
		if err != nil {
			return nil, err
		}

		switch strings.TrimSpace(choice) {
		case choiceAddSlide:
			slide, err := c.collectSlide()
			if err != nil {
				return nil, err
			}
			result.Slides = append(result.Slides, slide)
		case choiceFinish:
			return result, nil
		default:
			c.prompter.Say(msgInvalidChoice)
		}
	}
}

func (c *Collector) collectSlide() (SlideSpec, error) {
	title, err := c.ask(promptSlideTitle)
	if err != nil {
		return SlideSpec{}, err
	}

	slide := SlideSpec{Title: title}
	for {
		bullet, err := c.ask(promptBullet)
		if err != nil {
			return SlideSpec{}, err
		}
		if strings.TrimSpace(bullet) == "" {
			return slide, nil
		}
		slide.Bullets = append(slide.Bullets, bullet)
	}
}

func (c *Collector) ask(question string) (string, error) {
	answer, err := c.prompter.Ask(question)
	if errors.Is(err, io.EOF) {
		return "", ErrInputClosed
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return answer, nil
}
