// Package onboarding holds the product pitch shown before sign-in and the
// carousel position over it.
package onboarding

import "github.com/drivenext/drivenext/internal/i18n"

// Slide is one page of the carousel. Title and Text are message IDs;
// Illustration names an embedded SVG asset.
type Slide struct {
	Title        string
	Text         string
	Illustration string
}

// Slides returns the carousel content in display order.
func Slides() []Slide {
	illustrations := []string{"car_rental.svg", "safe_drive.svg", "best_offers.svg"}
	slides := make([]Slide, len(illustrations))
	for i, name := range illustrations {
		slides[i] = Slide{
			Title:        i18n.OnboardingTitle(i + 1),
			Text:         i18n.OnboardingText(i + 1),
			Illustration: name,
		}
	}
	return slides
}

// Carousel tracks the visible slide.
type Carousel struct {
	slides []Slide
	index  int
}

// NewCarousel starts at index, clamped to the valid range.
func NewCarousel(slides []Slide, index int) *Carousel {
	c := &Carousel{slides: slides}
	c.Seek(index)
	return c
}

func (c *Carousel) Slide() Slide {
	return c.slides[c.index]
}

func (c *Carousel) Index() int {
	return c.index
}

func (c *Carousel) Len() int {
	return len(c.slides)
}

func (c *Carousel) IsLast() bool {
	return c.index == len(c.slides)-1
}

// ButtonLabel is the message ID of the primary button.
func (c *Carousel) ButtonLabel() string {
	if c.IsLast() {
		return i18n.OnboardingStart
	}
	return i18n.OnboardingNext
}

// SkipVisible reports whether Skip is offered. It is hidden on the last slide.
func (c *Carousel) SkipVisible() bool {
	return !c.IsLast()
}

// Next advances one slide. It reports true when the last slide was already
// showing, meaning onboarding is finished.
func (c *Carousel) Next() (finished bool) {
	if c.IsLast() {
		return true
	}
	c.index++
	return false
}

// Prev goes back one slide. It reports false on the first slide.
func (c *Carousel) Prev() bool {
	if c.index == 0 {
		return false
	}
	c.index--
	return true
}

func (c *Carousel) Seek(index int) {
	c.index = max(0, min(index, len(c.slides)-1))
}
