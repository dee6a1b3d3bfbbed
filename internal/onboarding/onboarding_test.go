package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drivenext/drivenext/internal/i18n"
)

func TestSlides(t *testing.T) {
	slides := Slides()
	assert.Len(t, slides, 3)
	assert.Equal(t, "onboarding_title_1", slides[0].Title)
	assert.Equal(t, "onboarding_text_3", slides[2].Text)
	for _, s := range slides {
		assert.NotEmpty(t, s.Illustration)
	}
}

func TestCarousel(t *testing.T) {
	c := NewCarousel(Slides(), 0)

	assert.False(t, c.Prev())
	assert.Equal(t, i18n.OnboardingNext, c.ButtonLabel())
	assert.True(t, c.SkipVisible())

	assert.False(t, c.Next())
	assert.False(t, c.Next())
	assert.True(t, c.IsLast())
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, i18n.OnboardingStart, c.ButtonLabel())
	assert.False(t, c.SkipVisible())

	assert.True(t, c.Next(), "next on the last slide finishes")
	assert.Equal(t, 2, c.Index())

	assert.True(t, c.Prev())
	assert.Equal(t, 1, c.Index())
}

func TestCarouselClampsStart(t *testing.T) {
	assert.Equal(t, 2, NewCarousel(Slides(), 10).Index())
	assert.Equal(t, 0, NewCarousel(Slides(), -1).Index())
}
