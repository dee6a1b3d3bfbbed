package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestHexToColor(t *testing.T) {
	assert.Equal(t, sdl.Color{R: 0x29, G: 0x3F, B: 0x9A, A: 255}, HexToColor(0x293F9A))
}

func TestNewThemeDerivesSurface(t *testing.T) {
	theme := NewTheme(0x2A1246, 0xF0F0F0)

	assert.Equal(t, HexToColor(0x2A1246), theme.AccentColor)
	assert.Equal(t, sdl.Color{R: 255, G: 255, B: 255, A: 255}, theme.SurfaceColor)
}
