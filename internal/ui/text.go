package ui

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/drivenext/drivenext/internal/constants"
)

type textTexture struct {
	texture *sdl.Texture
	w, h    int32
}

// textTexture renders s once per font and color and caches the result.
func (u *UI) textTexture(font *ttf.Font, s string, color sdl.Color) (textTexture, bool) {
	if s == "" || font == nil {
		return textTexture{}, false
	}

	key := fmt.Sprintf("%p|%08x|%s", font, colorKey(color), s)
	if t, ok := u.textCache.Get(key); ok {
		return t, true
	}

	surface, err := font.RenderUTF8Blended(s, color)
	if err != nil {
		u.logger.Debug("Text render failed", "text", s, "error", err)
		return textTexture{}, false
	}
	defer surface.Free()

	texture, err := u.win.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		u.logger.Debug("Text texture failed", "text", s, "error", err)
		return textTexture{}, false
	}

	t := textTexture{texture: texture, w: surface.W, h: surface.H}
	u.textCache.Set(key, t)
	return t, true
}

func colorKey(c sdl.Color) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// drawText draws a single line with x interpreted according to align and
// returns the line height.
func (u *UI) drawText(font *ttf.Font, s string, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	t, ok := u.textTexture(font, s, color)
	if !ok {
		return 0
	}

	switch align {
	case constants.TextAlignCenter:
		x -= t.w / 2
	case constants.TextAlignRight:
		x -= t.w
	}
	u.win.renderer.Copy(t.texture, nil, &sdl.Rect{X: x, Y: y, W: t.w, H: t.h})
	return t.h
}

func textWidth(font *ttf.Font, s string) int32 {
	if font == nil || s == "" {
		return 0
	}
	w, _, err := font.SizeUTF8(s)
	if err != nil {
		return 0
	}
	return int32(w)
}

// wrapLines breaks text into lines no wider than maxWidth, measured with
// width. Explicit newlines are kept; a single word wider than maxWidth gets
// a line of its own.
func wrapLines(text string, maxWidth int32, width func(string) int32) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if width(candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}

// drawMultiline wraps and draws text starting at y and returns the height used.
func (u *UI) drawMultiline(font *ttf.Font, text string, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	if text == "" || font == nil {
		return 0
	}

	lineHeight := int32(font.Height())
	spacing := lineHeight / 5
	lines := wrapLines(text, maxWidth, func(s string) int32 { return textWidth(font, s) })

	for i, line := range lines {
		u.drawText(font, line, x, y+int32(i)*(lineHeight+spacing), color, align)
	}
	return int32(len(lines))*lineHeight + int32(len(lines)-1)*spacing
}

func (u *UI) fillRect(rect sdl.Rect, color sdl.Color) {
	u.win.renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	u.win.renderer.FillRect(&rect)
}

func (u *UI) outlineRect(rect sdl.Rect, color sdl.Color, thickness int32) {
	u.win.renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	for i := int32(0); i < thickness; i++ {
		u.win.renderer.DrawRect(&sdl.Rect{X: rect.X + i, Y: rect.Y + i, W: rect.W - 2*i, H: rect.H - 2*i})
	}
}

// drawButton draws a filled button with a centered label.
func (u *UI) drawButton(rect sdl.Rect, label string, selected, enabled bool) {
	bg, fg := u.theme.SurfaceColor, u.theme.TextColor
	switch {
	case !enabled:
		bg, fg = u.theme.DisabledColor, u.theme.HintColor
	case selected:
		bg, fg = u.theme.AccentColor, u.theme.OnAccentColor
	}
	u.fillRect(rect, bg)

	font := u.fonts.medium
	h := int32(font.Height())
	u.drawText(font, label, rect.X+rect.W/2, rect.Y+(rect.H-h)/2, fg, constants.TextAlignCenter)
}

// hint is one entry of the footer, such as "A  Select".
type hint struct {
	button string
	label  string
}

// drawFooter draws button hints along the bottom edge.
func (u *UI) drawFooter(hints []hint) {
	font := u.fonts.small
	margin := u.win.height / 40
	y := u.win.height - int32(font.Height()) - margin
	x := margin

	for _, h := range hints {
		pill := textWidth(font, h.button) + margin
		u.fillRect(sdl.Rect{X: x, Y: y - 2, W: pill, H: int32(font.Height()) + 4}, u.theme.SurfaceColor)
		u.drawText(font, h.button, x+pill/2, y, u.theme.TextColor, constants.TextAlignCenter)
		x += pill + margin/2
		x += u.drawTextWidth(font, h.label, x, y, u.theme.HintColor) + margin
	}
}

func (u *UI) drawTextWidth(font *ttf.Font, s string, x, y int32, color sdl.Color) int32 {
	t, ok := u.textTexture(font, s, color)
	if !ok {
		return 0
	}
	u.win.renderer.Copy(t.texture, nil, &sdl.Rect{X: x, Y: y, W: t.w, H: t.h})
	return t.w
}
