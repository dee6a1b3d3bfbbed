package ui

import "github.com/veandco/go-sdl2/sdl"

// Theme is the palette every screen draws with.
type Theme struct {
	AccentColor     sdl.Color // Primary buttons, selection, splash background
	BackgroundColor sdl.Color
	SurfaceColor    sdl.Color // Input fields and unselected buttons
	TextColor       sdl.Color
	HintColor       sdl.Color // Secondary text, footer hints, placeholders
	OnAccentColor   sdl.Color // Text drawn on the accent color
	DisabledColor   sdl.Color
	NoticeColor     sdl.Color // Transient notice background
}

// NewTheme derives a full palette from the configured accent and
// background colors.
func NewTheme(accent, background uint32) Theme {
	bg := HexToColor(background)
	return Theme{
		AccentColor:     HexToColor(accent),
		BackgroundColor: bg,
		SurfaceColor:    lighten(bg, 24),
		TextColor:       HexToColor(0xFFFFFF),
		HintColor:       HexToColor(0x9A9AA8),
		OnAccentColor:   HexToColor(0xFFFFFF),
		DisabledColor:   HexToColor(0x4A4A55),
		NoticeColor:     HexToColor(0x2B2B33),
	}
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

func lighten(c sdl.Color, amount uint8) sdl.Color {
	add := func(v uint8) uint8 {
		if int(v)+int(amount) > 255 {
			return 255
		}
		return v + amount
	}
	return sdl.Color{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}
