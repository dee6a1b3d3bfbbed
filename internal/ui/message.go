package ui

import (
	"path/filepath"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/drivenext/drivenext/internal/constants"
	"github.com/drivenext/drivenext/internal/i18n"
)

// messageScreen shows a centered message with a row of buttons. chosen is
// the index of the pressed button, or -1 after B.
type messageScreen struct {
	icon         string
	illustration string
	title        string
	text         string
	buttons      []string
	disableBack  bool

	selected int
	chosen   int
}

func (m *messageScreen) handle(in inputEvent) bool {
	switch in.button {
	case constants.VirtualButtonLeft, constants.VirtualButtonUp:
		if len(m.buttons) > 0 {
			m.selected = (m.selected - 1 + len(m.buttons)) % len(m.buttons)
		}
	case constants.VirtualButtonRight, constants.VirtualButtonDown:
		if len(m.buttons) > 0 {
			m.selected = (m.selected + 1) % len(m.buttons)
		}
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		if len(m.buttons) > 0 {
			m.chosen = m.selected
			return true
		}
	case constants.VirtualButtonB:
		if !m.disableBack {
			m.chosen = -1
			return true
		}
	}
	return false
}

func (m *messageScreen) render(u *UI) {
	margin := u.margin()
	cx := u.win.width / 2
	y := u.win.height / 6

	switch {
	case m.illustration != "":
		size := u.win.height / 3
		u.drawIllustration(m.illustration, cx, y, size, size)
		y += size + margin/2
	case m.icon != "" && u.fonts.icons != nil:
		y += u.drawText(u.fonts.icons, m.icon, cx, y, u.theme.AccentColor, constants.TextAlignCenter) + margin/2
	}

	y += u.drawText(u.fonts.large, m.title, cx, y, u.theme.TextColor, constants.TextAlignCenter) + margin/4
	u.drawMultiline(u.fonts.small, m.text, u.win.width-4*margin, cx, y, u.theme.HintColor, constants.TextAlignCenter)

	if len(m.buttons) > 0 {
		footer := int32(u.fonts.small.Height()) * 3
		h := int32(u.fonts.medium.Height()) + margin/2
		gap := margin / 2
		w := (u.win.width - 2*margin - int32(len(m.buttons)-1)*gap) / int32(len(m.buttons))
		by := u.win.height - footer - h - margin/2
		for i, label := range m.buttons {
			rect := sdl.Rect{X: margin + int32(i)*(w+gap), Y: by, W: w, H: h}
			u.drawButton(rect, label, i == m.selected, true)
		}
	}

	hints := []hint{{button: "A", label: u.t.T(i18n.ActionSelect)}}
	if !m.disableBack {
		hints = append(hints, hint{button: "B", label: u.t.T(i18n.ActionBack)})
	}
	u.drawFooter(hints)
}

// listScreen picks one of items, shown by base name. chosen is -1 after B.
type listScreen struct {
	title string
	items []string

	selected int
	offset   int
	chosen   int
}

func (l *listScreen) handle(in inputEvent) bool {
	n := len(l.items)
	switch in.button {
	case constants.VirtualButtonUp:
		if n > 0 {
			l.selected = (l.selected - 1 + n) % n
		}
	case constants.VirtualButtonDown:
		if n > 0 {
			l.selected = (l.selected + 1) % n
		}
	case constants.VirtualButtonA:
		if n > 0 {
			l.chosen = l.selected
			return true
		}
	case constants.VirtualButtonB:
		l.chosen = -1
		return true
	}
	return false
}

func (l *listScreen) render(u *UI) {
	margin := u.margin()
	y := margin / 2
	y += u.drawText(u.fonts.large, l.title, margin, y, u.theme.TextColor, constants.TextAlignLeft) + margin/2

	rowHeight := int32(u.fonts.medium.Height()) + margin/3
	footer := int32(u.fonts.small.Height()) * 3
	visible := max(int((u.win.height-y-footer)/rowHeight), 1)
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+visible {
		l.offset = l.selected - visible + 1
	}

	for i := l.offset; i < len(l.items) && i < l.offset+visible; i++ {
		rect := sdl.Rect{X: margin, Y: y, W: u.win.width - 2*margin, H: rowHeight - margin/8}
		color := u.theme.TextColor
		if i == l.selected {
			u.fillRect(rect, u.theme.AccentColor)
			color = u.theme.OnAccentColor
		}
		u.drawTextWidth(u.fonts.medium, filepath.Base(l.items[i]), rect.X+margin/4, rect.Y+margin/8, color)
		y += rowHeight
	}

	u.drawFooter([]hint{
		{button: "A", label: u.t.T(i18n.ActionSelect)},
		{button: "B", label: u.t.T(i18n.ActionCancel)},
	})
}
