package ui

import (
	"context"
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/drivenext/drivenext/internal/constants"
	"github.com/drivenext/drivenext/internal/i18n"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSecret
	fieldCheckbox
	fieldChoice
	fieldPhoto
	fieldButton
	fieldLink
)

// formAction is what a form reports when it finishes. Buttons, links and
// photo fields carry their own action; formBack is reserved for B.
type formAction int

const formBack formAction = -1

type field struct {
	kind  fieldKind
	label string

	value    string
	keyboard keyboardMode
	maxLen   int

	checked bool

	choices []string
	choice  int // -1 when nothing is chosen

	attached bool

	action  formAction
	enabled func() bool
}

func (f *field) isEnabled() bool {
	return f.enabled == nil || f.enabled()
}

// formScreen is a vertical list of fields. Text fields are edited on a separate
// keyboard screen, so handle finishes with editing set.
type formScreen struct {
	title    string
	subtitle string
	fields   []*field

	selected int
	offset   int
	editing  *field
	action   formAction
}

func (f *formScreen) move(delta int) {
	n := len(f.fields)
	f.selected = (f.selected + delta + n) % n
}

func (f *formScreen) handle(in inputEvent) bool {
	cur := f.fields[f.selected]

	switch in.button {
	case constants.VirtualButtonUp:
		f.move(-1)
	case constants.VirtualButtonDown:
		f.move(1)
	case constants.VirtualButtonLeft, constants.VirtualButtonRight:
		if cur.kind == fieldChoice && len(cur.choices) > 0 {
			step := 1
			if in.button == constants.VirtualButtonLeft {
				step = -1
			}
			cur.choice = (max(cur.choice, 0) + step + len(cur.choices)) % len(cur.choices)
		}
	case constants.VirtualButtonA:
		return f.activate(cur)
	case constants.VirtualButtonB:
		f.action = formBack
		return true
	case constants.VirtualButtonStart:
		for _, fl := range f.fields {
			if fl.kind == fieldButton {
				return f.activate(fl)
			}
		}
	}
	return false
}

func (f *formScreen) activate(cur *field) bool {
	switch cur.kind {
	case fieldText, fieldSecret:
		f.editing = cur
		return true
	case fieldCheckbox:
		cur.checked = !cur.checked
	case fieldChoice:
		if len(cur.choices) > 0 {
			cur.choice = (cur.choice + 1) % len(cur.choices)
		}
	case fieldPhoto, fieldLink:
		f.action = cur.action
		return true
	case fieldButton:
		if cur.isEnabled() {
			f.action = cur.action
			return true
		}
	}
	return false
}

func (f *formScreen) render(u *UI) {
	margin := u.margin()
	y := margin / 2

	y += u.drawText(u.fonts.large, f.title, margin, y, u.theme.TextColor, constants.TextAlignLeft)
	if f.subtitle != "" {
		y += u.drawText(u.fonts.small, f.subtitle, margin, y, u.theme.HintColor, constants.TextAlignLeft)
	}
	y += margin / 2

	rowHeight := int32(u.fonts.small.Height()+u.fonts.medium.Height()) + margin/2
	footer := int32(u.fonts.small.Height()) * 4
	visible := max(int((u.win.height-y-footer)/rowHeight), 1)

	if f.selected < f.offset {
		f.offset = f.selected
	}
	if f.selected >= f.offset+visible {
		f.offset = f.selected - visible + 1
	}

	for i := f.offset; i < len(f.fields) && i < f.offset+visible; i++ {
		u.drawField(f.fields[i], margin, y, u.win.width-2*margin, rowHeight-margin/4, i == f.selected)
		y += rowHeight
	}

	hints := []hint{{button: "A", label: u.t.T(i18n.ActionSelect)}, {button: "B", label: u.t.T(i18n.ActionBack)}}
	if cur := f.fields[f.selected]; cur.kind == fieldText || cur.kind == fieldSecret {
		hints[0].label = u.t.T(i18n.ActionEdit)
	}
	u.drawFooter(hints)
}

func (u *UI) drawField(fl *field, x, y, w, h int32, selected bool) {
	small, medium := u.fonts.small, u.fonts.medium
	pad := u.margin() / 4

	switch fl.kind {
	case fieldButton:
		u.drawButton(sdl.Rect{X: x, Y: y, W: w, H: h}, fl.label, selected, fl.isEnabled())
		return
	case fieldLink:
		color := u.theme.HintColor
		if selected {
			color = u.theme.AccentColor
		}
		u.drawText(medium, fl.label, x+w/2, y+(h-int32(medium.Height()))/2, color, constants.TextAlignCenter)
		return
	}

	labelHeight := int32(small.Height())
	if fl.kind != fieldCheckbox {
		u.drawText(small, fl.label, x, y, u.theme.HintColor, constants.TextAlignLeft)
	}

	box := sdl.Rect{X: x, Y: y + labelHeight, W: w, H: h - labelHeight}
	if fl.kind == fieldCheckbox {
		box = sdl.Rect{X: x, Y: y, W: w, H: h}
	}
	u.fillRect(box, u.theme.SurfaceColor)
	if selected {
		u.outlineRect(box, u.theme.AccentColor, 2)
	}
	textY := box.Y + (box.H-int32(medium.Height()))/2

	switch fl.kind {
	case fieldText:
		u.drawTextWidth(medium, fl.value, box.X+pad, textY, u.theme.TextColor)
	case fieldSecret:
		u.drawTextWidth(medium, strings.Repeat("•", len([]rune(fl.value))), box.X+pad, textY, u.theme.TextColor)
	case fieldCheckbox:
		mark := "[ ]"
		if fl.checked {
			mark = "[x]"
		}
		x := box.X + pad
		x += u.drawTextWidth(medium, mark, x, textY, u.theme.AccentColor) + pad
		u.drawTextWidth(small, fl.label, x, box.Y+(box.H-int32(small.Height()))/2, u.theme.TextColor)
	case fieldChoice:
		label := ""
		if fl.choice >= 0 && fl.choice < len(fl.choices) {
			label = fl.choices[fl.choice]
		}
		u.drawText(medium, "‹ "+label+" ›", box.X+box.W/2, textY, u.theme.TextColor, constants.TextAlignCenter)
	case fieldPhoto:
		status, color := u.t.T(i18n.PhotoAttach), u.theme.HintColor
		if fl.attached {
			status, color = u.t.T(i18n.PhotoAttached), u.theme.AccentColor
		}
		u.drawTextWidth(medium, status, box.X+pad, textY, color)
	}
}

// runForm shows f until an action other than editing happens. Text fields
// are edited in place through the keyboard screen.
func (u *UI) runForm(ctx context.Context, f *formScreen, noticeID string) (formAction, error) {
	u.showNotice(noticeID)
	for {
		f.editing = nil
		if err := u.run(ctx, f); err != nil {
			return formBack, err
		}
		if f.editing == nil {
			return f.action, nil
		}

		fl := f.editing
		kb := &keyboardScreen{
			model:  newKeyboardModel(fl.keyboard, fl.value, fl.maxLen),
			label:  fl.label,
			secret: fl.kind == fieldSecret,
		}
		if err := u.run(ctx, kb); err != nil {
			return formBack, err
		}
		if kb.outcome == keyboardDone {
			fl.value = kb.model.String()
		}
	}
}
