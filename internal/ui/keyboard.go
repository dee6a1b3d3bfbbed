package ui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/drivenext/drivenext/internal/constants"
	"github.com/drivenext/drivenext/internal/i18n"
)

// keyLayout is a grid of single-character keys. A space key is written as
// a literal space.
type keyLayout struct {
	name string
	rows []string
}

var (
	latinLayout = keyLayout{name: "EN", rows: []string{
		"1234567890",
		"qwertyuiop",
		"asdfghjkl@",
		"zxcvbnm.-_",
		" ",
	}}
	cyrillicLayout = keyLayout{name: "РУ", rows: []string{
		"1234567890",
		"йцукенгшщзх",
		"фывапролджэ",
		"ячсмитьбюё-",
		" ",
	}}
	symbolLayout = keyLayout{name: "#+=", rows: []string{
		"1234567890",
		"!#$%&*+=?/",
		"()[]{}<>:;",
		"'\"^~|\\,`",
		" ",
	}}
	digitLayout = keyLayout{name: "123", rows: []string{
		"123",
		"456",
		"789",
		"/0",
	}}
)

// keyboardMode selects the layouts a field may use.
type keyboardMode int

const (
	keyboardText keyboardMode = iota
	keyboardEmail
	keyboardDigits
	keyboardDate
)

func (m keyboardMode) layouts() []keyLayout {
	switch m {
	case keyboardEmail:
		return []keyLayout{latinLayout, symbolLayout}
	case keyboardDigits, keyboardDate:
		return []keyLayout{digitLayout}
	default:
		return []keyLayout{cyrillicLayout, latinLayout, symbolLayout}
	}
}

func (m keyboardMode) accepts(r rune) bool {
	switch m {
	case keyboardDigits:
		return r >= '0' && r <= '9'
	case keyboardDate:
		return r >= '0' && r <= '9' || r == '/' || r == '.'
	default:
		return unicode.IsPrint(r)
	}
}

type keyboardOutcome int

const (
	keyboardEditing keyboardOutcome = iota
	keyboardDone
	keyboardCancelled
)

// keyboardModel is the on-screen keyboard without any drawing, so that
// navigation and editing can be tested on their own.
type keyboardModel struct {
	mode     keyboardMode
	layouts  []keyLayout
	layout   int
	shift    bool
	row, col int
	value    []rune
	maxLen   int
}

func newKeyboardModel(mode keyboardMode, value string, maxLen int) *keyboardModel {
	return &keyboardModel{
		mode:    mode,
		layouts: mode.layouts(),
		value:   []rune(value),
		maxLen:  maxLen,
	}
}

func (k *keyboardModel) current() keyLayout {
	return k.layouts[k.layout]
}

func (k *keyboardModel) rowLen(row int) int {
	return utf8.RuneCountInString(k.current().rows[row])
}

// selected returns the key under the cursor with shift applied.
func (k *keyboardModel) selected() rune {
	r := []rune(k.current().rows[k.row])[k.col]
	if k.shift {
		r = unicode.ToUpper(r)
	}
	return r
}

func (k *keyboardModel) String() string {
	return string(k.value)
}

func (k *keyboardModel) insert(r rune) {
	if !k.mode.accepts(r) {
		return
	}
	if k.maxLen > 0 && len(k.value) >= k.maxLen {
		return
	}
	k.value = append(k.value, r)
}

func (k *keyboardModel) move(dRow, dCol int) {
	rows := len(k.current().rows)
	if dRow != 0 {
		k.row = (k.row + dRow + rows) % rows
		k.col = min(k.col, k.rowLen(k.row)-1)
	}
	if dCol != 0 {
		n := k.rowLen(k.row)
		k.col = (k.col + dCol + n) % n
	}
}

func (k *keyboardModel) nextLayout() {
	if len(k.layouts) < 2 {
		return
	}
	k.layout = (k.layout + 1) % len(k.layouts)
	k.row = min(k.row, len(k.current().rows)-1)
	k.col = min(k.col, k.rowLen(k.row)-1)
}

// press applies one button and reports whether editing is over. B on an
// empty value commits it; Menu leaves the original value untouched.
func (k *keyboardModel) press(b constants.VirtualButton) keyboardOutcome {
	switch b {
	case constants.VirtualButtonUp:
		k.move(-1, 0)
	case constants.VirtualButtonDown:
		k.move(1, 0)
	case constants.VirtualButtonLeft:
		k.move(0, -1)
	case constants.VirtualButtonRight:
		k.move(0, 1)
	case constants.VirtualButtonA:
		k.insert(k.selected())
	case constants.VirtualButtonB:
		if len(k.value) == 0 {
			return keyboardDone
		}
		k.value = k.value[:len(k.value)-1]
	case constants.VirtualButtonX:
		k.nextLayout()
	case constants.VirtualButtonY:
		k.shift = !k.shift
	case constants.VirtualButtonStart:
		return keyboardDone
	case constants.VirtualButtonMenu:
		return keyboardCancelled
	}
	return keyboardEditing
}

// typed inserts text from a physical keyboard.
func (k *keyboardModel) typed(s string) {
	for _, r := range s {
		k.insert(r)
	}
}

// keyboardScreen edits a single value.
type keyboardScreen struct {
	model   *keyboardModel
	label   string
	secret  bool
	outcome keyboardOutcome
}

func (s *keyboardScreen) handle(in inputEvent) bool {
	s.outcome = s.model.press(in.button)
	return s.outcome != keyboardEditing
}

func (s *keyboardScreen) typed(text string) {
	s.model.typed(text)
}

func (s *keyboardScreen) render(u *UI) {
	margin := u.margin()
	y := margin

	y += u.drawText(u.fonts.medium, s.label, margin, y, u.theme.HintColor, constants.TextAlignLeft) + margin/4

	value := s.model.String()
	if s.secret {
		value = strings.Repeat("•", len(s.model.value))
	}
	fieldHeight := int32(u.fonts.large.Height()) + margin/2
	field := sdl.Rect{X: margin, Y: y, W: u.win.width - 2*margin, H: fieldHeight}
	u.fillRect(field, u.theme.SurfaceColor)
	u.outlineRect(field, u.theme.AccentColor, 2)
	u.drawText(u.fonts.large, value+"_", field.X+margin/4, field.Y+margin/4, u.theme.TextColor, constants.TextAlignLeft)
	y += fieldHeight + margin/2

	s.renderKeys(u, y)

	hints := []hint{
		{button: "A", label: u.t.T(i18n.ActionSelect)},
		{button: "B", label: u.t.T(i18n.KeyboardErase)},
	}
	if len(s.model.layouts) > 1 {
		hints = append(hints, hint{button: "X", label: u.t.T(i18n.KeyboardLayout) + " " + s.model.current().name})
		hints = append(hints, hint{button: "Y", label: u.t.T(i18n.KeyboardShift)})
	}
	hints = append(hints, hint{button: "START", label: u.t.T(i18n.ActionDone)})
	u.drawFooter(hints)
}

func (s *keyboardScreen) renderKeys(u *UI, top int32) {
	margin := u.margin()
	rows := s.model.current().rows
	footer := int32(u.fonts.small.Height()) * 3
	available := u.win.height - top - footer

	widest := 0
	for _, row := range rows {
		widest = max(widest, utf8.RuneCountInString(row))
	}
	gap := margin / 8
	keyW := (u.win.width - 2*margin - int32(widest-1)*gap) / int32(widest)
	keyH := min(keyW, (available-int32(len(rows)-1)*gap)/int32(len(rows)))

	for r, row := range rows {
		keys := []rune(row)
		y := top + int32(r)*(keyH+gap)

		if len(keys) == 1 && keys[0] == ' ' {
			rect := sdl.Rect{X: margin, Y: y, W: u.win.width - 2*margin, H: keyH}
			u.drawButton(rect, "␣", s.model.row == r, true)
			continue
		}

		rowWidth := int32(len(keys))*keyW + int32(len(keys)-1)*gap
		x := (u.win.width - rowWidth) / 2
		for c, key := range keys {
			if s.model.shift {
				key = unicode.ToUpper(key)
			}
			rect := sdl.Rect{X: x + int32(c)*(keyW+gap), Y: y, W: keyW, H: keyH}
			u.drawButton(rect, string(key), s.model.row == r && s.model.col == c, true)
		}
	}
}
