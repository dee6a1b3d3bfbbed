package ui

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/drivenext/drivenext/internal/constants"
)

// notice is a transient message drawn above the footer.
type notice struct {
	text    string
	expires time.Time
}

func (n notice) visible(now time.Time) bool {
	return n.text != "" && now.Before(n.expires)
}

// showNotice translates id and shows it for the default notice time. An
// empty id shows nothing.
func (u *UI) showNotice(id string) {
	if id == "" {
		return
	}
	text := u.t.T(id)
	d := constants.DefaultNoticeTime
	if len([]rune(text)) > 40 {
		d = constants.LongNoticeTime
	}
	u.notice = notice{text: text, expires: time.Now().Add(d)}
}

func (u *UI) drawNotice(now time.Time) {
	if !u.notice.visible(now) {
		return
	}

	font := u.fonts.small
	margin := u.margin()
	maxWidth := u.win.width - 4*margin
	lines := wrapLines(u.notice.text, maxWidth, func(s string) int32 { return textWidth(font, s) })

	lineHeight := int32(font.Height())
	padding := lineHeight / 2
	h := int32(len(lines))*lineHeight + 2*padding
	y := u.win.height - 3*lineHeight - h

	u.fillRect(sdl.Rect{X: margin, Y: y, W: u.win.width - 2*margin, H: h}, u.theme.NoticeColor)
	for i, line := range lines {
		u.drawText(font, line, u.win.width/2, y+padding+int32(i)*lineHeight, u.theme.TextColor, constants.TextAlignCenter)
	}
}
