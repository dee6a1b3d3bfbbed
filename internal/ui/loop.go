package ui

import (
	"context"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/drivenext/drivenext/internal/constants"
)

// screen is one interactive view. handle returns true once the screen is
// finished; the caller reads the outcome from the screen itself.
type screen interface {
	handle(in inputEvent) bool
	render(u *UI)
}

// ticker is a screen that can also finish on its own.
type ticker interface {
	tick(now time.Time) bool
}

// textReceiver is a screen that accepts typed text from a physical keyboard.
type textReceiver interface {
	typed(s string)
}

// run drives s until it finishes, ctx is done or shutdown is requested.
func (u *UI) run(ctx context.Context, s screen) error {
	u.repeat.Reset()

	receiver, typing := s.(textReceiver)
	if typing {
		sdl.StartTextInput()
		defer sdl.StopTextInput()
	}
	tick, ticking := s.(ticker)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if u.shutdown.Load() {
			return ErrShutdown
		}

		now := time.Now()
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				u.Shutdown()
				return ErrShutdown

			case *sdl.ControllerDeviceEvent:
				if e.Type == sdl.CONTROLLERDEVICEADDED {
					u.openController(int(e.Which))
				}

			case *sdl.TextInputEvent:
				if typing {
					receiver.typed(e.GetText())
				}

			default:
				in, ok := translate(event)
				if !ok {
					continue
				}
				u.repeat.Track(in, now)
				if !in.pressed {
					continue
				}
				if now.Sub(u.lastInput) < constants.DefaultInputDelay {
					continue
				}
				u.lastInput = now
				if s.handle(in) {
					return nil
				}
			}
		}

		if dir := u.repeat.Update(now); dir != DirectionNone {
			if s.handle(inputEvent{button: dir.VirtualButton(), pressed: true}) {
				return nil
			}
		}
		if ticking && tick.tick(now) {
			return nil
		}

		u.clear()
		s.render(u)
		u.drawNotice(now)
		u.win.present()
	}
}
