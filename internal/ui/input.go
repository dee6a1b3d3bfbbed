package ui

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/drivenext/drivenext/internal/constants"
)

// inputEvent is a physical input mapped to a virtual button.
type inputEvent struct {
	button  constants.VirtualButton
	pressed bool
}

// keyButton maps desktop keys, used in development mode.
func keyButton(sym sdl.Keycode) constants.VirtualButton {
	switch sym {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_BACKSPACE:
		return constants.VirtualButtonB
	case sdl.K_TAB:
		return constants.VirtualButtonX
	case sdl.K_LCTRL, sdl.K_RCTRL:
		return constants.VirtualButtonY
	case sdl.K_KP_ENTER, sdl.K_F2:
		return constants.VirtualButtonStart
	case sdl.K_LSHIFT, sdl.K_RSHIFT:
		return constants.VirtualButtonSelect
	case sdl.K_F1:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

// controllerButton maps a game controller with the handheld convention of
// the right face button confirming and the bottom one going back.
func controllerButton(b sdl.GameControllerButton) constants.VirtualButton {
	switch b {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_Y:
		return constants.VirtualButtonX
	case sdl.CONTROLLER_BUTTON_X:
		return constants.VirtualButtonY
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

// translate maps an SDL event to a virtual button event.
func translate(event sdl.Event) (inputEvent, bool) {
	var in inputEvent

	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return in, false
		}
		in = inputEvent{button: keyButton(e.Keysym.Sym), pressed: e.State == sdl.PRESSED}
	case *sdl.ControllerButtonEvent:
		in = inputEvent{button: controllerButton(sdl.GameControllerButton(e.Button)), pressed: e.State == sdl.PRESSED}
	default:
		return in, false
	}

	return in, in.button != constants.VirtualButtonUnassigned
}

// Direction is a held d-pad direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) VirtualButton() constants.VirtualButton {
	switch d {
	case DirectionUp:
		return constants.VirtualButtonUp
	case DirectionDown:
		return constants.VirtualButtonDown
	case DirectionLeft:
		return constants.VirtualButtonLeft
	case DirectionRight:
		return constants.VirtualButtonRight
	default:
		return constants.VirtualButtonUnassigned
	}
}

// repeater turns a held direction into repeated presses: the first after
// delay, then one every interval.
type repeater struct {
	held        Direction
	since       time.Time
	delay       time.Duration
	interval    time.Duration
	hasRepeated bool
}

func newRepeater() *repeater {
	return &repeater{delay: 300 * time.Millisecond, interval: 60 * time.Millisecond}
}

func directionOf(b constants.VirtualButton) Direction {
	switch b {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	case constants.VirtualButtonLeft:
		return DirectionLeft
	case constants.VirtualButtonRight:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// Track records a press or release. Non-directional buttons are ignored.
func (r *repeater) Track(in inputEvent, now time.Time) {
	dir := directionOf(in.button)
	if dir == DirectionNone {
		return
	}
	switch {
	case in.pressed:
		r.held, r.since, r.hasRepeated = dir, now, false
	case r.held == dir:
		r.Reset()
	}
}

// Update returns the direction to repeat now, or DirectionNone.
func (r *repeater) Update(now time.Time) Direction {
	if r.held == DirectionNone {
		return DirectionNone
	}

	threshold := r.interval
	if !r.hasRepeated {
		threshold = r.delay
	}
	if now.Sub(r.since) < threshold {
		return DirectionNone
	}

	r.since = now
	r.hasRepeated = true
	return r.held
}

func (r *repeater) Reset() {
	r.held = DirectionNone
	r.hasRepeated = false
}
