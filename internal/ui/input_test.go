package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/drivenext/drivenext/internal/constants"
)

func TestKeyButton(t *testing.T) {
	assert.Equal(t, constants.VirtualButtonA, keyButton(sdl.K_RETURN))
	assert.Equal(t, constants.VirtualButtonB, keyButton(sdl.K_ESCAPE))
	assert.Equal(t, constants.VirtualButtonB, keyButton(sdl.K_BACKSPACE))
	assert.Equal(t, constants.VirtualButtonStart, keyButton(sdl.K_F2))
	assert.Equal(t, constants.VirtualButtonUnassigned, keyButton(sdl.K_q))
}

func TestControllerButtonSwapsFaceButtons(t *testing.T) {
	assert.Equal(t, constants.VirtualButtonA, controllerButton(sdl.CONTROLLER_BUTTON_B))
	assert.Equal(t, constants.VirtualButtonB, controllerButton(sdl.CONTROLLER_BUTTON_A))
	assert.Equal(t, constants.VirtualButtonUp, controllerButton(sdl.CONTROLLER_BUTTON_DPAD_UP))
}

func TestTranslateIgnoresKeyRepeat(t *testing.T) {
	ev := &sdl.KeyboardEvent{State: sdl.PRESSED, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_DOWN}}
	_, ok := translate(ev)
	assert.False(t, ok)

	ev.Repeat = 0
	in, ok := translate(ev)
	assert.True(t, ok)
	assert.Equal(t, inputEvent{button: constants.VirtualButtonDown, pressed: true}, in)
}

func TestRepeater(t *testing.T) {
	r := newRepeater()
	start := time.Unix(0, 0)

	r.Track(inputEvent{button: constants.VirtualButtonDown, pressed: true}, start)
	assert.Equal(t, DirectionNone, r.Update(start.Add(100*time.Millisecond)))
	assert.Equal(t, DirectionDown, r.Update(start.Add(300*time.Millisecond)))
	assert.Equal(t, DirectionNone, r.Update(start.Add(330*time.Millisecond)))
	assert.Equal(t, DirectionDown, r.Update(start.Add(360*time.Millisecond)))

	r.Track(inputEvent{button: constants.VirtualButtonDown, pressed: false}, start.Add(400*time.Millisecond))
	assert.Equal(t, DirectionNone, r.Update(start.Add(time.Second)))
}

func TestRepeaterIgnoresFaceButtons(t *testing.T) {
	r := newRepeater()
	start := time.Unix(0, 0)

	r.Track(inputEvent{button: constants.VirtualButtonA, pressed: true}, start)
	assert.Equal(t, DirectionNone, r.Update(start.Add(time.Second)))
}
