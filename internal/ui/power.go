package ui

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/holoplot/go-evdev"
)

// PowerButton watches an evdev input device and reports short presses of
// the power key. Long presses are left to the system.
type PowerButton struct {
	DevicePath    string
	ShortPressMax time.Duration
	OnPress       func()
	Logger        *slog.Logger

	pressedAt time.Time
}

// Run reads events until ctx is done. A missing device is not an error:
// desktops have no power key.
func (p *PowerButton) Run(ctx context.Context) error {
	dev, err := evdev.Open(p.DevicePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
			p.Logger.Info("Power button unavailable", "device", p.DevicePath, "error", err)
			return nil
		}
		return infraError("open_power_device", err)
	}

	go func() {
		<-ctx.Done()
		dev.Close()
	}()

	p.Logger.Debug("Watching power button", "device", p.DevicePath)
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return infraError("read_power_device", err)
		}
		if p.handle(ev, time.Now()) {
			p.Logger.Info("Power button pressed")
			p.OnPress()
		}
	}
}

// handle reports whether ev completes a short press.
func (p *PowerButton) handle(ev *evdev.InputEvent, now time.Time) bool {
	if ev.Type != evdev.EV_KEY || ev.Code != evdev.KEY_POWER {
		return false
	}

	switch ev.Value {
	case 1:
		p.pressedAt = now
	case 0:
		if p.pressedAt.IsZero() {
			return false
		}
		held := now.Sub(p.pressedAt)
		p.pressedAt = time.Time{}
		return held <= p.ShortPressMax
	}
	return false
}
