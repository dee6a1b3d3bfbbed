package ui

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/drivenext/drivenext/internal/constants"
)

// WindowOptions configures the SDL window. A zero Width or Height uses the
// current display mode.
type WindowOptions struct {
	Title      string
	Width      int32
	Height     int32
	Borderless bool
}

func (wo WindowOptions) flags() uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	return flags
}

type window struct {
	sdl      *sdl.Window
	renderer *sdl.Renderer
	width    int32
	height   int32
	hasVSync bool
	lastTick uint64
}

func openWindow(opts WindowOptions) (*window, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	width, height := opts.Width, opts.Height

	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
		if width == 0 || height == 0 {
			width, height = 1024, 768
		}
	}

	if width == 0 || height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			return nil, infraError("display_mode", err)
		}
		width, height = mode.W, mode.H
	}

	w, err := sdl.CreateWindow(opts.Title, x, y, width, height, opts.flags())
	if err != nil {
		return nil, infraError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		w.Destroy()
		return nil, infraError("create_renderer", err)
	}
	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &window{sdl: w, renderer: renderer, width: width, height: height, hasVSync: vsync}, nil
}

// present swaps buffers and holds roughly 60fps when VSync is unavailable.
func (w *window) present() {
	w.renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastTick; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastTick = sdl.GetTicks64()
	}
}

func (w *window) close() {
	w.renderer.Destroy()
	w.sdl.Destroy()
}
