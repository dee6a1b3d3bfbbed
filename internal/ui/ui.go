// Package ui is the SDL presentation layer. It draws every screen of the
// onboarding flow and maps controller and keyboard input to user actions.
//
// All methods must be called from the goroutine that called Init, which must
// be locked to its OS thread.
package ui

import (
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"go.uber.org/atomic"

	"github.com/drivenext/drivenext/internal/i18n"
)

const (
	textCacheSize  = 256
	imageCacheSize = 16
)

// Options configures Init.
type Options struct {
	Window          WindowOptions
	FontPath        string
	IconFontPath    string // Optional Material Design Icons font
	AccentColor     uint32
	BackgroundColor uint32
	Translator      *i18n.Translator
	Logger          *slog.Logger
}

// UI owns the window and everything drawn into it.
type UI struct {
	win    *window
	fonts  *fonts
	theme  Theme
	t      *i18n.Translator
	logger *slog.Logger

	textCache    *lruCache[textTexture]
	imageCache   *lruCache[*sdl.Texture]
	brokenAssets map[string]bool

	repeat    *repeater
	lastInput time.Time
	notice    notice

	controllers map[int]*sdl.GameController
	shutdown    *atomic.Bool
}

// Init starts SDL and opens the window.
func Init(opts Options) (*UI, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return nil, infraError("sdl_init", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, infraError("ttf_init", err)
	}

	win, err := openWindow(opts.Window)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}

	f, err := openFonts(opts.FontPath, opts.IconFontPath, win.height)
	if err != nil {
		win.close()
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}

	u := &UI{
		win:          win,
		fonts:        f,
		theme:        NewTheme(opts.AccentColor, opts.BackgroundColor),
		t:            opts.Translator,
		logger:       opts.Logger,
		textCache:    newLRUCache(textCacheSize, func(t textTexture) { t.texture.Destroy() }),
		imageCache:   newLRUCache(imageCacheSize, func(t *sdl.Texture) { t.Destroy() }),
		brokenAssets: make(map[string]bool),
		repeat:       newRepeater(),
		controllers:  make(map[int]*sdl.GameController),
		shutdown:     atomic.NewBool(false),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		u.openController(i)
	}

	u.logger.Debug("UI initialized",
		"width", win.width,
		"height", win.height,
		"vsync", win.hasVSync,
		"controllers", len(u.controllers))
	return u, nil
}

func (u *UI) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	if _, ok := u.controllers[index]; ok {
		return
	}
	c := sdl.GameControllerOpen(index)
	if c == nil {
		u.logger.Warn("Failed to open controller", "index", index, "error", sdl.GetError())
		return
	}
	u.controllers[index] = c
	u.logger.Debug("Controller connected", "index", index, "name", c.Name())
}

// Shutdown makes the current and every later screen return ErrShutdown.
// It is safe to call from any goroutine.
func (u *UI) Shutdown() {
	if u.shutdown.CompareAndSwap(false, true) {
		u.logger.Info("Shutdown requested")
	}
}

// ShuttingDown reports whether Shutdown was called.
func (u *UI) ShuttingDown() bool {
	return u.shutdown.Load()
}

// Close releases every SDL resource.
func (u *UI) Close() {
	u.textCache.Purge()
	u.imageCache.Purge()
	for _, c := range u.controllers {
		c.Close()
	}
	u.fonts.close()
	u.win.close()
	ttf.Quit()
	sdl.Quit()
}

func (u *UI) clear() {
	bg := u.theme.BackgroundColor
	u.win.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	u.win.renderer.Clear()
}

// margin is the outer padding of every screen.
func (u *UI) margin() int32 {
	return u.win.width / 16
}
