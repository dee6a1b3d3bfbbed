// Command drivenext runs the DriveNext onboarding client: splash, onboarding,
// sign-in, three-step registration and the authenticated home screen.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"

	"github.com/drivenext/drivenext/internal/app"
	"github.com/drivenext/drivenext/internal/auth"
	"github.com/drivenext/drivenext/internal/capture"
	"github.com/drivenext/drivenext/internal/config"
	"github.com/drivenext/drivenext/internal/constants"
	"github.com/drivenext/drivenext/internal/connectivity"
	"github.com/drivenext/drivenext/internal/i18n"
	"github.com/drivenext/drivenext/internal/logging"
	"github.com/drivenext/drivenext/internal/registration"
	"github.com/drivenext/drivenext/internal/session"
	"github.com/drivenext/drivenext/internal/startup"
	"github.com/drivenext/drivenext/internal/ui"
)

func init() {
	// SDL must be driven from the thread that initialized it.
	runtime.LockOSThread()
}

func main() {
	var flags config.Flags
	flagSet := pflag.NewFlagSet("drivenext", pflag.ExitOnError)
	flags.AddFlags(flagSet)
	_ = flagSet.Parse(os.Args[1:])

	if err := run(&flags); err != nil {
		logging.Logger().Error("DriveNext exited with an error", "error", err)
		logging.Close()
		os.Exit(1)
	}
	logging.Close()
}

func run(flags *config.Flags) error {
	path := flags.ConfigPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	cfg, err := config.Load(path, flags)
	if err != nil {
		return err
	}

	logger := logging.Setup(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level})
	logger.Info("Starting DriveNext", "config", path, "data_dir", cfg.DataDir)

	store, staging, err := openStores(cfg, flags.Ephemeral, logger)
	if err != nil {
		return err
	}

	var checker connectivity.Checker = connectivity.NewInterfaces(logger)
	if cfg.Debug.Offline {
		logger.Warn("Connectivity forced off")
		checker = connectivity.NewToggle(false)
	}

	translator, err := i18n.New(i18n.Resolve(cfg.Locale), logger)
	if err != nil {
		return err
	}
	logger.Debug("Locale resolved", "language", translator.Tag().String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	presenter, err := ui.Init(ui.Options{
		Window: ui.WindowOptions{
			Title:      cfg.Window.Title,
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			Borderless: cfg.Window.Borderless,
		},
		FontPath:        cfg.Theme.FontPath,
		IconFontPath:    cfg.Theme.IconFontPath,
		AccentColor:     cfg.Theme.AccentColor,
		BackgroundColor: cfg.Theme.BackgroundColor,
		Translator:      translator,
		Logger:          logger,
	})
	if err != nil {
		return err
	}
	defer presenter.Close()

	if !constants.IsDevMode() && cfg.Power.DevicePath != "" {
		power := &ui.PowerButton{
			DevicePath:    cfg.Power.DevicePath,
			ShortPressMax: 2 * time.Second,
			OnPress:       presenter.Shutdown,
			Logger:        logger,
		}
		go func() {
			if err := power.Run(ctx); err != nil {
				logger.Error("Power button watcher stopped", "error", err)
			}
		}()
	}

	directory, err := auth.NewDirectory(auth.DemoAccounts(), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("build account directory: %w", err)
	}
	tokens := auth.Tokens{Now: time.Now}

	library := capture.NewLibrary(cfg.PhotoDir())
	var camera capture.Source
	if cfg.Capture.CameraCommand != "" {
		camera = capture.NewCamera(cfg.Capture.CameraCommand, library, logger)
	}

	a := app.New(app.Options{
		Presenter:   presenter,
		Store:       store,
		Startup:     startup.New(store, checker, cfg.Debug.ForceOnboarding, logger),
		Auth:        auth.NewService(directory, tokens, store, logger),
		Wizard:      registration.NewWizard(registration.NewStaging(staging), tokens, store, logger),
		Library:     library,
		Camera:      camera,
		Gallery:     capture.NewGallery(cfg.Capture.GalleryDir, presenter.ChoosePhoto, library),
		SplashDelay: cfg.SplashDelay,
		Logger:      logger,
	})

	err = a.Run(ctx)
	switch {
	case err == nil, errors.Is(err, ui.ErrShutdown):
		logger.Info("DriveNext stopped")
		return nil
	case ui.IsInfrastructureError(err):
		return fmt.Errorf("display failure: %w", err)
	default:
		return err
	}
}

// openStores returns the session store and the registration staging
// namespace, both in memory when ephemeral is set.
func openStores(cfg *config.Config, ephemeral bool, logger *slog.Logger) (*session.Manager, session.Namespace, error) {
	if ephemeral {
		logger.Warn("Session kept in memory only")
		return session.InMemory(logger), session.NewMemory(), nil
	}

	store, err := session.Open(cfg.SessionPath(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open session: %w", err)
	}
	staging, err := session.OpenFile(cfg.StagingPath(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open registration staging: %w", err)
	}
	return store, staging, nil
}
