// Package app drives the DriveNext client: it registers every screen with the
// router, routes each screen result through the transition table and applies
// the session mutations the flows imply.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/drivenext/drivenext/internal/auth"
	"github.com/drivenext/drivenext/internal/capture"
	"github.com/drivenext/drivenext/internal/flow"
	"github.com/drivenext/drivenext/internal/i18n"
	"github.com/drivenext/drivenext/internal/onboarding"
	"github.com/drivenext/drivenext/internal/registration"
	"github.com/drivenext/drivenext/internal/session"
	"github.com/drivenext/drivenext/internal/startup"
	"github.com/drivenext/drivenext/pkg/router"
)

// Options are the collaborators of an App. Camera may be nil.
type Options struct {
	Presenter   Presenter
	Store       session.Store
	Startup     *startup.Router
	Auth        *auth.Service
	Wizard      *registration.Wizard
	Library     *capture.Library
	Camera      capture.Source
	Gallery     capture.Source
	SplashDelay time.Duration
	Logger      *slog.Logger
}

type App struct {
	presenter   Presenter
	store       session.Store
	startup     *startup.Router
	auth        *auth.Service
	wizard      *registration.Wizard
	library     *capture.Library
	photos      capture.Source
	slides      []onboarding.Slide
	splashDelay time.Duration
	logger      *slog.Logger

	pendingNotice string
}

func New(opts Options) *App {
	a := &App{
		presenter:   opts.Presenter,
		store:       opts.Store,
		startup:     opts.Startup,
		auth:        opts.Auth,
		wizard:      opts.Wizard,
		library:     opts.Library,
		slides:      onboarding.Slides(),
		splashDelay: opts.SplashDelay,
		logger:      opts.Logger,
	}

	a.photos = opts.Gallery
	if opts.Camera != nil {
		a.photos = capture.WithFallback(opts.Camera, opts.Gallery, a.cameraFailed)
	}
	return a
}

func screen(s flow.State) router.Screen {
	return router.Screen(s)
}

// Run shows the splash screen, makes the cold-start decision and runs until
// the user leaves the last screen or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	r := router.New()

	r.Register(screen(flow.ColdStart), flow.ColdStart.String(), a.splashScreen)
	r.Register(screen(flow.Onboarding), flow.Onboarding.String(), a.onboardingScreen)
	r.Register(screen(flow.Welcome), flow.Welcome.String(), a.welcomeScreen)
	r.Register(screen(flow.Login), flow.Login.String(), a.loginScreen)
	r.Register(screen(flow.RegisterStep1), flow.RegisterStep1.String(), a.credentialsScreen)
	r.Register(screen(flow.RegisterStep2), flow.RegisterStep2.String(), a.personalDataScreen)
	r.Register(screen(flow.RegisterStep3), flow.RegisterStep3.String(), a.documentsScreen)
	r.Register(screen(flow.RegistrationSuccess), flow.RegistrationSuccess.String(), a.successScreen)
	r.Register(screen(flow.Main), flow.Main.String(), a.mainScreen)
	r.Register(screen(flow.NoConnectivity), flow.NoConnectivity.String(), a.noConnectivityScreen)

	r.OnEnter(func(s router.Screen, _ any) {
		a.logger.Debug("Entering screen", "screen", r.Name(s), "history", r.Stack().Len())
	})
	r.OnTransition(a.transition)

	err := r.Run(ctx, screen(flow.ColdStart), nil)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// outcome is what every screen function returns. input is the screen's own
// input updated with what the user entered; it is pushed for Back or reused
// when the event has no transition. next is the input of the target screen.
type outcome struct {
	event    flow.Event
	decision startup.Decision
	input    any
	next     any
}

func (a *App) transition(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
	out := result.(outcome)
	state := flow.State(from)

	t, ok := flow.Next(state, out.event)
	if !ok {
		a.logger.Warn("No transition for event", "state", state.String(), "event", out.event.String())
		return from, out.input
	}

	switch {
	case t.Back:
		entry := stack.Pop()
		if entry == nil {
			a.logger.Info("History exhausted, exiting", "state", state.String())
			return router.ScreenExit, nil
		}
		return entry.Screen, carryDraft(entry.Input, out.input)

	case t.Dynamic:
		return a.route(out.decision, stack)
	}

	if t.ClearHistory {
		stack.Clear()
	} else if t.To != flow.NoConnectivity {
		stack.Push(from, out.input, nil)
	}

	a.logger.Debug("Transition", "from", state.String(), "event", out.event.String(), "to", t.To.String())
	return screen(t.To), out.next
}

// route turns a startup decision into a screen.
func (a *App) route(d startup.Decision, stack *router.Stack) (router.Screen, any) {
	a.logger.Info("Routing", "decision", d.String())

	switch d.Kind {
	case startup.ShowOnboarding:
		stack.Clear()
		return screen(flow.Onboarding), onboardingInput{}
	case startup.ShowWelcome:
		stack.Clear()
		return screen(flow.Welcome), nil
	case startup.ShowMain:
		stack.Clear()
		return screen(flow.Main), nil
	case startup.ShowNoConnectivity:
		return screen(flow.NoConnectivity), noConnectivityInput{origin: d.Origin}
	case startup.ResumeAt:
		switch o := d.Origin.(type) {
		case startup.Login:
			return screen(flow.Login), loginInput{form: o.Form}
		case startup.Registration:
			return stepScreen(o.Step), stepInput{draft: o.Draft}
		}
	}

	a.logger.Error("Unroutable decision, re-running cold start decision", "decision", d.String())
	return a.route(a.startup.Decide(startup.ColdStart{}), stack)
}

func stepScreen(step int) router.Screen {
	switch step {
	case 2:
		return screen(flow.RegisterStep2)
	case 3:
		return screen(flow.RegisterStep3)
	default:
		return screen(flow.RegisterStep1)
	}
}

// carryDraft keeps what was typed on a later wizard step when going back to
// an earlier one.
func carryDraft(popped, current any) any {
	in, ok := popped.(stepInput)
	if !ok {
		return popped
	}
	if cur, ok := current.(stepInput); ok {
		in.draft = cur.draft
	}
	return in
}

func (a *App) cameraFailed(kind capture.PhotoKind, err error) {
	a.logger.Warn("Camera unavailable, falling back to gallery", "kind", kind.String(), "error", err)
	a.pendingNotice = i18n.NoticeCameraFallback
}
