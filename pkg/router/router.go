package router

import (
	"context"
	"fmt"
)

// Screen is a type-safe identifier for screens.
// Applications define their own Screen constants using iota.
type Screen int

// ScreenFunc runs a screen. The input and result types are screen-specific.
// A screen should return promptly once ctx is cancelled.
type ScreenFunc func(ctx context.Context, input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// It receives the screen that just completed, its result, and the navigation stack.
//
// Return (screen, input) to navigate to a new screen.
// Return stack.Pop() values to go back.
// Return (ScreenExit, nil) to exit the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// EnterFunc observes every screen the router is about to run.
type EnterFunc func(screen Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

// Router manages screen navigation. Screens are registered with their
// functions, and a single transition function handles all routing logic.
type Router struct {
	screens    map[Screen]ScreenFunc
	names      map[Screen]string
	transition TransitionFunc
	onEnter    EnterFunc
	stack      *Stack
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		names:   make(map[Screen]string),
		stack:   NewStack(),
	}
}

// Register adds a screen to the router under a name used in errors and by Name.
func (r *Router) Register(screen Screen, name string, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	r.names[screen] = name
	return r
}

// OnTransition sets the transition function that determines navigation flow.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// OnEnter sets a hook called before each screen runs.
func (r *Router) OnEnter(fn EnterFunc) *Router {
	r.onEnter = fn
	return r
}

// Name returns the registered name of screen.
func (r *Router) Name(screen Screen) string {
	if screen == ScreenExit {
		return "exit"
	}
	if name, ok := r.names[screen]; ok {
		return name
	}
	return fmt.Sprintf("screen(%d)", int(screen))
}

// Run starts the router at the given screen with the given input. It runs
// until the transition function returns ScreenExit, a screen fails, or ctx
// is cancelled.
func (r *Router) Run(ctx context.Context, start Screen, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	current := start
	currentInput := input

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: screen %s not registered", r.Name(current))
		}

		if r.onEnter != nil {
			r.onEnter(current, currentInput)
		}

		result, err := fn(ctx, currentInput)
		if err != nil {
			return fmt.Errorf("router: screen %s: %w", r.Name(current), err)
		}

		next, nextInput := r.transition(current, result, r.stack)
		if next == ScreenExit {
			return nil
		}

		current = next
		currentInput = nextInput
	}
}

// Stack returns the navigation stack.
func (r *Router) Stack() *Stack {
	return r.stack
}
