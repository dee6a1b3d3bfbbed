// Package startup decides which screen the application shows on a cold start
// and where it continues after connectivity returns.
package startup

import (
	"context"
	"log/slog"
	"time"

	"github.com/drivenext/drivenext/internal/connectivity"
)

// DecisionKind enumerates the routing outcomes.
type DecisionKind int

const (
	ShowOnboarding DecisionKind = iota + 1
	ShowWelcome
	ShowMain
	ShowNoConnectivity
	// ResumeAt returns to a mid-flow origin after connectivity is restored.
	ResumeAt
)

func (k DecisionKind) String() string {
	switch k {
	case ShowOnboarding:
		return "show_onboarding"
	case ShowWelcome:
		return "show_welcome"
	case ShowMain:
		return "show_main"
	case ShowNoConnectivity:
		return "show_no_connectivity"
	case ResumeAt:
		return "resume_at"
	default:
		return "unknown"
	}
}

// Decision is the outcome of a routing decision. Origin is set only for
// ShowNoConnectivity and ResumeAt.
type Decision struct {
	Kind   DecisionKind
	Origin Origin
}

func (d Decision) String() string {
	if d.Origin == nil {
		return d.Kind.String()
	}
	return d.Kind.String() + "(" + d.Origin.String() + ")"
}

// Flags is the read side of the session store the decision needs.
type Flags interface {
	OnboardingCompleted() bool
	IsAuthenticated() bool
}

// Router maps connectivity and session flags to a Decision. It never
// mutates the flags.
type Router struct {
	flags           Flags
	checker         connectivity.Checker
	forceOnboarding bool
	logger          *slog.Logger
}

// New returns a Router. forceOnboarding shows onboarding on every cold
// start regardless of the stored flags and must only be set by an explicit
// debug switch.
func New(flags Flags, checker connectivity.Checker, forceOnboarding bool, logger *slog.Logger) *Router {
	if forceOnboarding {
		logger.Warn("Force onboarding is enabled; onboarding will be shown on every start")
	}
	return &Router{
		flags:           flags,
		checker:         connectivity.FailClosed(checker, logger),
		forceOnboarding: forceOnboarding,
		logger:          logger,
	}
}

// Decide runs the full decision. The first matching rule wins:
// no connectivity, forced onboarding, onboarding not completed,
// authenticated, and finally welcome.
func (r *Router) Decide(origin Origin) Decision {
	if !r.checker.IsAvailable() {
		return r.offline(origin)
	}

	var d Decision
	switch {
	case r.forceOnboarding:
		r.logger.Warn("Showing onboarding because force onboarding is enabled")
		d = Decision{Kind: ShowOnboarding}
	case !r.flags.OnboardingCompleted():
		d = Decision{Kind: ShowOnboarding}
	case r.flags.IsAuthenticated():
		d = Decision{Kind: ShowMain}
	default:
		d = Decision{Kind: ShowWelcome}
	}

	r.logger.Debug("Routing decision", "origin", origin.String(), "decision", d.String())
	return d
}

// Online is the gate a mid-flow screen runs before a simulated network
// action. It reports false with a ShowNoConnectivity decision when offline.
func (r *Router) Online(origin Origin) (Decision, bool) {
	if !r.checker.IsAvailable() {
		return r.offline(origin), false
	}
	return Decision{}, true
}

// Resume is the retry path of the no-connectivity screen. Only connectivity
// is checked again. A cold-start origin gets the full decision; any other
// origin is resumed directly with the state it carries.
func (r *Router) Resume(origin Origin) Decision {
	if !r.checker.IsAvailable() {
		return r.offline(origin)
	}
	if _, ok := origin.(ColdStart); ok {
		return r.Decide(origin)
	}
	r.logger.Info("Connectivity restored", "origin", origin.String())
	return Decision{Kind: ResumeAt, Origin: origin}
}

// Splash waits delay and then makes the cold-start decision. Only ctx
// cancellation interrupts the wait.
func (r *Router) Splash(ctx context.Context, delay time.Duration) (Decision, error) {
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return Decision{}, ctx.Err()
		case <-timer.C:
		}
	}
	return r.Decide(ColdStart{}), nil
}

func (r *Router) offline(origin Origin) Decision {
	r.logger.Info("No connectivity", "origin", origin.String())
	return Decision{Kind: ShowNoConnectivity, Origin: origin}
}
