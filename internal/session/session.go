// Package session persists the flags that gate navigation on every cold start:
// the auth token, the first-launch flag and the onboarding-completed flag.
//
// The store is an explicit service handed to whichever component needs it.
// There is no process-wide instance.
package session

import (
	"log/slog"
)

// Keys of the session namespace.
const (
	KeyAccessToken         = "access_token"
	KeyIsFirstLaunch       = "is_first_launch"
	KeyOnboardingCompleted = "onboarding_completed"
)

// Store is the narrow read/write surface over the session flags.
type Store interface {
	AuthToken() (string, bool)
	SetAuthToken(token string)
	IsAuthenticated() bool
	ClearAuthToken()

	OnboardingCompleted() bool
	SetOnboardingCompleted(completed bool)

	IsFirstLaunch() bool
	MarkLaunched()
}

// Manager implements Store over a Namespace.
type Manager struct {
	ns     Namespace
	logger *slog.Logger
}

// New returns a Manager over ns.
func New(ns Namespace, logger *slog.Logger) *Manager {
	return &Manager{ns: ns, logger: logger}
}

// Open returns a Manager persisted in the TOML document at path.
func Open(path string, logger *slog.Logger) (*Manager, error) {
	f, err := OpenFile(path, logger)
	if err != nil {
		return nil, err
	}
	return New(f, logger), nil
}

// InMemory returns a Manager that keeps flags for the life of the process only.
func InMemory(logger *slog.Logger) *Manager {
	return New(NewMemory(), logger)
}

// AuthToken returns the stored token. Absence is a normal state.
func (m *Manager) AuthToken() (string, bool) {
	return m.ns.String(KeyAccessToken)
}

// SetAuthToken overwrites the token.
func (m *Manager) SetAuthToken(token string) {
	m.ns.Set(KeyAccessToken, token)
	m.logger.Debug("Auth token saved")
}

// IsAuthenticated reports whether a non-empty token is stored. There is no
// expiry and no server validation.
func (m *Manager) IsAuthenticated() bool {
	token, ok := m.AuthToken()
	return ok && token != ""
}

// ClearAuthToken removes the token (logout).
func (m *Manager) ClearAuthToken() {
	m.ns.Remove(KeyAccessToken)
	m.logger.Debug("Auth token cleared")
}

// OnboardingCompleted reports whether the user finished or skipped onboarding.
func (m *Manager) OnboardingCompleted() bool {
	return m.ns.Bool(KeyOnboardingCompleted, false)
}

// SetOnboardingCompleted records onboarding completion. The flag is
// monotonic: once true, a request to reset it is ignored.
func (m *Manager) SetOnboardingCompleted(completed bool) {
	if !completed && m.OnboardingCompleted() {
		m.logger.Warn("Ignoring attempt to reset onboarding completion")
		return
	}
	m.ns.Set(KeyOnboardingCompleted, completed)
	m.logger.Debug("Onboarding completion saved", "completed", completed)
}

// IsFirstLaunch reports whether the application has never been started before.
func (m *Manager) IsFirstLaunch() bool {
	return m.ns.Bool(KeyIsFirstLaunch, true)
}

// MarkLaunched records that the application has been started before.
func (m *Manager) MarkLaunched() {
	if !m.IsFirstLaunch() {
		return
	}
	m.ns.Set(KeyIsFirstLaunch, false)
}
