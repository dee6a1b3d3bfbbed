// Package auth simulates sign-in against a local account directory. There is
// no server: a successful sign-in only writes a locally generated token into
// the session store.
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/drivenext/drivenext/internal/form"
)

var (
	// ErrEmailNotFound is returned when no account uses the email.
	ErrEmailNotFound = errors.New("auth: email not found")
	// ErrWrongPassword is returned when the password does not match.
	ErrWrongPassword = errors.New("auth: wrong password")
	// ErrRecoveryUnavailable is returned by password recovery, which is not built yet.
	ErrRecoveryUnavailable = errors.New("auth: password recovery is not available")
)

// Token prefixes. A token is "<prefix>_<unix millis>".
const (
	PrefixUser         = "user_token"
	PrefixAlternative  = "google_token"
	PrefixRegistration = "complete_registration_token"
)

// DemoAccounts are the accounts every build accepts.
func DemoAccounts() map[string]string {
	return map[string]string{
		"user@example.com":  "password123",
		"test@example.com":  "123456",
		"admin@example.com": "admin123",
	}
}

// Directory maps emails to bcrypt password hashes.
type Directory struct {
	hashes map[string][]byte
}

// NewDirectory hashes the given email→password pairs.
func NewDirectory(accounts map[string]string, cost int) (*Directory, error) {
	d := &Directory{hashes: make(map[string][]byte, len(accounts))}
	for email, password := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return nil, fmt.Errorf("auth: hash password for %s: %w", email, err)
		}
		d.hashes[email] = hash
	}
	return d, nil
}

// Verify checks a credential pair.
func (d *Directory) Verify(email, password string) error {
	hash, ok := d.hashes[email]
	if !ok {
		return ErrEmailNotFound
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// Tokens issues locally generated tokens.
type Tokens struct {
	Now func() time.Time
}

// Issue returns "<prefix>_<unix millis>".
func (t Tokens) Issue(prefix string) string {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	return fmt.Sprintf("%s_%d", prefix, now().UnixMilli())
}

// TokenWriter is the part of the session store sign-in needs.
type TokenWriter interface {
	SetAuthToken(token string)
}

// LoginForm is the login screen's field state.
type LoginForm struct {
	Email    string
	Password string
}

// Ready reports whether the submit action should be enabled.
func (f LoginForm) Ready() bool {
	return form.Clean(f.Email) != "" && form.Clean(f.Password) != ""
}

// Validate checks the form before credentials are looked up.
func (f LoginForm) Validate() error {
	email, password := form.Clean(f.Email), form.Clean(f.Password)
	switch {
	case email == "" || password == "":
		return form.Invalid("", form.ReasonRequired)
	case !form.ValidEmail(email):
		return form.Invalid("email", form.ReasonInvalidEmail)
	case len(password) < form.MinPasswordLength:
		return form.Invalid("password", form.ReasonPasswordTooShort)
	}
	return nil
}

// Service performs simulated sign-in.
type Service struct {
	directory *Directory
	tokens    Tokens
	store     TokenWriter
	logger    *slog.Logger
}

func NewService(directory *Directory, tokens Tokens, store TokenWriter, logger *slog.Logger) *Service {
	return &Service{directory: directory, tokens: tokens, store: store, logger: logger}
}

// Login validates the form, checks the credentials and stores a token.
// Validation failures are *form.FieldError; credential failures are
// ErrEmailNotFound or ErrWrongPassword. On failure nothing is stored.
func (s *Service) Login(f LoginForm) error {
	if err := f.Validate(); err != nil {
		return err
	}

	email, password := form.Clean(f.Email), form.Clean(f.Password)
	if err := s.directory.Verify(email, password); err != nil {
		s.logger.Info("Login rejected", "reason", err)
		return err
	}

	s.store.SetAuthToken(s.tokens.Issue(PrefixUser))
	s.logger.Info("Login succeeded")
	return nil
}

// AlternativeLogin is the one-tap sign-in button. It is simulated locally and
// always succeeds.
func (s *Service) AlternativeLogin() {
	s.store.SetAuthToken(s.tokens.Issue(PrefixAlternative))
	s.logger.Info("Alternative login succeeded")
}

// ForgotPassword always reports that recovery is unavailable.
func (s *Service) ForgotPassword() error {
	return ErrRecoveryUnavailable
}
