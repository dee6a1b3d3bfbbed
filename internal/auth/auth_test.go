package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/drivenext/drivenext/internal/form"
	"github.com/drivenext/drivenext/internal/logging"
)

type recordingStore struct {
	tokens []string
}

func (r *recordingStore) SetAuthToken(token string) {
	r.tokens = append(r.tokens, token)
}

var fixedNow = func() time.Time { return time.UnixMilli(1717171717171) }

func newService(t *testing.T) (*Service, *recordingStore) {
	t.Helper()
	dir, err := NewDirectory(DemoAccounts(), bcrypt.MinCost)
	require.NoError(t, err)
	store := &recordingStore{}
	return NewService(dir, Tokens{Now: fixedNow}, store, logging.Discard()), store
}

func TestLoginFormReady(t *testing.T) {
	assert.False(t, LoginForm{}.Ready())
	assert.False(t, LoginForm{Email: "user@example.com", Password: "   "}.Ready())
	assert.True(t, LoginForm{Email: "x", Password: "y"}.Ready())
}

func TestLoginFormValidate(t *testing.T) {
	tests := []struct {
		name   string
		form   LoginForm
		reason form.Reason
	}{
		{"empty", LoginForm{}, form.ReasonRequired},
		{"bad email", LoginForm{Email: "user@", Password: "password123"}, form.ReasonInvalidEmail},
		{"short password", LoginForm{Email: "user@example.com", Password: "12345"}, form.ReasonPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fieldErr *form.FieldError
			require.ErrorAs(t, tt.form.Validate(), &fieldErr)
			assert.Equal(t, tt.reason, fieldErr.Reason)
		})
	}

	assert.NoError(t, LoginForm{Email: " user@example.com ", Password: "password123"}.Validate())
}

func TestLogin(t *testing.T) {
	t.Run("success stores a user token", func(t *testing.T) {
		svc, store := newService(t)

		require.NoError(t, svc.Login(LoginForm{Email: "user@example.com", Password: "password123"}))
		assert.Equal(t, []string{"user_token_1717171717171"}, store.tokens)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, store := newService(t)

		err := svc.Login(LoginForm{Email: "nobody@example.com", Password: "password123"})
		assert.True(t, errors.Is(err, ErrEmailNotFound))
		assert.Empty(t, store.tokens)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, store := newService(t)

		err := svc.Login(LoginForm{Email: "test@example.com", Password: "654321"})
		assert.ErrorIs(t, err, ErrWrongPassword)
		assert.Empty(t, store.tokens)
	})

	t.Run("invalid form never reaches the directory", func(t *testing.T) {
		svc, store := newService(t)

		err := svc.Login(LoginForm{Email: "admin@example.com", Password: "adm"})
		var fieldErr *form.FieldError
		assert.ErrorAs(t, err, &fieldErr)
		assert.Empty(t, store.tokens)
	})
}

func TestAlternativeLoginAndRecovery(t *testing.T) {
	svc, store := newService(t)

	svc.AlternativeLogin()
	assert.Equal(t, []string{"google_token_1717171717171"}, store.tokens)
	assert.ErrorIs(t, svc.ForgotPassword(), ErrRecoveryUnavailable)
}

func TestTokensIssue(t *testing.T) {
	assert.Equal(t, "complete_registration_token_1717171717171", Tokens{Now: fixedNow}.Issue(PrefixRegistration))
	assert.Regexp(t, `^user_token_\d{13}$`, Tokens{}.Issue(PrefixUser))
}
