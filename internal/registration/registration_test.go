package registration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivenext/drivenext/internal/auth"
	"github.com/drivenext/drivenext/internal/capture"
	"github.com/drivenext/drivenext/internal/form"
	"github.com/drivenext/drivenext/internal/logging"
	"github.com/drivenext/drivenext/internal/session"
)

var now = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func validCredentials() Credentials {
	return Credentials{Email: "new@example.com", Password: "secret1", Confirm: "secret1", TermsAccepted: true}
}

func validPersonal() PersonalData {
	return PersonalData{LastName: "Иванов", FirstName: "Иван", BirthDate: "15/03/1990", Gender: GenderMale}
}

func validDocuments() Documents {
	return Documents{
		LicenseNumber: "1234567890",
		IssueDate:     "01/02/2015",
		License:       capture.PhotoRef{Kind: capture.KindLicense, Path: "/photos/license.jpg"},
		Passport:      capture.PhotoRef{Kind: capture.KindPassport, Path: "/photos/passport.jpg"},
	}
}

func reasonOf(t *testing.T, err error) (string, form.Reason) {
	t.Helper()
	var fieldErr *form.FieldError
	require.ErrorAs(t, err, &fieldErr)
	return fieldErr.Field, fieldErr.Reason
}

func TestCredentialsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Credentials)
		field  string
		reason form.Reason
	}{
		{"empty email", func(c *Credentials) { c.Email = " " }, "email", form.ReasonRequired},
		{"bad email", func(c *Credentials) { c.Email = "new.example.com" }, "email", form.ReasonInvalidEmail},
		{"short password", func(c *Credentials) { c.Password, c.Confirm = "12345", "12345" }, "password", form.ReasonPasswordTooShort},
		{"empty confirm", func(c *Credentials) { c.Confirm = "" }, "confirm", form.ReasonRequired},
		{"mismatch", func(c *Credentials) { c.Confirm = "secret2" }, "confirm", form.ReasonPasswordMismatch},
		{"terms", func(c *Credentials) { c.TermsAccepted = false }, "terms", form.ReasonTermsNotAccepted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCredentials()
			tt.mutate(&c)
			field, reason := reasonOf(t, c.Validate())
			assert.Equal(t, tt.field, field)
			assert.Equal(t, tt.reason, reason)
		})
	}

	assert.NoError(t, validCredentials().Validate())
	assert.True(t, validCredentials().Ready())
}

func TestPersonalDataValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PersonalData)
		field  string
		reason form.Reason
	}{
		{"last name", func(p *PersonalData) { p.LastName = "" }, "last_name", form.ReasonRequired},
		{"first name", func(p *PersonalData) { p.FirstName = "  " }, "first_name", form.ReasonRequired},
		{"birth date format", func(p *PersonalData) { p.BirthDate = "1990-03-15" }, "birth_date", form.ReasonInvalidDate},
		{"birth date impossible", func(p *PersonalData) { p.BirthDate = "31/02/1990" }, "birth_date", form.ReasonInvalidDate},
		{"birth date future", func(p *PersonalData) { p.BirthDate = "02/06/2024" }, "birth_date", form.ReasonFutureDate},
		{"gender", func(p *PersonalData) { p.Gender = GenderUnset }, "gender", form.ReasonRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPersonal()
			tt.mutate(&p)
			field, reason := reasonOf(t, p.Validate(now))
			assert.Equal(t, tt.field, field)
			assert.Equal(t, tt.reason, reason)
		})
	}

	p := validPersonal()
	p.MiddleName = ""
	assert.NoError(t, p.Validate(now), "middle name is optional")
}

func TestDocumentsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Documents)
		field  string
		reason form.Reason
	}{
		{"number missing", func(d *Documents) { d.LicenseNumber = "" }, "license_number", form.ReasonRequired},
		{"number short", func(d *Documents) { d.LicenseNumber = "123456789" }, "license_number", form.ReasonLicenseLength},
		{"number long", func(d *Documents) { d.LicenseNumber = "12345678901" }, "license_number", form.ReasonLicenseLength},
		{"issue date", func(d *Documents) { d.IssueDate = "1/2/2015" }, "issue_date", form.ReasonInvalidDate},
		{"issue date future", func(d *Documents) { d.IssueDate = "01/01/2030" }, "issue_date", form.ReasonFutureDate},
		{"license photo", func(d *Documents) { d.License = capture.PhotoRef{} }, "license_photo", form.ReasonPhotoMissing},
		{"passport photo", func(d *Documents) { d.Passport = capture.PhotoRef{} }, "passport_photo", form.ReasonPhotoMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDocuments()
			tt.mutate(&d)
			field, reason := reasonOf(t, d.Validate(now))
			assert.Equal(t, tt.field, field)
			assert.Equal(t, tt.reason, reason)
		})
	}

	assert.NoError(t, validDocuments().Validate(now))
}

func TestWizardCompletesRegistration(t *testing.T) {
	ns := session.NewMemory()
	store := session.InMemory(logging.Discard())
	tokens := auth.Tokens{Now: func() time.Time { return now }}
	w := NewWizard(NewStaging(ns), tokens, store, logging.Discard())

	require.NoError(t, w.SubmitCredentials(validCredentials()))
	require.NoError(t, w.SubmitPersonalData(validPersonal()))
	assert.False(t, store.IsAuthenticated())

	require.NoError(t, w.SubmitDocuments(validDocuments()))

	token, ok := store.AuthToken()
	require.True(t, ok)
	assert.Equal(t, "complete_registration_token_1717243200000", token)

	staging := NewStaging(ns)
	assert.True(t, staging.Complete())
	draft := staging.Load()
	assert.Equal(t, "new@example.com", draft.Credentials.Email)
	assert.Empty(t, draft.Credentials.Password)
	assert.Equal(t, validPersonal(), draft.Personal)
	assert.Equal(t, validDocuments(), draft.Documents)

	w.Finish()
	assert.False(t, staging.Complete())
	assert.Equal(t, Draft{}, w.Resume())
}

func TestWizardRejectsInvalidStepWithoutStaging(t *testing.T) {
	ns := session.NewMemory()
	store := session.InMemory(logging.Discard())
	w := NewWizard(NewStaging(ns), auth.Tokens{}, store, logging.Discard())

	d := validDocuments()
	d.Passport = capture.PhotoRef{}
	assert.Error(t, w.SubmitDocuments(d))

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, Draft{}, w.Resume())
}

func TestGenderRoundTrip(t *testing.T) {
	for _, g := range []Gender{GenderUnset, GenderMale, GenderFemale} {
		assert.Equal(t, g, ParseGender(g.String()))
	}
}
