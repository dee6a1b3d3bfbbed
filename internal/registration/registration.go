// Package registration implements the three-step sign-up wizard: account
// credentials, personal data and driving documents.
package registration

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/drivenext/drivenext/internal/auth"
	"github.com/drivenext/drivenext/internal/capture"
	"github.com/drivenext/drivenext/internal/form"
)

// LicenseNumberLength is the exact length of a driver licence number.
const LicenseNumberLength = 10

type Gender int

const (
	GenderUnset Gender = iota
	GenderMale
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return ""
	}
}

// ParseGender is the inverse of Gender.String.
func ParseGender(s string) Gender {
	switch s {
	case "male":
		return GenderMale
	case "female":
		return GenderFemale
	default:
		return GenderUnset
	}
}

// Credentials is step 1.
type Credentials struct {
	Email         string
	Password      string
	Confirm       string
	TermsAccepted bool
}

func (c Credentials) Ready() bool {
	return form.Clean(c.Email) != "" && c.Password != "" && c.Confirm != "" && c.TermsAccepted
}

func (c Credentials) Validate() error {
	email := form.Clean(c.Email)
	switch {
	case email == "":
		return form.Invalid("email", form.ReasonRequired)
	case !form.ValidEmail(email):
		return form.Invalid("email", form.ReasonInvalidEmail)
	case c.Password == "":
		return form.Invalid("password", form.ReasonRequired)
	case len(c.Password) < form.MinPasswordLength:
		return form.Invalid("password", form.ReasonPasswordTooShort)
	case c.Confirm == "":
		return form.Invalid("confirm", form.ReasonRequired)
	case c.Confirm != c.Password:
		return form.Invalid("confirm", form.ReasonPasswordMismatch)
	case !c.TermsAccepted:
		return form.Invalid("terms", form.ReasonTermsNotAccepted)
	}
	return nil
}

// PersonalData is step 2. MiddleName is optional.
type PersonalData struct {
	LastName   string
	FirstName  string
	MiddleName string
	BirthDate  string
	Gender     Gender
}

func (p PersonalData) Ready() bool {
	return form.Clean(p.LastName) != "" && form.Clean(p.FirstName) != "" &&
		form.Clean(p.BirthDate) != "" && p.Gender != GenderUnset
}

func (p PersonalData) Validate(now time.Time) error {
	switch {
	case form.Clean(p.LastName) == "":
		return form.Invalid("last_name", form.ReasonRequired)
	case form.Clean(p.FirstName) == "":
		return form.Invalid("first_name", form.ReasonRequired)
	case form.Clean(p.BirthDate) == "":
		return form.Invalid("birth_date", form.ReasonRequired)
	}
	if _, reason, ok := form.ParseDate(form.Clean(p.BirthDate), now); !ok {
		return form.Invalid("birth_date", reason)
	}
	if p.Gender == GenderUnset {
		return form.Invalid("gender", form.ReasonRequired)
	}
	return nil
}

// Documents is step 3.
type Documents struct {
	LicenseNumber string
	IssueDate     string
	License       capture.PhotoRef
	Passport      capture.PhotoRef
}

func (d Documents) Ready() bool {
	return form.Clean(d.LicenseNumber) != "" && form.Clean(d.IssueDate) != "" &&
		d.License.Attached() && d.Passport.Attached()
}

func (d Documents) Validate(now time.Time) error {
	number := form.Clean(d.LicenseNumber)
	switch {
	case number == "":
		return form.Invalid("license_number", form.ReasonRequired)
	case utf8.RuneCountInString(number) != LicenseNumberLength:
		return form.Invalid("license_number", form.ReasonLicenseLength)
	case form.Clean(d.IssueDate) == "":
		return form.Invalid("issue_date", form.ReasonRequired)
	}
	if _, reason, ok := form.ParseDate(form.Clean(d.IssueDate), now); !ok {
		return form.Invalid("issue_date", reason)
	}
	switch {
	case !d.License.Attached():
		return form.Invalid("license_photo", form.ReasonPhotoMissing)
	case !d.Passport.Attached():
		return form.Invalid("passport_photo", form.ReasonPhotoMissing)
	}
	return nil
}

// Draft is everything entered so far. It travels with a connectivity
// interruption so the wizard can resume where it stopped.
type Draft struct {
	Credentials Credentials
	Personal    PersonalData
	Documents   Documents
}

// Wizard validates and stages each step and completes the registration.
type Wizard struct {
	staging *Staging
	tokens  auth.Tokens
	store   auth.TokenWriter
	now     func() time.Time
	logger  *slog.Logger
}

func NewWizard(staging *Staging, tokens auth.Tokens, store auth.TokenWriter, logger *slog.Logger) *Wizard {
	now := time.Now
	if tokens.Now != nil {
		now = tokens.Now
	}
	return &Wizard{staging: staging, tokens: tokens, store: store, now: now, logger: logger}
}

// Resume returns the draft recovered from staging, for a wizard started
// after the process was restarted mid-registration.
func (w *Wizard) Resume() Draft {
	return w.staging.Load()
}

// SubmitCredentials validates step 1 and stages it.
func (w *Wizard) SubmitCredentials(c Credentials) error {
	if err := c.Validate(); err != nil {
		return err
	}
	w.staging.SaveCredentials(c)
	w.logger.Debug("Registration step completed", "step", 1)
	return nil
}

// SubmitPersonalData validates step 2 and stages it.
func (w *Wizard) SubmitPersonalData(p PersonalData) error {
	if err := p.Validate(w.now()); err != nil {
		return err
	}
	w.staging.SavePersonalData(p)
	w.logger.Debug("Registration step completed", "step", 2)
	return nil
}

// SubmitDocuments validates step 3, stages it and completes the
// registration by storing a token.
func (w *Wizard) SubmitDocuments(d Documents) error {
	if err := d.Validate(w.now()); err != nil {
		return err
	}
	w.staging.SaveDocuments(d)
	w.store.SetAuthToken(w.tokens.Issue(auth.PrefixRegistration))
	w.staging.MarkComplete()
	w.logger.Info("Registration completed")
	return nil
}

// Finish discards the staged fields once the success screen is left.
func (w *Wizard) Finish() {
	w.staging.Discard()
}
