package registration

import (
	"github.com/drivenext/drivenext/internal/capture"
	"github.com/drivenext/drivenext/internal/session"
)

// Staging keys.
const (
	KeyEmail                = "email"
	KeyLastName             = "last_name"
	KeyFirstName            = "first_name"
	KeyMiddleName           = "middle_name"
	KeyBirthDate            = "birth_date"
	KeyGender               = "gender"
	KeyDriverLicense        = "driver_license"
	KeyLicenseIssueDate     = "license_issue_date"
	KeyLicensePhoto         = "license_photo"
	KeyPassportPhoto        = "passport_photo"
	KeyRegistrationComplete = "registration_complete"
)

// Staging keeps the fields of completed wizard steps between screens. It is
// separate from the session namespace and is discarded after the success
// screen. Passwords are never staged.
type Staging struct {
	ns session.Namespace
}

func NewStaging(ns session.Namespace) *Staging {
	return &Staging{ns: ns}
}

func (s *Staging) SaveCredentials(c Credentials) {
	s.ns.Set(KeyEmail, c.Email)
}

func (s *Staging) SavePersonalData(p PersonalData) {
	s.ns.SetAll(map[string]any{
		KeyLastName:   p.LastName,
		KeyFirstName:  p.FirstName,
		KeyMiddleName: p.MiddleName,
		KeyBirthDate:  p.BirthDate,
		KeyGender:     p.Gender.String(),
	})
}

func (s *Staging) SaveDocuments(d Documents) {
	s.ns.SetAll(map[string]any{
		KeyDriverLicense:    d.LicenseNumber,
		KeyLicenseIssueDate: d.IssueDate,
		KeyLicensePhoto:     d.License.Path,
		KeyPassportPhoto:    d.Passport.Path,
	})
}

func (s *Staging) MarkComplete() {
	s.ns.Set(KeyRegistrationComplete, true)
}

func (s *Staging) Complete() bool {
	return s.ns.Bool(KeyRegistrationComplete, false)
}

// Load rebuilds a draft from the staged fields.
func (s *Staging) Load() Draft {
	str := func(key string) string {
		v, _ := s.ns.String(key)
		return v
	}

	var d Draft
	d.Credentials.Email = str(KeyEmail)
	d.Personal = PersonalData{
		LastName:   str(KeyLastName),
		FirstName:  str(KeyFirstName),
		MiddleName: str(KeyMiddleName),
		BirthDate:  str(KeyBirthDate),
		Gender:     ParseGender(str(KeyGender)),
	}
	d.Documents = Documents{
		LicenseNumber: str(KeyDriverLicense),
		IssueDate:     str(KeyLicenseIssueDate),
	}
	if p := str(KeyLicensePhoto); p != "" {
		d.Documents.License = capture.PhotoRef{Kind: capture.KindLicense, Path: p}
	}
	if p := str(KeyPassportPhoto); p != "" {
		d.Documents.Passport = capture.PhotoRef{Kind: capture.KindPassport, Path: p}
	}
	return d
}

func (s *Staging) Discard() {
	s.ns.Clear()
}
