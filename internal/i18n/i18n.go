// Package i18n provides the localized strings shown on every screen. Russian
// is the default language; English is available through configuration or
// the environment.
package i18n

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/drivenext/drivenext/internal/constants"
	"github.com/drivenext/drivenext/internal/form"
)

//go:embed locales/*.toml
var locales embed.FS

var supported = []language.Tag{language.Russian, language.English}

var matcher = language.NewMatcher(supported)

// Translator renders message IDs in a single language.
type Translator struct {
	tag       language.Tag
	localizer *goi18n.Localizer
	logger    *slog.Logger
}

// New builds a Translator for the best supported match of locale.
func New(locale string, logger *slog.Logger) (*Translator, error) {
	bundle := goi18n.NewBundle(language.Russian)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: list locales: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(locales, "locales/"+e.Name()); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", e.Name(), err)
		}
	}

	tag := Match(locale)
	return &Translator{
		tag:       tag,
		localizer: goi18n.NewLocalizer(bundle, tag.String()),
		logger:    logger,
	}, nil
}

// Match maps a locale string such as "en_US.UTF-8" to a supported language.
// Anything unrecognized maps to Russian.
func Match(locale string) language.Tag {
	locale, _, _ = strings.Cut(locale, ".")
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Russian
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return language.Russian
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Russian
	}
	return supported[index]
}

// Resolve picks the locale to use: the configured value, then the
// DRIVENEXT_LOCALE environment variable, then LANG.
func Resolve(configured string) string {
	for _, candidate := range []string{configured, os.Getenv(constants.LocaleEnvVar), os.Getenv("LANG")} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func (t *Translator) Tag() language.Tag {
	return t.tag
}

// T renders id. A missing message renders as its ID.
func (t *Translator) T(id string) string {
	return t.Tf(id, nil)
}

// Tf renders id with template data.
func (t *Translator) Tf(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("Missing translation", "id", id, "language", t.tag.String(), "error", err)
		return id
	}
	return msg
}

// ReasonMessage is the notice shown for a rejected field.
func ReasonMessage(r form.Reason) string {
	switch r {
	case form.ReasonInvalidEmail:
		return NoticeInvalidEmail
	case form.ReasonPasswordTooShort:
		return NoticePasswordTooShort
	case form.ReasonPasswordMismatch:
		return NoticePasswordMismatch
	case form.ReasonTermsNotAccepted:
		return NoticeTermsNotAccepted
	case form.ReasonInvalidDate:
		return NoticeInvalidDate
	case form.ReasonFutureDate:
		return NoticeFutureDate
	case form.ReasonLicenseLength:
		return NoticeLicenseLength
	case form.ReasonPhotoMissing:
		return NoticePhotoMissing
	default:
		return NoticeFillAllFields
	}
}
