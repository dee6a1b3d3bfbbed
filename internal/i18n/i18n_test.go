package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/drivenext/drivenext/internal/constants"
	"github.com/drivenext/drivenext/internal/form"
	"github.com/drivenext/drivenext/internal/logging"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"", language.Russian},
		{"C", language.Russian},
		{"ru_RU.UTF-8", language.Russian},
		{"en", language.English},
		{"en_GB.UTF-8", language.English},
		{"de_DE", language.Russian},
		{"not a locale", language.Russian},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.locale))
		})
	}
}

func TestResolvePrefersConfiguredValue(t *testing.T) {
	t.Setenv(constants.LocaleEnvVar, "en")
	t.Setenv("LANG", "ru_RU.UTF-8")

	assert.Equal(t, "ru", Resolve("ru"))
	assert.Equal(t, "en", Resolve(""))

	t.Setenv(constants.LocaleEnvVar, "")
	assert.Equal(t, "ru_RU.UTF-8", Resolve(""))
}

func TestTranslate(t *testing.T) {
	ru, err := New("ru", logging.Discard())
	require.NoError(t, err)
	en, err := New("en_US.UTF-8", logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, "Заполните все поля", ru.T(NoticeFillAllFields))
	assert.Equal(t, "Fill in all fields", en.T(NoticeFillAllFields))

	assert.Equal(t, "Аренда автомобилей", ru.T(OnboardingTitle(1)))
	assert.Equal(t, "Best offers", en.T(OnboardingTitle(3)))
	assert.Equal(t, "Выбирай понравившееся среди сотен доступных автомобилей", ru.T(OnboardingText(3)))

	assert.Equal(t, "Шаг 2 из 3", ru.Tf(RegisterStep, map[string]any{"Step": 2, "Total": 3}))
	assert.Equal(t, "no_such_message", en.T("no_such_message"))
}

func TestReasonMessage(t *testing.T) {
	assert.Equal(t, NoticeFillAllFields, ReasonMessage(form.ReasonRequired))
	assert.Equal(t, NoticeLicenseLength, ReasonMessage(form.ReasonLicenseLength))
	assert.Equal(t, NoticeFutureDate, ReasonMessage(form.ReasonFutureDate))
}
