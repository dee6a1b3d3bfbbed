package ui

import (
	"context"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/drivenext/drivenext/internal/app"
	"github.com/drivenext/drivenext/internal/auth"
	"github.com/drivenext/drivenext/internal/capture"
	"github.com/drivenext/drivenext/internal/constants"
	"github.com/drivenext/drivenext/internal/form"
	"github.com/drivenext/drivenext/internal/i18n"
	"github.com/drivenext/drivenext/internal/registration"
)

var _ app.Presenter = (*UI)(nil)

// splashScreen waits for ready without accepting input.
type splashScreen struct {
	ready <-chan struct{}
}

func (s *splashScreen) handle(inputEvent) bool { return false }

func (s *splashScreen) tick(time.Time) bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

func (s *splashScreen) render(u *UI) {
	accent := u.theme.AccentColor
	u.win.renderer.SetDrawColor(accent.R, accent.G, accent.B, accent.A)
	u.win.renderer.Clear()

	cx, size := u.win.width/2, u.win.height/4
	y := u.win.height/2 - size
	u.drawIllustration("logo.svg", cx, y, size, size)
	y += size + u.margin()/2
	y += u.drawText(u.fonts.large, u.t.T(i18n.AppName), cx, y, u.theme.OnAccentColor, constants.TextAlignCenter)
	u.drawText(u.fonts.small, u.t.T(i18n.SplashTagline), cx, y, u.theme.OnAccentColor, constants.TextAlignCenter)
}

func (u *UI) Splash(ctx context.Context, ready <-chan struct{}) error {
	return u.run(ctx, &splashScreen{ready: ready})
}

// onboardingScreen is one carousel slide.
type onboardingScreen struct {
	view   app.OnboardingView
	action app.OnboardingAction
}

func (o *onboardingScreen) handle(in inputEvent) bool {
	switch in.button {
	case constants.VirtualButtonA, constants.VirtualButtonRight, constants.VirtualButtonStart:
		o.action = app.OnboardingNext
	case constants.VirtualButtonLeft:
		if o.view.Index == 0 {
			return false
		}
		o.action = app.OnboardingPrev
	case constants.VirtualButtonX:
		if !o.view.ShowSkip {
			return false
		}
		o.action = app.OnboardingSkip
	case constants.VirtualButtonB:
		o.action = app.OnboardingBack
	default:
		return false
	}
	return true
}

func (o *onboardingScreen) render(u *UI) {
	margin := u.margin()
	cx := u.win.width / 2

	if o.view.ShowSkip {
		u.drawText(u.fonts.small, "X  "+u.t.T(i18n.OnboardingSkip), u.win.width-margin, margin/2, u.theme.HintColor, constants.TextAlignRight)
	}

	size := u.win.height * 2 / 5
	y := margin
	u.drawIllustration(o.view.Slide.Illustration, cx, y, size*3/2, size)
	y += size + margin/2

	y += u.drawText(u.fonts.large, u.t.T(o.view.Slide.Title), cx, y, u.theme.TextColor, constants.TextAlignCenter) + margin/4
	y += u.drawMultiline(u.fonts.small, u.t.T(o.view.Slide.Text), u.win.width-4*margin, cx, y, u.theme.HintColor, constants.TextAlignCenter)
	y += margin / 2

	dot := margin / 5
	gap := dot
	total := int32(o.view.Count)*dot + int32(o.view.Count-1)*gap
	for i := 0; i < o.view.Count; i++ {
		color := u.theme.SurfaceColor
		if i == o.view.Index {
			color = u.theme.AccentColor
		}
		u.fillRect(sdl.Rect{X: cx - total/2 + int32(i)*(dot+gap), Y: y, W: dot, H: dot}, color)
	}

	h := int32(u.fonts.medium.Height()) + margin/2
	footer := int32(u.fonts.small.Height()) * 3
	rect := sdl.Rect{X: margin, Y: u.win.height - footer - h - margin/2, W: u.win.width - 2*margin, H: h}
	u.drawButton(rect, u.t.T(o.view.ButtonLabel), true, true)

	u.drawFooter([]hint{{button: "A", label: u.t.T(o.view.ButtonLabel)}, {button: "B", label: u.t.T(i18n.ActionBack)}})
}

func (u *UI) Onboarding(ctx context.Context, view app.OnboardingView) (app.OnboardingAction, error) {
	s := &onboardingScreen{view: view}
	if err := u.run(ctx, s); err != nil {
		return app.OnboardingBack, err
	}
	return s.action, nil
}

func (u *UI) Welcome(ctx context.Context) (app.WelcomeAction, error) {
	m := &messageScreen{
		illustration: "logo.svg",
		title:        u.t.T(i18n.WelcomeTitle),
		text:         u.t.T(i18n.WelcomeText),
		buttons:      []string{u.t.T(i18n.WelcomeLogin), u.t.T(i18n.WelcomeRegister)},
	}
	if err := u.run(ctx, m); err != nil {
		return app.WelcomeBack, err
	}
	switch m.chosen {
	case 0:
		return app.WelcomeLogin, nil
	case 1:
		return app.WelcomeRegister, nil
	default:
		return app.WelcomeBack, nil
	}
}

const (
	actionSubmit formAction = iota
	actionAlternative
	actionForgot
	actionRegister
	actionLicense
	actionPassport
)

func (u *UI) Login(ctx context.Context, view app.LoginView) (app.LoginResult, error) {
	email := &field{kind: fieldText, label: u.t.T(i18n.FieldEmail), value: view.Form.Email, keyboard: keyboardEmail}
	password := &field{kind: fieldSecret, label: u.t.T(i18n.FieldPassword), value: view.Form.Password, keyboard: keyboardEmail}
	read := func() auth.LoginForm {
		return auth.LoginForm{Email: email.value, Password: password.value}
	}

	f := &formScreen{
		title:    u.t.T(i18n.LoginTitle),
		subtitle: u.t.T(i18n.LoginSubtitle),
		fields: []*field{
			email,
			password,
			{kind: fieldButton, label: u.t.T(i18n.LoginSubmit), action: actionSubmit, enabled: func() bool { return read().Ready() }},
			{kind: fieldButton, label: u.t.T(i18n.LoginAlternative), action: actionAlternative},
			{kind: fieldLink, label: u.t.T(i18n.LoginForgot), action: actionForgot},
			{kind: fieldLink, label: u.t.T(i18n.LoginRegister), action: actionRegister},
		},
	}

	action, err := u.runForm(ctx, f, view.Notice)
	res := app.LoginResult{Form: read()}
	if err != nil {
		res.Action = app.LoginBack
		return res, err
	}

	switch action {
	case actionSubmit:
		res.Action = app.LoginSubmit
	case actionAlternative:
		res.Action = app.LoginAlternative
	case actionForgot:
		res.Action = app.LoginForgotPassword
	case actionRegister:
		res.Action = app.LoginRegister
	default:
		res.Action = app.LoginBack
	}
	return res, nil
}

func (u *UI) stepSubtitle(h app.StepHeader) string {
	return u.t.Tf(i18n.RegisterStep, map[string]any{"Step": h.Step, "Total": h.Total})
}

func (u *UI) stepButton(h app.StepHeader) *field {
	label := i18n.RegisterNext
	if h.Step == h.Total {
		label = i18n.RegisterFinish
	}
	return &field{kind: fieldButton, label: u.t.T(label), action: actionSubmit}
}

func stepAction(a formAction) app.StepAction {
	switch a {
	case actionSubmit:
		return app.StepSubmit
	case actionLicense:
		return app.StepAttachLicense
	case actionPassport:
		return app.StepAttachPassport
	default:
		return app.StepBack
	}
}

func (u *UI) Credentials(ctx context.Context, view app.CredentialsView) (app.CredentialsResult, error) {
	email := &field{kind: fieldText, label: u.t.T(i18n.FieldEmail), value: view.Form.Email, keyboard: keyboardEmail}
	password := &field{kind: fieldSecret, label: u.t.T(i18n.FieldPassword), value: view.Form.Password, keyboard: keyboardEmail}
	confirm := &field{kind: fieldSecret, label: u.t.T(i18n.FieldConfirm), value: view.Form.Confirm, keyboard: keyboardEmail}
	terms := &field{kind: fieldCheckbox, label: u.t.T(i18n.FieldTerms), checked: view.Form.TermsAccepted}

	f := &formScreen{
		title:    u.t.T(i18n.RegisterTitle),
		subtitle: u.stepSubtitle(view.Header),
		fields:   []*field{email, password, confirm, terms, u.stepButton(view.Header)},
	}

	action, err := u.runForm(ctx, f, view.Notice)
	return app.CredentialsResult{
		Action: stepAction(action),
		Form: registration.Credentials{
			Email:         email.value,
			Password:      password.value,
			Confirm:       confirm.value,
			TermsAccepted: terms.checked,
		},
	}, err
}

var genders = []registration.Gender{registration.GenderMale, registration.GenderFemale}

func (u *UI) PersonalData(ctx context.Context, view app.PersonalDataView) (app.PersonalDataResult, error) {
	last := &field{kind: fieldText, label: u.t.T(i18n.FieldLastName), value: view.Form.LastName}
	first := &field{kind: fieldText, label: u.t.T(i18n.FieldFirstName), value: view.Form.FirstName}
	middle := &field{kind: fieldText, label: u.t.T(i18n.FieldMiddleName), value: view.Form.MiddleName}
	birth := &field{kind: fieldText, label: u.t.T(i18n.FieldBirthDate), value: view.Form.BirthDate, keyboard: keyboardDate, maxLen: len(form.DateLayout)}
	gender := &field{
		kind:    fieldChoice,
		label:   u.t.T(i18n.FieldGender),
		choices: []string{u.t.T(i18n.GenderMale), u.t.T(i18n.GenderFemale)},
		choice:  -1,
	}
	for i, g := range genders {
		if g == view.Form.Gender {
			gender.choice = i
		}
	}

	f := &formScreen{
		title:    u.t.T(i18n.RegisterTitle),
		subtitle: u.stepSubtitle(view.Header),
		fields:   []*field{last, first, middle, birth, gender, u.stepButton(view.Header)},
	}

	action, err := u.runForm(ctx, f, view.Notice)
	data := registration.PersonalData{
		LastName:   last.value,
		FirstName:  first.value,
		MiddleName: middle.value,
		BirthDate:  birth.value,
	}
	if gender.choice >= 0 {
		data.Gender = genders[gender.choice]
	}
	return app.PersonalDataResult{Action: stepAction(action), Form: data}, err
}

func (u *UI) Documents(ctx context.Context, view app.DocumentsView) (app.DocumentsResult, error) {
	number := &field{kind: fieldText, label: u.t.T(i18n.FieldLicenseNumber), value: view.Form.LicenseNumber, keyboard: keyboardDigits, maxLen: registration.LicenseNumberLength}
	issued := &field{kind: fieldText, label: u.t.T(i18n.FieldIssueDate), value: view.Form.IssueDate, keyboard: keyboardDate, maxLen: len(form.DateLayout)}

	f := &formScreen{
		title:    u.t.T(i18n.RegisterTitle),
		subtitle: u.stepSubtitle(view.Header),
		fields: []*field{
			number,
			issued,
			{kind: fieldPhoto, label: u.t.T(i18n.FieldLicensePhoto), attached: view.Form.License.Attached(), action: actionLicense},
			{kind: fieldPhoto, label: u.t.T(i18n.FieldPassportPhoto), attached: view.Form.Passport.Attached(), action: actionPassport},
			u.stepButton(view.Header),
		},
	}

	action, err := u.runForm(ctx, f, view.Notice)
	docs := view.Form
	docs.LicenseNumber = number.value
	docs.IssueDate = issued.value
	return app.DocumentsResult{Action: stepAction(action), Form: docs}, err
}

func (u *UI) RegistrationSuccess(ctx context.Context) error {
	m := &messageScreen{
		icon:        constants.IconCloudCheck,
		title:       u.t.T(i18n.SuccessTitle),
		text:        u.t.T(i18n.SuccessText),
		buttons:     []string{u.t.T(i18n.SuccessContinue)},
		disableBack: true,
	}
	return u.run(ctx, m)
}

func (u *UI) Main(ctx context.Context) (app.MainAction, error) {
	m := &messageScreen{
		icon:    constants.IconCar,
		title:   u.t.T(i18n.MainTitle),
		text:    u.t.T(i18n.MainText),
		buttons: []string{u.t.T(i18n.MainLogout), u.t.T(i18n.ActionExit)},
	}
	if err := u.run(ctx, m); err != nil {
		return app.MainExit, err
	}
	if m.chosen == 0 {
		return app.MainLogout, nil
	}
	return app.MainExit, nil
}

func (u *UI) NoConnectivity(ctx context.Context, view app.NoConnectivityView) (app.NoConnectivityAction, error) {
	u.showNotice(view.Notice)
	m := &messageScreen{
		icon:    constants.IconWiFi,
		title:   u.t.T(i18n.NoConnectionTitle),
		text:    u.t.T(i18n.NoConnectionText),
		buttons: []string{u.t.T(i18n.NoConnectionRetry)},
	}
	if err := u.run(ctx, m); err != nil {
		return app.NoConnectivityBack, err
	}
	if m.chosen == 0 {
		return app.NoConnectivityRetry, nil
	}
	return app.NoConnectivityBack, nil
}

func (u *UI) ChoosePhoto(ctx context.Context, kind capture.PhotoKind, candidates []string) (string, error) {
	title := u.t.T(i18n.ChoosePhoto)
	switch kind {
	case capture.KindLicense:
		title = u.t.T(i18n.FieldLicensePhoto)
	case capture.KindPassport:
		title = u.t.T(i18n.FieldPassportPhoto)
	}

	l := &listScreen{title: title, items: candidates}
	if err := u.run(ctx, l); err != nil {
		return "", err
	}
	if l.chosen < 0 {
		return "", capture.ErrCancelled
	}
	return candidates[l.chosen], nil
}
