package app

import (
	"context"
	"errors"

	"github.com/drivenext/drivenext/internal/auth"
	"github.com/drivenext/drivenext/internal/capture"
	"github.com/drivenext/drivenext/internal/flow"
	"github.com/drivenext/drivenext/internal/form"
	"github.com/drivenext/drivenext/internal/i18n"
	"github.com/drivenext/drivenext/internal/onboarding"
	"github.com/drivenext/drivenext/internal/registration"
	"github.com/drivenext/drivenext/internal/startup"
)

const registrationSteps = 3

type onboardingInput struct {
	index int
}

type loginInput struct {
	form auth.LoginForm
}

type stepInput struct {
	draft registration.Draft
}

type noConnectivityInput struct {
	origin startup.Origin
}

func (a *App) splashScreen(ctx context.Context, _ any) (any, error) {
	ready := make(chan struct{})
	var (
		decision startup.Decision
		waitErr  error
	)
	go func() {
		defer close(ready)
		decision, waitErr = a.startup.Splash(ctx, a.splashDelay)
	}()

	if err := a.presenter.Splash(ctx, ready); err != nil {
		return nil, err
	}
	<-ready
	if waitErr != nil {
		return nil, waitErr
	}

	if a.store.IsFirstLaunch() {
		a.logger.Info("First launch")
		a.store.MarkLaunched()
	}
	return outcome{event: flow.Decided, decision: decision}, nil
}

func (a *App) onboardingScreen(ctx context.Context, input any) (any, error) {
	in, _ := input.(onboardingInput)
	c := onboarding.NewCarousel(a.slides, in.index)

	for {
		action, err := a.presenter.Onboarding(ctx, OnboardingView{
			Slide:       c.Slide(),
			Index:       c.Index(),
			Count:       c.Len(),
			ButtonLabel: c.ButtonLabel(),
			ShowSkip:    c.SkipVisible(),
		})
		if err != nil {
			return nil, err
		}

		switch action {
		case OnboardingNext:
			if c.Next() {
				return a.finishOnboarding(), nil
			}
		case OnboardingSkip:
			if c.SkipVisible() {
				return a.finishOnboarding(), nil
			}
		case OnboardingPrev:
			c.Prev()
		case OnboardingBack:
			return outcome{event: flow.Back, input: onboardingInput{index: c.Index()}}, nil
		}
	}
}

func (a *App) finishOnboarding() outcome {
	a.store.SetOnboardingCompleted(true)
	return outcome{event: flow.OnboardingFinished}
}

func (a *App) welcomeScreen(ctx context.Context, _ any) (any, error) {
	action, err := a.presenter.Welcome(ctx)
	if err != nil {
		return nil, err
	}

	switch action {
	case WelcomeLogin:
		return outcome{event: flow.ChoseLogin, next: loginInput{}}, nil
	case WelcomeRegister:
		return outcome{event: flow.ChoseRegister, next: stepInput{draft: a.wizard.Resume()}}, nil
	default:
		return outcome{event: flow.Back}, nil
	}
}

func (a *App) loginScreen(ctx context.Context, input any) (any, error) {
	in, _ := input.(loginInput)
	notice := ""

	for {
		res, err := a.presenter.Login(ctx, LoginView{Form: in.form, Notice: notice})
		if err != nil {
			return nil, err
		}
		in.form = res.Form
		notice = ""

		switch res.Action {
		case LoginBack:
			return outcome{event: flow.Back, input: in}, nil

		case LoginRegister:
			return outcome{event: flow.ChoseRegister, input: in, next: stepInput{draft: a.wizard.Resume()}}, nil

		case LoginForgotPassword:
			notice = noticeFor(a.auth.ForgotPassword())

		case LoginSubmit, LoginAlternative:
			if lost, offline := a.offline(startup.Login{Form: in.form}, in); offline {
				return lost, nil
			}
			if res.Action == LoginAlternative {
				a.auth.AlternativeLogin()
				return outcome{event: flow.LoginSucceeded}, nil
			}
			if err := a.auth.Login(in.form); err != nil {
				notice = noticeFor(err)
				continue
			}
			return outcome{event: flow.LoginSucceeded}, nil
		}
	}
}

func (a *App) credentialsScreen(ctx context.Context, input any) (any, error) {
	in, _ := input.(stepInput)
	notice := ""

	for {
		res, err := a.presenter.Credentials(ctx, CredentialsView{
			Header: StepHeader{Step: 1, Total: registrationSteps},
			Form:   in.draft.Credentials,
			Notice: notice,
		})
		if err != nil {
			return nil, err
		}
		in.draft.Credentials = res.Form
		notice = ""

		if res.Action == StepBack {
			return outcome{event: flow.Back, input: in}, nil
		}
		if res.Action != StepSubmit {
			continue
		}

		if lost, offline := a.offline(startup.Registration{Step: 1, Draft: in.draft}, in); offline {
			return lost, nil
		}
		if err := a.wizard.SubmitCredentials(res.Form); err != nil {
			notice = noticeFor(err)
			continue
		}
		return outcome{event: flow.StepCompleted, input: in, next: stepInput{draft: in.draft}}, nil
	}
}

func (a *App) personalDataScreen(ctx context.Context, input any) (any, error) {
	in, _ := input.(stepInput)
	notice := ""

	for {
		res, err := a.presenter.PersonalData(ctx, PersonalDataView{
			Header: StepHeader{Step: 2, Total: registrationSteps},
			Form:   in.draft.Personal,
			Notice: notice,
		})
		if err != nil {
			return nil, err
		}
		in.draft.Personal = res.Form
		notice = ""

		if res.Action == StepBack {
			return outcome{event: flow.Back, input: in}, nil
		}
		if res.Action != StepSubmit {
			continue
		}

		if lost, offline := a.offline(startup.Registration{Step: 2, Draft: in.draft}, in); offline {
			return lost, nil
		}
		if err := a.wizard.SubmitPersonalData(res.Form); err != nil {
			notice = noticeFor(err)
			continue
		}
		return outcome{event: flow.StepCompleted, input: in, next: stepInput{draft: in.draft}}, nil
	}
}

func (a *App) documentsScreen(ctx context.Context, input any) (any, error) {
	in, _ := input.(stepInput)
	notice := ""

	for {
		res, err := a.presenter.Documents(ctx, DocumentsView{
			Header: StepHeader{Step: 3, Total: registrationSteps},
			Form:   in.draft.Documents,
			Notice: notice,
		})
		if err != nil {
			return nil, err
		}
		in.draft.Documents = res.Form
		notice = ""

		switch res.Action {
		case StepBack:
			return outcome{event: flow.Back, input: in}, nil

		case StepAttachLicense:
			in.draft.Documents.License, notice = a.attach(ctx, capture.KindLicense, in.draft.Documents.License)

		case StepAttachPassport:
			in.draft.Documents.Passport, notice = a.attach(ctx, capture.KindPassport, in.draft.Documents.Passport)

		case StepSubmit:
			if lost, offline := a.offline(startup.Registration{Step: 3, Draft: in.draft}, in); offline {
				return lost, nil
			}
			if err := a.wizard.SubmitDocuments(in.draft.Documents); err != nil {
				notice = noticeFor(err)
				continue
			}
			return outcome{event: flow.RegistrationCompleted}, nil
		}
	}
}

// attach captures a photo of kind. The current reference is kept when the
// capture fails or is cancelled and replaced on success.
func (a *App) attach(ctx context.Context, kind capture.PhotoKind, current capture.PhotoRef) (capture.PhotoRef, string) {
	a.pendingNotice = ""
	ref, err := a.photos.Capture(ctx, kind)
	notice := a.pendingNotice
	a.pendingNotice = ""

	switch {
	case errors.Is(err, capture.ErrCancelled):
		return current, notice
	case err != nil:
		a.logger.Warn("Photo capture failed", "kind", kind.String(), "error", err)
		return current, i18n.NoticeCaptureFailed
	}

	if current.Attached() {
		if err := a.library.Remove(current); err != nil {
			a.logger.Warn("Could not remove replaced photo", "path", current.Path, "error", err)
		}
	}
	a.logger.Info("Photo attached", "kind", kind.String())
	return ref, notice
}

func (a *App) successScreen(ctx context.Context, _ any) (any, error) {
	if err := a.presenter.RegistrationSuccess(ctx); err != nil {
		return nil, err
	}
	a.wizard.Finish()
	return outcome{event: flow.Continue}, nil
}

func (a *App) mainScreen(ctx context.Context, _ any) (any, error) {
	action, err := a.presenter.Main(ctx)
	if err != nil {
		return nil, err
	}

	if action == MainLogout {
		a.store.ClearAuthToken()
		a.logger.Info("Logged out")
		return outcome{event: flow.LoggedOut}, nil
	}
	return outcome{event: flow.Back}, nil
}

func (a *App) noConnectivityScreen(ctx context.Context, input any) (any, error) {
	in := input.(noConnectivityInput)
	notice := ""

	d := a.startup.Resume(in.origin)
	for d.Kind == startup.ShowNoConnectivity {
		action, err := a.presenter.NoConnectivity(ctx, NoConnectivityView{Notice: notice})
		if err != nil {
			return nil, err
		}
		if action == NoConnectivityBack {
			return outcome{event: flow.Back, input: in}, nil
		}
		d = a.startup.Resume(in.origin)
		notice = i18n.NoticeStillOffline
	}

	return outcome{event: flow.ConnectivityRestored, decision: d}, nil
}

// offline runs the connectivity gate before a simulated network action.
func (a *App) offline(origin startup.Origin, self any) (outcome, bool) {
	d, ok := a.startup.Online(origin)
	if ok {
		return outcome{}, false
	}
	return outcome{event: flow.ConnectivityLost, decision: d, input: self, next: noConnectivityInput{origin: d.Origin}}, true
}

// noticeFor maps a failed action to the notice shown to the user.
func noticeFor(err error) string {
	var fieldErr *form.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return i18n.ReasonMessage(fieldErr.Reason)
	case errors.Is(err, auth.ErrEmailNotFound):
		return i18n.NoticeEmailNotFound
	case errors.Is(err, auth.ErrWrongPassword):
		return i18n.NoticeWrongPassword
	case errors.Is(err, auth.ErrRecoveryUnavailable):
		return i18n.NoticeRecoveryUnavailable
	default:
		return i18n.NoticeFillAllFields
	}
}
