package app

import (
	"context"

	"github.com/drivenext/drivenext/internal/auth"
	"github.com/drivenext/drivenext/internal/capture"
	"github.com/drivenext/drivenext/internal/onboarding"
	"github.com/drivenext/drivenext/internal/registration"
)

// Presenter draws screens and collects user input. It knows nothing about
// navigation: every method shows one screen until the user acts and reports
// what they did. Notice fields are message IDs shown as a transient notice;
// an empty Notice shows nothing.
type Presenter interface {
	// Splash shows the splash screen until ready is closed or ctx is done.
	Splash(ctx context.Context, ready <-chan struct{}) error
	Onboarding(ctx context.Context, view OnboardingView) (OnboardingAction, error)
	Welcome(ctx context.Context) (WelcomeAction, error)
	Login(ctx context.Context, view LoginView) (LoginResult, error)
	Credentials(ctx context.Context, view CredentialsView) (CredentialsResult, error)
	PersonalData(ctx context.Context, view PersonalDataView) (PersonalDataResult, error)
	Documents(ctx context.Context, view DocumentsView) (DocumentsResult, error)
	RegistrationSuccess(ctx context.Context) error
	Main(ctx context.Context) (MainAction, error)
	NoConnectivity(ctx context.Context, view NoConnectivityView) (NoConnectivityAction, error)

	// ChoosePhoto lets the user pick one gallery image. It returns
	// capture.ErrCancelled when the user backs out.
	ChoosePhoto(ctx context.Context, kind capture.PhotoKind, candidates []string) (string, error)
}

type OnboardingAction int

const (
	OnboardingNext OnboardingAction = iota
	OnboardingSkip
	OnboardingPrev
	OnboardingBack
)

type OnboardingView struct {
	Slide       onboarding.Slide
	Index       int
	Count       int
	ButtonLabel string
	ShowSkip    bool
}

type WelcomeAction int

const (
	WelcomeLogin WelcomeAction = iota
	WelcomeRegister
	WelcomeBack
)

type LoginAction int

const (
	LoginSubmit LoginAction = iota
	LoginAlternative
	LoginForgotPassword
	LoginRegister
	LoginBack
)

type LoginView struct {
	Form   auth.LoginForm
	Notice string
}

type LoginResult struct {
	Action LoginAction
	Form   auth.LoginForm
}

// StepAction is what the user did on a registration step.
type StepAction int

const (
	StepSubmit StepAction = iota
	StepBack
	StepAttachLicense
	StepAttachPassport
)

// StepHeader is shown above every registration step.
type StepHeader struct {
	Step  int
	Total int
}

type CredentialsView struct {
	Header StepHeader
	Form   registration.Credentials
	Notice string
}

type CredentialsResult struct {
	Action StepAction
	Form   registration.Credentials
}

type PersonalDataView struct {
	Header StepHeader
	Form   registration.PersonalData
	Notice string
}

type PersonalDataResult struct {
	Action StepAction
	Form   registration.PersonalData
}

type DocumentsView struct {
	Header StepHeader
	Form   registration.Documents
	Notice string
}

type DocumentsResult struct {
	Action StepAction
	Form   registration.Documents
}

type MainAction int

const (
	MainLogout MainAction = iota
	MainExit
)

type NoConnectivityAction int

const (
	NoConnectivityRetry NoConnectivityAction = iota
	NoConnectivityBack
)

type NoConnectivityView struct {
	Notice string
}
