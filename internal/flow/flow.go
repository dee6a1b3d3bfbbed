// Package flow is the navigation state machine as one table. Dynamic edges,
// whose target depends on session flags or connectivity, are resolved by the
// startup router.
package flow

type State int

const (
	ColdStart State = iota
	Onboarding
	Welcome
	Login
	RegisterStep1
	RegisterStep2
	RegisterStep3
	RegistrationSuccess
	Main
	NoConnectivity
)

var stateNames = [...]string{
	ColdStart:           "cold_start",
	Onboarding:          "onboarding",
	Welcome:             "welcome",
	Login:               "login",
	RegisterStep1:       "register_step_1",
	RegisterStep2:       "register_step_2",
	RegisterStep3:       "register_step_3",
	RegistrationSuccess: "registration_success",
	Main:                "main",
	NoConnectivity:      "no_connectivity",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// States lists every state.
func States() []State {
	states := make([]State, len(stateNames))
	for i := range states {
		states[i] = State(i)
	}
	return states
}

type Event int

const (
	Decided Event = iota
	OnboardingFinished
	ChoseLogin
	ChoseRegister
	LoginSucceeded
	StepCompleted
	RegistrationCompleted
	Continue
	LoggedOut
	Back
	ConnectivityLost
	ConnectivityRestored
)

var eventNames = [...]string{
	Decided:               "decided",
	OnboardingFinished:    "onboarding_finished",
	ChoseLogin:            "chose_login",
	ChoseRegister:         "chose_register",
	LoginSucceeded:        "login_succeeded",
	StepCompleted:         "step_completed",
	RegistrationCompleted: "registration_completed",
	Continue:              "continue",
	LoggedOut:             "logged_out",
	Back:                  "back",
	ConnectivityLost:      "connectivity_lost",
	ConnectivityRestored:  "connectivity_restored",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// Transition is the outcome of an event.
//
// Back means "return to the previous screen" and To is unused. Dynamic
// means the target must be computed by the startup router. ClearHistory
// drops the back stack before entering To.
type Transition struct {
	To           State
	ClearHistory bool
	Back         bool
	Dynamic      bool
}

type edge struct {
	from  State
	event Event
}

var (
	back    = Transition{Back: true}
	dynamic = Transition{Dynamic: true}
)

var table = map[edge]Transition{
	{ColdStart, Decided}: dynamic,

	{Onboarding, OnboardingFinished}: {To: Welcome, ClearHistory: true},
	{Onboarding, Back}:               back,

	{Welcome, ChoseLogin}:    {To: Login},
	{Welcome, ChoseRegister}: {To: RegisterStep1},
	{Welcome, Back}:          back,

	{Login, LoginSucceeded}:   {To: Main, ClearHistory: true},
	{Login, ChoseRegister}:    {To: RegisterStep1},
	{Login, Back}:             back,
	{Login, ConnectivityLost}: {To: NoConnectivity},

	{RegisterStep1, StepCompleted}:    {To: RegisterStep2},
	{RegisterStep1, Back}:             back,
	{RegisterStep1, ConnectivityLost}: {To: NoConnectivity},

	{RegisterStep2, StepCompleted}:    {To: RegisterStep3},
	{RegisterStep2, Back}:             back,
	{RegisterStep2, ConnectivityLost}: {To: NoConnectivity},

	{RegisterStep3, RegistrationCompleted}: {To: RegistrationSuccess, ClearHistory: true},
	{RegisterStep3, Back}:                  back,
	{RegisterStep3, ConnectivityLost}:      {To: NoConnectivity},

	{RegistrationSuccess, Continue}: {To: Main, ClearHistory: true},

	{Main, LoggedOut}: {To: Welcome, ClearHistory: true},
	{Main, Back}:      back,

	{NoConnectivity, ConnectivityRestored}: dynamic,
	{NoConnectivity, Back}:                 back,
}

// Next looks up the transition for event in state. ok is false for pairs
// the table does not define; callers stay on the current screen.
func Next(from State, event Event) (t Transition, ok bool) {
	t, ok = table[edge{from, event}]
	return t, ok
}
