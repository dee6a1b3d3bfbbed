package startup

import (
	"fmt"

	"github.com/drivenext/drivenext/internal/auth"
	"github.com/drivenext/drivenext/internal/registration"
)

// Origin identifies the screen that ran a connectivity check and carries
// what that screen needs to resume. The set of origins is closed.
type Origin interface {
	fmt.Stringer
	origin()
}

// ColdStart is the first routing decision of the process.
type ColdStart struct{}

// Login is the login screen with the fields as they were typed.
type Login struct {
	Form auth.LoginForm
}

// Registration is a wizard step, counted from 1, with the draft entered so far.
type Registration struct {
	Step  int
	Draft registration.Draft
}

func (ColdStart) origin()    {}
func (Login) origin()        {}
func (Registration) origin() {}

func (ColdStart) String() string { return "cold_start" }
func (Login) String() string     { return "login" }

func (o Registration) String() string {
	return fmt.Sprintf("registration_step_%d", o.Step)
}
