package router_test

import (
	"context"
	"fmt"

	"github.com/drivenext/drivenext/pkg/router"
)

const (
	ScreenWelcome router.Screen = iota
	ScreenLogin
	ScreenMain
)

type WelcomeAction int

const (
	WelcomeActionLogin WelcomeAction = iota
	WelcomeActionQuit
)

type LoginAction int

const (
	LoginActionBack LoginAction = iota
	LoginActionSucceeded
)

type WelcomeResult struct {
	Action WelcomeAction
}

type LoginInput struct {
	Resume *LoginResume
}

type LoginResult struct {
	Action LoginAction
	Resume *LoginResume
}

// LoginResume is what the login screen needs to come back half-filled.
type LoginResume struct {
	Email string
}

// Example demonstrates registering screens and routing between them.
func Example() {
	r := router.New()

	welcomeVisits := 0

	r.Register(ScreenWelcome, "welcome", func(_ context.Context, _ any) (any, error) {
		welcomeVisits++
		if welcomeVisits == 1 {
			fmt.Println("Welcome: choosing login")
			return WelcomeResult{Action: WelcomeActionLogin}, nil
		}
		fmt.Println("Welcome: quitting")
		return WelcomeResult{Action: WelcomeActionQuit}, nil
	})

	r.Register(ScreenLogin, "login", func(_ context.Context, _ any) (any, error) {
		fmt.Println("Login: going back")
		return LoginResult{Action: LoginActionBack}, nil
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenWelcome:
			if result.(WelcomeResult).Action == WelcomeActionLogin {
				stack.Push(from, nil, nil)
				return ScreenLogin, LoginInput{}
			}
		case ScreenLogin:
			if entry := stack.Pop(); entry != nil {
				return entry.Screen, entry.Input
			}
		}
		return router.ScreenExit, nil
	})

	_ = r.Run(context.Background(), ScreenWelcome, nil)

	// Output:
	// Welcome: choosing login
	// Login: going back
	// Welcome: quitting
}

// Example_clearHistory demonstrates dropping history after a sign-in so
// Back cannot return to the login screen.
func Example_clearHistory() {
	r := router.New()

	r.Register(ScreenWelcome, "welcome", func(_ context.Context, _ any) (any, error) {
		return WelcomeResult{Action: WelcomeActionLogin}, nil
	})
	r.Register(ScreenLogin, "login", func(_ context.Context, _ any) (any, error) {
		return LoginResult{Action: LoginActionSucceeded}, nil
	})
	r.Register(ScreenMain, "main", func(_ context.Context, _ any) (any, error) {
		return nil, nil
	})

	r.OnEnter(func(screen router.Screen, _ any) {
		fmt.Printf("Entering %s (history: %d)\n", r.Name(screen), r.Stack().Len())
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenWelcome:
			stack.Push(from, nil, nil)
			return ScreenLogin, LoginInput{}
		case ScreenLogin:
			stack.Clear()
			return ScreenMain, nil
		case ScreenMain:
			if entry := stack.Pop(); entry != nil {
				return entry.Screen, entry.Input
			}
		}
		return router.ScreenExit, nil
	})

	_ = r.Run(context.Background(), ScreenWelcome, nil)

	// Output:
	// Entering welcome (history: 0)
	// Entering login (history: 1)
	// Entering main (history: 0)
}

// Example_resumeState demonstrates restoring a half-filled form on Back.
func Example_resumeState() {
	r := router.New()

	loginVisits := 0

	r.Register(ScreenLogin, "login", func(_ context.Context, input any) (any, error) {
		in := input.(LoginInput)
		loginVisits++

		if loginVisits == 1 {
			fmt.Println("Login: typed an email, opening main")
			return LoginResult{
				Action: LoginActionSucceeded,
				Resume: &LoginResume{Email: "user@example.com"},
			}, nil
		}

		fmt.Printf("Login: restored email %s\n", in.Resume.Email)
		return LoginResult{Action: LoginActionBack}, nil
	})

	r.Register(ScreenMain, "main", func(_ context.Context, _ any) (any, error) {
		fmt.Println("Main: going back")
		return nil, nil
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenLogin:
			res := result.(LoginResult)
			if res.Action == LoginActionSucceeded {
				stack.Push(from, LoginInput{}, res.Resume)
				return ScreenMain, nil
			}
		case ScreenMain:
			if entry := stack.Pop(); entry != nil {
				in := entry.Input.(LoginInput)
				if entry.Resume != nil {
					in.Resume = entry.Resume.(*LoginResume)
				}
				return entry.Screen, in
			}
		}
		return router.ScreenExit, nil
	})

	_ = r.Run(context.Background(), ScreenLogin, LoginInput{})

	// Output:
	// Login: typed an email, opening main
	// Main: going back
	// Login: restored email user@example.com
}
