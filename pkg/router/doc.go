// Package router runs screens one after another with explicit data flow.
//
// Each screen is a function from an input value to a result value. After a
// screen returns, a single transition function looks at the result and picks
// the next screen and its input. All routing logic therefore lives in one
// place and no screen knows about any other.
//
// # Basic Usage
//
//	const (
//	    ScreenWelcome router.Screen = iota
//	    ScreenLogin
//	)
//
//	r := router.New()
//
//	r.Register(ScreenWelcome, func(ctx context.Context, input any) (any, error) {
//	    return welcomeScreen(ctx), nil
//	})
//
//	r.Register(ScreenLogin, func(ctx context.Context, input any) (any, error) {
//	    in := input.(LoginInput)
//	    return loginScreen(ctx, in), nil
//	})
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenWelcome:
//	        stack.Push(from, nil, nil)
//	        return ScreenLogin, LoginInput{}
//	    case ScreenLogin:
//	        if entry := stack.Pop(); entry != nil {
//	            return entry.Screen, entry.Input
//	        }
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	err := r.Run(ctx, ScreenWelcome, nil)
//
// # Resume State
//
// When navigating forward, the transition function pushes the current screen
// with its input and any resume state the screen returned (half-typed form
// fields, a carousel position). Going back pops that entry and hands the
// resume state to the screen again.
//
// # Clearing History
//
// Some transitions must not be undone with Back, such as leaving onboarding or
// completing a sign-in. Stack.Clear drops every entry; a Back with an empty
// stack conventionally exits the router.
package router
