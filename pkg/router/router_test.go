package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithoutTransition(t *testing.T) {
	err := New().Run(context.Background(), 0, nil)
	assert.EqualError(t, err, "router: no transition function set")
}

func TestRunUnregisteredScreen(t *testing.T) {
	r := New().OnTransition(func(Screen, any, *Stack) (Screen, any) { return ScreenExit, nil })

	err := r.Run(context.Background(), 7, nil)
	assert.EqualError(t, err, "router: screen screen(7) not registered")
}

func TestRunWrapsScreenError(t *testing.T) {
	boom := errors.New("boom")
	r := New().
		Register(1, "login", func(context.Context, any) (any, error) { return nil, boom }).
		OnTransition(func(Screen, any, *Stack) (Screen, any) { return ScreenExit, nil })

	err := r.Run(context.Background(), 1, nil)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "screen login")
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runs := 0

	r := New().
		Register(1, "loop", func(context.Context, any) (any, error) {
			runs++
			if runs == 3 {
				cancel()
			}
			return nil, nil
		}).
		OnTransition(func(Screen, any, *Stack) (Screen, any) { return 1, nil })

	err := r.Run(ctx, 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, runs)
}

func TestStack(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())

	s.Push(1, "a", nil)
	s.Push(2, "b", 42)
	s.Push(3, "c", nil)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, Screen(3), s.Peek().Screen)

	s.Pop()
	entry := s.Pop()
	require.NotNil(t, entry)
	assert.Equal(t, 42, entry.Resume)
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestName(t *testing.T) {
	r := New().Register(2, "welcome", nil)
	assert.Equal(t, "welcome", r.Name(2))
	assert.Equal(t, "exit", r.Name(ScreenExit))
	assert.Equal(t, "screen(5)", r.Name(5))
}
