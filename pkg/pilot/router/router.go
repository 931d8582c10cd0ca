package router

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/pilot/pkg/pilot/internal"
	"github.com/BrandonKowalski/pilot/pkg/pilot/stack"
)

// ErrScreenNotRegistered is reported when a frame with no registered
// screen becomes the top visible frame.
var ErrScreenNotRegistered = errors.New("screen not registered")

// ScreenFunc runs a screen for the frame that just became the top visible
// frame. dir tells it whether the user advanced to it or came back to it.
type ScreenFunc func(frame stack.Frame, dir stack.Direction) error

// ErrorFunc receives errors from screens and missing registrations.
type ErrorFunc func(variant stack.Variant, err error)

// Router maps frame variants to screens and runs the right one every time
// the top visible frame of its stack changes.
type Router struct {
	stack   *stack.Stack
	screens map[stack.Variant]ScreenFunc
	onEmpty func()
	onError ErrorFunc
	current stack.Frame
	logger  *slog.Logger
}

var (
	_ stack.TopFrameChangedListener = (*Router)(nil)
	_ stack.StackEmptyListener      = (*Router)(nil)
)

// New creates a Router and installs it as both listeners of s, replacing
// any listeners already registered. Use stack.MultiListener to keep
// others.
func New(s *stack.Stack) *Router {
	r := &Router{
		stack:   s,
		screens: make(map[stack.Variant]ScreenFunc),
		logger:  internal.GetLogger(),
	}
	s.SetTopFrameChangedListener(r)
	s.SetStackEmptyListener(r)
	return r
}

// Register adds a screen for a variant.
// The screen function will be called whenever a frame of this variant
// becomes the top visible frame.
func (r *Router) Register(variant stack.Variant, fn ScreenFunc) *Router {
	r.screens[variant] = fn
	return r
}

// OnEmpty sets the function called when no visible frame is left.
func (r *Router) OnEmpty(fn func()) *Router {
	r.onEmpty = fn
	return r
}

// OnError sets the function that receives screen errors.
func (r *Router) OnError(fn ErrorFunc) *Router {
	r.onError = fn
	return r
}

// Navigate pushes a frame of the variant. If it is visible, its screen runs
// before Navigate returns.
func (r *Router) Navigate(variant stack.Variant, args ...any) (stack.Frame, error) {
	frame, err := r.stack.PushFrame(variant, args...)
	if err != nil {
		return nil, fmt.Errorf("router: navigate to %s: %w", variant, err)
	}
	return frame, nil
}

// Back pops the top visible frame and returns to the one below it.
func (r *Router) Back() {
	r.stack.PopTopVisibleFrame()
}

// BackTo pops every frame above the nearest frame of the variant, making
// it (or the visible frame below it, for data frames) current again.
func (r *Router) BackTo(variant stack.Variant) {
	r.stack.PopStackAtFrameType(variant, stack.Exclusive, true)
}

// Current returns the frame whose screen ran last, or nil if that frame
// has since been removed from the stack.
func (r *Router) Current() stack.Frame {
	if r.current == nil || !r.stack.Contains(r.current) {
		return nil
	}
	return r.current
}

// Stack returns the navigation stack the router is attached to.
func (r *Router) Stack() *stack.Stack {
	return r.stack
}

// TopVisibleFrameUpdated runs the screen registered for the frame's variant.
func (r *Router) TopVisibleFrameUpdated(frame stack.Frame, dir stack.Direction) {
	r.current = frame

	variant, _ := r.stack.VariantOf(frame)
	fn, ok := r.screens[variant]
	if !ok {
		r.fail(variant, fmt.Errorf("router: screen %s: %w", variant, ErrScreenNotRegistered))
		return
	}

	if err := fn(frame, dir); err != nil {
		r.fail(variant, fmt.Errorf("router: screen %s error: %w", variant, err))
	}
}

// NoVisibleFramesLeft forgets the current frame and calls the OnEmpty function.
func (r *Router) NoVisibleFramesLeft() {
	r.current = nil
	if r.onEmpty != nil {
		r.onEmpty()
	}
}

func (r *Router) fail(variant stack.Variant, err error) {
	r.logger.Error("screen failed", "variant", variant, "error", err)
	if r.onError != nil {
		r.onError(variant, err)
	}
}
