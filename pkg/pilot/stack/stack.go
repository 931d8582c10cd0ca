package stack

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/BrandonKowalski/pilot/pkg/pilot/internal"
)

// Stack is an ordered sequence of frames, bottom to top. It builds frames
// through its Factory and tells its listeners when the top visible frame
// changes.
//
// A Stack is not safe for concurrent use. Listeners run synchronously,
// after the mutation that triggered them has completed, and must not
// mutate the stack from inside the callback.
type Stack struct {
	factory *Factory
	entries []*entry

	topListener   TopFrameChangedListener
	emptyListener StackEmptyListener

	logger *slog.Logger
}

// Option configures a Stack.
type Option func(*Stack)

// WithLogger sets the logger used for mutation logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Stack) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTopFrameChangedListener registers l at construction time.
func WithTopFrameChangedListener(l TopFrameChangedListener) Option {
	return func(s *Stack) {
		s.topListener = l
	}
}

// WithStackEmptyListener registers l at construction time.
func WithStackEmptyListener(l StackEmptyListener) Option {
	return func(s *Stack) {
		s.emptyListener = l
	}
}

// New creates an empty Stack that builds frames with factory.
// A nil factory is replaced with an empty one.
func New(factory *Factory, opts ...Option) *Stack {
	if factory == nil {
		factory = NewFactory()
	}
	s := &Stack{
		factory: factory,
		entries: make([]*entry, 0),
		logger:  internal.GetLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Factory returns the factory the stack builds frames with.
func (s *Stack) Factory() *Factory {
	return s.factory
}

// SetTopFrameChangedListener replaces the top-frame listener. Pass nil to clear it.
func (s *Stack) SetTopFrameChangedListener(l TopFrameChangedListener) {
	s.topListener = l
}

// SetStackEmptyListener replaces the empty-stack listener. Pass nil to clear it.
func (s *Stack) SetStackEmptyListener(l StackEmptyListener) {
	s.emptyListener = l
}

// PushFrame builds a frame of the variant and places it on top of the
// stack. If the new frame is visible, the top-frame listener is notified
// with direction Forward.
//
// Construction failures leave the stack unchanged.
func (s *Stack) PushFrame(variant Variant, args ...any) (Frame, error) {
	before := s.TopVisibleFrame()

	frame, err := s.factory.Create(variant, args...)
	if err != nil {
		s.logger.Debug("push failed", "variant", variant, "error", err)
		return nil, err
	}
	if s.indexOf(frame) >= 0 {
		return nil, newConstructionError(variant, ErrFrameReused)
	}

	s.entries = append(s.entries, &entry{variant: variant, frame: frame})
	s.logger.Debug("pushed frame",
		"variant", variant,
		"invisible", frame.Invisible(),
		"size", len(s.entries))

	s.notify(before, Forward)
	return frame, nil
}

// PopTopVisibleFrame removes the top visible frame together with every
// frame above it. Listeners are then told about the new top visible frame
// (direction Back), or that no visible frame is left.
//
// Popping a stack with no visible frame does nothing.
func (s *Stack) PopTopVisibleFrame() {
	idx := s.topVisibleIndex()
	if idx < 0 {
		return
	}
	before := s.entries[idx].frame
	s.popFrom(idx, "pop_top_visible")
	s.notify(before, Back)
}

// PopTopVisibleFrameExpecting is PopTopVisibleFrame guarded by an identity
// check: if expected is not the current top visible frame, it returns an
// *IllegalStateError and leaves the stack untouched.
func (s *Stack) PopTopVisibleFrameExpecting(expected Frame) error {
	idx := s.topVisibleIndex()
	if idx < 0 {
		return &IllegalStateError{
			Op:  "pop_top_visible",
			Err: fmt.Errorf("%w: no visible frame on the stack", ErrIllegalState),
		}
	}
	before := s.entries[idx].frame
	if expected == nil || before != expected {
		return &IllegalStateError{
			Op:  "pop_top_visible",
			Err: fmt.Errorf("%w: top visible frame is %s, not the expected %T", ErrIllegalState, s.entries[idx].variant, expected),
		}
	}
	s.popFrom(idx, "pop_top_visible")
	s.notify(before, Back)
	return nil
}

// PopStackAtFrameType finds the frame of the variant nearest the top and
// removes everything above it. With Inclusive the matching frame is
// removed too. Listeners are told about the change only when notify is set
// and the top visible frame actually changed.
//
// If no frame of the variant is on the stack, nothing happens.
func (s *Stack) PopStackAtFrameType(variant Variant, popType PopType, notify bool) {
	idx := s.lastIndexOfVariant(variant)
	if idx < 0 {
		return
	}
	from := idx
	if popType == Exclusive {
		from = idx + 1
	}
	if from >= len(s.entries) {
		return
	}

	before := s.TopVisibleFrame()
	s.popFrom(from, "pop_at_frame_type")
	if notify {
		s.notify(before, Back)
	}
}

// RemoveFrame removes one frame wherever it sits. Listeners are notified
// (direction Back) only if it was the top visible frame. Frames not on the
// stack are ignored.
func (s *Stack) RemoveFrame(frame Frame) {
	if frame == nil {
		return
	}
	idx := s.indexOf(frame)
	if idx < 0 {
		return
	}

	before := s.TopVisibleFrame()
	e := s.entries[idx]
	s.entries = slices.Delete(s.entries, idx, idx+1)
	s.logger.Debug("removed frame",
		"variant", e.variant,
		"position", idx,
		"size", len(s.entries))
	e.release()

	s.notify(before, Back)
}

// ClearStack pops every frame, top to bottom. When notify is set, the
// empty-stack listener is called once, even if every frame was invisible.
// Clearing an empty stack does nothing.
func (s *Stack) ClearStack(notify bool) {
	if len(s.entries) == 0 {
		return
	}
	s.popFrom(0, "clear")
	if notify {
		s.logger.Debug("no visible frames left")
		if s.emptyListener != nil {
			s.emptyListener.NoVisibleFramesLeft()
		}
	}
}

// TopVisibleFrame returns the newest visible frame, or nil if there is none.
func (s *Stack) TopVisibleFrame() Frame {
	idx := s.topVisibleIndex()
	if idx < 0 {
		return nil
	}
	return s.entries[idx].frame
}

// FrameOfType returns the frame of the variant nearest the top of the
// stack, or nil if there is none. Invisible frames are included.
func (s *Stack) FrameOfType(variant Variant) Frame {
	idx := s.lastIndexOfVariant(variant)
	if idx < 0 {
		return nil
	}
	return s.entries[idx].frame
}

// FrameSize returns the number of frames, visible and invisible.
func (s *Stack) FrameSize() int {
	return len(s.entries)
}

// IsEmpty returns true if the stack has no frames.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Contains reports whether frame is currently on the stack.
func (s *Stack) Contains(frame Frame) bool {
	return frame != nil && s.indexOf(frame) >= 0
}

// VariantOf returns the variant a frame on the stack was built from.
func (s *Stack) VariantOf(frame Frame) (Variant, bool) {
	if frame == nil {
		return "", false
	}
	idx := s.indexOf(frame)
	if idx < 0 {
		return "", false
	}
	return s.entries[idx].variant, true
}

// Frames returns the frames bottom to top (shallow copy).
func (s *Stack) Frames() []Frame {
	frames := make([]Frame, len(s.entries))
	for i, e := range s.entries {
		frames[i] = e.frame
	}
	return frames
}

// Variants returns the variant of every frame, bottom to top.
func (s *Stack) Variants() []Variant {
	variants := make([]Variant, len(s.entries))
	for i, e := range s.entries {
		variants[i] = e.variant
	}
	return variants
}

// String renders the stack bottom to top, marking invisible frames with
// parentheses and the top visible frame with an asterisk.
func (s *Stack) String() string {
	top := s.topVisibleIndex()
	parts := make([]string, len(s.entries))
	for i, e := range s.entries {
		name := string(e.variant)
		if e.frame.Invisible() {
			name = "(" + name + ")"
		}
		if i == top {
			name += "*"
		}
		parts[i] = name
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// popFrom unlinks every entry at or above idx, then fires their Popped
// hooks newest first.
func (s *Stack) popFrom(idx int, op string) {
	removed := slices.Clone(s.entries[idx:])
	clear(s.entries[idx:])
	s.entries = s.entries[:idx]

	s.logger.Debug("popped frames",
		"op", op,
		"count", len(removed),
		"size", len(s.entries))

	for i := len(removed) - 1; i >= 0; i-- {
		removed[i].release()
	}
}

// notify compares the top visible frame with before and calls exactly one
// listener if it changed.
func (s *Stack) notify(before Frame, direction Direction) {
	after := s.TopVisibleFrame()
	if before == after {
		return
	}
	if after == nil {
		s.logger.Debug("no visible frames left")
		if s.emptyListener != nil {
			s.emptyListener.NoVisibleFramesLeft()
		}
		return
	}
	s.logger.Debug("top visible frame changed", "direction", direction.String())
	if s.topListener != nil {
		s.topListener.TopVisibleFrameUpdated(after, direction)
	}
}

func (s *Stack) topVisibleIndex() int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if !s.entries[i].frame.Invisible() {
			return i
		}
	}
	return -1
}

func (s *Stack) lastIndexOfVariant(variant Variant) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].variant == variant {
			return i
		}
	}
	return -1
}

func (s *Stack) indexOf(frame Frame) int {
	for i, e := range s.entries {
		if e.frame == frame {
			return i
		}
	}
	return -1
}
