package stack

import "go.uber.org/atomic"

// Variant names a kind of frame. Applications should define their own
// Variant constants, one per frame type they register with a Factory.
//
// Example:
//
//	const (
//	    VariantHome     stack.Variant = "home"
//	    VariantSettings stack.Variant = "settings"
//	    VariantSession  stack.Variant = "session" // invisible data frame
//	)
type Variant string

// Frame is a unit of navigational state held on a Stack.
//
// Frames are compared by identity, so implementations should be pointer
// types. A frame returned by a Builder must be a fresh value.
type Frame interface {
	// Invisible reports whether the frame only holds data. Invisible frames
	// keep their place in the stack but are never the top visible frame.
	// The answer must not change after construction.
	Invisible() bool

	// Popped is called exactly once, when the frame is permanently removed.
	Popped()
}

// Visible can be embedded in a frame type to make it a visible frame with
// a no-op Popped hook.
type Visible struct {
	_ byte // keeps pointers to otherwise empty frame types distinct
}

func (Visible) Invisible() bool { return false }
func (Visible) Popped()         {}

// Data can be embedded in a frame type to make it an invisible data frame
// with a no-op Popped hook.
type Data struct {
	_ byte // keeps pointers to otherwise empty frame types distinct
}

func (Data) Invisible() bool { return true }
func (Data) Popped()         {}

// ArgsHolder is implemented by frames that expose the argument they were
// constructed with.
type ArgsHolder interface {
	Args() any
}

// ArgsOf returns the construction argument of f, if f exposes one.
func ArgsOf(f Frame) (any, bool) {
	h, ok := f.(ArgsHolder)
	if !ok {
		return nil, false
	}
	return h.Args(), true
}

// Direction tells listeners whether the top visible frame changed because
// the stack advanced (push) or retreated (pop or removal).
type Direction int

const (
	Forward Direction = iota
	Back
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Back:
		return "back"
	default:
		return "unknown"
	}
}

// PopType selects whether PopStackAtFrameType removes the matching frame
// itself (Inclusive) or only the frames above it (Exclusive).
type PopType int

const (
	Inclusive PopType = iota
	Exclusive
)

func (p PopType) String() string {
	switch p {
	case Inclusive:
		return "inclusive"
	case Exclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// entry is a single position in the stack: the frame and the variant it
// was built from.
type entry struct {
	variant Variant
	frame   Frame
	popped  atomic.Bool
}

// release fires the frame's Popped hook the first time it is called.
func (e *entry) release() {
	if e.popped.CompareAndSwap(false, true) {
		e.frame.Popped()
	}
}
