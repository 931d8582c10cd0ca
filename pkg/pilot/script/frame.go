package script

import (
	"fmt"

	"github.com/BrandonKowalski/pilot/pkg/pilot/stack"
)

// Frame is the frame type built for every declared script variant.
type Frame struct {
	variant   stack.Variant
	seq       int
	invisible bool
	arg       *string
	onPopped  func(*Frame)
}

func (f *Frame) Invisible() bool { return f.invisible }

func (f *Frame) Popped() {
	if f.onPopped != nil {
		f.onPopped(f)
	}
}

// Args returns the string argument the frame was built with, or nil.
func (f *Frame) Args() any {
	if f.arg == nil {
		return nil
	}
	return *f.arg
}

// Label identifies the frame as variant#seq, with the argument if any.
func (f *Frame) Label() string {
	if f.arg != nil {
		return fmt.Sprintf("%s#%d(%s)", f.variant, f.seq, *f.arg)
	}
	return fmt.Sprintf("%s#%d", f.variant, f.seq)
}

func (f *Frame) String() string {
	return f.Label()
}

// Factory returns a factory with a builder for every declared variant.
// Frames are numbered from 1 in construction order, and onPopped (if not
// nil) is called from each frame's Popped hook.
func (sc *Script) Factory(onPopped func(*Frame)) (*stack.Factory, error) {
	f := stack.NewFactory()
	seq := 0
	for _, v := range sc.Variants {
		variant := stack.Variant(v.Name)
		invisible := v.Invisible

		var b stack.Builder
		if v.Arg {
			b = stack.WithArg(func(arg string) stack.Frame {
				seq++
				return &Frame{variant: variant, seq: seq, invisible: invisible, arg: &arg, onPopped: onPopped}
			})
		} else {
			b = stack.NoArgs(func() stack.Frame {
				seq++
				return &Frame{variant: variant, seq: seq, invisible: invisible, onPopped: onPopped}
			})
		}
		if err := f.Register(variant, b); err != nil {
			return nil, err
		}
	}
	return f, nil
}
