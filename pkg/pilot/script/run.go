package script

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/pilot/pkg/pilot/internal"
	"github.com/BrandonKowalski/pilot/pkg/pilot/stack"
)

// EventKind classifies a recorded event.
type EventKind string

const (
	EventTopChanged EventKind = "top_changed"
	EventEmpty      EventKind = "empty"
	EventPopped     EventKind = "popped"
	EventError      EventKind = "error" // an expected error
)

// Event is one listener callback, Popped hook or expected error, in the
// order it happened.
type Event struct {
	Step      int
	Op        Op
	Kind      EventKind
	Frame     string          // frame label, empty for EventEmpty and EventError
	Direction stack.Direction // only meaningful for EventTopChanged
	Err       error           // only set for EventError
}

func (e Event) String() string {
	switch e.Kind {
	case EventTopChanged:
		return fmt.Sprintf("step %d %s: top %s (%s)", e.Step, e.Op, e.Frame, e.Direction)
	case EventEmpty:
		return fmt.Sprintf("step %d %s: no visible frames left", e.Step, e.Op)
	case EventPopped:
		return fmt.Sprintf("step %d %s: popped %s", e.Step, e.Op, e.Frame)
	default:
		return fmt.Sprintf("step %d %s: expected error: %v", e.Step, e.Op, e.Err)
	}
}

// Result is the outcome of a run.
type Result struct {
	Events []Event
	Final  []string // frame labels, bottom to top
	Top    string   // label of the top visible frame, empty if none
}

// Count returns the number of events of the given kind.
func (r *Result) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// StepError reports the step at which a run stopped.
type StepError struct {
	Step int
	Op   Op
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("script: step %d (%s): %v", e.Step, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

var (
	// ErrUnexpectedSuccess is returned when a step marked expect_error succeeds.
	ErrUnexpectedSuccess = errors.New("step succeeded but an error was expected")

	// ErrIndexOutOfRange is returned when a step's index names no frame.
	ErrIndexOutOfRange = errors.New("index out of range")
)

type runner struct {
	stack  *stack.Stack
	result *Result
	step   int
	op     Op
	logger *slog.Logger
}

func (r *runner) record(e Event) {
	e.Step = r.step
	e.Op = r.op
	r.result.Events = append(r.result.Events, e)
}

func (r *runner) TopVisibleFrameUpdated(frame stack.Frame, dir stack.Direction) {
	r.record(Event{Kind: EventTopChanged, Frame: label(frame), Direction: dir})
}

func (r *runner) NoVisibleFramesLeft() {
	r.record(Event{Kind: EventEmpty})
}

// Run replays the script against a fresh stack. It stops at the first
// step that fails unexpectedly and returns the events recorded so far
// together with a *StepError.
func Run(sc *Script) (*Result, error) {
	r := &runner{
		result: &Result{},
		logger: internal.GetLogger(),
	}

	factory, err := sc.Factory(func(f *Frame) {
		r.record(Event{Kind: EventPopped, Frame: f.Label()})
	})
	if err != nil {
		return nil, err
	}
	r.stack = stack.New(factory, stack.WithTopFrameChangedListener(r), stack.WithStackEmptyListener(r))

	for i, st := range sc.Steps {
		r.step, r.op = i, st.Op
		if err := r.check(st, r.apply(st)); err != nil {
			r.finish()
			return r.result, &StepError{Step: i, Op: st.Op, Err: err}
		}
	}

	r.finish()
	r.logger.Debug("script finished",
		"name", sc.Name,
		"steps", len(sc.Steps),
		"events", len(r.result.Events),
		"size", r.stack.FrameSize())
	return r.result, nil
}

func (r *runner) check(st Step, err error) error {
	switch st.ExpectError {
	case "":
		return err
	case ExpectConstruction:
		if err == nil {
			return ErrUnexpectedSuccess
		}
		if !stack.IsConstructionError(err) {
			return err
		}
	case ExpectIllegalState:
		if err == nil {
			return ErrUnexpectedSuccess
		}
		if !stack.IsIllegalState(err) {
			return err
		}
	}
	r.record(Event{Kind: EventError, Err: err})
	return nil
}

func (r *runner) apply(st Step) error {
	s := r.stack
	switch st.Op {
	case OpPush:
		var args []any
		if st.Arg != nil {
			args = append(args, *st.Arg)
		}
		_, err := s.PushFrame(stack.Variant(st.Variant), args...)
		return err

	case OpPop:
		s.PopTopVisibleFrame()
		return nil

	case OpPopExpect:
		expected := s.TopVisibleFrame()
		if st.Index != nil {
			f, err := r.frameAt(*st.Index)
			if err != nil {
				return err
			}
			expected = f
		}
		return s.PopTopVisibleFrameExpecting(expected)

	case OpPopAt:
		popType, err := parsePopType(st.PopType)
		if err != nil {
			return err
		}
		s.PopStackAtFrameType(stack.Variant(st.Variant), popType, st.ShouldNotify())
		return nil

	case OpRemove:
		f, err := r.frameAt(*st.Index)
		if err != nil {
			return err
		}
		s.RemoveFrame(f)
		return nil

	case OpClear:
		s.ClearStack(st.ShouldNotify())
		return nil
	}
	return fmt.Errorf("unknown op %q", st.Op)
}

func (r *runner) frameAt(index int) (stack.Frame, error) {
	frames := r.stack.Frames()
	if index < 0 {
		index += len(frames)
	}
	if index < 0 || index >= len(frames) {
		return nil, fmt.Errorf("%w: %d with %d frames", ErrIndexOutOfRange, index, len(frames))
	}
	return frames[index], nil
}

func (r *runner) finish() {
	frames := r.stack.Frames()
	r.result.Final = make([]string, len(frames))
	for i, f := range frames {
		r.result.Final[i] = label(f)
	}
	r.result.Top = label(r.stack.TopVisibleFrame())
}

func label(f stack.Frame) string {
	switch v := f.(type) {
	case nil:
		return ""
	case *Frame:
		return v.Label()
	default:
		return fmt.Sprintf("%T", f)
	}
}
