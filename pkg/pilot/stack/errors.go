package stack

import (
	"errors"
	"fmt"
)

// Sentinel errors for construction and state failures.
var (
	// ErrArityMismatch indicates an argument was supplied to a variant that
	// takes none, or was missing for a variant that requires one.
	ErrArityMismatch = errors.New("argument count does not match constructor")

	// ErrArgumentType indicates the supplied argument is not of the type the
	// variant's constructor declares.
	ErrArgumentType = errors.New("argument type does not match constructor")

	// ErrAmbiguousConstructor indicates a variant has more than one
	// constructor, or a push supplied more than one argument.
	ErrAmbiguousConstructor = errors.New("ambiguous constructor")

	// ErrMissingConstructor indicates a registration without a usable
	// constructor (nil builder or empty variant name).
	ErrMissingConstructor = errors.New("missing constructor")

	// ErrUnknownVariant indicates no constructor is registered for the variant.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrNilFrame indicates a constructor returned no frame.
	ErrNilFrame = errors.New("constructor returned nil frame")

	// ErrFrameReused indicates a constructor returned a frame that is already
	// on the stack.
	ErrFrameReused = errors.New("constructor returned a frame already on the stack")

	// ErrIllegalState indicates the caller's view of the stack is stale.
	ErrIllegalState = errors.New("illegal stack state")
)

// ConstructionError reports that a frame of the given variant could not be
// built. The stack is never modified when one is returned.
type ConstructionError struct {
	Variant Variant // Variant that was requested
	Err     error   // Underlying error, one of the sentinels above
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("pilot: construct %q: %v", e.Variant, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func newConstructionError(variant Variant, err error) *ConstructionError {
	return &ConstructionError{Variant: variant, Err: err}
}

// IsConstructionError checks if an error is a construction error.
func IsConstructionError(err error) bool {
	var ce *ConstructionError
	return errors.As(err, &ce)
}

// IllegalStateError reports an operation refused because the stack is not
// in the state the caller expected. The stack is not modified.
type IllegalStateError struct {
	Op  string // Operation that was refused (e.g., "pop_top_visible")
	Err error  // Underlying error, wraps ErrIllegalState
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("pilot: %s: %v", e.Op, e.Err)
}

func (e *IllegalStateError) Unwrap() error {
	return e.Err
}

// IsIllegalState checks if an error indicates an illegal stack state.
func IsIllegalState(err error) bool {
	return errors.Is(err, ErrIllegalState)
}
