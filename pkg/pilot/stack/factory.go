package stack

import "fmt"

// Arity is the number of arguments a variant's constructor takes.
type Arity int

const (
	ArityNone Arity = iota
	ArityOne
)

func (a Arity) String() string {
	switch a {
	case ArityNone:
		return "none"
	case ArityOne:
		return "one"
	default:
		return "unknown"
	}
}

// Builder constructs frames of one variant. Use NoArgs or WithArg to
// create one.
type Builder interface {
	Arity() Arity
	build(variant Variant, args []any) (Frame, error)
}

type noArgsBuilder func() Frame

// NoArgs returns a Builder for a variant constructed without arguments.
func NoArgs(fn func() Frame) Builder {
	if fn == nil {
		return nil
	}
	return noArgsBuilder(fn)
}

func (noArgsBuilder) Arity() Arity { return ArityNone }

func (b noArgsBuilder) build(variant Variant, args []any) (Frame, error) {
	if len(args) != 0 {
		return nil, newConstructionError(variant,
			fmt.Errorf("%w: %q takes no argument, got %d", ErrArityMismatch, variant, len(args)))
	}
	return b(), nil
}

type withArgBuilder[A any] func(A) Frame

// WithArg returns a Builder for a variant constructed with exactly one
// argument of type A. A nil argument is passed as the zero value of A.
func WithArg[A any](fn func(A) Frame) Builder {
	if fn == nil {
		return nil
	}
	return withArgBuilder[A](fn)
}

func (withArgBuilder[A]) Arity() Arity { return ArityOne }

func (b withArgBuilder[A]) build(variant Variant, args []any) (Frame, error) {
	if len(args) != 1 {
		return nil, newConstructionError(variant,
			fmt.Errorf("%w: %q requires one argument, got %d", ErrArityMismatch, variant, len(args)))
	}
	var arg A
	if args[0] != nil {
		v, ok := args[0].(A)
		if !ok {
			return nil, newConstructionError(variant,
				fmt.Errorf("%w: %q wants %T, got %T", ErrArgumentType, variant, arg, args[0]))
		}
		arg = v
	}
	return b(arg), nil
}

// Factory builds frames by variant. Each variant has exactly one
// registered Builder.
type Factory struct {
	builders map[Variant]Builder
}

// NewFactory creates an empty Factory.
func NewFactory() *Factory {
	return &Factory{
		builders: make(map[Variant]Builder),
	}
}

// Register adds the constructor for a variant. Registering a variant twice
// is an ambiguous constructor shape and fails.
func (f *Factory) Register(variant Variant, b Builder) error {
	if variant == "" || b == nil {
		return newConstructionError(variant, ErrMissingConstructor)
	}
	if _, ok := f.builders[variant]; ok {
		return newConstructionError(variant,
			fmt.Errorf("%w: %q is already registered", ErrAmbiguousConstructor, variant))
	}
	f.builders[variant] = b
	return nil
}

// MustRegister is like Register but panics on error. Intended for
// registrations made at program start.
func (f *Factory) MustRegister(variant Variant, b Builder) *Factory {
	if err := f.Register(variant, b); err != nil {
		panic(err)
	}
	return f
}

// Registered reports whether a constructor exists for the variant.
func (f *Factory) Registered(variant Variant) bool {
	_, ok := f.builders[variant]
	return ok
}

// ArityOf returns the arity of the variant's constructor.
func (f *Factory) ArityOf(variant Variant) (Arity, bool) {
	b, ok := f.builders[variant]
	if !ok {
		return 0, false
	}
	return b.Arity(), true
}

// Create builds a new frame of the variant. At most one argument may be
// supplied, and only to a variant whose constructor takes one.
func (f *Factory) Create(variant Variant, args ...any) (Frame, error) {
	b, ok := f.builders[variant]
	if !ok {
		return nil, newConstructionError(variant, ErrUnknownVariant)
	}
	if len(args) > 1 {
		return nil, newConstructionError(variant,
			fmt.Errorf("%w: %d arguments supplied", ErrAmbiguousConstructor, len(args)))
	}
	frame, err := b.build(variant, args)
	if err != nil {
		return nil, err
	}
	if frame == nil || !answers(frame) {
		return nil, newConstructionError(variant, ErrNilFrame)
	}
	return frame, nil
}

// answers reports whether frame can report its visibility. A typed nil
// pointer whose methods are promoted from an embedded struct cannot.
func answers(frame Frame) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	frame.Invisible()
	return true
}
