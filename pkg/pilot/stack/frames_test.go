package stack

const (
	variantUI1     Variant = "ui1"
	variantUI2     Variant = "ui2"
	variantUI3     Variant = "ui3"
	variantData    Variant = "data"
	variantNoArgs  Variant = "no-args"
	variantArgs    Variant = "args"
	variantPopping Variant = "popping"
)

type uiFrame1 struct{ Visible }
type uiFrame2 struct{ Visible }
type uiFrame3 struct{ Visible }

type dataFrame struct{ Data }

type noArgsFrame struct{ Visible }

type testArgs struct {
	Name string
}

type argsFrame struct {
	Visible
	args *testArgs
}

func (f *argsFrame) Args() any { return f.args }

// poppingFrame records how many times its Popped hook ran, and in which
// order relative to other popping frames.
type poppingFrame struct {
	Visible
	popped int
	log    *[]*poppingFrame
}

func (f *poppingFrame) Popped() {
	f.popped++
	if f.log != nil {
		*f.log = append(*f.log, f)
	}
}

func testFactory() *Factory {
	return NewFactory().
		MustRegister(variantUI1, NoArgs(func() Frame { return &uiFrame1{} })).
		MustRegister(variantUI2, NoArgs(func() Frame { return &uiFrame2{} })).
		MustRegister(variantUI3, NoArgs(func() Frame { return &uiFrame3{} })).
		MustRegister(variantData, NoArgs(func() Frame { return &dataFrame{} })).
		MustRegister(variantNoArgs, NoArgs(func() Frame { return &noArgsFrame{} })).
		MustRegister(variantArgs, WithArg(func(a *testArgs) Frame { return &argsFrame{args: a} }))
}

// popLogFactory registers variantPopping so that every frame it builds
// appends itself to log when popped.
func popLogFactory(log *[]*poppingFrame) *Factory {
	return testFactory().
		MustRegister(variantPopping, NoArgs(func() Frame { return &poppingFrame{log: log} }))
}

type topCall struct {
	frame     Frame
	direction Direction
}

// recordingListener records every callback from the stack.
type recordingListener struct {
	top   []topCall
	empty int
}

func (r *recordingListener) TopVisibleFrameUpdated(frame Frame, direction Direction) {
	r.top = append(r.top, topCall{frame: frame, direction: direction})
}

func (r *recordingListener) NoVisibleFramesLeft() {
	r.empty++
}

func (r *recordingListener) calls() int {
	return len(r.top) + r.empty
}

// listen attaches a fresh recordingListener to both slots of s.
func listen(s *Stack) *recordingListener {
	r := &recordingListener{}
	s.SetTopFrameChangedListener(r)
	s.SetStackEmptyListener(r)
	return r
}
