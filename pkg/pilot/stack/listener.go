package stack

// TopFrameChangedListener is notified whenever the top visible frame
// changes to a frame.
type TopFrameChangedListener interface {
	TopVisibleFrameUpdated(frame Frame, direction Direction)
}

// StackEmptyListener is notified whenever a mutation leaves the stack with
// no visible frame.
type StackEmptyListener interface {
	NoVisibleFramesLeft()
}

// TopFrameChangedFunc adapts a function to a TopFrameChangedListener.
type TopFrameChangedFunc func(frame Frame, direction Direction)

func (fn TopFrameChangedFunc) TopVisibleFrameUpdated(frame Frame, direction Direction) {
	fn(frame, direction)
}

// StackEmptyFunc adapts a function to a StackEmptyListener.
type StackEmptyFunc func()

func (fn StackEmptyFunc) NoVisibleFramesLeft() {
	fn()
}

// MultiListener fans out both listener callbacks to several listeners.
// It handles nil listeners gracefully by skipping them.
type MultiListener struct {
	top   []TopFrameChangedListener
	empty []StackEmptyListener
}

var (
	_ TopFrameChangedListener = (*MultiListener)(nil)
	_ StackEmptyListener      = (*MultiListener)(nil)
)

// NewMultiListener creates a MultiListener. Each listener is subscribed to
// whichever of the two callbacks it implements; nil listeners are dropped.
func NewMultiListener(listeners ...any) *MultiListener {
	m := &MultiListener{}
	for _, l := range listeners {
		m.Add(l)
	}
	return m
}

// Add subscribes l to whichever callbacks it implements and reports
// whether it implemented either.
func (m *MultiListener) Add(l any) bool {
	if l == nil {
		return false
	}
	added := false
	if t, ok := l.(TopFrameChangedListener); ok && t != nil {
		m.top = append(m.top, t)
		added = true
	}
	if e, ok := l.(StackEmptyListener); ok && e != nil {
		m.empty = append(m.empty, e)
		added = true
	}
	return added
}

// Len returns the number of subscriptions held.
func (m *MultiListener) Len() int {
	return len(m.top) + len(m.empty)
}

// safeCall calls fn with panic recovery. One listener failing shouldn't
// block the others.
func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

func (m *MultiListener) TopVisibleFrameUpdated(frame Frame, direction Direction) {
	for _, l := range m.top {
		safeCall(func() { l.TopVisibleFrameUpdated(frame, direction) })
	}
}

func (m *MultiListener) NoVisibleFramesLeft() {
	for _, l := range m.empty {
		safeCall(func() { l.NoVisibleFramesLeft() })
	}
}
