package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type topOnly struct{ calls []Direction }

func (t *topOnly) TopVisibleFrameUpdated(_ Frame, d Direction) { t.calls = append(t.calls, d) }

type emptyOnly struct{ calls int }

func (e *emptyOnly) NoVisibleFramesLeft() { e.calls++ }

func TestNewMultiListener_FiltersNilAndSplitsByCallback(t *testing.T) {
	both := &recordingListener{}
	top := &topOnly{}
	empty := &emptyOnly{}

	m := NewMultiListener(both, nil, top, empty, "not a listener")

	assert.Len(t, m.top, 2)
	assert.Len(t, m.empty, 2)
	assert.Equal(t, 4, m.Len())
}

func TestMultiListener_Add(t *testing.T) {
	m := NewMultiListener()
	assert.False(t, m.Add(nil))
	assert.False(t, m.Add(42))
	assert.True(t, m.Add(&emptyOnly{}))
	assert.Equal(t, 1, m.Len())
}

func TestMultiListener_FansOut(t *testing.T) {
	a := &recordingListener{}
	b := &recordingListener{}
	s := New(testFactory())
	m := NewMultiListener(a, b)
	s.SetTopFrameChangedListener(m)
	s.SetStackEmptyListener(m)

	f := mustPush(t, s, variantUI1)
	s.PopTopVisibleFrame()

	for _, r := range []*recordingListener{a, b} {
		if assert.Len(t, r.top, 1) {
			assert.Same(t, f, r.top[0].frame)
			assert.Equal(t, Forward, r.top[0].direction)
		}
		assert.Equal(t, 1, r.empty)
	}
}

func TestMultiListener_PanicDoesNotBlockOthers(t *testing.T) {
	after := &recordingListener{}
	m := NewMultiListener(
		TopFrameChangedFunc(func(Frame, Direction) { panic("boom") }),
		StackEmptyFunc(func() { panic("boom") }),
		after,
	)

	assert.NotPanics(t, func() {
		m.TopVisibleFrameUpdated(&uiFrame1{}, Back)
		m.NoVisibleFramesLeft()
	})
	assert.Len(t, after.top, 1)
	assert.Equal(t, 1, after.empty)
}

func TestMultiListener_Empty(t *testing.T) {
	m := NewMultiListener()
	// Should not panic
	m.TopVisibleFrameUpdated(nil, Forward)
	m.NoVisibleFramesLeft()
}

func TestFuncAdapters(t *testing.T) {
	var gotDir Direction
	var emptied bool
	TopFrameChangedFunc(func(_ Frame, d Direction) { gotDir = d }).TopVisibleFrameUpdated(nil, Back)
	StackEmptyFunc(func() { emptied = true }).NoVisibleFramesLeft()
	assert.Equal(t, Back, gotDir)
	assert.True(t, emptied)
}
