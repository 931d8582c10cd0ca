package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/pilot/pkg/pilot/stack"
)

const (
	screenHome   stack.Variant = "home"
	screenDetail stack.Variant = "detail"
	screenState  stack.Variant = "state"
	screenOrphan stack.Variant = "orphan"
)

type homeFrame struct{ stack.Visible }

type detailFrame struct {
	stack.Visible
	id string
}

type stateFrame struct{ stack.Data }

type orphanFrame struct{ stack.Visible }

type visit struct {
	variant stack.Variant
	dir     stack.Direction
}

func newTestRouter(t *testing.T) (*Router, *[]visit) {
	t.Helper()
	f := stack.NewFactory().
		MustRegister(screenHome, stack.NoArgs(func() stack.Frame { return &homeFrame{} })).
		MustRegister(screenDetail, stack.WithArg(func(id string) stack.Frame { return &detailFrame{id: id} })).
		MustRegister(screenState, stack.NoArgs(func() stack.Frame { return &stateFrame{} })).
		MustRegister(screenOrphan, stack.NoArgs(func() stack.Frame { return &orphanFrame{} }))

	var visits []visit
	r := New(stack.New(f))
	record := func(variant stack.Variant) ScreenFunc {
		return func(_ stack.Frame, dir stack.Direction) error {
			visits = append(visits, visit{variant, dir})
			return nil
		}
	}
	r.Register(screenHome, record(screenHome)).
		Register(screenDetail, record(screenDetail))
	return r, &visits
}

func TestRouter_NavigateAndBack(t *testing.T) {
	r, visits := newTestRouter(t)

	home, err := r.Navigate(screenHome)
	require.NoError(t, err)
	_, err = r.Navigate(screenState)
	require.NoError(t, err)
	detail, err := r.Navigate(screenDetail, "42")
	require.NoError(t, err)
	assert.Equal(t, "42", detail.(*detailFrame).id)
	assert.Same(t, detail, r.Current())

	r.Back()
	assert.Same(t, home, r.Current())

	assert.Equal(t, []visit{
		{screenHome, stack.Forward},
		{screenDetail, stack.Forward},
		{screenHome, stack.Back},
	}, *visits)
	assert.Equal(t, 2, r.Stack().FrameSize())
}

func TestRouter_BackTo(t *testing.T) {
	r, visits := newTestRouter(t)
	home, _ := r.Navigate(screenHome)
	_, _ = r.Navigate(screenDetail, "a")
	_, _ = r.Navigate(screenDetail, "b")

	r.BackTo(screenHome)
	assert.Same(t, home, r.Current())
	assert.Equal(t, visit{screenHome, stack.Back}, (*visits)[len(*visits)-1])
	assert.Equal(t, 1, r.Stack().FrameSize())
}

func TestRouter_OnEmpty(t *testing.T) {
	r, _ := newTestRouter(t)
	emptied := 0
	r.OnEmpty(func() { emptied++ })

	_, _ = r.Navigate(screenHome)
	r.Back()
	r.Back()

	assert.Equal(t, 1, emptied)
	assert.Nil(t, r.Current())
}

func TestRouter_NavigateError(t *testing.T) {
	r, visits := newTestRouter(t)
	_, err := r.Navigate(screenDetail)
	require.Error(t, err)
	assert.ErrorIs(t, err, stack.ErrArityMismatch)
	assert.Empty(t, *visits)
}

func TestRouter_UnregisteredScreen(t *testing.T) {
	r, _ := newTestRouter(t)
	var gotVariant stack.Variant
	var gotErr error
	r.OnError(func(variant stack.Variant, err error) {
		gotVariant, gotErr = variant, err
	})

	frame, err := r.Navigate(screenOrphan)
	require.NoError(t, err)
	assert.Same(t, frame, r.Current())
	assert.Equal(t, screenOrphan, gotVariant)
	assert.ErrorIs(t, gotErr, ErrScreenNotRegistered)
}

func TestRouter_ScreenError(t *testing.T) {
	r, _ := newTestRouter(t)
	boom := errors.New("boom")
	r.Register(screenHome, func(stack.Frame, stack.Direction) error { return boom })

	var gotErr error
	r.OnError(func(_ stack.Variant, err error) { gotErr = err })
	_, _ = r.Navigate(screenHome)

	assert.ErrorIs(t, gotErr, boom)
}

func TestRouter_CurrentAfterSilentRemoval(t *testing.T) {
	r, visits := newTestRouter(t)
	home, _ := r.Navigate(screenHome)
	_, _ = r.Navigate(screenDetail, "a")

	r.Stack().PopStackAtFrameType(screenDetail, stack.Inclusive, false)
	assert.Nil(t, r.Current())
	assert.Same(t, home, r.Stack().TopVisibleFrame())

	r.Stack().ClearStack(false)
	assert.Nil(t, r.Current())
	assert.Len(t, *visits, 2)
}
