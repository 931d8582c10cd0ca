// Package router dispatches screens from a navigation stack.
//
// A Router registers itself as both listeners of a stack.Stack. Whenever
// the top visible frame changes, it looks up the screen registered for
// the frame's variant and runs it with the frame and the direction of
// travel. This keeps screen code out of the stack and gives every screen
// a single entry point.
//
// # Basic Usage
//
//	s := stack.New(factory)
//	r := router.New(s)
//
//	r.Register(VariantList, func(frame stack.Frame, dir stack.Direction) error {
//	    return renderList(frame.(*ListFrame), dir)
//	})
//
//	r.Register(VariantDetail, func(frame stack.Frame, dir stack.Direction) error {
//	    return renderDetail(frame.(*DetailFrame))
//	})
//
//	r.OnEmpty(func() {
//	    quit()
//	})
//
//	r.OnError(func(variant stack.Variant, err error) {
//	    log.Printf("screen %s: %v", variant, err)
//	})
//
//	r.Navigate(VariantList)
//	r.Navigate(VariantDetail, item)
//	r.Back()
//
// Screens run synchronously from inside stack mutations, so they must not
// navigate themselves. Record the intent and call Navigate or Back once
// the screen has returned.
package router
