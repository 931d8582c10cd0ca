// Package stack provides a navigation stack of frames with visibility-aware
// change notifications.
//
// A Stack holds frames bottom to top. Visible frames are screens; invisible
// (data) frames hold state scoped to the part of the stack above them and
// are skipped when the stack works out which frame is on top. Frames are
// built by a Factory from explicit per-variant constructors, so a push with
// the wrong argument shape fails at the call site.
//
// # Basic Usage
//
//	const (
//	    VariantList   stack.Variant = "list"
//	    VariantDetail stack.Variant = "detail"
//	    VariantCart   stack.Variant = "cart" // invisible data frame
//	)
//
//	type ListFrame struct{ stack.Visible }
//	type DetailFrame struct {
//	    stack.Visible
//	    ItemID int
//	}
//	type CartFrame struct {
//	    stack.Data
//	    Items []int
//	}
//
//	f := stack.NewFactory().
//	    MustRegister(VariantList, stack.NoArgs(func() stack.Frame { return &ListFrame{} })).
//	    MustRegister(VariantDetail, stack.WithArg(func(id int) stack.Frame { return &DetailFrame{ItemID: id} })).
//	    MustRegister(VariantCart, stack.NoArgs(func() stack.Frame { return &CartFrame{} }))
//
//	s := stack.New(f)
//	s.SetTopFrameChangedListener(stack.TopFrameChangedFunc(func(frame stack.Frame, dir stack.Direction) {
//	    render(frame, dir)
//	}))
//	s.SetStackEmptyListener(stack.StackEmptyFunc(func() {
//	    exit()
//	}))
//
//	s.PushFrame(VariantList)      // listener: list, forward
//	s.PushFrame(VariantCart)      // invisible, no notification
//	s.PushFrame(VariantDetail, 7) // listener: detail, forward
//	s.PopTopVisibleFrame()        // listener: list, back
//
// # Notifications
//
// Every mutation compares the top visible frame before and after. If it
// changed to a frame, the TopFrameChangedListener is called; if no visible
// frame is left, the StackEmptyListener is called instead. Nothing is
// called when the top visible frame is unchanged. Listeners run after the
// stack and all Popped hooks have settled.
package stack
