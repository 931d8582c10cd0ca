// Package script replays navigation scripts against a stack.
//
// A script is a TOML document that declares frame variants and a list of
// steps. Run builds a fresh stack from the declared variants, performs the
// steps in order and records every listener callback and Popped hook, which
// makes scripts a compact way to describe and check navigation flows.
//
//	name = "checkout"
//
//	[[variant]]
//	name = "cart"
//
//	[[variant]]
//	name = "order"
//	invisible = true
//
//	[[variant]]
//	name = "payment"
//	arg = true
//
//	[[step]]
//	op = "push"
//	variant = "cart"
//
//	[[step]]
//	op = "push"
//	variant = "payment"
//	arg = "visa"
//
//	[[step]]
//	op = "pop_at"
//	variant = "cart"
//	pop_type = "exclusive"
//
// Supported ops are push, pop, pop_expect, pop_at, remove and clear. A step
// may set expect_error to "construction" or "illegal_state" to assert that
// it fails.
package script
