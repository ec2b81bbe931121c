// Package stackctx implements a scoped dynamic-variable container for Go.
//
// # Overview
//
// A Context is a thread-confined stack whose storage is segmented into
// fixed-capacity blocks. A value pushed for the extent of a lexical scope
// is popped automatically when the scope ends, and the address returned
// for a stored value remains valid — at a stable location — for as long
// as the value is on the stack, even as the container grows. This is
// useful for:
//
//   - Scoped dynamic variables (innermost binding wins)
//   - Passing ambient state through deep call trees without plumbing
//   - Interpreter and evaluator environments with strict nesting
//   - Request- or task-scoped overrides that must unwind reliably
//
// # Basic Usage
//
//	ctx := stackctx.New[Config](16)
//	defer ctx.Close()
//
//	ctx.Scoped(cfg, func(c *Config) {
//		// cfg is the innermost binding until this function returns
//		work(ctx)
//	})
//
//	// Read the innermost binding from anywhere below
//	ctx.Get(func(c *Config) { ... })     // panics when empty
//	ok := ctx.TryGet(func(c *Config) { ... })
//
// # Handles
//
// The callback layer above is built on explicit handles. An OwnedSlot
// pushes on creation and pops on Release; a BorrowGuard views the top
// slot without affecting it. Both are anchored to a ScopeToken declared
// in the frame that holds them:
//
//	var tok stackctx.ScopeToken
//	slot := ctx.Push(&tok, value)
//	defer slot.Release()
//
//	guard, ok := ctx.Peek(&tok)
//
// Handles bound to the same Context must be released in exactly the
// reverse order of their creation. Release checks this at runtime and
// panics when the order diverges; Scoped makes the violation impossible.
//
// # Thread Safety
//
// A Context is confined to one logical owner and uses no locks; sharing
// one across goroutines is a contract violation, not a slow path. For
// one-container-per-owner usage, Local keeps a lazily populated registry
// keyed by owner identity:
//
//	locals := stackctx.NewLocal[int](16)
//	ctx := locals.Get(workerID) // same Context for every Get(workerID)
//	defer locals.Drop(workerID)
//
// # Memory Layout
//
// Storage grows one block at a time, each holding a fixed number of
// slots chosen at construction. Blocks are never resized, replaced, or
// freed individually, which is what keeps slot addresses stable; popping
// only rewinds the logical length, and the freed slots are reused by
// later pushes. Close finalizes every live value exactly once — even if
// a finalizer panics, the sweep completes and every block is released
// before the first failure is re-raised.
//
// # Performance Characteristics
//
//   - Push: O(1) amortized (one block allocation per capacity pushes)
//   - Peek, pop: O(1)
//   - Close: O(live slots) with a finalizer, O(1) without
//
// # Metrics and Monitoring
//
// Context exposes counters for its block usage:
//
//	m := ctx.Metrics()
//	fmt.Printf("live: %d of %d slots in %d blocks\n", m.Len, m.Capacity, m.NumBlocks)
//
// A Collector adapts those counters to a prometheus.Collector for
// scraping alongside the rest of a process's metrics.
package stackctx
