package stackctx

// noCopy is embedded in types that must stay where they were declared.
// go vet's copylocks check reports values that copy it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ScopeToken pins handle lifetimes to a single stack frame. Declare one
// as a local variable of the frame that will hold the handles and pass
// its address to Push or Peek; the zero value is ready to use.
//
// The token carries an unchecked contract: it must not be stored in a
// longer-lived structure, returned from its frame, or handed to another
// goroutine. Handles created against it inherit the same bound. go vet
// flags tokens copied by value.
type ScopeToken struct {
	noCopy noCopy
}

// OwnedSlot is an owning handle: constructing it pushes a value onto the
// Context, releasing it pops that value. Slots bound to the same Context
// must be released in exactly the reverse order of their creation;
// Release enforces this with a depth stamp captured at push time.
type OwnedSlot[T any] struct {
	ctx   *Context[T]
	value *T
	depth int
}

// Push appends value to the stack and returns an owning handle for it.
// The handle must stay within the token's frame and be released before
// that frame returns. Prefer Scoped unless the handle form is required.
func (c *Context[T]) Push(_ *ScopeToken, value T) *OwnedSlot[T] {
	v := c.push(value)
	return &OwnedSlot[T]{ctx: c, value: v, depth: c.length}
}

// Value returns the address of the pushed slot. The address is stable
// for the handle's lifetime. Panics after Release.
func (s *OwnedSlot[T]) Value() *T {
	if s.ctx == nil {
		panic("stackctx: use of released slot")
	}
	return s.value
}

// Guard returns a read-only view of the owned slot, bound to the same
// frame discipline as the slot itself.
func (s *OwnedSlot[T]) Guard(_ *ScopeToken) *BorrowGuard[T] {
	if s.ctx == nil {
		panic("stackctx: use of released slot")
	}
	return &BorrowGuard[T]{value: s.value}
}

// Release pops the slot's value from the Context. It must be called
// exactly once, and only after every slot pushed later has been
// released. Out-of-order release and reuse of a released slot panic.
func (s *OwnedSlot[T]) Release() {
	if s.ctx == nil {
		panic("stackctx: use of released slot")
	}
	if s.ctx.length != s.depth {
		panic("stackctx: out-of-order slot release")
	}
	s.ctx.pop()
	s.ctx = nil
	s.value = nil
}

// BorrowGuard is a non-owning, read-only view of the Context's top slot
// at the moment of acquisition. It does not affect the stack length and
// has no release step. The viewed slot must not be popped while the
// guard is in use, and the guard must not outlive its token's frame.
type BorrowGuard[T any] struct {
	value *T
}

// Peek returns a guard viewing the current top slot, or ok == false when
// the Context is empty.
func (c *Context[T]) Peek(_ *ScopeToken) (*BorrowGuard[T], bool) {
	v := c.top()
	if v == nil {
		return nil, false
	}
	return &BorrowGuard[T]{value: v}, true
}

// PeekStrict is Peek for callers that treat an empty Context as a
// programming error.
func (c *Context[T]) PeekStrict(tok *ScopeToken) *BorrowGuard[T] {
	g, ok := c.Peek(tok)
	if !ok {
		panic("stackctx: tried to get from an empty context")
	}
	return g
}

// Value returns the address of the viewed slot.
func (g *BorrowGuard[T]) Value() *T {
	return g.value
}
