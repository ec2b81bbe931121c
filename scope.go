package stackctx

// Scoped pushes value for exactly the duration of fn and pops it on the
// way out, including when fn panics. fn receives the stable address of
// the pushed slot. This is the recommended way to use the container:
// the push/pop pairing cannot be forgotten or reordered.
func (c *Context[T]) Scoped(value T, fn func(*T)) {
	var tok ScopeToken
	s := c.Push(&tok, value)
	defer s.Release()
	fn(s.Value())
}

// TryGet invokes fn with the current top value and reports whether it
// did. On an empty Context fn is not called and TryGet returns false.
func (c *Context[T]) TryGet(fn func(*T)) bool {
	var tok ScopeToken
	g, ok := c.Peek(&tok)
	if !ok {
		return false
	}
	fn(g.Value())
	return true
}

// Get invokes fn with the current top value, panicking when the Context
// is empty.
func (c *Context[T]) Get(fn func(*T)) {
	var tok ScopeToken
	fn(c.PeekStrict(&tok).Value())
}
