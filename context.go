package stackctx

// Context is a block-segmented stack of T. Storage is allocated in blocks
// of a fixed capacity chosen at construction; blocks are created lazily,
// never resized, and never relocated, so the address of any live slot
// stays valid until Close. Not goroutine-safe: a Context belongs to
// exactly one logical owner. Use Local for a per-owner registry.
type Context[T any] struct {
	blocks        [][]T
	blockCapacity int
	length        int
	fin           func(*T)
	closed        bool
}

// New creates a Context whose blocks hold blockCapacity slots each. The
// capacity is fixed for the Context's lifetime. Panics if blockCapacity
// is not positive.
func New[T any](blockCapacity int) *Context[T] {
	if blockCapacity <= 0 {
		panic("stackctx: block capacity must be positive")
	}
	return &Context[T]{blockCapacity: blockCapacity}
}

// NewWithFinalizer creates a Context that runs fin exactly once on every
// slot still live when Close is called. Values removed by a normal pop
// are not finalized.
func NewWithFinalizer[T any](blockCapacity int, fin func(*T)) *Context[T] {
	c := New[T](blockCapacity)
	c.fin = fin
	return c
}

// Len returns the number of live slots.
func (c *Context[T]) Len() int {
	return c.length
}

// IsEmpty reports whether the Context holds no live slots.
func (c *Context[T]) IsEmpty() bool {
	return c.length == 0
}

// push appends value at the current logical length and returns the
// address of its slot. The address stays valid until Close, no matter
// how many blocks are allocated later.
func (c *Context[T]) push(value T) *T {
	c.panicIfClosed()
	block := c.length / c.blockCapacity
	slot := c.length % c.blockCapacity
	if slot == 0 && block >= len(c.blocks) {
		c.grow()
	}
	c.blocks[block][slot] = value
	c.length++
	return &c.blocks[block][slot]
}

// top returns the address of the most recently pushed slot, or nil when
// the Context is empty. Pure read.
func (c *Context[T]) top() *T {
	c.panicIfClosed()
	if c.length == 0 {
		return nil
	}
	i := c.length - 1
	return &c.blocks[i/c.blockCapacity][i%c.blockCapacity]
}

// pop removes the top slot. Precondition: at least one unmatched push,
// and no caller still reads the slot being removed. The handle layer is
// responsible for upholding this; pop itself does not check. The vacated
// slot is zeroed so the garbage collector can reclaim anything it
// referenced; the finalizer does not run.
func (c *Context[T]) pop() {
	c.length--
	var zero T
	c.blocks[c.length/c.blockCapacity][c.length%c.blockCapacity] = zero
}

// grow appends one block of blockCapacity slots. Blocks are append-only:
// existing blocks are never resized, replaced, or freed individually.
//
//go:noinline
func (c *Context[T]) grow() {
	c.blocks = append(c.blocks, make([]T, c.blockCapacity))
}

// Close finalizes every live slot and releases all block memory. If a
// finalizer panics, the sweep still visits every remaining slot and every
// block is still released; the first recorded panic is re-raised after
// the sweep completes. No slot is finalized twice and none is skipped.
// Close is idempotent; any other use of the Context after Close panics.
func (c *Context[T]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	var failure any
	var failed bool
	if c.fin != nil {
		for i := 0; i < c.length; i++ {
			func() {
				defer func() {
					if r := recover(); r != nil && !failed {
						failure = r
						failed = true
					}
				}()
				c.fin(&c.blocks[i/c.blockCapacity][i%c.blockCapacity])
			}()
		}
	}
	c.blocks = nil
	c.length = 0
	if failed {
		panic(failure)
	}
}

// panicIfClosed panics if the Context has been closed.
func (c *Context[T]) panicIfClosed() {
	if c.closed {
		panic("stackctx: use after Close()")
	}
}
