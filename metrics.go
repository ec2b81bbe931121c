package stackctx

// BlockCapacity returns the number of slots each block holds.
func (c *Context[T]) BlockCapacity() int {
	return c.blockCapacity
}

// NumBlocks returns the number of blocks currently allocated by the
// Context.
func (c *Context[T]) NumBlocks() int {
	return len(c.blocks)
}

// Capacity returns the total number of slots across all allocated
// blocks. Popped slots stay allocated and are reused by later pushes.
func (c *Context[T]) Capacity() int {
	return len(c.blocks) * c.blockCapacity
}

// Utilization returns the ratio of live slots to total capacity (0.0 to
// 1.0). Returns 0.0 before the first block is allocated.
func (c *Context[T]) Utilization() float64 {
	capacity := c.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(c.length) / float64(capacity)
}

// Metrics returns a snapshot of Context statistics.
func (c *Context[T]) Metrics() ContextMetrics {
	return ContextMetrics{
		Len:           c.length,
		NumBlocks:     c.NumBlocks(),
		BlockCapacity: c.blockCapacity,
		Capacity:      c.Capacity(),
		Utilization:   c.Utilization(),
	}
}

// ContextMetrics contains statistical information about a Context.
type ContextMetrics struct {
	Len           int     // Live slots
	NumBlocks     int     // Blocks allocated
	BlockCapacity int     // Slots per block
	Capacity      int     // Total slots across all blocks
	Utilization   float64 // Ratio of live slots to capacity (0.0-1.0)
}
