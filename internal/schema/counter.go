package schema

// Counter is a single-owner monotonically increasing integer, used to
// dispense dense node indices and schema ids. It is not safe for concurrent
// use; callers confine each Counter to one goroutine, the same discipline
// the diff engine uses for the Node.Matched flag.
type Counter struct {
	value int
}

// NewCounter returns a Counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the current value and increments the counter.
func (c *Counter) Next() int {
	v := c.value
	c.value++
	return v
}

// Value returns the current value without mutating the counter.
func (c *Counter) Value() int {
	return c.value
}
