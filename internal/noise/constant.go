package noise

// Constant is a flat field, handy for fixtures where the noise term must be
// known exactly. Seed is counted but changes nothing.
type Constant struct {
	Value float64
	Seeds int
}

// NewConstant returns a field fixed at v (clamped to [-1, 1]).
func NewConstant(v float64) *Constant {
	return &Constant{Value: clamp(v)}
}

// Seed records the call.
func (c *Constant) Seed() { c.Seeds++ }

// Sample returns the fixed value.
func (c *Constant) Sample(u, v float64) float64 { return c.Value }

// Counter is a Seeder that hands out start, start+1, start+2, ...
type Counter struct {
	next int64
}

// NewCounter returns a Counter beginning at start.
func NewCounter(start int64) *Counter { return &Counter{next: start} }

// Int64 returns the next seed.
func (c *Counter) Int64() int64 {
	v := c.next
	c.next++
	return v
}
