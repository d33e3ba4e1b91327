package enumerate

import "iter"

// Odometer yields every coordinate of a Dims product in row-major order:
// the last index varies fastest, like nested loops with dimension 0 outermost.
// An Odometer is single-use; All restarts from the first coordinate on every
// iteration.
type Odometer struct {
	dims    Dims
	cur     []int
	started bool
	done    bool
}

// NewOdometer creates an Odometer over dims. It returns a precondition error
// if dims does not pass Validate.
func NewOdometer(dims Dims) (*Odometer, error) {
	if err := Validate(dims); err != nil {
		return nil, err
	}

	return &Odometer{
		dims: append(Dims(nil), dims...),
		cur:  make([]int, len(dims)),
	}, nil
}

// Next advances to the next coordinate. The returned slice is a fresh copy
// the caller may keep. ok is false once the product is exhausted.
func (o *Odometer) Next() (coord []int, ok bool) {
	if o.done {
		return nil, false
	}

	if !o.started {
		o.started = true
		return o.snapshot(), true
	}

	for i := len(o.cur) - 1; i >= 0; i-- {
		o.cur[i]++
		if o.cur[i] < o.dims[i] {
			return o.snapshot(), true
		}

		o.cur[i] = 0
	}

	o.done = true

	return nil, false
}

func (o *Odometer) snapshot() []int {
	return append([]int(nil), o.cur...)
}

// All returns a lazy sequence of every coordinate in row-major order.
// Each iteration starts from the first coordinate. Invalid dims yield nothing;
// call Validate first to get the reason.
func All(dims Dims) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		o, err := NewOdometer(dims)
		if err != nil {
			return
		}

		for {
			coord, ok := o.Next()
			if !ok || !yield(coord) {
				return
			}
		}
	}
}

// FirstChange returns the first index at which prev and next differ, or
// len(next) if they are equal. In row-major order this is the outermost
// axis that advanced between two consecutive coordinates.
func FirstChange(prev, next []int) int {
	for i := range next {
		if i >= len(prev) || prev[i] != next[i] {
			return i
		}
	}

	return len(next)
}
