// SPDX-License-Identifier: Unlicense OR MIT

package geom

import "math/bits"

// Range is the closed interval of values a bar selects from.
type Range struct {
	Min, Max int
}

// NewRange returns the range between min and max, swapping reversed
// bounds.
func NewRange(min, max int) Range {
	if min > max {
		min, max = max, min
	}
	return Range{Min: min, Max: max}
}

// Span returns Max - Min, or zero for a reversed range. The result is
// unsigned so that it holds the distance between any two ints.
func (r Range) Span() uint64 {
	if r.Max < r.Min {
		return 0
	}
	return uint64(r.Max) - uint64(r.Min)
}

// Clamp limits v to r.
func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	} else if v > r.Max && r.Max >= r.Min {
		return r.Max
	}
	return v
}

// Value maps the main axis coordinate c to a value in r. Coordinates
// beyond the bar are clamped to its endpoints first; fractional values
// round up.
func (g Geometry) Value(r Range, c int) int {
	span := r.Span()
	if g.Length <= 0 || span == 0 {
		return r.Min
	}
	l := uint64(g.Length)
	// ceil(d*span/l) with a 128 bit product; the quotient is at most span.
	hi, lo := bits.Mul64(uint64(g.distance(c)), span)
	lo, carry := bits.Add64(lo, l-1, 0)
	v, _ := bits.Div64(hi+carry, lo, l)
	return int(uint64(r.Min) + v)
}

// Position maps v to a main axis coordinate on the bar. It is the
// inverse of Value whenever the bar is at least as long as the range.
func (g Geometry) Position(r Range, v int) int {
	var d int
	if span := r.Span(); span > 0 && g.Length > 0 {
		off := uint64(r.Clamp(v)) - uint64(r.Min)
		hi, lo := bits.Mul64(off, uint64(g.Length))
		q, _ := bits.Div64(hi, lo, span)
		d = int(q)
	}
	if g.Orientation == Horizontal {
		return g.Start.X + d
	}
	return g.Start.Y - d
}
