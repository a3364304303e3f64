// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom implements the geometry of a value bar: where the bar sits
inside its measured bounds, and how a pointer coordinate along the bar
maps to an integer value.

All coordinates are in pixels with the origin in the top left corner and
y growing downwards. A vertical bar has its minimum end at the bottom, a
horizontal bar has its minimum end on the left.
*/
package geom

import (
	"image"
)

// Orientation is the primary axis of a bar.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// Padding is the space in pixels between the measured bounds and the
// bar's endpoints.
type Padding struct {
	Top, Right, Bottom, Left int
}

// Geometry describes the endpoints of a bar for one layout pass.
type Geometry struct {
	// Start is the endpoint of the minimum value.
	Start image.Point
	// Stop is the endpoint of the maximum value.
	Stop image.Point
	// Length is the usable span between Start and Stop.
	Length      int
	Orientation Orientation
}

// Compute lays out a bar of the given thickness inside size. A vertical
// bar hugs the right padded edge, a horizontal bar hugs the bottom padded
// edge.
func Compute(size image.Point, pad Padding, thickness int, o Orientation) Geometry {
	g := Geometry{Orientation: o}
	switch o {
	case Horizontal:
		y := size.Y - pad.Bottom - thickness
		g.Start = image.Pt(pad.Left, y)
		g.Stop = image.Pt(size.X-pad.Right, y)
		g.Length = size.X - pad.Left - pad.Right
	default:
		g.Orientation = Vertical
		x := size.X - pad.Right - thickness
		g.Start = image.Pt(x, size.Y-pad.Bottom)
		g.Stop = image.Pt(x, pad.Top)
		g.Length = size.Y - pad.Top - pad.Bottom
	}
	if g.Length < 0 {
		g.Length = 0
		g.Stop = g.Start
	}
	return g
}

// Main returns the coordinate of p along the bar's primary axis.
func (g Geometry) Main(p image.Point) int {
	if g.Orientation == Horizontal {
		return p.X
	}
	return p.Y
}

// Point returns the point on the bar at main axis coordinate c.
func (g Geometry) Point(c int) image.Point {
	if g.Orientation == Horizontal {
		return image.Pt(c, g.Start.Y)
	}
	return image.Pt(g.Start.X, c)
}

// Clamp limits c to the span of the bar.
func (g Geometry) Clamp(c int) int {
	lo, hi := g.Main(g.Stop), g.Main(g.Start)
	if lo > hi {
		lo, hi = hi, lo
	}
	if c < lo {
		return lo
	} else if c > hi {
		return hi
	}
	return c
}

// distance returns how far the clamped coordinate c is from the minimum
// end of the bar.
func (g Geometry) distance(c int) int {
	c = g.Clamp(c)
	if g.Orientation == Horizontal {
		return c - g.Start.X
	}
	return g.Length - (c - g.Stop.Y)
}
