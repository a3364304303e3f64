// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"strconv"

	"gioui.org/f32"

	"github.com/gioseek/seekbar/geom"
)

// Balloon is the layout of the value callout.
type Balloon struct {
	Text     string
	TextSize float32
	// Box is the background of the text.
	Box    Rect
	Radius float32
	// Pointer is the triangle joining the box to the thumb. It is only
	// present while the bar is pressed.
	Pointer []f32.Point
}

// BalloonBox lays out the balloon for f. A released balloon sits beside
// the thumb; a pressed balloon uses twice the text size and floats above
// the thumb with a pointer.
func BalloonBox(c Canvas, s Style, f Frame) Balloon {
	b := Balloon{
		Text:     strconv.Itoa(f.Value),
		TextSize: s.LabelSize,
	}
	if f.Pressed {
		b.TextSize *= 2
	}
	m := s.Margin
	ts := c.MeasureText(b.Text, b.TextSize)
	w, h := ts.X+12*m, ts.Y+6*m
	at := fpt(f.Geometry.Point(f.Pos))
	vertical := f.Geometry.Orientation != geom.Horizontal

	var center f32.Point
	switch {
	case f.Pressed:
		cx := at.X
		if vertical {
			cx -= 3 * m
		}
		tipY := at.Y - s.ThumbRadius - m
		bottom := tipY - 5*m
		center = f32.Pt(cx, bottom-h/2)
		half := 3.75 * m
		b.Pointer = []f32.Point{
			f32.Pt(cx-half, bottom),
			f32.Pt(cx+half, bottom),
			f32.Pt(cx, tipY),
		}
	case vertical:
		center = f32.Pt(at.X-6*m-w/2, at.Y)
	default:
		center = f32.Pt(at.X, at.Y-6*m-h/2)
	}
	b.Box = Rect{
		Min: f32.Pt(center.X-w/2, center.Y-h/2),
		Max: f32.Pt(center.X+w/2, center.Y+h/2),
	}
	b.Radius = s.BalloonRadius
	if r := h / 2; b.Radius > r {
		b.Radius = r
	}
	return b
}

func drawBalloon(c Canvas, s Style, f Frame) {
	b := BalloonBox(c, s, f)
	if b.Pointer != nil {
		c.Polygon(b.Pointer, s.BalloonColor)
	}
	c.RoundRect(b.Box, b.Radius, s.BalloonColor)
	c.Text(b.Text, b.TextSize, b.Box.Center(), s.ValueColor)
}
