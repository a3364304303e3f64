// SPDX-License-Identifier: Unlicense OR MIT

/*
Package render draws a value bar onto a Canvas.

The renderer is independent of any toolkit: a Canvas supplies the
drawing primitives, Style supplies sizes and colors in pixels, and Frame
supplies the geometry and interaction state of one layout pass. Draw only
reads its inputs.
*/
package render

import (
	"image"
	"image/color"
	"strconv"

	"gioui.org/f32"

	"github.com/gioseek/seekbar/geom"
)

// Canvas is a 2D drawing surface. Sizes are in pixels.
type Canvas interface {
	Line(from, to f32.Point, width float32, c color.NRGBA)
	Circle(center f32.Point, radius float32, c color.NRGBA)
	RoundRect(r Rect, radius float32, c color.NRGBA)
	Polygon(pts []f32.Point, c color.NRGBA)
	// Text draws txt centered on center.
	Text(txt string, size float32, center f32.Point, c color.NRGBA)
	MeasureText(txt string, size float32) f32.Point
	// Image draws src scaled to fit r.
	Image(src image.Image, r Rect)
}

// Rect is a floating point rectangle.
type Rect struct {
	Min, Max f32.Point
}

// Size returns the width and height of r.
func (r Rect) Size() f32.Point {
	return r.Max.Sub(r.Min)
}

// Center returns the center of r.
func (r Rect) Center() f32.Point {
	return r.Min.Add(r.Max).Mul(.5)
}

// Style holds the resolved appearance of a value bar.
type Style struct {
	Thickness   float32
	CapRadius   float32
	ThumbRadius float32
	// ThumbSize is the side of the square thumb images are fitted into.
	ThumbSize float32
	LabelSize float32
	// LabelMargin separates the min and max labels from the bar.
	LabelMargin float32
	// Margin is the unit spacing of the balloon.
	Margin        float32
	BalloonRadius float32

	BarColor     color.NRGBA
	LabelColor   color.NRGBA
	ThumbColor   color.NRGBA
	ValueColor   color.NRGBA
	BalloonColor color.NRGBA

	// ThumbReleased and ThumbPressed replace the round thumb when set.
	ThumbReleased image.Image
	ThumbPressed  image.Image

	// Balloon enables the value callout.
	Balloon bool
}

// Frame is the state of a bar for one layout pass.
type Frame struct {
	Geometry geom.Geometry
	Range    geom.Range
	// Pos is the thumb position along the primary axis.
	Pos     int
	Value   int
	Pressed bool
}

// Draw renders the bar, its end caps, the min and max labels, the thumb
// and the balloon, in that order.
func Draw(c Canvas, s Style, f Frame) {
	g := f.Geometry
	start, stop := fpt(g.Start), fpt(g.Stop)
	c.Line(start, stop, s.Thickness, s.BarColor)
	c.Circle(start, s.CapRadius, s.BarColor)
	c.Circle(stop, s.CapRadius, s.BarColor)

	drawLabel(c, s, g, start, strconv.Itoa(f.Range.Min))
	drawLabel(c, s, g, stop, strconv.Itoa(f.Range.Max))

	drawThumb(c, s, f)
	if s.Balloon {
		drawBalloon(c, s, f)
	}
}

// drawLabel places txt beside the endpoint at: left of a vertical bar,
// above a horizontal one.
func drawLabel(c Canvas, s Style, g geom.Geometry, at f32.Point, txt string) {
	sz := c.MeasureText(txt, s.LabelSize)
	var center f32.Point
	if g.Orientation == geom.Horizontal {
		center = f32.Pt(at.X, at.Y-s.LabelMargin-sz.Y/2)
	} else {
		center = f32.Pt(at.X-s.LabelMargin-sz.X/2, at.Y)
	}
	c.Text(txt, s.LabelSize, center, s.LabelColor)
}

func drawThumb(c Canvas, s Style, f Frame) {
	at := fpt(f.Geometry.Point(f.Pos))
	if img := thumbImage(s, f.Pressed); img != nil {
		h := s.ThumbSize / 2
		c.Image(img, Rect{Min: f32.Pt(at.X-h, at.Y-h), Max: f32.Pt(at.X+h, at.Y+h)})
		return
	}
	c.Circle(at, s.ThumbRadius, s.ThumbColor)
}

func thumbImage(s Style, pressed bool) image.Image {
	if pressed && s.ThumbPressed != nil {
		return s.ThumbPressed
	}
	return s.ThumbReleased
}

func fpt(p image.Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}
