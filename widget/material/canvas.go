// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	giowidget "gioui.org/widget"

	"github.com/gioseek/seekbar/render"
)

// canvas draws render primitives into the operation list of gtx.
type canvas struct {
	gtx    layout.Context
	shaper *text.Shaper
	font   font.Font
	// imageOp converts images; nil converts every call anew.
	imageOp func(image.Image) paint.ImageOp
}

var _ render.Canvas = canvas{}

func (c canvas) Line(from, to f32.Point, width float32, col color.NRGBA) {
	var p clip.Path
	p.Begin(c.gtx.Ops)
	p.MoveTo(from)
	p.LineTo(to)
	paint.FillShape(c.gtx.Ops, col, clip.Stroke{
		Path:  p.End(),
		Width: width,
	}.Op())
}

func (c canvas) Circle(center f32.Point, radius float32, col color.NRGBA) {
	r := rect(render.Rect{
		Min: f32.Pt(center.X-radius, center.Y-radius),
		Max: f32.Pt(center.X+radius, center.Y+radius),
	})
	paint.FillShape(c.gtx.Ops, col, clip.Ellipse(r).Op(c.gtx.Ops))
}

func (c canvas) RoundRect(r render.Rect, radius float32, col color.NRGBA) {
	paint.FillShape(c.gtx.Ops, col, clip.UniformRRect(rect(r), int(radius)).Op(c.gtx.Ops))
}

func (c canvas) Polygon(pts []f32.Point, col color.NRGBA) {
	if len(pts) == 0 {
		return
	}
	var p clip.Path
	p.Begin(c.gtx.Ops)
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.Close()
	paint.FillShape(c.gtx.Ops, col, clip.Outline{Path: p.End()}.Op())
}

func (c canvas) Text(txt string, size float32, center f32.Point, col color.NRGBA) {
	call, dims := c.label(txt, size, col)
	off := image.Pt(
		int(math.Round(float64(center.X)))-dims.Size.X/2,
		int(math.Round(float64(center.Y)))-dims.Size.Y/2,
	)
	defer op.Offset(off).Push(c.gtx.Ops).Pop()
	call.Add(c.gtx.Ops)
}

func (c canvas) MeasureText(txt string, size float32) f32.Point {
	_, dims := c.label(txt, size, color.NRGBA{})
	return f32.Pt(float32(dims.Size.X), float32(dims.Size.Y))
}

func (c canvas) Image(src image.Image, r render.Rect) {
	ir := rect(r)
	defer op.Offset(ir.Min).Push(c.gtx.Ops).Pop()
	gtx := c.gtx
	gtx.Constraints = layout.Exact(ir.Size())
	var imgOp paint.ImageOp
	if c.imageOp != nil {
		imgOp = c.imageOp(src)
	} else {
		imgOp = paint.NewImageOp(src)
	}
	giowidget.Image{
		Src:      imgOp,
		Fit:      giowidget.Contain,
		Position: layout.Center,
	}.Layout(gtx)
}

// label records txt and returns it with its dimensions.
func (c canvas) label(txt string, size float32, col color.NRGBA) (op.CallOp, layout.Dimensions) {
	gtx := c.gtx
	gtx.Constraints = layout.Constraints{Max: image.Pt(math.MaxInt32, math.MaxInt32)}
	macro := op.Record(gtx.Ops)
	m := op.Record(gtx.Ops)
	paint.ColorOp{Color: col}.Add(gtx.Ops)
	mat := m.Stop()
	l := giowidget.Label{MaxLines: 1}
	dims := l.Layout(gtx, c.shaper, c.font, c.sp(size), txt, mat)
	return macro.Stop(), dims
}

// sp converts a size in pixels to scaled points.
func (c canvas) sp(px float32) unit.Sp {
	scale := c.gtx.Metric.PxPerSp
	if scale == 0 {
		scale = 1
	}
	return unit.Sp(px / scale)
}

func rect(r render.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(float64(r.Min.X))),
		int(math.Round(float64(r.Min.Y))),
		int(math.Round(float64(r.Max.X))),
		int(math.Round(float64(r.Max.Y))),
	)
}
