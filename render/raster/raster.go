// SPDX-License-Identifier: Unlicense OR MIT

// Package raster implements a render.Canvas on an in-memory image, for
// snapshots and tests that run without a window.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"gioui.org/f32"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/gioseek/seekbar/render"
)

// Canvas draws onto an RGBA image.
type Canvas struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[float32]font.Face
}

var _ render.Canvas = (*Canvas)(nil)

// New returns a canvas of the given size filled with bg.
func New(size image.Point, bg color.Color) (*Canvas, error) {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	dc := gg.NewContext(size.X, size.Y)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{
		dc:    dc,
		font:  f,
		faces: make(map[float32]font.Face),
	}, nil
}

// Result returns the rendered image.
func (c *Canvas) Result() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the rendered image to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) Line(from, to f32.Point, width float32, col color.NRGBA) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(float64(width))
	c.dc.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
	c.dc.Stroke()
}

func (c *Canvas) Circle(center f32.Point, radius float32, col color.NRGBA) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(float64(center.X), float64(center.Y), float64(radius))
	c.dc.Fill()
}

func (c *Canvas) RoundRect(r render.Rect, radius float32, col color.NRGBA) {
	sz := r.Size()
	c.dc.SetColor(col)
	c.dc.DrawRoundedRectangle(float64(r.Min.X), float64(r.Min.Y), float64(sz.X), float64(sz.Y), float64(radius))
	c.dc.Fill()
}

func (c *Canvas) Polygon(pts []f32.Point, col color.NRGBA) {
	if len(pts) == 0 {
		return
	}
	c.dc.SetColor(col)
	c.dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		c.dc.LineTo(float64(p.X), float64(p.Y))
	}
	c.dc.ClosePath()
	c.dc.Fill()
}

func (c *Canvas) Text(txt string, size float32, center f32.Point, col color.NRGBA) {
	c.dc.SetFontFace(c.face(size))
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(txt, float64(center.X), float64(center.Y), .5, .5)
}

func (c *Canvas) MeasureText(txt string, size float32) f32.Point {
	c.dc.SetFontFace(c.face(size))
	w, h := c.dc.MeasureString(txt)
	return f32.Pt(float32(w), float32(h))
}

func (c *Canvas) Image(src image.Image, r render.Rect) {
	sz := r.Size()
	w, h := int(math.Round(float64(sz.X))), int(math.Round(float64(sz.Y)))
	if w <= 0 || h <= 0 {
		return
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	c.dc.DrawImage(dst, int(math.Round(float64(r.Min.X))), int(math.Round(float64(r.Min.Y))))
}

// face returns the font face for a pixel size. gg works in points at 72
// DPI, so points equal pixels.
func (c *Canvas) face(size float32) font.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(c.font, &truetype.Options{Size: float64(size)})
	c.faces[size] = f
	return f
}
