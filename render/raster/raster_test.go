// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gioseek/seekbar/geom"
	"github.com/gioseek/seekbar/render"
)

var (
	black = color.NRGBA{A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
	green = color.NRGBA{G: 0xff, A: 0xff}
)

func testStyle() render.Style {
	return render.Style{
		Thickness:     2,
		CapRadius:     4,
		ThumbRadius:   8,
		ThumbSize:     16,
		LabelSize:     12,
		LabelMargin:   24,
		Margin:        2,
		BalloonRadius: 8,
		BarColor:      white,
		LabelColor:    white,
		ThumbColor:    red,
		ValueColor:    white,
		BalloonColor:  green,
	}
}

func testFrame() render.Frame {
	g := geom.Compute(image.Pt(120, 400), geom.Padding{Top: 100, Right: 10, Bottom: 100}, 2, geom.Vertical)
	r := geom.Range{Min: 0, Max: 100}
	return render.Frame{
		Geometry: g,
		Range:    r,
		Pos:      g.Position(r, 50),
		Value:    50,
	}
}

func TestThumbPixel(t *testing.T) {
	c, err := New(image.Pt(120, 400), black)
	if err != nil {
		t.Fatal(err)
	}
	f := testFrame()
	render.Draw(c, testStyle(), f)
	at := f.Geometry.Point(f.Pos)
	got := color.NRGBAModel.Convert(c.Result().At(at.X, at.Y)).(color.NRGBA)
	if got != red {
		t.Errorf("thumb center is %v, want %v", got, red)
	}
	// Far left of the bar stays background.
	if got := color.NRGBAModel.Convert(c.Result().At(2, 390)).(color.NRGBA); got != black {
		t.Errorf("background is %v, want %v", got, black)
	}
}

func TestThumbImage(t *testing.T) {
	c, err := New(image.Pt(120, 400), black)
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	s := testStyle()
	s.ThumbReleased = img
	f := testFrame()
	render.Draw(c, s, f)
	at := f.Geometry.Point(f.Pos)
	got := color.NRGBAModel.Convert(c.Result().At(at.X, at.Y)).(color.NRGBA)
	if got != white {
		t.Errorf("thumb image center is %v, want %v", got, white)
	}
}

func TestEncodePNG(t *testing.T) {
	c, err := New(image.Pt(120, 400), black)
	if err != nil {
		t.Fatal(err)
	}
	s := testStyle()
	s.Balloon = true
	f := testFrame()
	f.Pressed = true
	render.Draw(c, s, f)
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := img.Bounds().Size(), image.Pt(120, 400); got != want {
		t.Errorf("decoded size %v, want %v", got, want)
	}
}

func TestMeasureText(t *testing.T) {
	c, err := New(image.Pt(10, 10), black)
	if err != nil {
		t.Fatal(err)
	}
	small, large := c.MeasureText("100", 10), c.MeasureText("100", 20)
	if small.X <= 0 || small.Y <= 0 {
		t.Fatalf("empty measurement %v", small)
	}
	if large.X <= small.X || large.Y <= small.Y {
		t.Errorf("size 20 measures %v, not larger than size 10 %v", large, small)
	}
}
