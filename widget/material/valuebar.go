// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/gioseek/seekbar/geom"
	"github.com/gioseek/seekbar/internal/f32color"
	"github.com/gioseek/seekbar/render"
	"github.com/gioseek/seekbar/widget"
)

// ValueBarStyle draws a widget.ValueBar with min and max labels, a thumb
// and a value balloon.
type ValueBarStyle struct {
	Bar    *widget.ValueBar
	Shaper *text.Shaper
	Font   font.Font

	Thickness unit.Dp
	// ThumbRadius defaults to twice the thickness.
	ThumbRadius unit.Dp
	// ThumbSize is the side of the square thumb images are fitted into.
	ThumbSize     unit.Dp
	LabelSize     unit.Sp
	LabelMargin   unit.Dp
	Margin        unit.Dp
	BalloonRadius unit.Dp
	Inset         layout.Inset

	BarColor     color.NRGBA
	LabelColor   color.NRGBA
	ThumbColor   color.NRGBA
	ValueColor   color.NRGBA
	BalloonColor color.NRGBA

	ThumbReleased image.Image
	ThumbPressed  image.Image

	// Balloon enables the value callout.
	Balloon bool
}

// ValueBar returns a style for bar with the colors and fonts of th.
func ValueBar(th *material.Theme, bar *widget.ValueBar) ValueBarStyle {
	return ValueBarStyle{
		Bar:           bar,
		Shaper:        th.Shaper,
		Font:          font.Font{Typeface: th.Face, Weight: font.Bold},
		Thickness:     2,
		ThumbSize:     32,
		LabelSize:     th.TextSize * 14.0 / 16.0,
		LabelMargin:   30,
		Margin:        3,
		BalloonRadius: 20,
		Inset:         layout.UniformInset(8),
		BarColor:      th.Fg,
		LabelColor:    th.Fg,
		ThumbColor:    th.ContrastBg,
		ValueColor:    th.ContrastFg,
		BalloonColor:  th.ContrastBg,
		Balloon:       true,
	}
}

// Style resolves the sizes of s to pixels.
func (s ValueBarStyle) Style(gtx layout.Context) render.Style {
	thickness := gtx.Dp(s.Thickness)
	thumb := gtx.Dp(s.ThumbRadius)
	if s.ThumbRadius <= 0 {
		thumb = 2 * thickness
	}
	st := render.Style{
		Thickness:     float32(thickness),
		CapRadius:     float32(2 * thickness),
		ThumbRadius:   float32(thumb),
		ThumbSize:     float32(gtx.Dp(s.ThumbSize)),
		LabelSize:     float32(gtx.Sp(s.LabelSize)),
		LabelMargin:   float32(gtx.Dp(s.LabelMargin)),
		Margin:        float32(gtx.Dp(s.Margin)),
		BalloonRadius: float32(gtx.Dp(s.BalloonRadius)),
		BarColor:      s.BarColor,
		LabelColor:    s.LabelColor,
		ThumbColor:    s.ThumbColor,
		ValueColor:    s.ValueColor,
		BalloonColor:  s.BalloonColor,
		ThumbReleased: s.ThumbReleased,
		ThumbPressed:  s.ThumbPressed,
		Balloon:       s.Balloon,
	}
	if !gtx.Enabled() {
		st.BarColor = f32color.Disabled(st.BarColor)
		st.LabelColor = f32color.Disabled(st.LabelColor)
		st.ThumbColor = f32color.Disabled(st.ThumbColor)
		st.BalloonColor = f32color.Disabled(st.BalloonColor)
	}
	return st
}

// padding returns the inset in pixels, widened so that the end caps and
// the thumb stay inside the bounds.
func (s ValueBarStyle) padding(gtx layout.Context, st render.Style) geom.Padding {
	extra := st.CapRadius
	if st.ThumbRadius > extra {
		extra = st.ThumbRadius
	}
	if st.ThumbReleased != nil || st.ThumbPressed != nil {
		if h := st.ThumbSize / 2; h > extra {
			extra = h
		}
	}
	e := int(extra)
	return geom.Padding{
		Top:    gtx.Dp(s.Inset.Top) + e,
		Right:  gtx.Dp(s.Inset.Right) + e,
		Bottom: gtx.Dp(s.Inset.Bottom) + e,
		Left:   gtx.Dp(s.Inset.Left) + e,
	}
}

// Layout fills gtx.Constraints.Max with the bar.
func (s ValueBarStyle) Layout(gtx layout.Context) layout.Dimensions {
	st := s.Style(gtx)
	g := geom.Compute(gtx.Constraints.Max, s.padding(gtx, st), int(st.Thickness), s.Bar.Orientation)
	dims := s.Bar.Layout(gtx, g)

	render.Draw(canvas{gtx: gtx, shaper: s.Shaper, font: s.Font, imageOp: s.Bar.ThumbOp}, st, render.Frame{
		Geometry: s.Bar.Geometry(),
		Range:    s.Bar.Range,
		Pos:      s.Bar.Pos(),
		Value:    s.Bar.Value(),
		Pressed:  s.Bar.Pressed(),
	})
	return dims
}
