// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/gioseek/seekbar/internal/f32color"
	"github.com/gioseek/seekbar/widget"
)

// SeekBarStyle draws a widget.SeekBar as a horizontal slider rotated to
// the seek bar's direction.
type SeekBarStyle struct {
	SeekBar     *widget.SeekBar
	Color       color.NRGBA
	ThumbRadius unit.Dp
	TrackWidth  unit.Dp
}

// SeekBar returns a style for s in the primary color of th.
func SeekBar(th *material.Theme, s *widget.SeekBar) SeekBarStyle {
	return SeekBarStyle{
		SeekBar:     s,
		Color:       th.ContrastBg,
		ThumbRadius: 6,
		TrackWidth:  2,
	}
}

func (s SeekBarStyle) Layout(gtx layout.Context) layout.Dimensions {
	dims := s.SeekBar.Layout(gtx)
	dir := s.SeekBar.Direction
	track := dir.TrackSize(dims.Size)
	defer op.Affine(dir.Transform(dims.Size)).Push(gtx.Ops).Pop()

	thumbRadius := gtx.Dp(s.ThumbRadius)
	trackWidth := gtx.Dp(s.TrackWidth)
	if trackWidth < 1 {
		trackWidth = 1
	}
	mid := track.Y / 2
	length := track.X - 2*thumbRadius
	if length < 0 {
		length = 0
	}
	thumbPos := thumbRadius
	if max := s.SeekBar.Max; max > 0 {
		thumbPos += length * s.SeekBar.Progress() / max
	}

	color := s.Color
	if !gtx.Enabled() {
		color = f32color.Disabled(color)
	}

	// Draw track before thumb.
	rect := image.Rect(thumbRadius, mid-trackWidth/2, thumbPos, mid-trackWidth/2+trackWidth)
	paint.FillShape(gtx.Ops, color, clip.Rect(rect).Op())

	// Draw track after thumb.
	rect.Min.X, rect.Max.X = thumbPos, track.X-thumbRadius
	paint.FillShape(gtx.Ops, f32color.MulAlpha(color, 96), clip.Rect(rect).Op())

	// Draw thumb.
	r := thumbRadius
	if s.SeekBar.Pressed() {
		r += r / 2
	}
	thumb := image.Rect(thumbPos-r, mid-r, thumbPos+r, mid+r)
	paint.FillShape(gtx.Ops, color, clip.Ellipse(thumb).Op(gtx.Ops))

	return dims
}
