// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"image"

	"gioui.org/unit"

	"github.com/gioseek/seekbar/render"
	"github.com/gioseek/seekbar/widget/material"
)

// Apply copies the configured sizes, colors and thumbs onto s. Colors
// left unset keep the theme's.
func (c ValueBar) Apply(s *material.ValueBarStyle, released, pressed image.Image) {
	thickness, labelSize, labelMargin := c.Sizes()
	s.Thickness = unit.Dp(thickness)
	s.LabelSize = unit.Sp(labelSize)
	s.LabelMargin = unit.Dp(labelMargin)
	s.BarColor = c.BarColor.Or(s.BarColor)
	s.LabelColor = c.BarColor.Or(s.LabelColor)
	s.ValueColor = c.ValueColor.Or(s.ValueColor)
	s.BalloonColor = c.BalloonColor.Or(s.BalloonColor)
	s.ThumbColor = c.ThumbColor.Or(c.BalloonColor.Or(s.ThumbColor))
	s.ThumbReleased = released
	s.ThumbPressed = pressed
	s.Balloon = c.BalloonEnabled()
}

// Style resolves the configuration to pixels at scale pixels per dp,
// for renderers without a toolkit.
func (c ValueBar) Style(scale float32, released, pressed image.Image) render.Style {
	if scale <= 0 {
		scale = 1
	}
	thickness, labelSize, labelMargin := c.Sizes()
	t := thickness * scale
	return render.Style{
		Thickness:     t,
		CapRadius:     2 * t,
		ThumbRadius:   2 * t,
		ThumbSize:     32 * scale,
		LabelSize:     labelSize * scale,
		LabelMargin:   labelMargin * scale,
		Margin:        3 * scale,
		BalloonRadius: 20 * scale,
		BarColor:      c.BarColor.Or(DefaultBarColor),
		LabelColor:    c.BarColor.Or(DefaultBarColor),
		ThumbColor:    c.ThumbColor.Or(c.BalloonColor.Or(DefaultBalloonColor)),
		ValueColor:    c.ValueColor.Or(DefaultValueColor),
		BalloonColor:  c.BalloonColor.Or(DefaultBalloonColor),
		ThumbReleased: released,
		ThumbPressed:  pressed,
		Balloon:       c.BalloonEnabled(),
	}
}
