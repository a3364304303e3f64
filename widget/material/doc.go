// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws the value bar and the seek bar with a Gio
// material theme.
//
// As in Gio, controls are split into two parts: the stateful widget and
// the stateless drawing of it. widget.ValueBar holds the thumb position
// and processes drags, while ValueBarStyle draws it:
//
//	bar := widget.NewValueBar(0, 100, 0, geom.Vertical)
//	bar.OnValueChanged = func(v int) { fmt.Println("value", v) }
//
//	th := material.NewTheme()
//	sbmaterial.ValueBar(th, bar).Layout(gtx)
//
// # Customization
//
// Adjust the fields of the style before Layout to change the look of a
// particular bar:
//
//	s := sbmaterial.ValueBar(th, bar)
//	s.BalloonColor = color.NRGBA{G: 0xff, A: 0xff}
//	s.ThumbReleased = img
//	s.Layout(gtx)
//
// A SeekBarStyle draws a widget.SeekBar as a standard horizontal slider
// rotated to the seek bar's direction.
package material
