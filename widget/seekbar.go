// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// Direction is the way a SeekBar's value grows.
type Direction uint8

const (
	ToTop Direction = iota
	ToRight
	ToBottom
	ToLeft
)

// DirectionOf returns the direction with index i, and whether i was
// valid. Invalid indices yield ToLeft.
func DirectionOf(i int) (Direction, bool) {
	if i < int(ToTop) || i > int(ToLeft) {
		return ToLeft, false
	}
	return Direction(i), true
}

// Degrees returns the clockwise rotation applied to a horizontal slider.
func (d Direction) Degrees() int {
	switch d {
	case ToTop:
		return 270
	case ToBottom:
		return 90
	case ToLeft:
		return 180
	default:
		return 0
	}
}

// Vertical reports whether the slider runs along the y axis.
func (d Direction) Vertical() bool {
	return d == ToTop || d == ToBottom
}

func (d Direction) String() string {
	switch d {
	case ToTop:
		return "ToTop"
	case ToRight:
		return "ToRight"
	case ToBottom:
		return "ToBottom"
	case ToLeft:
		return "ToLeft"
	default:
		panic("invalid Direction")
	}
}

// TrackSize returns the size of the unrotated slider that fills a view
// of the given size.
func (d Direction) TrackSize(view image.Point) image.Point {
	if d.Vertical() {
		return image.Pt(view.Y, view.X)
	}
	return view
}

// Transform maps the unrotated track frame onto a view of the given
// size.
func (d Direction) Transform(view image.Point) f32.Affine2D {
	w, h := float32(view.X), float32(view.Y)
	switch d {
	case ToBottom:
		return f32.NewAffine2D(0, -1, w, 1, 0, 0)
	case ToLeft:
		return f32.NewAffine2D(-1, 0, w, 0, -1, h)
	case ToTop:
		return f32.NewAffine2D(0, 1, 0, -1, 0, h)
	default:
		return f32.Affine2D{}
	}
}

// Progress maps a pointer position inside a view of the given size to a
// progress in [0, max].
func (d Direction) Progress(pos f32.Point, view image.Point, max int) int {
	m := float32(max)
	var p int
	switch d {
	case ToRight:
		p = int(m * pos.X / nonZero(view.X))
	case ToBottom:
		p = int(m * pos.Y / nonZero(view.Y))
	case ToLeft:
		p = max - int(m*pos.X/nonZero(view.X))
	case ToTop:
		p = max - int(m*pos.Y/nonZero(view.Y))
	}
	if p < 0 {
		p = 0
	} else if p > max {
		p = max
	}
	return p
}

func nonZero(v int) float32 {
	if v == 0 {
		return 1
	}
	return float32(v)
}

// SeekEventKind is the kind of a SeekEvent.
type SeekEventKind uint8

const (
	StartTracking SeekEventKind = iota
	ProgressChanged
	StopTracking
)

// SeekEvent reports an interaction with a SeekBar.
type SeekEvent struct {
	Kind     SeekEventKind
	Progress int
	// FromUser is set for changes caused by a pointer.
	FromUser bool
}

// SeekBar is a standard slider rotated to run in one of four
// directions.
type SeekBar struct {
	Direction Direction
	// Max is the largest progress. Progress starts at zero.
	Max int

	OnStartTracking   func()
	OnProgressChanged func(progress int, fromUser bool)
	OnStopTracking    func()

	progress int
	pressed  bool
	view     image.Point
	drag     gesture.Drag
}

// DefaultSeekMax replaces a non-positive SeekBar.Max.
const DefaultSeekMax = 100

// NewSeekBar returns a seek bar with Max 100 growing in direction d.
func NewSeekBar(d Direction) *SeekBar {
	return &SeekBar{Direction: d, Max: DefaultSeekMax}
}

func (s *SeekBar) normalize() {
	if s.Max <= 0 {
		s.Max = DefaultSeekMax
	}
}

// Progress returns the current progress.
func (s *SeekBar) Progress() int {
	return s.progress
}

// SetProgress sets the progress, clamped to [0, Max], and reports it to
// OnProgressChanged as a change not made by the user.
func (s *SeekBar) SetProgress(p int) {
	s.normalize()
	if p < 0 {
		p = 0
	} else if p > s.Max {
		p = s.Max
	}
	if p == s.progress {
		return
	}
	s.progress = p
	if s.OnProgressChanged != nil {
		s.OnProgressChanged(p, false)
	}
}

// Pressed reports whether a pointer is holding the slider.
func (s *SeekBar) Pressed() bool {
	return s.pressed
}

// Update processes pointer events and reports the next state change.
func (s *SeekBar) Update(gtx layout.Context) (SeekEvent, bool) {
	for {
		e, ok := s.drag.Update(gtx.Metric, gtx.Source, gesture.Both)
		if !ok {
			return SeekEvent{}, false
		}
		var ev SeekEvent
		switch e.Kind {
		case pointer.Press:
			s.pressed = true
			ev = SeekEvent{Kind: StartTracking, Progress: s.progress}
			if s.OnStartTracking != nil {
				s.OnStartTracking()
			}
		case pointer.Drag:
			if !s.pressed {
				continue
			}
			p := s.Direction.Progress(e.Position, s.view, s.Max)
			if p == s.progress {
				continue
			}
			s.progress = p
			ev = SeekEvent{Kind: ProgressChanged, Progress: p, FromUser: true}
			if s.OnProgressChanged != nil {
				s.OnProgressChanged(p, true)
			}
		case pointer.Release:
			if !s.pressed {
				continue
			}
			s.pressed = false
			ev = SeekEvent{Kind: StopTracking, Progress: s.progress}
			if s.OnStopTracking != nil {
				s.OnStopTracking()
			}
		default:
			s.pressed = false
			continue
		}
		gtx.Execute(op.InvalidateCmd{})
		return ev, true
	}
}

// Layout processes pending events and registers the slider for input
// over gtx.Constraints.Max, in view coordinates.
func (s *SeekBar) Layout(gtx layout.Context) layout.Dimensions {
	s.view = gtx.Constraints.Max
	s.normalize()
	for {
		if _, ok := s.Update(gtx); !ok {
			break
		}
	}
	defer clip.Rect(image.Rectangle{Max: s.view}).Push(gtx.Ops).Pop()
	pointer.CursorPointer.Add(gtx.Ops)
	s.drag.Add(gtx.Ops)
	return layout.Dimensions{Size: s.view}
}
