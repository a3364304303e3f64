// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/gioseek/seekbar/geom"
)

// BarEventKind is the kind of a BarEvent.
type BarEventKind uint8

const (
	DragStart BarEventKind = iota
	ValueChanged
	DragEnd
)

// BarEvent reports an interaction with a ValueBar.
type BarEvent struct {
	Kind BarEventKind
	// Value is the bar's value after the event.
	Value int
}

// ValueBar is for selecting an integer value by dragging a thumb along
// a bar.
type ValueBar struct {
	Range       geom.Range
	Orientation geom.Orientation

	// OnDragStart, OnValueChanged and OnDragEnd are called from Update
	// for every event of their kind.
	OnDragStart    func()
	OnValueChanged func(value int)
	OnDragEnd      func()

	drag  gesture.Drag
	geo   geom.Geometry
	state tracker

	// thumbs holds the image ops of the released and pressed thumbs.
	thumbs [2]thumbOp
}

type thumbOp struct {
	src image.Image
	op  paint.ImageOp
}

// tracker is the Idle/Pressed state machine of a bar.
type tracker struct {
	pressed bool
	pos     int
	value   int
	placed  bool
}

// NewValueBar returns a bar over [min, max] starting at value.
func NewValueBar(min, max, value int, o geom.Orientation) *ValueBar {
	b := &ValueBar{
		Range:       geom.NewRange(min, max),
		Orientation: o,
	}
	b.SetValue(value)
	return b
}

func (t *tracker) press() (BarEvent, bool) {
	t.pressed = true
	return BarEvent{Kind: DragStart, Value: t.value}, true
}

func (t *tracker) move(g geom.Geometry, r geom.Range, c int) (BarEvent, bool) {
	if !t.pressed {
		return BarEvent{}, false
	}
	t.pos = g.Clamp(c)
	t.value = g.Value(r, t.pos)
	t.placed = true
	return BarEvent{Kind: ValueChanged, Value: t.value}, true
}

func (t *tracker) release() (BarEvent, bool) {
	if !t.pressed {
		return BarEvent{}, false
	}
	t.pressed = false
	return BarEvent{Kind: DragEnd, Value: t.value}, true
}

func (t *tracker) cancel() {
	t.pressed = false
}

// Value returns the current value.
func (b *ValueBar) Value() int {
	return b.Range.Clamp(b.state.value)
}

// SetValue moves the thumb to v, clamped to the range. It does not
// trigger any hooks.
func (b *ValueBar) SetValue(v int) {
	b.state.value = b.Range.Clamp(v)
	b.state.placed = false
	b.place()
}

// Reset moves the thumb back to the minimum end.
func (b *ValueBar) Reset() {
	b.SetValue(b.Range.Min)
}

// Pressed reports whether a pointer is holding the thumb.
func (b *ValueBar) Pressed() bool {
	return b.state.pressed
}

// Pos returns the thumb position along the bar's primary axis, in the
// coordinates of the last Layout.
func (b *ValueBar) Pos() int {
	return b.state.pos
}

// Geometry returns the geometry of the last Layout.
func (b *ValueBar) Geometry() geom.Geometry {
	return b.geo
}

// ThumbOp returns the image operation for a thumb image. Ops are kept
// across frames for the two most recently used images, so their
// textures are uploaded once.
func (b *ValueBar) ThumbOp(src image.Image) paint.ImageOp {
	for _, t := range b.thumbs {
		if t.src == src {
			return t.op
		}
	}
	b.thumbs[1] = b.thumbs[0]
	b.thumbs[0] = thumbOp{src: src, op: paint.NewImageOp(src)}
	return b.thumbs[0].op
}

// place derives the thumb position from the value unless a drag put it
// on the current geometry.
func (b *ValueBar) place() {
	if b.state.placed {
		b.state.pos = b.geo.Clamp(b.state.pos)
		return
	}
	b.state.pos = b.geo.Position(b.Range, b.state.value)
}

// Update processes pointer events and reports the next state change.
// The matching hook is called before the event is returned.
func (b *ValueBar) Update(gtx layout.Context) (BarEvent, bool) {
	axis := gesture.Vertical
	if b.Orientation == geom.Horizontal {
		axis = gesture.Horizontal
	}
	for {
		e, ok := b.drag.Update(gtx.Metric, gtx.Source, axis)
		if !ok {
			return BarEvent{}, false
		}
		var (
			ev      BarEvent
			changed bool
		)
		switch e.Kind {
		case pointer.Press:
			ev, changed = b.state.press()
		case pointer.Drag:
			c := int(e.Position.Y)
			if b.Orientation == geom.Horizontal {
				c = int(e.Position.X)
			}
			ev, changed = b.state.move(b.geo, b.Range, c)
		case pointer.Release:
			ev, changed = b.state.release()
		case pointer.Cancel:
			if b.state.pressed {
				b.state.cancel()
				gtx.Execute(op.InvalidateCmd{})
			}
		}
		if !changed {
			continue
		}
		b.dispatch(ev)
		gtx.Execute(op.InvalidateCmd{})
		return ev, true
	}
}

func (b *ValueBar) dispatch(ev BarEvent) {
	switch ev.Kind {
	case DragStart:
		if b.OnDragStart != nil {
			b.OnDragStart()
		}
	case ValueChanged:
		if b.OnValueChanged != nil {
			b.OnValueChanged(ev.Value)
		}
	case DragEnd:
		if b.OnDragEnd != nil {
			b.OnDragEnd()
		}
	}
}

// Layout adopts g as the bar geometry, processes pending events and
// registers the bar for input over gtx.Constraints.Max.
func (b *ValueBar) Layout(gtx layout.Context, g geom.Geometry) layout.Dimensions {
	if g != b.geo {
		b.geo = g
		b.state.placed = false
	}
	b.place()
	for {
		if _, ok := b.Update(gtx); !ok {
			break
		}
	}

	size := gtx.Constraints.Max
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	pointer.CursorGrab.Add(gtx.Ops)
	b.drag.Add(gtx.Ops)
	return layout.Dimensions{Size: size}
}
