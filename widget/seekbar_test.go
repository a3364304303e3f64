// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image"
	"reflect"
	"strconv"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/gioseek/seekbar/widget"
)

func TestDirectionOf(t *testing.T) {
	for i, want := range []widget.Direction{widget.ToTop, widget.ToRight, widget.ToBottom, widget.ToLeft} {
		d, ok := widget.DirectionOf(i)
		if !ok || d != want {
			t.Errorf("DirectionOf(%d) = %v, %v; want %v", i, d, ok, want)
		}
	}
	for _, i := range []int{-1, 4, 99} {
		if d, ok := widget.DirectionOf(i); ok || d != widget.ToLeft {
			t.Errorf("DirectionOf(%d) = %v, %v; want ToLeft, false", i, d, ok)
		}
	}
}

func TestDirectionDegrees(t *testing.T) {
	want := map[widget.Direction]int{
		widget.ToTop:    270,
		widget.ToRight:  0,
		widget.ToBottom: 90,
		widget.ToLeft:   180,
	}
	for d, deg := range want {
		if got := d.Degrees(); got != deg {
			t.Errorf("%v.Degrees() = %d, want %d", d, got, deg)
		}
	}
}

func TestDirectionProgress(t *testing.T) {
	view := image.Pt(200, 400)
	tests := []struct {
		d    widget.Direction
		pos  f32.Point
		want int
	}{
		{widget.ToRight, f32.Pt(50, 0), 25},
		{widget.ToRight, f32.Pt(300, 0), 100},
		{widget.ToRight, f32.Pt(-10, 0), 0},
		{widget.ToBottom, f32.Pt(0, 100), 25},
		{widget.ToLeft, f32.Pt(50, 0), 75},
		{widget.ToLeft, f32.Pt(250, 0), 0},
		{widget.ToTop, f32.Pt(0, 100), 75},
		{widget.ToTop, f32.Pt(0, -5), 100},
	}
	for _, tc := range tests {
		if got := tc.d.Progress(tc.pos, view, 100); got != tc.want {
			t.Errorf("%v.Progress(%v) = %d, want %d", tc.d, tc.pos, got, tc.want)
		}
	}
}

func TestDirectionTransform(t *testing.T) {
	view := image.Pt(40, 300)
	for _, d := range []widget.Direction{widget.ToTop, widget.ToRight, widget.ToBottom, widget.ToLeft} {
		track := d.TrackSize(view)
		if d.Vertical() != (track.X == view.Y) {
			t.Errorf("%v: track size %v for view %v", d, track, view)
		}
		tr := d.Transform(view)
		// The track's start end maps to the view point of zero progress,
		// its far end to the point of full progress.
		mid := float32(track.Y) / 2
		start := tr.Transform(f32.Pt(0, mid))
		end := tr.Transform(f32.Pt(float32(track.X), mid))
		if got := d.Progress(start, view, 100); got != 0 {
			t.Errorf("%v: track start maps to %v with progress %d", d, start, got)
		}
		if got := d.Progress(end, view, 100); got != 100 {
			t.Errorf("%v: track end maps to %v with progress %d", d, end, got)
		}
		corner := tr.Transform(f32.Pt(float32(track.X), float32(track.Y)))
		if corner.X < 0 || corner.Y < 0 || corner.X > float32(view.X) || corner.Y > float32(view.Y) {
			t.Errorf("%v: track corner maps outside the view: %v", d, corner)
		}
	}
}

func TestSeekBarEvents(t *testing.T) {
	var r input.Router
	s := widget.NewSeekBar(widget.ToTop)
	var changes []int
	var started, stopped int
	s.OnStartTracking = func() { started++ }
	s.OnStopTracking = func() { stopped++ }
	s.OnProgressChanged = func(p int, fromUser bool) {
		if !fromUser {
			t.Errorf("progress %d not marked as user change", p)
		}
		changes = append(changes, p)
	}
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Source:      r.Source(),
		Constraints: layout.Exact(image.Pt(40, 200)),
	}
	s.Layout(gtx)
	r.Frame(gtx.Ops)
	ev := func(k pointer.Kind, y float32) pointer.Event {
		return pointer.Event{
			Kind:     k,
			Source:   pointer.Mouse,
			Buttons:  pointer.ButtonPrimary,
			Position: f32.Pt(20, y),
		}
	}
	r.Queue(
		ev(pointer.Press, 150),
		ev(pointer.Move, 150),
		ev(pointer.Move, 150),
		ev(pointer.Move, 50),
		ev(pointer.Release, 50),
	)
	var kinds []widget.SeekEventKind
	for {
		e, ok := s.Update(gtx)
		if !ok {
			break
		}
		kinds = append(kinds, e.Kind)
	}
	wantKinds := []widget.SeekEventKind{widget.StartTracking, widget.ProgressChanged, widget.ProgressChanged, widget.StopTracking}
	if !reflect.DeepEqual(kinds, wantKinds) {
		t.Errorf("events %v, want %v", kinds, wantKinds)
	}
	if want := []int{25, 75}; !reflect.DeepEqual(changes, want) {
		t.Errorf("progress changes %v, want %v", changes, want)
	}
	if started != 1 || stopped != 1 {
		t.Errorf("started %d, stopped %d times", started, stopped)
	}
	if s.Progress() != 75 {
		t.Errorf("progress %d, want 75", s.Progress())
	}
}

func TestSeekBarSetProgress(t *testing.T) {
	s := widget.NewSeekBar(widget.ToRight)
	var got []int
	s.OnProgressChanged = func(p int, fromUser bool) {
		if fromUser {
			t.Error("SetProgress reported as user change")
		}
		got = append(got, p)
	}
	s.SetProgress(40)
	s.SetProgress(40)
	s.SetProgress(500)
	if want := []int{40, 100}; !reflect.DeepEqual(got, want) {
		t.Errorf("changes %v, want %v", got, want)
	}
}

func TestSeekBarSetProgressZeroMax(t *testing.T) {
	s := &widget.SeekBar{Direction: widget.ToRight}
	s.SetProgress(40)
	if got := s.Progress(); got != 40 {
		t.Errorf("progress %d with unset Max, want 40", got)
	}
	if s.Max != widget.DefaultSeekMax {
		t.Errorf("Max %d, want %d", s.Max, widget.DefaultSeekMax)
	}
	s.Max = -5
	s.SetProgress(500)
	if got := s.Progress(); got != widget.DefaultSeekMax {
		t.Errorf("progress %d with negative Max, want %d", got, widget.DefaultSeekMax)
	}
}

func TestSeekBarCancel(t *testing.T) {
	var r input.Router
	s := widget.NewSeekBar(widget.ToRight)
	var hooks []string
	s.OnStartTracking = func() { hooks = append(hooks, "start") }
	s.OnStopTracking = func() { hooks = append(hooks, "stop") }
	s.OnProgressChanged = func(p int, fromUser bool) {
		hooks = append(hooks, "progress "+strconv.Itoa(p))
	}
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Source:      r.Source(),
		Constraints: layout.Exact(image.Pt(200, 40)),
	}
	frame := func() {
		gtx.Ops.Reset()
		s.Layout(gtx)
		r.Frame(gtx.Ops)
	}
	ev := func(k pointer.Kind, x float32) pointer.Event {
		return pointer.Event{
			Kind:     k,
			Source:   pointer.Mouse,
			Buttons:  pointer.ButtonPrimary,
			Position: f32.Pt(x, 20),
		}
	}
	drain := func() {
		for {
			if _, ok := s.Update(gtx); !ok {
				return
			}
		}
	}

	frame()
	r.Queue(ev(pointer.Press, 20), ev(pointer.Move, 100), pointer.Event{Kind: pointer.Cancel})
	drain()
	if want := []string{"start", "progress 50"}; !reflect.DeepEqual(hooks, want) {
		t.Errorf("hooks %v after cancel, want %v", hooks, want)
	}
	if s.Pressed() {
		t.Error("seek bar still pressed after cancel")
	}

	hooks = nil
	frame()
	r.Queue(ev(pointer.Press, 100), ev(pointer.Move, 150), ev(pointer.Release, 150))
	drain()
	if want := []string{"start", "progress 75", "stop"}; !reflect.DeepEqual(hooks, want) {
		t.Errorf("hooks %v after a new drag, want %v", hooks, want)
	}
	if got := s.Progress(); got != 75 {
		t.Errorf("progress %d, want 75", got)
	}
}
