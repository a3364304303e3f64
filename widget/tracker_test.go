// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"testing"

	"github.com/gioseek/seekbar/geom"
)

func TestTrackerTransitions(t *testing.T) {
	g := geom.Geometry{Start: image.Pt(0, 300), Stop: image.Pt(0, 100), Length: 200}
	r := geom.Range{Min: 0, Max: 100}
	var tr tracker

	if _, ok := tr.move(g, r, 200); ok {
		t.Error("move while idle produced an event")
	}
	if _, ok := tr.release(); ok {
		t.Error("release while idle produced an event")
	}
	if e, ok := tr.press(); !ok || e.Kind != DragStart {
		t.Errorf("press = %+v, %v", e, ok)
	}
	if e, ok := tr.move(g, r, 200); !ok || e.Kind != ValueChanged || e.Value != 50 {
		t.Errorf("move = %+v, %v", e, ok)
	}
	// Unchanged values are still reported while pressed.
	if e, ok := tr.move(g, r, 200); !ok || e.Value != 50 {
		t.Errorf("repeated move = %+v, %v", e, ok)
	}
	if e, ok := tr.release(); !ok || e.Kind != DragEnd || e.Value != 50 {
		t.Errorf("release = %+v, %v", e, ok)
	}
	if tr.pressed {
		t.Error("pressed after release")
	}
}

func TestTrackerCancel(t *testing.T) {
	g := geom.Geometry{Start: image.Pt(0, 300), Stop: image.Pt(0, 100), Length: 200}
	r := geom.Range{Min: 0, Max: 100}
	var tr tracker
	tr.press()
	tr.move(g, r, 140)
	tr.cancel()
	if tr.pressed {
		t.Error("pressed after cancel")
	}
	if _, ok := tr.release(); ok {
		t.Error("release after cancel produced an event")
	}
	if tr.value != 80 {
		t.Errorf("cancel changed the value to %d", tr.value)
	}
}

func TestTrackerReusable(t *testing.T) {
	g := geom.Geometry{Start: image.Pt(10, 0), Stop: image.Pt(110, 0), Length: 100, Orientation: geom.Horizontal}
	r := geom.Range{Min: 0, Max: 10}
	var tr tracker
	for i := 0; i < 3; i++ {
		tr.press()
		if e, _ := tr.move(g, r, 60); e.Value != 5 {
			t.Fatalf("round %d: value %d, want 5", i, e.Value)
		}
		if e, _ := tr.move(g, r, 500); e.Value != 10 {
			t.Fatalf("round %d: value %d, want 10", i, e.Value)
		}
		tr.release()
	}
}
