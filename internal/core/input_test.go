package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}
	if _, ok := f.Picked(); ok {
		t.Fatal("new frame should have no pick")
	}

	f.Set(ActionSelect)
	f.SetPick(3)

	if !f.Has(ActionSelect) || f.Has(ActionHint) {
		t.Errorf("unexpected actions: %v", f.Actions)
	}
	if col, ok := f.Picked(); !ok || col != 3 {
		t.Errorf("Picked() = %d, %v, expected 3, true", col, ok)
	}

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("cleared frame should be empty")
	}
	if col, ok := clone.Picked(); !clone.Has(ActionSelect) || !ok || col != 3 {
		t.Error("clone should be unaffected by Clear")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	if _, ok := f.Picked(); ok {
		t.Error("zero frame should have no pick")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionHint.String() != "Hint" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
