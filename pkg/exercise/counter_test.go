package exercise

import (
	"image"
	"testing"
)

func pt(x, y int) *image.Point {
	p := image.Pt(x, y)
	return &p
}

func twoPointSet() CalibrationSet {
	return CalibrationSet{pt(0, 0), pt(10, 0)}
}

func TestNewCounter_InvalidSets(t *testing.T) {
	if _, err := NewCounter(nil, Tolerance{X: 3, Y: 3}); err == nil {
		t.Error("expected error for empty set")
	}
	if _, err := NewCounter(twoPointSet(), Tolerance{X: 0, Y: 3}); err == nil {
		t.Error("expected error for non-positive tolerance")
	}
}

func TestCounter_OneCycleOneRepetition(t *testing.T) {
	c, err := NewCounter(twoPointSet(), Tolerance{X: 3, Y: 3})
	if err != nil {
		t.Fatal(err)
	}

	// Visiting both points and returning to the first completes one
	// cycle; the count increments exactly on the wrap back to index 0.
	if ev := c.Observe(pt(0, 0)); ev != NoChange {
		t.Errorf("first point: got %v, want NoChange", ev)
	}
	if ev := c.Observe(pt(10, 0)); ev != RepetitionIncremented {
		t.Errorf("wrap to index 0: got %v, want RepetitionIncremented", ev)
	}
	if c.Count() != 1 {
		t.Errorf("count: got %d, want 1", c.Count())
	}
	if c.TargetIndex() != 0 {
		t.Errorf("target index after wrap: got %d, want 0", c.TargetIndex())
	}
}

func TestCounter_SpecTrajectory(t *testing.T) {
	// Trajectory (0,0) -> (10,0) -> (0,0): count becomes 1 exactly at
	// the second observation (index 1 satisfied, wrap), and the third
	// starts the next cycle.
	c, _ := NewCounter(twoPointSet(), Tolerance{X: 3, Y: 3})

	events := []RepetitionEvent{
		c.Observe(pt(0, 0)),
		c.Observe(pt(10, 0)),
		c.Observe(pt(0, 0)),
	}
	want := []RepetitionEvent{NoChange, RepetitionIncremented, NoChange}
	for i := range events {
		if events[i] != want[i] {
			t.Errorf("observation %d: got %v, want %v", i+1, events[i], want[i])
		}
	}
	if c.Count() != 1 {
		t.Errorf("count: got %d, want 1", c.Count())
	}
}

func TestCounter_LostMarkerIsNoOp(t *testing.T) {
	c, _ := NewCounter(twoPointSet(), Tolerance{X: 3, Y: 3})
	c.Observe(pt(0, 0))

	for i := 0; i < 10; i++ {
		if ev := c.Observe(nil); ev != NoChange {
			t.Fatalf("Observe(nil): got %v, want NoChange", ev)
		}
	}
	if c.TargetIndex() != 1 || c.Count() != 0 {
		t.Errorf("state changed on lost marker: index=%d count=%d", c.TargetIndex(), c.Count())
	}
}

func TestCounter_StrictToleranceBoundary(t *testing.T) {
	c, _ := NewCounter(twoPointSet(), Tolerance{X: 3, Y: 3})

	// Exactly toleranceX away on the x-axis is not a match.
	if ev := c.Observe(pt(3, 0)); ev != NoChange {
		t.Errorf("boundary point matched: got %v", ev)
	}
	if c.TargetIndex() != 0 {
		t.Errorf("index advanced on boundary point: %d", c.TargetIndex())
	}

	// One pixel inside the box is.
	c.Observe(pt(2, 0))
	if c.TargetIndex() != 1 {
		t.Errorf("index did not advance inside the box: %d", c.TargetIndex())
	}
}

func TestCounter_NoDoubleAdvance(t *testing.T) {
	// Overlapping tolerance boxes: one observation satisfies both
	// targets, but only one step is taken per call.
	set := CalibrationSet{pt(0, 0), pt(1, 0)}
	c, _ := NewCounter(set, Tolerance{X: 10, Y: 10})

	if ev := c.Observe(pt(0, 0)); ev != NoChange {
		t.Errorf("first observation: got %v, want NoChange", ev)
	}
	if c.TargetIndex() != 1 {
		t.Fatalf("target index: got %d, want 1", c.TargetIndex())
	}
	if ev := c.Observe(pt(0, 0)); ev != RepetitionIncremented {
		t.Errorf("second observation: got %v, want RepetitionIncremented", ev)
	}
	if c.Count() != 1 {
		t.Errorf("count: got %d, want 1", c.Count())
	}
}

func TestCounter_DegeneratePointStallsCycle(t *testing.T) {
	set := CalibrationSet{pt(0, 0), nil}
	c, _ := NewCounter(set, Tolerance{X: 3, Y: 3})

	c.Observe(pt(0, 0))
	if c.TargetIndex() != 1 {
		t.Fatalf("target index: got %d, want 1", c.TargetIndex())
	}
	// Nothing can match the lost-marker point; the cycle stalls there.
	for _, p := range []*image.Point{pt(0, 0), pt(10, 0), pt(-100, 50)} {
		if ev := c.Observe(p); ev != NoChange {
			t.Errorf("Observe(%v) against degenerate target: got %v", p, ev)
		}
	}
	if c.Count() != 0 {
		t.Errorf("count: got %d, want 0", c.Count())
	}
}

func TestCounter_EndToEndScenario(t *testing.T) {
	// 640x480, two calibration points, tolerance (80,60): a trajectory
	// visiting both points twice yields two repetitions.
	set := CalibrationSet{pt(100, 100), pt(540, 380)}
	c, _ := NewCounter(set, Tolerance{X: 80, Y: 60})

	trajectory := []*image.Point{
		pt(100, 100), pt(540, 380), pt(100, 100), pt(540, 380), pt(100, 100),
	}
	reps := 0
	for _, p := range trajectory {
		if c.Observe(p) == RepetitionIncremented {
			reps++
		}
	}
	if c.Count() != 2 || reps != 2 {
		t.Errorf("count: got %d (%d events), want 2", c.Count(), reps)
	}
}
