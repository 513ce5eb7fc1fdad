package timing

import (
	"math"
	"testing"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStraightPath(t *testing.T) {
	// A straight path sweeps 180 degrees per tile: one beat each.
	angles := []float64{0, 0, 0, 0}
	tbl, err := New(120, 1000, angles, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	// 120 BPM = 500ms per beat.
	want := []float64{1000, 1500, 2000, 2500}
	for i, w := range want {
		if got := tbl.TimeAt(i); !almost(got, w) {
			t.Errorf("TimeAt(%d) = %g, want %g", i, got, w)
		}
	}

	// Clamped outside the path.
	if got := tbl.TimeAt(-3); !almost(got, 1000) {
		t.Errorf("TimeAt(-3) = %g, want 1000", got)
	}
	if got := tbl.TimeAt(99); !almost(got, 2500) {
		t.Errorf("TimeAt(99) = %g, want 2500", got)
	}
}

func TestTurnsAndTwirls(t *testing.T) {
	// 0 -> 90 is a 90-degree sweep clockwise: half a beat.
	tbl, err := New(60, 0, []float64{0, 90}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := tbl.TimeAt(1); !almost(got, 500) {
		t.Errorf("90-degree turn = %gms, want 500", got)
	}

	// A twirl on the first floor flips the sweep: 270 degrees instead.
	tbl, err = New(60, 0, []float64{0, 90}, []int{0}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := tbl.TimeAt(1); !almost(got, 1500) {
		t.Errorf("twirled 90-degree turn = %gms, want 1500", got)
	}
}

func TestSpeedChanges(t *testing.T) {
	angles := []float64{0, 0, 0, 0}

	// Absolute BPM change on floor 1 affects travel departing floor 1.
	tbl, err := New(120, 0, angles, nil, []SpeedChange{{Floor: 1, BPM: 240}})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 500, 750, 1000}
	for i, w := range want {
		if got := tbl.TimeAt(i); !almost(got, w) {
			t.Errorf("TimeAt(%d) = %g, want %g", i, got, w)
		}
	}

	// Multiplier halves the tempo from floor 2.
	tbl, err = New(120, 0, angles, nil, []SpeedChange{{Floor: 2, Multiplier: 0.5}})
	if err != nil {
		t.Fatal(err)
	}
	if got := tbl.TimeAt(3); !almost(got, 2000) {
		t.Errorf("TimeAt(3) with halved tempo = %g, want 2000", got)
	}
}

func TestFloorAtInvertsTimeAt(t *testing.T) {
	tbl, err := New(120, 1000, []float64{0, 0, 0, 0}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		timeMs float64
		want   int
	}{
		{0, 0},     // before the path
		{1000, 0},  // exactly on a tile
		{1001, 1},  // just past it: next tile
		{1500, 1},
		{2400, 3},
		{9999, 3}, // beyond the path: last tile
	}
	for _, tt := range tests {
		if got := tbl.FloorAt(tt.timeMs); got != tt.want {
			t.Errorf("FloorAt(%g) = %d, want %d", tt.timeMs, got, tt.want)
		}
	}

	// Round trip: every tile's own time maps back to its index.
	for i := 0; i < tbl.Len(); i++ {
		if got := tbl.FloorAt(tbl.TimeAt(i)); got != i {
			t.Errorf("FloorAt(TimeAt(%d)) = %d", i, got)
		}
	}
}

func TestFloorAtOnRoundedTimes(t *testing.T) {
	// Keyframe times are stored as whole milliseconds, but at most BPMs the
	// tile times are fractional: 130 BPM puts tile 1 at 461.538...ms, which
	// rounds up to 462. FloorAt must still resolve the rounded value to the
	// same tile.
	tbl, err := New(130, 0, []float64{0, 0, 0, 0, 0, 0}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < tbl.Len(); i++ {
		exact := tbl.TimeAt(i)
		rounded := math.Round(exact)
		if got := tbl.FloorAt(rounded); got != i {
			t.Errorf("FloorAt(round(%g)=%g) = %d, want %d", exact, rounded, got, i)
		}
	}

	// The same at an awkward offset and with a twirl in the path.
	tbl, err = New(173, 37.25, []float64{0, 90, 90, 180, 180, 270}, []int{2}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < tbl.Len(); i++ {
		if got := tbl.FloorAt(math.Round(tbl.TimeAt(i))); got != i {
			t.Errorf("FloorAt(round(TimeAt(%d))) = %d", i, got)
		}
	}
}

func TestInvalidInput(t *testing.T) {
	if _, err := New(0, 0, []float64{0}, nil, nil); err == nil {
		t.Error("expected an error for zero bpm")
	}
	if _, err := New(120, 0, nil, nil, nil); err == nil {
		t.Error("expected an error for an empty path")
	}
}
