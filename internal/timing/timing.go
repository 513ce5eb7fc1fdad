// Package timing derives the tile-timing table of a level: the millisecond
// hit time of every tile, computed from the starting BPM, the song offset,
// the tile angles and the speed/twirl actions along the path.
package timing

import (
	"fmt"
	"math"
	"sort"
)

// SpeedChange alters the tempo from its floor onward. Either BPM is set
// (absolute) or Multiplier is set (relative to the current tempo).
type SpeedChange struct {
	Floor      int
	BPM        float64
	Multiplier float64
}

// Table holds the per-tile hit times in milliseconds, ascending.
type Table struct {
	times []float64
}

// New builds the timing table. The planet sweeps from the previous tile's
// incoming direction to the next tile's angle; the swept angle over 180
// gives the travel time in beats. Twirl floors flip the sweep direction,
// speed changes take effect for travel departing their floor.
func New(bpm, offsetMs float64, angles []float64, twirls []int, speeds []SpeedChange) (*Table, error) {
	if bpm <= 0 {
		return nil, fmt.Errorf("invalid bpm %g", bpm)
	}
	if len(angles) == 0 {
		return nil, fmt.Errorf("no tiles")
	}

	twirled := make(map[int]bool, len(twirls))
	for _, f := range twirls {
		twirled[f] = true
	}
	speedAt := make(map[int]SpeedChange, len(speeds))
	for _, s := range speeds {
		speedAt[s.Floor] = s
	}

	times := make([]float64, len(angles))
	times[0] = offsetMs

	curBPM := bpm
	clockwise := true
	for i := 1; i < len(angles); i++ {
		if s, ok := speedAt[i-1]; ok {
			switch {
			case s.BPM > 0:
				curBPM = s.BPM
			case s.Multiplier > 0:
				curBPM *= s.Multiplier
			}
		}
		if twirled[i-1] {
			clockwise = !clockwise
		}

		rel := math.Mod(angles[i-1]-angles[i]+540, 360)
		if !clockwise {
			rel = 360 - rel
		}
		rel = math.Mod(rel+360, 360)
		if rel == 0 {
			rel = 360
		}

		beats := rel / 180
		times[i] = times[i-1] + beats*(60000/curBPM)
	}

	return &Table{times: times}, nil
}

// Len returns the number of tiles.
func (t *Table) Len() int {
	return len(t.times)
}

// TimeAt returns the hit time of a tile in milliseconds, clamped to the
// table's range.
func (t *Table) TimeAt(floor int) float64 {
	if floor < 0 {
		floor = 0
	}
	if floor > len(t.times)-1 {
		floor = len(t.times) - 1
	}
	return t.times[floor]
}

// FloorAt returns the smallest tile index whose hit time is at or after
// timeMs, or the last index when the query lies beyond the path. This is the
// inverse of TimeAt used when persisting keyframes, so load and save agree.
// Keyframe times are whole milliseconds while tile times usually are not;
// half a millisecond of slack keeps FloorAt exact on rounded tile times.
func (t *Table) FloorAt(timeMs float64) int {
	i := sort.Search(len(t.times), func(i int) bool {
		return t.times[i] >= timeMs-0.5
	})
	if i == len(t.times) {
		return len(t.times) - 1
	}
	return i
}
