// Package track holds the camera timeline: an ordered sequence of keyframes
// and the interpolation that turns them into a continuous camera state.
package track

import (
	"math"
	"sort"

	"github.com/ivlev/camtrack/internal/easing"
)

// State is the camera at one instant: position, zoom percentage and angle
// in degrees.
type State struct {
	X     float64
	Y     float64
	Zoom  float64
	Angle float64
}

// DefaultState is the camera of an empty track: origin, 100% zoom, no tilt.
var DefaultState = State{X: 0, Y: 0, Zoom: 100, Angle: 0}

// Keyframe is one point on the camera timeline. Ease describes the incoming
// segment: how progress flows from the previous keyframe into this one.
//
// Samples, when non-nil, is a fixed-resolution discretization of the eased
// fraction. It is a pure function of Ease and Params, never of neighboring
// keyframes, and must be cleared whenever either changes; the setter methods
// below do that themselves.
type Keyframe struct {
	ID      uint64
	Time    int // milliseconds
	X       float64
	Y       float64
	Zoom    float64
	Angle   float64
	Ease    easing.Kind
	Params  easing.Params
	Samples []float64
}

// State returns the keyframe's own channel values.
func (k *Keyframe) State() State {
	return State{X: k.X, Y: k.Y, Zoom: k.Zoom, Angle: k.Angle}
}

// SetEase changes the easing kind and drops the stale sample cache.
func (k *Keyframe) SetEase(kind easing.Kind) {
	k.Ease = kind
	k.Samples = nil
}

// SetElastic updates the elastic parameters and drops the sample cache.
func (k *Keyframe) SetElastic(p easing.ElasticParams) {
	k.Params.Elastic = p
	k.Samples = nil
}

// SetBack updates the back overshoot and drops the sample cache.
func (k *Keyframe) SetBack(p easing.BackParams) {
	k.Params.Back = p
	k.Samples = nil
}

// SetBounce updates the bounce parameters and drops the sample cache.
func (k *Keyframe) SetBounce(p easing.BounceParams) {
	k.Params.Bounce = p
	k.Samples = nil
}

// SetBezier updates the Bezier control points and drops the sample cache.
func (k *Keyframe) SetBezier(p easing.BezierParams) {
	k.Params.Bezier = p
	k.Samples = nil
}

// ResampleCache regenerates the sample cache at resolution n.
func (k *Keyframe) ResampleCache(n int) {
	k.Samples = easing.Sample(k.Ease, k.Params, n)
}

// Track is an ordered sequence of keyframes plus an optional selection.
// Keyframes are sorted by time ascending; equal times are permitted (a
// degenerate zero-length segment) and keep insertion order, which also makes
// the bracketing search deterministic: the earliest-inserted of equal times
// wins. Selection tracks keyframe identity, not index, so it survives
// re-sorts.
type Track struct {
	keyframes []*Keyframe
	selected  uint64 // keyframe ID, 0 means no selection
	nextID    uint64
}

// New returns an empty track.
func New() *Track {
	return &Track{}
}

// Len returns the number of keyframes.
func (tr *Track) Len() int {
	return len(tr.keyframes)
}

// Keyframes returns the keyframes in time order. Callers must not re-order
// the returned slice.
func (tr *Track) Keyframes() []*Keyframe {
	return tr.keyframes
}

// Selected returns the selected keyframe, or nil.
func (tr *Track) Selected() *Keyframe {
	if i := tr.selectedIndex(); i >= 0 {
		return tr.keyframes[i]
	}
	return nil
}

// SelectedIndex returns the track-order index of the selection, or -1.
func (tr *Track) SelectedIndex() int {
	return tr.selectedIndex()
}

func (tr *Track) selectedIndex() int {
	if tr.selected == 0 {
		return -1
	}
	for i, k := range tr.keyframes {
		if k.ID == tr.selected {
			return i
		}
	}
	return -1
}

// Add inserts a new keyframe, re-sorts by time and selects it. Colliding
// times are not rejected.
func (tr *Track) Add(timeMs int, x, y, zoom, angle float64, kind easing.Kind) *Keyframe {
	return tr.Insert(&Keyframe{
		Time:   timeMs,
		X:      x,
		Y:      y,
		Zoom:   zoom,
		Angle:  angle,
		Ease:   kind,
		Params: easing.DefaultParams(),
	})
}

// Insert adds a fully built keyframe (for example one decoded from a level
// file), assigns it an identity, re-sorts and selects it.
func (tr *Track) Insert(k *Keyframe) *Keyframe {
	tr.nextID++
	k.ID = tr.nextID
	tr.keyframes = append(tr.keyframes, k)
	tr.sortByTime()
	tr.selected = k.ID
	return k
}

func (tr *Track) sortByTime() {
	// Stable keeps insertion order for equal times.
	sort.SliceStable(tr.keyframes, func(i, j int) bool {
		return tr.keyframes[i].Time < tr.keyframes[j].Time
	})
}

// StateAt returns the interpolated camera state at an arbitrary query time.
// Outside the keyframe range the boundary keyframe's values are returned
// unchanged; an empty track yields DefaultState.
func (tr *Track) StateAt(timeMs float64) State {
	if len(tr.keyframes) == 0 {
		return DefaultState
	}

	first := tr.keyframes[0]
	if timeMs <= float64(first.Time) {
		return first.State()
	}
	last := tr.keyframes[len(tr.keyframes)-1]
	if timeMs >= float64(last.Time) {
		return last.State()
	}

	for i := 0; i < len(tr.keyframes)-1; i++ {
		a, b := tr.keyframes[i], tr.keyframes[i+1]
		if timeMs < float64(a.Time) || timeMs > float64(b.Time) {
			continue
		}
		if a.Time == b.Time {
			// Zero-length segment; the later keyframe wins outright.
			return b.State()
		}
		alpha := (timeMs - float64(a.Time)) / float64(b.Time-a.Time)
		return blend(a, b, alpha)
	}
	return last.State()
}

// blend interpolates the four channels by the eased fraction. When b carries
// a sample cache the cache is authoritative: preview and export then agree
// exactly, at the cost of the cache's quantization step.
func blend(a, b *Keyframe, alpha float64) State {
	var eased float64
	if len(b.Samples) > 0 {
		idx := int(math.Floor(alpha * float64(len(b.Samples)-1)))
		if idx > len(b.Samples)-1 {
			idx = len(b.Samples) - 1
		}
		if idx < 0 {
			idx = 0
		}
		eased = b.Samples[idx]
	} else {
		eased = easing.Eval(b.Ease, alpha, b.Params)
	}

	return State{
		X:     a.X*(1-eased) + b.X*eased,
		Y:     a.Y*(1-eased) + b.Y*eased,
		Zoom:  a.Zoom*(1-eased) + b.Zoom*eased,
		Angle: a.Angle*(1-eased) + b.Angle*eased,
	}
}

// SelectByPosition selects the first keyframe in track order whose position
// lies within radius of (x, y), or clears the selection. First match, not
// nearest match.
func (tr *Track) SelectByPosition(x, y, radius float64) *Keyframe {
	for _, k := range tr.keyframes {
		dx, dy := k.X-x, k.Y-y
		if math.Hypot(dx, dy) <= radius {
			tr.selected = k.ID
			return k
		}
	}
	tr.selected = 0
	return nil
}

// ClearSelection drops the selection.
func (tr *Track) ClearSelection() {
	tr.selected = 0
}

// MoveSelected translates the selected keyframe's position. No-op without a
// selection.
func (tr *Track) MoveSelected(dx, dy float64) {
	if k := tr.Selected(); k != nil {
		k.X += dx
		k.Y += dy
	}
}

// MoveTimeSelected shifts the selected keyframe in time, clamped at 0, and
// re-sorts. The selection stays on the same keyframe.
func (tr *Track) MoveTimeSelected(dtMs int) {
	k := tr.Selected()
	if k == nil {
		return
	}
	k.Time += dtMs
	if k.Time < 0 {
		k.Time = 0
	}
	tr.sortByTime()
}

// DeleteSelected removes the selected keyframe. The selection moves to the
// keyframe now occupying the same index, clamped to the end, or clears when
// the track empties.
func (tr *Track) DeleteSelected() {
	i := tr.selectedIndex()
	if i < 0 {
		return
	}
	tr.keyframes = append(tr.keyframes[:i], tr.keyframes[i+1:]...)
	if len(tr.keyframes) == 0 {
		tr.selected = 0
		return
	}
	if i > len(tr.keyframes)-1 {
		i = len(tr.keyframes) - 1
	}
	tr.selected = tr.keyframes[i].ID
}

// DuplicateSelected clones the selected keyframe, sample cache included, at
// Time+offsetMs, inserts the clone and selects it. No-op without a
// selection.
func (tr *Track) DuplicateSelected(offsetMs int) *Keyframe {
	src := tr.Selected()
	if src == nil {
		return nil
	}
	clone := *src
	clone.Time = src.Time + offsetMs
	if clone.Time < 0 {
		clone.Time = 0
	}
	if src.Samples != nil {
		clone.Samples = append([]float64(nil), src.Samples...)
	}
	return tr.Insert(&clone)
}

// SelectNext moves the selection one step later in track order, clamped at
// the end; with no selection it jumps to the first keyframe.
func (tr *Track) SelectNext() {
	if len(tr.keyframes) == 0 {
		return
	}
	i := tr.selectedIndex()
	switch {
	case i < 0:
		i = 0
	case i < len(tr.keyframes)-1:
		i++
	}
	tr.selected = tr.keyframes[i].ID
}

// SelectPrev moves the selection one step earlier, clamped at the start;
// with no selection it jumps to the last keyframe.
func (tr *Track) SelectPrev() {
	if len(tr.keyframes) == 0 {
		return
	}
	i := tr.selectedIndex()
	switch {
	case i < 0:
		i = len(tr.keyframes) - 1
	case i > 0:
		i--
	}
	tr.selected = tr.keyframes[i].ID
}

// CycleEase advances the selected keyframe's easing kind through the full
// kind list, wrapping, and invalidates its sample cache.
func (tr *Track) CycleEase(dir int) {
	if k := tr.Selected(); k != nil {
		k.SetEase(k.Ease.Cycle(dir))
	}
}

// RegenerateSamples rebuilds every keyframe's sample cache at resolution n.
func (tr *Track) RegenerateSamples(n int) {
	for _, k := range tr.keyframes {
		k.ResampleCache(n)
	}
}

// InvalidateSamples clears every keyframe's sample cache.
func (tr *Track) InvalidateSamples() {
	for _, k := range tr.keyframes {
		k.Samples = nil
	}
}
