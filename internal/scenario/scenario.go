// Package scenario defines a hand-editable YAML description of a camera
// track. Exporting a level's camera events to a scenario, editing the YAML
// and applying it back is the scripted counterpart to editing keyframes
// interactively.
package scenario

import (
	"github.com/ivlev/camtrack/internal/easing"
	"github.com/ivlev/camtrack/internal/track"
)

// Scenario is a complete camera script.
type Scenario struct {
	Version   string     `yaml:"version"`
	Keyframes []Keyframe `yaml:"keyframes"`
}

// Keyframe is one scripted camera keyframe. Times are absolute
// milliseconds; parameter records are present only for the families that
// use them.
type Keyframe struct {
	Time  int     `yaml:"time"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Zoom  float64 `yaml:"zoom"`
	Angle float64 `yaml:"angle"`
	Ease  string  `yaml:"ease"`

	Elastic *ElasticParams `yaml:"elastic,omitempty"`
	Back    *BackParams    `yaml:"back,omitempty"`
	Bounce  *BounceParams  `yaml:"bounce,omitempty"`
	Bezier  *BezierParams  `yaml:"bezier,omitempty"`
}

// ElasticParams mirrors easing.ElasticParams in the script.
type ElasticParams struct {
	Oscillations int     `yaml:"oscillations"`
	Decay        float64 `yaml:"decay"`
}

// BackParams mirrors easing.BackParams in the script.
type BackParams struct {
	Overshoot float64 `yaml:"overshoot"`
}

// BounceParams mirrors easing.BounceParams in the script.
type BounceParams struct {
	N1 float64 `yaml:"n1"`
	D1 float64 `yaml:"d1"`
}

// BezierParams mirrors easing.BezierParams in the script.
type BezierParams struct {
	P1 [2]float64 `yaml:"p1"`
	P2 [2]float64 `yaml:"p2"`
}

// FromTrack captures a track as a scenario. Sample caches are not exported:
// a scenario describes intent, the caches are derived on save.
func FromTrack(tr *track.Track) *Scenario {
	s := &Scenario{Version: "1.0"}
	for _, k := range tr.Keyframes() {
		sk := Keyframe{
			Time:  k.Time,
			X:     k.X,
			Y:     k.Y,
			Zoom:  k.Zoom,
			Angle: k.Angle,
			Ease:  string(k.Ease),
		}
		switch k.Ease {
		case easing.Elastic:
			sk.Elastic = &ElasticParams{
				Oscillations: k.Params.Elastic.Oscillations,
				Decay:        k.Params.Elastic.Decay,
			}
		case easing.InBack, easing.OutBack, easing.InOutBack:
			sk.Back = &BackParams{Overshoot: k.Params.Back.Overshoot}
		case easing.InBounce, easing.OutBounce, easing.InOutBounce:
			sk.Bounce = &BounceParams{N1: k.Params.Bounce.N1, D1: k.Params.Bounce.D1}
		case easing.Bezier:
			sk.Bezier = &BezierParams{
				P1: [2]float64{k.Params.Bezier.P1.X, k.Params.Bezier.P1.Y},
				P2: [2]float64{k.Params.Bezier.P2.X, k.Params.Bezier.P2.Y},
			}
		}
		s.Keyframes = append(s.Keyframes, sk)
	}
	return s
}

// Track builds a fresh track from the scenario. Missing parameter records
// fall back to the family defaults; unknown ease names are kept and behave
// as Linear.
func (s *Scenario) Track() *track.Track {
	tr := track.New()
	for _, sk := range s.Keyframes {
		params := easing.DefaultParams()
		if sk.Elastic != nil {
			params.Elastic = easing.ElasticParams{
				Oscillations: sk.Elastic.Oscillations,
				Decay:        sk.Elastic.Decay,
			}
		}
		if sk.Back != nil {
			params.Back = easing.BackParams{Overshoot: sk.Back.Overshoot}
		}
		if sk.Bounce != nil {
			params.Bounce = easing.BounceParams{N1: sk.Bounce.N1, D1: sk.Bounce.D1}
		}
		if sk.Bezier != nil {
			params.Bezier = easing.BezierParams{
				P1: easing.Point{X: sk.Bezier.P1[0], Y: sk.Bezier.P1[1]},
				P2: easing.Point{X: sk.Bezier.P2[0], Y: sk.Bezier.P2[1]},
			}
		}

		ease := easing.Kind(sk.Ease)
		if sk.Ease == "" {
			ease = easing.Linear
		}

		tr.Insert(&track.Keyframe{
			Time:   sk.Time,
			X:      sk.X,
			Y:      sk.Y,
			Zoom:   sk.Zoom,
			Angle:  sk.Angle,
			Ease:   ease,
			Params: params,
		})
	}
	tr.ClearSelection()
	return tr
}
