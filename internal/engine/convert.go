package engine

import (
	"math"

	"github.com/ivlev/camtrack/internal/easing"
	"github.com/ivlev/camtrack/internal/level"
	"github.com/ivlev/camtrack/internal/timing"
	"github.com/ivlev/camtrack/internal/track"
)

// TrackFromLevel собирает трек из MoveCamera событий уровня. Номер тайла
// события превращается в миллисекунды через таблицу тайминга; битые
// параметры изингов заменяются значениями по умолчанию.
func TrackFromLevel(lvl *level.Level, tbl *timing.Table) *track.Track {
	tr := track.New()
	for _, ev := range lvl.CameraEvents() {
		params := easing.DefaultParams()
		if ev.Elastic != nil && ev.Elastic.Oscillations > 0 && ev.Elastic.Decay > 0 {
			params.Elastic = easing.ElasticParams{
				Oscillations: ev.Elastic.Oscillations,
				Decay:        ev.Elastic.Decay,
			}
		}
		if ev.Back != nil {
			params.Back = easing.BackParams{Overshoot: ev.Back.Overshoot}
		}
		if ev.Bounce != nil && ev.Bounce.N1 > 0 && ev.Bounce.D1 > 0 {
			params.Bounce = easing.BounceParams{N1: ev.Bounce.N1, D1: ev.Bounce.D1}
		}
		if len(ev.Bezier) == 2 {
			params.Bezier = easing.BezierParams{
				P1: easing.Point{X: ev.Bezier[0][0], Y: ev.Bezier[0][1]},
				P2: easing.Point{X: ev.Bezier[1][0], Y: ev.Bezier[1][1]},
			}
		}

		ease := easing.Kind(ev.Ease)
		if ev.Ease == "" {
			ease = easing.Linear
		}

		// Кэш семплов принимаем только нужной длины, иначе он пересоберется
		// при сохранении.
		var samples []float64
		if len(ev.Samples) == easing.PersistSamples {
			samples = append([]float64(nil), ev.Samples...)
		}

		tr.Insert(&track.Keyframe{
			Time:    int(math.Round(tbl.TimeAt(ev.Floor))),
			X:       ev.Position[0],
			Y:       ev.Position[1],
			Zoom:    ev.Zoom,
			Angle:   ev.AngleOffset,
			Ease:    ease,
			Params:  params,
			Samples: samples,
		})
	}
	tr.ClearSelection()
	return tr
}

// EventsFromTrack превращает трек обратно в MoveCamera события. Floor
// пересчитывается из времени (обратная операция к TrackFromLevel), кривая
// семплов берется из кэша кадра, если он свежий, иначе считается заново.
func EventsFromTrack(tr *track.Track, tbl *timing.Table, sampleN int) []level.CameraEvent {
	events := make([]level.CameraEvent, 0, tr.Len())
	for _, k := range tr.Keyframes() {
		samples := k.Samples
		if len(samples) != sampleN {
			samples = easing.Sample(k.Ease, k.Params, sampleN)
		}

		ev := level.CameraEvent{
			Floor:       tbl.FloorAt(float64(k.Time)),
			EventType:   "MoveCamera",
			Position:    [2]float64{k.X, k.Y},
			Zoom:        k.Zoom,
			AngleOffset: k.Angle,
			Ease:        string(k.Ease),
			Samples:     samples,
		}

		switch k.Ease {
		case easing.Elastic:
			ev.Elastic = &level.ElasticRecord{
				Oscillations: k.Params.Elastic.Oscillations,
				Decay:        k.Params.Elastic.Decay,
			}
		case easing.InBack, easing.OutBack, easing.InOutBack:
			ev.Back = &level.BackRecord{Overshoot: k.Params.Back.Overshoot}
		case easing.InBounce, easing.OutBounce, easing.InOutBounce:
			ev.Bounce = &level.BounceRecord{N1: k.Params.Bounce.N1, D1: k.Params.Bounce.D1}
		case easing.Bezier:
			ev.Bezier = [][2]float64{
				{k.Params.Bezier.P1.X, k.Params.Bezier.P1.Y},
				{k.Params.Bezier.P2.X, k.Params.Bezier.P2.Y},
			}
		}

		events = append(events, ev)
	}
	return events
}
