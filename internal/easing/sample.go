package easing

const (
	// PersistSamples is the curve resolution written into level files, so
	// the game engine replays the curve without re-deriving transcendental
	// functions.
	PersistSamples = 60

	// PreviewSamples is the resolution used for on-screen curve previews.
	PreviewSamples = 100
)

// Sample evaluates the curve at n evenly spaced progress steps, t = i/(n-1).
// The first and last samples are always exactly 0 and 1.
func Sample(k Kind, p Params, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = Eval(k, float64(i)/float64(n-1), p)
	}
	return out
}
