package level

// CameraEvent is one MoveCamera action as stored in the level file. Times
// are not stored directly: Floor is resolved to milliseconds through the
// tile-timing table on load, and recomputed from the keyframe time on save.
type CameraEvent struct {
	Floor       int        `json:"floor"`
	EventType   string     `json:"eventType"`
	Position    [2]float64 `json:"position"`
	Zoom        float64    `json:"zoom"`
	AngleOffset float64    `json:"angleOffset"`
	Ease        string     `json:"ease"`

	// Parameter sub-records for the parameterized easing families. Only the
	// record matching Ease is meaningful; missing records fall back to the
	// family defaults.
	Elastic *ElasticRecord `json:"elastic,omitempty"`
	Back    *BackRecord    `json:"back,omitempty"`
	Bounce  *BounceRecord  `json:"bounce,omitempty"`

	// Bezier holds the two free control points when Ease is a Bezier.
	Bezier [][2]float64 `json:"bezierPoints,omitempty"`

	// Samples is the pre-rendered eased curve the game engine replays
	// instead of re-deriving the easing function. Regenerated on every save.
	Samples []float64 `json:"samples,omitempty"`
}

// ElasticRecord mirrors easing.ElasticParams in the file format.
type ElasticRecord struct {
	Oscillations int     `json:"oscillations"`
	Decay        float64 `json:"decay"`
}

// BackRecord mirrors easing.BackParams in the file format.
type BackRecord struct {
	Overshoot float64 `json:"overshoot"`
}

// BounceRecord mirrors easing.BounceParams in the file format.
type BounceRecord struct {
	N1 float64 `json:"n1"`
	D1 float64 `json:"d1"`
}

// decodePath converts legacy letter path data to tile angles. Letters step
// in 15-degree increments counterclockwise from R = 0. Unknown letters fall
// back to 0 so very old files still load.
func decodePath(letters string) []float64 {
	angles := make([]float64, 0, len(letters)+1)
	angles = append(angles, 0) // implicit starting tile
	for _, r := range letters {
		angles = append(angles, pathAngles[r])
	}
	return angles
}

var pathAngles = map[rune]float64{
	'R': 0, 'p': 15, 'J': 30, 'E': 45, 'T': 60, 'o': 75,
	'U': 90, 'q': 105, 'G': 120, 'Q': 135, 'H': 150, 'W': 165,
	'L': 180, 'x': 195, 'N': 210, 'Z': 225, 'F': 240, 'V': 255,
	'D': 270, 'Y': 285, 'B': 300, 'C': 315, 'M': 330, 'A': 345,
}
