// Package level reads and writes the minimal slice of an .adofai level file
// this editor cares about: the settings needed for timing, the tile path,
// and the MoveCamera actions. Every other part of the file is carried
// through untouched, so saving never destroys events the editor does not
// understand.
package level

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/ivlev/camtrack/internal/timing"
)

// Settings is the subset of level settings the editor needs.
type Settings struct {
	BPM    float64 `json:"bpm"`
	Offset float64 `json:"offset"` // milliseconds
}

// Level is a parsed level file. Top-level sections are kept as raw JSON so
// unknown sections round-trip verbatim.
type Level struct {
	fields   map[string]json.RawMessage
	actions  []json.RawMessage
	settings Settings
	angles   []float64
}

// actionHeader is the part every action shares.
type actionHeader struct {
	Floor     int    `json:"floor"`
	EventType string `json:"eventType"`
}

// Load parses a level file. A UTF-8 BOM is tolerated.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

// Parse parses level file bytes.
func Parse(data []byte) (*Level, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	l := &Level{}
	if err := json.Unmarshal(data, &l.fields); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}

	if raw, ok := l.fields["settings"]; ok {
		if err := json.Unmarshal(raw, &l.settings); err != nil {
			return nil, fmt.Errorf("parse settings: %w", err)
		}
	}
	if l.settings.BPM == 0 {
		l.settings.BPM = 100
	}

	if raw, ok := l.fields["actions"]; ok {
		if err := json.Unmarshal(raw, &l.actions); err != nil {
			return nil, fmt.Errorf("parse actions: %w", err)
		}
	}

	if err := l.parsePath(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Level) parsePath() error {
	if raw, ok := l.fields["angleData"]; ok {
		if err := json.Unmarshal(raw, &l.angles); err != nil {
			return fmt.Errorf("parse angleData: %w", err)
		}
		return nil
	}
	if raw, ok := l.fields["pathData"]; ok {
		var letters string
		if err := json.Unmarshal(raw, &letters); err != nil {
			return fmt.Errorf("parse pathData: %w", err)
		}
		l.angles = decodePath(letters)
		return nil
	}
	return fmt.Errorf("level has neither angleData nor pathData")
}

// Settings returns the timing-relevant level settings.
func (l *Level) Settings() Settings {
	return l.settings
}

// Angles returns the tile angles in degrees, one per tile.
func (l *Level) Angles() []float64 {
	return l.angles
}

// Twirls returns the floors carrying a Twirl action.
func (l *Level) Twirls() []int {
	var floors []int
	for _, raw := range l.actions {
		var h actionHeader
		if json.Unmarshal(raw, &h) == nil && h.EventType == "Twirl" {
			floors = append(floors, h.Floor)
		}
	}
	return floors
}

// SpeedChanges returns the SetSpeed actions in floor order.
func (l *Level) SpeedChanges() []timing.SpeedChange {
	type setSpeed struct {
		actionHeader
		SpeedType      string  `json:"speedType"`
		BeatsPerMinute float64 `json:"beatsPerMinute"`
		BPMMultiplier  float64 `json:"bpmMultiplier"`
	}

	var changes []timing.SpeedChange
	for _, raw := range l.actions {
		var s setSpeed
		if json.Unmarshal(raw, &s) != nil || s.EventType != "SetSpeed" {
			continue
		}
		c := timing.SpeedChange{Floor: s.Floor}
		if s.SpeedType == "Multiplier" {
			c.Multiplier = s.BPMMultiplier
		} else {
			c.BPM = s.BeatsPerMinute
		}
		changes = append(changes, c)
	}
	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].Floor < changes[j].Floor
	})
	return changes
}

// TimingTable builds the tile-timing table for this level.
func (l *Level) TimingTable() (*timing.Table, error) {
	return timing.New(l.settings.BPM, l.settings.Offset, l.angles, l.Twirls(), l.SpeedChanges())
}

// CameraEvents decodes the MoveCamera actions in floor order. Actions that
// fail to decode are skipped rather than failing the load.
func (l *Level) CameraEvents() []CameraEvent {
	var events []CameraEvent
	for _, raw := range l.actions {
		var h actionHeader
		if json.Unmarshal(raw, &h) != nil || h.EventType != "MoveCamera" {
			continue
		}
		var ev CameraEvent
		if json.Unmarshal(raw, &ev) != nil {
			continue
		}
		events = append(events, ev)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Floor < events[j].Floor
	})
	return events
}

// ReplaceCameraEvents drops every MoveCamera action and appends the given
// ones, leaving all other actions untouched. This mirrors how the editor
// saves: foreign events first, camera events rebuilt from the track.
func (l *Level) ReplaceCameraEvents(events []CameraEvent) error {
	kept := l.actions[:0:0]
	for _, raw := range l.actions {
		var h actionHeader
		if json.Unmarshal(raw, &h) == nil && h.EventType == "MoveCamera" {
			continue
		}
		kept = append(kept, raw)
	}

	for i := range events {
		events[i].EventType = "MoveCamera"
		raw, err := json.Marshal(&events[i])
		if err != nil {
			return fmt.Errorf("encode camera event on floor %d: %w", events[i].Floor, err)
		}
		kept = append(kept, raw)
	}

	l.actions = kept
	raw, err := json.Marshal(l.actions)
	if err != nil {
		return fmt.Errorf("encode actions: %w", err)
	}
	l.fields["actions"] = raw
	return nil
}

// Write serializes the level to path.
func (l *Level) Write(path string) error {
	data, err := json.MarshalIndent(l.fields, "", "  ")
	if err != nil {
		return fmt.Errorf("encode level: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write level: %w", err)
	}
	return nil
}
