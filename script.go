package beacon

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single pointer action in a replay script.
type scriptStep struct {
	Action string  `json:"action"`
	Node   string  `json:"node,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	GrabX  float64 `json:"grabX,omitempty"`
	GrabY  float64 `json:"grabY,omitempty"`
}

// scriptFile is the top-level JSON structure for a replay script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a recorded pointer sequence that can be replayed through a
// Capture into an Editor. Scripts drive headless tests and the
// outline-replay command.
type Script struct {
	steps []scriptStep
}

// LoadScript parses a JSON replay script and validates its actions.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("beacon: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("beacon: parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "press", "move", "release", "cancel":
		default:
			return nil, fmt.Errorf("beacon: parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "press" && st.Node == "" {
			return nil, fmt.Errorf("beacon: parse script: step %d: press without node", i)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Len returns the number of steps in the script.
func (s *Script) Len() int {
	return len(s.steps)
}

// Run replays the script: each step feeds the capture, and every event the
// capture emits is applied to the editor in emission order. beacons
// supplies live rects for move events and may be nil. Returns the number
// of events applied.
func (s *Script) Run(ed *Editor, c *Capture, beacons func() []Beacon) int {
	if beacons != nil {
		c.SetBeaconSource(beacons)
	}
	applied := 0
	for _, st := range s.steps {
		switch st.Action {
		case "press":
			c.Press(Vec2{st.X, st.Y}, NodeID(st.Node), Vec2{st.GrabX, st.GrabY})
		case "move":
			c.MoveTo(Vec2{st.X, st.Y})
		case "release":
			c.Release()
		case "cancel":
			c.Cancel()
		}
		for _, ev := range c.Drain() {
			ev.Apply(ed)
			applied++
		}
	}
	return applied
}
