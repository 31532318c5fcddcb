package beacon

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Wire contract errors. A decode failure is a contract violation by the
// capture collaborator; it is reported to the caller and never silently
// defaulted. The failure is local to the offending event — the editor
// simply does not advance for it.
var (
	ErrUnknownKind     = errors.New("beacon: unknown event kind")
	ErrUnknownPosition = errors.New("beacon: unknown beacon position")
	ErrMissingField    = errors.New("beacon: missing required field")
)

// EventKind identifies a step in the drag event stream.
type EventKind uint8

const (
	EventStart EventKind = iota // pointer committed to dragging a node
	EventMove                   // pointer moved, with live beacon rects
	EventStop                   // pointer released
)

// String returns the wire name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventMove:
		return "move"
	case EventStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Event is one step of a drag as streamed from the capture collaborator.
// Node and Grab are meaningful for EventStart; Beacons for EventMove. A
// stop event carries nothing beyond its kind.
type Event struct {
	Kind    EventKind
	Cursor  Vec2
	Node    NodeID // dragged node (start only)
	Grab    Vec2   // pointer offset within the dragged element (start only)
	Beacons []Beacon
}

// Apply dispatches the event to the editor transition matching its kind.
func (ev Event) Apply(e *Editor) {
	switch ev.Kind {
	case EventStart:
		e.Start(ev.Node, ev.Cursor, ev.Grab)
	case EventMove:
		e.Move(ev.Cursor, ev.Beacons)
	case EventStop:
		e.Stop()
	}
}

// ParseSlotKind converts a wire position string to a SlotKind.
func ParseSlotKind(s string) (SlotKind, error) {
	switch s {
	case "before":
		return SlotBefore, nil
	case "after":
		return SlotAfter, nil
	case "prepended-in":
		return SlotPrependIn, nil
	case "appended-in":
		return SlotAppendIn, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPosition, s)
	}
}

// --- Wire format ---

type wireVec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type wireRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type wirePosition struct {
	Position string `json:"position"`
	Text     string `json:"text"`
}

type wireBeacon struct {
	Position *wirePosition `json:"position"`
	Rect     *wireRect     `json:"rect"`
}

type wireEvent struct {
	Kind    string       `json:"kind"`
	Cursor  *wireVec     `json:"cursor,omitempty"`
	Node    string       `json:"node,omitempty"`
	Grab    *wireVec     `json:"cursorOnDraggable,omitempty"`
	Beacons []wireBeacon `json:"beacons,omitempty"`
}

// DecodeEvent parses one wire event. It fails explicitly on a malformed
// payload — an unrecognized kind or position string, or a missing required
// field — so contract violations surface instead of corrupting the drag.
// Lookup misses (an anchor that no longer exists) are not decode errors;
// they resolve to no-ops later, inside the tree operations.
func DecodeEvent(data []byte) (Event, error) {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return Event{}, fmt.Errorf("beacon: decode event: %w", err)
	}

	var ev Event
	switch w.Kind {
	case "":
		return Event{}, fmt.Errorf("%w: kind", ErrMissingField)
	case "start":
		ev.Kind = EventStart
	case "move":
		ev.Kind = EventMove
	case "stop":
		ev.Kind = EventStop
	default:
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownKind, w.Kind)
	}

	if ev.Kind != EventStop {
		if w.Cursor == nil {
			return Event{}, fmt.Errorf("%w: cursor", ErrMissingField)
		}
		ev.Cursor = Vec2{w.Cursor.X, w.Cursor.Y}
	}
	if ev.Kind == EventStart {
		if w.Node == "" {
			return Event{}, fmt.Errorf("%w: node", ErrMissingField)
		}
		ev.Node = NodeID(w.Node)
		if w.Grab != nil {
			ev.Grab = Vec2{w.Grab.X, w.Grab.Y}
		}
	}

	for i, wb := range w.Beacons {
		if wb.Position == nil {
			return Event{}, fmt.Errorf("%w: beacons[%d].position", ErrMissingField, i)
		}
		if wb.Position.Text == "" {
			return Event{}, fmt.Errorf("%w: beacons[%d].position.text", ErrMissingField, i)
		}
		if wb.Rect == nil {
			return Event{}, fmt.Errorf("%w: beacons[%d].rect", ErrMissingField, i)
		}
		kind, err := ParseSlotKind(wb.Position.Position)
		if err != nil {
			return Event{}, fmt.Errorf("beacons[%d]: %w", i, err)
		}
		ev.Beacons = append(ev.Beacons, Beacon{
			Slot: Slot{Kind: kind, Ref: NodeID(wb.Position.Text)},
			Rect: Rect{wb.Rect.X, wb.Rect.Y, wb.Rect.Width, wb.Rect.Height},
		})
	}
	return ev, nil
}

// EncodeEvent renders ev in the wire format understood by DecodeEvent.
func EncodeEvent(ev Event) ([]byte, error) {
	w := wireEvent{Kind: ev.Kind.String()}
	if w.Kind == "unknown" {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, ev.Kind)
	}
	if ev.Kind != EventStop {
		w.Cursor = &wireVec{ev.Cursor.X, ev.Cursor.Y}
	}
	if ev.Kind == EventStart {
		w.Node = string(ev.Node)
		w.Grab = &wireVec{ev.Grab.X, ev.Grab.Y}
	}
	for _, b := range ev.Beacons {
		w.Beacons = append(w.Beacons, wireBeacon{
			Position: &wirePosition{Position: b.Slot.Kind.String(), Text: string(b.Slot.Ref)},
			Rect:     &wireRect{b.Rect.X, b.Rect.Y, b.Rect.Width, b.Rect.Height},
		})
	}
	return json.Marshal(w)
}

// --- Outline wire format ---

type wireNode struct {
	ID       string     `json:"id"`
	Text     string     `json:"text"`
	Children []wireNode `json:"children,omitempty"`
}

// MarshalJSON renders the outline as an array of {id, text, children}
// objects in display order.
func (o *Outline) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireForest(o.roots))
}

func wireForest(nodes []*Node) []wireNode {
	out := make([]wireNode, len(nodes))
	for i, n := range nodes {
		out[i] = wireNode{ID: string(n.ID), Text: n.Text, Children: wireForest(n.children)}
	}
	return out
}

// UnmarshalJSON parses an outline from the format MarshalJSON produces.
// Every node must carry an ID, and IDs must be unique across the forest;
// both are decode errors.
func (o *Outline) UnmarshalJSON(data []byte) error {
	var forest []wireNode
	if err := json.Unmarshal(data, &forest); err != nil {
		return fmt.Errorf("beacon: decode outline: %w", err)
	}
	seen := make(map[NodeID]bool)
	roots, err := buildForest(forest, nil, seen)
	if err != nil {
		return err
	}
	o.roots = roots
	return nil
}

func buildForest(wire []wireNode, parent *Node, seen map[NodeID]bool) ([]*Node, error) {
	if len(wire) == 0 {
		return nil, nil
	}
	nodes := make([]*Node, len(wire))
	for i, wn := range wire {
		if wn.ID == "" {
			return nil, fmt.Errorf("%w: node id", ErrMissingField)
		}
		id := NodeID(wn.ID)
		if seen[id] {
			return nil, fmt.Errorf("beacon: decode outline: duplicate node id %q", wn.ID)
		}
		seen[id] = true
		n := &Node{ID: id, Text: wn.Text, parent: parent}
		children, err := buildForest(wn.Children, n, seen)
		if err != nil {
			return nil, err
		}
		n.children = children
		nodes[i] = n
	}
	return nodes, nil
}
