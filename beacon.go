package beacon

import "math"

// SlotKind identifies where a dropped node lands relative to its anchor.
type SlotKind uint8

const (
	SlotBefore    SlotKind = iota // sibling immediately before the anchor
	SlotAfter                     // sibling immediately after the anchor
	SlotPrependIn                 // new first child of the anchor
	SlotAppendIn                  // new last child of the anchor
)

// String returns the wire name of the slot kind.
func (k SlotKind) String() string {
	switch k {
	case SlotBefore:
		return "before"
	case SlotAfter:
		return "after"
	case SlotPrependIn:
		return "prepended-in"
	case SlotAppendIn:
		return "appended-in"
	default:
		return "unknown"
	}
}

// Slot is a candidate drop position: a placement relative to an existing
// anchor node. Anchor-relative addressing stays valid while the tree is
// edited mid-drag, which an absolute index would not.
type Slot struct {
	Kind SlotKind
	Ref  NodeID // the anchor node
}

// Beacon pairs a candidate drop position with its current on-screen
// rectangle. Beacons are passive markers with no behavior of their own, and
// they are ephemeral: the view regenerates them on every frame that follows
// a tree mutation.
type Beacon struct {
	Slot Slot
	Rect Rect
}

// Closest returns the slot of the beacon whose rectangle center is nearest
// to cursor. ok is false when beacons is empty. Among equidistant beacons
// the earliest in the slice wins.
func Closest(cursor Vec2, beacons []Beacon) (Slot, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i := range beacons {
		if d := Distance(cursor, beacons[i].Rect.Center()); d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return Slot{}, false
	}
	return beacons[best].Slot, true
}
