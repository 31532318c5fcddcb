package beacon

// DefaultThreshold is the minimum pointer travel, in pixels, before a press
// commits to a drag. Below it a release is a click, not a drag.
const DefaultThreshold = 10.0

// Capture turns raw pointer samples into the start/move/stop event stream
// the editor consumes. It applies the minimum-drag-distance threshold: a
// press emits nothing until the pointer has traveled the threshold distance
// from its press point, so plain clicks never disturb the tree.
//
// Feed it with Press, MoveTo, and Release in pointer order, then Drain the
// queued events once per frame and apply them in order.
type Capture struct {
	threshold float64
	beacons   func() []Beacon

	down     bool
	dragging bool
	pressAt  Vec2
	node     NodeID
	grab     Vec2
	queue    []Event
}

// NewCapture creates a capture with the default drag threshold.
func NewCapture() *Capture {
	return &Capture{threshold: DefaultThreshold}
}

// SetThreshold overrides the minimum drag distance in pixels.
func (c *Capture) SetThreshold(px float64) {
	c.threshold = px
}

// SetBeaconSource registers the callback that supplies live beacon
// rectangles. It is invoked once per emitted move event, so the rects
// always reflect the layout that followed the previous mutation.
func (c *Capture) SetBeaconSource(fn func() []Beacon) {
	c.beacons = fn
}

// Press records a pointer press on a node's visual representation. grab is
// the pointer's offset within that element's bounds at press time. No event
// is emitted yet: the press only arms the threshold check.
func (c *Capture) Press(cursor Vec2, node NodeID, grab Vec2) {
	c.down = true
	c.dragging = false
	c.pressAt = cursor
	c.node = node
	c.grab = grab
}

// MoveTo advances the pointer. The sample that first exceeds the threshold
// emits the start event and a move for the same position; every later
// sample emits a move carrying live beacons. Samples before a press, or
// within the threshold, emit nothing.
func (c *Capture) MoveTo(cursor Vec2) {
	if !c.down {
		return
	}
	if !c.dragging {
		if Distance(cursor, c.pressAt) <= c.threshold {
			return
		}
		c.dragging = true
		c.queue = append(c.queue, Event{Kind: EventStart, Cursor: cursor, Node: c.node, Grab: c.grab})
	}
	c.queue = append(c.queue, Event{Kind: EventMove, Cursor: cursor, Beacons: c.liveBeacons()})
}

// Release ends the interaction. A stop event is emitted only if the press
// had committed to a drag; a below-threshold press-release is a click and
// emits nothing.
func (c *Capture) Release() {
	if c.down && c.dragging {
		c.queue = append(c.queue, Event{Kind: EventStop})
	}
	c.down = false
	c.dragging = false
}

// Cancel force-ends the interaction, emitting a stop if a drag was in
// progress. Call it when pointer capture is lost so the editor cannot park
// in the dragging state.
func (c *Capture) Cancel() {
	c.Release()
}

// Dragging reports whether the current press has committed to a drag.
func (c *Capture) Dragging() bool {
	return c.dragging
}

// Drain returns the queued events in emission order and empties the queue.
func (c *Capture) Drain() []Event {
	evs := c.queue
	c.queue = nil
	return evs
}

func (c *Capture) liveBeacons() []Beacon {
	if c.beacons == nil {
		return nil
	}
	return c.beacons()
}
