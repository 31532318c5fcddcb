package beacon

// dragState exists only while a drag is in progress. Keeping the payload
// behind the state pointer means a grab offset cannot exist while idle.
type dragState struct {
	node   NodeID
	cursor Vec2 // raw cursor on screen, updated every move
	grab   Vec2 // pointer offset within the dragged element at press time
}

// Editor owns an outline and tracks the drag in progress. It is a
// synchronous reducer: each Start, Move, or Stop call runs to completion
// before the view renders, and no drag state exists outside the editor
// value. Not safe for concurrent use; events must arrive in the order the
// pointer produced them.
type Editor struct {
	outline *Outline
	drag    *dragState
}

// NewEditor creates an editor over the given outline. The editor takes
// ownership of the outline's structure.
func NewEditor(outline *Outline) *Editor {
	return &Editor{outline: outline}
}

// Outline returns the outline under edit.
func (e *Editor) Outline() *Outline {
	return e.outline
}

// Start begins dragging the node with the given ID. grab is the pointer's
// offset within the node's visual bounds at press time. A Start during an
// active drag replaces it, so a missed Stop cannot wedge the editor.
func (e *Editor) Start(id NodeID, cursor, grab Vec2) {
	e.drag = &dragState{node: id, cursor: cursor, grab: grab}
}

// Move advances the drag to cursor and relocates the dragged node to the
// nearest beacon. The grab offset is subtracted first so the decision point
// is the dragged element's top-left corner rather than the pointer itself.
// With no beacons the outline is left alone; the cursor is always recorded
// so the floating element tracks the pointer. Move is a no-op while idle.
func (e *Editor) Move(cursor Vec2, beacons []Beacon) {
	if e.drag == nil {
		return
	}
	if slot, ok := Closest(cursor.Sub(e.drag.grab), beacons); ok {
		e.outline.Relocate(e.drag.node, slot)
	}
	e.drag.cursor = cursor
}

// Stop ends the drag. The outline already has its final shape from the last
// move, so no mutation happens here. Safe to call while idle.
func (e *Editor) Stop() {
	e.drag = nil
}

// Dragging returns the ID of the node being dragged. ok is false while
// idle. Views use this to render the dragged subtree at reduced opacity.
func (e *Editor) Dragging() (NodeID, bool) {
	if e.drag == nil {
		return "", false
	}
	return e.drag.node, true
}

// FloatingAt returns the screen position of the floating dragged element:
// the raw cursor minus the grab offset. ok is false while idle.
func (e *Editor) FloatingAt() (Vec2, bool) {
	if e.drag == nil {
		return Vec2{}, false
	}
	return e.drag.cursor.Sub(e.drag.grab), true
}
