// Package beacon implements drag-and-drop interactions without the usual
// "draggable" and "dropzone" abstractions.
//
// Instead of attaching behavior to drop targets, the view scatters passive
// beacons: each beacon pairs a candidate drop position (before, after,
// prepended-in, or appended-in an anchor node) with its current on-screen
// rectangle. On every pointer move the editor simply picks the beacon whose
// center is closest to the dragged element and relocates the dragged node
// there. Beacons carry no behavior and are regenerated every frame, so the
// interaction stays correct while the tree reshapes itself mid-drag.
//
// # Quick start
//
// Build an outline, wrap it in an editor, and feed it pointer events
// through a capture:
//
//	outline := beacon.NewOutline(
//		beacon.NewNode("fruit").Add(
//			beacon.NewNode("apples"),
//			beacon.NewNode("oranges"),
//		),
//		beacon.NewNode("vegetables"),
//	)
//	editor := beacon.NewEditor(outline)
//
//	capture := beacon.NewCapture()
//	capture.SetBeaconSource(view.Beacons) // live rects, regenerated per frame
//
//	// per pointer sample:
//	capture.Press(cursor, nodeID, grab)
//	capture.MoveTo(cursor)
//	capture.Release()
//	for _, ev := range capture.Drain() {
//		ev.Apply(editor)
//	}
//
// The capture applies a minimum-drag-distance threshold, so a plain click
// never disturbs the tree. [Editor.Dragging] and [Editor.FloatingAt] give
// the view what it needs to dim the dragged row and float it at the cursor.
//
// # Tree relocation
//
// [Outline.Relocate] backs every move event. It is total: relocating a node
// relative to itself, to a missing anchor, or into its own subtree are all
// defined no-ops that leave the outline unchanged, and the outline's node
// count is preserved unconditionally.
//
// # Wire protocol
//
// [DecodeEvent] and [EncodeEvent] carry the event stream across a process
// boundary as JSON. Decoding fails explicitly on malformed payloads; see
// [ErrUnknownKind], [ErrUnknownPosition], and [ErrMissingField].
//
// The examples directory holds three runnable demos: the outline
// re-arranger, a time-slot slider, and a polygon vertex editor.
package beacon
