package beacon

import "testing"

// beaconAt builds a small beacon centered at (x, y).
func beaconAt(kind SlotKind, ref NodeID, x, y float64) Beacon {
	return Beacon{Slot: Slot{kind, ref}, Rect: Rect{x - 5, y - 5, 10, 10}}
}

func TestMoveWhileIdleIsInert(t *testing.T) {
	e := NewEditor(NewOutline(tn("A"), tn("B")))
	e.Move(Vec2{50, 50}, []Beacon{beaconAt(SlotBefore, "A", 50, 50)})

	if s := shape(e.Outline()); s != "A B" {
		t.Errorf("idle move changed outline to %q", s)
	}
	if _, ok := e.Dragging(); ok {
		t.Error("idle move set a dragged node")
	}
}

func TestStartThenStop(t *testing.T) {
	e := NewEditor(NewOutline(tn("A"), tn("B")))
	e.Start("B", Vec2{10, 10}, Vec2{2, 3})

	if id, ok := e.Dragging(); !ok || id != "B" {
		t.Fatalf("Dragging() = %q, %v, want B, true", id, ok)
	}

	e.Stop()
	if _, ok := e.Dragging(); ok {
		t.Error("Stop left a dragged node")
	}
	if _, ok := e.FloatingAt(); ok {
		t.Error("FloatingAt reports a position while idle")
	}
	if s := shape(e.Outline()); s != "A B" {
		t.Errorf("Stop changed outline to %q", s)
	}
}

func TestStopWhileIdle(t *testing.T) {
	e := NewEditor(NewOutline(tn("A")))
	e.Stop() // must not panic or mutate
	if s := shape(e.Outline()); s != "A" {
		t.Errorf("outline = %q, want %q", s, "A")
	}
}

func TestStartSupersedesActiveDrag(t *testing.T) {
	e := NewEditor(NewOutline(tn("A"), tn("B")))
	e.Start("A", Vec2{0, 0}, Vec2{0, 0})
	e.Start("B", Vec2{5, 5}, Vec2{1, 1})

	if id, _ := e.Dragging(); id != "B" {
		t.Errorf("Dragging() = %q, want B (second start replaces the first)", id)
	}
}

func TestMoveRelocatesToClosestBeacon(t *testing.T) {
	e := NewEditor(NewOutline(tn("A"), tn("B"), tn("C")))
	e.Start("C", Vec2{0, 100}, Vec2{0, 0})

	beacons := []Beacon{
		beaconAt(SlotBefore, "A", 0, 0),
		beaconAt(SlotAfter, "B", 0, 60),
	}
	e.Move(Vec2{0, 10}, beacons)

	if s := shape(e.Outline()); s != "C A B" {
		t.Errorf("outline = %q, want %q", s, "C A B")
	}
}

func TestMoveSubtractsGrabOffset(t *testing.T) {
	// Raw cursor sits nearest the After(B) beacon, but the grab-adjusted
	// anchor point (cursor - grab) sits nearest Before(A). The adjusted
	// point must decide.
	e := NewEditor(NewOutline(tn("A"), tn("B"), tn("C")))
	e.Start("C", Vec2{0, 0}, Vec2{0, 55})

	beacons := []Beacon{
		beaconAt(SlotBefore, "A", 0, 0),
		beaconAt(SlotAfter, "B", 0, 60),
	}
	e.Move(Vec2{0, 58}, beacons)

	if s := shape(e.Outline()); s != "C A B" {
		t.Errorf("outline = %q, want %q (grab offset ignored?)", s, "C A B")
	}
}

func TestMoveWithNoBeacons(t *testing.T) {
	e := NewEditor(NewOutline(tn("A"), tn("B")))
	e.Start("B", Vec2{0, 0}, Vec2{1, 2})
	e.Move(Vec2{40, 40}, nil)

	if s := shape(e.Outline()); s != "A B" {
		t.Errorf("outline = %q, want unchanged %q", s, "A B")
	}
	// The cursor still advances for rendering.
	pos, ok := e.FloatingAt()
	if !ok {
		t.Fatal("FloatingAt() not ok while dragging")
	}
	if pos != (Vec2{39, 38}) {
		t.Errorf("FloatingAt() = %v, want {39 38}", pos)
	}
}

func TestFloatingAt(t *testing.T) {
	e := NewEditor(NewOutline(tn("A")))
	e.Start("A", Vec2{100, 200}, Vec2{8, 12})

	pos, ok := e.FloatingAt()
	if !ok {
		t.Fatal("FloatingAt() not ok while dragging")
	}
	if pos != (Vec2{92, 188}) {
		t.Errorf("FloatingAt() = %v, want {92 188}", pos)
	}
}

func TestDragSequence(t *testing.T) {
	// A full drag: pick up C, drop it inside B, then release. Stop must
	// leave the outline exactly as the last move shaped it.
	e := NewEditor(NewOutline(tn("A", tn("B"), tn("C"))))
	e.Start("C", Vec2{50, 80}, Vec2{4, 4})

	e.Move(Vec2{60, 40}, []Beacon{
		beaconAt(SlotBefore, "B", 40, 20),
		beaconAt(SlotAppendIn, "B", 60, 40),
	})
	if s := shape(e.Outline()); s != "A[B[C]]" {
		t.Fatalf("outline after move = %q, want %q", s, "A[B[C]]")
	}

	e.Stop()
	if s := shape(e.Outline()); s != "A[B[C]]" {
		t.Errorf("outline after stop = %q, want %q", s, "A[B[C]]")
	}
	if _, ok := e.Dragging(); ok {
		t.Error("still dragging after stop")
	}
}
