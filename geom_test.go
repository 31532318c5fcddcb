package beacon

import (
	"math"
	"testing"
)

// --- Rect.Center ---

func TestRectCenter(t *testing.T) {
	tests := []struct {
		name   string
		rect   Rect
		expect Vec2
	}{
		{"origin square", Rect{0, 0, 10, 10}, Vec2{5, 5}},
		{"offset rect", Rect{10, 20, 100, 50}, Vec2{60, 45}},
		{"zero size", Rect{4, 7, 0, 0}, Vec2{4, 7}},
		{"negative origin", Rect{-10, -10, 20, 20}, Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rect.Center()
			if got != tt.expect {
				t.Errorf("Rect%v.Center() = %v, want %v", tt.rect, got, tt.expect)
			}
		})
	}
}

// --- Distance ---

func TestDistance(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Vec2
		expect float64
	}{
		{"same point", Vec2{3, 4}, Vec2{3, 4}, 0},
		{"3-4-5 triangle", Vec2{0, 0}, Vec2{3, 4}, 5},
		{"symmetric", Vec2{3, 4}, Vec2{0, 0}, 5},
		{"horizontal", Vec2{-2, 1}, Vec2{6, 1}, 8},
		{"vertical", Vec2{5, -3}, Vec2{5, 7}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expect)
			}
		})
	}
}

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside below", 50, 71, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- ClosestIndex ---

func TestClosestIndex(t *testing.T) {
	tests := []struct {
		name   string
		cursor Vec2
		rects  []Rect
		expect int
	}{
		{"empty", Vec2{0, 0}, nil, -1},
		{"single", Vec2{100, 100}, []Rect{{0, 0, 10, 10}}, 0},
		{
			"nearest wins",
			Vec2{0, 0},
			[]Rect{{100, 100, 10, 10}, {5, 5, 10, 10}, {50, 50, 10, 10}},
			1,
		},
		{
			"tie resolves to earlier",
			Vec2{50, 0},
			[]Rect{{0, 0, 20, 20}, {80, 0, 20, 20}}, // centers at x=10 and x=90, both 40 away
			0,
		},
		{
			"zero-size rects",
			Vec2{1, 1},
			[]Rect{{10, 10, 0, 0}, {2, 2, 0, 0}},
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClosestIndex(tt.cursor, tt.rects)
			if got != tt.expect {
				t.Errorf("ClosestIndex(%v, %v) = %d, want %d", tt.cursor, tt.rects, got, tt.expect)
			}
		})
	}
}

// --- Closest over beacons ---

func TestClosest(t *testing.T) {
	beacons := []Beacon{
		{Slot: Slot{SlotBefore, "a"}, Rect: Rect{0, 0, 10, 10}},
		{Slot: Slot{SlotAfter, "a"}, Rect: Rect{0, 100, 10, 10}},
		{Slot: Slot{SlotAppendIn, "b"}, Rect: Rect{100, 0, 10, 10}},
	}

	slot, ok := Closest(Vec2{0, 90}, beacons)
	if !ok {
		t.Fatal("Closest returned ok = false with beacons present")
	}
	if slot != (Slot{SlotAfter, "a"}) {
		t.Errorf("Closest slot = %+v, want After(a)", slot)
	}

	if _, ok := Closest(Vec2{0, 0}, nil); ok {
		t.Error("Closest with no beacons returned ok = true")
	}
}

func TestClosestTieBreak(t *testing.T) {
	// Both beacons are exactly 50 away from the cursor; the one appearing
	// earlier in the input must win.
	beacons := []Beacon{
		{Slot: Slot{SlotBefore, "first"}, Rect: Rect{-55, -5, 10, 10}},
		{Slot: Slot{SlotBefore, "second"}, Rect: Rect{45, -5, 10, 10}},
	}
	slot, ok := Closest(Vec2{0, 0}, beacons)
	if !ok {
		t.Fatal("Closest returned ok = false")
	}
	if slot.Ref != "first" {
		t.Errorf("tie broke to %q, want %q", slot.Ref, "first")
	}
}
