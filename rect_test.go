package sdl3

import (
	"math"
	"testing"
)

func TestNewRectClampsSize(t *testing.T) {
	tests := []struct {
		name string
		w, h uint32
		want [2]int32
	}{
		{"zero size", 0, 0, [2]int32{1, 1}},
		{"plain", 800, 600, [2]int32{800, 600}},
		{"max int", math.MaxInt32, math.MaxInt32, [2]int32{math.MaxInt32 / 2, math.MaxInt32 / 2}},
		{"max uint", math.MaxUint32, math.MaxUint32, [2]int32{math.MaxInt32 / 2, math.MaxInt32 / 2}},
		{"just above limit", math.MaxInt32/2 + 1, 10, [2]int32{math.MaxInt32 / 2, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(0, 0, tt.w, tt.h)
			if r.Width() != tt.want[0] || r.Height() != tt.want[1] {
				t.Errorf("size = (%d, %d), want (%d, %d)", r.Width(), r.Height(), tt.want[0], tt.want[1])
			}
		})
	}
}

func TestNewRectClampsPosition(t *testing.T) {
	tests := []struct {
		name string
		x, y int32
		want [2]int32
	}{
		{"origin", 0, 0, [2]int32{0, 0}},
		{"negative ok", -100, -200, [2]int32{-100, -200}},
		{"min int", math.MinInt32, math.MinInt32, [2]int32{math.MinInt32 / 2, math.MinInt32 / 2}},
		{"max int", math.MaxInt32, math.MaxInt32, [2]int32{math.MaxInt32 / 2, math.MaxInt32 / 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(tt.x, tt.y, 1, 1)
			if r.X() != tt.want[0] || r.Y() != tt.want[1] {
				t.Errorf("pos = (%d, %d), want (%d, %d)", r.X(), r.Y(), tt.want[0], tt.want[1])
			}
		})
	}
}

// The clamp bounds exist so that corner arithmetic cannot overflow.
func TestRectBoundsDoNotOverflow(t *testing.T) {
	r := NewRect(math.MaxInt32, math.MaxInt32, math.MaxUint32, math.MaxUint32)
	right := int64(r.X()) + int64(r.Width())
	bottom := int64(r.Y()) + int64(r.Height())
	if right > math.MaxInt32 || bottom > math.MaxInt32 {
		t.Fatalf("corner (%d, %d) exceeds int32", right, bottom)
	}

	r = NewRect(math.MinInt32, math.MinInt32, 1, 1)
	if int64(r.X()) < math.MinInt32/2 || int64(r.Y()) < math.MinInt32/2 {
		t.Fatalf("origin (%d, %d) below clamp floor", r.X(), r.Y())
	}
}

func TestRectSettersClamp(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	r = r.SetWidth(0)
	if r.Width() != 1 {
		t.Errorf("SetWidth(0): width = %d, want 1", r.Width())
	}
	r = r.SetX(math.MaxInt32)
	if r.X() != math.MaxInt32/2 {
		t.Errorf("SetX(MaxInt32): x = %d, want %d", r.X(), math.MaxInt32/2)
	}
}

func TestRectF32Clamps(t *testing.T) {
	r := NewRectF32(0, 0, 0, -3)
	if r.Width() != 1 || r.Height() != 1 {
		t.Errorf("size = (%g, %g), want (1, 1)", r.Width(), r.Height())
	}
	r = NewRectF32(math.MaxFloat32, -math.MaxFloat32, math.MaxFloat32, 5)
	if r.X() != math.MaxFloat32/2 || r.Y() != -math.MaxFloat32/2 {
		t.Errorf("pos = (%g, %g), want clamped to half range", r.X(), r.Y())
	}
	if r.Width() != math.MaxFloat32/2 {
		t.Errorf("width = %g, want %g", r.Width(), float32(math.MaxFloat32/2))
	}
}

func TestRectContainsAndIntersects(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	if !r.Contains(Point{X: 10, Y: 10}) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(Point{X: 30, Y: 30}) {
		t.Error("bottom-right corner is exclusive")
	}
	if !r.Intersects(NewRect(25, 25, 10, 10)) {
		t.Error("overlapping rects should intersect")
	}
	if r.Intersects(NewRect(30, 10, 5, 5)) {
		t.Error("edge-adjacent rects should not intersect")
	}
}
