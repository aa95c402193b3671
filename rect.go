package sdl3

import (
	"math"

	"github.com/gosdl/sdl3/internal/ffi"
)

// Coordinate clamping bounds. Sizes and positions are kept inside half
// the native integer range so that rectangle arithmetic (x+w, y+h)
// cannot overflow inside the native library.
const (
	maxRectSize = math.MaxInt32 / 2
	minRectPos  = math.MinInt32 / 2
	maxRectPos  = math.MaxInt32 / 2
)

func clampSize(v uint32) int32 {
	if v < 1 {
		return 1
	}
	if v > maxRectSize {
		return maxRectSize
	}
	return int32(v)
}

// clampSizeI32 clamps sizes arriving from the native side, where the
// field is a signed int and may be zero or negative.
func clampSizeI32(v int32) int32 {
	if v < 1 {
		return 1
	}
	if v > maxRectSize {
		return maxRectSize
	}
	return v
}

func clampPos(v int32) int32 {
	if v < minRectPos {
		return minRectPos
	}
	if v > maxRectPos {
		return maxRectPos
	}
	return v
}

func clampSizeF(v float32) float32 {
	if v < 1 {
		return 1
	}
	if v > math.MaxFloat32/2 {
		return math.MaxFloat32 / 2
	}
	return v
}

func clampPosF(v float32) float32 {
	if v < -math.MaxFloat32/2 {
		return -math.MaxFloat32 / 2
	}
	if v > math.MaxFloat32/2 {
		return math.MaxFloat32 / 2
	}
	return v
}

// Rect is an integer rectangle. Every constructor and setter clamps:
// width and height to [1, MaxInt32/2], position to
// [MinInt32/2, MaxInt32/2]. Sizes are taken unsigned so that a huge
// value clamps down instead of wrapping into the negative range.
// Fields are private so a Rect can never hold out-of-range values.
type Rect struct {
	x, y, w, h int32
}

// NewRect returns a rectangle with the given origin and size, clamped.
func NewRect(x, y int32, w, h uint32) Rect {
	return Rect{clampPos(x), clampPos(y), clampSize(w), clampSize(h)}
}

func (r Rect) X() int32      { return r.x }
func (r Rect) Y() int32      { return r.y }
func (r Rect) Width() int32  { return r.w }
func (r Rect) Height() int32 { return r.h }

// SetX returns a copy with the clamped x origin.
func (r Rect) SetX(x int32) Rect { r.x = clampPos(x); return r }

// SetY returns a copy with the clamped y origin.
func (r Rect) SetY(y int32) Rect { r.y = clampPos(y); return r }

// SetWidth returns a copy with the clamped width.
func (r Rect) SetWidth(w uint32) Rect { r.w = clampSize(w); return r }

// SetHeight returns a copy with the clamped height.
func (r Rect) SetHeight(h uint32) Rect { r.h = clampSize(h); return r }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.x && p.X < r.x+r.w && p.Y >= r.y && p.Y < r.y+r.h
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.x < o.x+o.w && o.x < r.x+r.w && r.y < o.y+o.h && o.y < r.y+r.h
}

// ToFloat converts to a float rectangle.
func (r Rect) ToFloat() RectF32 {
	return RectF32{float32(r.x), float32(r.y), float32(r.w), float32(r.h)}
}

func (r Rect) toFFI() ffi.Rect {
	return ffi.Rect{X: r.x, Y: r.y, W: r.w, H: r.h}
}

func rectFromFFI(r ffi.Rect) Rect {
	return Rect{clampPos(r.X), clampPos(r.Y), clampSizeI32(r.W), clampSizeI32(r.H)}
}

// RectF32 is a float rectangle with the same clamp discipline as Rect:
// width and height in [1, MaxFloat32/2], position in
// [-MaxFloat32/2, MaxFloat32/2].
type RectF32 struct {
	x, y, w, h float32
}

// NewRectF32 returns a float rectangle, clamped.
func NewRectF32(x, y, w, h float32) RectF32 {
	return RectF32{clampPosF(x), clampPosF(y), clampSizeF(w), clampSizeF(h)}
}

func (r RectF32) X() float32      { return r.x }
func (r RectF32) Y() float32      { return r.y }
func (r RectF32) Width() float32  { return r.w }
func (r RectF32) Height() float32 { return r.h }

// SetX returns a copy with the clamped x origin.
func (r RectF32) SetX(x float32) RectF32 { r.x = clampPosF(x); return r }

// SetY returns a copy with the clamped y origin.
func (r RectF32) SetY(y float32) RectF32 { r.y = clampPosF(y); return r }

// SetWidth returns a copy with the clamped width.
func (r RectF32) SetWidth(w float32) RectF32 { r.w = clampSizeF(w); return r }

// SetHeight returns a copy with the clamped height.
func (r RectF32) SetHeight(h float32) RectF32 { r.h = clampSizeF(h); return r }

func (r RectF32) toFFI() ffi.FRect {
	return ffi.FRect{X: r.x, Y: r.y, W: r.w, H: r.h}
}

// Point is an integer point. Points carry no size, so no clamping is
// needed.
type Point struct {
	X, Y int32
}

func (p Point) toFFI() ffi.Point { return ffi.Point{X: p.X, Y: p.Y} }

// PointF32 is a float point.
type PointF32 struct {
	X, Y float32
}

func (p PointF32) toFFI() ffi.FPoint { return ffi.FPoint{X: p.X, Y: p.Y} }

// optRect converts an optional rectangle for a native call; nil maps
// to the native "whole area" NULL.
func optRect(r *Rect) *ffi.Rect {
	if r == nil {
		return nil
	}
	f := r.toFFI()
	return &f
}

func optFRect(r *RectF32) *ffi.FRect {
	if r == nil {
		return nil
	}
	f := r.toFFI()
	return &f
}
