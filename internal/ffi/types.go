package ffi

import "unsafe"

// C-layout mirrors of the SDL3 structs that cross the ABI boundary.
// Field order and widths must match the native headers exactly; these
// structs are passed by pointer and SDL writes into them directly.

// Rect mirrors SDL_Rect.
type Rect struct {
	X, Y int32
	W, H int32
}

// FRect mirrors SDL_FRect.
type FRect struct {
	X, Y float32
	W, H float32
}

// Point mirrors SDL_Point.
type Point struct {
	X, Y int32
}

// FPoint mirrors SDL_FPoint.
type FPoint struct {
	X, Y float32
}

// Color mirrors SDL_Color.
type Color struct {
	R, G, B, A uint8
}

// FColor mirrors SDL_FColor.
type FColor struct {
	R, G, B, A float32
}

// DisplayMode mirrors SDL_DisplayMode. Internal is an SDL-private
// pointer and must never be dereferenced.
type DisplayMode struct {
	DisplayID              uint32
	Format                 uint32
	W, H                   int32
	PixelDensity           float32
	RefreshRate            float32
	RefreshRateNumerator   int32
	RefreshRateDenominator int32
	Internal               uintptr
}

// CameraSpec mirrors SDL_CameraSpec.
type CameraSpec struct {
	Format               uint32
	Colorspace           uint32
	Width, Height        int32
	FramerateNumerator   int32
	FramerateDenominator int32
}

// Palette mirrors SDL_Palette. Colors points at native memory owned by
// the palette.
type Palette struct {
	NColors  int32
	Colors   uintptr
	Version  uint32
	RefCount int32
}

// PixelFormatDetails mirrors SDL_PixelFormatDetails.
type PixelFormatDetails struct {
	Format        uint32
	BitsPerPixel  uint8
	BytesPerPixel uint8
	Padding       [2]uint8
	RMask         uint32
	GMask         uint32
	BMask         uint32
	AMask         uint32
	RBits         uint8
	GBits         uint8
	BBits         uint8
	ABits         uint8
	RShift        uint8
	GShift        uint8
	BShift        uint8
	AShift        uint8
}

// Surface mirrors the public prefix of SDL_Surface. SDL guarantees the
// layout of these leading fields; anything beyond Pitch is private.
type Surface struct {
	Flags    uint32
	Format   uint32
	W, H     int32
	Pitch    int32
	Pixels   uintptr
	RefCount int32
	Reserved uintptr
}

// EventSize is the size of the SDL_Event union in bytes.
const EventSize = 128

// Event mirrors the SDL_Event union as an opaque byte block. Typed
// views are taken over the leading fields as needed.
type Event [EventSize]byte

// Type returns the event's type tag (the union's first field).
func (e *Event) Type() uint32 {
	return *(*uint32)(unsafe.Pointer(e))
}

// SetType writes the event's type tag.
func (e *Event) SetType(t uint32) {
	*(*uint32)(unsafe.Pointer(e)) = t
}

// keyboardEvent mirrors the layout of SDL_KeyboardEvent.
type keyboardEvent struct {
	Type      uint32
	Reserved  uint32
	Timestamp uint64
	WindowID  uint32
	Which     uint32
	Scancode  uint32
	Key       uint32
	Mod       uint16
	Raw       uint16
	Down      bool
	Repeat    bool
}

// Keyboard reinterprets the event as a keyboard event. Only valid when
// Type reports a key event.
func (e *Event) Keyboard() (windowID, scancode uint32, down, repeat bool) {
	k := (*keyboardEvent)(unsafe.Pointer(e))
	return k.WindowID, k.Scancode, k.Down, k.Repeat
}

// SetKeyboard writes the keyboard fields of the event. The type tag is
// set separately with SetType.
func (e *Event) SetKeyboard(windowID, scancode uint32, down, repeat bool) {
	k := (*keyboardEvent)(unsafe.Pointer(e))
	k.WindowID = windowID
	k.Scancode = scancode
	k.Down = down
	k.Repeat = repeat
}

// cameraDeviceEvent mirrors the layout of SDL_CameraDeviceEvent.
type cameraDeviceEvent struct {
	Type      uint32
	Reserved  uint32
	Timestamp uint64
	Which     uint32
}

// CameraDevice reinterprets the event as a camera device event and
// returns the camera instance ID.
func (e *Event) CameraDevice() uint32 {
	return (*cameraDeviceEvent)(unsafe.Pointer(e)).Which
}

// windowEvent mirrors the layout of SDL_WindowEvent.
type windowEvent struct {
	Type      uint32
	Reserved  uint32
	Timestamp uint64
	WindowID  uint32
	Data1     int32
	Data2     int32
}

// Window reinterprets the event as a window event.
func (e *Event) Window() (windowID uint32, data1, data2 int32) {
	w := (*windowEvent)(unsafe.Pointer(e))
	return w.WindowID, w.Data1, w.Data2
}

// GoString copies a NUL-terminated C string at ptr into a Go string.
// Returns "" for a nil pointer.
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	p := unsafe.Pointer(ptr)
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// CString returns a NUL-terminated byte buffer holding s, suitable for
// passing to native calls that take a C string. The buffer must be
// kept alive for the duration of the call.
func CString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// BytesPtr returns the address of the first byte of b, or 0 if b is
// empty.
func BytesPtr(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}
