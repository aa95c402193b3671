package sdl3

import (
	"errors"
	"fmt"

	"github.com/gosdl/sdl3/internal/ffi"
)

// Sentinel errors for contract violations detected on the Go side,
// before any native call is made.
var (
	// ErrAlreadyInitialized is returned by Init while another SDL
	// handle is still live in this process.
	ErrAlreadyInitialized = errors.New("sdl3: already initialized")

	// ErrClosed is returned when a handle is used after Close or
	// Destroy.
	ErrClosed = errors.New("sdl3: handle closed")

	// ErrRendererDestroyed is returned by texture operations after the
	// owning renderer has been destroyed.
	ErrRendererDestroyed = errors.New("sdl3: renderer destroyed")

	// ErrTextureRendererMismatch is returned when a texture is handed
	// to a renderer other than the one that created it.
	ErrTextureRendererMismatch = errors.New("sdl3: texture belongs to a different renderer")

	// ErrEventPumpInUse is returned by Pump while another EventPump is
	// still open.
	ErrEventPumpInUse = errors.New("sdl3: event pump already in use")

	// ErrZeroFramerateDenominator rejects a camera spec whose framerate
	// denominator is zero.
	ErrZeroFramerateDenominator = errors.New("sdl3: camera framerate denominator is zero")
)

// NativeError carries the native library's last-error message for a
// failed call.
type NativeError struct {
	// Op is the wrapper operation that failed, e.g. "CreateWindow".
	Op string
	// Message is the native error string. May be empty when the
	// library reported failure without setting one.
	Message string
}

func (e *NativeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sdl3: %s failed", e.Op)
	}
	return fmt.Sprintf("sdl3: %s: %s", e.Op, e.Message)
}

// UnknownEnumError reports a native value outside the known range of
// an enum type.
type UnknownEnumError struct {
	Kind  string
	Value uint64
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("sdl3: unknown %s value %d", e.Kind, e.Value)
}

// lastError builds a NativeError for op from the native error slot.
func lastError(api *ffi.API, op string) error {
	return &NativeError{Op: op, Message: api.GetError()}
}
