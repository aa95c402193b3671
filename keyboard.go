package sdl3

import "unsafe"

// Scancode identifies a physical key position, independent of layout.
// Values follow the USB HID usage tables.
type Scancode uint16

const (
	ScancodeUnknown Scancode = 0

	ScancodeA Scancode = 4
	ScancodeB Scancode = 5
	ScancodeC Scancode = 6
	ScancodeD Scancode = 7
	ScancodeE Scancode = 8
	ScancodeF Scancode = 9
	ScancodeG Scancode = 10
	ScancodeH Scancode = 11
	ScancodeI Scancode = 12
	ScancodeJ Scancode = 13
	ScancodeK Scancode = 14
	ScancodeL Scancode = 15
	ScancodeM Scancode = 16
	ScancodeN Scancode = 17
	ScancodeO Scancode = 18
	ScancodeP Scancode = 19
	ScancodeQ Scancode = 20
	ScancodeR Scancode = 21
	ScancodeS Scancode = 22
	ScancodeT Scancode = 23
	ScancodeU Scancode = 24
	ScancodeV Scancode = 25
	ScancodeW Scancode = 26
	ScancodeX Scancode = 27
	ScancodeY Scancode = 28
	ScancodeZ Scancode = 29

	Scancode1 Scancode = 30
	Scancode2 Scancode = 31
	Scancode3 Scancode = 32
	Scancode4 Scancode = 33
	Scancode5 Scancode = 34
	Scancode6 Scancode = 35
	Scancode7 Scancode = 36
	Scancode8 Scancode = 37
	Scancode9 Scancode = 38
	Scancode0 Scancode = 39

	ScancodeReturn    Scancode = 40
	ScancodeEscape    Scancode = 41
	ScancodeBackspace Scancode = 42
	ScancodeTab       Scancode = 43
	ScancodeSpace     Scancode = 44

	ScancodeRight Scancode = 79
	ScancodeLeft  Scancode = 80
	ScancodeDown  Scancode = 81
	ScancodeUp    Scancode = 82

	ScancodeLCtrl  Scancode = 224
	ScancodeLShift Scancode = 225
	ScancodeLAlt   Scancode = 226
	ScancodeRCtrl  Scancode = 228
	ScancodeRShift Scancode = 229
	ScancodeRAlt   Scancode = 230
)

// scancodeCount is the size of the native scancode space.
const scancodeCount = 512

// ScancodeFromUint32 validates a raw native scancode value.
func ScancodeFromUint32(v uint32) (Scancode, error) {
	if v >= scancodeCount {
		return ScancodeUnknown, &UnknownEnumError{Kind: "scancode", Value: uint64(v)}
	}
	return Scancode(v), nil
}

// scancodeOrUnknown maps out-of-range native values to
// ScancodeUnknown; event decoding must not drop the whole event over a
// bad scancode.
func scancodeOrUnknown(v uint32) Scancode {
	sc, err := ScancodeFromUint32(v)
	if err != nil {
		return ScancodeUnknown
	}
	return sc
}

// Keyboard identifies a connected keyboard.
type Keyboard struct {
	v  *VideoSubsystem
	id uint32
}

// ID returns the native keyboard instance ID.
func (k Keyboard) ID() uint32 { return k.id }

// Name returns the keyboard's human-readable name.
func (k Keyboard) Name() (string, error) {
	if err := k.v.sub.alive(); err != nil {
		return "", err
	}
	api := k.v.sub.api()
	api.ClearError()
	name := api.GetKeyboardNameForID(k.id)
	if name == "" {
		if err := sentinelError(api, "GetKeyboardNameForID"); err != nil {
			return "", err
		}
	}
	return name, nil
}

// Keyboards lists the connected keyboards.
func (v *VideoSubsystem) Keyboards() ([]Keyboard, error) {
	if err := v.sub.alive(); err != nil {
		return nil, err
	}
	api := v.sub.api()
	var count int32
	ptr := api.GetKeyboards(&count)
	if ptr == 0 {
		return nil, lastError(api, "GetKeyboards")
	}
	defer api.Free(ptr)
	ids := unsafe.Slice((*uint32)(unsafe.Pointer(ptr)), int(count))
	keyboards := make([]Keyboard, count)
	for i, id := range ids {
		keyboards[i] = Keyboard{v: v, id: id}
	}
	return keyboards, nil
}

// KeyboardState is a snapshot of which keys were held when it was
// taken. Index it with a Scancode.
type KeyboardState []bool

// Pressed reports whether sc was held in this snapshot.
func (s KeyboardState) Pressed(sc Scancode) bool {
	return int(sc) < len(s) && s[sc]
}

// KeyboardState copies the current key state. The event pump must be
// run for the state to advance.
func (v *VideoSubsystem) KeyboardState() (KeyboardState, error) {
	if err := v.sub.alive(); err != nil {
		return nil, err
	}
	api := v.sub.api()
	var numKeys int32
	ptr := api.GetKeyboardState(&numKeys)
	if ptr == 0 {
		return nil, lastError(api, "GetKeyboardState")
	}
	native := unsafe.Slice((*bool)(unsafe.Pointer(ptr)), int(numKeys))
	state := make(KeyboardState, numKeys)
	copy(state, native)
	return state, nil
}
