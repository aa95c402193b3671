package sdl3

import (
	"unsafe"

	"github.com/gosdl/sdl3/internal/ffi"
)

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// NewColor returns an opaque color unless an alpha is given.
func NewColor(r, g, b, a uint8) Color { return Color{r, g, b, a} }

// ToFloat converts each channel to [0, 1].
func (c Color) ToFloat() ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

func (c Color) toFFI() ffi.Color { return ffi.Color{R: c.R, G: c.G, B: c.B, A: c.A} }

// ColorF32 is a float RGBA color with channels nominally in [0, 1].
// Values outside the range are allowed for HDR colorspaces; ToColor
// clamps.
type ColorF32 struct {
	R, G, B, A float32
}

// ToColor converts each channel back to 8 bits, clamping to [0, 1]
// first and rounding to nearest.
func (c ColorF32) ToColor() Color {
	conv := func(v float32) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return Color{conv(c.R), conv(c.G), conv(c.B), conv(c.A)}
}

// Pixel format encoding components, matching the native packing
// scheme: bit 28 flags a non-fourcc format, then type, order, layout,
// bits and bytes fields.
const (
	pfTypeIndex8   = 3
	pfTypePacked16 = 5
	pfTypePacked32 = 6
	pfTypeArrayU8  = 7
	pfTypeArrayF32 = 11

	pfOrderXRGB = 1
	pfOrderARGB = 3
	pfOrderRGBA = 4
	pfOrderXBGR = 5
	pfOrderABGR = 7
	pfOrderBGRA = 8

	pfArrayRGB  = 1
	pfArrayRGBA = 2
	pfArrayBGR  = 4

	pfLayout565     = 5
	pfLayout8888    = 6
	pfLayout2101010 = 7
)

// PixelFormat identifies a native pixel format. Only the values below
// are accepted by FromUint32; every native format value crossing into
// Go is validated even when the native library guarantees it.
type PixelFormat uint32

const (
	PixelFormatUnknown PixelFormat = 0

	PixelFormatIndex8 PixelFormat = 1<<28 | pfTypeIndex8<<24 | 8<<8 | 1

	PixelFormatRGB565 PixelFormat = 1<<28 | pfTypePacked16<<24 | pfOrderXRGB<<20 | pfLayout565<<16 | 16<<8 | 2

	PixelFormatRGB24 PixelFormat = 1<<28 | pfTypeArrayU8<<24 | pfArrayRGB<<20 | 24<<8 | 3
	PixelFormatBGR24 PixelFormat = 1<<28 | pfTypeArrayU8<<24 | pfArrayBGR<<20 | 24<<8 | 3

	PixelFormatXRGB8888 PixelFormat = 1<<28 | pfTypePacked32<<24 | pfOrderXRGB<<20 | pfLayout8888<<16 | 24<<8 | 4
	PixelFormatXBGR8888 PixelFormat = 1<<28 | pfTypePacked32<<24 | pfOrderXBGR<<20 | pfLayout8888<<16 | 24<<8 | 4
	PixelFormatARGB8888 PixelFormat = 1<<28 | pfTypePacked32<<24 | pfOrderARGB<<20 | pfLayout8888<<16 | 32<<8 | 4
	PixelFormatRGBA8888 PixelFormat = 1<<28 | pfTypePacked32<<24 | pfOrderRGBA<<20 | pfLayout8888<<16 | 32<<8 | 4
	PixelFormatABGR8888 PixelFormat = 1<<28 | pfTypePacked32<<24 | pfOrderABGR<<20 | pfLayout8888<<16 | 32<<8 | 4
	PixelFormatBGRA8888 PixelFormat = 1<<28 | pfTypePacked32<<24 | pfOrderBGRA<<20 | pfLayout8888<<16 | 32<<8 | 4

	PixelFormatARGB2101010 PixelFormat = 1<<28 | pfTypePacked32<<24 | pfOrderARGB<<20 | pfLayout2101010<<16 | 32<<8 | 4

	PixelFormatRGBA128Float PixelFormat = 1<<28 | pfTypeArrayF32<<24 | pfArrayRGBA<<20 | 128<<8 | 16

	// Byte-order aliases for the 32-bit formats: RGBA32 is the format
	// whose bytes in memory are R, G, B, A regardless of endianness.
	PixelFormatRGBA32 = PixelFormatABGR8888
	PixelFormatARGB32 = PixelFormatBGRA8888
	PixelFormatBGRA32 = PixelFormatARGB8888
	PixelFormatABGR32 = PixelFormatRGBA8888

	// FourCC formats, common for camera frames.
	PixelFormatYV12 PixelFormat = 0x32315659
	PixelFormatIYUV PixelFormat = 0x56555949
	PixelFormatYUY2 PixelFormat = 0x32595559
	PixelFormatUYVY PixelFormat = 0x59565955
	PixelFormatNV12 PixelFormat = 0x3231564e
	PixelFormatNV21 PixelFormat = 0x3132564e
	PixelFormatMJPG PixelFormat = 0x47504a4d
)

var knownPixelFormats = map[PixelFormat]struct{}{
	PixelFormatUnknown:      {},
	PixelFormatIndex8:       {},
	PixelFormatRGB565:       {},
	PixelFormatRGB24:        {},
	PixelFormatBGR24:        {},
	PixelFormatXRGB8888:     {},
	PixelFormatXBGR8888:     {},
	PixelFormatARGB8888:     {},
	PixelFormatRGBA8888:     {},
	PixelFormatABGR8888:     {},
	PixelFormatBGRA8888:     {},
	PixelFormatARGB2101010:  {},
	PixelFormatRGBA128Float: {},
	PixelFormatYV12:         {},
	PixelFormatIYUV:         {},
	PixelFormatYUY2:         {},
	PixelFormatUYVY:         {},
	PixelFormatNV12:         {},
	PixelFormatNV21:         {},
	PixelFormatMJPG:         {},
}

// PixelFormatFromUint32 validates a raw native format value.
func PixelFormatFromUint32(v uint32) (PixelFormat, error) {
	f := PixelFormat(v)
	if _, ok := knownPixelFormats[f]; !ok {
		return PixelFormatUnknown, &UnknownEnumError{Kind: "pixel format", Value: uint64(v)}
	}
	return f, nil
}

// BitsPerPixel returns the encoded bit depth, or 0 for fourcc formats.
// Only non-fourcc formats have exactly 1 in the top nibble; fourcc
// codes are four ASCII bytes and decode to other values there.
func (f PixelFormat) BitsPerPixel() int {
	if f>>28 != 1 {
		return 0
	}
	return int(f >> 8 & 0xff)
}

// BytesPerPixel returns the encoded byte size, or 0 for fourcc
// formats.
func (f PixelFormat) BytesPerPixel() int {
	if f>>28 != 1 {
		return 0
	}
	return int(f & 0xff)
}

// Colorspace identifies how pixel values map to colors.
type Colorspace uint32

const (
	ColorspaceUnknown       Colorspace = 0
	ColorspaceSRGB          Colorspace = 0x120004a0
	ColorspaceSRGBLinear    Colorspace = 0x12000500
	ColorspaceHDR10         Colorspace = 0x12002600
	ColorspaceJPEG          Colorspace = 0x220004c6
	ColorspaceBT601Limited  Colorspace = 0x211018c6
	ColorspaceBT601Full     Colorspace = 0x221018c6
	ColorspaceBT709Limited  Colorspace = 0x21100421
	ColorspaceBT709Full     Colorspace = 0x22100421
	ColorspaceBT2020Limited Colorspace = 0x21102609
	ColorspaceBT2020Full    Colorspace = 0x22102609

	ColorspaceRGBDefault = ColorspaceSRGB
	ColorspaceYUVDefault = ColorspaceJPEG
)

var knownColorspaces = map[Colorspace]struct{}{
	ColorspaceUnknown:       {},
	ColorspaceSRGB:          {},
	ColorspaceSRGBLinear:    {},
	ColorspaceHDR10:         {},
	ColorspaceJPEG:          {},
	ColorspaceBT601Limited:  {},
	ColorspaceBT601Full:     {},
	ColorspaceBT709Limited:  {},
	ColorspaceBT709Full:     {},
	ColorspaceBT2020Limited: {},
	ColorspaceBT2020Full:    {},
}

// ColorspaceFromUint32 validates a raw native colorspace value.
func ColorspaceFromUint32(v uint32) (Colorspace, error) {
	c := Colorspace(v)
	if _, ok := knownColorspaces[c]; !ok {
		return ColorspaceUnknown, &UnknownEnumError{Kind: "colorspace", Value: uint64(v)}
	}
	return c, nil
}

// PixelFormatDetails describes the channel layout of a format. The
// handle points at static native data and stays valid for the process
// lifetime.
type PixelFormatDetails struct {
	api *ffi.API
	ptr uintptr

	Format        PixelFormat
	BitsPerPixel  int
	BytesPerPixel int
	RMask         uint32
	GMask         uint32
	BMask         uint32
	AMask         uint32
}

// PixelFormatDetails looks up the channel layout for a format.
func (s *SDL) PixelFormatDetails(f PixelFormat) (*PixelFormatDetails, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	ptr := s.api.GetPixelFormatDetails(uint32(f))
	if ptr == 0 {
		return nil, lastError(s.api, "GetPixelFormatDetails")
	}
	raw := (*ffi.PixelFormatDetails)(unsafe.Pointer(ptr))
	return &PixelFormatDetails{
		api:           s.api,
		ptr:           ptr,
		Format:        PixelFormat(raw.Format),
		BitsPerPixel:  int(raw.BitsPerPixel),
		BytesPerPixel: int(raw.BytesPerPixel),
		RMask:         raw.RMask,
		GMask:         raw.GMask,
		BMask:         raw.BMask,
		AMask:         raw.AMask,
	}, nil
}

// PixelFormatName returns the native debug name of a format.
func (s *SDL) PixelFormatName(f PixelFormat) string {
	if s.alive() != nil {
		return ""
	}
	return s.api.GetPixelFormatName(uint32(f))
}

// MapRGB packs an opaque color for this format.
func (d *PixelFormatDetails) MapRGB(red, green, blue uint8) uint32 {
	return d.api.MapRGB(d.ptr, 0, red, green, blue)
}

// MapRGBA packs c for this format.
func (d *PixelFormatDetails) MapRGBA(c Color) uint32 {
	return d.api.MapRGBA(d.ptr, 0, c.R, c.G, c.B, c.A)
}

// GetRGB unpacks the color channels of a pixel value for this format.
func (d *PixelFormatDetails) GetRGB(pixel uint32) (red, green, blue uint8) {
	d.api.GetRGB(pixel, d.ptr, 0, &red, &green, &blue)
	return red, green, blue
}

// GetRGBA unpacks a pixel value for this format.
func (d *PixelFormatDetails) GetRGBA(pixel uint32) Color {
	var c Color
	d.api.GetRGBA(pixel, d.ptr, 0, &c.R, &c.G, &c.B, &c.A)
	return c
}

// MasksForPixelFormat returns the bit depth and channel masks of a
// format, for interop with mask-based APIs.
func (s *SDL) MasksForPixelFormat(f PixelFormat) (bpp int32, rmask, gmask, bmask, amask uint32, err error) {
	if err := s.alive(); err != nil {
		return 0, 0, 0, 0, 0, err
	}
	if !s.api.GetMasksForPixelFormat(uint32(f), &bpp, &rmask, &gmask, &bmask, &amask) {
		return 0, 0, 0, 0, 0, lastError(s.api, "GetMasksForPixelFormat")
	}
	return bpp, rmask, gmask, bmask, amask, nil
}

// PixelFormatForMasks finds the format matching a bit depth and channel
// masks. The result is validated like any other native format value.
func (s *SDL) PixelFormatForMasks(bpp int32, rmask, gmask, bmask, amask uint32) (PixelFormat, error) {
	if err := s.alive(); err != nil {
		return PixelFormatUnknown, err
	}
	return PixelFormatFromUint32(s.api.GetPixelFormatForMasks(bpp, rmask, gmask, bmask, amask))
}

// Palette is an owned native color palette.
type Palette struct {
	api       *ffi.API
	ptr       uintptr
	destroyed bool
}

// CreatePalette allocates a palette with n color slots.
func (s *SDL) CreatePalette(n int32) (*Palette, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	ptr := s.api.CreatePalette(n)
	if ptr == 0 {
		return nil, lastError(s.api, "CreatePalette")
	}
	return &Palette{api: s.api, ptr: ptr}, nil
}

// SetColors replaces palette entries starting at first.
func (p *Palette) SetColors(colors []Color, first int32) error {
	if p.destroyed {
		return ErrClosed
	}
	if len(colors) == 0 {
		return nil
	}
	native := make([]ffi.Color, len(colors))
	for i, c := range colors {
		native[i] = c.toFFI()
	}
	if !p.api.SetPaletteColors(p.ptr, &native[0], first, int32(len(native))) {
		return lastError(p.api, "SetPaletteColors")
	}
	return nil
}

// Destroy frees the palette. Destroy is idempotent.
func (p *Palette) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.api.DestroyPalette(p.ptr)
	p.ptr = 0
}
