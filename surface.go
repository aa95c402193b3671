package sdl3

import (
	"unsafe"

	"github.com/gosdl/sdl3/internal/ffi"
)

// ScaleMode selects the filter used when scaling surfaces or textures.
type ScaleMode int32

const (
	ScaleModeNearest ScaleMode = iota
	ScaleModeLinear
)

// ScaleModeFromInt32 validates a raw native scale mode value.
func ScaleModeFromInt32(v int32) (ScaleMode, error) {
	if v < int32(ScaleModeNearest) || v > int32(ScaleModeLinear) {
		return ScaleModeNearest, &UnknownEnumError{Kind: "scale mode", Value: uint64(uint32(v))}
	}
	return ScaleMode(v), nil
}

// FlipMode selects a mirror axis.
type FlipMode int32

const (
	FlipNone FlipMode = iota
	FlipHorizontal
	FlipVertical
)

// SurfaceRef is a borrowed view of a native surface owned by someone
// else (a window framebuffer, a camera frame). It must not outlive its
// owner and must never be destroyed through this view.
type SurfaceRef struct {
	api  *ffi.API
	core *core
	ptr  uintptr
}

// Surface is an owned native surface. Destroy frees it; a Surface
// embeds SurfaceRef, so every view operation applies to it as well.
type Surface struct {
	SurfaceRef
	pinned    []byte
	renderer  *Renderer
	destroyed bool
}

// CreateSurface allocates a surface of the given size and format.
func (s *SDL) CreateSurface(w, h int32, format PixelFormat) (*Surface, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	ptr := s.api.CreateSurface(w, h, uint32(format))
	if ptr == 0 {
		return nil, lastError(s.api, "CreateSurface")
	}
	s.core.retain()
	return &Surface{SurfaceRef: SurfaceRef{api: s.api, core: s.core, ptr: ptr}}, nil
}

// CreateSurfaceFrom wraps existing pixel data without copying. The
// surface keeps pixels referenced until Destroy, so the data cannot be
// collected while native code can still read it.
func (s *SDL) CreateSurfaceFrom(w, h int32, format PixelFormat, pixels []byte, pitch int32) (*Surface, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	ptr := s.api.CreateSurfaceFrom(w, h, uint32(format), ffi.BytesPtr(pixels), pitch)
	if ptr == 0 {
		return nil, lastError(s.api, "CreateSurfaceFrom")
	}
	s.core.retain()
	return &Surface{SurfaceRef: SurfaceRef{api: s.api, core: s.core, ptr: ptr}, pinned: pixels}, nil
}

// LoadBMP loads a BMP file into a new surface.
func (s *SDL) LoadBMP(path string) (*Surface, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	ptr := s.api.LoadBMP(path)
	if ptr == 0 {
		return nil, lastError(s.api, "LoadBMP")
	}
	s.core.retain()
	return &Surface{SurfaceRef: SurfaceRef{api: s.api, core: s.core, ptr: ptr}}, nil
}

// Destroy frees the surface. A software renderer drawing into this
// surface is destroyed first. Idempotent; never fails.
func (s *Surface) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	if s.renderer != nil {
		s.renderer.Destroy()
		s.renderer = nil
	}
	s.api.DestroySurface(s.ptr)
	s.ptr = 0
	s.pinned = nil
	if s.core != nil {
		s.core.release()
	}
}

// Ref returns the borrowed view of this surface.
func (s *Surface) Ref() *SurfaceRef { return &s.SurfaceRef }

func (r *SurfaceRef) handle() (uintptr, error) {
	if r.ptr == 0 {
		return 0, ErrClosed
	}
	return r.ptr, nil
}

func (r *SurfaceRef) raw() *ffi.Surface {
	return (*ffi.Surface)(unsafe.Pointer(r.ptr))
}

// Width returns the surface width in pixels.
func (r *SurfaceRef) Width() int32 {
	if r.ptr == 0 {
		return 0
	}
	return r.raw().W
}

// Height returns the surface height in pixels.
func (r *SurfaceRef) Height() int32 {
	if r.ptr == 0 {
		return 0
	}
	return r.raw().H
}

// Pitch returns the byte length of a pixel row, including padding.
func (r *SurfaceRef) Pitch() int32 {
	if r.ptr == 0 {
		return 0
	}
	return r.raw().Pitch
}

// Format returns the surface's validated pixel format.
func (r *SurfaceRef) Format() (PixelFormat, error) {
	if _, err := r.handle(); err != nil {
		return PixelFormatUnknown, err
	}
	return PixelFormatFromUint32(r.raw().Format)
}

// Colorspace returns the surface's validated colorspace.
func (r *SurfaceRef) Colorspace() (Colorspace, error) {
	ptr, err := r.handle()
	if err != nil {
		return ColorspaceUnknown, err
	}
	return ColorspaceFromUint32(r.api.GetSurfaceColorspace(ptr))
}

// ownedSurface wraps a native surface pointer produced from this view
// into an owned Surface holding its own library reference.
func (r *SurfaceRef) ownedSurface(ptr uintptr) *Surface {
	if r.core != nil {
		r.core.retain()
	}
	return &Surface{SurfaceRef: SurfaceRef{api: r.api, core: r.core, ptr: ptr}}
}

// Duplicate copies the surface into a new owned surface.
func (r *SurfaceRef) Duplicate() (*Surface, error) {
	ptr, err := r.handle()
	if err != nil {
		return nil, err
	}
	dup := r.api.DuplicateSurface(ptr)
	if dup == 0 {
		return nil, lastError(r.api, "DuplicateSurface")
	}
	return r.ownedSurface(dup), nil
}

// Convert copies the surface into a new owned surface with the given
// format.
func (r *SurfaceRef) Convert(format PixelFormat) (*Surface, error) {
	ptr, err := r.handle()
	if err != nil {
		return nil, err
	}
	conv := r.api.ConvertSurface(ptr, uint32(format))
	if conv == 0 {
		return nil, lastError(r.api, "ConvertSurface")
	}
	return r.ownedSurface(conv), nil
}

// Scale copies the surface into a new owned surface of the given size.
func (r *SurfaceRef) Scale(w, h int32, mode ScaleMode) (*Surface, error) {
	ptr, err := r.handle()
	if err != nil {
		return nil, err
	}
	scaled := r.api.ScaleSurface(ptr, w, h, int32(mode))
	if scaled == 0 {
		return nil, lastError(r.api, "ScaleSurface")
	}
	return r.ownedSurface(scaled), nil
}

// SaveBMP writes the surface to a BMP file.
func (r *SurfaceRef) SaveBMP(path string) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if !r.api.SaveBMP(ptr, path) {
		return lastError(r.api, "SaveBMP")
	}
	return nil
}

// Blit copies srcRect (nil for all) onto dst at dstRect's origin.
func (r *SurfaceRef) Blit(srcRect *Rect, dst *SurfaceRef, dstRect *Rect) error {
	src, err := r.handle()
	if err != nil {
		return err
	}
	dstPtr, err := dst.handle()
	if err != nil {
		return err
	}
	if !r.api.BlitSurface(src, optRect(srcRect), dstPtr, optRect(dstRect)) {
		return lastError(r.api, "BlitSurface")
	}
	return nil
}

// BlitScaled copies srcRect onto dstRect, scaling with mode.
func (r *SurfaceRef) BlitScaled(srcRect *Rect, dst *SurfaceRef, dstRect *Rect, mode ScaleMode) error {
	src, err := r.handle()
	if err != nil {
		return err
	}
	dstPtr, err := dst.handle()
	if err != nil {
		return err
	}
	if !r.api.BlitSurfaceScaled(src, optRect(srcRect), dstPtr, optRect(dstRect), int32(mode)) {
		return lastError(r.api, "BlitSurfaceScaled")
	}
	return nil
}

// BlitTiled repeats srcRect across dstRect.
func (r *SurfaceRef) BlitTiled(srcRect *Rect, dst *SurfaceRef, dstRect *Rect) error {
	src, err := r.handle()
	if err != nil {
		return err
	}
	dstPtr, err := dst.handle()
	if err != nil {
		return err
	}
	if !r.api.BlitSurfaceTiled(src, optRect(srcRect), dstPtr, optRect(dstRect)) {
		return lastError(r.api, "BlitSurfaceTiled")
	}
	return nil
}

// BlitTiledWithScale repeats srcRect across dstRect, scaling each tile.
func (r *SurfaceRef) BlitTiledWithScale(srcRect *Rect, scale float32, mode ScaleMode, dst *SurfaceRef, dstRect *Rect) error {
	src, err := r.handle()
	if err != nil {
		return err
	}
	dstPtr, err := dst.handle()
	if err != nil {
		return err
	}
	if !r.api.BlitSurfaceTiledWithScale(src, optRect(srcRect), scale, int32(mode), dstPtr, optRect(dstRect)) {
		return lastError(r.api, "BlitSurfaceTiledWithScale")
	}
	return nil
}

// Blit9Grid performs a nine-patch blit: corners unscaled, edges and
// center stretched.
func (r *SurfaceRef) Blit9Grid(srcRect *Rect, leftWidth, rightWidth, topHeight, bottomHeight int32, scale float32, mode ScaleMode, dst *SurfaceRef, dstRect *Rect) error {
	src, err := r.handle()
	if err != nil {
		return err
	}
	dstPtr, err := dst.handle()
	if err != nil {
		return err
	}
	if !r.api.BlitSurface9Grid(src, optRect(srcRect), leftWidth, rightWidth, topHeight, bottomHeight, scale, int32(mode), dstPtr, optRect(dstRect)) {
		return lastError(r.api, "BlitSurface9Grid")
	}
	return nil
}

// FillRect fills rect (nil for all) with a packed pixel value.
func (r *SurfaceRef) FillRect(rect *Rect, pixel uint32) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if !r.api.FillSurfaceRect(ptr, optRect(rect), pixel) {
		return lastError(r.api, "FillSurfaceRect")
	}
	return nil
}

// FillRects fills every rect with a packed pixel value.
func (r *SurfaceRef) FillRects(rects []Rect, pixel uint32) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if len(rects) == 0 {
		return nil
	}
	native := make([]ffi.Rect, len(rects))
	for i, rc := range rects {
		native[i] = rc.toFFI()
	}
	if !r.api.FillSurfaceRects(ptr, &native[0], int32(len(native)), pixel) {
		return lastError(r.api, "FillSurfaceRects")
	}
	return nil
}

// Flip mirrors the surface in place.
func (r *SurfaceRef) Flip(mode FlipMode) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if !r.api.FlipSurface(ptr, int32(mode)) {
		return lastError(r.api, "FlipSurface")
	}
	return nil
}

// Clear fills the whole surface with a float color, ignoring the clip
// rect.
func (r *SurfaceRef) Clear(c ColorF32) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if !r.api.ClearSurface(ptr, c.R, c.G, c.B, c.A) {
		return lastError(r.api, "ClearSurface")
	}
	return nil
}

// Premultiply converts the pixels to premultiplied alpha in place.
func (r *SurfaceRef) Premultiply(linear bool) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if !r.api.PremultiplySurfaceAlpha(ptr, linear) {
		return lastError(r.api, "PremultiplySurfaceAlpha")
	}
	return nil
}

// ReadPixel reads one pixel as an 8-bit color.
func (r *SurfaceRef) ReadPixel(x, y int32) (Color, error) {
	ptr, err := r.handle()
	if err != nil {
		return Color{}, err
	}
	var c Color
	if !r.api.ReadSurfacePixel(ptr, x, y, &c.R, &c.G, &c.B, &c.A) {
		return Color{}, lastError(r.api, "ReadSurfacePixel")
	}
	return c, nil
}

// ReadPixelFloat reads one pixel as a float color, preserving HDR
// range.
func (r *SurfaceRef) ReadPixelFloat(x, y int32) (ColorF32, error) {
	ptr, err := r.handle()
	if err != nil {
		return ColorF32{}, err
	}
	var c ColorF32
	if !r.api.ReadSurfacePixelFloat(ptr, x, y, &c.R, &c.G, &c.B, &c.A) {
		return ColorF32{}, lastError(r.api, "ReadSurfacePixelFloat")
	}
	return c, nil
}

// WritePixel writes one pixel from an 8-bit color.
func (r *SurfaceRef) WritePixel(x, y int32, c Color) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if !r.api.WriteSurfacePixel(ptr, x, y, c.R, c.G, c.B, c.A) {
		return lastError(r.api, "WriteSurfacePixel")
	}
	return nil
}

// WritePixelFloat writes one pixel from a float color.
func (r *SurfaceRef) WritePixelFloat(x, y int32, c ColorF32) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if !r.api.WriteSurfacePixelFloat(ptr, x, y, c.R, c.G, c.B, c.A) {
		return lastError(r.api, "WriteSurfacePixelFloat")
	}
	return nil
}

// AlphaMod returns the surface-wide alpha modulation.
func (r *SurfaceRef) AlphaMod() (uint8, error) {
	ptr, err := r.handle()
	if err != nil {
		return 0, err
	}
	var alpha uint8
	if !r.api.GetSurfaceAlphaMod(ptr, &alpha) {
		return 0, lastError(r.api, "GetSurfaceAlphaMod")
	}
	return alpha, nil
}

// SetAlphaMod sets the surface-wide alpha modulation.
func (r *SurfaceRef) SetAlphaMod(alpha uint8) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if !r.api.SetSurfaceAlphaMod(ptr, alpha) {
		return lastError(r.api, "SetSurfaceAlphaMod")
	}
	return nil
}

// ColorMod returns the surface-wide color modulation.
func (r *SurfaceRef) ColorMod() (red, green, blue uint8, err error) {
	ptr, err := r.handle()
	if err != nil {
		return 0, 0, 0, err
	}
	if !r.api.GetSurfaceColorMod(ptr, &red, &green, &blue) {
		return 0, 0, 0, lastError(r.api, "GetSurfaceColorMod")
	}
	return red, green, blue, nil
}

// SetColorMod sets the surface-wide color modulation.
func (r *SurfaceRef) SetColorMod(red, green, blue uint8) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if !r.api.SetSurfaceColorMod(ptr, red, green, blue) {
		return lastError(r.api, "SetSurfaceColorMod")
	}
	return nil
}

// BlendMode returns the surface's validated blend mode.
func (r *SurfaceRef) BlendMode() (BlendMode, error) {
	ptr, err := r.handle()
	if err != nil {
		return BlendModeNone, err
	}
	var mode uint32
	if !r.api.GetSurfaceBlendMode(ptr, &mode) {
		return BlendModeNone, lastError(r.api, "GetSurfaceBlendMode")
	}
	return BlendModeFromUint32(mode)
}

// SetBlendMode sets the blend mode used by blits from this surface.
func (r *SurfaceRef) SetBlendMode(mode BlendMode) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if !r.api.SetSurfaceBlendMode(ptr, uint32(mode)) {
		return lastError(r.api, "SetSurfaceBlendMode")
	}
	return nil
}

// ClipRect returns the clip rectangle for blits into this surface.
func (r *SurfaceRef) ClipRect() (Rect, error) {
	ptr, err := r.handle()
	if err != nil {
		return Rect{}, err
	}
	var rect ffi.Rect
	if !r.api.GetSurfaceClipRect(ptr, &rect) {
		return Rect{}, lastError(r.api, "GetSurfaceClipRect")
	}
	return rectFromFFI(rect), nil
}

// SetClipRect sets the clip rectangle; nil disables clipping.
func (r *SurfaceRef) SetClipRect(rect *Rect) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if !r.api.SetSurfaceClipRect(ptr, optRect(rect)) {
		return lastError(r.api, "SetSurfaceClipRect")
	}
	return nil
}

// ColorKey returns the transparent pixel value, if one is set.
func (r *SurfaceRef) ColorKey() (pixel uint32, ok bool, err error) {
	ptr, err := r.handle()
	if err != nil {
		return 0, false, err
	}
	if !r.api.SurfaceHasColorKey(ptr) {
		return 0, false, nil
	}
	if !r.api.GetSurfaceColorKey(ptr, &pixel) {
		return 0, false, lastError(r.api, "GetSurfaceColorKey")
	}
	return pixel, true, nil
}

// SetColorKey sets or clears the transparent pixel value.
func (r *SurfaceRef) SetColorKey(enabled bool, pixel uint32) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if !r.api.SetSurfaceColorKey(ptr, enabled, pixel) {
		return lastError(r.api, "SetSurfaceColorKey")
	}
	return nil
}

// HasRLE reports whether RLE acceleration is enabled.
func (r *SurfaceRef) HasRLE() (bool, error) {
	ptr, err := r.handle()
	if err != nil {
		return false, err
	}
	return r.api.SurfaceHasRLE(ptr), nil
}

// SetRLE toggles RLE acceleration. An RLE surface must be locked
// before direct pixel access.
func (r *SurfaceRef) SetRLE(enabled bool) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if !r.api.SetSurfaceRLE(ptr, enabled) {
		return lastError(r.api, "SetSurfaceRLE")
	}
	return nil
}

// PaletteColors copies the colors of the surface's palette, or returns
// nil when the surface has none.
func (r *SurfaceRef) PaletteColors() ([]Color, error) {
	ptr, err := r.handle()
	if err != nil {
		return nil, err
	}
	pal := r.api.GetSurfacePalette(ptr)
	if pal == 0 {
		return nil, nil
	}
	raw := (*ffi.Palette)(unsafe.Pointer(pal))
	if raw.NColors <= 0 || raw.Colors == 0 {
		return nil, nil
	}
	native := unsafe.Slice((*ffi.Color)(unsafe.Pointer(raw.Colors)), int(raw.NColors))
	colors := make([]Color, len(native))
	for i, c := range native {
		colors[i] = Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return colors, nil
}

// SetPalette attaches a palette to an indexed surface.
func (r *SurfaceRef) SetPalette(p *Palette) error {
	ptr, err := r.handle()
	if err != nil {
		return err
	}
	if p.destroyed {
		return ErrClosed
	}
	if !r.api.SetSurfacePalette(ptr, p.ptr) {
		return lastError(r.api, "SetSurfacePalette")
	}
	return nil
}

// MapRGB packs an opaque color for this surface's format.
func (r *SurfaceRef) MapRGB(red, green, blue uint8) (uint32, error) {
	ptr, err := r.handle()
	if err != nil {
		return 0, err
	}
	return r.api.MapSurfaceRGB(ptr, red, green, blue), nil
}

// MapRGBA packs a color for this surface's format.
func (r *SurfaceRef) MapRGBA(c Color) (uint32, error) {
	ptr, err := r.handle()
	if err != nil {
		return 0, err
	}
	return r.api.MapSurfaceRGBA(ptr, c.R, c.G, c.B, c.A), nil
}

// SurfaceLock is scoped access to a surface's raw pixels. The pixels
// slice is only valid until Unlock.
type SurfaceLock struct {
	ref      *SurfaceRef
	unlocked bool
}

// Lock locks the surface for direct pixel access.
func (r *SurfaceRef) Lock() (*SurfaceLock, error) {
	ptr, err := r.handle()
	if err != nil {
		return nil, err
	}
	if !r.api.LockSurface(ptr) {
		return nil, lastError(r.api, "LockSurface")
	}
	return &SurfaceLock{ref: r}, nil
}

// Pixels returns the raw pixel bytes, height * pitch long. Returns nil
// after Unlock.
func (l *SurfaceLock) Pixels() []byte {
	if l.unlocked || l.ref.ptr == 0 {
		return nil
	}
	raw := l.ref.raw()
	if raw.Pixels == 0 {
		return nil
	}
	n := int(raw.H) * int(raw.Pitch)
	return unsafe.Slice((*byte)(unsafe.Pointer(raw.Pixels)), n)
}

// Unlock releases the lock. Idempotent.
func (l *SurfaceLock) Unlock() {
	if l.unlocked {
		return
	}
	l.unlocked = true
	if l.ref.ptr != 0 {
		l.ref.api.UnlockSurface(l.ref.ptr)
	}
}
