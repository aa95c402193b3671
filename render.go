package sdl3

import (
	"runtime"

	"github.com/gosdl/sdl3/internal/ffi"
)

// TextureAccess selects how a texture's pixels may be used.
type TextureAccess int32

const (
	TextureAccessStatic TextureAccess = iota
	TextureAccessStreaming
	TextureAccessTarget
)

// TextureAccessFromInt32 validates a raw native access value.
func TextureAccessFromInt32(v int32) (TextureAccess, error) {
	if v < int32(TextureAccessStatic) || v > int32(TextureAccessTarget) {
		return TextureAccessStatic, &UnknownEnumError{Kind: "texture access", Value: uint64(uint32(v))}
	}
	return TextureAccess(v), nil
}

// rendererState is the liveness token shared by a renderer and every
// texture it created. Destroying the renderer flips destroyed, and all
// textures holding the token refuse native calls from then on. Token
// identity also proves which renderer a texture belongs to.
type rendererState struct {
	ptr       uintptr
	destroyed bool
}

// Renderer is an owned native 2D renderer, backed by either a window
// or a software surface. The renderer's lifetime is bound to its
// backing resource: destroying the window or target surface destroys
// the renderer first.
type Renderer struct {
	api     *ffi.API
	core    *core
	state   *rendererState
	window  *Window
	surface *Surface
	target  *Texture
}

// CreateRenderer creates a renderer for the window. An empty driver
// name lets the native library pick.
func (w *Window) CreateRenderer(driver string) (*Renderer, error) {
	api, err := w.guard()
	if err != nil {
		return nil, err
	}
	var name []byte
	if driver != "" {
		name = ffi.CString(driver)
	}
	ptr := api.CreateRenderer(w.ptr, ffi.BytesPtr(name))
	runtime.KeepAlive(name)
	if ptr == 0 {
		return nil, lastError(api, "CreateRenderer")
	}
	w.v.sub.core.retain()
	r := &Renderer{
		api:    api,
		core:   w.v.sub.core,
		state:  &rendererState{ptr: ptr},
		window: w,
	}
	w.renderer = r
	return r, nil
}

// CreateSoftwareRenderer creates a renderer that draws into target.
// Destroying the target surface destroys the renderer first.
func (v *VideoSubsystem) CreateSoftwareRenderer(target *Surface) (*Renderer, error) {
	if err := v.sub.alive(); err != nil {
		return nil, err
	}
	surfPtr, err := target.handle()
	if err != nil {
		return nil, err
	}
	api := v.sub.api()
	ptr := api.CreateSoftwareRenderer(surfPtr)
	if ptr == 0 {
		return nil, lastError(api, "CreateSoftwareRenderer")
	}
	v.sub.core.retain()
	r := &Renderer{
		api:     api,
		core:    v.sub.core,
		state:   &rendererState{ptr: ptr},
		surface: target,
	}
	target.renderer = r
	return r, nil
}

// Destroy destroys the renderer and, natively, every texture it
// created. Live Texture values turn stale: their operations fail with
// ErrRendererDestroyed and their Destroy becomes a no-op. Idempotent.
func (r *Renderer) Destroy() {
	if r.state.destroyed {
		return
	}
	r.state.destroyed = true
	r.api.DestroyRenderer(r.state.ptr)
	r.state.ptr = 0
	r.target = nil
	if r.window != nil {
		r.window.renderer = nil
	}
	if r.surface != nil {
		r.surface.renderer = nil
	}
	r.core.release()
}

func (r *Renderer) guard() error {
	if r.state.destroyed {
		return ErrClosed
	}
	return nil
}

// Window returns the backing window, or nil for a software renderer.
func (r *Renderer) Window() *Window { return r.window }

// Name returns the renderer driver's name.
func (r *Renderer) Name() (string, error) {
	if err := r.guard(); err != nil {
		return "", err
	}
	r.api.ClearError()
	name := r.api.GetRendererName(r.state.ptr)
	if name == "" {
		if err := sentinelError(r.api, "GetRendererName"); err != nil {
			return "", err
		}
	}
	return name, nil
}

// OutputSize returns the output size in pixels.
func (r *Renderer) OutputSize() (w, h int32, err error) {
	if err := r.guard(); err != nil {
		return 0, 0, err
	}
	if !r.api.GetRenderOutputSize(r.state.ptr, &w, &h) {
		return 0, 0, lastError(r.api, "GetRenderOutputSize")
	}
	return w, h, nil
}

// CurrentOutputSize returns the output size of the current target.
func (r *Renderer) CurrentOutputSize() (w, h int32, err error) {
	if err := r.guard(); err != nil {
		return 0, 0, err
	}
	if !r.api.GetCurrentRenderOutputSize(r.state.ptr, &w, &h) {
		return 0, 0, lastError(r.api, "GetCurrentRenderOutputSize")
	}
	return w, h, nil
}

// ClipRect returns the current clip rectangle.
func (r *Renderer) ClipRect() (Rect, error) {
	if err := r.guard(); err != nil {
		return Rect{}, err
	}
	var rect ffi.Rect
	if !r.api.GetRenderClipRect(r.state.ptr, &rect) {
		return Rect{}, lastError(r.api, "GetRenderClipRect")
	}
	return rectFromFFI(rect), nil
}

// ColorScale returns the color scale applied to draw operations.
func (r *Renderer) ColorScale() (float32, error) {
	if err := r.guard(); err != nil {
		return 0, err
	}
	var scale float32
	if !r.api.GetRenderColorScale(r.state.ptr, &scale) {
		return 0, lastError(r.api, "GetRenderColorScale")
	}
	return scale, nil
}

// SetColorScale scales draw colors, for HDR output.
func (r *Renderer) SetColorScale(scale float32) error {
	if err := r.guard(); err != nil {
		return err
	}
	if !r.api.SetRenderColorScale(r.state.ptr, scale) {
		return lastError(r.api, "SetRenderColorScale")
	}
	return nil
}

// DrawBlendMode returns the validated blend mode for draw operations.
func (r *Renderer) DrawBlendMode() (BlendMode, error) {
	if err := r.guard(); err != nil {
		return BlendModeNone, err
	}
	var mode uint32
	if !r.api.GetRenderDrawBlendMode(r.state.ptr, &mode) {
		return BlendModeNone, lastError(r.api, "GetRenderDrawBlendMode")
	}
	return BlendModeFromUint32(mode)
}

// SetDrawBlendMode sets the blend mode for draw operations.
func (r *Renderer) SetDrawBlendMode(mode BlendMode) error {
	if err := r.guard(); err != nil {
		return err
	}
	if !r.api.SetRenderDrawBlendMode(r.state.ptr, uint32(mode)) {
		return lastError(r.api, "SetRenderDrawBlendMode")
	}
	return nil
}

// DrawColor returns the color used by Clear and draw operations.
func (r *Renderer) DrawColor() (Color, error) {
	if err := r.guard(); err != nil {
		return Color{}, err
	}
	var c Color
	if !r.api.GetRenderDrawColor(r.state.ptr, &c.R, &c.G, &c.B, &c.A) {
		return Color{}, lastError(r.api, "GetRenderDrawColor")
	}
	return c, nil
}

// SetDrawColor sets the color used by Clear and draw operations.
func (r *Renderer) SetDrawColor(c Color) error {
	if err := r.guard(); err != nil {
		return err
	}
	if !r.api.SetRenderDrawColor(r.state.ptr, c.R, c.G, c.B, c.A) {
		return lastError(r.api, "SetRenderDrawColor")
	}
	return nil
}

// DrawColorFloat returns the draw color with float precision.
func (r *Renderer) DrawColorFloat() (ColorF32, error) {
	if err := r.guard(); err != nil {
		return ColorF32{}, err
	}
	var c ColorF32
	if !r.api.GetRenderDrawColorFloat(r.state.ptr, &c.R, &c.G, &c.B, &c.A) {
		return ColorF32{}, lastError(r.api, "GetRenderDrawColorFloat")
	}
	return c, nil
}

// SetDrawColorFloat sets the draw color with float precision.
func (r *Renderer) SetDrawColorFloat(c ColorF32) error {
	if err := r.guard(); err != nil {
		return err
	}
	if !r.api.SetRenderDrawColorFloat(r.state.ptr, c.R, c.G, c.B, c.A) {
		return lastError(r.api, "SetRenderDrawColorFloat")
	}
	return nil
}

// Clear fills the current target with the draw color.
func (r *Renderer) Clear() error {
	if err := r.guard(); err != nil {
		return err
	}
	if !r.api.RenderClear(r.state.ptr) {
		return lastError(r.api, "RenderClear")
	}
	return nil
}

// Present shows the composed frame. Not meaningful for software
// renderers, whose target surface is always up to date.
func (r *Renderer) Present() error {
	if err := r.guard(); err != nil {
		return err
	}
	if !r.api.RenderPresent(r.state.ptr) {
		return lastError(r.api, "RenderPresent")
	}
	return nil
}

// Texture is GPU-resident image data owned by a renderer. A texture is
// only usable with the renderer that created it, and only while that
// renderer is alive.
type Texture struct {
	api       *ffi.API
	state     *rendererState
	ptr       uintptr
	destroyed bool
}

// CreateTexture creates a blank texture.
func (r *Renderer) CreateTexture(format PixelFormat, access TextureAccess, w, h int32) (*Texture, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	ptr := r.api.CreateTexture(r.state.ptr, uint32(format), int32(access), w, h)
	if ptr == 0 {
		return nil, lastError(r.api, "CreateTexture")
	}
	return &Texture{api: r.api, state: r.state, ptr: ptr}, nil
}

// CreateTextureFromSurface uploads a surface into a new static
// texture.
func (r *Renderer) CreateTextureFromSurface(surface *SurfaceRef) (*Texture, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	surfPtr, err := surface.handle()
	if err != nil {
		return nil, err
	}
	ptr := r.api.CreateTextureFromSurface(r.state.ptr, surfPtr)
	if ptr == 0 {
		return nil, lastError(r.api, "CreateTextureFromSurface")
	}
	return &Texture{api: r.api, state: r.state, ptr: ptr}, nil
}

// guard rejects any native call on a destroyed or stale texture. The
// owning renderer's token is checked before every call, including
// Destroy, because the native texture died with its renderer.
func (t *Texture) guard() error {
	if t.destroyed {
		return ErrClosed
	}
	if t.state.destroyed {
		return ErrRendererDestroyed
	}
	return nil
}

// Destroy frees the texture. When the owning renderer is already
// destroyed the native side has freed it too, so only the wrapper is
// marked dead. Idempotent.
func (t *Texture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	if t.state.destroyed {
		Logger().Debug("sdl3: texture outlived its renderer, skipping native destroy")
		t.ptr = 0
		return
	}
	t.api.DestroyTexture(t.ptr)
	t.ptr = 0
}

// Size returns the texture size in pixels.
func (t *Texture) Size() (w, h float32, err error) {
	if err := t.guard(); err != nil {
		return 0, 0, err
	}
	if !t.api.GetTextureSize(t.ptr, &w, &h) {
		return 0, 0, lastError(t.api, "GetTextureSize")
	}
	return w, h, nil
}

// AlphaMod returns the texture-wide alpha modulation.
func (t *Texture) AlphaMod() (uint8, error) {
	if err := t.guard(); err != nil {
		return 0, err
	}
	var alpha uint8
	if !t.api.GetTextureAlphaMod(t.ptr, &alpha) {
		return 0, lastError(t.api, "GetTextureAlphaMod")
	}
	return alpha, nil
}

// SetAlphaMod sets the texture-wide alpha modulation.
func (t *Texture) SetAlphaMod(alpha uint8) error {
	if err := t.guard(); err != nil {
		return err
	}
	if !t.api.SetTextureAlphaMod(t.ptr, alpha) {
		return lastError(t.api, "SetTextureAlphaMod")
	}
	return nil
}

// ColorMod returns the texture-wide color modulation.
func (t *Texture) ColorMod() (red, green, blue uint8, err error) {
	if err := t.guard(); err != nil {
		return 0, 0, 0, err
	}
	if !t.api.GetTextureColorMod(t.ptr, &red, &green, &blue) {
		return 0, 0, 0, lastError(t.api, "GetTextureColorMod")
	}
	return red, green, blue, nil
}

// SetColorMod sets the texture-wide color modulation.
func (t *Texture) SetColorMod(red, green, blue uint8) error {
	if err := t.guard(); err != nil {
		return err
	}
	if !t.api.SetTextureColorMod(t.ptr, red, green, blue) {
		return lastError(t.api, "SetTextureColorMod")
	}
	return nil
}

// BlendMode returns the texture's validated blend mode.
func (t *Texture) BlendMode() (BlendMode, error) {
	if err := t.guard(); err != nil {
		return BlendModeNone, err
	}
	var mode uint32
	if !t.api.GetTextureBlendMode(t.ptr, &mode) {
		return BlendModeNone, lastError(t.api, "GetTextureBlendMode")
	}
	return BlendModeFromUint32(mode)
}

// SetBlendMode sets the blend mode used when the texture is drawn.
func (t *Texture) SetBlendMode(mode BlendMode) error {
	if err := t.guard(); err != nil {
		return err
	}
	if !t.api.SetTextureBlendMode(t.ptr, uint32(mode)) {
		return lastError(t.api, "SetTextureBlendMode")
	}
	return nil
}

// ScaleMode returns the texture's validated scale mode.
func (t *Texture) ScaleMode() (ScaleMode, error) {
	if err := t.guard(); err != nil {
		return ScaleModeNearest, err
	}
	var mode int32
	if !t.api.GetTextureScaleMode(t.ptr, &mode) {
		return ScaleModeNearest, lastError(t.api, "GetTextureScaleMode")
	}
	return ScaleModeFromInt32(mode)
}

// SetScaleMode sets the filter used when the texture is scaled.
func (t *Texture) SetScaleMode(mode ScaleMode) error {
	if err := t.guard(); err != nil {
		return err
	}
	if !t.api.SetTextureScaleMode(t.ptr, int32(mode)) {
		return lastError(t.api, "SetTextureScaleMode")
	}
	return nil
}

// checkOwnership verifies that t is usable with r. A destroyed or
// stale texture reports its own state before the ownership comparison.
func (r *Renderer) checkOwnership(t *Texture) error {
	if err := t.guard(); err != nil {
		return err
	}
	if t.state != r.state {
		return ErrTextureRendererMismatch
	}
	return nil
}

// RenderTexture draws srcRect of the texture (nil for all) into
// dstRect of the current target (nil for the whole target).
func (r *Renderer) RenderTexture(t *Texture, srcRect, dstRect *RectF32) error {
	if err := r.guard(); err != nil {
		return err
	}
	if err := r.checkOwnership(t); err != nil {
		return err
	}
	if !r.api.RenderTexture(r.state.ptr, t.ptr, optFRect(srcRect), optFRect(dstRect)) {
		return lastError(r.api, "RenderTexture")
	}
	return nil
}

// SetTarget redirects drawing into t, which must have been created by
// this renderer with TextureAccessTarget. While set, the renderer
// holds the texture; the previously held target (if any) is returned
// to the caller. Passing nil restores the default target.
func (r *Renderer) SetTarget(t *Texture) (*Texture, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	var ptr uintptr
	if t != nil {
		if err := r.checkOwnership(t); err != nil {
			return nil, err
		}
		ptr = t.ptr
	}
	if !r.api.SetRenderTarget(r.state.ptr, ptr) {
		return nil, lastError(r.api, "SetRenderTarget")
	}
	prev := r.target
	r.target = t
	return prev, nil
}

// Target returns the texture currently held as the render target, or
// nil when drawing to the default target.
func (r *Renderer) Target() *Texture { return r.target }
