package sdl3

import (
	"errors"
	"testing"
)

func newTestRenderer(t *testing.T, f *fakeNative) (*SDL, *Renderer) {
	t.Helper()
	sdl := mustInit(t, f)
	video, err := sdl.Video()
	if err != nil {
		t.Fatalf("Video: %v", err)
	}
	t.Cleanup(func() { video.Close() })
	win, err := video.CreateWindow("test", 800, 600, WindowHidden)
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	t.Cleanup(win.Destroy)
	r, err := win.CreateRenderer("")
	if err != nil {
		t.Fatalf("CreateRenderer: %v", err)
	}
	t.Cleanup(r.Destroy)
	return sdl, r
}

func TestTextureStaleAfterRendererDestroy(t *testing.T) {
	f := newFakeNative()
	_, r := newTestRenderer(t, f)

	tex, err := r.CreateTexture(PixelFormatRGBA8888, TextureAccessTarget, 64, 64)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	r.Destroy()

	if err := tex.SetAlphaMod(128); !errors.Is(err, ErrRendererDestroyed) {
		t.Fatalf("SetAlphaMod on stale texture: got %v, want ErrRendererDestroyed", err)
	}
	if _, _, err := tex.Size(); !errors.Is(err, ErrRendererDestroyed) {
		t.Fatalf("Size on stale texture: got %v, want ErrRendererDestroyed", err)
	}

	// Destroying a stale texture must not touch the native side: the
	// renderer already freed it.
	destroysBefore := f.textureDestroys
	tex.Destroy()
	tex.Destroy()
	if f.textureDestroys != destroysBefore {
		t.Fatalf("stale texture destroy reached the native library")
	}
}

func TestTextureDestroyBeforeRenderer(t *testing.T) {
	f := newFakeNative()
	_, r := newTestRenderer(t, f)

	tex, err := r.CreateTexture(PixelFormatRGBA8888, TextureAccessStatic, 16, 16)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	tex.Destroy()
	if f.textureDestroys != 1 {
		t.Fatalf("native texture destroys = %d, want 1", f.textureDestroys)
	}
	if err := tex.SetAlphaMod(1); !errors.Is(err, ErrClosed) {
		t.Fatalf("op on destroyed texture: got %v, want ErrClosed", err)
	}

	// Idempotent.
	tex.Destroy()
	if f.textureDestroys != 1 {
		t.Fatalf("double destroy reached the native library")
	}
}

func TestTextureRendererMismatch(t *testing.T) {
	f := newFakeNative()
	sdl, r1 := newTestRenderer(t, f)

	video, err := sdl.Video()
	if err != nil {
		t.Fatalf("Video: %v", err)
	}
	t.Cleanup(func() { video.Close() })
	win2, err := video.CreateWindow("other", 320, 240, WindowHidden)
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	t.Cleanup(win2.Destroy)
	r2, err := win2.CreateRenderer("")
	if err != nil {
		t.Fatalf("CreateRenderer: %v", err)
	}
	t.Cleanup(r2.Destroy)

	tex, err := r2.CreateTexture(PixelFormatRGBA8888, TextureAccessTarget, 8, 8)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	t.Cleanup(tex.Destroy)

	if err := r1.RenderTexture(tex, nil, nil); !errors.Is(err, ErrTextureRendererMismatch) {
		t.Fatalf("RenderTexture: got %v, want ErrTextureRendererMismatch", err)
	}
	if _, err := r1.SetTarget(tex); !errors.Is(err, ErrTextureRendererMismatch) {
		t.Fatalf("SetTarget: got %v, want ErrTextureRendererMismatch", err)
	}
}

func TestWindowDestroyInvalidatesRenderer(t *testing.T) {
	f := newFakeNative()
	sdl := mustInit(t, f)
	video, err := sdl.Video()
	if err != nil {
		t.Fatalf("Video: %v", err)
	}
	t.Cleanup(func() { video.Close() })
	win, err := video.CreateWindow("test", 800, 600, WindowHidden)
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	r, err := win.CreateRenderer("")
	if err != nil {
		t.Fatalf("CreateRenderer: %v", err)
	}
	tex, err := r.CreateTexture(PixelFormatRGBA8888, TextureAccessTarget, 8, 8)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	// The renderer must go down before the native window does.
	var order []string
	destroyRenderer := f.api.DestroyRenderer
	f.api.DestroyRenderer = func(ptr uintptr) { order = append(order, "renderer"); destroyRenderer(ptr) }
	destroyWindow := f.api.DestroyWindow
	f.api.DestroyWindow = func(ptr uintptr) { order = append(order, "window"); destroyWindow(ptr) }

	win.Destroy()
	if f.liveRenderers != 0 || f.liveWindows != 0 {
		t.Fatalf("live renderers = %d, windows = %d, want 0, 0", f.liveRenderers, f.liveWindows)
	}
	if len(order) != 2 || order[0] != "renderer" || order[1] != "window" {
		t.Fatalf("destroy order = %v, want [renderer window]", order)
	}

	clears := f.clearCalls
	if err := r.Clear(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Clear after window destroy: got %v, want ErrClosed", err)
	}
	if f.clearCalls != clears {
		t.Fatal("Clear on a dead renderer reached the native library")
	}
	if err := tex.SetAlphaMod(1); !errors.Is(err, ErrRendererDestroyed) {
		t.Fatalf("texture op: got %v, want ErrRendererDestroyed", err)
	}

	// The renderer's own Destroy is now a no-op.
	r.Destroy()
	if f.liveRenderers != 0 {
		t.Fatalf("live renderers after second destroy = %d, want 0", f.liveRenderers)
	}
}

func TestSurfaceDestroyInvalidatesSoftwareRenderer(t *testing.T) {
	f := newFakeNative()
	sdl := mustInit(t, f)
	video, err := sdl.Video()
	if err != nil {
		t.Fatalf("Video: %v", err)
	}
	t.Cleanup(func() { video.Close() })
	target, err := sdl.CreateSurface(64, 64, PixelFormatRGBA8888)
	if err != nil {
		t.Fatalf("CreateSurface: %v", err)
	}
	r, err := video.CreateSoftwareRenderer(target)
	if err != nil {
		t.Fatalf("CreateSoftwareRenderer: %v", err)
	}

	target.Destroy()
	if f.liveRenderers != 0 {
		t.Fatalf("live renderers = %d, want 0", f.liveRenderers)
	}
	if len(f.surfaces) != 0 {
		t.Fatalf("live surfaces = %d, want 0", len(f.surfaces))
	}

	clears := f.clearCalls
	if err := r.Clear(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Clear after target destroy: got %v, want ErrClosed", err)
	}
	if f.clearCalls != clears {
		t.Fatal("Clear on a dead renderer reached the native library")
	}
	r.Destroy() // idempotent
	if f.liveRenderers != 0 {
		t.Fatalf("live renderers after second destroy = %d, want 0", f.liveRenderers)
	}
}

func TestStaleTextureReportedBeforeMismatch(t *testing.T) {
	f := newFakeNative()
	sdl, r1 := newTestRenderer(t, f)

	video, err := sdl.Video()
	if err != nil {
		t.Fatalf("Video: %v", err)
	}
	t.Cleanup(func() { video.Close() })
	win2, err := video.CreateWindow("other", 320, 240, WindowHidden)
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	t.Cleanup(win2.Destroy)
	r2, err := win2.CreateRenderer("")
	if err != nil {
		t.Fatalf("CreateRenderer: %v", err)
	}
	tex, err := r2.CreateTexture(PixelFormatRGBA8888, TextureAccessTarget, 8, 8)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	// A texture that lost its renderer is stale first and foreign
	// second: using it with another renderer reports the staleness.
	r2.Destroy()
	if err := r1.RenderTexture(tex, nil, nil); !errors.Is(err, ErrRendererDestroyed) {
		t.Fatalf("RenderTexture: got %v, want ErrRendererDestroyed", err)
	}
	if _, err := r1.SetTarget(tex); !errors.Is(err, ErrRendererDestroyed) {
		t.Fatalf("SetTarget: got %v, want ErrRendererDestroyed", err)
	}

	// And a texture the caller destroyed reports that before anything
	// else.
	tex.Destroy()
	if err := r1.RenderTexture(tex, nil, nil); !errors.Is(err, ErrClosed) {
		t.Fatalf("RenderTexture on destroyed texture: got %v, want ErrClosed", err)
	}
}

func TestRenderTargetMove(t *testing.T) {
	f := newFakeNative()
	_, r := newTestRenderer(t, f)

	tex1, err := r.CreateTexture(PixelFormatRGBA8888, TextureAccessTarget, 8, 8)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	t.Cleanup(tex1.Destroy)
	tex2, err := r.CreateTexture(PixelFormatRGBA8888, TextureAccessTarget, 8, 8)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	t.Cleanup(tex2.Destroy)

	prev, err := r.SetTarget(tex1)
	if err != nil {
		t.Fatalf("SetTarget(tex1): %v", err)
	}
	if prev != nil {
		t.Fatalf("first SetTarget returned %v, want nil", prev)
	}
	if r.Target() != tex1 {
		t.Fatal("Target() should report the held texture")
	}

	// Swapping targets hands the held texture back to the caller.
	prev, err = r.SetTarget(tex2)
	if err != nil {
		t.Fatalf("SetTarget(tex2): %v", err)
	}
	if prev != tex1 {
		t.Fatal("swap should return the previously held texture")
	}

	prev, err = r.SetTarget(nil)
	if err != nil {
		t.Fatalf("SetTarget(nil): %v", err)
	}
	if prev != tex2 {
		t.Fatal("reset should return the previously held texture")
	}
	if r.Target() != nil {
		t.Fatal("Target() should be nil after reset")
	}
}

func TestRendererOpsAfterDestroy(t *testing.T) {
	f := newFakeNative()
	_, r := newTestRenderer(t, f)

	r.Destroy()
	r.Destroy() // idempotent
	if f.liveRenderers != 0 {
		t.Fatalf("live renderers = %d, want 0", f.liveRenderers)
	}

	if err := r.Clear(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Clear: got %v, want ErrClosed", err)
	}
	if _, err := r.CreateTexture(PixelFormatRGBA8888, TextureAccessStatic, 4, 4); !errors.Is(err, ErrClosed) {
		t.Fatalf("CreateTexture: got %v, want ErrClosed", err)
	}
}

func TestDrawColorRoundTrip(t *testing.T) {
	f := newFakeNative()
	_, r := newTestRenderer(t, f)

	want := Color{R: 10, G: 20, B: 30, A: 255}
	if err := r.SetDrawColor(want); err != nil {
		t.Fatalf("SetDrawColor: %v", err)
	}
	got, err := r.DrawColor()
	if err != nil {
		t.Fatalf("DrawColor: %v", err)
	}
	if got != want {
		t.Errorf("DrawColor = %v, want %v", got, want)
	}
}

func TestSoftwareRenderer(t *testing.T) {
	f := newFakeNative()
	sdl := mustInit(t, f)
	video, err := sdl.Video()
	if err != nil {
		t.Fatalf("Video: %v", err)
	}
	t.Cleanup(func() { video.Close() })

	target, err := sdl.CreateSurface(64, 64, PixelFormatRGBA8888)
	if err != nil {
		t.Fatalf("CreateSurface: %v", err)
	}
	t.Cleanup(target.Destroy)

	r, err := video.CreateSoftwareRenderer(target)
	if err != nil {
		t.Fatalf("CreateSoftwareRenderer: %v", err)
	}
	t.Cleanup(r.Destroy)

	if r.Window() != nil {
		t.Error("software renderer should have no window")
	}
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
}
