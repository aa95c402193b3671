package sdl3

import (
	"testing"
	"unsafe"

	"github.com/gosdl/sdl3/internal/ffi"
)

// fakeNative is an in-process stand-in for the native function table.
// It counts lifecycle calls and keeps just enough per-object state for
// the wrapper's bookkeeping to be observable from tests.
type fakeNative struct {
	api *ffi.API

	errMsg string

	initCalls int
	quitCalls int
	subInits  map[uint32]int
	subQuits  map[uint32]int

	nextHandle uintptr

	liveWindows     int
	liveRenderers   int
	liveTextures    int
	textureDestroys int

	windowTitles map[uintptr]string
	drawColors   map[uintptr][4]uint8
	targets      map[uintptr]uintptr
	clearCalls   int
	presentCalls int

	opacity float32

	surfaces map[uintptr]*fakeSurface

	eventQueue []ffi.Event
	pushed     []uint32

	cameraIDs        []uint32
	cameraPermission int32
	frameHandle      uintptr
	frameTimestamp   uint64
}

type fakeSurface struct {
	raw       *ffi.Surface
	pix       []byte
	fillCalls int
	lockCalls int
	pixels    map[[2]int32]Color
}

func (f *fakeNative) handle() uintptr {
	f.nextHandle += 16
	return f.nextHandle
}

func (f *fakeNative) newSurface(w, h int32, format uint32) uintptr {
	pix := make([]byte, int(w)*int(h)*4)
	raw := &ffi.Surface{Format: format, W: w, H: h, Pitch: w * 4}
	if len(pix) > 0 {
		raw.Pixels = uintptr(unsafe.Pointer(&pix[0]))
	}
	s := &fakeSurface{raw: raw, pix: pix, pixels: map[[2]int32]Color{}}
	ptr := uintptr(unsafe.Pointer(raw))
	f.surfaces[ptr] = s
	return ptr
}

func newFakeNative() *fakeNative {
	f := &fakeNative{
		subInits:     map[uint32]int{},
		subQuits:     map[uint32]int{},
		windowTitles: map[uintptr]string{},
		drawColors:   map[uintptr][4]uint8{},
		targets:      map[uintptr]uintptr{},
		surfaces:     map[uintptr]*fakeSurface{},
		opacity:      1,
	}
	f.api = &ffi.API{
		Init:          func(flags uint32) bool { f.initCalls++; return true },
		Quit:          func() { f.quitCalls++ },
		InitSubSystem: func(flags uint32) bool { f.subInits[flags]++; return true },
		QuitSubSystem: func(flags uint32) { f.subQuits[flags]++ },
		GetError:      func() string { return f.errMsg },
		ClearError:    func() bool { f.errMsg = ""; return true },
		Free:          func(uintptr) {},

		CreateWindow: func(title string, w, h int32, flags uint64) uintptr {
			f.liveWindows++
			ptr := f.handle()
			f.windowTitles[ptr] = title
			return ptr
		},
		DestroyWindow:    func(ptr uintptr) { f.liveWindows--; delete(f.windowTitles, ptr) },
		GetWindowTitle:   func(ptr uintptr) string { return f.windowTitles[ptr] },
		SetWindowTitle:   func(ptr uintptr, title string) bool { f.windowTitles[ptr] = title; return true },
		GetWindowID:      func(ptr uintptr) uint32 { return uint32(ptr) },
		GetWindowOpacity: func(ptr uintptr) float32 { return f.opacity },
		SetWindowOpacity: func(ptr uintptr, opacity float32) bool { f.opacity = opacity; return true },

		CreateRenderer: func(window, name uintptr) uintptr {
			f.liveRenderers++
			return f.handle()
		},
		CreateSoftwareRenderer: func(surface uintptr) uintptr {
			f.liveRenderers++
			return f.handle()
		},
		DestroyRenderer: func(ptr uintptr) { f.liveRenderers-- },
		GetRendererName: func(ptr uintptr) string { return "fake" },
		SetRenderDrawColor: func(ptr uintptr, r, g, b, a uint8) bool {
			f.drawColors[ptr] = [4]uint8{r, g, b, a}
			return true
		},
		GetRenderDrawColor: func(ptr uintptr, r, g, b, a *uint8) bool {
			c := f.drawColors[ptr]
			*r, *g, *b, *a = c[0], c[1], c[2], c[3]
			return true
		},
		RenderClear:   func(ptr uintptr) bool { f.clearCalls++; return true },
		RenderPresent: func(ptr uintptr) bool { f.presentCalls++; return true },
		SetRenderTarget: func(renderer, texture uintptr) bool {
			f.targets[renderer] = texture
			return true
		},
		RenderTexture: func(renderer, texture uintptr, src, dst *ffi.FRect) bool { return true },
		CreateTexture: func(renderer uintptr, format uint32, access, w, h int32) uintptr {
			f.liveTextures++
			return f.handle()
		},
		CreateTextureFromSurface: func(renderer, surface uintptr) uintptr {
			f.liveTextures++
			return f.handle()
		},
		DestroyTexture:     func(ptr uintptr) { f.liveTextures--; f.textureDestroys++ },
		GetTextureAlphaMod: func(ptr uintptr, alpha *uint8) bool { *alpha = 255; return true },
		SetTextureAlphaMod: func(ptr uintptr, alpha uint8) bool { return true },

		CreateSurface: func(w, h int32, format uint32) uintptr {
			return f.newSurface(w, h, format)
		},
		DestroySurface: func(ptr uintptr) { delete(f.surfaces, ptr) },
		ConvertSurface: func(ptr uintptr, format uint32) uintptr {
			src := f.surfaces[ptr]
			return f.newSurface(src.raw.W, src.raw.H, format)
		},
		DuplicateSurface: func(ptr uintptr) uintptr {
			src := f.surfaces[ptr]
			return f.newSurface(src.raw.W, src.raw.H, src.raw.Format)
		},
		FillSurfaceRect: func(ptr uintptr, rect *ffi.Rect, color uint32) bool {
			f.surfaces[ptr].fillCalls++
			return true
		},
		LockSurface:   func(ptr uintptr) bool { f.surfaces[ptr].lockCalls++; return true },
		UnlockSurface: func(ptr uintptr) {},
		WriteSurfacePixel: func(ptr uintptr, x, y int32, r, g, b, a uint8) bool {
			f.surfaces[ptr].pixels[[2]int32{x, y}] = Color{r, g, b, a}
			return true
		},
		ReadSurfacePixel: func(ptr uintptr, x, y int32, r, g, b, a *uint8) bool {
			c := f.surfaces[ptr].pixels[[2]int32{x, y}]
			*r, *g, *b, *a = c.R, c.G, c.B, c.A
			return true
		},

		PollEvent: func(ev *ffi.Event) bool {
			if len(f.eventQueue) == 0 {
				return false
			}
			*ev = f.eventQueue[0]
			f.eventQueue = f.eventQueue[1:]
			return true
		},
		PushEvent: func(ev *ffi.Event) bool {
			f.pushed = append(f.pushed, ev.Type())
			return true
		},

		GetCameras: func(count *int32) uintptr {
			if len(f.cameraIDs) == 0 {
				return 0
			}
			*count = int32(len(f.cameraIDs))
			return uintptr(unsafe.Pointer(&f.cameraIDs[0]))
		},
		OpenCamera:               func(id uint32, spec *ffi.CameraSpec) uintptr { return f.handle() },
		CloseCamera:              func(ptr uintptr) {},
		GetCameraPermissionState: func(ptr uintptr) int32 { return f.cameraPermission },
		AcquireCameraFrame: func(ptr uintptr, ts *uint64) uintptr {
			*ts = f.frameTimestamp
			return f.frameHandle
		},
		ReleaseCameraFrame: func(cam, frame uintptr) { f.frameHandle = 0 },

		ComposeCustomBlendMode: func(sc, dc, co, sa, da, ao uint32) uint32 {
			return sc | dc<<4 | co<<8 | sa<<12 | da<<16 | ao<<20
		},
	}
	return f
}

// mustInit opens an SDL handle over the fake and schedules its Close.
func mustInit(t *testing.T, f *fakeNative) *SDL {
	t.Helper()
	sdl, err := initWithAPI(f.api)
	if err != nil {
		t.Fatalf("initWithAPI: %v", err)
	}
	t.Cleanup(func() { sdl.Close() })
	return sdl
}
