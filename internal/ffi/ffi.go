// Package ffi holds the native SDL3 function table and the C-layout
// types shared with it. Nothing above this package touches the dynamic
// library directly; the wrapper layer calls through an *API, which
// tests replace with an instrumented fake.
package ffi

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// API is the table of native entry points. Each field is registered
// against the SDL symbol of the same name with an SDL_ prefix.
//
// Conventions: native object pointers are uintptr on both sides of the
// table; struct parameters go by pointer; functions reporting failure
// do so via a bool result with the detail left in the native error
// slot (GetError).
type API struct {
	// Init and error channel.
	Init          func(flags uint32) bool
	Quit          func()
	InitSubSystem func(flags uint32) bool
	QuitSubSystem func(flags uint32)
	GetError      func() string
	ClearError    func() bool
	Free          func(mem uintptr)

	// Log routing.
	SetLogOutputFunction func(callback, userdata uintptr)

	// Video driver and displays.
	GetNumVideoDrivers              func() int32
	GetVideoDriver                  func(index int32) string
	GetCurrentVideoDriver           func() string
	GetDisplays                     func(count *int32) uintptr
	GetPrimaryDisplay               func() uint32
	GetDisplayName                  func(displayID uint32) string
	GetDisplayBounds                func(displayID uint32, rect *Rect) bool
	GetDisplayUsableBounds          func(displayID uint32, rect *Rect) bool
	GetDisplayForPoint              func(point *Point) uint32
	GetDisplayForRect               func(rect *Rect) uint32
	GetDisplayContentScale          func(displayID uint32) float32
	GetDesktopDisplayMode           func(displayID uint32) uintptr
	GetCurrentDisplayMode           func(displayID uint32) uintptr
	GetFullscreenDisplayModes       func(displayID uint32, count *int32) uintptr
	GetClosestFullscreenDisplayMode func(displayID uint32, w, h int32, refreshRate float32, includeHighDensity bool, mode *DisplayMode) bool
	GetCurrentDisplayOrientation    func(displayID uint32) uint32
	GetNaturalDisplayOrientation    func(displayID uint32) uint32
	ScreenSaverEnabled              func() bool
	EnableScreenSaver               func() bool
	DisableScreenSaver              func() bool
	GetSystemTheme                  func() int32

	// Windows.
	CreateWindow             func(title string, w, h int32, flags uint64) uintptr
	DestroyWindow            func(window uintptr)
	GetWindowID              func(window uintptr) uint32
	GetDisplayForWindow      func(window uintptr) uint32
	GetWindowDisplayScale    func(window uintptr) float32
	GetWindowPixelDensity    func(window uintptr) float32
	GetWindowPixelFormat     func(window uintptr) uint32
	GetWindowFlags           func(window uintptr) uint64
	GetWindowTitle           func(window uintptr) string
	SetWindowTitle           func(window uintptr, title string) bool
	GetWindowPosition        func(window uintptr, x, y *int32) bool
	SetWindowPosition        func(window uintptr, x, y int32) bool
	GetWindowSize            func(window uintptr, w, h *int32) bool
	SetWindowSize            func(window uintptr, w, h int32) bool
	GetWindowSizeInPixels    func(window uintptr, w, h *int32) bool
	GetWindowMaximumSize     func(window uintptr, w, h *int32) bool
	SetWindowMaximumSize     func(window uintptr, w, h int32) bool
	GetWindowMinimumSize     func(window uintptr, w, h *int32) bool
	SetWindowMinimumSize     func(window uintptr, w, h int32) bool
	GetWindowAspectRatio     func(window uintptr, minAspect, maxAspect *float32) bool
	SetWindowAspectRatio     func(window uintptr, minAspect, maxAspect float32) bool
	GetWindowBordersSize     func(window uintptr, top, left, bottom, right *int32) bool
	GetWindowSafeArea        func(window uintptr, rect *Rect) bool
	GetWindowOpacity         func(window uintptr) float32
	SetWindowOpacity         func(window uintptr, opacity float32) bool
	ShowWindow               func(window uintptr) bool
	HideWindow               func(window uintptr) bool
	RaiseWindow              func(window uintptr) bool
	MaximizeWindow           func(window uintptr) bool
	MinimizeWindow           func(window uintptr) bool
	RestoreWindow            func(window uintptr) bool
	SyncWindow               func(window uintptr) bool
	SetWindowFullscreen      func(window uintptr, fullscreen bool) bool
	GetWindowFullscreenMode  func(window uintptr) uintptr
	SetWindowFullscreenMode  func(window uintptr, mode *DisplayMode) bool
	SetWindowResizable       func(window uintptr, resizable bool) bool
	SetWindowBordered        func(window uintptr, bordered bool) bool
	SetWindowAlwaysOnTop     func(window uintptr, onTop bool) bool
	SetWindowFocusable       func(window uintptr, focusable bool) bool
	GetWindowKeyboardGrab    func(window uintptr) bool
	SetWindowKeyboardGrab    func(window uintptr, grabbed bool) bool
	GetWindowMouseGrab       func(window uintptr) bool
	SetWindowMouseGrab       func(window uintptr, grabbed bool) bool
	GetWindowMouseRect       func(window uintptr) uintptr
	SetWindowMouseRect       func(window uintptr, rect *Rect) bool
	SetWindowIcon            func(window uintptr, icon uintptr) bool
	SetWindowShape           func(window uintptr, shape uintptr) bool
	FlashWindow              func(window uintptr, operation uint32) bool
	ShowWindowSystemMenu     func(window uintptr, x, y int32) bool
	GetWindowSurface         func(window uintptr) uintptr
	WindowHasSurface         func(window uintptr) bool
	UpdateWindowSurface      func(window uintptr) bool
	UpdateWindowSurfaceRects func(window uintptr, rects *Rect, numRects int32) bool
	DestroyWindowSurface     func(window uintptr) bool
	GetWindowSurfaceVSync    func(window uintptr, vsync *int32) bool
	SetWindowSurfaceVSync    func(window uintptr, vsync int32) bool

	// Renderers and textures.
	CreateRenderer             func(window uintptr, name uintptr) uintptr
	CreateSoftwareRenderer     func(surface uintptr) uintptr
	DestroyRenderer            func(renderer uintptr)
	GetRendererName            func(renderer uintptr) string
	GetRenderOutputSize        func(renderer uintptr, w, h *int32) bool
	GetCurrentRenderOutputSize func(renderer uintptr, w, h *int32) bool
	GetRenderClipRect          func(renderer uintptr, rect *Rect) bool
	GetRenderColorScale        func(renderer uintptr, scale *float32) bool
	SetRenderColorScale        func(renderer uintptr, scale float32) bool
	GetRenderDrawBlendMode     func(renderer uintptr, blendMode *uint32) bool
	SetRenderDrawBlendMode     func(renderer uintptr, blendMode uint32) bool
	GetRenderDrawColor         func(renderer uintptr, r, g, b, a *uint8) bool
	SetRenderDrawColor         func(renderer uintptr, r, g, b, a uint8) bool
	GetRenderDrawColorFloat    func(renderer uintptr, r, g, b, a *float32) bool
	SetRenderDrawColorFloat    func(renderer uintptr, r, g, b, a float32) bool
	RenderClear                func(renderer uintptr) bool
	RenderPresent              func(renderer uintptr) bool
	SetRenderTarget            func(renderer, texture uintptr) bool
	RenderTexture              func(renderer, texture uintptr, srcRect, dstRect *FRect) bool
	CreateTexture              func(renderer uintptr, format uint32, access int32, w, h int32) uintptr
	CreateTextureFromSurface   func(renderer, surface uintptr) uintptr
	DestroyTexture             func(texture uintptr)
	GetTextureSize             func(texture uintptr, w, h *float32) bool
	GetTextureAlphaMod         func(texture uintptr, alpha *uint8) bool
	SetTextureAlphaMod         func(texture uintptr, alpha uint8) bool
	GetTextureColorMod         func(texture uintptr, r, g, b *uint8) bool
	SetTextureColorMod         func(texture uintptr, r, g, b uint8) bool
	GetTextureBlendMode        func(texture uintptr, blendMode *uint32) bool
	SetTextureBlendMode        func(texture uintptr, blendMode uint32) bool
	GetTextureScaleMode        func(texture uintptr, scaleMode *int32) bool
	SetTextureScaleMode        func(texture uintptr, scaleMode int32) bool

	// Surfaces.
	CreateSurface             func(w, h int32, format uint32) uintptr
	CreateSurfaceFrom         func(w, h int32, format uint32, pixels uintptr, pitch int32) uintptr
	DestroySurface            func(surface uintptr)
	DuplicateSurface          func(surface uintptr) uintptr
	ConvertSurface            func(surface uintptr, format uint32) uintptr
	ScaleSurface              func(surface uintptr, w, h int32, scaleMode int32) uintptr
	LockSurface               func(surface uintptr) bool
	UnlockSurface             func(surface uintptr)
	LoadBMP                   func(file string) uintptr
	SaveBMP                   func(surface uintptr, file string) bool
	LoadBMPIO                 func(src uintptr, closeIO bool) uintptr
	SaveBMPIO                 func(surface, dst uintptr, closeIO bool) bool
	BlitSurface               func(src uintptr, srcRect *Rect, dst uintptr, dstRect *Rect) bool
	BlitSurfaceScaled         func(src uintptr, srcRect *Rect, dst uintptr, dstRect *Rect, scaleMode int32) bool
	BlitSurfaceTiled          func(src uintptr, srcRect *Rect, dst uintptr, dstRect *Rect) bool
	BlitSurfaceTiledWithScale func(src uintptr, srcRect *Rect, scale float32, scaleMode int32, dst uintptr, dstRect *Rect) bool
	BlitSurface9Grid          func(src uintptr, srcRect *Rect, leftWidth, rightWidth, topHeight, bottomHeight int32, scale float32, scaleMode int32, dst uintptr, dstRect *Rect) bool
	FillSurfaceRect           func(surface uintptr, rect *Rect, color uint32) bool
	FillSurfaceRects          func(surface uintptr, rects *Rect, count int32, color uint32) bool
	FlipSurface               func(surface uintptr, flip int32) bool
	ClearSurface              func(surface uintptr, r, g, b, a float32) bool
	PremultiplySurfaceAlpha   func(surface uintptr, linear bool) bool
	ReadSurfacePixel          func(surface uintptr, x, y int32, r, g, b, a *uint8) bool
	ReadSurfacePixelFloat     func(surface uintptr, x, y int32, r, g, b, a *float32) bool
	WriteSurfacePixel         func(surface uintptr, x, y int32, r, g, b, a uint8) bool
	WriteSurfacePixelFloat    func(surface uintptr, x, y int32, r, g, b, a float32) bool
	GetSurfaceAlphaMod        func(surface uintptr, alpha *uint8) bool
	SetSurfaceAlphaMod        func(surface uintptr, alpha uint8) bool
	GetSurfaceColorMod        func(surface uintptr, r, g, b *uint8) bool
	SetSurfaceColorMod        func(surface uintptr, r, g, b uint8) bool
	GetSurfaceBlendMode       func(surface uintptr, blendMode *uint32) bool
	SetSurfaceBlendMode       func(surface uintptr, blendMode uint32) bool
	GetSurfaceClipRect        func(surface uintptr, rect *Rect) bool
	SetSurfaceClipRect        func(surface uintptr, rect *Rect) bool
	GetSurfaceColorKey        func(surface uintptr, key *uint32) bool
	SetSurfaceColorKey        func(surface uintptr, enabled bool, key uint32) bool
	SurfaceHasColorKey        func(surface uintptr) bool
	SurfaceHasRLE             func(surface uintptr) bool
	SetSurfaceRLE             func(surface uintptr, enabled bool) bool
	GetSurfaceColorspace      func(surface uintptr) uint32
	GetSurfacePalette         func(surface uintptr) uintptr
	SetSurfacePalette         func(surface, palette uintptr) bool
	MapSurfaceRGB             func(surface uintptr, r, g, b uint8) uint32
	MapSurfaceRGBA            func(surface uintptr, r, g, b, a uint8) uint32

	// Pixel formats and palettes.
	GetPixelFormatName     func(format uint32) string
	GetPixelFormatDetails  func(format uint32) uintptr
	GetMasksForPixelFormat func(format uint32, bpp *int32, rmask, gmask, bmask, amask *uint32) bool
	GetPixelFormatForMasks func(bpp int32, rmask, gmask, bmask, amask uint32) uint32
	MapRGB                 func(details, palette uintptr, r, g, b uint8) uint32
	MapRGBA                func(details, palette uintptr, r, g, b, a uint8) uint32
	GetRGB                 func(pixel uint32, details, palette uintptr, r, g, b *uint8)
	GetRGBA                func(pixel uint32, details, palette uintptr, r, g, b, a *uint8)
	CreatePalette          func(ncolors int32) uintptr
	DestroyPalette         func(palette uintptr)
	SetPaletteColors       func(palette uintptr, colors *Color, firstColor, ncolors int32) bool

	// Events.
	PollEvent func(event *Event) bool
	PushEvent func(event *Event) bool

	// Keyboard.
	GetKeyboards         func(count *int32) uintptr
	GetKeyboardNameForID func(instanceID uint32) string
	GetKeyboardState     func(numKeys *int32) uintptr

	// Cameras.
	GetCameras                func(count *int32) uintptr
	GetCameraName             func(instanceID uint32) string
	GetCameraPosition         func(instanceID uint32) int32
	GetCameraSupportedFormats func(instanceID uint32, count *int32) uintptr
	GetCurrentCameraDriver    func() string
	GetNumCameraDrivers       func() int32
	GetCameraDriver           func(index int32) string
	OpenCamera                func(instanceID uint32, spec *CameraSpec) uintptr
	CloseCamera               func(camera uintptr)
	GetCameraID               func(camera uintptr) uint32
	GetCameraPermissionState  func(camera uintptr) int32
	GetCameraFormat           func(camera uintptr, spec *CameraSpec) bool
	AcquireCameraFrame        func(camera uintptr, timestampNS *uint64) uintptr
	ReleaseCameraFrame        func(camera, frame uintptr)

	// Clipboard.
	HasClipboardText        func() bool
	GetClipboardText        func() uintptr
	SetClipboardText        func(text string) bool
	HasPrimarySelectionText func() bool
	GetPrimarySelectionText func() uintptr
	SetPrimarySelectionText func(text string) bool
	HasClipboardData        func(mimeType string) bool
	GetClipboardData        func(mimeType string, size *uintptr) uintptr
	ClearClipboardData      func() bool
	GetClipboardMimeTypes   func(numMimeTypes *uintptr) uintptr

	// IO streams.
	IOFromFile     func(file, mode string) uintptr
	IOFromMem      func(mem uintptr, size uintptr) uintptr
	IOFromConstMem func(mem uintptr, size uintptr) uintptr
	CloseIO        func(context uintptr) bool

	// Blend modes.
	ComposeCustomBlendMode func(srcColorFactor, dstColorFactor uint32, colorOperation uint32, srcAlphaFactor, dstAlphaFactor uint32, alphaOperation uint32) uint32
}

// Load opens the SDL3 shared library and populates the function table.
// An empty path tries the platform's conventional library names in
// order.
func Load(path string) (*API, error) {
	candidates := []string{path}
	if path == "" {
		candidates = defaultLibraryNames
	}
	var handle uintptr
	var err error
	for _, name := range candidates {
		handle, err = openLibrary(name)
		if err == nil && handle != 0 {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("ffi: load SDL3: %w", err)
	}
	if handle == 0 {
		return nil, fmt.Errorf("ffi: load SDL3: no library found")
	}
	api := &API{}
	if err := api.register(handle); err != nil {
		return nil, err
	}
	return api, nil
}

// register binds every field of the table to its native symbol.
// RegisterLibFunc panics on a missing symbol, so the whole pass runs
// under a recover that converts the panic into an error naming the
// symbol.
func (a *API) register(lib uintptr) (err error) {
	var current string
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ffi: register %s: %v", current, r)
		}
	}()
	reg := func(fptr any, name string) {
		current = name
		purego.RegisterLibFunc(fptr, lib, name)
	}

	reg(&a.Init, "SDL_Init")
	reg(&a.Quit, "SDL_Quit")
	reg(&a.InitSubSystem, "SDL_InitSubSystem")
	reg(&a.QuitSubSystem, "SDL_QuitSubSystem")
	reg(&a.GetError, "SDL_GetError")
	reg(&a.ClearError, "SDL_ClearError")
	reg(&a.Free, "SDL_free")

	reg(&a.SetLogOutputFunction, "SDL_SetLogOutputFunction")

	reg(&a.GetNumVideoDrivers, "SDL_GetNumVideoDrivers")
	reg(&a.GetVideoDriver, "SDL_GetVideoDriver")
	reg(&a.GetCurrentVideoDriver, "SDL_GetCurrentVideoDriver")
	reg(&a.GetDisplays, "SDL_GetDisplays")
	reg(&a.GetPrimaryDisplay, "SDL_GetPrimaryDisplay")
	reg(&a.GetDisplayName, "SDL_GetDisplayName")
	reg(&a.GetDisplayBounds, "SDL_GetDisplayBounds")
	reg(&a.GetDisplayUsableBounds, "SDL_GetDisplayUsableBounds")
	reg(&a.GetDisplayForPoint, "SDL_GetDisplayForPoint")
	reg(&a.GetDisplayForRect, "SDL_GetDisplayForRect")
	reg(&a.GetDisplayContentScale, "SDL_GetDisplayContentScale")
	reg(&a.GetDesktopDisplayMode, "SDL_GetDesktopDisplayMode")
	reg(&a.GetCurrentDisplayMode, "SDL_GetCurrentDisplayMode")
	reg(&a.GetFullscreenDisplayModes, "SDL_GetFullscreenDisplayModes")
	reg(&a.GetClosestFullscreenDisplayMode, "SDL_GetClosestFullscreenDisplayMode")
	reg(&a.GetCurrentDisplayOrientation, "SDL_GetCurrentDisplayOrientation")
	reg(&a.GetNaturalDisplayOrientation, "SDL_GetNaturalDisplayOrientation")
	reg(&a.ScreenSaverEnabled, "SDL_ScreenSaverEnabled")
	reg(&a.EnableScreenSaver, "SDL_EnableScreenSaver")
	reg(&a.DisableScreenSaver, "SDL_DisableScreenSaver")
	reg(&a.GetSystemTheme, "SDL_GetSystemTheme")

	reg(&a.CreateWindow, "SDL_CreateWindow")
	reg(&a.DestroyWindow, "SDL_DestroyWindow")
	reg(&a.GetWindowID, "SDL_GetWindowID")
	reg(&a.GetDisplayForWindow, "SDL_GetDisplayForWindow")
	reg(&a.GetWindowDisplayScale, "SDL_GetWindowDisplayScale")
	reg(&a.GetWindowPixelDensity, "SDL_GetWindowPixelDensity")
	reg(&a.GetWindowPixelFormat, "SDL_GetWindowPixelFormat")
	reg(&a.GetWindowFlags, "SDL_GetWindowFlags")
	reg(&a.GetWindowTitle, "SDL_GetWindowTitle")
	reg(&a.SetWindowTitle, "SDL_SetWindowTitle")
	reg(&a.GetWindowPosition, "SDL_GetWindowPosition")
	reg(&a.SetWindowPosition, "SDL_SetWindowPosition")
	reg(&a.GetWindowSize, "SDL_GetWindowSize")
	reg(&a.SetWindowSize, "SDL_SetWindowSize")
	reg(&a.GetWindowSizeInPixels, "SDL_GetWindowSizeInPixels")
	reg(&a.GetWindowMaximumSize, "SDL_GetWindowMaximumSize")
	reg(&a.SetWindowMaximumSize, "SDL_SetWindowMaximumSize")
	reg(&a.GetWindowMinimumSize, "SDL_GetWindowMinimumSize")
	reg(&a.SetWindowMinimumSize, "SDL_SetWindowMinimumSize")
	reg(&a.GetWindowAspectRatio, "SDL_GetWindowAspectRatio")
	reg(&a.SetWindowAspectRatio, "SDL_SetWindowAspectRatio")
	reg(&a.GetWindowBordersSize, "SDL_GetWindowBordersSize")
	reg(&a.GetWindowSafeArea, "SDL_GetWindowSafeArea")
	reg(&a.GetWindowOpacity, "SDL_GetWindowOpacity")
	reg(&a.SetWindowOpacity, "SDL_SetWindowOpacity")
	reg(&a.ShowWindow, "SDL_ShowWindow")
	reg(&a.HideWindow, "SDL_HideWindow")
	reg(&a.RaiseWindow, "SDL_RaiseWindow")
	reg(&a.MaximizeWindow, "SDL_MaximizeWindow")
	reg(&a.MinimizeWindow, "SDL_MinimizeWindow")
	reg(&a.RestoreWindow, "SDL_RestoreWindow")
	reg(&a.SyncWindow, "SDL_SyncWindow")
	reg(&a.SetWindowFullscreen, "SDL_SetWindowFullscreen")
	reg(&a.GetWindowFullscreenMode, "SDL_GetWindowFullscreenMode")
	reg(&a.SetWindowFullscreenMode, "SDL_SetWindowFullscreenMode")
	reg(&a.SetWindowResizable, "SDL_SetWindowResizable")
	reg(&a.SetWindowBordered, "SDL_SetWindowBordered")
	reg(&a.SetWindowAlwaysOnTop, "SDL_SetWindowAlwaysOnTop")
	reg(&a.SetWindowFocusable, "SDL_SetWindowFocusable")
	reg(&a.GetWindowKeyboardGrab, "SDL_GetWindowKeyboardGrab")
	reg(&a.SetWindowKeyboardGrab, "SDL_SetWindowKeyboardGrab")
	reg(&a.GetWindowMouseGrab, "SDL_GetWindowMouseGrab")
	reg(&a.SetWindowMouseGrab, "SDL_SetWindowMouseGrab")
	reg(&a.GetWindowMouseRect, "SDL_GetWindowMouseRect")
	reg(&a.SetWindowMouseRect, "SDL_SetWindowMouseRect")
	reg(&a.SetWindowIcon, "SDL_SetWindowIcon")
	reg(&a.SetWindowShape, "SDL_SetWindowShape")
	reg(&a.FlashWindow, "SDL_FlashWindow")
	reg(&a.ShowWindowSystemMenu, "SDL_ShowWindowSystemMenu")
	reg(&a.GetWindowSurface, "SDL_GetWindowSurface")
	reg(&a.WindowHasSurface, "SDL_WindowHasSurface")
	reg(&a.UpdateWindowSurface, "SDL_UpdateWindowSurface")
	reg(&a.UpdateWindowSurfaceRects, "SDL_UpdateWindowSurfaceRects")
	reg(&a.DestroyWindowSurface, "SDL_DestroyWindowSurface")
	reg(&a.GetWindowSurfaceVSync, "SDL_GetWindowSurfaceVSync")
	reg(&a.SetWindowSurfaceVSync, "SDL_SetWindowSurfaceVSync")

	reg(&a.CreateRenderer, "SDL_CreateRenderer")
	reg(&a.CreateSoftwareRenderer, "SDL_CreateSoftwareRenderer")
	reg(&a.DestroyRenderer, "SDL_DestroyRenderer")
	reg(&a.GetRendererName, "SDL_GetRendererName")
	reg(&a.GetRenderOutputSize, "SDL_GetRenderOutputSize")
	reg(&a.GetCurrentRenderOutputSize, "SDL_GetCurrentRenderOutputSize")
	reg(&a.GetRenderClipRect, "SDL_GetRenderClipRect")
	reg(&a.GetRenderColorScale, "SDL_GetRenderColorScale")
	reg(&a.SetRenderColorScale, "SDL_SetRenderColorScale")
	reg(&a.GetRenderDrawBlendMode, "SDL_GetRenderDrawBlendMode")
	reg(&a.SetRenderDrawBlendMode, "SDL_SetRenderDrawBlendMode")
	reg(&a.GetRenderDrawColor, "SDL_GetRenderDrawColor")
	reg(&a.SetRenderDrawColor, "SDL_SetRenderDrawColor")
	reg(&a.GetRenderDrawColorFloat, "SDL_GetRenderDrawColorFloat")
	reg(&a.SetRenderDrawColorFloat, "SDL_SetRenderDrawColorFloat")
	reg(&a.RenderClear, "SDL_RenderClear")
	reg(&a.RenderPresent, "SDL_RenderPresent")
	reg(&a.SetRenderTarget, "SDL_SetRenderTarget")
	reg(&a.RenderTexture, "SDL_RenderTexture")
	reg(&a.CreateTexture, "SDL_CreateTexture")
	reg(&a.CreateTextureFromSurface, "SDL_CreateTextureFromSurface")
	reg(&a.DestroyTexture, "SDL_DestroyTexture")
	reg(&a.GetTextureSize, "SDL_GetTextureSize")
	reg(&a.GetTextureAlphaMod, "SDL_GetTextureAlphaMod")
	reg(&a.SetTextureAlphaMod, "SDL_SetTextureAlphaMod")
	reg(&a.GetTextureColorMod, "SDL_GetTextureColorMod")
	reg(&a.SetTextureColorMod, "SDL_SetTextureColorMod")
	reg(&a.GetTextureBlendMode, "SDL_GetTextureBlendMode")
	reg(&a.SetTextureBlendMode, "SDL_SetTextureBlendMode")
	reg(&a.GetTextureScaleMode, "SDL_GetTextureScaleMode")
	reg(&a.SetTextureScaleMode, "SDL_SetTextureScaleMode")

	reg(&a.CreateSurface, "SDL_CreateSurface")
	reg(&a.CreateSurfaceFrom, "SDL_CreateSurfaceFrom")
	reg(&a.DestroySurface, "SDL_DestroySurface")
	reg(&a.DuplicateSurface, "SDL_DuplicateSurface")
	reg(&a.ConvertSurface, "SDL_ConvertSurface")
	reg(&a.ScaleSurface, "SDL_ScaleSurface")
	reg(&a.LockSurface, "SDL_LockSurface")
	reg(&a.UnlockSurface, "SDL_UnlockSurface")
	reg(&a.LoadBMP, "SDL_LoadBMP")
	reg(&a.SaveBMP, "SDL_SaveBMP")
	reg(&a.LoadBMPIO, "SDL_LoadBMP_IO")
	reg(&a.SaveBMPIO, "SDL_SaveBMP_IO")
	reg(&a.BlitSurface, "SDL_BlitSurface")
	reg(&a.BlitSurfaceScaled, "SDL_BlitSurfaceScaled")
	reg(&a.BlitSurfaceTiled, "SDL_BlitSurfaceTiled")
	reg(&a.BlitSurfaceTiledWithScale, "SDL_BlitSurfaceTiledWithScale")
	reg(&a.BlitSurface9Grid, "SDL_BlitSurface9Grid")
	reg(&a.FillSurfaceRect, "SDL_FillSurfaceRect")
	reg(&a.FillSurfaceRects, "SDL_FillSurfaceRects")
	reg(&a.FlipSurface, "SDL_FlipSurface")
	reg(&a.ClearSurface, "SDL_ClearSurface")
	reg(&a.PremultiplySurfaceAlpha, "SDL_PremultiplySurfaceAlpha")
	reg(&a.ReadSurfacePixel, "SDL_ReadSurfacePixel")
	reg(&a.ReadSurfacePixelFloat, "SDL_ReadSurfacePixelFloat")
	reg(&a.WriteSurfacePixel, "SDL_WriteSurfacePixel")
	reg(&a.WriteSurfacePixelFloat, "SDL_WriteSurfacePixelFloat")
	reg(&a.GetSurfaceAlphaMod, "SDL_GetSurfaceAlphaMod")
	reg(&a.SetSurfaceAlphaMod, "SDL_SetSurfaceAlphaMod")
	reg(&a.GetSurfaceColorMod, "SDL_GetSurfaceColorMod")
	reg(&a.SetSurfaceColorMod, "SDL_SetSurfaceColorMod")
	reg(&a.GetSurfaceBlendMode, "SDL_GetSurfaceBlendMode")
	reg(&a.SetSurfaceBlendMode, "SDL_SetSurfaceBlendMode")
	reg(&a.GetSurfaceClipRect, "SDL_GetSurfaceClipRect")
	reg(&a.SetSurfaceClipRect, "SDL_SetSurfaceClipRect")
	reg(&a.GetSurfaceColorKey, "SDL_GetSurfaceColorKey")
	reg(&a.SetSurfaceColorKey, "SDL_SetSurfaceColorKey")
	reg(&a.SurfaceHasColorKey, "SDL_SurfaceHasColorKey")
	reg(&a.SurfaceHasRLE, "SDL_SurfaceHasRLE")
	reg(&a.SetSurfaceRLE, "SDL_SetSurfaceRLE")
	reg(&a.GetSurfaceColorspace, "SDL_GetSurfaceColorspace")
	reg(&a.GetSurfacePalette, "SDL_GetSurfacePalette")
	reg(&a.SetSurfacePalette, "SDL_SetSurfacePalette")
	reg(&a.MapSurfaceRGB, "SDL_MapSurfaceRGB")
	reg(&a.MapSurfaceRGBA, "SDL_MapSurfaceRGBA")

	reg(&a.GetPixelFormatName, "SDL_GetPixelFormatName")
	reg(&a.GetPixelFormatDetails, "SDL_GetPixelFormatDetails")
	reg(&a.GetMasksForPixelFormat, "SDL_GetMasksForPixelFormat")
	reg(&a.GetPixelFormatForMasks, "SDL_GetPixelFormatForMasks")
	reg(&a.MapRGB, "SDL_MapRGB")
	reg(&a.MapRGBA, "SDL_MapRGBA")
	reg(&a.GetRGB, "SDL_GetRGB")
	reg(&a.GetRGBA, "SDL_GetRGBA")
	reg(&a.CreatePalette, "SDL_CreatePalette")
	reg(&a.DestroyPalette, "SDL_DestroyPalette")
	reg(&a.SetPaletteColors, "SDL_SetPaletteColors")

	reg(&a.PollEvent, "SDL_PollEvent")
	reg(&a.PushEvent, "SDL_PushEvent")

	reg(&a.GetKeyboards, "SDL_GetKeyboards")
	reg(&a.GetKeyboardNameForID, "SDL_GetKeyboardNameForID")
	reg(&a.GetKeyboardState, "SDL_GetKeyboardState")

	reg(&a.GetCameras, "SDL_GetCameras")
	reg(&a.GetCameraName, "SDL_GetCameraName")
	reg(&a.GetCameraPosition, "SDL_GetCameraPosition")
	reg(&a.GetCameraSupportedFormats, "SDL_GetCameraSupportedFormats")
	reg(&a.GetCurrentCameraDriver, "SDL_GetCurrentCameraDriver")
	reg(&a.GetNumCameraDrivers, "SDL_GetNumCameraDrivers")
	reg(&a.GetCameraDriver, "SDL_GetCameraDriver")
	reg(&a.OpenCamera, "SDL_OpenCamera")
	reg(&a.CloseCamera, "SDL_CloseCamera")
	reg(&a.GetCameraID, "SDL_GetCameraID")
	reg(&a.GetCameraPermissionState, "SDL_GetCameraPermissionState")
	reg(&a.GetCameraFormat, "SDL_GetCameraFormat")
	reg(&a.AcquireCameraFrame, "SDL_AcquireCameraFrame")
	reg(&a.ReleaseCameraFrame, "SDL_ReleaseCameraFrame")

	reg(&a.HasClipboardText, "SDL_HasClipboardText")
	reg(&a.GetClipboardText, "SDL_GetClipboardText")
	reg(&a.SetClipboardText, "SDL_SetClipboardText")
	reg(&a.HasPrimarySelectionText, "SDL_HasPrimarySelectionText")
	reg(&a.GetPrimarySelectionText, "SDL_GetPrimarySelectionText")
	reg(&a.SetPrimarySelectionText, "SDL_SetPrimarySelectionText")
	reg(&a.HasClipboardData, "SDL_HasClipboardData")
	reg(&a.GetClipboardData, "SDL_GetClipboardData")
	reg(&a.ClearClipboardData, "SDL_ClearClipboardData")
	reg(&a.GetClipboardMimeTypes, "SDL_GetClipboardMimeTypes")

	reg(&a.IOFromFile, "SDL_IOFromFile")
	reg(&a.IOFromMem, "SDL_IOFromMem")
	reg(&a.IOFromConstMem, "SDL_IOFromConstMem")
	reg(&a.CloseIO, "SDL_CloseIO")

	reg(&a.ComposeCustomBlendMode, "SDL_ComposeCustomBlendMode")

	return nil
}
