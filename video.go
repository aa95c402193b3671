package sdl3

import (
	"unsafe"

	"github.com/gosdl/sdl3/internal/ffi"
)

// WindowFlags control window creation and reflect window state. Values
// match the native window flag bits.
type WindowFlags uint64

const (
	WindowFullscreen       WindowFlags = 0x0000000000000001
	WindowOpenGL           WindowFlags = 0x0000000000000002
	WindowOccluded         WindowFlags = 0x0000000000000004
	WindowHidden           WindowFlags = 0x0000000000000008
	WindowBorderless       WindowFlags = 0x0000000000000010
	WindowResizable        WindowFlags = 0x0000000000000020
	WindowMinimized        WindowFlags = 0x0000000000000040
	WindowMaximized        WindowFlags = 0x0000000000000080
	WindowMouseGrabbed     WindowFlags = 0x0000000000000100
	WindowInputFocus       WindowFlags = 0x0000000000000200
	WindowMouseFocus       WindowFlags = 0x0000000000000400
	WindowExternal         WindowFlags = 0x0000000000000800
	WindowModal            WindowFlags = 0x0000000000001000
	WindowHighPixelDensity WindowFlags = 0x0000000000002000
	WindowMouseCapture     WindowFlags = 0x0000000000004000
	WindowAlwaysOnTop      WindowFlags = 0x0000000000010000
	WindowUtility          WindowFlags = 0x0000000000020000
	WindowTooltip          WindowFlags = 0x0000000000040000
	WindowPopupMenu        WindowFlags = 0x0000000000080000
	WindowKeyboardGrabbed  WindowFlags = 0x0000000000100000
	WindowVulkan           WindowFlags = 0x0000000010000000
	WindowMetal            WindowFlags = 0x0000000020000000
	WindowTransparent      WindowFlags = 0x0000000040000000
	WindowNotFocusable     WindowFlags = 0x0000000080000000
)

// DisplayOrientation describes how a display is rotated.
type DisplayOrientation int32

const (
	OrientationUnknown DisplayOrientation = iota
	OrientationLandscape
	OrientationLandscapeFlipped
	OrientationPortrait
	OrientationPortraitFlipped
)

// DisplayOrientationFromUint32 validates a raw orientation value.
func DisplayOrientationFromUint32(v uint32) (DisplayOrientation, error) {
	if v > uint32(OrientationPortraitFlipped) {
		return OrientationUnknown, &UnknownEnumError{Kind: "display orientation", Value: uint64(v)}
	}
	return DisplayOrientation(v), nil
}

// SystemTheme is the OS-level light/dark preference.
type SystemTheme int32

const (
	ThemeUnknown SystemTheme = iota
	ThemeLight
	ThemeDark
)

// FlashOperation selects how Window.Flash requests attention.
type FlashOperation uint32

const (
	FlashCancel FlashOperation = iota
	FlashBriefly
	FlashUntilFocused
)

// Window surface vsync values accepted by SetSurfaceVSync.
const (
	WindowSurfaceVSyncDisabled = 0
	WindowSurfaceVSyncAdaptive = -1
)

// DisplayMode is a value copy of a native display mode.
type DisplayMode struct {
	DisplayID              uint32
	Format                 PixelFormat
	Width, Height          int32
	PixelDensity           float32
	RefreshRate            float32
	RefreshRateNumerator   int32
	RefreshRateDenominator int32
}

// displayModeFromPtr copies and validates a native display mode. The
// native struct is owned by the library; only the copy escapes.
func displayModeFromPtr(ptr uintptr) (DisplayMode, error) {
	raw := (*ffi.DisplayMode)(unsafe.Pointer(ptr))
	format, err := PixelFormatFromUint32(raw.Format)
	if err != nil {
		return DisplayMode{}, err
	}
	return DisplayMode{
		DisplayID:              raw.DisplayID,
		Format:                 format,
		Width:                  raw.W,
		Height:                 raw.H,
		PixelDensity:           raw.PixelDensity,
		RefreshRate:            raw.RefreshRate,
		RefreshRateNumerator:   raw.RefreshRateNumerator,
		RefreshRateDenominator: raw.RefreshRateDenominator,
	}, nil
}

func (m DisplayMode) toFFI() ffi.DisplayMode {
	return ffi.DisplayMode{
		DisplayID:              m.DisplayID,
		Format:                 uint32(m.Format),
		W:                      m.Width,
		H:                      m.Height,
		PixelDensity:           m.PixelDensity,
		RefreshRate:            m.RefreshRate,
		RefreshRateNumerator:   m.RefreshRateNumerator,
		RefreshRateDenominator: m.RefreshRateDenominator,
	}
}

// VideoSubsystem is a handle on the native video subsystem. It creates
// windows and exposes display, clipboard and keyboard queries.
type VideoSubsystem struct {
	sub *subsystem
}

// Close quits this handle's video subsystem reference. Idempotent.
func (v *VideoSubsystem) Close() error { return v.sub.close() }

// sentinelError distinguishes a legitimate sentinel result from a
// failure: the native error slot was cleared before the call, so a
// non-empty slot afterwards means failure.
func sentinelError(api *ffi.API, op string) error {
	if msg := api.GetError(); msg != "" {
		return &NativeError{Op: op, Message: msg}
	}
	return nil
}

// VideoDrivers lists the compiled-in video driver names.
func (v *VideoSubsystem) VideoDrivers() ([]string, error) {
	if err := v.sub.alive(); err != nil {
		return nil, err
	}
	api := v.sub.api()
	n := api.GetNumVideoDrivers()
	drivers := make([]string, 0, n)
	for i := int32(0); i < n; i++ {
		drivers = append(drivers, api.GetVideoDriver(i))
	}
	return drivers, nil
}

// CurrentVideoDriver returns the name of the active video driver.
func (v *VideoSubsystem) CurrentVideoDriver() (string, error) {
	if err := v.sub.alive(); err != nil {
		return "", err
	}
	api := v.sub.api()
	api.ClearError()
	name := api.GetCurrentVideoDriver()
	if name == "" {
		if err := sentinelError(api, "GetCurrentVideoDriver"); err != nil {
			return "", err
		}
	}
	return name, nil
}

// Display identifies a connected display.
type Display struct {
	v  *VideoSubsystem
	id uint32
}

// ID returns the native display instance ID.
func (d Display) ID() uint32 { return d.id }

// Displays lists the connected displays.
func (v *VideoSubsystem) Displays() ([]Display, error) {
	if err := v.sub.alive(); err != nil {
		return nil, err
	}
	api := v.sub.api()
	var count int32
	ptr := api.GetDisplays(&count)
	if ptr == 0 {
		return nil, lastError(api, "GetDisplays")
	}
	defer api.Free(ptr)
	ids := unsafe.Slice((*uint32)(unsafe.Pointer(ptr)), int(count))
	displays := make([]Display, count)
	for i, id := range ids {
		displays[i] = Display{v: v, id: id}
	}
	return displays, nil
}

// PrimaryDisplay returns the primary display.
func (v *VideoSubsystem) PrimaryDisplay() (Display, error) {
	if err := v.sub.alive(); err != nil {
		return Display{}, err
	}
	api := v.sub.api()
	id := api.GetPrimaryDisplay()
	if id == 0 {
		return Display{}, lastError(api, "GetPrimaryDisplay")
	}
	return Display{v: v, id: id}, nil
}

// DisplayForPoint returns the display containing p.
func (v *VideoSubsystem) DisplayForPoint(p Point) (Display, error) {
	if err := v.sub.alive(); err != nil {
		return Display{}, err
	}
	api := v.sub.api()
	fp := p.toFFI()
	id := api.GetDisplayForPoint(&fp)
	if id == 0 {
		return Display{}, lastError(api, "GetDisplayForPoint")
	}
	return Display{v: v, id: id}, nil
}

// DisplayForRect returns the display with the largest overlap with r.
func (v *VideoSubsystem) DisplayForRect(r Rect) (Display, error) {
	if err := v.sub.alive(); err != nil {
		return Display{}, err
	}
	api := v.sub.api()
	fr := r.toFFI()
	id := api.GetDisplayForRect(&fr)
	if id == 0 {
		return Display{}, lastError(api, "GetDisplayForRect")
	}
	return Display{v: v, id: id}, nil
}

// Name returns the display's human-readable name.
func (d Display) Name() (string, error) {
	if err := d.v.sub.alive(); err != nil {
		return "", err
	}
	api := d.v.sub.api()
	api.ClearError()
	name := api.GetDisplayName(d.id)
	if name == "" {
		if err := sentinelError(api, "GetDisplayName"); err != nil {
			return "", err
		}
	}
	return name, nil
}

// Bounds returns the display's desktop-space bounds.
func (d Display) Bounds() (Rect, error) {
	if err := d.v.sub.alive(); err != nil {
		return Rect{}, err
	}
	api := d.v.sub.api()
	var r ffi.Rect
	if !api.GetDisplayBounds(d.id, &r) {
		return Rect{}, lastError(api, "GetDisplayBounds")
	}
	return rectFromFFI(r), nil
}

// UsableBounds returns the bounds minus OS chrome (docks, menu bars).
func (d Display) UsableBounds() (Rect, error) {
	if err := d.v.sub.alive(); err != nil {
		return Rect{}, err
	}
	api := d.v.sub.api()
	var r ffi.Rect
	if !api.GetDisplayUsableBounds(d.id, &r) {
		return Rect{}, lastError(api, "GetDisplayUsableBounds")
	}
	return rectFromFFI(r), nil
}

// ContentScale returns the display's UI scale factor.
func (d Display) ContentScale() (float32, error) {
	if err := d.v.sub.alive(); err != nil {
		return 0, err
	}
	api := d.v.sub.api()
	api.ClearError()
	scale := api.GetDisplayContentScale(d.id)
	if scale == 0 {
		if err := sentinelError(api, "GetDisplayContentScale"); err != nil {
			return 0, err
		}
	}
	return scale, nil
}

// DesktopMode returns the display mode of the desktop.
func (d Display) DesktopMode() (DisplayMode, error) {
	if err := d.v.sub.alive(); err != nil {
		return DisplayMode{}, err
	}
	api := d.v.sub.api()
	ptr := api.GetDesktopDisplayMode(d.id)
	if ptr == 0 {
		return DisplayMode{}, lastError(api, "GetDesktopDisplayMode")
	}
	return displayModeFromPtr(ptr)
}

// CurrentMode returns the display's current mode.
func (d Display) CurrentMode() (DisplayMode, error) {
	if err := d.v.sub.alive(); err != nil {
		return DisplayMode{}, err
	}
	api := d.v.sub.api()
	ptr := api.GetCurrentDisplayMode(d.id)
	if ptr == 0 {
		return DisplayMode{}, lastError(api, "GetCurrentDisplayMode")
	}
	return displayModeFromPtr(ptr)
}

// FullscreenModes lists the display's fullscreen modes, best first.
func (d Display) FullscreenModes() ([]DisplayMode, error) {
	if err := d.v.sub.alive(); err != nil {
		return nil, err
	}
	api := d.v.sub.api()
	var count int32
	ptr := api.GetFullscreenDisplayModes(d.id, &count)
	if ptr == 0 {
		return nil, lastError(api, "GetFullscreenDisplayModes")
	}
	defer api.Free(ptr)
	ptrs := unsafe.Slice((*uintptr)(unsafe.Pointer(ptr)), int(count))
	modes := make([]DisplayMode, 0, count)
	for _, mp := range ptrs {
		mode, err := displayModeFromPtr(mp)
		if err != nil {
			return nil, err
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

// ClosestFullscreenMode returns the fullscreen mode closest to the
// requested size and refresh rate.
func (d Display) ClosestFullscreenMode(w, h int32, refreshRate float32, includeHighDensity bool) (DisplayMode, error) {
	if err := d.v.sub.alive(); err != nil {
		return DisplayMode{}, err
	}
	api := d.v.sub.api()
	var raw ffi.DisplayMode
	if !api.GetClosestFullscreenDisplayMode(d.id, w, h, refreshRate, includeHighDensity, &raw) {
		return DisplayMode{}, lastError(api, "GetClosestFullscreenDisplayMode")
	}
	format, err := PixelFormatFromUint32(raw.Format)
	if err != nil {
		return DisplayMode{}, err
	}
	return DisplayMode{
		DisplayID:              raw.DisplayID,
		Format:                 format,
		Width:                  raw.W,
		Height:                 raw.H,
		PixelDensity:           raw.PixelDensity,
		RefreshRate:            raw.RefreshRate,
		RefreshRateNumerator:   raw.RefreshRateNumerator,
		RefreshRateDenominator: raw.RefreshRateDenominator,
	}, nil
}

// Orientation returns the display's current orientation.
func (d Display) Orientation() (DisplayOrientation, error) {
	if err := d.v.sub.alive(); err != nil {
		return OrientationUnknown, err
	}
	return DisplayOrientationFromUint32(d.v.sub.api().GetCurrentDisplayOrientation(d.id))
}

// NaturalOrientation returns the display's natural orientation.
func (d Display) NaturalOrientation() (DisplayOrientation, error) {
	if err := d.v.sub.alive(); err != nil {
		return OrientationUnknown, err
	}
	return DisplayOrientationFromUint32(d.v.sub.api().GetNaturalDisplayOrientation(d.id))
}

// ScreenSaverEnabled reports whether the OS screensaver may run.
func (v *VideoSubsystem) ScreenSaverEnabled() (bool, error) {
	if err := v.sub.alive(); err != nil {
		return false, err
	}
	return v.sub.api().ScreenSaverEnabled(), nil
}

// EnableScreenSaver allows the OS screensaver to run.
func (v *VideoSubsystem) EnableScreenSaver() error {
	if err := v.sub.alive(); err != nil {
		return err
	}
	if !v.sub.api().EnableScreenSaver() {
		return lastError(v.sub.api(), "EnableScreenSaver")
	}
	return nil
}

// DisableScreenSaver prevents the OS screensaver from running.
func (v *VideoSubsystem) DisableScreenSaver() error {
	if err := v.sub.alive(); err != nil {
		return err
	}
	if !v.sub.api().DisableScreenSaver() {
		return lastError(v.sub.api(), "DisableScreenSaver")
	}
	return nil
}

// SystemTheme returns the OS light/dark preference.
func (v *VideoSubsystem) SystemTheme() (SystemTheme, error) {
	if err := v.sub.alive(); err != nil {
		return ThemeUnknown, err
	}
	t := v.sub.api().GetSystemTheme()
	if t < 0 || t > int32(ThemeDark) {
		return ThemeUnknown, &UnknownEnumError{Kind: "system theme", Value: uint64(uint32(t))}
	}
	return SystemTheme(t), nil
}

// Window is an owned native window. All methods return ErrClosed after
// Destroy.
type Window struct {
	v         *VideoSubsystem
	ptr       uintptr
	renderer  *Renderer
	destroyed bool
}

// CreateWindow creates a window with the given title, size and flags.
// The window keeps the native library alive until destroyed.
func (v *VideoSubsystem) CreateWindow(title string, w, h int32, flags WindowFlags) (*Window, error) {
	if err := v.sub.alive(); err != nil {
		return nil, err
	}
	api := v.sub.api()
	ptr := api.CreateWindow(title, w, h, uint64(flags))
	if ptr == 0 {
		return nil, lastError(api, "CreateWindow")
	}
	v.sub.core.retain()
	return &Window{v: v, ptr: ptr}, nil
}

// Destroy destroys the window. A renderer created for this window is
// destroyed first, since the native window destroy invalidates it; its
// live Texture values turn stale as with Renderer.Destroy. Idempotent;
// never fails.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	if w.renderer != nil {
		w.renderer.Destroy()
		w.renderer = nil
	}
	w.v.sub.api().DestroyWindow(w.ptr)
	w.ptr = 0
	w.v.sub.core.release()
}

func (w *Window) guard() (*ffi.API, error) {
	if w.destroyed {
		return nil, ErrClosed
	}
	return w.v.sub.api(), nil
}

// ID returns the window's instance ID.
func (w *Window) ID() (uint32, error) {
	api, err := w.guard()
	if err != nil {
		return 0, err
	}
	api.ClearError()
	id := api.GetWindowID(w.ptr)
	if id == 0 {
		if err := sentinelError(api, "GetWindowID"); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// Display returns the display the window is on.
func (w *Window) Display() (Display, error) {
	api, err := w.guard()
	if err != nil {
		return Display{}, err
	}
	id := api.GetDisplayForWindow(w.ptr)
	if id == 0 {
		return Display{}, lastError(api, "GetDisplayForWindow")
	}
	return Display{v: w.v, id: id}, nil
}

// DisplayScale returns the window's UI scale factor.
func (w *Window) DisplayScale() (float32, error) {
	api, err := w.guard()
	if err != nil {
		return 0, err
	}
	api.ClearError()
	scale := api.GetWindowDisplayScale(w.ptr)
	if scale == 0 {
		if err := sentinelError(api, "GetWindowDisplayScale"); err != nil {
			return 0, err
		}
	}
	return scale, nil
}

// PixelDensity returns the pixel density relative to logical size.
func (w *Window) PixelDensity() (float32, error) {
	api, err := w.guard()
	if err != nil {
		return 0, err
	}
	api.ClearError()
	density := api.GetWindowPixelDensity(w.ptr)
	if density == 0 {
		if err := sentinelError(api, "GetWindowPixelDensity"); err != nil {
			return 0, err
		}
	}
	return density, nil
}

// PixelFormat returns the window's pixel format.
func (w *Window) PixelFormat() (PixelFormat, error) {
	api, err := w.guard()
	if err != nil {
		return PixelFormatUnknown, err
	}
	raw := api.GetWindowPixelFormat(w.ptr)
	if raw == uint32(PixelFormatUnknown) {
		return PixelFormatUnknown, lastError(api, "GetWindowPixelFormat")
	}
	return PixelFormatFromUint32(raw)
}

// Flags returns the window's current state flags.
func (w *Window) Flags() (WindowFlags, error) {
	api, err := w.guard()
	if err != nil {
		return 0, err
	}
	return WindowFlags(api.GetWindowFlags(w.ptr)), nil
}

// Title returns the window title.
func (w *Window) Title() (string, error) {
	api, err := w.guard()
	if err != nil {
		return "", err
	}
	return api.GetWindowTitle(w.ptr), nil
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowTitle(w.ptr, title) {
		return lastError(api, "SetWindowTitle")
	}
	return nil
}

// Position returns the window origin in desktop space.
func (w *Window) Position() (x, y int32, err error) {
	api, err := w.guard()
	if err != nil {
		return 0, 0, err
	}
	if !api.GetWindowPosition(w.ptr, &x, &y) {
		return 0, 0, lastError(api, "GetWindowPosition")
	}
	return x, y, nil
}

// SetPosition moves the window.
func (w *Window) SetPosition(x, y int32) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowPosition(w.ptr, x, y) {
		return lastError(api, "SetWindowPosition")
	}
	return nil
}

// Size returns the window's logical size.
func (w *Window) Size() (width, height int32, err error) {
	api, err := w.guard()
	if err != nil {
		return 0, 0, err
	}
	if !api.GetWindowSize(w.ptr, &width, &height) {
		return 0, 0, lastError(api, "GetWindowSize")
	}
	return width, height, nil
}

// SetSize resizes the window.
func (w *Window) SetSize(width, height int32) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowSize(w.ptr, width, height) {
		return lastError(api, "SetWindowSize")
	}
	return nil
}

// SizeInPixels returns the window's size in physical pixels.
func (w *Window) SizeInPixels() (width, height int32, err error) {
	api, err := w.guard()
	if err != nil {
		return 0, 0, err
	}
	if !api.GetWindowSizeInPixels(w.ptr, &width, &height) {
		return 0, 0, lastError(api, "GetWindowSizeInPixels")
	}
	return width, height, nil
}

// MaximumSize returns the window's maximum logical size.
func (w *Window) MaximumSize() (width, height int32, err error) {
	api, err := w.guard()
	if err != nil {
		return 0, 0, err
	}
	if !api.GetWindowMaximumSize(w.ptr, &width, &height) {
		return 0, 0, lastError(api, "GetWindowMaximumSize")
	}
	return width, height, nil
}

// SetMaximumSize limits the window's logical size.
func (w *Window) SetMaximumSize(width, height int32) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowMaximumSize(w.ptr, width, height) {
		return lastError(api, "SetWindowMaximumSize")
	}
	return nil
}

// MinimumSize returns the window's minimum logical size.
func (w *Window) MinimumSize() (width, height int32, err error) {
	api, err := w.guard()
	if err != nil {
		return 0, 0, err
	}
	if !api.GetWindowMinimumSize(w.ptr, &width, &height) {
		return 0, 0, lastError(api, "GetWindowMinimumSize")
	}
	return width, height, nil
}

// SetMinimumSize limits the window's logical size.
func (w *Window) SetMinimumSize(width, height int32) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowMinimumSize(w.ptr, width, height) {
		return lastError(api, "SetWindowMinimumSize")
	}
	return nil
}

// AspectRatio returns the window's aspect ratio limits.
func (w *Window) AspectRatio() (minAspect, maxAspect float32, err error) {
	api, err := w.guard()
	if err != nil {
		return 0, 0, err
	}
	if !api.GetWindowAspectRatio(w.ptr, &minAspect, &maxAspect) {
		return 0, 0, lastError(api, "GetWindowAspectRatio")
	}
	return minAspect, maxAspect, nil
}

// SetAspectRatio constrains the window's aspect ratio.
func (w *Window) SetAspectRatio(minAspect, maxAspect float32) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowAspectRatio(w.ptr, minAspect, maxAspect) {
		return lastError(api, "SetWindowAspectRatio")
	}
	return nil
}

// BordersSize returns the size of the window decorations.
func (w *Window) BordersSize() (top, left, bottom, right int32, err error) {
	api, err := w.guard()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if !api.GetWindowBordersSize(w.ptr, &top, &left, &bottom, &right) {
		return 0, 0, 0, 0, lastError(api, "GetWindowBordersSize")
	}
	return top, left, bottom, right, nil
}

// SafeArea returns the region safe from OS overlays (notches etc).
func (w *Window) SafeArea() (Rect, error) {
	api, err := w.guard()
	if err != nil {
		return Rect{}, err
	}
	var r ffi.Rect
	if !api.GetWindowSafeArea(w.ptr, &r) {
		return Rect{}, lastError(api, "GetWindowSafeArea")
	}
	return rectFromFFI(r), nil
}

// Opacity returns the window opacity in [0, 1].
func (w *Window) Opacity() (float32, error) {
	api, err := w.guard()
	if err != nil {
		return 0, err
	}
	api.ClearError()
	opacity := api.GetWindowOpacity(w.ptr)
	if opacity == -1 {
		if err := sentinelError(api, "GetWindowOpacity"); err != nil {
			return 0, err
		}
	}
	return opacity, nil
}

// SetOpacity sets the window opacity in [0, 1].
func (w *Window) SetOpacity(opacity float32) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowOpacity(w.ptr, opacity) {
		return lastError(api, "SetWindowOpacity")
	}
	return nil
}

// Show makes the window visible.
func (w *Window) Show() error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.ShowWindow(w.ptr) {
		return lastError(api, "ShowWindow")
	}
	return nil
}

// Hide makes the window invisible.
func (w *Window) Hide() error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.HideWindow(w.ptr) {
		return lastError(api, "HideWindow")
	}
	return nil
}

// Raise brings the window above other windows and requests focus.
func (w *Window) Raise() error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.RaiseWindow(w.ptr) {
		return lastError(api, "RaiseWindow")
	}
	return nil
}

// Maximize makes the window as large as possible.
func (w *Window) Maximize() error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.MaximizeWindow(w.ptr) {
		return lastError(api, "MaximizeWindow")
	}
	return nil
}

// Minimize iconifies the window.
func (w *Window) Minimize() error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.MinimizeWindow(w.ptr) {
		return lastError(api, "MinimizeWindow")
	}
	return nil
}

// Restore undoes Maximize or Minimize.
func (w *Window) Restore() error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.RestoreWindow(w.ptr) {
		return lastError(api, "RestoreWindow")
	}
	return nil
}

// Sync blocks until pending window state changes have been applied.
func (w *Window) Sync() error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SyncWindow(w.ptr) {
		return lastError(api, "SyncWindow")
	}
	return nil
}

// SetFullscreen switches between fullscreen and windowed.
func (w *Window) SetFullscreen(fullscreen bool) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowFullscreen(w.ptr, fullscreen) {
		return lastError(api, "SetWindowFullscreen")
	}
	return nil
}

// FullscreenMode returns the mode used in exclusive fullscreen, or nil
// for borderless fullscreen desktop.
func (w *Window) FullscreenMode() (*DisplayMode, error) {
	api, err := w.guard()
	if err != nil {
		return nil, err
	}
	ptr := api.GetWindowFullscreenMode(w.ptr)
	if ptr == 0 {
		return nil, nil
	}
	mode, err := displayModeFromPtr(ptr)
	if err != nil {
		return nil, err
	}
	return &mode, nil
}

// SetFullscreenMode selects the exclusive fullscreen mode; nil selects
// borderless fullscreen desktop.
func (w *Window) SetFullscreenMode(mode *DisplayMode) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	var raw *ffi.DisplayMode
	if mode != nil {
		m := mode.toFFI()
		raw = &m
	}
	if !api.SetWindowFullscreenMode(w.ptr, raw) {
		return lastError(api, "SetWindowFullscreenMode")
	}
	return nil
}

// SetResizable toggles user resizing.
func (w *Window) SetResizable(resizable bool) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowResizable(w.ptr, resizable) {
		return lastError(api, "SetWindowResizable")
	}
	return nil
}

// SetBordered toggles window decorations.
func (w *Window) SetBordered(bordered bool) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowBordered(w.ptr, bordered) {
		return lastError(api, "SetWindowBordered")
	}
	return nil
}

// SetAlwaysOnTop keeps the window above others.
func (w *Window) SetAlwaysOnTop(onTop bool) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowAlwaysOnTop(w.ptr, onTop) {
		return lastError(api, "SetWindowAlwaysOnTop")
	}
	return nil
}

// SetFocusable toggles whether the window can take input focus.
func (w *Window) SetFocusable(focusable bool) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowFocusable(w.ptr, focusable) {
		return lastError(api, "SetWindowFocusable")
	}
	return nil
}

// KeyboardGrab reports whether the window has grabbed the keyboard.
func (w *Window) KeyboardGrab() (bool, error) {
	api, err := w.guard()
	if err != nil {
		return false, err
	}
	return api.GetWindowKeyboardGrab(w.ptr), nil
}

// SetKeyboardGrab grabs or releases the keyboard.
func (w *Window) SetKeyboardGrab(grabbed bool) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowKeyboardGrab(w.ptr, grabbed) {
		return lastError(api, "SetWindowKeyboardGrab")
	}
	return nil
}

// MouseGrab reports whether the window has grabbed the mouse.
func (w *Window) MouseGrab() (bool, error) {
	api, err := w.guard()
	if err != nil {
		return false, err
	}
	return api.GetWindowMouseGrab(w.ptr), nil
}

// SetMouseGrab grabs or releases the mouse.
func (w *Window) SetMouseGrab(grabbed bool) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowMouseGrab(w.ptr, grabbed) {
		return lastError(api, "SetWindowMouseGrab")
	}
	return nil
}

// MouseRect returns the mouse confinement rectangle, or nil when the
// mouse is unconfined.
func (w *Window) MouseRect() (*Rect, error) {
	api, err := w.guard()
	if err != nil {
		return nil, err
	}
	ptr := api.GetWindowMouseRect(w.ptr)
	if ptr == 0 {
		return nil, nil
	}
	r := rectFromFFI(*(*ffi.Rect)(unsafe.Pointer(ptr)))
	return &r, nil
}

// SetMouseRect confines the mouse to r; nil removes the confinement.
func (w *Window) SetMouseRect(r *Rect) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowMouseRect(w.ptr, optRect(r)) {
		return lastError(api, "SetWindowMouseRect")
	}
	return nil
}

// SetIcon sets the window icon from a surface.
func (w *Window) SetIcon(icon *SurfaceRef) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	ptr, err := icon.handle()
	if err != nil {
		return err
	}
	if !api.SetWindowIcon(w.ptr, ptr) {
		return lastError(api, "SetWindowIcon")
	}
	return nil
}

// SetShape sets the window's shape from a surface's alpha channel; nil
// restores the rectangular shape.
func (w *Window) SetShape(shape *SurfaceRef) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	var ptr uintptr
	if shape != nil {
		ptr, err = shape.handle()
		if err != nil {
			return err
		}
	}
	if !api.SetWindowShape(w.ptr, ptr) {
		return lastError(api, "SetWindowShape")
	}
	return nil
}

// Flash requests the user's attention.
func (w *Window) Flash(op FlashOperation) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.FlashWindow(w.ptr, uint32(op)) {
		return lastError(api, "FlashWindow")
	}
	return nil
}

// ShowSystemMenu pops up the window manager's menu at (x, y).
func (w *Window) ShowSystemMenu(x, y int32) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.ShowWindowSystemMenu(w.ptr, x, y) {
		return lastError(api, "ShowWindowSystemMenu")
	}
	return nil
}

// Surface returns a borrowed view of the window's framebuffer surface.
// The view stays owned by the window; do not destroy it.
func (w *Window) Surface() (*SurfaceRef, error) {
	api, err := w.guard()
	if err != nil {
		return nil, err
	}
	ptr := api.GetWindowSurface(w.ptr)
	if ptr == 0 {
		return nil, lastError(api, "GetWindowSurface")
	}
	return &SurfaceRef{api: api, core: w.v.sub.core, ptr: ptr}, nil
}

// HasSurface reports whether a framebuffer surface exists.
func (w *Window) HasSurface() (bool, error) {
	api, err := w.guard()
	if err != nil {
		return false, err
	}
	return api.WindowHasSurface(w.ptr), nil
}

// UpdateSurface copies the framebuffer surface to the screen.
func (w *Window) UpdateSurface() error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.UpdateWindowSurface(w.ptr) {
		return lastError(api, "UpdateWindowSurface")
	}
	return nil
}

// UpdateSurfaceRects copies only the given areas to the screen.
func (w *Window) UpdateSurfaceRects(rects []Rect) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if len(rects) == 0 {
		return nil
	}
	native := make([]ffi.Rect, len(rects))
	for i, r := range rects {
		native[i] = r.toFFI()
	}
	if !api.UpdateWindowSurfaceRects(w.ptr, &native[0], int32(len(native))) {
		return lastError(api, "UpdateWindowSurfaceRects")
	}
	return nil
}

// DestroySurface drops the framebuffer surface; any SurfaceRef from
// Surface becomes invalid.
func (w *Window) DestroySurface() error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.DestroyWindowSurface(w.ptr) {
		return lastError(api, "DestroyWindowSurface")
	}
	return nil
}

// SurfaceVSync returns the framebuffer vsync interval.
func (w *Window) SurfaceVSync() (int32, error) {
	api, err := w.guard()
	if err != nil {
		return 0, err
	}
	var vsync int32
	if !api.GetWindowSurfaceVSync(w.ptr, &vsync) {
		return 0, lastError(api, "GetWindowSurfaceVSync")
	}
	return vsync, nil
}

// SetSurfaceVSync sets the framebuffer vsync interval.
func (w *Window) SetSurfaceVSync(vsync int32) error {
	api, err := w.guard()
	if err != nil {
		return err
	}
	if !api.SetWindowSurfaceVSync(w.ptr, vsync) {
		return lastError(api, "SetWindowSurfaceVSync")
	}
	return nil
}
