package sdl3

import (
	"unsafe"

	"github.com/gosdl/sdl3/internal/ffi"
)

// CameraPosition describes where a camera faces on the device.
type CameraPosition int32

const (
	CameraPositionUnknown CameraPosition = iota
	CameraPositionFrontFacing
	CameraPositionBackFacing
)

// CameraPermission is the user's answer to the camera access prompt.
type CameraPermission int32

const (
	CameraPermissionDenied   CameraPermission = -1
	CameraPermissionWaiting  CameraPermission = 0
	CameraPermissionApproved CameraPermission = 1
)

// CameraSpec describes a capture format. The framerate is the
// numerator/denominator fraction in frames per second.
type CameraSpec struct {
	Format               PixelFormat
	Colorspace           Colorspace
	Width, Height        int32
	FramerateNumerator   int32
	FramerateDenominator int32
}

// Framerate returns the spec's framerate in frames per second.
func (s CameraSpec) Framerate() (float64, error) {
	if s.FramerateDenominator == 0 {
		return 0, ErrZeroFramerateDenominator
	}
	return float64(s.FramerateNumerator) / float64(s.FramerateDenominator), nil
}

func (s CameraSpec) toFFI() ffi.CameraSpec {
	return ffi.CameraSpec{
		Format:               uint32(s.Format),
		Colorspace:           uint32(s.Colorspace),
		Width:                s.Width,
		Height:               s.Height,
		FramerateNumerator:   s.FramerateNumerator,
		FramerateDenominator: s.FramerateDenominator,
	}
}

func cameraSpecFromFFI(raw ffi.CameraSpec) (CameraSpec, error) {
	format, err := PixelFormatFromUint32(raw.Format)
	if err != nil {
		return CameraSpec{}, err
	}
	colorspace, err := ColorspaceFromUint32(raw.Colorspace)
	if err != nil {
		return CameraSpec{}, err
	}
	return CameraSpec{
		Format:               format,
		Colorspace:           colorspace,
		Width:                raw.Width,
		Height:               raw.Height,
		FramerateNumerator:   raw.FramerateNumerator,
		FramerateDenominator: raw.FramerateDenominator,
	}, nil
}

// CameraSubsystem is a handle on the native camera subsystem.
type CameraSubsystem struct {
	sub *subsystem
}

// Close quits this handle's camera subsystem reference. Idempotent.
func (c *CameraSubsystem) Close() error { return c.sub.close() }

// Drivers lists the compiled-in camera driver names.
func (c *CameraSubsystem) Drivers() ([]string, error) {
	if err := c.sub.alive(); err != nil {
		return nil, err
	}
	api := c.sub.api()
	n := api.GetNumCameraDrivers()
	drivers := make([]string, 0, n)
	for i := int32(0); i < n; i++ {
		drivers = append(drivers, api.GetCameraDriver(i))
	}
	return drivers, nil
}

// CurrentDriver returns the active camera driver's name.
func (c *CameraSubsystem) CurrentDriver() (string, error) {
	if err := c.sub.alive(); err != nil {
		return "", err
	}
	api := c.sub.api()
	api.ClearError()
	name := api.GetCurrentCameraDriver()
	if name == "" {
		if err := sentinelError(api, "GetCurrentCameraDriver"); err != nil {
			return "", err
		}
	}
	return name, nil
}

// CameraDevice identifies a connected camera before it is opened.
type CameraDevice struct {
	c  *CameraSubsystem
	id uint32
}

// ID returns the native camera instance ID.
func (d CameraDevice) ID() uint32 { return d.id }

// Cameras lists the connected cameras.
func (c *CameraSubsystem) Cameras() ([]CameraDevice, error) {
	if err := c.sub.alive(); err != nil {
		return nil, err
	}
	api := c.sub.api()
	var count int32
	ptr := api.GetCameras(&count)
	if ptr == 0 {
		return nil, lastError(api, "GetCameras")
	}
	defer api.Free(ptr)
	ids := unsafe.Slice((*uint32)(unsafe.Pointer(ptr)), int(count))
	devices := make([]CameraDevice, count)
	for i, id := range ids {
		devices[i] = CameraDevice{c: c, id: id}
	}
	return devices, nil
}

// Name returns the camera's human-readable name.
func (d CameraDevice) Name() (string, error) {
	if err := d.c.sub.alive(); err != nil {
		return "", err
	}
	api := d.c.sub.api()
	api.ClearError()
	name := api.GetCameraName(d.id)
	if name == "" {
		if err := sentinelError(api, "GetCameraName"); err != nil {
			return "", err
		}
	}
	return name, nil
}

// Position returns which way the camera faces.
func (d CameraDevice) Position() (CameraPosition, error) {
	if err := d.c.sub.alive(); err != nil {
		return CameraPositionUnknown, err
	}
	p := d.c.sub.api().GetCameraPosition(d.id)
	if p < int32(CameraPositionUnknown) || p > int32(CameraPositionBackFacing) {
		return CameraPositionUnknown, &UnknownEnumError{Kind: "camera position", Value: uint64(uint32(p))}
	}
	return CameraPosition(p), nil
}

// SupportedFormats lists the capture formats the camera offers.
func (d CameraDevice) SupportedFormats() ([]CameraSpec, error) {
	if err := d.c.sub.alive(); err != nil {
		return nil, err
	}
	api := d.c.sub.api()
	var count int32
	ptr := api.GetCameraSupportedFormats(d.id, &count)
	if ptr == 0 {
		return nil, lastError(api, "GetCameraSupportedFormats")
	}
	defer api.Free(ptr)
	ptrs := unsafe.Slice((*uintptr)(unsafe.Pointer(ptr)), int(count))
	specs := make([]CameraSpec, 0, count)
	for _, sp := range ptrs {
		spec, err := cameraSpecFromFFI(*(*ffi.CameraSpec)(unsafe.Pointer(sp)))
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Camera is an opened capture device. Opening may trigger an OS
// permission prompt; watch PermissionState or the camera events for
// the outcome.
type Camera struct {
	sub    *subsystem
	ptr    uintptr
	closed bool
}

// Open opens the camera. A nil spec lets the native library choose a
// format; a spec with a zero framerate denominator is rejected.
func (d CameraDevice) Open(spec *CameraSpec) (*Camera, error) {
	if err := d.c.sub.alive(); err != nil {
		return nil, err
	}
	var raw *ffi.CameraSpec
	if spec != nil {
		if spec.FramerateDenominator == 0 {
			return nil, ErrZeroFramerateDenominator
		}
		r := spec.toFFI()
		raw = &r
	}
	api := d.c.sub.api()
	ptr := api.OpenCamera(d.id, raw)
	if ptr == 0 {
		return nil, lastError(api, "OpenCamera")
	}
	d.c.sub.core.retain()
	return &Camera{sub: d.c.sub, ptr: ptr}, nil
}

// Close releases the camera. Idempotent; never fails.
func (c *Camera) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.sub.api().CloseCamera(c.ptr)
	c.ptr = 0
	c.sub.core.release()
	return nil
}

func (c *Camera) guard() (*ffi.API, error) {
	if c.closed {
		return nil, ErrClosed
	}
	return c.sub.api(), nil
}

// ID returns the camera's instance ID.
func (c *Camera) ID() (uint32, error) {
	api, err := c.guard()
	if err != nil {
		return 0, err
	}
	id := api.GetCameraID(c.ptr)
	if id == 0 {
		return 0, lastError(api, "GetCameraID")
	}
	return id, nil
}

// PermissionState reports the user's answer to the access prompt.
func (c *Camera) PermissionState() (CameraPermission, error) {
	api, err := c.guard()
	if err != nil {
		return CameraPermissionWaiting, err
	}
	p := api.GetCameraPermissionState(c.ptr)
	if p < int32(CameraPermissionDenied) || p > int32(CameraPermissionApproved) {
		return CameraPermissionWaiting, &UnknownEnumError{Kind: "camera permission", Value: uint64(uint32(p))}
	}
	return CameraPermission(p), nil
}

// Format returns the negotiated capture format.
func (c *Camera) Format() (CameraSpec, error) {
	api, err := c.guard()
	if err != nil {
		return CameraSpec{}, err
	}
	var raw ffi.CameraSpec
	if !api.GetCameraFormat(c.ptr, &raw) {
		return CameraSpec{}, lastError(api, "GetCameraFormat")
	}
	return cameraSpecFromFFI(raw)
}

// CameraFrame is a borrowed video frame. The surface belongs to the
// camera driver; Release returns it and invalidates the view.
type CameraFrame struct {
	cam      *Camera
	ref      SurfaceRef
	ts       uint64
	released bool
}

// AcquireFrame returns the next captured frame, or (nil, nil) when no
// new frame is available yet. That includes the time before the user
// has answered the permission prompt, so (nil, nil) is not an error.
func (c *Camera) AcquireFrame() (*CameraFrame, error) {
	api, err := c.guard()
	if err != nil {
		return nil, err
	}
	api.ClearError()
	var ts uint64
	ptr := api.AcquireCameraFrame(c.ptr, &ts)
	if ptr == 0 {
		if err := sentinelError(api, "AcquireCameraFrame"); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &CameraFrame{cam: c, ref: SurfaceRef{api: api, core: c.sub.core, ptr: ptr}, ts: ts}, nil
}

// Surface returns a borrowed view of the frame pixels, valid until
// Release.
func (f *CameraFrame) Surface() *SurfaceRef {
	if f.released {
		return nil
	}
	return &f.ref
}

// TimestampNS returns the frame's capture time in nanoseconds.
func (f *CameraFrame) TimestampNS() uint64 { return f.ts }

// Release hands the frame buffer back to the camera driver.
// Idempotent.
func (f *CameraFrame) Release() {
	if f.released {
		return
	}
	f.released = true
	if !f.cam.closed {
		f.cam.sub.api().ReleaseCameraFrame(f.cam.ptr, f.ref.ptr)
	}
	f.ref.ptr = 0
}
