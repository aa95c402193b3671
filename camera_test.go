package sdl3

import (
	"errors"
	"testing"

	"github.com/gosdl/sdl3/internal/ffi"
)

func newTestCamera(t *testing.T, f *fakeNative) *Camera {
	t.Helper()
	sdl := mustInit(t, f)
	cameras, err := sdl.Camera()
	if err != nil {
		t.Fatalf("Camera: %v", err)
	}
	t.Cleanup(func() { cameras.Close() })

	f.cameraIDs = []uint32{1}
	devices, err := cameras.Cameras()
	if err != nil {
		t.Fatalf("Cameras: %v", err)
	}
	if len(devices) != 1 {
		t.Fatalf("devices = %d, want 1", len(devices))
	}
	cam, err := devices[0].Open(nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { cam.Close() })
	return cam
}

func TestCameraSpecFramerate(t *testing.T) {
	spec := CameraSpec{FramerateNumerator: 30000, FramerateDenominator: 1001}
	fps, err := spec.Framerate()
	if err != nil {
		t.Fatalf("Framerate: %v", err)
	}
	if fps < 29.9 || fps > 30 {
		t.Errorf("Framerate = %g, want ~29.97", fps)
	}

	spec.FramerateDenominator = 0
	if _, err := spec.Framerate(); !errors.Is(err, ErrZeroFramerateDenominator) {
		t.Fatalf("zero denominator: got %v, want ErrZeroFramerateDenominator", err)
	}
}

func TestOpenCameraRejectsZeroDenominator(t *testing.T) {
	f := newFakeNative()
	sdl := mustInit(t, f)
	cameras, err := sdl.Camera()
	if err != nil {
		t.Fatalf("Camera: %v", err)
	}
	t.Cleanup(func() { cameras.Close() })

	f.cameraIDs = []uint32{1}
	devices, err := cameras.Cameras()
	if err != nil {
		t.Fatalf("Cameras: %v", err)
	}
	spec := &CameraSpec{
		Format:             PixelFormatNV12,
		Width:              640,
		Height:             480,
		FramerateNumerator: 30,
	}
	if _, err := devices[0].Open(spec); !errors.Is(err, ErrZeroFramerateDenominator) {
		t.Fatalf("Open: got %v, want ErrZeroFramerateDenominator", err)
	}
}

func TestCameraPermissionMapping(t *testing.T) {
	f := newFakeNative()
	cam := newTestCamera(t, f)

	tests := []struct {
		raw  int32
		want CameraPermission
	}{
		{-1, CameraPermissionDenied},
		{0, CameraPermissionWaiting},
		{1, CameraPermissionApproved},
	}
	for _, tt := range tests {
		f.cameraPermission = tt.raw
		got, err := cam.PermissionState()
		if err != nil {
			t.Fatalf("PermissionState(%d): %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("PermissionState(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}

	f.cameraPermission = 5
	var unknown *UnknownEnumError
	if _, err := cam.PermissionState(); !errors.As(err, &unknown) {
		t.Fatalf("out-of-range permission: got %v, want *UnknownEnumError", err)
	}
}

// A null frame with a clean error slot means no frame is ready yet,
// which is the normal state while the permission prompt is open.
func TestAcquireFrameNotReady(t *testing.T) {
	f := newFakeNative()
	cam := newTestCamera(t, f)

	frame, err := cam.AcquireFrame()
	if frame != nil || err != nil {
		t.Fatalf("AcquireFrame = (%v, %v), want (nil, nil)", frame, err)
	}

	f.api.AcquireCameraFrame = func(ptr uintptr, ts *uint64) uintptr {
		f.errMsg = "camera unplugged"
		return 0
	}
	if _, err := cam.AcquireFrame(); err == nil {
		t.Fatal("null frame with a native error should fail")
	}
}

func TestAcquireFrameAndRelease(t *testing.T) {
	f := newFakeNative()
	cam := newTestCamera(t, f)

	f.frameHandle = f.newSurface(320, 240, uint32(PixelFormatNV12))
	f.frameTimestamp = 123456789

	frame, err := cam.AcquireFrame()
	if err != nil {
		t.Fatalf("AcquireFrame: %v", err)
	}
	if frame == nil {
		t.Fatal("AcquireFrame returned no frame")
	}
	if frame.TimestampNS() != 123456789 {
		t.Errorf("TimestampNS = %d", frame.TimestampNS())
	}
	ref := frame.Surface()
	if ref == nil {
		t.Fatal("Surface returned nil before release")
	}
	if ref.Width() != 320 {
		t.Errorf("Width = %d, want 320", ref.Width())
	}

	frame.Release()
	frame.Release() // idempotent
	if f.frameHandle != 0 {
		t.Error("release did not hand the frame back")
	}
	if frame.Surface() != nil {
		t.Error("Surface should be nil after release")
	}
}

func TestCameraCloseIsIdempotent(t *testing.T) {
	f := newFakeNative()
	cam := newTestCamera(t, f)

	if err := cam.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := cam.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, err := cam.PermissionState(); !errors.Is(err, ErrClosed) {
		t.Fatalf("PermissionState after Close: got %v, want ErrClosed", err)
	}
	if _, err := cam.AcquireFrame(); !errors.Is(err, ErrClosed) {
		t.Fatalf("AcquireFrame after Close: got %v, want ErrClosed", err)
	}
}

func TestCameraEventDecoding(t *testing.T) {
	var ev ffi.Event
	ev.SetType(eventCameraApproved)
	decoded := decodeEvent(&ev)
	if _, ok := decoded.(CameraApprovedEvent); !ok {
		t.Fatalf("decoded = %T, want CameraApprovedEvent", decoded)
	}
	ev.SetType(eventCameraRemoved)
	if _, ok := decodeEvent(&ev).(CameraRemovedEvent); !ok {
		t.Fatal("camera removed tag not decoded")
	}
}
