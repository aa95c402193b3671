package sdl3

import (
	"errors"
	"math"
	"testing"
)

func TestColorToFloatRoundTrip(t *testing.T) {
	tests := []Color{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{1, 2, 3, 4},
		{127, 128, 200, 63},
	}
	for _, c := range tests {
		got := c.ToFloat().ToColor()
		if got != c {
			t.Errorf("%v -> ToFloat -> ToColor = %v", c, got)
		}
	}
}

func TestColorToFloatRange(t *testing.T) {
	f := Color{R: 255, G: 0, B: 128, A: 51}.ToFloat()
	const tol = 1.0 / 255
	checks := []struct {
		name string
		got  float32
		want float32
	}{
		{"R", f.R, 1},
		{"G", f.G, 0},
		{"B", f.B, 128.0 / 255},
		{"A", f.A, 0.2},
	}
	for _, c := range checks {
		if math.Abs(float64(c.got-c.want)) > tol {
			t.Errorf("%s = %g, want %g (+-%g)", c.name, c.got, c.want, tol)
		}
	}
}

func TestColorF32ToColorClamps(t *testing.T) {
	c := ColorF32{R: 2.5, G: -1, B: 0.5, A: 1}.ToColor()
	want := Color{R: 255, G: 0, B: 128, A: 255}
	if c != want {
		t.Errorf("got %v, want %v", c, want)
	}
}

func TestPixelFormatValidation(t *testing.T) {
	tests := []struct {
		name    string
		value   uint32
		want    PixelFormat
		wantErr bool
	}{
		{"unknown is valid", 0, PixelFormatUnknown, false},
		{"rgba8888", uint32(PixelFormatRGBA8888), PixelFormatRGBA8888, false},
		{"nv12 fourcc", uint32(PixelFormatNV12), PixelFormatNV12, false},
		{"garbage", 0xdeadbeef, PixelFormatUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PixelFormatFromUint32(tt.value)
			if tt.wantErr {
				var unknown *UnknownEnumError
				if !errors.As(err, &unknown) {
					t.Fatalf("got err %v, want *UnknownEnumError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestPixelFormatEncoding(t *testing.T) {
	if got := PixelFormatRGBA8888.BytesPerPixel(); got != 4 {
		t.Errorf("RGBA8888 bytes = %d, want 4", got)
	}
	if got := PixelFormatRGB24.BytesPerPixel(); got != 3 {
		t.Errorf("RGB24 bytes = %d, want 3", got)
	}
	if got := PixelFormatRGBA8888.BitsPerPixel(); got != 32 {
		t.Errorf("RGBA8888 bits = %d, want 32", got)
	}
	// FourCC formats carry no packed size.
	if got := PixelFormatYUY2.BytesPerPixel(); got != 0 {
		t.Errorf("YUY2 bytes = %d, want 0", got)
	}
	if got := PixelFormatYUY2.BitsPerPixel(); got != 0 {
		t.Errorf("YUY2 bits = %d, want 0", got)
	}
}

func TestColorspaceValidation(t *testing.T) {
	if _, err := ColorspaceFromUint32(uint32(ColorspaceSRGB)); err != nil {
		t.Errorf("SRGB rejected: %v", err)
	}
	if _, err := ColorspaceFromUint32(12345); err == nil {
		t.Error("arbitrary value accepted")
	}
}

func TestBlendModeValidation(t *testing.T) {
	if _, err := BlendModeFromUint32(uint32(BlendModeBlend)); err != nil {
		t.Errorf("blend rejected: %v", err)
	}
	if _, err := BlendModeFromUint32(0x40); err == nil {
		t.Error("unknown bit accepted")
	}
}
