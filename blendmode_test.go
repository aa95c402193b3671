package sdl3

import (
	"errors"
	"testing"
)

func TestComposeCustomBlendMode(t *testing.T) {
	f := newFakeNative()
	sdl := mustInit(t, f)

	mode, err := sdl.ComposeCustomBlendMode(
		BlendFactorSrcAlpha, BlendFactorOneMinusSrcAlpha, BlendOperationAdd,
		BlendFactorOne, BlendFactorOneMinusSrcAlpha, BlendOperationAdd,
	)
	if err != nil {
		t.Fatalf("ComposeCustomBlendMode: %v", err)
	}
	if mode == BlendModeInvalid || mode == BlendModeNone {
		t.Errorf("mode = %#x, want a composed value", mode)
	}

	f.api.ComposeCustomBlendMode = func(sc, dc, co, sa, da, ao uint32) uint32 {
		f.errMsg = "unsupported factor"
		return uint32(BlendModeInvalid)
	}
	_, err = sdl.ComposeCustomBlendMode(
		BlendFactorZero, BlendFactorZero, BlendOperationMaximum,
		BlendFactorZero, BlendFactorZero, BlendOperationMaximum,
	)
	var native *NativeError
	if !errors.As(err, &native) {
		t.Fatalf("got %v, want *NativeError", err)
	}
}
