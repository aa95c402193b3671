package sdl3

import (
	"errors"
	"testing"
)

func newTestVideo(t *testing.T, f *fakeNative) (*SDL, *VideoSubsystem) {
	t.Helper()
	sdl := mustInit(t, f)
	video, err := sdl.Video()
	if err != nil {
		t.Fatalf("Video: %v", err)
	}
	t.Cleanup(func() { video.Close() })
	return sdl, video
}

func TestWindowLifecycle(t *testing.T) {
	f := newFakeNative()
	_, video := newTestVideo(t, f)

	win, err := video.CreateWindow("hello", 800, 600, WindowHidden)
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	if f.liveWindows != 1 {
		t.Fatalf("live windows = %d, want 1", f.liveWindows)
	}

	title, err := win.Title()
	if err != nil {
		t.Fatalf("Title: %v", err)
	}
	if title != "hello" {
		t.Errorf("Title = %q, want %q", title, "hello")
	}
	if err := win.SetTitle("renamed"); err != nil {
		t.Fatalf("SetTitle: %v", err)
	}
	if title, _ := win.Title(); title != "renamed" {
		t.Errorf("Title after SetTitle = %q", title)
	}

	win.Destroy()
	win.Destroy() // idempotent
	if f.liveWindows != 0 {
		t.Fatalf("live windows after destroy = %d, want 0", f.liveWindows)
	}

	// No operation may reach the native side after destroy.
	if _, err := win.Title(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Title after destroy: got %v, want ErrClosed", err)
	}
	if err := win.Show(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Show after destroy: got %v, want ErrClosed", err)
	}
}

func TestWindowKeepsLibraryAlive(t *testing.T) {
	f := newFakeNative()
	sdl, video := newTestVideo(t, f)

	win, err := video.CreateWindow("w", 100, 100, 0)
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}

	sdl.Close()
	video.Close()
	if f.quitCalls != 0 {
		t.Fatal("native quit ran while a window is live")
	}
	win.Destroy()
	if f.quitCalls != 1 {
		t.Fatalf("quit calls after last resource = %d, want 1", f.quitCalls)
	}
}

// Opacity uses -1 as its failure sentinel, but -1 alone is not enough:
// only a non-empty native error slot makes it a failure.
func TestWindowOpacitySentinel(t *testing.T) {
	f := newFakeNative()
	_, video := newTestVideo(t, f)
	win, err := video.CreateWindow("w", 100, 100, 0)
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	t.Cleanup(win.Destroy)

	f.opacity = 0.5
	got, err := win.Opacity()
	if err != nil || got != 0.5 {
		t.Fatalf("Opacity = %g, %v; want 0.5, nil", got, err)
	}

	f.opacity = -1
	f.api.GetWindowOpacity = func(uintptr) float32 {
		f.errMsg = "opacity query failed"
		return -1
	}
	if _, err := win.Opacity(); err == nil {
		t.Fatal("sentinel with native error should fail")
	}

	f.api.GetWindowOpacity = func(uintptr) float32 { return -1 }
	f.errMsg = ""
	got, err = win.Opacity()
	if err != nil {
		t.Fatalf("sentinel without native error should pass through: %v", err)
	}
	if got != -1 {
		t.Errorf("Opacity = %g, want -1", got)
	}
}

func TestClearPresentScenario(t *testing.T) {
	f := newFakeNative()
	_, video := newTestVideo(t, f)

	win, err := video.CreateWindow("scenario", 800, 600, WindowHidden)
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	r, err := win.CreateRenderer("")
	if err != nil {
		t.Fatalf("CreateRenderer: %v", err)
	}

	if err := r.SetDrawColor(Color{R: 10, G: 20, B: 30, A: 255}); err != nil {
		t.Fatalf("SetDrawColor: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := r.Clear(); err != nil {
			t.Fatalf("Clear: %v", err)
		}
		if err := r.Present(); err != nil {
			t.Fatalf("Present: %v", err)
		}
	}
	if f.clearCalls != 3 || f.presentCalls != 3 {
		t.Fatalf("clear/present = %d/%d, want 3/3", f.clearCalls, f.presentCalls)
	}

	r.Destroy()
	win.Destroy()

	clearsBefore := f.clearCalls
	if err := r.Clear(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Clear after destroy: got %v, want ErrClosed", err)
	}
	if f.clearCalls != clearsBefore {
		t.Fatal("native clear ran after destroy")
	}
	if f.liveWindows != 0 || f.liveRenderers != 0 {
		t.Fatalf("leaked: %d windows, %d renderers", f.liveWindows, f.liveRenderers)
	}
}

func TestVideoSubsystemClosedRejectsCreation(t *testing.T) {
	f := newFakeNative()
	_, video := newTestVideo(t, f)

	video.Close()
	if _, err := video.CreateWindow("late", 10, 10, 0); !errors.Is(err, ErrClosed) {
		t.Fatalf("CreateWindow after Close: got %v, want ErrClosed", err)
	}
	if _, err := video.Displays(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Displays after Close: got %v, want ErrClosed", err)
	}
}
