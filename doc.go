// Package sdl3 is a memory-safe Go binding for the SDL3 C library.
//
// The package wraps the native ABI behind ownership-aware handles so
// that misuse that would corrupt memory in C (double free, use after
// free, mixing resources across owners) surfaces as ordinary Go errors
// instead.
//
// # Lifecycle
//
// Everything starts from [Init], which loads the shared library and
// returns the process's single [SDL] handle:
//
//	sdl, err := sdl3.Init()
//	if err != nil { ... }
//	defer sdl.Close()
//
//	video, err := sdl.Video()
//	if err != nil { ... }
//	defer video.Close()
//
//	win, err := video.CreateWindow("demo", 800, 600, sdl3.WindowHidden)
//	if err != nil { ... }
//	defer win.Destroy()
//
// Subsystem handles ([VideoSubsystem], [EventsSubsystem],
// [CameraSubsystem], [Subsystem]) each balance one native subsystem
// init with exactly one quit on Close. The native library itself shuts
// down when the root handle and every subsystem handle are closed.
//
// # Ownership
//
// Owned resources ([Window], [Surface], [Renderer], [Texture],
// [Camera], [IOStream]) have an idempotent Destroy or Close. Borrowed
// views ([SurfaceRef], [CameraFrame]) must not outlive their owner and
// are never destroyed by the borrower.
//
// Textures are bound to the renderer that created them. After
// [Renderer.Destroy] every surviving texture is stale: its operations
// fail with [ErrRendererDestroyed] and its Destroy is a safe no-op,
// because the native side already freed it.
//
// Renderers are bound the same way to their backing resource.
// Destroying a window destroys its renderer first, and destroying a
// software renderer's target surface destroys that renderer first; a
// surviving *Renderer behaves as if its own Destroy had been called.
//
// # Logging
//
// The package is silent by default. [SetLogger] installs a
// [log/slog.Logger] for wrapper diagnostics, and [SDL.RouteNativeLogs]
// forwards the native library's own log output to the same logger.
package sdl3
