package sdl3

import (
	"sync/atomic"

	"github.com/gosdl/sdl3/internal/ffi"
)

// InitFlags selects native subsystems. Values match the native init
// flag bits.
type InitFlags uint32

const (
	InitAudio    InitFlags = 0x00000010
	InitVideo    InitFlags = 0x00000020
	InitJoystick InitFlags = 0x00000200
	InitHaptic   InitFlags = 0x00001000
	InitGamepad  InitFlags = 0x00002000
	InitEvents   InitFlags = 0x00004000
	InitSensor   InitFlags = 0x00008000
	InitCamera   InitFlags = 0x00010000
)

// active is the process-wide init guard. It is the only package-global
// piece of library state; everything else flows through the handle
// chain.
var active atomic.Bool

// core holds the native function table and the teardown refcount. The
// main SDL handle and every subsystem handle hold one reference each;
// the native library is shut down when the last reference is released.
type core struct {
	api      *ffi.API
	refs     atomic.Int32
	pumpHeld atomic.Bool
}

func (c *core) retain() { c.refs.Add(1) }

func (c *core) release() {
	if c.refs.Add(-1) == 0 {
		c.api.Quit()
		active.Store(false)
	}
}

// SDL is the root handle for the native library. At most one SDL is
// live per process; Close releases it (the native shutdown itself
// waits until all subsystem handles are closed too).
type SDL struct {
	api    *ffi.API
	core   *core
	closed atomic.Bool
}

// Init loads the SDL3 shared library from its conventional location
// and initializes it. It fails with ErrAlreadyInitialized while a
// previous handle (or any of its subsystems) is still open.
func Init() (*SDL, error) {
	return InitWithLibrary("")
}

// InitWithLibrary is Init with an explicit shared library path.
func InitWithLibrary(path string) (*SDL, error) {
	api, err := ffi.Load(path)
	if err != nil {
		return nil, err
	}
	return initWithAPI(api)
}

// initWithAPI is the single entry point behind Init; tests inject an
// instrumented function table here.
func initWithAPI(api *ffi.API) (*SDL, error) {
	if !active.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInitialized
	}
	if !api.Init(0) {
		err := lastError(api, "Init")
		active.Store(false)
		return nil, err
	}
	c := &core{api: api}
	c.retain()
	return &SDL{api: api, core: c}, nil
}

// Close releases the root handle. Close is idempotent and never fails;
// the native shutdown runs once the last subsystem handle is also
// closed.
func (s *SDL) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.core.release()
	return nil
}

func (s *SDL) alive() error {
	if s.closed.Load() {
		return ErrClosed
	}
	return nil
}

// subsystem is the shared body of every subsystem handle. Each handle
// performs its own native subsystem init and exactly one matching quit
// on Close; the native library merges the refcounts.
type subsystem struct {
	core   *core
	flag   InitFlags
	name   string
	closed atomic.Bool
}

func (s *SDL) initSubsystem(flag InitFlags, name string) (*subsystem, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	if !s.api.InitSubSystem(uint32(flag)) {
		return nil, lastError(s.api, "InitSubSystem "+name)
	}
	s.core.retain()
	Logger().Debug("sdl3: subsystem initialized", "subsystem", name)
	return &subsystem{core: s.core, flag: flag, name: name}, nil
}

func (s *subsystem) close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.core.api.QuitSubSystem(uint32(s.flag))
	s.core.release()
	Logger().Debug("sdl3: subsystem quit", "subsystem", s.name)
	return nil
}

func (s *subsystem) alive() error {
	if s.closed.Load() {
		return ErrClosed
	}
	return nil
}

func (s *subsystem) api() *ffi.API { return s.core.api }

// Subsystem is a handle for a subsystem without a dedicated API
// surface (audio, joystick, haptic, gamepad, sensor). Holding one
// keeps the native subsystem initialized.
type Subsystem struct {
	sub *subsystem
}

// Name returns the subsystem's name, e.g. "audio".
func (s *Subsystem) Name() string { return s.sub.name }

// Flags returns the subsystem's init flag bit.
func (s *Subsystem) Flags() InitFlags { return s.sub.flag }

// Close quits this handle's subsystem reference. Idempotent.
func (s *Subsystem) Close() error { return s.sub.close() }

// Video initializes the video subsystem and returns a handle for it.
// Every returned handle is independent; each Close balances exactly
// the init performed by its own constructor.
func (s *SDL) Video() (*VideoSubsystem, error) {
	sub, err := s.initSubsystem(InitVideo, "video")
	if err != nil {
		return nil, err
	}
	return &VideoSubsystem{sub: sub}, nil
}

// Events initializes the events subsystem and returns a handle for it.
func (s *SDL) Events() (*EventsSubsystem, error) {
	sub, err := s.initSubsystem(InitEvents, "events")
	if err != nil {
		return nil, err
	}
	return &EventsSubsystem{sub: sub}, nil
}

// Camera initializes the camera subsystem and returns a handle for it.
func (s *SDL) Camera() (*CameraSubsystem, error) {
	sub, err := s.initSubsystem(InitCamera, "camera")
	if err != nil {
		return nil, err
	}
	return &CameraSubsystem{sub: sub}, nil
}

// Audio initializes the audio subsystem.
func (s *SDL) Audio() (*Subsystem, error) {
	sub, err := s.initSubsystem(InitAudio, "audio")
	if err != nil {
		return nil, err
	}
	return &Subsystem{sub: sub}, nil
}

// Joystick initializes the joystick subsystem.
func (s *SDL) Joystick() (*Subsystem, error) {
	sub, err := s.initSubsystem(InitJoystick, "joystick")
	if err != nil {
		return nil, err
	}
	return &Subsystem{sub: sub}, nil
}

// Haptic initializes the haptic subsystem.
func (s *SDL) Haptic() (*Subsystem, error) {
	sub, err := s.initSubsystem(InitHaptic, "haptic")
	if err != nil {
		return nil, err
	}
	return &Subsystem{sub: sub}, nil
}

// Gamepad initializes the gamepad subsystem.
func (s *SDL) Gamepad() (*Subsystem, error) {
	sub, err := s.initSubsystem(InitGamepad, "gamepad")
	if err != nil {
		return nil, err
	}
	return &Subsystem{sub: sub}, nil
}

// Sensor initializes the sensor subsystem.
func (s *SDL) Sensor() (*Subsystem, error) {
	sub, err := s.initSubsystem(InitSensor, "sensor")
	if err != nil {
		return nil, err
	}
	return &Subsystem{sub: sub}, nil
}
