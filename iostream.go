package sdl3

import "github.com/gosdl/sdl3/internal/ffi"

// IOStream is a native stream handle, usable with the native loaders
// that accept one (LoadBMPFromIO). Streams over Go memory keep the
// backing slice referenced until Close.
type IOStream struct {
	sdl    *SDL
	ptr    uintptr
	pinned []byte
	closed bool
}

// IOFromFile opens a native stream over a file. Mode uses the C fopen
// convention ("rb", "wb", ...).
func (s *SDL) IOFromFile(path, mode string) (*IOStream, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	ptr := s.api.IOFromFile(path, mode)
	if ptr == 0 {
		return nil, lastError(s.api, "IOFromFile")
	}
	s.core.retain()
	return &IOStream{sdl: s, ptr: ptr}, nil
}

// IOFromBytes opens a read-only native stream over data without
// copying.
func (s *SDL) IOFromBytes(data []byte) (*IOStream, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	ptr := s.api.IOFromConstMem(ffi.BytesPtr(data), uintptr(len(data)))
	if ptr == 0 {
		return nil, lastError(s.api, "IOFromConstMem")
	}
	s.core.retain()
	return &IOStream{sdl: s, ptr: ptr, pinned: data}, nil
}

// IOFromBytesMut opens a read-write native stream over data without
// copying. Native writes are visible in the slice.
func (s *SDL) IOFromBytesMut(data []byte) (*IOStream, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	ptr := s.api.IOFromMem(ffi.BytesPtr(data), uintptr(len(data)))
	if ptr == 0 {
		return nil, lastError(s.api, "IOFromMem")
	}
	s.core.retain()
	return &IOStream{sdl: s, ptr: ptr, pinned: data}, nil
}

// Close releases the stream. Idempotent; reports a native flush
// failure for writable file streams.
func (io *IOStream) Close() error {
	if io.closed {
		return nil
	}
	io.closed = true
	ok := io.sdl.api.CloseIO(io.ptr)
	io.ptr = 0
	io.pinned = nil
	io.sdl.core.release()
	if !ok {
		return lastError(io.sdl.api, "CloseIO")
	}
	return nil
}

// LoadBMPFromIO loads a BMP image from a native stream into a new
// surface. The stream remains open and owned by the caller.
func (s *SDL) LoadBMPFromIO(stream *IOStream) (*Surface, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	if stream.closed {
		return nil, ErrClosed
	}
	ptr := s.api.LoadBMPIO(stream.ptr, false)
	if ptr == 0 {
		return nil, lastError(s.api, "LoadBMP_IO")
	}
	s.core.retain()
	return &Surface{SurfaceRef: SurfaceRef{api: s.api, core: s.core, ptr: ptr}}, nil
}

// SaveBMPToIO writes the surface to a native stream as BMP. The stream
// remains open and owned by the caller.
func (s *SDL) SaveBMPToIO(surface *SurfaceRef, stream *IOStream) error {
	if err := s.alive(); err != nil {
		return err
	}
	if stream.closed {
		return ErrClosed
	}
	surfPtr, err := surface.handle()
	if err != nil {
		return err
	}
	if !s.api.SaveBMPIO(surfPtr, stream.ptr, false) {
		return lastError(s.api, "SaveBMP_IO")
	}
	return nil
}
