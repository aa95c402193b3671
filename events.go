package sdl3

import (
	"github.com/gosdl/sdl3/internal/ffi"
)

// Native event type tags.
const (
	eventQuit uint32 = 0x100

	eventWindowFirst uint32 = 0x202
	eventWindowLast  uint32 = 0x224

	eventKeyDown uint32 = 0x300
	eventKeyUp   uint32 = 0x301

	eventCameraAdded    uint32 = 0x1400
	eventCameraRemoved  uint32 = 0x1401
	eventCameraApproved uint32 = 0x1402
	eventCameraDenied   uint32 = 0x1403
)

// Event is a decoded native event. Concrete types: QuitEvent,
// KeyDownEvent, KeyUpEvent, WindowEvent, CameraAddedEvent,
// CameraRemovedEvent, CameraApprovedEvent, CameraDeniedEvent and
// UnknownEvent.
type Event interface {
	eventTag() uint32
}

// QuitEvent reports a request to shut the application down.
type QuitEvent struct{}

func (QuitEvent) eventTag() uint32 { return eventQuit }

// KeyDownEvent reports a key press.
type KeyDownEvent struct {
	WindowID uint32
	Scancode Scancode
	Repeat   bool
}

func (KeyDownEvent) eventTag() uint32 { return eventKeyDown }

// KeyUpEvent reports a key release.
type KeyUpEvent struct {
	WindowID uint32
	Scancode Scancode
}

func (KeyUpEvent) eventTag() uint32 { return eventKeyUp }

// WindowEvent reports a window state change. Kind is the native window
// event type tag; Data1 and Data2 carry type-specific payload (e.g.
// the new size for a resize).
type WindowEvent struct {
	Kind     uint32
	WindowID uint32
	Data1    int32
	Data2    int32
}

func (e WindowEvent) eventTag() uint32 { return e.Kind }

// CameraAddedEvent reports a newly connected camera.
type CameraAddedEvent struct{ CameraID uint32 }

func (CameraAddedEvent) eventTag() uint32 { return eventCameraAdded }

// CameraRemovedEvent reports a disconnected camera.
type CameraRemovedEvent struct{ CameraID uint32 }

func (CameraRemovedEvent) eventTag() uint32 { return eventCameraRemoved }

// CameraApprovedEvent reports that the user granted camera access.
type CameraApprovedEvent struct{ CameraID uint32 }

func (CameraApprovedEvent) eventTag() uint32 { return eventCameraApproved }

// CameraDeniedEvent reports that the user denied camera access.
type CameraDeniedEvent struct{ CameraID uint32 }

func (CameraDeniedEvent) eventTag() uint32 { return eventCameraDenied }

// UnknownEvent wraps an event type this package does not decode.
type UnknownEvent struct{ Type uint32 }

func (e UnknownEvent) eventTag() uint32 { return e.Type }

func decodeEvent(raw *ffi.Event) Event {
	t := raw.Type()
	switch {
	case t == eventQuit:
		return QuitEvent{}
	case t == eventKeyDown:
		windowID, scancode, _, repeat := raw.Keyboard()
		return KeyDownEvent{WindowID: windowID, Scancode: scancodeOrUnknown(scancode), Repeat: repeat}
	case t == eventKeyUp:
		windowID, scancode, _, _ := raw.Keyboard()
		return KeyUpEvent{WindowID: windowID, Scancode: scancodeOrUnknown(scancode)}
	case t >= eventWindowFirst && t <= eventWindowLast:
		windowID, data1, data2 := raw.Window()
		return WindowEvent{Kind: t, WindowID: windowID, Data1: data1, Data2: data2}
	case t == eventCameraAdded:
		return CameraAddedEvent{CameraID: raw.CameraDevice()}
	case t == eventCameraRemoved:
		return CameraRemovedEvent{CameraID: raw.CameraDevice()}
	case t == eventCameraApproved:
		return CameraApprovedEvent{CameraID: raw.CameraDevice()}
	case t == eventCameraDenied:
		return CameraDeniedEvent{CameraID: raw.CameraDevice()}
	default:
		return UnknownEvent{Type: t}
	}
}

// EventsSubsystem is a handle on the native events subsystem.
type EventsSubsystem struct {
	sub *subsystem
}

// Close quits this handle's events subsystem reference. Idempotent.
func (e *EventsSubsystem) Close() error { return e.sub.close() }

// EventPump drains the native event queue. At most one pump is open
// per process; polling from more than one place at once would steal
// events from the other.
type EventPump struct {
	e      *EventsSubsystem
	closed bool
}

// Pump opens the process's event pump. Fails with ErrEventPumpInUse
// while a previous pump is still open.
func (e *EventsSubsystem) Pump() (*EventPump, error) {
	if err := e.sub.alive(); err != nil {
		return nil, err
	}
	if !e.sub.core.pumpHeld.CompareAndSwap(false, true) {
		return nil, ErrEventPumpInUse
	}
	return &EventPump{e: e}, nil
}

// Poll returns the next pending event, or nil immediately when the
// queue is empty. Poll never blocks.
func (p *EventPump) Poll() (Event, error) {
	if p.closed {
		return nil, ErrClosed
	}
	if err := p.e.sub.alive(); err != nil {
		return nil, err
	}
	var raw ffi.Event
	if !p.e.sub.api().PollEvent(&raw) {
		return nil, nil
	}
	return decodeEvent(&raw), nil
}

// Close releases the pump so another can be opened. Idempotent.
func (p *EventPump) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.e.sub.core.pumpHeld.Store(false)
	return nil
}

// EventQueue pushes events into the native queue. Unlike the pump it
// is safe for concurrent use from any goroutine.
type EventQueue struct {
	sub *subsystem
}

// Queue returns a push handle for the event queue.
func (e *EventsSubsystem) Queue() *EventQueue {
	return &EventQueue{sub: e.sub}
}

// PushQuit enqueues a QuitEvent, waking any poll loop.
func (q *EventQueue) PushQuit() error {
	if err := q.sub.alive(); err != nil {
		return err
	}
	var raw ffi.Event
	raw.SetType(eventQuit)
	api := q.sub.api()
	if !api.PushEvent(&raw) {
		return lastError(api, "PushEvent")
	}
	return nil
}
