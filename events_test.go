package sdl3

import (
	"errors"
	"testing"

	"github.com/gosdl/sdl3/internal/ffi"
)

func newTestEvents(t *testing.T, f *fakeNative) *EventsSubsystem {
	t.Helper()
	sdl := mustInit(t, f)
	events, err := sdl.Events()
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	t.Cleanup(func() { events.Close() })
	return events
}

func TestEventPumpUniqueBorrow(t *testing.T) {
	f := newFakeNative()
	events := newTestEvents(t, f)

	pump, err := events.Pump()
	if err != nil {
		t.Fatalf("Pump: %v", err)
	}
	if _, err := events.Pump(); !errors.Is(err, ErrEventPumpInUse) {
		t.Fatalf("second Pump: got %v, want ErrEventPumpInUse", err)
	}

	if err := pump.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	pump.Close() // idempotent

	// Closing releases the borrow for the next pump.
	pump2, err := events.Pump()
	if err != nil {
		t.Fatalf("Pump after Close: %v", err)
	}
	pump2.Close()

	if _, err := pump.Poll(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Poll on closed pump: got %v, want ErrClosed", err)
	}
}

func keyEvent(typ uint32, scancode uint32, repeat bool) ffi.Event {
	var ev ffi.Event
	ev.SetType(typ)
	ev.SetKeyboard(7, scancode, typ == eventKeyDown, repeat)
	return ev
}

func TestEventDecoding(t *testing.T) {
	f := newFakeNative()
	events := newTestEvents(t, f)

	var quit ffi.Event
	quit.SetType(eventQuit)
	var mystery ffi.Event
	mystery.SetType(0x9999)
	f.eventQueue = []ffi.Event{
		quit,
		keyEvent(eventKeyDown, uint32(ScancodeEscape), true),
		keyEvent(eventKeyUp, uint32(ScancodeA), false),
		mystery,
	}

	pump, err := events.Pump()
	if err != nil {
		t.Fatalf("Pump: %v", err)
	}
	t.Cleanup(func() { pump.Close() })

	ev, err := pump.Poll()
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if _, ok := ev.(QuitEvent); !ok {
		t.Fatalf("event 1 = %T, want QuitEvent", ev)
	}

	ev, _ = pump.Poll()
	down, ok := ev.(KeyDownEvent)
	if !ok {
		t.Fatalf("event 2 = %T, want KeyDownEvent", ev)
	}
	if down.Scancode != ScancodeEscape || !down.Repeat || down.WindowID != 7 {
		t.Errorf("KeyDownEvent = %+v", down)
	}

	ev, _ = pump.Poll()
	up, ok := ev.(KeyUpEvent)
	if !ok {
		t.Fatalf("event 3 = %T, want KeyUpEvent", ev)
	}
	if up.Scancode != ScancodeA {
		t.Errorf("KeyUpEvent = %+v", up)
	}

	ev, _ = pump.Poll()
	unknown, ok := ev.(UnknownEvent)
	if !ok {
		t.Fatalf("event 4 = %T, want UnknownEvent", ev)
	}
	if unknown.Type != 0x9999 {
		t.Errorf("UnknownEvent.Type = %#x", unknown.Type)
	}

	// Empty queue polls as (nil, nil) without blocking.
	ev, err = pump.Poll()
	if ev != nil || err != nil {
		t.Fatalf("empty queue: got (%v, %v), want (nil, nil)", ev, err)
	}
}

func TestEventQueuePushQuit(t *testing.T) {
	f := newFakeNative()
	events := newTestEvents(t, f)

	if err := events.Queue().PushQuit(); err != nil {
		t.Fatalf("PushQuit: %v", err)
	}
	if len(f.pushed) != 1 || f.pushed[0] != eventQuit {
		t.Fatalf("pushed = %v, want [quit]", f.pushed)
	}
}

func TestScancodeValidation(t *testing.T) {
	if _, err := ScancodeFromUint32(uint32(ScancodeSpace)); err != nil {
		t.Errorf("space rejected: %v", err)
	}
	if _, err := ScancodeFromUint32(512); err == nil {
		t.Error("out-of-range scancode accepted")
	}
	if got := scancodeOrUnknown(100000); got != ScancodeUnknown {
		t.Errorf("scancodeOrUnknown = %d, want unknown", got)
	}
}
