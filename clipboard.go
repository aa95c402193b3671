package sdl3

import (
	"unsafe"

	"github.com/gosdl/sdl3/internal/ffi"
)

// Clipboard access lives on the video subsystem because every backend
// implements it in the windowing layer.

// HasClipboardText reports whether the clipboard holds text.
func (v *VideoSubsystem) HasClipboardText() (bool, error) {
	if err := v.sub.alive(); err != nil {
		return false, err
	}
	return v.sub.api().HasClipboardText(), nil
}

// ClipboardText returns the clipboard's text content.
func (v *VideoSubsystem) ClipboardText() (string, error) {
	if err := v.sub.alive(); err != nil {
		return "", err
	}
	api := v.sub.api()
	ptr := api.GetClipboardText()
	if ptr == 0 {
		return "", lastError(api, "GetClipboardText")
	}
	defer api.Free(ptr)
	return ffi.GoString(ptr), nil
}

// SetClipboardText replaces the clipboard's content with text.
func (v *VideoSubsystem) SetClipboardText(text string) error {
	if err := v.sub.alive(); err != nil {
		return err
	}
	if !v.sub.api().SetClipboardText(text) {
		return lastError(v.sub.api(), "SetClipboardText")
	}
	return nil
}

// HasPrimarySelectionText reports whether the primary selection holds
// text. Only X11 and Wayland have a primary selection.
func (v *VideoSubsystem) HasPrimarySelectionText() (bool, error) {
	if err := v.sub.alive(); err != nil {
		return false, err
	}
	return v.sub.api().HasPrimarySelectionText(), nil
}

// PrimarySelectionText returns the primary selection's text content.
func (v *VideoSubsystem) PrimarySelectionText() (string, error) {
	if err := v.sub.alive(); err != nil {
		return "", err
	}
	api := v.sub.api()
	ptr := api.GetPrimarySelectionText()
	if ptr == 0 {
		return "", lastError(api, "GetPrimarySelectionText")
	}
	defer api.Free(ptr)
	return ffi.GoString(ptr), nil
}

// SetPrimarySelectionText replaces the primary selection with text.
func (v *VideoSubsystem) SetPrimarySelectionText(text string) error {
	if err := v.sub.alive(); err != nil {
		return err
	}
	if !v.sub.api().SetPrimarySelectionText(text) {
		return lastError(v.sub.api(), "SetPrimarySelectionText")
	}
	return nil
}

// HasClipboardData reports whether the clipboard holds data of the
// given MIME type.
func (v *VideoSubsystem) HasClipboardData(mimeType string) (bool, error) {
	if err := v.sub.alive(); err != nil {
		return false, err
	}
	return v.sub.api().HasClipboardData(mimeType), nil
}

// ClipboardData copies the clipboard content of the given MIME type.
func (v *VideoSubsystem) ClipboardData(mimeType string) ([]byte, error) {
	if err := v.sub.alive(); err != nil {
		return nil, err
	}
	api := v.sub.api()
	var size uintptr
	ptr := api.GetClipboardData(mimeType, &size)
	if ptr == 0 {
		return nil, lastError(api, "GetClipboardData")
	}
	defer api.Free(ptr)
	data := make([]byte, size)
	copy(data, unsafe.Slice((*byte)(unsafe.Pointer(ptr)), int(size)))
	return data, nil
}

// ClipboardMimeTypes lists the MIME types the clipboard offers.
func (v *VideoSubsystem) ClipboardMimeTypes() ([]string, error) {
	if err := v.sub.alive(); err != nil {
		return nil, err
	}
	api := v.sub.api()
	var count uintptr
	ptr := api.GetClipboardMimeTypes(&count)
	if ptr == 0 {
		return nil, lastError(api, "GetClipboardMimeTypes")
	}
	defer api.Free(ptr)
	ptrs := unsafe.Slice((*uintptr)(unsafe.Pointer(ptr)), int(count))
	types := make([]string, 0, count)
	for _, sp := range ptrs {
		types = append(types, ffi.GoString(sp))
	}
	return types, nil
}

// ClearClipboardData empties the clipboard.
func (v *VideoSubsystem) ClearClipboardData() error {
	if err := v.sub.alive(); err != nil {
		return err
	}
	if !v.sub.api().ClearClipboardData() {
		return lastError(v.sub.api(), "ClearClipboardData")
	}
	return nil
}
