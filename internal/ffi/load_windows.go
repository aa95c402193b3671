//go:build windows

package ffi

import "golang.org/x/sys/windows"

var defaultLibraryNames = []string{"SDL3.dll"}

func openLibrary(name string) (uintptr, error) {
	handle, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}
