//go:build !windows

package ffi

import "runtime"

var defaultLibraryNames = func() []string {
	if runtime.GOOS == "darwin" {
		return []string{
			"libSDL3.dylib",
			"libSDL3.0.dylib",
			"SDL3.framework/SDL3",
		}
	}
	return []string{
		"libSDL3.so.0",
		"libSDL3.so",
	}
}()
