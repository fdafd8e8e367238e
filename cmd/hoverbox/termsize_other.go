//go:build !unix

package main

// terminalSize is unavailable off unix; callers fall back to defaults.
func terminalSize() (width, height int, ok bool) {
	return 0, 0, false
}
