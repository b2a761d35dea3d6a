//go:build linux
// +build linux

package dialog

import "fmt"

// NativeDialogs has no toolkit to draw with on Linux, so every call fails and the
// presenter falls back to opening the last-resort URL.
type NativeDialogs struct{}

func (NativeDialogs) Confirm(title, message string) (bool, error) {
	return false, fmt.Errorf("%w: no native dialog backend on linux", ErrPresentation)
}

func (NativeDialogs) Alert(title, message string) error {
	return fmt.Errorf("%w: no native dialog backend on linux", ErrPresentation)
}
