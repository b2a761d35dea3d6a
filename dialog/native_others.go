//go:build !linux
// +build !linux

package dialog

import (
	"fmt"

	sqdialog "github.com/sqweek/dialog"
)

// NativeDialogs shows dialogs through the platform toolkit via sqweek/dialog.
type NativeDialogs struct{}

func (NativeDialogs) Confirm(title, message string) (accepted bool, err error) {
	defer recoverPresentation(&err)
	return sqdialog.Message("%s", message).Title(title).YesNo(), nil
}

func (NativeDialogs) Alert(title, message string) (err error) {
	defer recoverPresentation(&err)
	sqdialog.Message("%s", message).Title(title).Error()
	return nil
}

// recoverPresentation turns a toolkit panic into ErrPresentation.
func recoverPresentation(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrPresentation, r)
	}
}
