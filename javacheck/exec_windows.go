//go:build windows

package javacheck

import (
	"errors"
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// configureCommand keeps java.exe from flashing a console window; javaw.exe
// has none anyway.
func configureCommand(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.HideWindow = true
	cmd.SysProcAttr.CreationFlags |= windows.CREATE_NO_WINDOW
}

func isBadExecutable(err error) bool {
	return errors.Is(err, windows.ERROR_BAD_EXE_FORMAT)
}
