//go:build !windows

package javacheck

import (
	"errors"
	"os/exec"
	"syscall"
)

func configureCommand(cmd *exec.Cmd) {
	_ = cmd
}

func isBadExecutable(err error) bool {
	return errors.Is(err, syscall.ENOEXEC)
}
