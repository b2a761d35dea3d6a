package javacheck

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// Command is one child process invocation.
type Command struct {
	Path string
	Args []string
	// Capture collects combined stdout/stderr into Exit.Output instead of
	// passing the bootstrap's own stdio through.
	Capture bool
}

// Exit describes how a started child finished.
type Exit struct {
	Code     int
	Signaled bool
	Output   []byte
}

// Executor runs a command to completion. A returned error means the process could
// not be started; a process that ran and failed is reported through Exit.
type Executor interface {
	Execute(ctx context.Context, c Command) (Exit, error)
}

// OSExecutor runs commands with os/exec and blocks until they exit.
type OSExecutor struct{}

func (OSExecutor) Execute(ctx context.Context, c Command) (Exit, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	configureCommand(cmd)

	var out bytes.Buffer
	if c.Capture {
		cmd.Stdout = &out
		cmd.Stderr = &out
	} else {
		inheritStdio(cmd)
	}

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		return Exit{Code: code, Signaled: code == -1, Output: out.Bytes()}, nil
	}
	if err != nil {
		return Exit{}, err
	}
	return Exit{Output: out.Bytes()}, nil
}

// inheritStdio wires the child to our stdio. A GUI-subsystem build on Windows has
// no console handles, in which case os.Stdout and friends are nil.
func inheritStdio(cmd *exec.Cmd) {
	if os.Stdin != nil {
		cmd.Stdin = os.Stdin
	}
	if os.Stdout != nil {
		cmd.Stdout = os.Stdout
	}
	if os.Stderr != nil {
		cmd.Stderr = os.Stderr
	}
}
