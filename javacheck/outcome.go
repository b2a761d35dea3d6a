package javacheck

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

// Kind is the classification of one launch attempt.
type Kind int

const (
	// Success means the runtime started and the installer exited cleanly.
	Success Kind = iota
	// RuntimeInvalid covers a missing or non-executable runtime and any non-zero exit.
	RuntimeInvalid
	// PermissionDenied means the OS refused to execute the runtime.
	PermissionDenied
	// OsError is any other failure to spawn the runtime.
	OsError
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case RuntimeInvalid:
		return "runtime-invalid"
	case PermissionDenied:
		return "permission-denied"
	case OsError:
		return "os-error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the result of probing one candidate. Err is set whenever the failure
// came from the OS rather than from the child's exit status.
type Outcome struct {
	Kind Kind
	Err  error
}

// OK reports whether the outcome is Success.
func (o Outcome) OK() bool {
	return o.Kind == Success
}

func (o Outcome) String() string {
	if o.Err != nil {
		return fmt.Sprintf("%s: %v", o.Kind, o.Err)
	}
	return o.Kind.String()
}

// ClassifySpawnError maps an error returned while starting a process.
// A nil error is not a spawn failure and classifies as Success.
func ClassifySpawnError(err error) Outcome {
	switch {
	case err == nil:
		return Outcome{Kind: Success}
	case errors.Is(err, exec.ErrNotFound),
		errors.Is(err, exec.ErrDot),
		errors.Is(err, fs.ErrNotExist),
		isBadExecutable(err):
		return Outcome{Kind: RuntimeInvalid, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return Outcome{Kind: PermissionDenied, Err: err}
	default:
		return Outcome{Kind: OsError, Err: err}
	}
}

// ClassifyExit maps the exit status of a child that did start. A child killed by a
// signal has no exit code and is treated like a runtime that failed to start.
func ClassifyExit(e Exit) Outcome {
	if e.Code == 0 && !e.Signaled {
		return Outcome{Kind: Success}
	}
	return Outcome{Kind: RuntimeInvalid}
}
