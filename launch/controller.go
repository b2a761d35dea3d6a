// Package launch drives the runtime escalation: extract the installer, try each
// candidate runtime, fall back to the PATH, and finally ask the user for help.
package launch

import (
	"context"
	"fmt"

	"quilt-bootstrap/dialog"
	"quilt-bootstrap/javacheck"

	log "github.com/sirupsen/logrus"
)

// Exit codes returned in Result.
const (
	ExitOK               = 0
	ExitLaunchFailed     = 1
	ExitExtractionFailed = 2
)

// State is a step of the escalation. Transitions only move forward.
type State int

const (
	Extracting State = iota
	Probing
	LastResortProbe
	Failed
	Exited
)

func (s State) String() string {
	switch s {
	case Extracting:
		return "extracting"
	case Probing:
		return "probing"
	case LastResortProbe:
		return "last-resort-probe"
	case Failed:
		return "failed"
	case Exited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Prober validates and launches one candidate.
type Prober interface {
	Probe(ctx context.Context, candidate, payloadPath string) javacheck.Outcome
}

// Presenter reports the final failure to the user.
type Presenter interface {
	Present(kind javacheck.Kind) dialog.Action
	ExtractionFailed(err error) dialog.Action
}

// Result is the terminal state handed back to the caller, which owns process exit.
type Result struct {
	ExitCode int
	// Runtime is the candidate that launched the installer, if any.
	Runtime string
	// Probes counts launch probes, including the PATH fallback.
	Probes int
	// Failure is the classification that reached the user; zero on success.
	Failure javacheck.Outcome
	// Action is what the presenter did; meaningful only when ExitCode != 0.
	Action dialog.Action
	// Cancelled is set when the context ended the cascade before a runtime succeeded.
	Cancelled bool
}

// Controller wires the escalation together. Probes run strictly one at a time.
type Controller struct {
	Extract   func() (string, error)
	Locator   javacheck.Locator
	Prober    Prober
	Fallback  string
	Presenter Presenter

	state State
}

// State returns the step the controller last entered.
func (c *Controller) State() State {
	return c.state
}

// Run executes the cascade once and returns its terminal result.
func (c *Controller) Run(ctx context.Context) Result {
	c.enter(Extracting)
	payloadPath, err := c.Extract()
	if err != nil {
		log.Errorf("Extracting installer: %v", err)
		action := c.Presenter.ExtractionFailed(err)
		c.enter(Exited)
		return Result{ExitCode: ExitExtractionFailed, Action: action}
	}

	var res Result
	c.enter(Probing)
	candidates := c.Locator.Locate()
	log.Infof("Found %d runtime candidates", len(candidates))
	for _, candidate := range candidates {
		res.Probes++
		outcome := c.Prober.Probe(ctx, candidate, payloadPath)
		if outcome.OK() {
			return c.succeeded(res, candidate)
		}
		if ctx.Err() != nil {
			return c.cancelled(res, ctx.Err())
		}
		log.Infof("Candidate %s: %s", candidate, outcome)
	}

	c.enter(LastResortProbe)
	res.Probes++
	outcome := c.Prober.Probe(ctx, c.Fallback, payloadPath)
	if outcome.OK() {
		return c.succeeded(res, c.Fallback)
	}
	if ctx.Err() != nil {
		return c.cancelled(res, ctx.Err())
	}
	log.Warnf("Fallback %s: %s", c.Fallback, outcome)

	c.enter(Failed)
	res.Failure = outcome
	res.Action = c.Presenter.Present(outcome.Kind)
	res.ExitCode = ExitLaunchFailed
	c.enter(Exited)
	return res
}

func (c *Controller) succeeded(res Result, runtime string) Result {
	log.Infof("Installer finished using %s", runtime)
	res.Runtime = runtime
	res.ExitCode = ExitOK
	c.enter(Exited)
	return res
}

// cancelled ends the cascade without showing a dialog.
func (c *Controller) cancelled(res Result, err error) Result {
	log.Warnf("Launch cancelled after %d probes: %v", res.Probes, err)
	res.ExitCode = ExitLaunchFailed
	res.Cancelled = true
	res.Action = dialog.NoAction
	c.enter(Exited)
	return res
}

func (c *Controller) enter(s State) {
	log.Debugf("Launch state %s -> %s", c.state, s)
	c.state = s
}
