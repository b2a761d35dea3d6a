// Package javacheck finds Java runtime candidates on the host and probes them by
// launching the installer archive.
package javacheck

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
	log "github.com/sirupsen/logrus"
)

// Prober validates a candidate runtime and, when it looks usable, runs the
// installer with it.
type Prober struct {
	Executor Executor
	// Constraint filters runtimes by their reported version. Nil accepts any
	// runtime that exits cleanly on -version.
	Constraint *semver.Constraints
	// InstallerArgs are appended after the payload path.
	InstallerArgs []string
}

// NewProber builds a Prober. An empty constraint disables the version check.
func NewProber(executor Executor, constraint string, installerArgs []string) (*Prober, error) {
	p := &Prober{Executor: executor, InstallerArgs: installerArgs}
	if constraint != "" {
		c, err := semver.NewConstraint(constraint)
		if err != nil {
			return nil, fmt.Errorf("parsing java version constraint %q: %w", constraint, err)
		}
		p.Constraint = c
	}
	return p, nil
}

// Probe runs `<candidate> -version` and then `<candidate> -jar <payloadPath>`.
// It never terminates the process; Success is reported to the caller.
func (p *Prober) Probe(ctx context.Context, candidate, payloadPath string) Outcome {
	logger := log.WithField("candidate", candidate)

	exit, err := p.Executor.Execute(ctx, Command{Path: candidate, Args: []string{"-version"}, Capture: true})
	if err != nil {
		outcome := ClassifySpawnError(err)
		logger.Debugf("Version check did not start: %s", outcome)
		return outcome
	}
	if outcome := ClassifyExit(exit); !outcome.OK() {
		logger.Debugf("Version check exited with code %d (signaled=%v)", exit.Code, exit.Signaled)
		return outcome
	}
	if !p.acceptsVersion(logger, exit.Output) {
		return Outcome{Kind: RuntimeInvalid}
	}

	args := append([]string{"-jar", payloadPath}, p.InstallerArgs...)
	logger.Infof("Launching installer")
	exit, err = p.Executor.Execute(ctx, Command{Path: candidate, Args: args})
	if err != nil {
		outcome := ClassifySpawnError(err)
		logger.Warnf("Installer launch did not start: %s", outcome)
		return outcome
	}
	outcome := ClassifyExit(exit)
	if !outcome.OK() {
		logger.Warnf("Installer exited with code %d (signaled=%v)", exit.Code, exit.Signaled)
	}
	return outcome
}

func (p *Prober) acceptsVersion(logger *log.Entry, output []byte) bool {
	if p.Constraint == nil {
		return true
	}
	version, err := ParseJavaVersion(output)
	if err != nil {
		logger.Debugf("Accepting runtime with unparsed version: %v", err)
		return true
	}
	if !p.Constraint.Check(version) {
		logger.Infof("Skipping Java %s: does not satisfy %s", version, p.Constraint)
		return false
	}
	logger.Debugf("Java %s accepted", version)
	return true
}
