// Package dialog tells the user why the installer could not be started and points
// them at help.
package dialog

import (
	"errors"
	"fmt"

	"quilt-bootstrap/javacheck"

	log "github.com/sirupsen/logrus"
)

// ErrPresentation is returned by Dialogs when nothing could be shown to the user.
var ErrPresentation = errors.New("dialog could not be displayed")

const title = "Failed to launch installer"

const (
	osIssueMessage = "The installer failed to launch due to issues with the current OS. " +
		"Do you want to open a link for more information?"
	noRuntimeMessage = "The installer failed to launch because it could not find a suitable Java runtime. " +
		"Do you want to open a link for more information?"
	permissionMessage = "The installer failed to launch because the system did not allow a Java runtime to be run. " +
		"Check that your account is allowed to run programs from this location."
	extractionMessage = "The installer could not be unpacked to a temporary folder:\n\n%v"
)

// Dialogs shows blocking modal dialogs.
type Dialogs interface {
	// Confirm asks a yes/no question and reports whether the user accepted.
	Confirm(title, message string) (bool, error)
	// Alert shows a message with a single dismiss button.
	Alert(title, message string) error
}

// HelpURLs are the pages offered to the user.
type HelpURLs struct {
	JREHelp    string
	OSIssues   string
	LastResort string
}

// Action records what the presenter ended up doing.
type Action int

const (
	// NoAction means nothing was shown.
	NoAction Action = iota
	OpenedHelp
	Declined
	Alerted
	LastResort
)

func (a Action) String() string {
	switch a {
	case NoAction:
		return "none"
	case OpenedHelp:
		return "opened-help"
	case Declined:
		return "declined"
	case Alerted:
		return "alerted"
	case LastResort:
		return "last-resort"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Presenter picks the dialog for a failure and follows up on the user's answer.
type Presenter struct {
	Dialogs Dialogs
	Open    func(url string) error
	URLs    HelpURLs
}

// Present shows the dialog for the final launch failure.
func (p *Presenter) Present(kind javacheck.Kind) Action {
	switch kind {
	case javacheck.PermissionDenied:
		return p.alert(permissionMessage)
	case javacheck.OsError:
		return p.confirm(osIssueMessage, p.URLs.OSIssues)
	default:
		return p.confirm(noRuntimeMessage, p.URLs.JREHelp)
	}
}

// ExtractionFailed reports that the payload could not be written.
func (p *Presenter) ExtractionFailed(err error) Action {
	return p.alert(fmt.Sprintf(extractionMessage, err))
}

func (p *Presenter) alert(message string) Action {
	if err := p.Dialogs.Alert(title, message); err != nil {
		log.Warnf("Alert dialog failed: %v", err)
		return p.lastResort()
	}
	return Alerted
}

func (p *Presenter) confirm(message, url string) Action {
	accepted, err := p.Dialogs.Confirm(title, message)
	if err != nil {
		log.Warnf("Confirm dialog failed: %v", err)
		return p.lastResort()
	}
	if !accepted {
		log.Info("User declined to open help")
		return Declined
	}
	p.open(url)
	return OpenedHelp
}

func (p *Presenter) lastResort() Action {
	p.open(p.URLs.LastResort)
	return LastResort
}

func (p *Presenter) open(url string) {
	if err := p.Open(url); err != nil {
		log.Errorf("Could not open %s: %v", url, err)
	}
}
