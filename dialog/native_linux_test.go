//go:build linux

package dialog

import (
	"testing"

	"quilt-bootstrap/javacheck"

	"github.com/stretchr/testify/assert"
)

func TestNativeDialogsUnavailableOnLinux(t *testing.T) {
	_, err := NativeDialogs{}.Confirm("t", "m")
	assert.ErrorIs(t, err, ErrPresentation)
	assert.ErrorIs(t, NativeDialogs{}.Alert("t", "m"), ErrPresentation)

	var opened []string
	p := &Presenter{
		Dialogs: NativeDialogs{},
		Open:    func(url string) error { opened = append(opened, url); return nil },
		URLs:    HelpURLs{LastResort: "https://quiltmc.org/"},
	}
	assert.Equal(t, LastResort, p.Present(javacheck.RuntimeInvalid))
	assert.Equal(t, []string{"https://quiltmc.org/"}, opened)
}
