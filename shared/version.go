package shared

import "strings"

var (
	bootstrapVersion = "0.1.0-SNAPSHOT"
	buildVersion     = "_TAG_"
)

func init() {
	if buildVersion != ("_" + "TAG" + "_") {
		// set by -ldflags "-X quilt-bootstrap/shared.buildVersion=v1.2.3"
		bootstrapVersion = strings.TrimPrefix(buildVersion, "v")
	}
}

// GetBootstrapVersion returns the version of this executable.
func GetBootstrapVersion() string {
	return bootstrapVersion
}
