package javacheck

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	quotedVersionRegex = regexp.MustCompile(`(?:java|openjdk) version "([^"]+)"`)
	bareVersionRegex   = regexp.MustCompile(`(?:java|openjdk) (\d[^\s]*)`)
	numericPrefixRegex = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:\.(\d+))?`)
)

// ParseJavaVersion extracts the runtime version from `java -version` output.
// Legacy "1.x" numbering is folded so that 1.8.0_392 becomes 8.0.0.
func ParseJavaVersion(output []byte) (*semver.Version, error) {
	var raw string
	if m := quotedVersionRegex.FindSubmatch(output); m != nil {
		raw = string(m[1])
	} else if m := bareVersionRegex.FindSubmatch(output); m != nil {
		raw = string(m[1])
	} else {
		return nil, fmt.Errorf("could not parse java version from output: %q", output)
	}

	if strings.HasPrefix(raw, "1.") {
		raw = strings.TrimPrefix(raw, "1.")
	}
	parts := numericPrefixRegex.FindStringSubmatch(raw)
	if parts == nil {
		return nil, fmt.Errorf("unrecognised java version %q", raw)
	}
	minor, patch := parts[2], parts[3]
	if minor == "" {
		minor = "0"
	}
	if patch == "" {
		patch = "0"
	}
	return semver.NewVersion(fmt.Sprintf("%s.%s.%s", parts[1], minor, patch))
}
