//go:build !windows && !darwin

package javacheck

// FallbackCommand is resolved through PATH once every candidate has failed.
const FallbackCommand = "java"

// PlatformSources is empty: the official launcher does not publish runtime
// locations on this platform, so only the PATH fallback is tried.
func PlatformSources() Sources {
	return nil
}
