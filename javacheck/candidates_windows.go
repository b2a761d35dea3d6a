//go:build windows

package javacheck

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows/registry"
)

// FallbackCommand is resolved through PATH once every candidate has failed.
const FallbackCommand = "javaw"

const (
	// Sandboxed storage of the Microsoft Store edition of the launcher, under %LOCALAPPDATA%.
	storePackageDir = `Packages\Microsoft.4297127D64EC6_8wekyb3d8bbwe\LocalCache\Local`

	launcherRegistryKey   = `SOFTWARE\Mojang\InstalledProducts\Minecraft Launcher`
	launcherRegistryValue = "InstallLocation"
)

// PlatformSources returns the Windows lookups in priority order: the Store
// sandbox first, then the launcher registered in the registry, then JAVA_HOME.
func PlatformSources() Sources {
	return Sources{
		BundleSource{
			Label:    "Microsoft Store launcher runtimes",
			Root:     EnvRoot(os.Getenv, "LOCALAPPDATA", storePackageDir),
			SubPaths: WindowsRuntimePaths(),
		},
		BundleSource{
			Label:    "registered launcher runtimes",
			Root:     launcherInstallDir,
			SubPaths: WindowsRuntimePaths(),
		},
		BundleSource{
			Label:    "JAVA_HOME",
			Root:     EnvRoot(os.Getenv, "JAVA_HOME"),
			SubPaths: []string{"bin/javaw.exe"},
		},
	}
}

// launcherInstallDir reads the install location the launcher records for the current user.
func launcherInstallDir() (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, launcherRegistryKey, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("opening launcher registry key: %w", err)
	}
	defer func() {
		if err := k.Close(); err != nil {
			log.Warnf("Error closing registry key: %v", err)
		}
	}()

	location, _, err := k.GetStringValue(launcherRegistryValue)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", launcherRegistryValue, err)
	}
	if location == "" {
		return "", fmt.Errorf("%s is empty", launcherRegistryValue)
	}
	return filepath.Clean(location), nil
}
