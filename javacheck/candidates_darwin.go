//go:build darwin

package javacheck

import (
	"os"
	"path/filepath"
)

// FallbackCommand is resolved through PATH once every candidate has failed.
const FallbackCommand = "java"

const systemJVMDir = "/Library/Java/JavaVirtualMachines"

// PlatformSources returns the macOS lookups in priority order: runtimes bundled
// by the launcher first, then JVMs registered with the system, then JAVA_HOME.
func PlatformSources() Sources {
	return Sources{
		BundleSource{
			Label:    "launcher runtimes",
			Root:     ExistingDir(launcherDataDir),
			SubPaths: MacRuntimePaths(),
		},
		JVMDirSource{
			Dir:         systemJVMDir,
			Executables: []string{"Contents/Home/bin/java", "bin/java"},
		},
		BundleSource{
			Label:    "JAVA_HOME",
			Root:     EnvRoot(os.Getenv, "JAVA_HOME"),
			SubPaths: []string{"bin/java"},
		},
	}
}

func launcherDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "Application Support", "minecraft"), nil
}
