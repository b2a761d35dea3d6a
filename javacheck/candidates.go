package javacheck

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Locator produces the ordered list of runtime candidates for this host.
type Locator interface {
	Locate() []string
}

// Source is one installation root lookup. It may fail; a failing Source simply
// contributes no candidates.
type Source interface {
	Name() string
	Candidates() ([]string, error)
}

// Sources asks each Source in order and concatenates the results. Errors are
// logged and skipped, and a path already listed is not repeated.
type Sources []Source

func (s Sources) Locate() []string {
	var candidates []string
	seen := make(map[string]bool)
	for _, src := range s {
		found, err := src.Candidates()
		if err != nil {
			log.Debugf("Skipping %s: %v", src.Name(), err)
			continue
		}
		log.Debugf("%s contributed %d candidates", src.Name(), len(found))
		for _, c := range found {
			if seen[c] {
				continue
			}
			seen[c] = true
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// BundleSource joins an installation root with a fixed list of relative paths.
// Existence is not checked; the probe rejects missing runtimes.
type BundleSource struct {
	Label    string
	Root     func() (string, error)
	SubPaths []string
}

func (b BundleSource) Name() string {
	return b.Label
}

func (b BundleSource) Candidates() ([]string, error) {
	root, err := b.Root()
	if err != nil {
		return nil, err
	}
	candidates := make([]string, 0, len(b.SubPaths))
	for _, sub := range b.SubPaths {
		candidates = append(candidates, filepath.Join(root, filepath.FromSlash(sub)))
	}
	return candidates, nil
}

// JVMDirSource treats every immediate subdirectory of Dir as a JVM install and
// keeps the first of Executables that exists inside it.
type JVMDirSource struct {
	Dir         string
	Executables []string
}

func (j JVMDirSource) Name() string {
	return "JVM directory " + j.Dir
}

func (j JVMDirSource) Candidates() ([]string, error) {
	entries, err := os.ReadDir(j.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading JVM directory: %w", err)
	}
	var candidates []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		for _, exe := range j.Executables {
			path := filepath.Join(j.Dir, entry.Name(), filepath.FromSlash(exe))
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				candidates = append(candidates, path)
				break
			}
		}
	}
	return candidates, nil
}

// EnvRoot resolves a root from an environment variable joined with rel.
func EnvRoot(getenv func(string) string, name string, rel ...string) func() (string, error) {
	return func() (string, error) {
		value := getenv(name)
		if value == "" {
			return "", fmt.Errorf("environment variable %s is not set", name)
		}
		return filepath.Join(append([]string{value}, rel...)...), nil
	}
}

// ExistingDir wraps a root lookup and fails when the directory is absent.
func ExistingDir(root func() (string, error)) func() (string, error) {
	return func() (string, error) {
		dir, err := root()
		if err != nil {
			return "", err
		}
		info, err := os.Stat(dir)
		if err != nil {
			return "", err
		}
		if !info.IsDir() {
			return "", fmt.Errorf("%s is not a directory", dir)
		}
		return dir, nil
	}
}

// Runtime component names used by the official launcher, newest first.
var launcherRuntimeComponents = []string{
	"java-runtime-delta",
	"java-runtime-gamma",
	"java-runtime-beta",
	"java-runtime-alpha",
	"jre-legacy",
}

// WindowsRuntimePaths lists javaw.exe locations relative to a launcher root.
func WindowsRuntimePaths() []string {
	var paths []string
	for _, component := range launcherRuntimeComponents {
		for _, platform := range []string{"windows-x64", "windows-x86", "windows-arm64"} {
			paths = append(paths, "runtime/"+component+"/"+platform+"/"+component+"/bin/javaw.exe")
		}
	}
	// Layout used before per-component runtimes.
	return append(paths,
		"runtime/jre-x64/bin/javaw.exe",
		"runtime/jre-x86/bin/javaw.exe",
	)
}

// MacRuntimePaths lists java locations relative to the launcher's data directory.
func MacRuntimePaths() []string {
	var paths []string
	for _, component := range launcherRuntimeComponents {
		for _, platform := range []string{"mac-os-arm64", "mac-os"} {
			paths = append(paths, "runtime/"+component+"/"+platform+"/"+component+"/jre.bundle/Contents/Home/bin/java")
		}
	}
	return append(paths,
		"runtime/jre-x64/jre.bundle/Contents/Home/bin/java",
		"runtime/jre-legacy/jre.bundle/Contents/Home/bin/java",
	)
}
