package javacheck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	name  string
	paths []string
	err   error
}

func (s staticSource) Name() string                  { return s.name }
func (s staticSource) Candidates() ([]string, error) { return s.paths, s.err }

func TestSourcesKeepPriorityOrder(t *testing.T) {
	sources := Sources{
		staticSource{name: "bundled", paths: []string{"b1", "b2"}},
		staticSource{name: "broken", err: errors.New("registry key missing")},
		staticSource{name: "system", paths: []string{"s1", "b1"}},
	}

	assert.Equal(t, []string{"b1", "b2", "s1"}, sources.Locate())
}

func TestSourcesNeverFail(t *testing.T) {
	sources := Sources{
		staticSource{name: "a", err: errors.New("no LOCALAPPDATA")},
		staticSource{name: "b", err: errors.New("no registry")},
	}
	assert.Empty(t, sources.Locate())
	assert.Empty(t, Sources(nil).Locate())
}

func TestBundleSource(t *testing.T) {
	root := t.TempDir()
	src := BundleSource{
		Label:    "launcher",
		Root:     func() (string, error) { return root, nil },
		SubPaths: []string{"runtime/a/bin/javaw.exe", "runtime/b/bin/javaw.exe"},
	}

	got, err := src.Candidates()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "runtime", "a", "bin", "javaw.exe"),
		filepath.Join(root, "runtime", "b", "bin", "javaw.exe"),
	}, got)
}

func TestBundleSourceMissingEnv(t *testing.T) {
	getenv := func(string) string { return "" }
	src := BundleSource{Label: "store", Root: EnvRoot(getenv, "LOCALAPPDATA", "Packages"), SubPaths: WindowsRuntimePaths()}

	got, err := src.Candidates()
	assert.Error(t, err)
	assert.Empty(t, got)
	assert.Empty(t, Sources{src}.Locate())
}

func TestEnvRoot(t *testing.T) {
	getenv := func(name string) string {
		if name == "LOCALAPPDATA" {
			return "base"
		}
		return ""
	}
	root, err := EnvRoot(getenv, "LOCALAPPDATA", "Packages", "Store")()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("base", "Packages", "Store"), root)
}

func TestExistingDir(t *testing.T) {
	dir := t.TempDir()

	got, err := ExistingDir(func() (string, error) { return dir, nil })()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	_, err = ExistingDir(func() (string, error) { return filepath.Join(dir, "minecraft"), nil })()
	assert.Error(t, err)

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = ExistingDir(func() (string, error) { return file, nil })()
	assert.Error(t, err)
}

func TestJVMDirSource(t *testing.T) {
	dir := t.TempDir()
	touch := func(rel string) string {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o755))
		return path
	}

	bundled := touch("temurin-17.jdk/Contents/Home/bin/java")
	// Both layouts present: the first listed executable wins.
	touch("zulu-21.jdk/bin/java")
	zulu := touch("zulu-21.jdk/Contents/Home/bin/java")
	flat := touch("openjdk-11/bin/java")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty.jdk"), 0o755))
	touch("stray-file")

	src := JVMDirSource{Dir: dir, Executables: []string{"Contents/Home/bin/java", "bin/java"}}
	got, err := src.Candidates()
	require.NoError(t, err)
	assert.Equal(t, []string{flat, bundled, zulu}, got)
}

func TestJVMDirSourceMissingDir(t *testing.T) {
	src := JVMDirSource{Dir: filepath.Join(t.TempDir(), "JavaVirtualMachines"), Executables: []string{"bin/java"}}
	_, err := src.Candidates()
	assert.Error(t, err)
}

func TestWindowsRuntimePaths(t *testing.T) {
	paths := WindowsRuntimePaths()
	require.NotEmpty(t, paths)

	assert.Equal(t, "runtime/java-runtime-delta/windows-x64/java-runtime-delta/bin/javaw.exe", paths[0])
	assert.Contains(t, paths, "runtime/jre-legacy/windows-x86/jre-legacy/bin/javaw.exe")
	assert.Equal(t, "runtime/jre-x86/bin/javaw.exe", paths[len(paths)-1])
	for _, p := range paths {
		assert.True(t, strings.HasSuffix(p, "/bin/javaw.exe"), p)
	}
	assert.Less(t, indexOf(paths, "runtime/java-runtime-gamma/windows-x64/java-runtime-gamma/bin/javaw.exe"),
		indexOf(paths, "runtime/jre-legacy/windows-x64/jre-legacy/bin/javaw.exe"))
}

func TestMacRuntimePaths(t *testing.T) {
	paths := MacRuntimePaths()
	require.NotEmpty(t, paths)

	assert.Equal(t, "runtime/java-runtime-delta/mac-os-arm64/java-runtime-delta/jre.bundle/Contents/Home/bin/java", paths[0])
	assert.Contains(t, paths, "runtime/jre-x64/jre.bundle/Contents/Home/bin/java")
	for _, p := range paths {
		assert.True(t, strings.HasSuffix(p, "/bin/java"), p)
	}
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
