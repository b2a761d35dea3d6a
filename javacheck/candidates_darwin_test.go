//go:build darwin

package javacheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformSourcesOrder(t *testing.T) {
	sources := PlatformSources()
	require.Len(t, sources, 3)
	assert.Equal(t, "launcher runtimes", sources[0].Name())
	assert.Equal(t, "JVM directory "+systemJVMDir, sources[1].Name())
	assert.Equal(t, "JAVA_HOME", sources[2].Name())
}

func TestLauncherRuntimesNeedDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := PlatformSources()[0].Candidates()
	assert.Error(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(home, "Library", "Application Support", "minecraft"), 0o755))
	got, err := PlatformSources()[0].Candidates()
	require.NoError(t, err)
	assert.Len(t, got, len(MacRuntimePaths()))
}
