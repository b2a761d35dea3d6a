package shared

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	tests := []struct {
		goos    string
		jreHelp string
	}{
		{"windows", "https://adoptium.net/temurin/releases/?os=windows"},
		{"darwin", "https://adoptium.net/temurin/releases/?os=mac"},
		{"linux", "https://adoptium.net/"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cfg, err := LoadConfig(tt.goos)
			require.NoError(t, err)
			assert.Equal(t, tt.jreHelp, cfg.JREHelpURL)
			assert.Equal(t, "https://forums.quiltmc.org/c/9/", cfg.OSIssuesURL)
			assert.Equal(t, "https://quiltmc.org/", cfg.LastResortURL)
			assert.Equal(t, ">= 17", cfg.JavaVersionConstraint)
			assert.Equal(t, "info", cfg.LogLevel)
			assert.Empty(t, cfg.Loaded)
		})
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	beside := filepath.Join(dir, OverrideFileName)
	require.NoError(t, os.WriteFile(beside, []byte("url.last.resort = https://example.org/\nlog.level = debug\n"), 0o644))
	explicit := filepath.Join(dir, "custom.properties")
	require.NoError(t, os.WriteFile(explicit, []byte("log.level = warn\njava.version.constraint =\n"), 0o644))
	missing := filepath.Join(dir, "missing.properties")

	cfg, err := LoadConfig("windows", beside, missing, "", explicit)
	require.NoError(t, err)

	assert.Equal(t, "https://example.org/", cfg.LastResortURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.JavaVersionConstraint)
	assert.Equal(t, "https://forums.quiltmc.org/c/9/", cfg.OSIssuesURL)
	assert.Equal(t, []string{beside, explicit}, cfg.Loaded)
}

func TestLoadConfigUnreadableOverride(t *testing.T) {
	_, err := LoadConfig("windows", t.TempDir())
	assert.Error(t, err)
}
