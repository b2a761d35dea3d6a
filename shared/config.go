package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/magiconair/properties"
	log "github.com/sirupsen/logrus"
)

// OverrideFileName is looked up next to the executable.
const OverrideFileName = "quilt-installer.properties"

//go:embed bootstrap.properties
var defaultProperties []byte

// Config holds the settings the bootstrap reads before launching anything.
type Config struct {
	JREHelpURL            string
	OSIssuesURL           string
	LastResortURL         string
	JavaVersionConstraint string
	LogLevel              string

	// Files that were found and merged over the embedded defaults, in order.
	Loaded []string
}

// LoadConfig merges the embedded defaults with the optional override files, later files
// winning. Missing override files are ignored; unreadable or malformed ones are errors.
func LoadConfig(goos string, overrides ...string) (*Config, error) {
	props, err := properties.Load(defaultProperties, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("loading embedded defaults: %w", err)
	}

	var loaded []string
	for _, path := range overrides {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Debugf("No config override at %s", path)
			continue
		}
		override, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		props.Merge(override)
		loaded = append(loaded, path)
	}

	return &Config{
		JREHelpURL:            props.GetString("url.jre.help."+goos, props.GetString("url.jre.help", "")),
		OSIssuesURL:           props.GetString("url.os.issues", ""),
		LastResortURL:         props.GetString("url.last.resort", ""),
		JavaVersionConstraint: props.GetString("java.version.constraint", ""),
		LogLevel:              props.GetString("log.level", "info"),
		Loaded:                loaded,
	}, nil
}

// ExecutableOverridePath returns the override file path beside the running executable,
// or "" when the executable location cannot be resolved.
func ExecutableOverridePath() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), OverrideFileName)
}
