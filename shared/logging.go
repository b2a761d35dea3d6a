package shared

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ConsoleLog is the log path value that keeps logging on stderr.
const ConsoleLog = "console"

// ExtractPackagePath reduces a full source path to a stable, readable package-relative path.
// It strips common repo/module roots while preserving subpackages (e.g. launch/controller.go).
// For non-project paths (deps, stdlib), it returns the original string.
func ExtractPackagePath(p string) string {
	// Normalize for matching; we output forward slashes for our own paths.
	norm := strings.ReplaceAll(p, "\\", "/")

	// Strip repo/module roots when present (dev builds, or builds without -trimpath).
	for _, marker := range []string{"/quilt-bootstrap/", "/native/"} {
		if idx := strings.LastIndex(norm, marker); idx >= 0 {
			return norm[idx+len(marker):]
		}
	}

	// Release builds with -trimpath already report module-relative paths.
	if strings.HasPrefix(norm, "quilt-bootstrap/") {
		return norm[len("quilt-bootstrap/"):]
	}

	return p
}

// DefaultLogPath returns where the bootstrap writes its log when no path is given.
// The executable usually runs without a console, so a file is the only trace left.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "quilt-installer", "bootstrap.log")
}

// InitLog parses and sets log-level input and points the logger at logPath.
func InitLog(logLevel string, logPath string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", logLevel, err)
	}

	if logPath != "" && logPath != ConsoleLog {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		log.SetOutput(&lumberjack.Logger{
			Filename:   filepath.ToSlash(logPath),
			MaxSize:    1, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
		})
	} else {
		log.SetOutput(os.Stderr)
	}

	log.SetReportCaller(true)
	log.SetFormatter(newFormatter())
	log.SetLevel(level)
	return nil
}

func newFormatter() *log.TextFormatter {
	return &log.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		CallerPrettyfier: prettyCaller,
	}
}

func prettyCaller(frame *runtime.Frame) (string, string) {
	return "", fmt.Sprintf("%s:%d", ExtractPackagePath(frame.File), frame.Line)
}
