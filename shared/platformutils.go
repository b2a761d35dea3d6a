package shared

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/host"
	log "github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
)

// IsWSL checks if the program is running under Windows Subsystem for Linux.
func IsWSL() bool {
	version, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	return strings.Contains(string(version), "Microsoft")
}

// GetGoos returns the current operating system identifier.
// Returns "linux" if running under WSL.
func GetGoos() string {
	if IsWSL() {
		return "linux"
	}
	return runtime.GOOS
}

// OpenBrowser opens the specified URL with the system default handler.
func OpenBrowser(url string) error {
	log.Infof("Opening %s", url)
	if err := open.Run(url); err != nil {
		log.Warnf("Failed to open browser: %v", err)
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// LogHostInfo writes a one-line summary of the host platform. Lookup failures are only logged.
func LogHostInfo() {
	info, err := host.Info()
	if err != nil {
		log.Debugf("Could not read host info: %v", err)
		log.Infof("Running on: OS=%s, ARCH=%s", runtime.GOOS, runtime.GOARCH)
		return
	}
	log.Infof("Running on: OS=%s, ARCH=%s, platform=%s %s, kernel=%s",
		runtime.GOOS, runtime.GOARCH, info.Platform, info.PlatformVersion, info.KernelArch)
}
