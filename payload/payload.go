// Package payload materialises the embedded installer archive on disk.
package payload

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	fileSuffix = "quilt-installer.jar"
	lockSuffix = ".lock"

	// Payloads without a lock file are left alone until they are this old.
	orphanAge = 24 * time.Hour
)

// InstallerJar is the installer archive bundled into the executable.
//
//go:embed assets/native-quilt-installer.jar
var InstallerJar []byte

// Payload is an extracted installer archive. The lock beside it stays held until
// Release, which tells later runs the file is still in use.
type Payload struct {
	Path string
	lock *flock.Flock
}

// Extract writes data to a new, uniquely named file in dir.
func Extract(dir string, data []byte) (*Payload, error) {
	path := filepath.Join(dir, uuid.NewString()+"-"+fileSuffix)

	lock := flock.New(path + lockSuffix)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking payload: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("payload lock %s is held by another process", lock.Path())
	}

	if err := writeNew(path, data); err != nil {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
		return nil, err
	}

	log.Debugf("Extracted installer (%d bytes) to %s", len(data), path)
	return &Payload{Path: path, lock: lock}, nil
}

func writeNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating payload: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing payload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing payload: %w", err)
	}
	return nil
}

// Release drops the lock and deletes the lock file. The payload itself is left for
// the OS temp cleanup, or for Sweep once it is older than a day.
func (p *Payload) Release() error {
	if p.lock == nil {
		return nil
	}
	if err := p.lock.Unlock(); err != nil {
		return fmt.Errorf("unlocking payload: %w", err)
	}
	if err := os.Remove(p.lock.Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing payload lock: %w", err)
	}
	return nil
}

// Sweep removes payloads left in dir by earlier runs, skipping keep. A payload is
// removed when its lock can be taken, or when it has no lock file and is older than
// a day. It returns the removed paths; failures are only logged.
func Sweep(dir, keep string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+fileSuffix))
	if err != nil {
		log.Debugf("Listing old payloads: %v", err)
		return nil
	}

	var removed []string
	for _, jar := range matches {
		if jar == keep {
			continue
		}
		if sweepOne(jar) {
			removed = append(removed, jar)
		}
	}
	if len(removed) > 0 {
		log.Infof("Removed %d stale installer payloads", len(removed))
	}
	return removed
}

func sweepOne(jar string) bool {
	lockPath := jar + lockSuffix
	if _, err := os.Stat(lockPath); os.IsNotExist(err) {
		info, err := os.Stat(jar)
		if err != nil || time.Since(info.ModTime()) < orphanAge {
			return false
		}
		return remove(jar)
	}

	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil || !locked {
		return false
	}
	ok := remove(jar)
	if err := lock.Unlock(); err != nil {
		log.Debugf("Unlocking %s: %v", lockPath, err)
	}
	if ok {
		if err := os.Remove(lockPath); err != nil {
			log.Debugf("Removing %s: %v", lockPath, err)
		}
	}
	return ok
}

func remove(path string) bool {
	if err := os.Remove(path); err != nil {
		log.Debugf("Removing %s: %v", path, err)
		return false
	}
	return true
}
