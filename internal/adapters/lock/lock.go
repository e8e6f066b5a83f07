// Package lock provides the exclusive process lock that makes one mapplock
// process the owner of the device state.
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
)

// LockFile is the lock file name under the mapplock home directory
const LockFile = "mapplock.lock"

// ProcessLock is a held exclusive lock
type ProcessLock struct {
	file *os.File
}

// Acquire takes the lock under homeDir without waiting. It returns
// domain.ErrProcessLock when another process holds it.
func Acquire(homeDir string) (*ProcessLock, error) {
	if err := os.MkdirAll(homeDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create home directory: %w", err)
	}

	path := filepath.Join(homeDir, LockFile)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	held, err := tryLock(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !held {
		file.Close()
		return nil, fmt.Errorf("%w (%s)", domain.ErrProcessLock, path)
	}

	// Best effort: record the owner for diagnostics
	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}
	logging.Logger.Debug("Process lock acquired", "path", path)
	return &ProcessLock{file: file}, nil
}

// Release unlocks and closes the lock file
func (l *ProcessLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := unlock(l.file)
	if closeErr := l.file.Close(); err == nil {
		err = closeErr
	}
	l.file = nil
	return err
}
