// Package lockfile keeps a project's lock file pristine around commands that rewrite it.
package lockfile

import (
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
)

const backupSuffix = ".back"

// Guard snapshots a lock file on Acquire and writes the snapshot back on Restore.
// A guard is owned by the command that acquired it and must not be shared.
//
// Typical use:
//
//	guard, err := lockfile.Acquire(path)
//	if err != nil {
//		return err
//	}
//	defer guard.Release()
//	... mutate ...
//	return guard.Restore()
type Guard struct {
	path       string
	backupPath string
	original   []byte
	mode       os.FileMode
	restored   bool
}

// BackupPath returns the sibling path a guard on path writes its backup to.
func BackupPath(path string) string { return path + backupSuffix }

// Acquire snapshots the lock file at path and writes a byte-identical backup next to it.
// It refuses to start while a backup from an earlier run is still present, since only the user
// can tell which of the two files is right. On error no guard is returned and nothing was
// mutated by this call.
func Acquire(path string) (*Guard, error) {
	backupPath := BackupPath(path)

	if err := checkStaleBackup(path, backupPath); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, entities.NewIOError("stat lock file", path, err)
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return nil, entities.NewIOError("read lock file", path, err)
	}

	backup, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return nil, entities.NewIOError("create lock file backup", backupPath, err)
	}
	_, err = backup.Write(original)
	if closeErr := backup.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(backupPath)
		return nil, entities.NewIOError("write lock file backup", backupPath, err)
	}

	logger.Debugf("Saved %s to %s", path, backupPath)
	return &Guard{
		path:       path,
		backupPath: backupPath,
		original:   original,
		mode:       info.Mode().Perm(),
	}, nil
}

func checkStaleBackup(path, backupPath string) error {
	_, err := os.Lstat(backupPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return entities.NewIOError("stat lock file backup", backupPath, err)
	}
	return entities.NewIOError("check lock file backup", backupPath, fmt.Errorf(
		"%w: left by an earlier run; compare it with %s, keep the right one and remove %s",
		os.ErrExist, path, backupPath))
}

// Path returns the guarded lock file.
func (it *Guard) Path() string { return it.path }

// BackupPath returns where the snapshot was written.
func (it *Guard) BackupPath() string { return it.backupPath }

// Original returns the lock file contents captured on Acquire.
func (it *Guard) Original() []byte { return it.original }

// Active reports whether the guard still owes a restore.
func (it *Guard) Active() bool { return !it.restored }

// Restore writes the original contents back and removes the backup.
// Calling it again after it succeeded does nothing.
func (it *Guard) Restore() error {
	if it.restored {
		return nil
	}
	if err := os.WriteFile(it.path, it.original, it.mode); err != nil {
		return entities.NewIOError("restore lock file", it.path, err)
	}
	it.restored = true
	return it.removeBackup()
}

// Keep accepts the current lock file as is and removes the backup.
func (it *Guard) Keep() error {
	if it.restored {
		return nil
	}
	it.restored = true
	return it.removeBackup()
}

// Release restores the lock file if nobody did so explicitly. It is meant to be deferred, so
// failures are logged rather than returned.
func (it *Guard) Release() {
	if it == nil || it.restored {
		return
	}
	if err := it.Restore(); err != nil {
		logger.Errorf("Failed to restore %s, the original contents are kept in %s: %v",
			it.path, it.backupPath, err)
	}
}

func (it *Guard) removeBackup() error {
	if err := os.Remove(it.backupPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return entities.NewIOError("remove lock file backup", it.backupPath, err)
	}
	return nil
}
