package config

import (
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ListBackups returns the backup files recorded next to the config file at
// path, oldest first. The sortable timestamp suffix makes lexicographic
// order chronological order.
func ListBackups(path string) ([]string, error) {
	matches, err := filepath.Glob(path + ".backup_*")
	if err != nil {
		return nil, &IOError{Op: "list backups for", Path: path, Err: err}
	}
	sort.Strings(matches)
	return matches, nil
}

// RestoreBackup copies the named backup over the config file. The current
// on-disk content gets its own timestamped backup first, so a restore is
// always reversible.
func RestoreBackup(path, backup string) error {
	content, err := os.ReadFile(backup)
	if err != nil {
		return &IOError{Op: "read", Path: backup, Err: err}
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	cur, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := os.WriteFile(BackupPath(path, time.Now()), cur, mode); err != nil {
			return &IOError{Op: "back up", Path: path, Err: err}
		}
	case !os.IsNotExist(err):
		return &IOError{Op: "read", Path: path, Err: err}
	}

	if err := os.WriteFile(path, content, mode); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
