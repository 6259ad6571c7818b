package config

import (
	"errors"
	"os"
	"time"
)

const backupTimeFormat = "20060102T150405.000000000"

// BackupPath returns the backup file name for path at time t. The timestamp
// is lexicographically sortable, so backups order chronologically and
// back-to-back saves never collide.
func BackupPath(path string, t time.Time) string {
	return path + ".backup_" + t.Format(backupTimeFormat)
}

// Save writes the document back to its file. The existing on-disk content is
// copied to a timestamped backup before anything is written, so a failed
// write never loses the pre-save content. On success the dirty flag clears;
// on failure the document stays dirty.
func (d *Document) Save() error {
	if d.Path == "" {
		return &IOError{Op: "save", Path: "(unset)", Err: errors.New("no config file path set")}
	}

	// New files default to 0644; an existing file keeps its mode, and so do
	// its backups.
	mode := os.FileMode(0644)
	if info, err := os.Stat(d.Path); err == nil {
		mode = info.Mode().Perm()
	}

	orig, err := os.ReadFile(d.Path)
	switch {
	case err == nil:
		backup := BackupPath(d.Path, time.Now())
		if err := os.WriteFile(backup, orig, mode); err != nil {
			return &IOError{Op: "back up", Path: d.Path, Err: err}
		}
	case !os.IsNotExist(err):
		return &IOError{Op: "read", Path: d.Path, Err: err}
	}

	out, err := d.Serialize()
	if err != nil {
		return &IOError{Op: "serialize", Path: d.Path, Err: err}
	}
	if err := os.WriteFile(d.Path, out, mode); err != nil {
		return &IOError{Op: "write", Path: d.Path, Err: err}
	}

	d.dirty = false
	return nil
}
