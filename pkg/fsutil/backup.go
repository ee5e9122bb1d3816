package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// BackupMode selects where backups go.
type BackupMode string

const (
	// BackupSidecar writes name.bas.gobasic.bak next to the source.
	BackupSidecar BackupMode = "sidecar"
	// BackupNone disables backups.
	BackupNone BackupMode = "none"
)

// ErrUnknownBackupMode is returned by ParseBackupMode.
var ErrUnknownBackupMode = errors.New("unknown backup mode")

// ParseBackupMode maps a configuration value to a BackupMode. The empty
// string means sidecar.
func ParseBackupMode(s string) (BackupMode, error) {
	switch BackupMode(s) {
	case "", BackupSidecar:
		return BackupSidecar, nil
	case BackupNone:
		return BackupNone, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackupMode, s)
	}
}

// BackupSuffix is appended to the source path for sidecar backups.
const BackupSuffix = ".gobasic.bak"

// BackupPath returns where the backup of path lives, or "" for BackupNone.
func BackupPath(path string, mode BackupMode) string {
	if mode == BackupNone {
		return ""
	}
	return path + BackupSuffix
}

// CreateBackup copies path to its backup location unless a backup already
// exists, so repeated runs keep the oldest content. It reports whether a
// backup was written.
func CreateBackup(ctx context.Context, path string, mode BackupMode) (bool, error) {
	target := BackupPath(path, mode)
	if target == "" {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("create backup: %w", err)
	}

	if _, err := os.Stat(target); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat backup: %w", err)
	}

	content, snap, err := ReadFile(ctx, path)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read original for backup: %w", err)
	}
	if err := WriteAtomic(ctx, target, content, snap.Mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}

// RestoreBackup copies the backup of path back over it. It reports whether a
// backup was found.
func RestoreBackup(ctx context.Context, path string, mode BackupMode) (bool, error) {
	source := BackupPath(path, mode)
	if source == "" {
		return false, nil
	}
	content, snap, err := ReadFile(ctx, source)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read backup: %w", err)
	}
	if err := WriteAtomic(ctx, path, content, snap.Mode); err != nil {
		return false, fmt.Errorf("restore backup: %w", err)
	}
	return true, nil
}
