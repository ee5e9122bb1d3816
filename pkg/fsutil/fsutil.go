// Package fsutil holds the file primitives the formatter relies on: hashed
// reads, change detection between read and write, atomic replacement and
// sidecar backups.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrNilSnapshot      = errors.New("nil snapshot")
	ErrNotFound         = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIsDirectory      = errors.New("path is a directory")
)

// Snapshot records the state of a source file when it was read, so a later
// write can tell whether someone else changed it in between.
type Snapshot struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64
	Hash    [sha256.Size]byte
}

// ReadFile reads path and returns its content with a snapshot.
func ReadFile(ctx context.Context, path string) ([]byte, *Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}

	return content, &Snapshot{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}

// Changed reports whether the file differs from snap. A deleted file counts
// as changed. Size and modification time are compared first; when they
// match, the content is hashed again.
func Changed(ctx context.Context, snap *Snapshot) (bool, error) {
	if snap == nil {
		return false, ErrNilSnapshot
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("check changed: %w", err)
	}

	stat, err := os.Stat(snap.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", snap.Path, err)
	}
	if !stat.ModTime().Equal(snap.ModTime) || stat.Size() != snap.Size {
		return true, nil
	}

	content, err := os.ReadFile(snap.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", snap.Path, err)
	}
	return sha256.Sum256(content) != snap.Hash, nil
}
