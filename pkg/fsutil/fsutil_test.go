package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gobasic/pkg/fsutil"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("returns content and snapshot", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "HELLO.BAS", "PRINT 1\n")
		content, snap, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "PRINT 1\n", string(content))
		assert.Equal(t, path, snap.Path)
		assert.Equal(t, int64(8), snap.Size)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "NOPE.BAS"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := fsutil.ReadFile(ctx, "whatever.bas")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestChanged(t *testing.T) {
	t.Parallel()

	t.Run("untouched file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "A.BAS", "CLS\n")
		_, snap, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		changed, err := fsutil.Changed(context.Background(), snap)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("rewritten file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "A.BAS", "CLS\n")
		_, snap, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("BEEP\n"), 0o600))
		later := snap.ModTime.Add(2 * time.Second)
		require.NoError(t, os.Chtimes(path, later, later))

		changed, err := fsutil.Changed(context.Background(), snap)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("same size and time but new content", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "A.BAS", "CLS\n")
		_, snap, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("RUN\n"), 0o600))
		require.NoError(t, os.Chtimes(path, snap.ModTime, snap.ModTime))

		changed, err := fsutil.Changed(context.Background(), snap)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("deleted file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "A.BAS", "CLS\n")
		_, snap, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		require.NoError(t, os.Remove(path))

		changed, err := fsutil.Changed(context.Background(), snap)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("nil snapshot", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.Changed(context.Background(), nil)
		require.ErrorIs(t, err, fsutil.ErrNilSnapshot)
	})
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("replaces content and mode", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "A.BAS", "old\n")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("new\n"), 0o640))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new\n", string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file left behind")
	})

	t.Run("zero mode uses default", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "NEW.BAS")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("END\n"), 0))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "A.BAS")
		require.Error(t, fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0))
	})
}

func TestBackups(t *testing.T) {
	t.Parallel()

	t.Run("sidecar backup keeps the oldest content", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		path := writeFile(t, t.TempDir(), "A.BAS", "first\n")

		created, err := fsutil.CreateBackup(ctx, path, fsutil.BackupSidecar)
		require.NoError(t, err)
		assert.True(t, created)

		require.NoError(t, os.WriteFile(path, []byte("second\n"), 0o600))
		created, err = fsutil.CreateBackup(ctx, path, fsutil.BackupSidecar)
		require.NoError(t, err)
		assert.False(t, created)

		backup, err := os.ReadFile(path + fsutil.BackupSuffix)
		require.NoError(t, err)
		assert.Equal(t, "first\n", string(backup))

		restored, err := fsutil.RestoreBackup(ctx, path, fsutil.BackupSidecar)
		require.NoError(t, err)
		assert.True(t, restored)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "first\n", string(got))
	})

	t.Run("none mode does nothing", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "A.BAS", "x\n")
		created, err := fsutil.CreateBackup(context.Background(), path, fsutil.BackupNone)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Empty(t, fsutil.BackupPath(path, fsutil.BackupNone))
	})

	t.Run("restore without backup", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "A.BAS", "x\n")
		restored, err := fsutil.RestoreBackup(context.Background(), path, fsutil.BackupSidecar)
		require.NoError(t, err)
		assert.False(t, restored)
	})
}

func TestParseBackupMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    fsutil.BackupMode
		wantErr bool
	}{
		{in: "", want: fsutil.BackupSidecar},
		{in: "sidecar", want: fsutil.BackupSidecar},
		{in: "none", want: fsutil.BackupNone},
		{in: "git", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := fsutil.ParseBackupMode(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, fsutil.ErrUnknownBackupMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
