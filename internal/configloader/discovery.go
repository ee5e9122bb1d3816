package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths holds the config files found for one run. An empty field means
// nothing was found at that level.
type ConfigPaths struct {
	System  string
	User    string
	Project string
	// Explicit comes from --config and is never discovered.
	Explicit string
}

const appDir = "gobasic"

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	projectFileNames = []string{".gobasic.yml", ".gobasic.yaml", ".gobasic.toml"}
	dirFileNames     = []string{"config.yaml", "config.yml", "config.toml"}
	vcsMarkers       = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths looks for a system config under /etc/gobasic (or
// %ProgramData%\gobasic), a user config under $XDG_CONFIG_HOME/gobasic, and a
// project config found by FindProjectConfig from workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}
	return &ConfigPaths{
		System:  firstFile(systemDir(), dirFileNames),
		User:    firstFile(userDir(), dirFileNames),
		Project: project,
	}, nil
}

func systemDir() string {
	if runtime.GOOS != "windows" {
		return filepath.Join("/etc", appDir)
	}
	base := os.Getenv("ProgramData")
	if base == "" {
		base = `C:\ProgramData`
	}
	return filepath.Join(base, appDir)
}

func userDir() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appDir)
}

// FindProjectConfig walks up from startDir, or the working directory when it
// is empty, and returns the first project config file. The walk ends without
// a result at a VCS root, the home directory or the filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", startDir, err)
	}
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("find project config: %w", err)
		}
		if path := firstFile(dir, projectFileNames); path != "" {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir || dir == home || firstDir(dir, vcsMarkers) {
			return "", nil
		}
		dir = parent
	}
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// firstDir reports whether any of names is a directory in dir.
func firstDir(dir string, names []string) bool {
	for _, name := range names {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// IsTOMLConfig reports whether path names a TOML file. Everything else is
// read as YAML.
func IsTOMLConfig(path string) bool {
	return filepath.Ext(path) == ".toml"
}
