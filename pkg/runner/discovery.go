package runner

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yaklabco/gobasic/pkg/langdetect"
)

// sniffBytes bounds how much of a file content detection reads.
const sniffBytes = 16 << 10

// Discover finds BASIC files matching opts under the given working
// directory. It returns a deterministically sorted list of absolute paths.
//
// A file named directly in opts.Paths is always kept unless an exclude glob
// matches it; its extension is not checked. Files found by walking a
// directory must carry one of the extensions, or look like BASIC when
// opts.Detect is set.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			if !matchesExcludePattern(relativeTo(workDir, absPath), opts.ExcludeGlobs) {
				add(absPath)
			}
			continue
		}

		discovered, err := walkDirectory(ctx, absPath, workDir, opts)
		if err != nil {
			return nil, err
		}
		for _, f := range discovered {
			add(f)
		}
	}

	sort.Strings(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

func relativeTo(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		return path
	}
	return rel
}

// walkDirectory recursively walks a directory and returns matching files.
func walkDirectory(ctx context.Context, root, workDir string, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath := relativeTo(workDir, path)

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if matchesExcludePattern(relPath, opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // Intentionally skip broken symlinks
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Intentionally skip inaccessible symlink targets
			}
			if info.IsDir() {
				if !opts.FollowSymlinks {
					return nil
				}
				// Walk the target; WalkDir uses Lstat on its root.
				subFiles, err := walkDirectory(ctx, realPath, workDir, opts)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if matchesFile(path, relPath, opts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// matchesFile checks a walked file against the inclusion criteria.
func matchesFile(path, relPath string, opts Options) bool {
	if matchesExcludePattern(relPath, opts.ExcludeGlobs) {
		return false
	}
	if len(opts.IncludeGlobs) > 0 && !matchesIncludePattern(relPath, opts.IncludeGlobs) {
		return false
	}
	if hasMatchingExtension(path, opts.effectiveExtensions()) {
		return true
	}
	return opts.Detect && looksLikeBasic(path)
}

func hasMatchingExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// looksLikeBasic classifies the head of the file.
func looksLikeBasic(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head, err := io.ReadAll(io.LimitReader(f, sniffBytes))
	if err != nil {
		return false
	}
	return langdetect.IsBasic(langdetect.Detect(path, head))
}

func matchesExcludePattern(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

func matchesIncludePattern(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a glob pattern. Patterns without a slash
// also match the base name, and ** matches any number of directories, as in
// "OLD/**" or "**/*.BAK".
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchSegments(strings.Split(path, "/"), strings.Split(pattern, "/"))
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	if strings.Contains(pattern, "/") {
		return false
	}
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// matchSegments matches path segments against pattern segments, where a
// "**" segment consumes zero or more path segments.
func matchSegments(path, pattern []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			for i := 0; i <= len(path); i++ {
				if matchSegments(path[i:], rest) {
					return true
				}
			}
			return false
		}
		if len(path) == 0 {
			return false
		}
		if matched, err := filepath.Match(pattern[0], path[0]); err != nil || !matched {
			return false
		}
		path, pattern = path[1:], pattern[1:]
	}
	return len(path) == 0
}
