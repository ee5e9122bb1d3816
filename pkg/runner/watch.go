package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/gobasic/internal/logging"
)

// WatchDebounce is how long Watch waits after the last change before it
// re-checks the changed files.
const WatchDebounce = 200 * time.Millisecond

// Watch runs once over everything opts selects, then again over each batch
// of changed files until ctx is done. Every result is passed to handle.
// Watch never writes: opts.Engine.Write is ignored.
func (r *Runner) Watch(ctx context.Context, opts Options, handle func(*Result)) error {
	logger := logging.FromContext(ctx)
	opts.Engine.Write = false

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	opts.WorkingDir = workDir

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	explicit, dirs, err := watchTargets(ctx, workDir, opts)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	logger.Debug("watching", logging.FieldPaths, dirs)

	result, err := r.Run(ctx, opts)
	if err != nil {
		return err
	}
	handle(result)

	pending := make(map[string]struct{})
	timer := time.NewTimer(WatchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			info, err := os.Stat(event.Name)
			if err != nil {
				continue
			}
			if info.IsDir() {
				if !isHidden(event.Name) && !matchesExcludePattern(relativeTo(workDir, event.Name), opts.ExcludeGlobs) {
					if err := watcher.Add(event.Name); err != nil {
						logger.Warn("cannot watch directory", logging.FieldPath, event.Name, logging.FieldError, err)
					}
				}
				continue
			}
			if _, ok := explicit[event.Name]; !ok && (isHidden(event.Name) || !matchesFile(event.Name, relativeTo(workDir, event.Name), opts)) {
				continue
			}
			logger.Debug("changed", logging.FieldPath, event.Name, logging.FieldEvent, event.Op.String())
			pending[event.Name] = struct{}{}
			timer.Reset(WatchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", logging.FieldError, err)

		case <-timer.C:
			files := make([]string, 0, len(pending))
			for path := range pending {
				files = append(files, path)
			}
			clear(pending)
			sort.Strings(files)

			result, err := r.RunFiles(ctx, files, opts)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			handle(result)
		}
	}
}

// watchTargets returns the explicitly named files and every directory to
// watch. A named file is watched through its parent directory.
func watchTargets(ctx context.Context, workDir string, opts Options) (map[string]struct{}, []string, error) {
	explicit := make(map[string]struct{})
	seen := make(map[string]struct{})
	var dirs []string
	add := func(dir string) {
		if _, ok := seen[dir]; !ok {
			seen[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}

	for _, p := range opts.effectivePaths() {
		abs := p
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			explicit[abs] = struct{}{}
			add(filepath.Dir(abs))
			continue
		}

		err = filepath.WalkDir(abs, func(path string, entry fs.DirEntry, walkErr error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if walkErr != nil {
				if os.IsPermission(walkErr) {
					return nil
				}
				return walkErr
			}
			if !entry.IsDir() {
				return nil
			}
			if path != abs && (isHidden(path) || matchesExcludePattern(relativeTo(workDir, path), opts.ExcludeGlobs)) {
				return filepath.SkipDir
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, nil, fmt.Errorf("walk directory %s: %w", abs, err)
		}
	}

	sort.Strings(dirs)
	return explicit, dirs, nil
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
