package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yaklabco/gobasic/pkg/runner"
)

func TestRunner_Watch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"GAME.BAS": basicSource})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results := make(chan *runner.Result, 4)
	done := make(chan error, 1)
	go func() {
		done <- newRunner(true).Watch(ctx, runner.Options{WorkingDir: dir, Jobs: 1}, func(r *runner.Result) {
			results <- r
		})
	}()

	first := receive(t, ctx, results)
	if first.Stats.FilesProcessed != 1 || first.HasSyntaxErrors() {
		t.Fatalf("initial run: got %+v", first.Stats)
	}

	if err := os.WriteFile(filepath.Join(dir, "GAME.BAS"), []byte("PRINT (\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "NOTES.TXT"), []byte("not basic\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	second := receive(t, ctx, results)
	if len(second.Files) != 1 || filepath.Base(second.Files[0].Path) != "GAME.BAS" {
		t.Fatalf("rerun processed %d files, want GAME.BAS only", len(second.Files))
	}
	if !second.HasSyntaxErrors() {
		t.Error("expected the broken line to be reported")
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
}

func TestRunner_Watch_MissingPath(t *testing.T) {
	t.Parallel()

	err := newRunner(true).Watch(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"NONE.BAS"},
	}, func(*runner.Result) {})
	if err == nil {
		t.Fatal("expected an error for a missing path")
	}
}

func receive(t *testing.T, ctx context.Context, results <-chan *runner.Result) *runner.Result {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-ctx.Done():
		t.Fatal("timed out waiting for a watch result")
		return nil
	}
}
