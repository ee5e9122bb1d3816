package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gobasic/internal/cli"
)

const (
	canonicalSource = "CLS\nPRINT \"HELLO\"\n"
	sloppySource    = "cls\nprint \"HELLO\"\n"
	brokenSource    = "CLS\nPRINT (\n"
)

// project holds a temp directory with BASIC sources and an explicit config
// file so the tests never pick up configuration from the environment.
type project struct {
	dir    string
	config string
}

func newProject(t *testing.T, files map[string]string) project {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	cfgPath := filepath.Join(t.TempDir(), ".gobasic.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("line_endings: auto\n"), 0o600))

	return project{dir: dir, config: cfgPath}
}

func (p project) path(name string) string {
	return filepath.Join(p.dir, name)
}

type execResult struct {
	stdout string
	stderr string
	err    error
}

func (p project) run(t *testing.T, stdin string, args ...string) execResult {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))

	full := append([]string{args[0], "--config", p.config, "--color", "never"}, args[1:]...)
	cmd.SetArgs(full)

	err := cmd.Execute()
	return execResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestIntegration_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		files      map[string]string
		args       []string
		wantCode   int
		wantOutput []string
	}{
		{
			name:       "canonical tree passes",
			files:      map[string]string{"GAME.BAS": canonicalSource},
			wantCode:   cli.ExitSuccess,
			wantOutput: []string{"No syntax errors"},
		},
		{
			name:       "unformatted file fails with exit 2",
			files:      map[string]string{"GAME.BAS": sloppySource},
			wantCode:   cli.ExitNotFormatted,
			wantOutput: []string{"GAME.BAS", "not formatted"},
		},
		{
			name:     "syntax-only ignores formatting",
			files:    map[string]string{"GAME.BAS": sloppySource},
			args:     []string{"--syntax-only"},
			wantCode: cli.ExitSuccess,
		},
		{
			name:       "syntax error fails with exit 1",
			files:      map[string]string{"GAME.BAS": canonicalSource, "BROKEN.BAS": brokenSource},
			wantCode:   cli.ExitSyntaxErrors,
			wantOutput: []string{"BROKEN.BAS:2:", "1 syntax error"},
		},
		{
			name:     "ignore pattern skips the broken file",
			files:    map[string]string{"GAME.BAS": canonicalSource, "OLD/BROKEN.BAS": brokenSource},
			args:     []string{"--ignore", "OLD/**"},
			wantCode: cli.ExitSuccess,
		},
		{
			name:     "files with other extensions are not checked",
			files:    map[string]string{"GAME.BAS": canonicalSource, "NOTES.TXT": brokenSource},
			wantCode: cli.ExitSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newProject(t, tt.files)
			args := append([]string{"check", "--no-context"}, tt.args...)
			args = append(args, p.dir)
			res := p.run(t, "", args...)

			assert.Equal(t, tt.wantCode, cli.ExitCode(res.err), "stdout: %s\nstderr: %s", res.stdout, res.stderr)
			for _, want := range tt.wantOutput {
				assert.Contains(t, res.stdout, want)
			}
		})
	}
}

func TestIntegration_CheckJSON(t *testing.T) {
	t.Parallel()

	p := newProject(t, map[string]string{"BROKEN.BAS": brokenSource})
	res := p.run(t, "", "check", "--format", "json", p.dir)
	require.ErrorIs(t, res.err, cli.ErrSyntaxErrorsFound)

	var out struct {
		Version string `json:"version"`
		Files   []struct {
			Path        string `json:"path"`
			Diagnostics []struct {
				Severity string `json:"severity"`
				Line     int    `json:"line"`
			} `json:"diagnostics"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	assert.Equal(t, "1.2.3", out.Version)
	require.Len(t, out.Files, 1)
	require.Len(t, out.Files[0].Diagnostics, 1)
	assert.Equal(t, "error", out.Files[0].Diagnostics[0].Severity)
	assert.Equal(t, 2, out.Files[0].Diagnostics[0].Line)
}

func TestIntegration_CheckTolerant(t *testing.T) {
	t.Parallel()

	p := newProject(t, map[string]string{"BROKEN.BAS": "PRINT (\nCLS\nPRINT (\n"})
	res := p.run(t, "", "check", "--tolerant", "--no-context", p.dir)

	require.ErrorIs(t, res.err, cli.ErrSyntaxErrorsFound)
	assert.Contains(t, res.stdout, "BROKEN.BAS:1:")
	assert.Contains(t, res.stdout, "BROKEN.BAS:3:")
	assert.Contains(t, res.stdout, "warning")
}

func TestIntegration_FmtPrintsCanonicalText(t *testing.T) {
	t.Parallel()

	p := newProject(t, map[string]string{"GAME.BAS": sloppySource})
	res := p.run(t, "", "fmt", p.path("GAME.BAS"))

	require.NoError(t, res.err)
	assert.Equal(t, canonicalSource, res.stdout)

	got, err := os.ReadFile(p.path("GAME.BAS"))
	require.NoError(t, err)
	assert.Equal(t, sloppySource, string(got), "fmt without --write must not touch the file")
}

func TestIntegration_FmtWrite(t *testing.T) {
	t.Parallel()

	p := newProject(t, map[string]string{"GAME.BAS": sloppySource, "BROKEN.BAS": brokenSource})
	res := p.run(t, "", "fmt", "-w", "--backup", p.dir)

	require.ErrorIs(t, res.err, cli.ErrSyntaxErrorsFound)

	got, err := os.ReadFile(p.path("GAME.BAS"))
	require.NoError(t, err)
	assert.Equal(t, canonicalSource, string(got))

	backup, err := os.ReadFile(p.path("GAME.BAS") + ".gobasic.bak")
	require.NoError(t, err)
	assert.Equal(t, sloppySource, string(backup))

	broken, err := os.ReadFile(p.path("BROKEN.BAS"))
	require.NoError(t, err)
	assert.Equal(t, brokenSource, string(broken), "a file that fails to parse is never rewritten")
}

func TestIntegration_FmtDryRun(t *testing.T) {
	t.Parallel()

	p := newProject(t, map[string]string{"GAME.BAS": sloppySource})
	res := p.run(t, "", "fmt", "-w", "--dry-run", "--format", "diff", p.dir)

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "-cls")
	assert.Contains(t, res.stdout, "+CLS")

	got, err := os.ReadFile(p.path("GAME.BAS"))
	require.NoError(t, err)
	assert.Equal(t, sloppySource, string(got))
}

func TestIntegration_FmtStdin(t *testing.T) {
	t.Parallel()

	t.Run("canonical text on stdout", func(t *testing.T) {
		t.Parallel()

		p := newProject(t, nil)
		res := p.run(t, "if x then y = 1 else y = 2\n", "fmt", "-")

		require.NoError(t, res.err)
		assert.Equal(t, "IF x THEN y = 1 ELSE y = 2\n", res.stdout)
	})

	t.Run("syntax error on stderr", func(t *testing.T) {
		t.Parallel()

		p := newProject(t, nil)
		res := p.run(t, brokenSource, "fmt", "-")

		require.ErrorIs(t, res.err, cli.ErrSyntaxErrorsFound)
		assert.Empty(t, res.stdout)
		assert.Contains(t, res.stderr, "<stdin>:2:")
	})

	t.Run("tolerant keeps broken lines", func(t *testing.T) {
		t.Parallel()

		p := newProject(t, nil)
		res := p.run(t, "cls\nPRINT (\n", "fmt", "--tolerant", "-")

		require.ErrorIs(t, res.err, cli.ErrSyntaxErrorsFound)
		assert.Equal(t, "CLS\nPRINT (\n", res.stdout)
		assert.Contains(t, res.stderr, "warning")
	})
}

func TestIntegration_Parse(t *testing.T) {
	t.Parallel()

	source := "'$INCLUDE: 'QB.BI'\nDECLARE SUB Greet ()\nCALL Greet\nEND\n\nSUB Greet\n    PRINT \"HI\"\nEND SUB\n"
	p := newProject(t, map[string]string{"MAIN.BAS": source})

	t.Run("outline", func(t *testing.T) {
		t.Parallel()

		res := p.run(t, "", "parse", p.path("MAIN.BAS"))
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "MAIN.BAS")
		assert.Contains(t, res.stdout, "Greet")
		assert.Contains(t, res.stdout, "QB.BI")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		res := p.run(t, "", "parse", "--json", p.path("MAIN.BAS"))
		require.NoError(t, res.err)

		var out []struct {
			Path    string `json:"path"`
			Outline struct {
				Elements []struct {
					Kind string `json:"kind"`
					Name string `json:"name"`
				} `json:"elements"`
				Includes []struct {
					File string `json:"file"`
				} `json:"includes"`
			} `json:"outline"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
		require.Len(t, out, 1)
		require.Len(t, out[0].Outline.Elements, 2)
		assert.Equal(t, "Greet", out[0].Outline.Elements[1].Name)
		require.Len(t, out[0].Outline.Includes, 1)
		assert.Equal(t, "QB.BI", out[0].Outline.Includes[0].File)
	})

	t.Run("unit", func(t *testing.T) {
		t.Parallel()

		res := p.run(t, "", "parse", "--unit", p.path("MAIN.BAS"))
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "SUB Greet")
	})

	t.Run("broken file", func(t *testing.T) {
		t.Parallel()

		broken := newProject(t, map[string]string{"BROKEN.BAS": brokenSource})
		res := broken.run(t, "", "parse", broken.path("BROKEN.BAS"))
		require.ErrorIs(t, res.err, cli.ErrSyntaxErrorsFound)
		assert.Contains(t, res.stderr, "BROKEN.BAS:2:")
	})
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	p := newProject(t, map[string]string{"GAME.BAS": canonicalSource})
	require.NoError(t, os.WriteFile(p.config, []byte("line_endings: sideways\n"), 0o600))

	res := p.run(t, "", "check", p.dir)
	require.ErrorIs(t, res.err, cli.ErrInvalidConfig)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(res.err))
}

func TestIntegration_RequiredVersion(t *testing.T) {
	t.Parallel()

	p := newProject(t, map[string]string{"GAME.BAS": canonicalSource})
	require.NoError(t, os.WriteFile(p.config, []byte("required_version: \">= 2.0.0\"\n"), 0o600))

	res := p.run(t, "", "check", p.dir)
	require.ErrorIs(t, res.err, cli.ErrInvalidConfig)
	assert.Contains(t, res.err.Error(), "required_version")
}

func TestIntegration_Config(t *testing.T) {
	t.Parallel()

	t.Run("shows effective settings", func(t *testing.T) {
		t.Parallel()

		p := newProject(t, nil)
		require.NoError(t, os.WriteFile(p.config, []byte("tolerant: true\n"), 0o600))

		res := p.run(t, "", "config")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "tolerant: true")
		assert.Contains(t, res.stdout, "# loaded from "+p.config)
	})

	t.Run("lists environment variables", func(t *testing.T) {
		t.Parallel()

		p := newProject(t, nil)
		res := p.run(t, "", "config", "--env")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "GOBASIC_TOLERANT")
		assert.Contains(t, res.stdout, "GOBASIC_LINE_ENDINGS")
	})
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	t.Run("writes yaml", func(t *testing.T) {
		t.Parallel()

		p := newProject(t, nil)
		out := filepath.Join(p.dir, ".gobasic.yml")
		res := p.run(t, "", "init", "-o", out)
		require.NoError(t, res.err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "line_endings")
	})

	t.Run("writes toml", func(t *testing.T) {
		t.Parallel()

		p := newProject(t, nil)
		out := filepath.Join(p.dir, ".gobasic.toml")
		res := p.run(t, "", "init", "--toml", "-o", out)
		require.NoError(t, res.err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "line_endings = ")
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		p := newProject(t, map[string]string{".gobasic.yml": "tolerant: true\n"})
		out := p.path(".gobasic.yml")

		res := p.run(t, "", "init", "-o", out)
		require.Error(t, res.err)

		res = p.run(t, "", "init", "--force", "-o", out)
		require.NoError(t, res.err)
	})
}

func TestIntegration_Version(t *testing.T) {
	t.Parallel()

	p := newProject(t, nil)

	res := p.run(t, "", "version", "--short")
	require.NoError(t, res.err)
	assert.Equal(t, "1.2.3\n", res.stdout)

	res = p.run(t, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "abc123")
}
