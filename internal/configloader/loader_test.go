package configloader

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gobasic/pkg/config"
)

func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(t.TempDir()))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	assert.Equal(t, config.LineEndingsAuto, result.Config.LineEndings)
	assert.True(t, result.Config.NormalizeMetacommands)
	assert.Equal(t, config.DefaultExtensions(), result.Config.Extensions)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, ".gobasic.yml", "line_endings: crlf\nnormalize_metacommands: false\n")

	result, err := Load(context.Background(), isolated(dir))
	require.NoError(t, err)

	assert.Equal(t, config.LineEndingsCRLF, result.Config.LineEndings)
	assert.False(t, result.Config.NormalizeMetacommands, "a file can switch a default off")
	assert.Equal(t, config.DefaultExtensions(), result.Config.Extensions, "absent keys keep defaults")
	assert.Len(t, result.LoadedFrom, 1)
}

func TestLoad_ProjectConfigSearchesUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	writeConfigFile(t, root, ".gobasic.toml", "tolerant = true\n")
	nested := filepath.Join(root, "SRC", "GAMES")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(context.Background(), isolated(nested))
	require.NoError(t, err)

	assert.True(t, result.Config.Tolerant)
	assert.Equal(t, filepath.Join(root, ".gobasic.toml"), result.Paths.Project)
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeConfigFile(t, outer, ".gobasic.yml", "tolerant: true\n")
	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	path, err := FindProjectConfig(context.Background(), repo)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, ".gobasic.yml", "line_endings: crlf\ntolerant: true\n")
	explicit := writeConfigFile(t, dir, "ci.toml", "line_endings = \"lf\"\n")

	opts := isolated(dir)
	opts.ExplicitPath = explicit
	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.LineEndingsLF, result.Config.LineEndings)
	assert.True(t, result.Config.Tolerant, "project settings stay underneath the explicit file")
	assert.Equal(t, []string{filepath.Join(dir, ".gobasic.yml"), explicit}, result.LoadedFrom)
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, ".gobasic.yml", "line_endings: crlf\n")

	opts := isolated(dir)
	opts.CLIConfig = &config.Config{
		LineEndings: config.LineEndingsLF,
		Format:      config.FormatJSON,
		Jobs:        3,
		Write:       true,
	}
	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.LineEndingsLF, result.Config.LineEndings)
	assert.Equal(t, config.FormatJSON, result.Config.Format)
	assert.Equal(t, 3, result.Config.Jobs)
	assert.True(t, result.Config.Write)
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{name: "bad line endings", file: ".gobasic.yml", content: "line_endings: cr\n", want: "line_endings"},
		{name: "bad backup mode", file: ".gobasic.yml", content: "backups:\n  mode: git\n", want: "backups.mode"},
		{name: "bad extension", file: ".gobasic.yml", content: "extensions: [bas]\n", want: "extensions[0]"},
		{name: "bad glob", file: ".gobasic.yml", content: "ignore: [\"[\"]\n", want: "ignore[0]"},
		{name: "malformed yaml", file: ".gobasic.yml", content: "tolerant: [oops\n", want: "parse yaml"},
		{name: "unknown toml key", file: ".gobasic.toml", content: "colour = 1\n", want: "unknown key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfigFile(t, dir, tt.file, tt.content)

			_, err := Load(context.Background(), isolated(dir))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_RequiredVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		constraint string
		version    string
		wantErr    bool
	}{
		{name: "satisfied", constraint: ">= 1.2", version: "1.4.0"},
		{name: "too old", constraint: ">= 1.2", version: "1.1.9", wantErr: true},
		{name: "development build", constraint: ">= 9", version: "dev"},
		{name: "malformed constraint", constraint: ">>> 1", version: "1.0.0", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfigFile(t, dir, ".gobasic.yml", "required_version: \""+tt.constraint+"\"\n")

			opts := isolated(dir)
			opts.Version = tt.version
			_, err := Load(context.Background(), opts)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "required_version")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolated(t.TempDir()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GOBASIC_TOLERANT", "true")
	t.Setenv("GOBASIC_LINE_ENDINGS", "crlf")
	t.Setenv("GOBASIC_EXTENSIONS", ".bas, .inc")
	t.Setenv("GOBASIC_JOBS", "4")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.True(t, cfg.Tolerant)
	assert.Equal(t, config.LineEndingsCRLF, cfg.LineEndings)
	assert.Equal(t, []string{".bas", ".inc"}, cfg.Extensions)
	assert.Equal(t, 4, cfg.Jobs)
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	t.Setenv("GOBASIC_DETECT", "sometimes")

	err := LoadFromEnv(config.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOBASIC_DETECT")
}

func TestEnvVarNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GOBASIC_BACKUPS_MODE", GetEnvVarName("backups.mode"))
	assert.Empty(t, GetEnvVarName("nope"))
	for name, help := range ListEnvVars() {
		assert.True(t, strings.HasPrefix(name, envVarPrefix), name)
		assert.NotEmpty(t, help, name)
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	got := MergeAll(base, &config.Config{Ignore: []string{"OLD/*"}}, &config.Config{Tolerant: true})

	assert.Equal(t, []string{"OLD/*"}, got.Ignore)
	assert.True(t, got.Tolerant)
	assert.Empty(t, base.Ignore, "inputs are not modified")
	assert.Nil(t, MergeAll())
}

func TestValidate_Warnings(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Extensions = nil
	cfg.Write, cfg.DryRun = true, true

	result := ValidateWithFile(cfg, ".gobasic.yml")
	assert.True(t, result.Valid())
	assert.True(t, result.HasWarnings())
	messages := result.AllMessages()
	require.Len(t, messages, 2)
	assert.Contains(t, strings.Join(messages, "\n"), "warning: .gobasic.yml: extensions")
}

func TestWriteConfig(t *testing.T) {
	t.Parallel()

	t.Run("yaml template loads back", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, ".gobasic.yml")
		require.NoError(t, WriteConfig(WriteOptions{Path: path, NonInteractive: true}))

		result, err := Load(context.Background(), isolated(dir))
		require.NoError(t, err)
		assert.Equal(t, config.NewConfig().Extensions, result.Config.Extensions)
	})

	t.Run("toml defaults load back", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, ".gobasic.toml")
		require.NoError(t, WriteConfig(WriteOptions{Path: path, NonInteractive: true}))

		result, err := Load(context.Background(), isolated(dir))
		require.NoError(t, err)
		assert.Equal(t, config.LineEndingsAuto, result.Config.LineEndings)
	})

	t.Run("existing file needs force", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, t.TempDir(), ".gobasic.yml", "tolerant: true\n")
		err := WriteConfig(WriteOptions{Path: path, In: strings.NewReader("y\n"), Out: &bytes.Buffer{}})
		require.ErrorIs(t, err, ErrConfigExists)

		require.NoError(t, WriteConfig(WriteOptions{Path: path, Force: true}))
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, config.Template(), content)
	})
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"\n", false},
		{"n\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := confirm(strings.NewReader(tt.input), &out, "Overwrite? ")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, "Overwrite? ", out.String())
	}
}
