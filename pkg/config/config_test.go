package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gobasic/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, config.LineEndingsAuto, cfg.LineEndings)
	assert.True(t, cfg.NormalizeMetacommands)
	assert.Equal(t, []string{".bas", ".bi", ".bm"}, cfg.Extensions)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, "sidecar", cfg.Backups.Mode)
}

func TestValidity(t *testing.T) {
	t.Parallel()

	assert.True(t, config.LineEndingsCRLF.IsValid())
	assert.False(t, config.LineEndings("cr").IsValid())
	assert.True(t, config.FormatSARIF.IsValid())
	assert.False(t, config.OutputFormat("table").IsValid())
}

func TestTemplateDecodes(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML(config.Template())
	require.NoError(t, err)

	defaults := config.NewConfig()
	assert.Equal(t, defaults.LineEndings, cfg.LineEndings)
	assert.Equal(t, defaults.NormalizeMetacommands, cfg.NormalizeMetacommands)
	assert.Equal(t, defaults.Extensions, cfg.Extensions)
	assert.Equal(t, defaults.Backups, cfg.Backups)
}

func TestYAML(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte("line_endings: crlf\ntolerant: true\nignore: [\"OLD/**\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, config.LineEndingsCRLF, cfg.LineEndings)
	assert.True(t, cfg.Tolerant)
	assert.Equal(t, []string{"OLD/**"}, cfg.Ignore)

	out, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "line_endings: crlf")
	assert.NotContains(t, string(out), "write", "command-line settings are not persisted")

	_, err = config.FromYAML([]byte("tolerant: [oops"))
	require.Error(t, err)
}

func TestTOML(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromTOML([]byte("line_endings = \"lf\"\nextensions = [\".bas\"]\n\n[backups]\nenabled = true\nmode = \"sidecar\"\n"))
	require.NoError(t, err)
	assert.Equal(t, config.LineEndingsLF, cfg.LineEndings)
	assert.Equal(t, []string{".bas"}, cfg.Extensions)
	assert.True(t, cfg.Backups.Enabled)

	_, err = config.FromTOML([]byte("colour = \"red\"\n"))
	require.ErrorContains(t, err, "unknown key")

	out, err := cfg.ToTOML()
	require.NoError(t, err)
	assert.Contains(t, string(out), `line_endings = "lf"`)
}

func TestClone(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	clone := cfg.Clone()
	clone.Extensions[0] = ".txt"
	assert.Equal(t, ".bas", cfg.Extensions[0])
	assert.Nil(t, (*config.Config)(nil).Clone())
}
