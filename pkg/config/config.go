// Package config defines gobasic's configuration as plain data. Loading,
// merging and validation live in internal/configloader.
package config

// LineEndings selects the terminator written by the formatter.
type LineEndings string

const (
	// LineEndingsLF always writes "\n".
	LineEndingsLF LineEndings = "lf"
	// LineEndingsCRLF always writes "\r\n", as DOS-era editors expect.
	LineEndingsCRLF LineEndings = "crlf"
	// LineEndingsAuto keeps whatever the file's first line uses.
	LineEndingsAuto LineEndings = "auto"
)

// IsValid reports whether l is a known setting.
func (l LineEndings) IsValid() bool {
	switch l {
	case LineEndingsLF, LineEndingsCRLF, LineEndingsAuto:
		return true
	default:
		return false
	}
}

// OutputFormat selects how results are reported.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// IsValid reports whether f is a known format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSARIF, FormatDiff, FormatSummary:
		return true
	default:
		return false
	}
}

// BackupsConfig controls backups taken before a file is rewritten.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Mode    string `yaml:"mode" toml:"mode"`
}

// Config is the root configuration.
type Config struct {
	// RequiredVersion is a semver constraint the running gobasic must
	// satisfy, such as ">= 1.2".
	RequiredVersion string `yaml:"required_version,omitempty" toml:"required_version,omitempty"`

	// LineEndings is lf, crlf or auto.
	LineEndings LineEndings `yaml:"line_endings" toml:"line_endings"`

	// Tolerant keeps going past syntax errors: broken lines are reported and
	// left as they are instead of failing the file.
	Tolerant bool `yaml:"tolerant" toml:"tolerant"`

	// NormalizeMetacommands canonicalizes $STATIC, $DYNAMIC and $INCLUDE
	// comments.
	NormalizeMetacommands bool `yaml:"normalize_metacommands" toml:"normalize_metacommands"`

	// Extensions lists the file extensions treated as BASIC source.
	Extensions []string `yaml:"extensions" toml:"extensions"`

	// Detect also examines files with other extensions and keeps those that
	// look like BASIC.
	Detect bool `yaml:"detect" toml:"detect"`

	// Ignore holds glob patterns of paths to skip.
	Ignore []string `yaml:"ignore" toml:"ignore"`

	Backups BackupsConfig `yaml:"backups" toml:"backups"`

	// Command-line only settings.

	Write     bool         `yaml:"-" toml:"-"`
	DryRun    bool         `yaml:"-" toml:"-"`
	Format    OutputFormat `yaml:"-" toml:"-"`
	Jobs      int          `yaml:"-" toml:"-"`
	NoBackups bool         `yaml:"-" toml:"-"`
}

// DefaultExtensions are the extensions QuickBASIC used for modules and
// include files.
func DefaultExtensions() []string {
	return []string{".bas", ".bi", ".bm"}
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	return &Config{
		LineEndings:           LineEndingsAuto,
		Tolerant:              false,
		NormalizeMetacommands: true,
		Extensions:            DefaultExtensions(),
		Backups: BackupsConfig{
			Enabled: false,
			Mode:    "sidecar",
		},
		Format: FormatText,
	}
}
