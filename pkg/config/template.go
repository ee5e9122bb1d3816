package config

// Template returns the commented starter file written by gobasic init.
func Template() []byte {
	return []byte(`# gobasic configuration
#
# Files are looked up as .gobasic.yml, .gobasic.yaml or .gobasic.toml from
# the working directory up to the repository root. GOBASIC_* environment
# variables and command-line flags override what is set here.

# Semver constraint on the gobasic version, for example ">= 1.0".
# required_version: ""

# Line terminator written by gobasic fmt: lf, crlf or auto (keep the file's).
line_endings: auto

# Report broken lines and keep them verbatim instead of failing the file.
tolerant: false

# Canonicalize $STATIC, $DYNAMIC and $INCLUDE metacommands in comments.
normalize_metacommands: true

# Extensions treated as BASIC source.
extensions:
  - .bas
  - .bi
  - .bm

# Also pick up files with other extensions when their content looks like BASIC.
detect: false

# Glob patterns to skip.
ignore: []

# Copy each file to NAME.gobasic.bak before the first rewrite.
backups:
  enabled: false
  mode: sidecar
`)
}
