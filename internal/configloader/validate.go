package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/yaklabco/gobasic/pkg/config"
	"github.com/yaklabco/gobasic/pkg/fsutil"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "backups.mode").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.LineEndings != "" && !cfg.LineEndings.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "line_endings",
			Value:   cfg.LineEndings,
			Message: fmt.Sprintf("invalid line endings %q; must be one of: lf, crlf, auto", cfg.LineEndings),
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, sarif, diff, summary", cfg.Format),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if cfg.Backups.Mode != "" && !IsValidBackupMode(cfg.Backups.Mode) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "backups.mode",
			Value:   cfg.Backups.Mode,
			Message: fmt.Sprintf("invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode),
		})
	}

	if cfg.Write && cfg.DryRun {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "dry_run",
			Message: "dry run is set; files will not be written",
		})
	}

	validateExtensions(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

func validateExtensions(cfg *config.Config, result *ValidationResult) {
	if len(cfg.Extensions) == 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "extensions",
			Message: "no extensions configured; using .bas, .bi and .bm",
		})
	}
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, `/\`) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("extensions[%d]", i),
				Value:   ext,
				Message: fmt.Sprintf("invalid extension %q; must look like .bas", ext),
			})
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// checkRequiredVersion tests version against the configured constraint.
// Development builds are not checked.
func checkRequiredVersion(constraint, version string) *ValidationError {
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return &ValidationError{
			Field:   "required_version",
			Value:   constraint,
			Message: fmt.Sprintf("invalid version constraint: %v", err),
		}
	}
	if version == "" || version == "dev" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil
	}
	if !c.Check(v) {
		return &ValidationError{
			Field:   "required_version",
			Value:   constraint,
			Message: fmt.Sprintf("gobasic %s does not satisfy %q", v, constraint),
		}
	}
	return nil
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

// IsValidBackupMode returns true if the backup mode is valid.
func IsValidBackupMode(mode string) bool {
	_, err := fsutil.ParseBackupMode(mode)
	return err == nil
}
