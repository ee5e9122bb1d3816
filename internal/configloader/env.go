package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gobasic/pkg/config"
)

// envVarPrefix is the prefix for all gobasic environment variables.
const envVarPrefix = "GOBASIC_"

type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"LINE_ENDINGS":           {"line_endings", envTypeString, "Line terminator: lf, crlf or auto"},
	"TOLERANT":               {"tolerant", envTypeBool, "Keep broken lines instead of failing: true or false"},
	"NORMALIZE_METACOMMANDS": {"normalize_metacommands", envTypeBool, "Canonicalize metacommand comments: true or false"},
	"EXTENSIONS":             {"extensions", envTypeSlice, "Comma-separated list of BASIC file extensions"},
	"DETECT":                 {"detect", envTypeBool, "Sniff files with other extensions: true or false"},
	"IGNORE":                 {"ignore", envTypeSlice, "Comma-separated list of ignore patterns"},
	"BACKUPS_ENABLED":        {"backups.enabled", envTypeBool, "Back files up before rewriting: true or false"},
	"BACKUPS_MODE":           {"backups.mode", envTypeString, "Backup mode: sidecar or none"},
	"WRITE":                  {"write", envTypeBool, "Rewrite files in place: true or false"},
	"DRY_RUN":                {"dry_run", envTypeBool, "Dry-run mode: true or false"},
	"JOBS":                   {"jobs", envTypeInt, "Number of parallel workers (0 = auto)"},
	"FORMAT":                 {"format", envTypeString, "Output format: text, json, sarif, diff or summary"},
	"NO_BACKUPS":             {"no_backups", envTypeBool, "Disable backups: true or false"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with GOBASIC_ (e.g., GOBASIC_TOLERANT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}
	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}
	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue splits a comma-separated value, trimming each element.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "line_endings":
		cfg.LineEndings = config.LineEndings(value)
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "backups.mode":
		cfg.Backups.Mode = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "tolerant":
		cfg.Tolerant = value
	case "normalize_metacommands":
		cfg.NormalizeMetacommands = value
	case "detect":
		cfg.Detect = value
	case "backups.enabled":
		cfg.Backups.Enabled = value
	case "write":
		cfg.Write = value
	case "dry_run":
		cfg.DryRun = value
	case "no_backups":
		cfg.NoBackups = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "extensions":
		cfg.Extensions = value
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		out[envVarPrefix+suffix] = mapping.help
	}
	return out
}
