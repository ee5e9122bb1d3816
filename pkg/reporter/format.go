package reporter

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Format names a report layout.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatSARIF   Format = "sarif"
	FormatDiff    Format = "diff"
	FormatSummary Format = "summary"
)

// ErrUnknownFormat is returned for a format name that is not known.
var ErrUnknownFormat = errors.New("unknown format")

//nolint:gochecknoglobals // Read-only lookup table.
var formats = []Format{FormatText, FormatJSON, FormatSARIF, FormatDiff, FormatSummary}

// ParseFormat maps a --format value to a Format. The empty string is text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	f := Format(name)
	if !f.IsValid() {
		names := make([]string, len(formats))
		for i, known := range formats {
			names[i] = string(known)
		}
		return "", fmt.Errorf("%w %q; valid formats: %s", ErrUnknownFormat, name, strings.Join(names, ", "))
	}
	return f, nil
}

// IsValid reports whether f is one of the known formats.
func (f Format) IsValid() bool {
	return slices.Contains(formats, f)
}
