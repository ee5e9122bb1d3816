package pretty_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gobasic/internal/ui/pretty"
	"github.com/yaklabco/gobasic/pkg/document"
)

func TestFormatDiagnostic(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	diag := &document.Diagnostic{
		Line:    12,
		Column:  7,
		Message: "expected expression",
		Text:    "PRINT (",
	}

	tests := []struct {
		name        string
		severity    string
		showContext bool
		want        []string
		notWant     []string
	}{
		{
			name:     "location and message",
			severity: pretty.SeverityError,
			want:     []string{"GAME.BAS:12:7", "error", "expected expression"},
			notWant:  []string{"^"},
		},
		{
			name:        "source context with caret",
			severity:    pretty.SeverityWarning,
			showContext: true,
			want:        []string{"warning", "        PRINT (\n", "        " + "      ^\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := styles.FormatDiagnostic("GAME.BAS", diag, tt.severity, tt.showContext)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, got, w)
			}
		})
	}
}

func TestFormatSourceContext_KeepsTabs(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	got := styles.FormatSourceContext("\tX = (", 6)
	assert.Equal(t, "        \tX = (\n        \t    ^\n", got)
}

func TestFormatSourceContext_ZeroColumn(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.NotContains(t, styles.FormatSourceContext("CLS", 0), "^")
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "GAME.BAS", styles.FormatFileHeader("GAME.BAS", 0))
	assert.Equal(t, "GAME.BAS (1 syntax error)", styles.FormatFileHeader("GAME.BAS", 1))
	assert.Equal(t, "GAME.BAS (3 syntax errors)", styles.FormatFileHeader("GAME.BAS", 3))
}

func TestFormatFileError(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	got := styles.FormatFileError("GAME.BAS", errors.New("permission denied"))
	assert.Equal(t, "GAME.BAS: error: permission denied\n", got)
}
