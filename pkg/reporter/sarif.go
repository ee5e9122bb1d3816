package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/yaklabco/gobasic/internal/ui/pretty"
	"github.com/yaklabco/gobasic/pkg/engine"
	"github.com/yaklabco/gobasic/pkg/runner"
)

// SARIF version used by this reporter.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// Rule identifiers reported in SARIF output.
const (
	RuleSyntaxError  = "syntax-error"
	RuleNotFormatted = "not-formatted"
)

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes a kind of finding.
type SARIFRule struct {
	ID               string               `json:"id"`
	ShortDescription SARIFMultiformatText `json:"shortDescription"`
	DefaultConfig    *SARIFRuleConfig     `json:"defaultConfiguration,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFResult represents a single finding.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           SARIFRegion           `json:"region"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected text region.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

// SARIFReporter formats results as SARIF.
type SARIFReporter struct {
	opts Options
	out  io.Writer
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{
		opts: opts,
		out:  opts.Writer,
	}
}

// Report implements Reporter. It returns the number of results written.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.out)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}

	return len(output.Runs[0].Results), nil
}

func (r *SARIFReporter) buildOutput(result *runner.Result) *SARIFOutput {
	output := &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs: []SARIFRun{{
			Tool: SARIFTool{
				Driver: SARIFDriver{
					Name:           "gobasic",
					Version:        r.opts.Version,
					InformationURI: "https://github.com/yaklabco/gobasic",
					Rules: []SARIFRule{
						{
							ID:               RuleSyntaxError,
							ShortDescription: SARIFMultiformatText{Text: "Line does not parse as QuickBASIC"},
							DefaultConfig:    &SARIFRuleConfig{Level: "error"},
						},
						{
							ID:               RuleNotFormatted,
							ShortDescription: SARIFMultiformatText{Text: "File differs from its canonical rendering"},
							DefaultConfig:    &SARIFRuleConfig{Level: "note"},
						},
					},
				},
			},
			Results: make([]SARIFResult, 0),
		}},
	}

	if result == nil {
		return output
	}

	run := &output.Runs[0]
	for _, file := range result.Files {
		res := file.Result
		if file.Error != nil || res == nil {
			continue
		}
		uri := filepath.ToSlash(r.opts.displayPath(file.Path))

		level := "error"
		if severity(res) == pretty.SeverityWarning {
			level = "warning"
		}
		for _, diag := range res.Diagnostics {
			run.Results = append(run.Results, SARIFResult{
				RuleID:    RuleSyntaxError,
				Level:     level,
				Message:   SARIFMessage{Text: diag.Message},
				Locations: []SARIFLocation{location(uri, diag.Line, diag.Column)},
			})
		}

		if res.Changed && !res.Written {
			run.Results = append(run.Results, SARIFResult{
				RuleID:    RuleNotFormatted,
				Level:     "note",
				Message:   SARIFMessage{Text: "file is not in canonical form"},
				Locations: []SARIFLocation{location(uri, firstChangedLine(res), 0)},
			})
		}
	}

	return output
}

func location(uri string, line, column int) SARIFLocation {
	if line < 1 {
		line = 1
	}
	return SARIFLocation{
		PhysicalLocation: SARIFPhysicalLocation{
			ArtifactLocation: SARIFArtifactLocation{URI: uri},
			Region:           SARIFRegion{StartLine: line, StartColumn: column},
		},
	}
}

// firstChangedLine returns the first line of the first hunk, or 1 when no
// diff was computed.
func firstChangedLine(res *engine.Result) int {
	if res.Diff == nil || len(res.Diff.Hunks) == 0 {
		return 1
	}
	return res.Diff.Hunks[0].OldStart
}
