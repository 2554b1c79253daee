package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vyevs/balda"
)

// OutputFormat is how findings are written.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Report is the machine readable result of one run.
type Report struct {
	RunID    string          `json:"runId" yaml:"runId"`
	Grid     []string        `json:"grid" yaml:"grid"`
	Findings []FindingReport `json:"findings" yaml:"findings"`
}

// FindingReport is one found word. Placement rows use the grid file syntax.
type FindingReport struct {
	Word      string     `json:"word" yaml:"word"`
	Placement []string   `json:"placement" yaml:"placement"`
	Path      balda.Path `json:"path" yaml:"path,flow"`
}

func newReport(runID string, grid balda.Grid, findings []balda.Finding) Report {
	r := Report{
		RunID:    runID,
		Grid:     gridRows(grid),
		Findings: make([]FindingReport, 0, len(findings)),
	}
	for _, f := range findings {
		r.Findings = append(r.Findings, FindingReport{
			Word:      f.Word,
			Placement: gridRows(f.Placement),
			Path:      f.Path,
		})
	}
	return r
}

func gridRows(g balda.Grid) []string {
	return strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
}

// writeFindings writes at most limit findings (all if limit is 0) to w.
func writeFindings(w io.Writer, cfg *Config, runID string, grid balda.Grid, findings []balda.Finding) error {
	if cfg.Limit > 0 && len(findings) > cfg.Limit {
		findings = findings[:cfg.Limit]
	}

	switch cfg.Format {
	case FormatText:
		return writeText(w, grid, findings, cfg.Color)

	case FormatJSON:
		data, err := json.MarshalIndent(newReport(runID, grid, findings), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(runID, grid, findings)); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("unsupported format: %s", cfg.Format)
	}
}

func writeText(w io.Writer, grid balda.Grid, findings []balda.Finding, color bool) error {
	var b strings.Builder
	b.WriteString(grid.String())
	b.WriteByte('\n')

	for _, f := range findings {
		if color {
			b.WriteString(f.ColorString(grid))
		} else {
			b.WriteString(f.String())
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
