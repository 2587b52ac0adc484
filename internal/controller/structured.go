package controller

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/monobump/internal/model"
)

// StructuredUI writes machine readable JSON or YAML.
type StructuredUI struct {
	output io.Writer
	format Format
}

// NewStructuredUI creates a UI that encodes results in format.
func NewStructuredUI(output io.Writer, format Format) *StructuredUI {
	return &StructuredUI{output: output, format: format}
}

// DisplayReport encodes the report.
func (s *StructuredUI) DisplayReport(report m.Report) error {
	if report.Changes == nil {
		report.Changes = []m.VersionChange{}
	}

	return s.encode(report)
}

// DisplayComponents encodes the component list.
func (s *StructuredUI) DisplayComponents(components []m.ComponentVersion) error {
	if components == nil {
		components = []m.ComponentVersion{}
	}

	return s.encode(components)
}

// ConfirmRelease always agrees: structured output is for scripts.
func (s *StructuredUI) ConfirmRelease(_ m.Report) (bool, error) {
	return true, nil
}

func (s *StructuredUI) encode(v any) error {
	switch s.format {
	case FormatYAML:
		enc := yaml.NewEncoder(s.output)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	default:
		enc := json.NewEncoder(s.output)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	}
}
