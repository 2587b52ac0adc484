// Package controller renders resolution results and asks for release
// confirmation.
package controller

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/monobump/internal/model"
)

// Format selects how results are rendered.
type Format string

// Available output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// UI defines the interface for presenting results.
// Implementations can use different output methods (simple text, TUI, structured).
type UI interface {
	// DisplayReport renders a resolution run. A report without changes is
	// rendered as "nothing to bump".
	DisplayReport(report m.Report) error
	DisplayComponents(components []m.ComponentVersion) error
	// ConfirmRelease asks before a release commit and tag are created.
	ConfirmRelease(report m.Report) (bool, error)
}

func nothingToDoMessage(report m.Report) string {
	if report.Scanned == 0 {
		return "Nothing to bump - no commits since baseline."
	}

	return "Nothing to bump - no version-affecting conventional commits found."
}

func baselineSummary(report m.Report) string {
	return fmt.Sprintf("Baseline %s: %d commits scanned, %d qualifying, %d merges skipped, %d non-conventional",
		baselineName(report.Baseline), report.Scanned, report.Qualifying, report.SkippedMerges, report.Unconventional)
}

func baselineName(ref m.Reference) string {
	if ref.Name != "" {
		return ref.Name
	}

	return m.CommitRecord{Hash: ref.Hash}.Short()
}

func aggregateSummary(report m.Report) string {
	previous := report.PreviousAggregate
	if previous == "" {
		previous = "(none)"
	}

	return fmt.Sprintf("Aggregate version: %s -> %s", previous, report.Aggregate)
}

func outcomeSummary(report m.Report) string {
	switch {
	case report.DryRun:
		return fmt.Sprintf("Dry run: %d files would be written.", len(report.Files))
	case report.Tag != "":
		return fmt.Sprintf("Wrote %d files and tagged %s.", len(report.Files), report.Tag)
	default:
		return fmt.Sprintf("Wrote %d files.", len(report.Files))
	}
}

func changeRow(c m.VersionChange) []string {
	return []string{c.Component, c.Level.String(), c.From.String(), c.To.String()}
}
