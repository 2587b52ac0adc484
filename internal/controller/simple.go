package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/monobump/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints the planned or applied changes as a table.
func (s *SimpleUI) DisplayReport(report m.Report) error {
	if !report.HasChanges() {
		s.printf("%s\n", nothingToDoMessage(report))
		return nil
	}

	s.printf("%s\n\n", baselineSummary(report))

	rows := make([][]string, 0, len(report.Changes))
	for _, c := range report.Changes {
		rows = append(rows, changeRow(c))
	}

	s.printf("%s\n", renderTable([]string{"Component", "Bump", "From", "To"}, rows))
	s.printf("%s\n", aggregateSummary(report))

	for _, warning := range report.Warnings {
		s.printf("warning: %s\n", warning)
	}

	s.printf("%s\n", outcomeSummary(report))

	return nil
}

// DisplayComponents prints every discovered component with its version.
func (s *SimpleUI) DisplayComponents(components []m.ComponentVersion) error {
	if len(components) == 0 {
		s.printf("No components found.\n")
		return nil
	}

	rows := make([][]string, 0, len(components))

	for _, c := range components {
		note := ""
		if c.Normalized {
			note = "missing or malformed record"
		}

		rows = append(rows, []string{c.Name, c.Version.String(), note})
	}

	s.printf("%s", renderTable([]string{"Component", "Version", "Note"}, rows))

	return nil
}

// ConfirmRelease always agrees: plain output has no one to ask.
func (s *SimpleUI) ConfirmRelease(_ m.Report) (bool, error) {
	return true, nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderTable(header []string, rows [][]string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()

	return tableBuffer.String()
}
