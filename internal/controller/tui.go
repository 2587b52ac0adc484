package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/monobump/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			PaddingLeft(2)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			PaddingLeft(2)

	tableContainer = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Margin(0, 1).
			Padding(0, 1)
)

// TUI implements UI with lipgloss styling and a Bubble Tea confirmation prompt.
type TUI struct {
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// DisplayReport renders the changes table and summary.
func (t *TUI) DisplayReport(report m.Report) error {
	if !report.HasChanges() {
		t.println(mutedStyle.Render(nothingToDoMessage(report)))
		return nil
	}

	title := "monobump"
	if report.DryRun {
		title += " (dry run)"
	}

	rows := make([]table.Row, 0, len(report.Changes))
	for _, c := range report.Changes {
		rows = append(rows, changeRow(c))
	}

	lines := []string{
		titleStyle.Render(title),
		summaryStyle.Render(fmt.Sprintf("%s  %s",
			baselineSummary(report),
			accentStyle.Render(aggregateSummary(report)))),
		tableContainer.Render(staticTable([]string{"Component", "Bump", "From", "To"}, rows)),
	}

	for _, warning := range report.Warnings {
		lines = append(lines, warningStyle.Render("⚠ "+warning))
	}

	lines = append(lines, mutedStyle.Render(outcomeSummary(report)))

	t.println(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return nil
}

// DisplayComponents renders the discovered components.
func (t *TUI) DisplayComponents(components []m.ComponentVersion) error {
	if len(components) == 0 {
		t.println(mutedStyle.Render("No components found."))
		return nil
	}

	rows := make([]table.Row, 0, len(components))

	for _, c := range components {
		version := c.Version.String()
		if c.Normalized {
			version += " *"
		}

		rows = append(rows, table.Row{c.Name, version})
	}

	t.println(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Components"),
		tableContainer.Render(staticTable([]string{"Component", "Version"}, rows)),
		mutedStyle.Render("* missing or malformed record, read as 0.0.0"),
	))

	return nil
}

// ConfirmRelease runs an interactive y/N prompt.
func (t *TUI) ConfirmRelease(report m.Report) (bool, error) {
	prompt := fmt.Sprintf("Commit %d files and tag %s?", len(report.Files), accentStyle.Render(report.Tag))

	final, err := tea.NewProgram(newConfirmModel(prompt), tea.WithInput(t.input), tea.WithOutput(t.output)).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}

	result, ok := final.(confirmModel)
	if !ok {
		return false, nil
	}

	return result.confirmed, nil
}

func (t *TUI) println(s string) {
	_, _ = fmt.Fprintln(t.output, s)
}

// staticTable renders a non-interactive bubbles table sized to its content.
func staticTable(headers []string, rows []table.Row) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: widths[i] + 1}
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = lipgloss.NewStyle()

	// Height counts the header and its bottom border.
	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithStyles(styles),
		table.WithHeight(len(rows)+2),
		table.WithFocused(false),
	)

	return strings.TrimRight(tbl.View(), "\n ")
}
