package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/monobump/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayReport_PrintsTable(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayReport(sampleReport()))

	output := buf.String()

	for _, want := range []string{
		"Baseline v1.2.3: 4 commits scanned, 2 qualifying, 1 merges skipped, 1 non-conventional",
		"Component",
		"core",
		"minor",
		"1.2.3",
		"1.3.0",
		"web",
		"0.4.1",
		"Aggregate version: 1.2.3 -> 1.3.0",
		"warning: web updated but not listed in marketplace.json",
		"Dry run: 3 files would be written.",
	} {
		assert.Contains(t, output, want)
	}

	coreLine := ""
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "core") {
			coreLine = line
		}
	}

	assert.Regexp(t, `core\s+.*minor\s+.*1\.2\.3\s+.*1\.3\.0`, coreLine)
}

func TestSimpleUI_DisplayReport_NothingToDo(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayReport(m.Report{Scanned: 2}))
	assert.Equal(t, "Nothing to bump - no version-affecting conventional commits found.\n", buf.String())
}

func TestSimpleUI_DisplayComponents(t *testing.T) {
	t.Run("lists components", func(t *testing.T) {
		ui, buf := newTestSimpleUI()

		require.NoError(t, ui.DisplayComponents(sampleComponents()))

		output := buf.String()
		assert.Contains(t, output, "core")
		assert.Contains(t, output, "1.3.0")
		assert.Contains(t, output, "fresh")
		assert.Contains(t, output, "0.0.0")
		assert.Contains(t, output, "missing or malformed record")
	})

	t.Run("empty", func(t *testing.T) {
		ui, buf := newTestSimpleUI()

		require.NoError(t, ui.DisplayComponents(nil))
		assert.Equal(t, "No components found.\n", buf.String())
	})
}

func TestSimpleUI_ConfirmRelease(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ok, err := ui.ConfirmRelease(sampleReport())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, buf.String())
}
