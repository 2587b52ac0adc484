package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI picks a UI for the command. Structured formats always win;
// otherwise a TTY gets the styled TUI and anything else plain text.
func NewUI(cmd *cobra.Command, useTTY bool, format Format) UI {
	switch format {
	case FormatJSON, FormatYAML:
		return NewStructuredUI(cmd.OutOrStdout(), format)
	}

	if useTTY {
		return NewTUI(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
