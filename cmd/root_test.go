package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/monobump/internal/clierr"
	controllermocks "github.com/mouse-blink/monobump/internal/controller/mocks"
	"github.com/mouse-blink/monobump/internal/domain"
	domainmocks "github.com/mouse-blink/monobump/internal/domain/mocks"
	m "github.com/mouse-blink/monobump/internal/model"
)

func newTestRootCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := newRootCmd()
	cmd.AddCommand(newPlanCmd(), newComponentsCmd(), newConfigCmd(), newVersionCmd())

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd, out, errOut
}

func useMocks(t *testing.T) (*domainmocks.MockWorkflow, *controllermocks.MockUI) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)

	original := setup
	setup = func(*cobra.Command) (*session, error) {
		return &session{ui: mockUI, workflow: mockWorkflow}, nil
	}

	t.Cleanup(func() { setup = original })

	return mockWorkflow, mockUI
}

func sampleReport() m.Report {
	return m.Report{
		Baseline:   m.Reference{Name: "v1.2.3"},
		Scanned:    1,
		Qualifying: 1,
		Changes: []m.VersionChange{{
			Component: "core",
			Level:     m.BumpMinor,
			From:      m.MustParseVersion("1.2.3"),
			To:        m.MustParseVersion("1.3.0"),
		}},
		Aggregate:         m.MustParseVersion("1.3.0"),
		PreviousAggregate: "1.2.3",
	}
}

func TestRootCmd_Bump(t *testing.T) {
	t.Run("passes flags to the workflow", func(t *testing.T) {
		mockWorkflow, mockUI := useMocks(t)
		report := sampleReport()

		mockWorkflow.EXPECT().
			Bump(mock.Anything, mock.MatchedBy(func(args domain.BumpArgs) bool {
				return args.FromRef == "v1.0.0" && args.Tag && !args.DryRun && args.Confirm == nil
			})).
			Return(report, nil).Once()
		mockUI.EXPECT().DisplayReport(report).Return(nil).Once()

		cmd, _, errOut := newTestRootCmd()
		cmd.SetArgs([]string{"--from-ref", "v1.0.0", "--tag", "--yes"})

		assert.Equal(t, clierr.ExitSuccess, execute(cmd))
		assert.Empty(t, errOut.String())
	})

	t.Run("tag without --yes asks for confirmation", func(t *testing.T) {
		mockWorkflow, mockUI := useMocks(t)

		mockWorkflow.EXPECT().
			Bump(mock.Anything, mock.MatchedBy(func(args domain.BumpArgs) bool {
				return args.Tag && args.Confirm != nil
			})).
			Return(sampleReport(), nil).Once()
		mockUI.EXPECT().DisplayReport(mock.Anything).Return(nil).Once()

		cmd, _, _ := newTestRootCmd()
		cmd.SetArgs([]string{"--tag"})

		assert.Equal(t, clierr.ExitSuccess, execute(cmd))
	})

	t.Run("dry run", func(t *testing.T) {
		mockWorkflow, mockUI := useMocks(t)

		mockWorkflow.EXPECT().
			Bump(mock.Anything, mock.MatchedBy(func(args domain.BumpArgs) bool {
				return args.DryRun && !args.Tag && args.FromRef == ""
			})).
			Return(sampleReport(), nil).Once()
		mockUI.EXPECT().DisplayReport(mock.Anything).Return(nil).Once()

		cmd, _, _ := newTestRootCmd()
		cmd.SetArgs([]string{"--dry-run"})

		assert.Equal(t, clierr.ExitSuccess, execute(cmd))
	})

	t.Run("nothing to do exits quietly with its own code", func(t *testing.T) {
		mockWorkflow, mockUI := useMocks(t)
		report := m.Report{Baseline: m.Reference{Name: "v1.2.3"}, Scanned: 2}

		mockWorkflow.EXPECT().
			Bump(mock.Anything, mock.Anything).
			Return(report, fmt.Errorf("%w: no qualifying commits", domain.ErrNothingToDo)).Once()
		mockUI.EXPECT().DisplayReport(report).Return(nil).Once()

		cmd, _, errOut := newTestRootCmd()
		cmd.SetArgs([]string{})

		assert.Equal(t, clierr.ExitNothingToDo, execute(cmd))
		assert.Empty(t, errOut.String())
	})

	t.Run("failure is printed", func(t *testing.T) {
		mockWorkflow, _ := useMocks(t)

		mockWorkflow.EXPECT().
			Bump(mock.Anything, mock.Anything).
			Return(m.Report{}, errors.New("boom")).Once()

		cmd, _, errOut := newTestRootCmd()
		cmd.SetArgs([]string{})

		assert.Equal(t, clierr.ExitFailure, execute(cmd))
		assert.Contains(t, errOut.String(), "Error: boom")
	})

	t.Run("display failure is returned", func(t *testing.T) {
		mockWorkflow, mockUI := useMocks(t)

		mockWorkflow.EXPECT().Bump(mock.Anything, mock.Anything).Return(sampleReport(), nil).Once()
		mockUI.EXPECT().DisplayReport(mock.Anything).Return(errors.New("closed pipe")).Once()

		cmd, _, errOut := newTestRootCmd()
		cmd.SetArgs([]string{})

		assert.Equal(t, clierr.ExitFailure, execute(cmd))
		assert.Contains(t, errOut.String(), "closed pipe")
	})

	t.Run("dry-run and tag are exclusive", func(t *testing.T) {
		useMocks(t)

		cmd, _, errOut := newTestRootCmd()
		cmd.SetArgs([]string{"--dry-run", "--tag"})

		assert.Equal(t, clierr.ExitFailure, execute(cmd))
		assert.Contains(t, errOut.String(), "dry-run")
	})

	t.Run("positional arguments are rejected", func(t *testing.T) {
		useMocks(t)

		cmd, _, _ := newTestRootCmd()
		cmd.SetArgs([]string{"plugins/core"})

		assert.Equal(t, clierr.ExitFailure, execute(cmd))
	})

	t.Run("setup failure", func(t *testing.T) {
		original := setup
		setup = func(*cobra.Command) (*session, error) {
			return nil, errors.New("not a git repository")
		}
		t.Cleanup(func() { setup = original })

		cmd, _, errOut := newTestRootCmd()
		cmd.SetArgs([]string{})

		assert.Equal(t, clierr.ExitFailure, execute(cmd))
		assert.Contains(t, errOut.String(), "not a git repository")
	})
}

func TestPlanCmd(t *testing.T) {
	for _, name := range []string{"plan", "preview"} {
		t.Run(name, func(t *testing.T) {
			mockWorkflow, mockUI := useMocks(t)

			mockWorkflow.EXPECT().
				Bump(mock.Anything, mock.MatchedBy(func(args domain.BumpArgs) bool {
					return args.DryRun && !args.Tag && args.FromRef == "abc123"
				})).
				Return(sampleReport(), nil).Once()
			mockUI.EXPECT().DisplayReport(mock.Anything).Return(nil).Once()

			cmd, _, _ := newTestRootCmd()
			cmd.SetArgs([]string{name, "--from-ref", "abc123"})

			assert.Equal(t, clierr.ExitSuccess, execute(cmd))
		})
	}
}

func TestComponentsCmd(t *testing.T) {
	t.Run("lists components", func(t *testing.T) {
		mockWorkflow, mockUI := useMocks(t)
		components := []m.ComponentVersion{
			{Name: "core", Version: m.MustParseVersion("1.2.3")},
			{Name: "web", Version: m.MustParseVersion("0.1.0")},
		}

		mockWorkflow.EXPECT().Components(mock.Anything).Return(components, nil).Once()
		mockUI.EXPECT().DisplayComponents(components).Return(nil).Once()

		cmd, _, _ := newTestRootCmd()
		cmd.SetArgs([]string{"components"})

		assert.Equal(t, clierr.ExitSuccess, execute(cmd))
	})

	t.Run("workflow error", func(t *testing.T) {
		mockWorkflow, _ := useMocks(t)

		mockWorkflow.EXPECT().Components(mock.Anything).Return(nil, errors.New("unreadable")).Once()

		cmd, _, errOut := newTestRootCmd()
		cmd.SetArgs([]string{"ls"})

		assert.Equal(t, clierr.ExitFailure, execute(cmd))
		assert.Contains(t, errOut.String(), "unreadable")
	})
}

func TestVersionCmd(t *testing.T) {
	cmd, out, _ := newTestRootCmd()
	cmd.SetArgs([]string{"version"})

	assert.Equal(t, clierr.ExitSuccess, execute(cmd))
	assert.Equal(t, "monobump dev\n", out.String())
}
