package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/mouse-blink/monobump/internal/clierr"
)

const marketplaceFixture = `{
  "name": "tools",
  "version": "1.2.3",
  "plugins": [
    {"name": "core", "source": "./plugins/core", "version": "1.2.3"},
    {"name": "web", "source": "./plugins/web", "version": "1.2.3"}
  ]
}
`

func pluginFixture(name, version string) string {
	return `{"name": "` + name + `", "version": "` + version + `"}` + "\n"
}

// newMonorepo creates a repository tagged v1.2.3 with components core and
// web, then adds one feat(core) commit on top.
func newMonorepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	when := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	commit := func(message string, files map[string]string) {
		for rel, content := range files {
			path := filepath.Join(dir, filepath.FromSlash(rel))
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
			_, err := wt.Add(rel)
			require.NoError(t, err)
		}

		when = when.Add(time.Minute)
		_, err := wt.Commit(message, &git.CommitOptions{
			Author: &object.Signature{Name: "Test", Email: "test@example.com", When: when},
		})
		require.NoError(t, err)
	}

	commit("chore: initial layout", map[string]string{
		"marketplace.json":                        marketplaceFixture,
		"plugins/core/.claude-plugin/plugin.json": pluginFixture("core", "1.2.3"),
		"plugins/web/.claude-plugin/plugin.json":  pluginFixture("web", "1.2.3"),
	})

	head, err := repo.Head()
	require.NoError(t, err)
	_, err = repo.CreateTag("v1.2.3", head.Hash(), nil)
	require.NoError(t, err)

	commit("feat(core): add search", map[string]string{"plugins/core/search.md": "search\n"})

	return dir
}

func readJSON(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestBumpEndToEnd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("dry run writes nothing", func(t *testing.T) {
		dir := newMonorepo(t)

		cmd, out, _ := newTestRootCmd()
		cmd.SetArgs([]string{"--repo", dir, "--dry-run", "--format", "json"})

		require.Equal(t, clierr.ExitSuccess, execute(cmd))

		report := out.String()
		assert.Equal(t, "v1.2.3", gjson.Get(report, "baseline.name").String())
		assert.True(t, gjson.Get(report, "dry_run").Bool())
		assert.Equal(t, "1.3.0", gjson.Get(report, "aggregate").String())
		assert.Equal(t, "core", gjson.Get(report, "changes.0.component").String())
		assert.Equal(t, "1.3.0", gjson.Get(report, "changes.0.to").String())
		assert.Equal(t, int64(1), gjson.Get(report, "changes.#").Int())

		record := readJSON(t, filepath.Join(dir, "plugins/core/.claude-plugin/plugin.json"))
		assert.Equal(t, "1.2.3", gjson.Get(record, "version").String())
	})

	t.Run("writes versions and manifest", func(t *testing.T) {
		dir := newMonorepo(t)

		cmd, out, _ := newTestRootCmd()
		cmd.SetArgs([]string{"--repo", dir})

		require.Equal(t, clierr.ExitSuccess, execute(cmd))
		assert.Contains(t, out.String(), "1.3.0")

		core := readJSON(t, filepath.Join(dir, "plugins/core/.claude-plugin/plugin.json"))
		web := readJSON(t, filepath.Join(dir, "plugins/web/.claude-plugin/plugin.json"))
		manifest := readJSON(t, filepath.Join(dir, "marketplace.json"))

		assert.Equal(t, "1.3.0", gjson.Get(core, "version").String())
		assert.Equal(t, "1.2.3", gjson.Get(web, "version").String())
		assert.Equal(t, "1.3.0", gjson.Get(manifest, "version").String())
		assert.Equal(t, "1.3.0", gjson.Get(manifest, `plugins.#(name=="core").version`).String())
		assert.Equal(t, "1.2.3", gjson.Get(manifest, `plugins.#(name=="web").version`).String())
		assert.Equal(t, "./plugins/core", gjson.Get(manifest, `plugins.#(name=="core").source`).String())
	})

	t.Run("tagged release then nothing to do", func(t *testing.T) {
		dir := newMonorepo(t)

		cmd, out, _ := newTestRootCmd()
		cmd.SetArgs([]string{"--repo", dir, "--tag", "--yes", "--format", "json"})

		require.Equal(t, clierr.ExitSuccess, execute(cmd))
		assert.Equal(t, "v1.3.0", gjson.Get(out.String(), "tag").String())

		repo, err := git.PlainOpen(dir)
		require.NoError(t, err)
		_, err = repo.Tag("v1.3.0")
		require.NoError(t, err)

		again, againOut, errOut := newTestRootCmd()
		again.SetArgs([]string{"--repo", dir, "--format", "json"})

		assert.Equal(t, clierr.ExitNothingToDo, execute(again))
		assert.Equal(t, "v1.3.0", gjson.Get(againOut.String(), "baseline.name").String())
		assert.NotContains(t, errOut.String(), "Error:")
	})

	t.Run("custom tag prefix ignores v tags", func(t *testing.T) {
		dir := newMonorepo(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".monobump.yaml"), []byte("tag_prefix: release-\n"), 0o600))

		cmd, _, errOut := newTestRootCmd()
		cmd.SetArgs([]string{"--repo", dir, "--dry-run"})

		assert.Equal(t, clierr.ExitFailure, execute(cmd))
		assert.Contains(t, errOut.String(), "no release tag found")
		assert.Contains(t, errOut.String(), "--from-ref HEAD~N")
	})

	t.Run("not a repository", func(t *testing.T) {
		cmd, _, errOut := newTestRootCmd()
		cmd.SetArgs([]string{"--repo", t.TempDir()})

		assert.Equal(t, clierr.ExitFailure, execute(cmd))
		assert.Contains(t, errOut.String(), "open git repository")
	})

	t.Run("unknown format", func(t *testing.T) {
		dir := newMonorepo(t)

		cmd, _, errOut := newTestRootCmd()
		cmd.SetArgs([]string{"--repo", dir, "--format", "xml"})

		assert.Equal(t, clierr.ExitFailure, execute(cmd))
		assert.Contains(t, errOut.String(), "xml")
	})
}

func TestConfigCmd(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cmd, out, _ := newTestRootCmd()
		cmd.SetArgs([]string{"config", "--repo", t.TempDir()})

		require.Equal(t, clierr.ExitSuccess, execute(cmd))
		assert.Contains(t, out.String(), "components_root: plugins")
		assert.Contains(t, out.String(), "tag_prefix: v")
		assert.NotContains(t, out.String(), "# ")
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".monobump.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tag_prefix: release/\nmanifest: catalog.json\n"), 0o600))

		cmd, out, _ := newTestRootCmd()
		cmd.SetArgs([]string{"config", "--repo", dir})

		require.Equal(t, clierr.ExitSuccess, execute(cmd))
		assert.Contains(t, out.String(), "# "+path)
		assert.Contains(t, out.String(), "tag_prefix: release/")
		assert.Contains(t, out.String(), "manifest: catalog.json")
	})

	t.Run("explicit missing file", func(t *testing.T) {
		cmd, _, errOut := newTestRootCmd()
		cmd.SetArgs([]string{"config", "--config", filepath.Join(t.TempDir(), "nope.yaml")})

		assert.Equal(t, clierr.ExitFailure, execute(cmd))
		assert.Contains(t, errOut.String(), "config file not found")
	})
}
