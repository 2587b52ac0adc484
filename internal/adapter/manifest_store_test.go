package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	m "github.com/mouse-blink/monobump/internal/model"
)

const testManifest = `{
  "name": "marketplace",
  "version": "1.2.3",
  "plugins": [
    {"name": "a", "source": "./plugins/a", "version": "1.2.3"},
    {"name": "b", "version": "0.4.0"},
    {"name": "c"}
  ]
}
`

func TestLocalManifestStore_Load(t *testing.T) {
	t.Run("reads version and entries", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "marketplace.json")
		writeFixture(t, path, testManifest)

		mf, err := NewLocalManifestStore(path, "plugins").Load()
		require.NoError(t, err)

		assert.Equal(t, "1.2.3", mf.Version)
		assert.Equal(t, []m.ManifestEntry{
			{Name: "a", Version: "1.2.3"},
			{Name: "b", Version: "0.4.0"},
			{Name: "c"},
		}, mf.Entries)
	})

	t.Run("missing manifest is an error", func(t *testing.T) {
		_, err := NewLocalManifestStore(filepath.Join(t.TempDir(), "nope.json"), "plugins").Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("invalid manifest is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "marketplace.json")
		writeFixture(t, path, "[1, 2")

		_, err := NewLocalManifestStore(path, "plugins").Load()
		require.Error(t, err)
	})

	t.Run("entries key with dots", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "marketplace.json")
		writeFixture(t, path, `{"version":"1.0.0","my.plugins":[{"name":"x","version":"1.0.0"}]}`)

		mf, err := NewLocalManifestStore(path, "my.plugins").Load()
		require.NoError(t, err)
		assert.Equal(t, []m.ManifestEntry{{Name: "x", Version: "1.0.0"}}, mf.Entries)
	})
}

func TestLocalManifestStore_Render(t *testing.T) {
	t.Run("changes only version values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "marketplace.json")
		writeFixture(t, path, testManifest)

		store := NewLocalManifestStore(path, "plugins")
		mf, err := store.Load()
		require.NoError(t, err)

		mf.Entries[0].Version = "1.3.0"
		mf.Version = "1.3.0"

		got, err := store.Render(mf)
		require.NoError(t, err)

		want := `{
  "name": "marketplace",
  "version": "1.3.0",
  "plugins": [
    {"name": "a", "source": "./plugins/a", "version": "1.3.0"},
    {"name": "b", "version": "0.4.0"},
    {"name": "c"}
  ]
}
`
		assert.Equal(t, want, string(got))
		assert.Equal(t, testManifest, readFixture(t, path), "render must not write")
	})

	t.Run("unchanged manifest renders identical bytes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "marketplace.json")
		writeFixture(t, path, testManifest)

		store := NewLocalManifestStore(path, "plugins")
		mf, err := store.Load()
		require.NoError(t, err)

		got, err := store.Render(mf)
		require.NoError(t, err)
		assert.Equal(t, testManifest, string(got))
	})

	t.Run("entries without version stay untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "marketplace.json")
		manifest := `{"plugins":[{"name":"a","version":"1.0.0"},{"name":"b","source":"./plugins/b"}]}`
		writeFixture(t, path, manifest)

		store := NewLocalManifestStore(path, "plugins")
		mf, err := store.Load()
		require.NoError(t, err)
		require.Empty(t, mf.Entries[1].Version)

		mf.Entries[0].Version = "1.1.0"

		got, err := store.Render(mf)
		require.NoError(t, err)
		assert.Equal(t, `{"plugins":[{"name":"a","version":"1.1.0"},{"name":"b","source":"./plugins/b"}]}`, string(got))
		assert.False(t, gjson.GetBytes(got, "plugins.1.version").Exists())
		assert.False(t, gjson.GetBytes(got, "version").Exists())
	})

	t.Run("entry without version gains one", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "marketplace.json")
		writeFixture(t, path, testManifest)

		store := NewLocalManifestStore(path, "plugins")
		mf, err := store.Load()
		require.NoError(t, err)

		mf.Entries[2].Version = "0.0.1"

		got, err := store.Render(mf)
		require.NoError(t, err)
		assert.Equal(t, "0.0.1", gjson.GetBytes(got, "plugins.2.version").String())
		assert.Equal(t, "0.4.0", gjson.GetBytes(got, "plugins.1.version").String())
	})

	t.Run("entries changed on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "marketplace.json")
		writeFixture(t, path, testManifest)

		store := NewLocalManifestStore(path, "plugins")

		_, err := store.Render(m.Manifest{Version: "1.0.0", Entries: []m.ManifestEntry{{Name: "a"}}})
		require.ErrorIs(t, err, ErrManifestChanged)

		_, err = store.Render(m.Manifest{Version: "1.0.0", Entries: []m.ManifestEntry{{Name: "x"}, {Name: "b"}, {Name: "c"}}})
		require.ErrorIs(t, err, ErrManifestChanged)
	})
}
