package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/monobump/internal/adapter"
)

const fixtureVersionFile = ".claude-plugin/plugin.json"

// storeFixture is a repository layout on disk with real stores over it.
type storeFixture struct {
	root       string
	components *adapter.LocalComponentStore
	manifest   *adapter.LocalManifestStore
	writer     *adapter.LocalRecordWriter
}

func newStoreFixture(t *testing.T, records map[string]string, manifest string) *storeFixture {
	t.Helper()

	root := t.TempDir()
	writer := adapter.NewLocalRecordWriter()

	f := &storeFixture{
		root:       root,
		components: adapter.NewLocalComponentStore(root, "plugins", fixtureVersionFile, writer),
		manifest:   adapter.NewLocalManifestStore(filepath.Join(root, "marketplace.json"), "plugins"),
		writer:     writer,
	}

	for name, content := range records {
		f.write(t, filepath.Join("plugins", name, fixtureVersionFile), content)
	}

	if manifest != "" {
		f.write(t, "marketplace.json", manifest)
	}

	return f
}

func (f *storeFixture) write(t *testing.T, rel, content string) {
	t.Helper()

	path := filepath.Join(f.root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// snapshot returns every file under the fixture root keyed by relative path.
func (f *storeFixture) snapshot(t *testing.T) map[string]string {
	t.Helper()

	files := make(map[string]string)

	err := filepath.WalkDir(f.root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(f.root, path)
		if err != nil {
			return err
		}

		files[filepath.ToSlash(rel)] = string(data)

		return nil
	})
	require.NoError(t, err)

	return files
}

func (f *storeFixture) synchronizer() *ManifestSynchronizer {
	return NewSynchronizer(f.components, f.manifest, f.writer, nil)
}
