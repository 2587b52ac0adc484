package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	m "github.com/mouse-blink/monobump/internal/model"
)

// ErrManifestChanged is returned when the manifest on disk no longer lines
// up with the entries that were loaded from it.
var ErrManifestChanged = errors.New("manifest changed on disk")

// ManifestStore reads and renders the root aggregate manifest.
type ManifestStore interface {
	Load() (m.Manifest, error)
	// Render returns the manifest file content with the top-level and
	// per-entry versions of mf applied, without touching disk.
	Render(mf m.Manifest) ([]byte, error)
	Path() m.Path
}

// LocalManifestStore is a JSON manifest with a top-level "version" and an
// array of {"name", "version", ...} objects under entriesKey.
type LocalManifestStore struct {
	path       string
	entriesKey string
}

// NewLocalManifestStore constructs a manifest store for the file at path.
func NewLocalManifestStore(path, entriesKey string) *LocalManifestStore {
	return &LocalManifestStore{path: path, entriesKey: entriesKey}
}

// Path returns the manifest location.
func (s *LocalManifestStore) Path() m.Path {
	return m.Path(s.path)
}

// Load parses the manifest. Unlike component records, a missing or broken
// manifest is an error: there is nothing sensible to recover to.
func (s *LocalManifestStore) Load() (m.Manifest, error) {
	data, err := s.read()
	if err != nil {
		return m.Manifest{}, err
	}

	mf := m.Manifest{Version: gjson.GetBytes(data, versionKey).String()}

	gjson.GetBytes(data, escapeKey(s.entriesKey)).ForEach(func(_, entry gjson.Result) bool {
		mf.Entries = append(mf.Entries, m.ManifestEntry{
			Name:    entry.Get("name").String(),
			Version: entry.Get(versionKey).String(),
		})

		return true
	})

	return mf, nil
}

// Render rewrites only the version values that differ, leaving the rest of
// the document byte for byte.
func (s *LocalManifestStore) Render(mf m.Manifest) ([]byte, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}

	entries := gjson.GetBytes(data, escapeKey(s.entriesKey)).Array()
	if len(entries) != len(mf.Entries) {
		return nil, fmt.Errorf("%w: %s lists %d entries, expected %d", ErrManifestChanged, s.path, len(entries), len(mf.Entries))
	}

	for i, entry := range entries {
		want := mf.Entries[i]
		if entry.Get("name").String() != want.Name {
			return nil, fmt.Errorf("%w: %s entry %d is %q, expected %q", ErrManifestChanged, s.path, i, entry.Get("name").String(), want.Name)
		}

		if !versionDiffers(entry.Get(versionKey), want.Version) {
			continue
		}

		data, err = sjson.SetBytes(data, escapeKey(s.entriesKey)+"."+strconv.Itoa(i)+"."+versionKey, want.Version)
		if err != nil {
			return nil, fmt.Errorf("update %s entry %q: %w", s.path, want.Name, err)
		}
	}

	if versionDiffers(gjson.GetBytes(data, versionKey), mf.Version) {
		data, err = sjson.SetBytes(data, versionKey, mf.Version)
		if err != nil {
			return nil, fmt.Errorf("update %s version: %w", s.path, err)
		}
	}

	return data, nil
}

// versionDiffers reports whether a version field must be written. An absent
// field reads as "" in Load, so it only differs from a non-empty version.
func versionDiffers(current gjson.Result, want string) bool {
	if !current.Exists() {
		return want != ""
	}

	return current.String() != want
}

func (s *LocalManifestStore) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("aggregate manifest %s not found: %w", s.path, err)
	}

	if err != nil {
		return nil, fmt.Errorf("read aggregate manifest %s: %w", s.path, err)
	}

	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("aggregate manifest %s is not a JSON object", s.path)
	}

	return data, nil
}

// escapeKey makes a literal object key safe to use as a gjson/sjson path.
func escapeKey(key string) string {
	var b strings.Builder

	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteRune('\\')
		}

		b.WriteRune(r)
	}

	return b.String()
}
