package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	m "github.com/mouse-blink/monobump/internal/model"
)

const versionKey = "version"

// ComponentStore reads and writes per-component version records.
type ComponentStore interface {
	// ListComponents returns the names of components with a version record,
	// sorted.
	ListComponents() ([]string, error)

	// ReadVersion loads the recorded version. Missing or malformed records
	// come back as 0.0.0 with Normalized set rather than as errors.
	ReadVersion(name string) (m.ComponentVersion, error)

	// RenderVersion returns the full record content with the version
	// replaced, without touching disk.
	RenderVersion(name string, version m.SemanticVersion) ([]byte, error)

	// WriteVersion renders and persists the record.
	WriteVersion(name string, version m.SemanticVersion) error

	// RecordPath returns where the component's record lives.
	RecordPath(name string) m.Path
}

// LocalComponentStore keeps records at <root>/<componentsRoot>/<name>/<versionFile>
// as JSON objects with a string "version" field.
type LocalComponentStore struct {
	root           string
	componentsRoot string
	versionFile    string
	writer         RecordWriter
}

// NewLocalComponentStore constructs a store rooted at the repository root.
func NewLocalComponentStore(root, componentsRoot, versionFile string, writer RecordWriter) *LocalComponentStore {
	return &LocalComponentStore{
		root:           root,
		componentsRoot: filepath.FromSlash(componentsRoot),
		versionFile:    filepath.FromSlash(versionFile),
		writer:         writer,
	}
}

// ListComponents scans the components directory for records.
func (s *LocalComponentStore) ListComponents() ([]string, error) {
	dir := filepath.Join(s.root, s.componentsRoot)

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("list components in %s: %w", dir, err)
	}

	names := []string{}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		info, err := os.Stat(string(s.RecordPath(entry.Name())))
		if err != nil || info.IsDir() {
			continue
		}

		names = append(names, entry.Name())
	}

	sort.Strings(names)

	return names, nil
}

// ReadVersion loads the component's version, normalizing bad input to 0.0.0.
func (s *LocalComponentStore) ReadVersion(name string) (m.ComponentVersion, error) {
	path := s.RecordPath(name)
	result := m.ComponentVersion{Name: name, Record: path}

	data, err := os.ReadFile(string(path))
	if errors.Is(err, fs.ErrNotExist) {
		result.Normalized = true
		return result, nil
	}

	if err != nil {
		return m.ComponentVersion{}, fmt.Errorf("read version record %s: %w", path, err)
	}

	field := gjson.GetBytes(data, versionKey)
	if !gjson.ValidBytes(data) || field.Type != gjson.String {
		result.Normalized = true
		return result, nil
	}

	result.Version, result.Normalized = parseNormalized(field.Str)

	return result, nil
}

// RenderVersion edits the "version" field in place so key order and
// formatting of the record survive. Records that are missing or not valid
// JSON are replaced by a minimal {"name", "version"} object.
func (s *LocalComponentStore) RenderVersion(name string, version m.SemanticVersion) ([]byte, error) {
	path := s.RecordPath(name)

	data, err := os.ReadFile(string(path))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read version record %s: %w", path, err)
	}

	if err != nil || !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return freshRecord(name, version)
	}

	out, err := sjson.SetBytes(data, versionKey, version.String())
	if err != nil {
		return nil, fmt.Errorf("update version record %s: %w", path, err)
	}

	return out, nil
}

// WriteVersion persists a single component's new version.
func (s *LocalComponentStore) WriteVersion(name string, version m.SemanticVersion) error {
	content, err := s.RenderVersion(name, version)
	if err != nil {
		return err
	}

	return s.writer.WriteAll([]m.PendingWrite{{Path: s.RecordPath(name), Content: content}})
}

// RecordPath returns the absolute record location for the component.
func (s *LocalComponentStore) RecordPath(name string) m.Path {
	return m.Path(filepath.Join(s.root, s.componentsRoot, name, s.versionFile))
}

func freshRecord(name string, version m.SemanticVersion) ([]byte, error) {
	out, err := json.MarshalIndent(struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}{Name: name, Version: version.String()}, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(out, '\n'), nil
}

// parseNormalized returns the parsed version and whether it had to fall
// back to 0.0.0.
func parseNormalized(s string) (m.SemanticVersion, bool) {
	v, ok := m.ParseVersion(s)
	return v, !ok
}
