package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/monobump/internal/model"
)

const (
	defaultRecordPerm os.FileMode = 0o644
	recordDirPerm     os.FileMode = 0o750
)

// RecordWriter persists a batch of rendered files.
type RecordWriter interface {
	// WriteAll writes every pending file or, on failure, leaves the
	// targets as they were.
	WriteAll(writes []m.PendingWrite) error
}

// LocalRecordWriter stages every file next to its target and only renames
// once all of them have been written. If a rename fails, the targets already
// replaced get their previous content back and new files are removed.
type LocalRecordWriter struct {
	rename func(oldpath, newpath string) error
}

// NewLocalRecordWriter constructs a LocalRecordWriter.
func NewLocalRecordWriter() *LocalRecordWriter {
	return &LocalRecordWriter{rename: os.Rename}
}

type stagedWrite struct {
	temp   string
	target string
	// previous is the target content before the batch, nil when it did not exist.
	previous []byte
}

// WriteAll implements RecordWriter.
func (w *LocalRecordWriter) WriteAll(writes []m.PendingWrite) error {
	staged := make([]stagedWrite, 0, len(writes))

	cleanup := func() {
		for _, s := range staged {
			_ = os.Remove(s.temp)
		}
	}

	for _, pw := range writes {
		previous, err := readPrevious(string(pw.Path))
		if err != nil {
			cleanup()
			return err
		}

		temp, err := stage(pw)
		if err != nil {
			cleanup()
			return err
		}

		staged = append(staged, stagedWrite{temp: temp, target: string(pw.Path), previous: previous})
	}

	for i, s := range staged {
		if err := w.rename(s.temp, s.target); err != nil {
			for _, rest := range staged[i:] {
				_ = os.Remove(rest.temp)
			}

			if restoreErr := w.restore(staged[:i]); restoreErr != nil {
				return fmt.Errorf("replace %s: %w (rollback failed: %w)", s.target, err, restoreErr)
			}

			return fmt.Errorf("replace %s: %w", s.target, err)
		}
	}

	return nil
}

func readPrevious(target string) ([]byte, error) {
	data, err := os.ReadFile(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}

	if data == nil {
		data = []byte{}
	}

	return data, nil
}

// restore puts back the content replaced files had before the batch.
func (w *LocalRecordWriter) restore(done []stagedWrite) error {
	var errs []error

	for _, s := range done {
		if s.previous == nil {
			if err := os.Remove(s.target); err != nil && !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, err)
			}

			continue
		}

		temp, err := stage(m.PendingWrite{Path: m.Path(s.target), Content: s.previous})
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := w.rename(temp, s.target); err != nil {
			_ = os.Remove(temp)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func stage(pw m.PendingWrite) (string, error) {
	target := string(pw.Path)
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, recordDirPerm); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}

	perm := defaultRecordPerm

	info, err := os.Stat(target)
	switch {
	case err == nil:
		perm = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("stat %s: %w", target, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return "", fmt.Errorf("stage %s: %w", target, err)
	}

	name := tmp.Name()

	if _, err := tmp.Write(pw.Content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)

		return "", fmt.Errorf("stage %s: %w", target, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("stage %s: %w", target, err)
	}

	if err := os.Chmod(name, perm); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("stage %s: %w", target, err)
	}

	return name, nil
}
