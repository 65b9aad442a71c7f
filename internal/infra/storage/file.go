package storage

import (
	"context"
	"os"
	"path/filepath"

	"nexus-store/internal/pkg/errs"
)

// FileSnapshots keeps one JSON file per key under a directory. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// truncated snapshot.
type FileSnapshots struct {
	dir string
}

func NewFileSnapshots(dir string) (*FileSnapshots, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create snapshot dir")
	}
	return &FileSnapshots{dir: dir}, nil
}

func (s *FileSnapshots) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileSnapshots) Load(_ context.Context, key string) ([]byte, bool, error) {
	blob, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to read snapshot")
	}
	return blob, true, nil
}

func (s *FileSnapshots) Save(_ context.Context, key string, blob []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return errs.Wrap(err, "failed to create temp snapshot")
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to write snapshot")
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to close snapshot")
	}
	if err = os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to replace snapshot")
	}
	return nil
}

func (s *FileSnapshots) Clear(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "failed to clear snapshot")
	}
	return nil
}
