// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package shoots

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shootfolio/internal/models"
)

// ErrNoSnapshot is returned by Load when no snapshot file exists yet.
var ErrNoSnapshot = errors.New("no cache snapshot")

// SnapshotStore persists the shoots cache as a single JSON file.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore returns a store writing to path. The parent directory is
// created on first Save.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Path returns the snapshot file location.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Load reads the snapshot. A missing file yields ErrNoSnapshot; a file that
// does not decode yields a wrapped decode error.
func (s *SnapshotStore) Load() (models.ShootsCache, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.ShootsCache{}, ErrNoSnapshot
	}
	if err != nil {
		return models.ShootsCache{}, fmt.Errorf("read snapshot: %w", err)
	}

	var cache models.ShootsCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return models.ShootsCache{}, fmt.Errorf("decode snapshot %s: %w", s.path, err)
	}
	return cache, nil
}

// Save writes the snapshot atomically: a temp file in the same directory is
// synced and renamed over the target.
func (s *SnapshotStore) Save(cache models.ShootsCache) error {
	data, err := json.Marshal(cache)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
