package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/glowgen/backend/internal/domain"
)

// validName restricts document names to bare identifiers so callers can
// never escape the output directory.
var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

// FileStore persists generated pages as pretty-printed JSON documents in a
// single output directory. Writes go through a temp file and rename so a
// crashed run never leaves a truncated page behind.
type FileStore struct {
	dir string
}

// NewFileStore creates the output directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes a page as <name>.json.
func (s *FileStore) Save(ctx context.Context, name string, page interface{}) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", name, err)
	}

	return nil
}

// Load reads <name>.json into page. A missing document is
// domain.ErrPageNotFound.
func (s *FileStore) Load(ctx context.Context, name string, page interface{}) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", domain.ErrPageNotFound, name)
		}
		return fmt.Errorf("reading %s: %w", name, err)
	}

	if err := json.Unmarshal(data, page); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}

// Exists reports whether <name>.json has been generated.
func (s *FileStore) Exists(ctx context.Context, name string) (bool, error) {
	path, err := s.path(name)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *FileStore) path(name string) (string, error) {
	if !validName.MatchString(name) {
		return "", fmt.Errorf("%w: invalid page name %q", domain.ErrPageNotFound, name)
	}
	return filepath.Join(s.dir, name+".json"), nil
}
