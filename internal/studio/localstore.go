package studio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/YogendraNeeladri/CipherStudio/internal/projects/domain"
)

// storageKey is the fixed name of the single persisted entry holding all
// known projects, mirroring the browser localStorage key.
const storageKey = "cipherstudio-projects"

// LocalStore is the durable browser-local-storage analogue: one JSON blob
// holding the full project list.
type LocalStore interface {
	Load() ([]domain.Project, error)
	Save(projects []domain.Project) error
}

// FileStore keeps the project list as a JSON file under a data directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Load reads the persisted project list. A missing file is an empty store,
// not an error.
func (s *FileStore) Load() ([]domain.Project, error) {
	data, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local store: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("decode local store: %w", err)
	}
	return projects, nil
}

// Save replaces the persisted project list.
func (s *FileStore) Save(projects []domain.Project) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local store: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0o644); err != nil {
		return fmt.Errorf("write local store: %w", err)
	}
	return nil
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, storageKey+".json")
}
