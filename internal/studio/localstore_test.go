package studio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YogendraNeeladri/CipherStudio/internal/projects/domain"
)

func TestFileStore_MissingFileIsEmptyStore(t *testing.T) {
	store := NewFileStore(t.TempDir())

	projects, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, projects)
}

func TestFileStore_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	in := []domain.Project{
		{ProjectID: "p1", Name: "One", Files: map[string]domain.ProjectFile{"a.js": {Code: "1"}}},
		{ProjectID: "p2", Name: "Two", Files: map[string]domain.ProjectFile{}},
	}
	require.NoError(t, store.Save(in))

	// Single fixed storage key.
	_, err := os.Stat(filepath.Join(dir, "cipherstudio-projects.json"))
	require.NoError(t, err)

	out, err := store.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "One", out[0].Name)
	assert.Equal(t, "1", out[0].Files["a.js"].Code)
}

func TestFileStore_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewFileStore(dir)

	require.NoError(t, store.Save([]domain.Project{{ProjectID: "p1"}}))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cipherstudio-projects.json"), []byte("{not json"), 0o644))

	_, err := NewFileStore(dir).Load()
	assert.Error(t, err)
}
