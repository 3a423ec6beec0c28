package service

import (
	"context"

	"github.com/YogendraNeeladri/CipherStudio/internal/projects/domain"
)

// ProjectStore is the persistence contract the service runs on. Both the
// Redis and Postgres stores satisfy it.
type ProjectStore interface {
	Upsert(ctx context.Context, projectID string, name *string, files map[string]domain.ProjectFile) (*domain.Project, error)
	FindByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Project, error)
	DeleteByID(ctx context.Context, projectID string) error
	RenameByID(ctx context.Context, projectID, name string) (*domain.Project, error)
}

// ProjectService handles business logic for projects. Validation and
// defaulting live in the stores (single-record semantics), so this layer
// stays thin.
type ProjectService struct {
	store ProjectStore
}

// NewProjectService creates a new ProjectService.
func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

// Upsert creates or updates a project keyed by its client-generated ID.
func (s *ProjectService) Upsert(ctx context.Context, projectID string, name *string, files map[string]domain.ProjectFile) (*domain.Project, error) {
	return s.store.Upsert(ctx, projectID, name, files)
}

// Get retrieves a project by its ID.
func (s *ProjectService) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.store.FindByID(ctx, projectID)
}

// ListRecent returns the most recently modified projects.
func (s *ProjectService) ListRecent(ctx context.Context, limit int) ([]domain.Project, error) {
	return s.store.ListRecent(ctx, limit)
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, projectID string) error {
	return s.store.DeleteByID(ctx, projectID)
}

// Rename updates only the project name.
func (s *ProjectService) Rename(ctx context.Context, projectID, name string) (*domain.Project, error) {
	return s.store.RenameByID(ctx, projectID, name)
}
