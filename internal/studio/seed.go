package studio

import (
	"time"

	"github.com/google/uuid"

	"github.com/YogendraNeeladri/CipherStudio/internal/projects/domain"
)

// DefaultProjectName is the name of the project seeded on first run.
const DefaultProjectName = "My First Project"

// NewProject synthesizes a project with a generated unique identifier and
// the starter file set of the given template.
func NewProject(name, templateID string, catalog *Catalog) domain.Project {
	now := time.Now().UTC()
	return domain.Project{
		ProjectID: uuid.New().String(),
		Name:      name,
		Files:     catalog.Lookup(templateID).ProjectFiles(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Initialize is the first-run policy: given whatever the local store held,
// it yields the initial current project and project list. An empty store
// seeds one default project; otherwise the most recently modified project
// becomes current. Pure: no storage or UI dependency.
func Initialize(stored []domain.Project, catalog *Catalog) (*domain.Project, []domain.Project) {
	if len(stored) == 0 {
		seeded := NewProject(DefaultProjectName, DefaultTemplateID, catalog)
		return &seeded, []domain.Project{seeded}
	}

	mostRecent := 0
	for i := range stored {
		if stored[i].UpdatedAt.After(stored[mostRecent].UpdatedAt) {
			mostRecent = i
		}
	}
	current := stored[mostRecent].Clone()
	return current, stored
}
