package studio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/YogendraNeeladri/CipherStudio/internal/projects/domain"
)

// Workspace owns the client-side project state: the current project plus
// the list of known projects, mirrored to the local store on every
// mutation. It is the source of truth for the editor between saves; the
// server is only consulted on Save and Pull. A mutex serializes operations
// so overlapping saves from one session cannot interleave.
type Workspace struct {
	mu      sync.Mutex
	current *domain.Project
	list    []domain.Project
	store   LocalStore
	api     *Client
	catalog *Catalog
}

// NewWorkspace bootstraps a workspace from the local store, seeding a
// default project (and persisting it immediately) when the store is empty.
func NewWorkspace(store LocalStore, api *Client, catalog *Catalog) (*Workspace, error) {
	stored, err := store.Load()
	if err != nil {
		return nil, err
	}

	current, list := Initialize(stored, catalog)
	w := &Workspace{
		current: current,
		list:    list,
		store:   store,
		api:     api,
		catalog: catalog,
	}

	if len(stored) == 0 {
		if err := store.Save(w.list); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Current returns a copy of the current project.
func (w *Workspace) Current() *domain.Project {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current.Clone()
}

// Projects returns a copy of the known project list.
func (w *Workspace) Projects() []domain.Project {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.Project, len(w.list))
	copy(out, w.list)
	return out
}

// CreateProject synthesizes a new project from the default template, makes
// it current and persists.
func (w *Workspace) CreateProject(name string) (*domain.Project, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p := NewProject(name, DefaultTemplateID, w.catalog)
	err := w.apply(func() {
		w.current = &p
		w.list = append(w.list, p)
	})
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// SelectProject switches the current project to the one matching id. When
// no project matches, the current project is left unchanged — the
// reference behavior is a silent no-op; the boolean lets callers surface
// the miss instead of swallowing it.
func (w *Workspace) SelectProject(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i := range w.list {
		if w.list[i].ProjectID == id {
			w.current = w.list[i].Clone()
			return true
		}
	}
	return false
}

// UpdateFile inserts or replaces a file in the current project.
func (w *Workspace) UpdateFile(fileName, code string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.apply(func() {
		w.current.Files[fileName] = domain.ProjectFile{Code: code}
		w.current.UpdatedAt = time.Now().UTC()
	})
}

// AddFile inserts a file with empty content; adding an existing name
// replaces it, same as UpdateFile.
func (w *Workspace) AddFile(fileName string) error {
	return w.UpdateFile(fileName, "")
}

// RemoveFile deletes a file from the current project. Removing the last
// remaining file is a no-op: the editor always has at least one file.
func (w *Workspace) RemoveFile(fileName string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.current.Files) <= 1 {
		return nil
	}
	if _, ok := w.current.Files[fileName]; !ok {
		return nil
	}

	return w.apply(func() {
		delete(w.current.Files, fileName)
		w.current.UpdatedAt = time.Now().UTC()
	})
}

// Save persists the current project locally, pushes the full project to the
// API (last write wins) and adopts the server's authoritative timestamps.
// On API failure the local mutation stays; the error must be surfaced to
// the user, not swallowed.
func (w *Workspace) Save(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	err := w.apply(func() {
		w.current.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		return err
	}

	saved, err := w.api.Upsert(ctx, w.current)
	if err != nil {
		return fmt.Errorf("save project %s: %w", w.current.ProjectID, err)
	}

	return w.apply(func() {
		w.current.CreatedAt = saved.CreatedAt
		w.current.UpdatedAt = saved.UpdatedAt
	})
}

// Pull fetches a project from the API and replaces the cached copy,
// making it current.
func (w *Workspace) Pull(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	fetched, err := w.api.Fetch(ctx, id)
	if err != nil {
		return err
	}

	return w.apply(func() {
		w.current = fetched
		for i := range w.list {
			if w.list[i].ProjectID == id {
				w.list[i] = *fetched.Clone()
				return
			}
		}
		w.list = append(w.list, *fetched.Clone())
	})
}

// apply funnels every mutation through one place: run it, mirror the
// current project into the list, persist the whole list. Callers hold the
// mutex.
func (w *Workspace) apply(mutate func()) error {
	mutate()
	w.syncList()
	return w.store.Save(w.list)
}

func (w *Workspace) syncList() {
	if w.current == nil {
		return
	}
	for i := range w.list {
		if w.list[i].ProjectID == w.current.ProjectID {
			w.list[i] = *w.current.Clone()
			return
		}
	}
}
