package domain

import "time"

const DefaultProjectName = "Untitled Project"

// ProjectFile is a single virtual file. The content is the whole record;
// no size or mime metadata is tracked.
type ProjectFile struct {
	Code string `json:"code"`
}

// Project is a named collection of virtual files edited in the studio UI.
// ProjectID is client-generated and immutable once stored. CreatedAt and
// UpdatedAt are server-assigned; UpdatedAt strictly increases on every
// mutating store operation.
type Project struct {
	ProjectID string                 `json:"projectId"`
	Name      string                 `json:"name"`
	Files     map[string]ProjectFile `json:"files"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// Clone returns a deep copy so cached projects can be handed out without
// sharing the file map.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Files = make(map[string]ProjectFile, len(p.Files))
	for name, f := range p.Files {
		cp.Files[name] = f
	}
	return &cp
}
