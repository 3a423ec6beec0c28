package http

import "github.com/YogendraNeeladri/CipherStudio/internal/projects/domain"

// upsertReq is the POST /projects body. A missing name keeps the stored
// name; a missing files object keeps the stored file map (nil vs empty map
// distinguishes the two).
type upsertReq struct {
	ProjectID string                        `json:"projectId"`
	Name      string                        `json:"name"`
	Files     map[string]domain.ProjectFile `json:"files"`
}

type renameReq struct {
	Name string `json:"name"`
}
