package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/YogendraNeeladri/CipherStudio/internal/projects/domain"
	"github.com/YogendraNeeladri/CipherStudio/internal/projects/service"
)

type Handler struct {
	svc *service.ProjectService
}

func NewHandler(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

// Upsert creates or updates a project keyed by the client-generated ID.
func (h *Handler) Upsert(c *gin.Context) {
	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.ProjectID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID is required"})
		return
	}

	var name *string
	if strings.TrimSpace(req.Name) != "" {
		name = &req.Name
	}

	project, err := h.svc.Upsert(c.Request.Context(), req.ProjectID, name, req.Files)
	if err != nil {
		if errors.Is(err, domain.ErrMissingProjectID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// Get retrieves a project by ID.
func (h *Handler) Get(c *gin.Context) {
	projectID := c.Param("projectId")

	project, err := h.svc.Get(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// List returns up to 50 projects, most recently modified first. An optional
// limit query parameter narrows the window.
func (h *Handler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	projects, err := h.svc.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Delete removes a project.
func (h *Handler) Delete(c *gin.Context) {
	projectID := c.Param("projectId")

	if err := h.svc.Delete(c.Request.Context(), projectID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// Rename updates only the project name.
func (h *Handler) Rename(c *gin.Context) {
	projectID := c.Param("projectId")

	var req renameReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project name is required"})
		return
	}

	project, err := h.svc.Rename(c.Request.Context(), projectID, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		if errors.Is(err, domain.ErrMissingName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Project name is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project name"})
		return
	}

	c.JSON(http.StatusOK, project)
}
