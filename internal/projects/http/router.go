package http

import (
	"github.com/gin-gonic/gin"

	"github.com/YogendraNeeladri/CipherStudio/internal/projects/service"
)

// Register wires the project routes onto a router group (mounted at
// /api/projects by the bootstrap).
func Register(rg *gin.RouterGroup, svc *service.ProjectService) {
	h := NewHandler(svc)

	rg.POST("", h.Upsert)
	rg.GET("", h.List)
	rg.GET("/:projectId", h.Get)
	rg.DELETE("/:projectId", h.Delete)
	rg.PATCH("/:projectId/name", h.Rename)
}
