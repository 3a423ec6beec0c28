package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/YogendraNeeladri/CipherStudio/internal/api/http"
	"github.com/YogendraNeeladri/CipherStudio/internal/api/http/middleware"
	projecthttp "github.com/YogendraNeeladri/CipherStudio/internal/projects/http"
	"github.com/YogendraNeeladri/CipherStudio/internal/projects/service"
)

type RouterDeps struct {
	Store  service.ProjectStore
	Pinger Pinger
}

// BuildRouter assembles the full HTTP surface: CORS, request IDs, the
// health endpoint and the project routes under /api/projects.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	// The studio frontend is served from a different origin; the API is
	// unauthenticated, so allow-all matches the reference behavior.
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	healthHandler := httpapi.NewHealthHandler(dep.Pinger)
	healthHandler.RegisterRoutes(r)

	svc := service.NewProjectService(dep.Store)
	projecthttp.Register(r.Group("/api/projects"), svc)

	return r
}
