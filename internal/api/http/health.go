package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthCheck reports OK while the store answers a short ping, DEGRADED
// otherwise. The endpoint itself always answers; per-request store errors
// are recoverable.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := "OK"
	message := "CipherStudio API is running"

	if h.store != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.store.Ping(pingCtx); err != nil {
			status = "DEGRADED"
			message = "CipherStudio API is running, store is unreachable"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{Status: status, Message: message})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/health", h.HealthCheck)
}
