package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/exercise-api/internal/service"
	appErrors "github.com/noah-isme/exercise-api/pkg/errors"
	"github.com/noah-isme/exercise-api/pkg/response"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	checks  map[string]Pinger
	started time.Time
}

// NewMetricsHandler constructs a metrics handler. checks are probed by Ready.
func NewMetricsHandler(metrics *service.MetricsService, checks map[string]Pinger) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, checks: checks, started: time.Now()}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health godoc
// @Summary Liveness probe
// @Tags Ops
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /health [get]
func (h *MetricsHandler) Health(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ok",
		"uptime":  time.Since(h.started).Round(time.Second).String(),
		"metrics": h.metrics.Snapshot(),
	})
}

// Ready godoc
// @Summary Readiness probe
// @Tags Ops
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /ready [get]
func (h *MetricsHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrUnready.Code, http.StatusServiceUnavailable, name+" unavailable"))
			return
		}
		status[name] = "up"
	}
	response.OK(c, gin.H{"status": "ready", "checks": status})
}
