package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/exercise-api/internal/models"
	"github.com/noah-isme/exercise-api/pkg/response"
)

type initService interface {
	Lookup(ctx context.Context, email string) (*models.InitPayload, error)
}

// InitHandler serves the session bootstrap endpoint.
type InitHandler struct {
	service initService
}

// NewInitHandler builds a new handler.
func NewInitHandler(service initService) *InitHandler {
	return &InitHandler{service: service}
}

// Init godoc
// @Summary Bootstrap a session
// @Description Returns the user, their memberships and the active exercise.
// @Tags Init
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /init/{email} [get]
func (h *InitHandler) Init(c *gin.Context) {
	payload, err := h.service.Lookup(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payload)
}
