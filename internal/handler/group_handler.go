package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/exercise-api/internal/dto"
	"github.com/noah-isme/exercise-api/internal/models"
	appErrors "github.com/noah-isme/exercise-api/pkg/errors"
	"github.com/noah-isme/exercise-api/pkg/response"
)

type groupService interface {
	List(ctx context.Context) ([]models.Group, error)
	Get(ctx context.Context, id string) (*models.Group, error)
	Create(ctx context.Context, req dto.CreateGroupRequest) (*models.Group, error)
	Edit(ctx context.Context, id string, patch dto.EditGroupeDto) (*models.Group, error)
	Delete(ctx context.Context, id string) error
}

// GroupHandler exposes group endpoints.
type GroupHandler struct {
	service groupService
}

// NewGroupHandler builds a new handler.
func NewGroupHandler(service groupService) *GroupHandler {
	return &GroupHandler{service: service}
}

// List godoc
// @Summary List groups
// @Tags Group
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /group [get]
func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, groups)
}

// Get godoc
// @Summary Get group by ID
// @Tags Group
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} response.Envelope
// @Router /group/{id} [get]
func (h *GroupHandler) Get(c *gin.Context) {
	group, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, group)
}

// Create godoc
// @Summary Create group
// @Tags Group
// @Accept json
// @Produce json
// @Param payload body dto.CreateGroupRequest true "Group payload"
// @Success 201 {object} response.Envelope
// @Router /group [post]
func (h *GroupHandler) Create(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid group payload"))
		return
	}
	group, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, group)
}

// Edit godoc
// @Summary Edit group
// @Description Omitted fields are kept; null clears the stored value.
// @Tags Group
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param payload body dto.EditGroupeDto true "Partial group payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /group/{id} [patch]
func (h *GroupHandler) Edit(c *gin.Context) {
	var patch dto.EditGroupeDto
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid group payload"))
		return
	}
	group, err := h.service.Edit(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, group)
}

// Delete godoc
// @Summary Delete group
// @Tags Group
// @Param id path string true "Group ID"
// @Success 204
// @Router /group/{id} [delete]
func (h *GroupHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
