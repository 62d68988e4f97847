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

type networkService interface {
	List(ctx context.Context) ([]models.Network, error)
	Get(ctx context.Context, id string) (*models.Network, error)
	Create(ctx context.Context, req dto.CreateNetworkRequest) (*models.Network, error)
	Members(ctx context.Context, id string) ([]models.Member, error)
}

type memberService interface {
	Create(ctx context.Context, req dto.CreateMemberRequest) (*models.Member, error)
	Delete(ctx context.Context, id string) error
}

// NetworkHandler exposes network and membership endpoints.
type NetworkHandler struct {
	networks networkService
	members  memberService
}

// NewNetworkHandler builds a new handler.
func NewNetworkHandler(networks networkService, members memberService) *NetworkHandler {
	return &NetworkHandler{networks: networks, members: members}
}

// List godoc
// @Summary List networks
// @Tags Network
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /network [get]
func (h *NetworkHandler) List(c *gin.Context) {
	networks, err := h.networks.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, networks)
}

// Get godoc
// @Summary Get network by ID
// @Tags Network
// @Produce json
// @Param id path string true "Network ID"
// @Success 200 {object} response.Envelope
// @Router /network/{id} [get]
func (h *NetworkHandler) Get(c *gin.Context) {
	network, err := h.networks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, network)
}

// Create godoc
// @Summary Create network
// @Tags Network
// @Accept json
// @Produce json
// @Param payload body dto.CreateNetworkRequest true "Network payload"
// @Success 201 {object} response.Envelope
// @Router /network [post]
func (h *NetworkHandler) Create(c *gin.Context) {
	var req dto.CreateNetworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid network payload"))
		return
	}
	network, err := h.networks.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, network)
}

// Members godoc
// @Summary List network members
// @Tags Network
// @Produce json
// @Param id path string true "Network ID"
// @Success 200 {object} response.Envelope
// @Router /network/{id}/members [get]
func (h *NetworkHandler) Members(c *gin.Context) {
	members, err := h.networks.Members(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, members)
}

// AddMember godoc
// @Summary Add a user to a network
// @Tags Member
// @Accept json
// @Produce json
// @Param payload body dto.CreateMemberRequest true "Membership payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /member [post]
func (h *NetworkHandler) AddMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid member payload"))
		return
	}
	member, err := h.members.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, member)
}

// RemoveMember godoc
// @Summary Remove a membership
// @Tags Member
// @Param id path string true "Member ID"
// @Success 204
// @Router /member/{id} [delete]
func (h *NetworkHandler) RemoveMember(c *gin.Context) {
	if err := h.members.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
