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

type exerciseService interface {
	List(ctx context.Context) ([]models.Exercise, error)
	Get(ctx context.Context, id string) (*models.Exercise, error)
	Create(ctx context.Context, req dto.CreateExerciseRequest) (*models.Exercise, error)
	Update(ctx context.Context, id string, req dto.UpdateExerciseRequest) (*models.Exercise, error)
	Delete(ctx context.Context, id string) error
}

// ExerciseHandler exposes exercise endpoints.
type ExerciseHandler struct {
	service exerciseService
}

// NewExerciseHandler builds a new handler.
func NewExerciseHandler(service exerciseService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

// List godoc
// @Summary List exercises
// @Tags Exercise
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /exercise [get]
func (h *ExerciseHandler) List(c *gin.Context) {
	exercises, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, exercises)
}

// Get godoc
// @Summary Get exercise by ID
// @Tags Exercise
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /exercise/{id} [get]
func (h *ExerciseHandler) Get(c *gin.Context) {
	exercise, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, exercise)
}

// Create godoc
// @Summary Create exercise
// @Tags Exercise
// @Accept json
// @Produce json
// @Param payload body dto.CreateExerciseRequest true "Exercise payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /exercise [post]
func (h *ExerciseHandler) Create(c *gin.Context) {
	var req dto.CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid exercise payload"))
		return
	}
	exercise, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exercise)
}

// Update godoc
// @Summary Update exercise
// @Tags Exercise
// @Accept json
// @Produce json
// @Param id path string true "Exercise ID"
// @Param payload body dto.UpdateExerciseRequest true "Exercise payload"
// @Success 200 {object} response.Envelope
// @Router /exercise/{id} [put]
func (h *ExerciseHandler) Update(c *gin.Context) {
	var req dto.UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid exercise payload"))
		return
	}
	exercise, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, exercise)
}

// Delete godoc
// @Summary Delete exercise
// @Tags Exercise
// @Param id path string true "Exercise ID"
// @Success 204
// @Router /exercise/{id} [delete]
func (h *ExerciseHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
