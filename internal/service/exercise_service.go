package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/exercise-api/internal/dto"
	"github.com/noah-isme/exercise-api/internal/models"
	appErrors "github.com/noah-isme/exercise-api/pkg/errors"
)

const exerciseCachePrefix = "exercise:"

type exerciseRepository interface {
	FindByID(ctx context.Context, id string) (*models.Exercise, error)
	List(ctx context.Context) ([]models.Exercise, error)
	Create(ctx context.Context, exercise *models.Exercise) error
	Update(ctx context.Context, exercise *models.Exercise) error
	Delete(ctx context.Context, id string) error
}

// ExerciseService orchestrates exercise workflows.
type ExerciseService struct {
	repo      exerciseRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExerciseService creates a new exercise service. cache may be nil.
func NewExerciseService(repo exerciseRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ExerciseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExerciseService{repo: repo, cache: cache, validator: validate, logger: logger}
}

func validateWindow(start, end time.Time) error {
	if !start.Before(end) {
		return appErrors.Clone(appErrors.ErrValidation, "startDate must be before endDate")
	}
	return nil
}

// List returns every exercise.
func (s *ExerciseService) List(ctx context.Context) ([]models.Exercise, error) {
	exercises, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list exercises")
	}
	return exercises, nil
}

// Get returns an exercise by ID, served from cache when possible.
func (s *ExerciseService) Get(ctx context.Context, id string) (*models.Exercise, error) {
	key := exerciseCachePrefix + id
	var cached models.Exercise
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	exercise, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "exercise not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exercise")
	}
	s.cache.Set(ctx, key, exercise, 0)
	return exercise, nil
}

// Create validates and stores a new exercise.
func (s *ExerciseService) Create(ctx context.Context, req dto.CreateExerciseRequest) (*models.Exercise, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exercise payload")
	}
	if err := validateWindow(*req.StartDate, *req.EndDate); err != nil {
		return nil, err
	}

	exercise := &models.Exercise{Name: req.Name, StartDate: *req.StartDate, EndDate: *req.EndDate}
	if err := s.repo.Create(ctx, exercise); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create exercise")
	}
	s.cache.Invalidate(ctx, exerciseCachePrefix+"*")
	return exercise, nil
}

// Update replaces name and dates of an exercise.
func (s *ExerciseService) Update(ctx context.Context, id string, req dto.UpdateExerciseRequest) (*models.Exercise, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exercise payload")
	}
	if err := validateWindow(*req.StartDate, *req.EndDate); err != nil {
		return nil, err
	}

	exercise, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "exercise not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exercise")
	}

	exercise.Name = req.Name
	exercise.StartDate = *req.StartDate
	exercise.EndDate = *req.EndDate
	if err := s.repo.Update(ctx, exercise); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update exercise")
	}
	s.cache.Invalidate(ctx, exerciseCachePrefix+"*")
	return exercise, nil
}

// Delete removes an exercise.
func (s *ExerciseService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "exercise not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exercise")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete exercise")
	}
	s.cache.Invalidate(ctx, exerciseCachePrefix+"*")
	return nil
}
