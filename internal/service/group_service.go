package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/exercise-api/internal/dto"
	"github.com/noah-isme/exercise-api/internal/models"
	appErrors "github.com/noah-isme/exercise-api/pkg/errors"
)

type groupRepository interface {
	FindByID(ctx context.Context, id string) (*models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
	Create(ctx context.Context, group *models.Group) error
	Update(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, id string) error
}

// GroupService orchestrates group workflows.
type GroupService struct {
	repo      groupRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGroupService creates a group service.
func NewGroupService(repo groupRepository, validate *validator.Validate, logger *zap.Logger) *GroupService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroupService{repo: repo, validator: validate, logger: logger}
}

// List returns every group.
func (s *GroupService) List(ctx context.Context) ([]models.Group, error) {
	groups, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list groups")
	}
	return groups, nil
}

// Get returns a group by ID.
func (s *GroupService) Get(ctx context.Context, id string) (*models.Group, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "group not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load group")
	}
	return group, nil
}

// Create stores a new group.
func (s *GroupService) Create(ctx context.Context, req dto.CreateGroupRequest) (*models.Group, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, dto.CreateGroupMessage(err))
	}
	libelle := req.Libelle
	group := &models.Group{Libelle: &libelle, Couleur: req.Couleur}
	if err := s.repo.Create(ctx, group); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create group")
	}
	return group, nil
}

// Edit applies a partial update. Omitted fields are kept, null fields are cleared.
func (s *GroupService) Edit(ctx context.Context, id string, patch dto.EditGroupeDto) (*models.Group, error) {
	if err := patch.Validate(s.validator); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}

	group, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return group, nil
	}

	if patch.Libelle.Set {
		group.Libelle = patch.Libelle.Value
	}
	if patch.Couleur.Set {
		group.Couleur = patch.Couleur.Value
	}
	if err := s.repo.Update(ctx, group); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update group")
	}
	return group, nil
}

// Delete removes a group.
func (s *GroupService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete group")
	}
	return nil
}
