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

type networkRepository interface {
	FindByID(ctx context.Context, id string) (*models.Network, error)
	List(ctx context.Context) ([]models.Network, error)
	Create(ctx context.Context, network *models.Network) error
}

type networkMemberRepository interface {
	ListByNetwork(ctx context.Context, networkID string) ([]models.Member, error)
}

// NetworkService manages networks.
type NetworkService struct {
	repo      networkRepository
	members   networkMemberRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNetworkService constructs a network service.
func NewNetworkService(repo networkRepository, members networkMemberRepository, validate *validator.Validate, logger *zap.Logger) *NetworkService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NetworkService{repo: repo, members: members, validator: validate, logger: logger}
}

// List returns every network.
func (s *NetworkService) List(ctx context.Context) ([]models.Network, error) {
	networks, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list networks")
	}
	return networks, nil
}

// Get returns a network by ID.
func (s *NetworkService) Get(ctx context.Context, id string) (*models.Network, error) {
	network, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "network not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load network")
	}
	return network, nil
}

// Create stores a new network.
func (s *NetworkService) Create(ctx context.Context, req dto.CreateNetworkRequest) (*models.Network, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid network payload")
	}
	network := &models.Network{Name: req.Name}
	if err := s.repo.Create(ctx, network); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create network")
	}
	return network, nil
}

// Members lists the memberships of a network.
func (s *NetworkService) Members(ctx context.Context, id string) ([]models.Member, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	members, err := s.members.ListByNetwork(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list members")
	}
	return members, nil
}
