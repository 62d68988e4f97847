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

type memberRepository interface {
	FindByID(ctx context.Context, id string) (*models.Member, error)
	Exists(ctx context.Context, userID, networkID string) (bool, error)
	Create(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id string) error
}

type memberUserLookup interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type memberNetworkLookup interface {
	FindByID(ctx context.Context, id string) (*models.Network, error)
}

// MemberService links users to networks.
type MemberService struct {
	repo      memberRepository
	users     memberUserLookup
	networks  memberNetworkLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMemberService constructs a member service.
func NewMemberService(repo memberRepository, users memberUserLookup, networks memberNetworkLookup, validate *validator.Validate, logger *zap.Logger) *MemberService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemberService{repo: repo, users: users, networks: networks, validator: validate, logger: logger}
}

// Create adds a user to a network. A user joins a network at most once.
func (s *MemberService) Create(ctx context.Context, req dto.CreateMemberRequest) (*models.Member, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid member payload")
	}

	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	network, err := s.networks.FindByID(ctx, req.NetworkID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "network not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load network")
	}

	exists, err := s.repo.Exists(ctx, req.UserID, req.NetworkID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check membership")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "user is already a member of this network")
	}

	member := &models.Member{UserID: req.UserID, NetworkID: req.NetworkID, Role: req.Role}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create member")
	}
	member.Network = network
	return member, nil
}

// Delete removes a membership.
func (s *MemberService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "member not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load member")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete member")
	}
	return nil
}
