package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/exercise-api/internal/models"
	appErrors "github.com/noah-isme/exercise-api/pkg/errors"
)

type initUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type initMemberRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Member, error)
}

type initExerciseRepository interface {
	FindActive(ctx context.Context, at time.Time) (*models.Exercise, error)
}

// InitService assembles the bootstrap payload a client loads after sign-in.
type InitService struct {
	users     initUserRepository
	members   initMemberRepository
	exercises initExerciseRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewInitService creates an init service.
func NewInitService(users initUserRepository, members initMemberRepository, exercises initExerciseRepository, logger *zap.Logger) *InitService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InitService{users: users, members: members, exercises: exercises, logger: logger, now: time.Now}
}

// Lookup returns the user identified by email, their memberships and the
// exercise running now. A user without membership is refused.
func (s *InitService) Lookup(ctx context.Context, email string) (*models.InitPayload, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "email is required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}

	members, err := s.members.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load memberships")
	}
	if len(members) == 0 {
		s.logger.Info("init refused for user without membership", zap.String("user_id", user.ID))
		return nil, appErrors.Clone(appErrors.ErrForbidden, "user is not a member of any network")
	}

	payload := &models.InitPayload{User: *user, Members: members}
	now := s.now()
	exercise, err := s.exercises.FindActive(ctx, now)
	switch {
	case err == nil:
		if exercise.ActiveAt(now) {
			payload.Exercise = exercise
		} else {
			s.logger.Warn("active exercise lookup returned a closed window", zap.String("exercise_id", exercise.ID))
		}
	case errors.Is(err, sql.ErrNoRows):
	default:
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load active exercise")
	}
	return payload, nil
}
