package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/noah-isme/exercise-api/internal/models"
	"github.com/noah-isme/exercise-api/pkg/database"
)

// UserRepository handles persistence for users.
type UserRepository struct {
	db database.DBTX
}

// NewUserRepository instantiates a user repository.
func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// normalizeEmail is the stored form of an address: trimmed and lower-cased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByID loads a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, r.db.Rebind(userMapping.selectQuery()+" WHERE id = ?"), id); err != nil {
		return nil, err
	}
	user.Normalize()
	return &user, nil
}

// FindByEmail loads a user by email address, ignoring case.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, r.db.Rebind(userMapping.selectQuery()+" WHERE email = ? LIMIT 1"), normalizeEmail(email)); err != nil {
		return nil, err
	}
	user.Normalize()
	return &user, nil
}

// ExistsByEmail reports whether a user already uses email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists int
	if err := r.db.GetContext(ctx, &exists, r.db.Rebind("SELECT 1 FROM users WHERE email = ? LIMIT 1"), normalizeEmail(email)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check user email: %w", err)
	}
	return true, nil
}

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	stampCreate(&user.EntityStarter, clock())
	user.Email = normalizeEmail(user.Email)
	if _, err := r.db.NamedExecContext(ctx, userMapping.insertQuery(), user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
