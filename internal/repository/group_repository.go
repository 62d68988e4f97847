package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/exercise-api/internal/models"
	"github.com/noah-isme/exercise-api/pkg/database"
)

// GroupRepository handles persistence for groups.
type GroupRepository struct {
	db database.DBTX
}

// NewGroupRepository instantiates a group repository.
func NewGroupRepository(db database.DBTX) *GroupRepository {
	return &GroupRepository{db: db}
}

// FindByID loads a group by identifier.
func (r *GroupRepository) FindByID(ctx context.Context, id string) (*models.Group, error) {
	var group models.Group
	if err := r.db.GetContext(ctx, &group, r.db.Rebind(groupMapping.selectQuery()+" WHERE id = ?"), id); err != nil {
		return nil, err
	}
	group.Normalize()
	return &group, nil
}

// List returns every group in creation order.
func (r *GroupRepository) List(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.SelectContext(ctx, &groups, groupMapping.selectQuery()+" ORDER BY created_at, id"); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	for i := range groups {
		groups[i].Normalize()
	}
	return groups, nil
}

// Create inserts a new group.
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	stampCreate(&group.EntityStarter, clock())
	if _, err := r.db.NamedExecContext(ctx, groupMapping.insertQuery(), group); err != nil {
		return fmt.Errorf("create group: %w", err)
	}
	return nil
}

// Update persists libelle and couleur of an existing group.
func (r *GroupRepository) Update(ctx context.Context, group *models.Group) error {
	stampUpdate(&group.EntityStarter, clock())
	if _, err := r.db.NamedExecContext(ctx, groupMapping.updateQuery(), group); err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	return nil
}

// Delete removes a group permanently.
func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(groupMapping.deleteQuery()), id); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}
