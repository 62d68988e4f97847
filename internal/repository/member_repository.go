package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/noah-isme/exercise-api/internal/models"
	"github.com/noah-isme/exercise-api/pkg/database"
)

// MemberRepository handles persistence for network memberships.
type MemberRepository struct {
	db database.DBTX
}

// NewMemberRepository instantiates a member repository.
func NewMemberRepository(db database.DBTX) *MemberRepository {
	return &MemberRepository{db: db}
}

type memberNetworkRow struct {
	models.Member
	NetworkName      string     `db:"network_name"`
	NetworkCreatedAt time.Time  `db:"network_created_at"`
	NetworkUpdatedAt *time.Time `db:"network_updated_at"`
}

func (row memberNetworkRow) toMember() models.Member {
	member := row.Member
	member.Normalize()
	network := models.Network{
		EntityStarter: models.EntityStarter{ID: member.NetworkID, CreatedAt: row.NetworkCreatedAt, UpdatedAt: row.NetworkUpdatedAt},
		Name:          row.NetworkName,
	}
	network.Normalize()
	member.Network = &network
	return member
}

var memberWithNetworkQuery = "SELECT " + memberMapping.selectColumns("m") +
	", n.name AS network_name, n.created_at AS network_created_at, n.updated_at AS network_updated_at" +
	" FROM members m JOIN networks n ON n.id = m.network_id"

// FindByID loads a membership by identifier.
func (r *MemberRepository) FindByID(ctx context.Context, id string) (*models.Member, error) {
	var member models.Member
	if err := r.db.GetContext(ctx, &member, r.db.Rebind(memberMapping.selectQuery()+" WHERE id = ?"), id); err != nil {
		return nil, err
	}
	member.Normalize()
	return &member, nil
}

// ListByUser returns every membership of a user with its network attached.
func (r *MemberRepository) ListByUser(ctx context.Context, userID string) ([]models.Member, error) {
	var rows []memberNetworkRow
	query := r.db.Rebind(memberWithNetworkQuery + " WHERE m.user_id = ? ORDER BY n.name, m.id")
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list members by user: %w", err)
	}
	members := make([]models.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, row.toMember())
	}
	return members, nil
}

// ListByNetwork returns every membership of a network.
func (r *MemberRepository) ListByNetwork(ctx context.Context, networkID string) ([]models.Member, error) {
	var members []models.Member
	query := r.db.Rebind(memberMapping.selectQuery() + " WHERE network_id = ? ORDER BY created_at, id")
	if err := r.db.SelectContext(ctx, &members, query, networkID); err != nil {
		return nil, fmt.Errorf("list members by network: %w", err)
	}
	for i := range members {
		members[i].Normalize()
	}
	return members, nil
}

// Exists reports whether the user already belongs to the network.
func (r *MemberRepository) Exists(ctx context.Context, userID, networkID string) (bool, error) {
	var exists int
	query := r.db.Rebind("SELECT 1 FROM members WHERE user_id = ? AND network_id = ? LIMIT 1")
	if err := r.db.GetContext(ctx, &exists, query, userID, networkID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check membership: %w", err)
	}
	return true, nil
}

// Create inserts a new membership.
func (r *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	if member.Role == "" {
		member.Role = models.MemberRoleMember
	}
	stampCreate(&member.EntityStarter, clock())
	if _, err := r.db.NamedExecContext(ctx, memberMapping.insertQuery(), member); err != nil {
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

// Delete removes a membership permanently.
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(memberMapping.deleteQuery()), id); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}
