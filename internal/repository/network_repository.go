package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/exercise-api/internal/models"
	"github.com/noah-isme/exercise-api/pkg/database"
)

// NetworkRepository handles persistence for networks.
type NetworkRepository struct {
	db database.DBTX
}

// NewNetworkRepository instantiates a network repository.
func NewNetworkRepository(db database.DBTX) *NetworkRepository {
	return &NetworkRepository{db: db}
}

// FindByID loads a network by identifier.
func (r *NetworkRepository) FindByID(ctx context.Context, id string) (*models.Network, error) {
	var network models.Network
	if err := r.db.GetContext(ctx, &network, r.db.Rebind(networkMapping.selectQuery()+" WHERE id = ?"), id); err != nil {
		return nil, err
	}
	network.Normalize()
	return &network, nil
}

// List returns every network ordered by name.
func (r *NetworkRepository) List(ctx context.Context) ([]models.Network, error) {
	var networks []models.Network
	if err := r.db.SelectContext(ctx, &networks, networkMapping.selectQuery()+" ORDER BY name, id"); err != nil {
		return nil, fmt.Errorf("list networks: %w", err)
	}
	for i := range networks {
		networks[i].Normalize()
	}
	return networks, nil
}

// Create inserts a new network.
func (r *NetworkRepository) Create(ctx context.Context, network *models.Network) error {
	stampCreate(&network.EntityStarter, clock())
	if _, err := r.db.NamedExecContext(ctx, networkMapping.insertQuery(), network); err != nil {
		return fmt.Errorf("create network: %w", err)
	}
	return nil
}
