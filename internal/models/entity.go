package models

import "time"

// EntityStarter carries the identity and lifecycle timestamps shared by every
// persisted entity. The repository layer assigns all three fields.
type EntityStarter struct {
	ID        string     `db:"id" json:"id"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt"`
}

// EntitySnapshot is a read-only copy of the EntityStarter fields.
type EntitySnapshot struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Snapshot returns a detached copy of the identity and timestamps.
func (e EntityStarter) Snapshot() EntitySnapshot {
	snap := EntitySnapshot{ID: e.ID, CreatedAt: e.CreatedAt}
	if e.UpdatedAt != nil {
		updated := *e.UpdatedAt
		snap.UpdatedAt = &updated
	}
	return snap
}

// Normalize converts timestamps to UTC so they serialise identically across drivers.
func (e *EntityStarter) Normalize() {
	e.CreatedAt = e.CreatedAt.UTC()
	if e.UpdatedAt != nil {
		updated := e.UpdatedAt.UTC()
		e.UpdatedAt = &updated
	}
}
