package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/exercise-api/internal/models"
)

// entityMapping declares how an entity type is stored: its table and the
// business columns persisted next to the EntityStarter columns.
type entityMapping struct {
	table   string
	columns []string
}

var (
	userMapping     = entityMapping{table: "users", columns: []string{"email", "first_name", "last_name"}}
	networkMapping  = entityMapping{table: "networks", columns: []string{"name"}}
	memberMapping   = entityMapping{table: "members", columns: []string{"user_id", "network_id", "role"}}
	exerciseMapping = entityMapping{table: "exercises", columns: []string{"name", "start_date", "end_date"}}
	groupMapping    = entityMapping{table: "groupes", columns: []string{"libelle", "couleur"}}
)

func (m entityMapping) allColumns() []string {
	cols := make([]string, 0, len(m.columns)+3)
	cols = append(cols, "id")
	cols = append(cols, m.columns...)
	return append(cols, "created_at", "updated_at")
}

func (m entityMapping) selectColumns(alias string) string {
	cols := m.allColumns()
	if alias != "" {
		for i, c := range cols {
			cols[i] = alias + "." + c
		}
	}
	return strings.Join(cols, ", ")
}

// selectQuery returns "SELECT <columns> FROM <table>".
func (m entityMapping) selectQuery() string {
	return "SELECT " + m.selectColumns("") + " FROM " + m.table
}

func (m entityMapping) insertQuery() string {
	cols := m.allColumns()
	params := make([]string, len(cols))
	for i, c := range cols {
		params[i] = ":" + c
	}
	return "INSERT INTO " + m.table + " (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(params, ", ") + ")"
}

func (m entityMapping) updateQuery() string {
	sets := make([]string, 0, len(m.columns)+1)
	for _, c := range m.columns {
		sets = append(sets, c+" = :"+c)
	}
	sets = append(sets, "updated_at = :updated_at")
	return "UPDATE " + m.table + " SET " + strings.Join(sets, ", ") + " WHERE id = :id"
}

func (m entityMapping) deleteQuery() string {
	return "DELETE FROM " + m.table + " WHERE id = ?"
}

// clock returns the persistence timestamp, UTC at microsecond precision so
// values survive a PostgreSQL round trip unchanged.
func clock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// stampCreate assigns the identifier and creation time. UpdatedAt stays nil
// until the first update.
func stampCreate(e *models.EntityStarter, now time.Time) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = nil
}

func stampUpdate(e *models.EntityStarter, now time.Time) {
	e.UpdatedAt = &now
}
