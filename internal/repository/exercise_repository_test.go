package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/exercise-api/internal/models"
)

var exerciseColumns = []string{"id", "name", "start_date", "end_date", "created_at", "updated_at"}

func TestExerciseFindActive(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewExerciseRepository(db)

	at := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	start := at.Add(-24 * time.Hour)
	end := at.Add(24 * time.Hour)
	rows := sqlmock.NewRows(exerciseColumns).AddRow("e1", "Spring", start, end, start, nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM exercises WHERE start_date <= ? AND end_date >= ? ORDER BY start_date DESC, id LIMIT 1")).
		WithArgs(at, at).
		WillReturnRows(rows)

	exercise, err := repo.FindActive(context.Background(), at)
	require.NoError(t, err)
	assert.Equal(t, "e1", exercise.ID)
	assert.True(t, exercise.ActiveAt(at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExerciseUpdateStampsUpdatedAt(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewExerciseRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE exercises SET name = ?, start_date = ?, end_date = ?, updated_at = ? WHERE id = ?")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created := time.Now().Add(-time.Hour).UTC()
	exercise := &models.Exercise{EntityStarter: models.EntityStarter{ID: "e1", CreatedAt: created}, Name: "Renamed"}
	require.NoError(t, repo.Update(context.Background(), exercise))
	require.NotNil(t, exercise.UpdatedAt)
	assert.Equal(t, created, exercise.CreatedAt)
	assert.False(t, exercise.UpdatedAt.Before(created))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExerciseList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewExerciseRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(exerciseColumns).
		AddRow("e2", "B", now, now.Add(time.Hour), now, nil).
		AddRow("e1", "A", now.Add(-time.Hour), now, now, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, start_date, end_date, created_at, updated_at FROM exercises ORDER BY start_date DESC, id")).
		WillReturnRows(rows)

	exercises, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, exercises, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
