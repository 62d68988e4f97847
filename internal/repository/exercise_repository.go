package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/noah-isme/exercise-api/internal/models"
	"github.com/noah-isme/exercise-api/pkg/database"
)

// ExerciseRepository handles persistence for exercises.
type ExerciseRepository struct {
	db database.DBTX
}

// NewExerciseRepository instantiates an exercise repository.
func NewExerciseRepository(db database.DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func normalizeExercise(e *models.Exercise) {
	e.Normalize()
	e.StartDate = e.StartDate.UTC()
	e.EndDate = e.EndDate.UTC()
}

// exerciseDate is the stored form of an exercise bound, matching models.DateLayout.
func exerciseDate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// FindByID loads an exercise by identifier.
func (r *ExerciseRepository) FindByID(ctx context.Context, id string) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := r.db.GetContext(ctx, &exercise, r.db.Rebind(exerciseMapping.selectQuery()+" WHERE id = ?"), id); err != nil {
		return nil, err
	}
	normalizeExercise(&exercise)
	return &exercise, nil
}

// FindActive returns the exercise running at the given instant. When several
// overlap, the most recently started one wins.
func (r *ExerciseRepository) FindActive(ctx context.Context, at time.Time) (*models.Exercise, error) {
	var exercise models.Exercise
	at = at.UTC()
	query := r.db.Rebind(exerciseMapping.selectQuery() + " WHERE start_date <= ? AND end_date >= ? ORDER BY start_date DESC, id LIMIT 1")
	if err := r.db.GetContext(ctx, &exercise, query, at, at); err != nil {
		return nil, err
	}
	normalizeExercise(&exercise)
	return &exercise, nil
}

// List returns every exercise, most recent first.
func (r *ExerciseRepository) List(ctx context.Context) ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := r.db.SelectContext(ctx, &exercises, exerciseMapping.selectQuery()+" ORDER BY start_date DESC, id"); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	for i := range exercises {
		normalizeExercise(&exercises[i])
	}
	return exercises, nil
}

// Create inserts a new exercise.
func (r *ExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	stampCreate(&exercise.EntityStarter, clock())
	exercise.StartDate = exerciseDate(exercise.StartDate)
	exercise.EndDate = exerciseDate(exercise.EndDate)
	if _, err := r.db.NamedExecContext(ctx, exerciseMapping.insertQuery(), exercise); err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	return nil
}

// Update persists name and dates of an existing exercise.
func (r *ExerciseRepository) Update(ctx context.Context, exercise *models.Exercise) error {
	stampUpdate(&exercise.EntityStarter, clock())
	exercise.StartDate = exerciseDate(exercise.StartDate)
	exercise.EndDate = exerciseDate(exercise.EndDate)
	if _, err := r.db.NamedExecContext(ctx, exerciseMapping.updateQuery(), exercise); err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	return nil
}

// Delete removes an exercise permanently.
func (r *ExerciseRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(exerciseMapping.deleteQuery()), id); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}
