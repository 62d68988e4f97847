package dto

import "time"

// CreateExerciseRequest describes payload for creating an exercise.
type CreateExerciseRequest struct {
	Name      string     `json:"name" validate:"max=255"`
	StartDate *time.Time `json:"startDate" validate:"required"`
	EndDate   *time.Time `json:"endDate" validate:"required"`
}

// UpdateExerciseRequest replaces the mutable fields of an exercise.
type UpdateExerciseRequest struct {
	Name      string     `json:"name" validate:"max=255"`
	StartDate *time.Time `json:"startDate" validate:"required"`
	EndDate   *time.Time `json:"endDate" validate:"required"`
}
