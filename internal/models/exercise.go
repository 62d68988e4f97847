package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire form of exercise dates: UTC with millisecond precision.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Exercise is a dated activity window.
type Exercise struct {
	EntityStarter
	Name      string    `db:"name" json:"name"`
	StartDate time.Time `db:"start_date" json:"startDate"`
	EndDate   time.Time `db:"end_date" json:"endDate"`
}

// ActiveAt reports whether t falls inside the exercise window, bounds included.
func (e Exercise) ActiveAt(t time.Time) bool {
	return !t.Before(e.StartDate) && !t.After(e.EndDate)
}

// MarshalJSON writes the base fields from the entity snapshot and both dates in DateLayout.
func (e Exercise) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EntitySnapshot
		Name      string `json:"name"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}{
		EntitySnapshot: e.Snapshot(),
		Name:           e.Name,
		StartDate:      FormatDate(e.StartDate),
		EndDate:        FormatDate(e.EndDate),
	})
}
