package models

// User represents an application user stored in the users table.
type User struct {
	EntityStarter
	Email     string `db:"email" json:"email"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
}
