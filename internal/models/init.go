package models

// InitPayload is returned to a client bootstrapping a session for a user.
type InitPayload struct {
	User     User      `json:"user"`
	Members  []Member  `json:"members"`
	Exercise *Exercise `json:"exercise"`
}
