package models

// Network is a community users join through memberships.
type Network struct {
	EntityStarter
	Name string `db:"name" json:"name"`
}

// MemberRole represents the role a user holds inside a network.
type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "ADMIN"
	MemberRoleMember MemberRole = "MEMBER"
)

// Member links a user to a network.
type Member struct {
	EntityStarter
	UserID    string     `db:"user_id" json:"userId"`
	NetworkID string     `db:"network_id" json:"networkId"`
	Role      MemberRole `db:"role" json:"role"`
	Network   *Network   `db:"-" json:"network,omitempty"`
}
