package dto

import "github.com/noah-isme/exercise-api/internal/models"

// CreateUserRequest describes payload for registering a user.
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
}

// CreateNetworkRequest describes payload for creating a network.
type CreateNetworkRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// CreateMemberRequest adds a user to a network.
type CreateMemberRequest struct {
	UserID    string            `json:"userId" validate:"required"`
	NetworkID string            `json:"networkId" validate:"required"`
	Role      models.MemberRole `json:"role" validate:"omitempty,oneof=ADMIN MEMBER"`
}
