package dto

import (
	"time"

	"twitchplanner/internal/feature/auth/domain/entity"
)

// UserResponse is the public view of a user. The password hash never leaves
// the server.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	TwitchURL *string   `json:"twitchUrl"`
	Logo      *string   `json:"logo"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse converts a user entity to its public representation.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		TwitchURL: u.TwitchURL,
		Logo:      u.Logo,
		CreatedAt: u.CreatedAt,
	}
}
