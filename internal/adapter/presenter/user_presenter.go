package presenter

import (
	authdto "github.com/thien06012001/backend/internal/adapter/dto/auth"
	"github.com/thien06012001/backend/internal/domain/entities"
)

// ToUserResponse converts a User entity to UserResponse DTO. The password
// hash never leaves this boundary.
func ToUserResponse(u *entities.User) *authdto.UserResponse {
	if u == nil {
		return nil
	}

	return &authdto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      string(u.Role),
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserListResponse converts a slice of User entities
func ToUserListResponse(users []*entities.User) []*authdto.UserResponse {
	responses := make([]*authdto.UserResponse, len(users))
	for i, u := range users {
		responses[i] = ToUserResponse(u)
	}
	return responses
}
