package user

// UpdateUserRequest represents a partial profile update
type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=100"`
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
}
