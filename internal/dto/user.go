package dto

import (
	"time"

	"github.com/julianmr/helpdesk-api/internal/models"
)

// UserDTO represents a user in the admin directory listing
type UserDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginUserDTO is the slimmed user shape embedded in the login response
type LoginUserDTO struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginResponse is the body returned on successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  LoginUserDTO `json:"user"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserListDTO converts a slice of users
func ToUserListDTO(users []models.User) []UserDTO {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}
	return items
}

// ToLoginResponse builds the login response body
func ToLoginResponse(token string, user models.User) LoginResponse {
	return LoginResponse{
		Token: token,
		User: LoginUserDTO{
			Username: user.Username,
			Name:     user.FullName,
			Role:     user.Role,
		},
	}
}
