package dto

import "github.com/teamhubhq/teamhub-api/internal/models"

// UserRefDTO is the minimal identity returned by signup and login.
type UserRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserSummaryDTO identifies a creator or assignee in nested responses.
type UserSummaryDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserDTO is the full user directory entry.
type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

func ToUserRefDTO(user models.User) UserRefDTO {
	return UserRefDTO{
		ID:   user.ID,
		Name: user.Name,
	}
}

func ToUserSummaryDTO(user models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	}
}

func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
