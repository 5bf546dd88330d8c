package dto

import (
	"time"

	"skillforge/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       string          `json:"role"`
	Department string          `json:"department"`
	AvatarURL  string          `json:"avatar_url,omitempty"`
	Tenure     string          `json:"tenure"`
	Title      string          `json:"title,omitempty"`
	Location   string          `json:"location,omitempty"`
	Status     user.Status     `json:"status"`
	IsAdmin    bool            `json:"is_admin"`
	Skills     []SkillResponse `json:"skills"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewUserResponse(u user.User) UserResponse {
	skills := make([]SkillResponse, 0, len(u.Skills))
	for _, s := range u.Skills {
		skills = append(skills, NewSkillResponse(s))
	}
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		AvatarURL:  u.AvatarURL,
		Tenure:     u.Tenure,
		Title:      u.Title,
		Location:   u.Location,
		Status:     u.Status,
		IsAdmin:    u.IsAdmin,
		Skills:     skills,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func NewUserListResponse(users []user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
