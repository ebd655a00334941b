package dto

import (
	"skillswap/internal/domain/profile"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	Bio      string    `json:"bio,omitempty"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:   p.UserID,
		Username: p.Username,
		FullName: p.FullName,
		Bio:      p.Bio,
	}
}
