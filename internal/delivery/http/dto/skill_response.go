package dto

import (
	"time"

	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ListingType string    `json:"listing_type"`
	Level       string    `json:"level"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	return SkillResponse{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Title:       s.Title,
		Description: s.Description,
		Category:    string(s.Category),
		ListingType: string(s.ListingType),
		Level:       string(s.Level),
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}
}

func NewSkillResponses(skills []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, NewSkillResponse(s))
	}
	return out
}
