package dto

import (
	"time"

	"skillswap/internal/domain/match"

	"github.com/google/uuid"
)

type MatchResponse struct {
	ID          uuid.UUID `json:"id"`
	RequesterID uuid.UUID `json:"requester_id"`
	ProviderID  uuid.UUID `json:"provider_id"`
	SkillID     uuid.UUID `json:"skill_id"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewMatchResponse(m match.MatchRequest) MatchResponse {
	return MatchResponse{
		ID:          m.ID,
		RequesterID: m.RequesterID,
		ProviderID:  m.ProviderID,
		SkillID:     m.SkillID,
		Message:     m.Message,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}
