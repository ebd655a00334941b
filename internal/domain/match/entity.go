package match

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

var ErrInvalidTransition = errors.New("invalid match request transition")

// MatchRequest is a one-way expression of interest from a requester to a
// listing's owner. Created as pending; the provider may accept or decline.
type MatchRequest struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	ProviderID  uuid.UUID
	SkillID     uuid.UUID
	Message     string
	Status      Status
	CreatedAt   time.Time
}

// DefaultMessage is the templated message used when the requester supplies none.
func DefaultMessage(skillTitle string) string {
	return fmt.Sprintf("Hi! I'm interested in learning %s.", skillTitle)
}

func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.TrimSpace(raw)) {
	case StatusPending:
		return StatusPending, true
	case StatusAccepted:
		return StatusAccepted, true
	case StatusDeclined:
		return StatusDeclined, true
	default:
		return "", false
	}
}

// Transition moves the request to a new status. Only pending requests may
// move, and only to accepted or declined.
func (m *MatchRequest) Transition(to Status) error {
	if m.Status != StatusPending {
		return ErrInvalidTransition
	}
	if to != StatusAccepted && to != StatusDeclined {
		return ErrInvalidTransition
	}
	m.Status = to
	return nil
}
