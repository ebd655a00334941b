package usecase

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/domain/match"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound = errors.New("skill not found")
	ErrOwnSkill      = errors.New("cannot request own skill")
	ErrMatchNotFound = errors.New("match request not found")
	ErrForbidden     = errors.New("forbidden")
)

type RequestConnectionInput struct {
	SkillID uuid.UUID
	Message string
}

type MatchUsecase interface {
	// RequestConnection creates a pending match request for someone else's
	// skill. Repeated calls create repeated records; there is no
	// deduplication or idempotency key.
	RequestConnection(ctx context.Context, requesterID uuid.UUID, in RequestConnectionInput) (match.MatchRequest, error)
	Respond(ctx context.Context, providerID uuid.UUID, matchID uuid.UUID, to match.Status) (match.MatchRequest, error)
}

type Match struct {
	matches repository.MatchRepository
	skills  repository.SkillRepository
}

func NewMatchUsecase(matches repository.MatchRepository, skills repository.SkillRepository) *Match {
	return &Match{matches: matches, skills: skills}
}

func (u *Match) RequestConnection(ctx context.Context, requesterID uuid.UUID, in RequestConnectionInput) (match.MatchRequest, error) {
	if requesterID == uuid.Nil || in.SkillID == uuid.Nil {
		return match.MatchRequest{}, ErrInvalidInput
	}

	s, err := u.skills.FindByID(ctx, in.SkillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return match.MatchRequest{}, ErrSkillNotFound
		}
		return match.MatchRequest{}, ErrInternal
	}

	// Discovery already excludes the requester's own skills; this guard keeps
	// the requester != provider invariant even for direct API calls.
	if s.OwnerID == requesterID {
		return match.MatchRequest{}, ErrOwnSkill
	}

	message := strings.TrimSpace(in.Message)
	if message == "" {
		message = match.DefaultMessage(s.Title)
	}

	created, err := u.matches.Create(ctx, match.MatchRequest{
		ID:          uuid.New(),
		RequesterID: requesterID,
		ProviderID:  s.OwnerID,
		SkillID:     s.ID,
		Message:     message,
		Status:      match.StatusPending,
	})
	if err != nil {
		return match.MatchRequest{}, ErrInternal
	}
	return created, nil
}

func (u *Match) Respond(ctx context.Context, providerID uuid.UUID, matchID uuid.UUID, to match.Status) (match.MatchRequest, error) {
	if providerID == uuid.Nil || matchID == uuid.Nil {
		return match.MatchRequest{}, ErrInvalidInput
	}

	m, err := u.matches.FindByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return match.MatchRequest{}, ErrMatchNotFound
		}
		return match.MatchRequest{}, ErrInternal
	}

	if m.ProviderID != providerID {
		return match.MatchRequest{}, ErrForbidden
	}

	if err := m.Transition(to); err != nil {
		return match.MatchRequest{}, err
	}

	if err := u.matches.UpdateStatus(ctx, m.ID, m.Status); err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return match.MatchRequest{}, ErrMatchNotFound
		}
		return match.MatchRequest{}, ErrInternal
	}
	return m, nil
}
