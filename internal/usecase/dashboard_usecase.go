package usecase

import (
	"context"
	"errors"

	"skillswap/internal/domain/dashboard"
	"skillswap/internal/domain/profile"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

type DashboardOverview struct {
	Profile profile.Profile
	Summary dashboard.Summary
	// ConnectionCount is computed from stored match requests where the user
	// is requester or provider.
	ConnectionCount int
}

type DashboardUsecase interface {
	Overview(ctx context.Context, userID uuid.UUID) (DashboardOverview, error)
}

type Dashboard struct {
	skills   repository.SkillRepository
	profiles repository.ProfileRepository
	matches  repository.MatchRepository
}

func NewDashboardUsecase(skills repository.SkillRepository, profiles repository.ProfileRepository, matches repository.MatchRepository) *Dashboard {
	return &Dashboard{skills: skills, profiles: profiles, matches: matches}
}

func (u *Dashboard) Overview(ctx context.Context, userID uuid.UUID) (DashboardOverview, error) {
	if userID == uuid.Nil {
		return DashboardOverview{}, ErrInvalidInput
	}

	p, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return DashboardOverview{}, ErrInternal
		}
		p = profile.Placeholder()
	}

	skills, err := u.skills.ListByOwner(ctx, userID)
	if err != nil {
		return DashboardOverview{}, ErrInternal
	}

	connections, err := u.matches.CountByUser(ctx, userID)
	if err != nil {
		return DashboardOverview{}, ErrInternal
	}

	return DashboardOverview{
		Profile:         p,
		Summary:         dashboard.Summarize(skills),
		ConnectionCount: connections,
	}, nil
}
