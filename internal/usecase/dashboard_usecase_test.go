package usecase

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/domain/profile"
	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
)

func TestDashboardUsecase_Overview(t *testing.T) {
	userID := uuid.New()

	skills := &mockSkillRepo{owned: []skill.Skill{
		{ID: uuid.New(), OwnerID: userID, Title: "Guitar", ListingType: skill.ListingTypeTeach},
		{ID: uuid.New(), OwnerID: userID, Title: "Spanish", ListingType: skill.ListingTypeLearn},
		{ID: uuid.New(), OwnerID: userID, Title: "Yoga", ListingType: skill.ListingTypeTeach},
	}}
	profiles := &mockProfileRepo{byUser: map[uuid.UUID]profile.Profile{
		userID: {UserID: userID, Username: "anna", FullName: "Anna A"},
	}}
	matches := &mockMatchRepo{count: 4}

	uc := NewDashboardUsecase(skills, profiles, matches)

	got, err := uc.Overview(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Profile.Username != "anna" {
		t.Fatalf("profile not joined: %+v", got.Profile)
	}
	if got.Summary.TeachCount != 2 || got.Summary.LearnCount != 1 {
		t.Fatalf("summary counts: teach=%d learn=%d", got.Summary.TeachCount, got.Summary.LearnCount)
	}
	if got.ConnectionCount != 4 {
		t.Fatalf("connection count from stored matches, got %d", got.ConnectionCount)
	}
}

func TestDashboardUsecase_Overview_MissingProfile(t *testing.T) {
	userID := uuid.New()
	uc := NewDashboardUsecase(&mockSkillRepo{}, &mockProfileRepo{}, &mockMatchRepo{})

	got, err := uc.Overview(context.Background(), userID)
	if err != nil {
		t.Fatalf("a missing profile must not fail the dashboard: %v", err)
	}
	if got.Profile.Username != "Unknown" || got.Profile.FullName != "Unknown User" {
		t.Fatalf("expected placeholder profile, got %+v", got.Profile)
	}
}

func TestDashboardUsecase_Overview_RepoError(t *testing.T) {
	uc := NewDashboardUsecase(&mockSkillRepo{err: errors.New("boom")}, &mockProfileRepo{}, &mockMatchRepo{})

	_, err := uc.Overview(context.Background(), uuid.New())
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestDashboardUsecase_Overview_NilUser(t *testing.T) {
	uc := NewDashboardUsecase(&mockSkillRepo{}, &mockProfileRepo{}, &mockMatchRepo{})

	_, err := uc.Overview(context.Background(), uuid.Nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
