package usecase

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/domain/discovery"
	"skillswap/internal/domain/profile"
	"skillswap/internal/domain/skill"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type CreateSkillInput struct {
	Title       string
	Description string
	Category    string
	Level       string
	ListingType string
}

type CatalogUsecase interface {
	CreateSkill(ctx context.Context, ownerID uuid.UUID, in CreateSkillInput) (skill.Skill, error)
	ListOwnSkills(ctx context.Context, ownerID uuid.UUID) ([]skill.Skill, error)
	ListDiscoverable(ctx context.Context, excludeOwnerID uuid.UUID) ([]discovery.Listing, error)
}

type Catalog struct {
	skills   repository.SkillRepository
	profiles repository.ProfileRepository
	cache    DiscoveryCache
}

func NewCatalogUsecase(skills repository.SkillRepository, profiles repository.ProfileRepository, cache DiscoveryCache) *Catalog {
	return &Catalog{skills: skills, profiles: profiles, cache: cache}
}

func (u *Catalog) CreateSkill(ctx context.Context, ownerID uuid.UUID, in CreateSkillInput) (skill.Skill, error) {
	if ownerID == uuid.Nil {
		return skill.Skill{}, ErrInvalidInput
	}

	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return skill.Skill{}, ErrInvalidInput
	}

	category, ok := skill.ParseCategory(in.Category)
	if !ok {
		return skill.Skill{}, ErrInvalidInput
	}
	level, ok := skill.ParseLevel(in.Level)
	if !ok {
		return skill.Skill{}, ErrInvalidInput
	}
	listingType, ok := skill.ParseListingType(in.ListingType)
	if !ok {
		return skill.Skill{}, ErrInvalidInput
	}

	created, err := u.skills.Create(ctx, skill.Skill{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Category:    category,
		Level:       level,
		ListingType: listingType,
		IsActive:    true,
	})
	if err != nil {
		return skill.Skill{}, ErrInternal
	}

	if u.cache != nil {
		// New listings change every viewer's candidate set.
		_ = u.cache.DeleteByPattern(ctx, browseCandidatesPattern)
	}

	return created, nil
}

func (u *Catalog) ListOwnSkills(ctx context.Context, ownerID uuid.UUID) ([]skill.Skill, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	items, err := u.skills.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) ListDiscoverable(ctx context.Context, excludeOwnerID uuid.UUID) ([]discovery.Listing, error) {
	items, err := u.skills.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	others := make([]skill.Skill, 0, len(items))
	ownerIDs := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, s := range items {
		if s.OwnerID == excludeOwnerID {
			continue
		}
		others = append(others, s)
		if _, ok := seen[s.OwnerID]; !ok {
			seen[s.OwnerID] = struct{}{}
			ownerIDs = append(ownerIDs, s.OwnerID)
		}
	}

	profilesByOwner, err := u.profiles.FindByUserIDs(ctx, ownerIDs)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]discovery.Listing, 0, len(others))
	for _, s := range others {
		owner, ok := profilesByOwner[s.OwnerID]
		if !ok {
			owner = profile.Placeholder()
		}
		out = append(out, discovery.Listing{Skill: s, Owner: owner})
	}
	return out, nil
}
