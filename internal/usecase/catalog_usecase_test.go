package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"skillswap/internal/domain/match"
	"skillswap/internal/domain/profile"
	"skillswap/internal/domain/skill"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

type mockSkillRepo struct {
	created []skill.Skill
	byID    map[uuid.UUID]skill.Skill
	owned   []skill.Skill
	active  []skill.Skill
	err     error
}

func (m *mockSkillRepo) Create(_ context.Context, s skill.Skill) (skill.Skill, error) {
	if m.err != nil {
		return skill.Skill{}, m.err
	}
	m.created = append(m.created, s)
	return s, nil
}

func (m *mockSkillRepo) FindByID(_ context.Context, id uuid.UUID) (skill.Skill, error) {
	if m.err != nil {
		return skill.Skill{}, m.err
	}
	s, ok := m.byID[id]
	if !ok {
		return skill.Skill{}, repository.ErrSkillNotFound
	}
	return s, nil
}

func (m *mockSkillRepo) ListByOwner(context.Context, uuid.UUID) ([]skill.Skill, error) {
	return m.owned, m.err
}

func (m *mockSkillRepo) ListActive(context.Context) ([]skill.Skill, error) {
	return m.active, m.err
}

type mockProfileRepo struct {
	byUser map[uuid.UUID]profile.Profile
	err    error
}

func (m *mockProfileRepo) Create(context.Context, profile.Profile) error { return m.err }

func (m *mockProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	if m.err != nil {
		return profile.Profile{}, m.err
	}
	p, ok := m.byUser[userID]
	if !ok {
		return profile.Profile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) FindByUserIDs(_ context.Context, userIDs []uuid.UUID) (map[uuid.UUID]profile.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[uuid.UUID]profile.Profile, len(userIDs))
	for _, id := range userIDs {
		if p, ok := m.byUser[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type mockMatchRepo struct {
	created []match.MatchRequest
	byID    map[uuid.UUID]match.MatchRequest
	updated map[uuid.UUID]match.Status
	count   int
	err     error
}

func (m *mockMatchRepo) Create(_ context.Context, mr match.MatchRequest) (match.MatchRequest, error) {
	if m.err != nil {
		return match.MatchRequest{}, m.err
	}
	m.created = append(m.created, mr)
	return mr, nil
}

func (m *mockMatchRepo) FindByID(_ context.Context, id uuid.UUID) (match.MatchRequest, error) {
	if m.err != nil {
		return match.MatchRequest{}, m.err
	}
	mr, ok := m.byID[id]
	if !ok {
		return match.MatchRequest{}, repository.ErrMatchNotFound
	}
	return mr, nil
}

func (m *mockMatchRepo) UpdateStatus(_ context.Context, id uuid.UUID, status match.Status) error {
	if m.err != nil {
		return m.err
	}
	if m.updated == nil {
		m.updated = map[uuid.UUID]match.Status{}
	}
	m.updated[id] = status
	return nil
}

func (m *mockMatchRepo) CountByUser(context.Context, uuid.UUID) (int, error) {
	return m.count, m.err
}

type mockDiscoveryCache struct {
	store           map[string][]byte
	deletedPatterns []string
	getCalls        int
	setCalls        int
}

func (m *mockDiscoveryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.getCalls++
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockDiscoveryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.setCalls++
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.store == nil {
		m.store = map[string][]byte{}
	}
	m.store[key] = b
	return nil
}

func (m *mockDiscoveryCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.deletedPatterns = append(m.deletedPatterns, pattern)
	return nil
}

func validCreateInput() CreateSkillInput {
	return CreateSkillInput{
		Title:       "Guitar for Beginners",
		Description: "Acoustic basics and chords",
		Category:    "Music",
		Level:       "beginner",
		ListingType: "teach",
	}
}

func TestCatalogUsecase_CreateSkill_Validation(t *testing.T) {
	owner := uuid.New()

	cases := []struct {
		name  string
		owner uuid.UUID
		in    func(in *CreateSkillInput)
	}{
		{name: "nil owner", owner: uuid.Nil, in: func(*CreateSkillInput) {}},
		{name: "blank title", owner: owner, in: func(in *CreateSkillInput) { in.Title = "   " }},
		{name: "blank description", owner: owner, in: func(in *CreateSkillInput) { in.Description = "" }},
		{name: "unknown category", owner: owner, in: func(in *CreateSkillInput) { in.Category = "Gardening" }},
		{name: "unknown level", owner: owner, in: func(in *CreateSkillInput) { in.Level = "expert" }},
		{name: "unknown listing type", owner: owner, in: func(in *CreateSkillInput) { in.ListingType = "both" }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			repo := &mockSkillRepo{}
			uc := NewCatalogUsecase(repo, &mockProfileRepo{}, nil)

			in := validCreateInput()
			c.in(&in)

			_, err := uc.CreateSkill(context.Background(), c.owner, in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(repo.created) != 0 {
				t.Fatalf("invalid input must not reach the store")
			}
		})
	}
}

func TestCatalogUsecase_CreateSkill_Success(t *testing.T) {
	owner := uuid.New()
	repo := &mockSkillRepo{}
	cache := &mockDiscoveryCache{}
	uc := NewCatalogUsecase(repo, &mockProfileRepo{}, cache)

	in := validCreateInput()
	in.Title = "  Guitar for Beginners  "

	created, err := uc.CreateSkill(context.Background(), owner, in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Title != "Guitar for Beginners" {
		t.Fatalf("title not trimmed: %q", created.Title)
	}
	if !created.IsActive {
		t.Fatalf("new listings must start active")
	}
	if created.OwnerID != owner {
		t.Fatalf("owner not set")
	}
	if created.ID == uuid.Nil {
		t.Fatalf("id not assigned")
	}
	if created.Category != skill.CategoryMusic || created.Level != skill.LevelBeginner || created.ListingType != skill.ListingTypeTeach {
		t.Fatalf("discriminants not narrowed: %+v", created)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 stored skill, got %d", len(repo.created))
	}
	if len(cache.deletedPatterns) != 1 || cache.deletedPatterns[0] != browseCandidatesPattern {
		t.Fatalf("browse candidates cache not invalidated: %v", cache.deletedPatterns)
	}
}

func TestCatalogUsecase_CreateSkill_RepoError(t *testing.T) {
	repo := &mockSkillRepo{err: errors.New("boom")}
	uc := NewCatalogUsecase(repo, &mockProfileRepo{}, nil)

	_, err := uc.CreateSkill(context.Background(), uuid.New(), validCreateInput())
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestCatalogUsecase_ListOwnSkills(t *testing.T) {
	owner := uuid.New()
	repo := &mockSkillRepo{owned: []skill.Skill{
		{ID: uuid.New(), OwnerID: owner, Title: "Guitar", IsActive: true},
		{ID: uuid.New(), OwnerID: owner, Title: "Spanish", IsActive: false},
	}}
	uc := NewCatalogUsecase(repo, &mockProfileRepo{}, nil)

	items, err := uc.ListOwnSkills(context.Background(), owner)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Inactive listings stay visible to their owner.
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestCatalogUsecase_ListDiscoverable(t *testing.T) {
	viewer := uuid.New()
	otherA := uuid.New()
	otherB := uuid.New()

	repo := &mockSkillRepo{active: []skill.Skill{
		{ID: uuid.New(), OwnerID: otherA, Title: "Yoga Flow", IsActive: true},
		{ID: uuid.New(), OwnerID: viewer, Title: "My Own Listing", IsActive: true},
		{ID: uuid.New(), OwnerID: otherB, Title: "Sourdough Baking", IsActive: true},
	}}
	profiles := &mockProfileRepo{byUser: map[uuid.UUID]profile.Profile{
		otherA: {UserID: otherA, Username: "anna", FullName: "Anna A"},
	}}
	uc := NewCatalogUsecase(repo, profiles, nil)

	listings, err := uc.ListDiscoverable(context.Background(), viewer)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected viewer's own listing excluded, got %d listings", len(listings))
	}
	for _, l := range listings {
		if l.Skill.OwnerID == viewer {
			t.Fatalf("viewer's own listing leaked into discovery")
		}
	}
	if listings[0].Owner.Username != "anna" {
		t.Fatalf("expected joined profile, got %+v", listings[0].Owner)
	}
	// Missing owner profile degrades to the placeholder, never an error.
	if listings[1].Owner.Username != "Unknown" || listings[1].Owner.FullName != "Unknown User" {
		t.Fatalf("expected placeholder owner, got %+v", listings[1].Owner)
	}
}
