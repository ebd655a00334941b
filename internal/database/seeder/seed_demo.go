package seeder

import (
	"context"
	"fmt"

	"skillswap/internal/database"
	"skillswap/internal/domain/skill"

	"golang.org/x/crypto/bcrypt"
)

// DemoSeeder populates a development database with two accounts and a few
// listings so browse and dashboard screens have something to show.
type DemoSeeder struct{}

func (DemoSeeder) Name() string { return "demo" }

const (
	demoAliceID = "5f0c1b1e-0a55-4a8e-9a23-111111111111"
	demoBobID   = "5f0c1b1e-0a55-4a8e-9a23-222222222222"
)

func (DemoSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "profiles", "id", "user_id", "username", "full_name"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "skills", "id", "owner_id", "title", "description", "category", "listing_type", "level", "is_active", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "skill_matches", "id", "requester_id", "provider_id", "skill_id", "message", "status"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	users := []struct {
		ID       string
		Email    string
		Username string
		FullName string
	}{
		{ID: demoAliceID, Email: "alice@skillswap.local", Username: "alice", FullName: "Alice Demo"},
		{ID: demoBobID, Email: "bob@skillswap.local", Username: "bob", FullName: "Bob Demo"},
	}

	for _, u := range users {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`,
			u.ID,
			u.Email,
			string(hash),
		); err != nil {
			return err
		}
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO profiles (user_id, username, full_name) VALUES ($1, $2, $3) ON CONFLICT (username) DO NOTHING`,
			u.ID,
			u.Username,
			u.FullName,
		); err != nil {
			return err
		}
	}

	listings := []struct {
		ID          string
		OwnerID     string
		Title       string
		Description string
		Category    skill.Category
		ListingType skill.ListingType
		Level       skill.Level
	}{
		{
			ID:          "9a41d2c0-0a55-4a8e-9a23-aaaaaaaaaaa1",
			OwnerID:     demoAliceID,
			Title:       "Guitar for Beginners",
			Description: "Acoustic basics, chords, and simple songs.",
			Category:    skill.CategoryMusic,
			ListingType: skill.ListingTypeTeach,
			Level:       skill.LevelBeginner,
		},
		{
			ID:          "9a41d2c0-0a55-4a8e-9a23-aaaaaaaaaaa2",
			OwnerID:     demoAliceID,
			Title:       "Conversational Spanish",
			Description: "Looking for a patient tutor for weekly practice.",
			Category:    skill.CategoryLanguages,
			ListingType: skill.ListingTypeLearn,
			Level:       skill.LevelBeginner,
		},
		{
			ID:          "9a41d2c0-0a55-4a8e-9a23-aaaaaaaaaaa3",
			OwnerID:     demoBobID,
			Title:       "Yoga Flow",
			Description: "Morning vinyasa sessions for all levels.",
			Category:    skill.CategorySportsFitness,
			ListingType: skill.ListingTypeTeach,
			Level:       skill.LevelIntermediate,
		},
		{
			ID:          "9a41d2c0-0a55-4a8e-9a23-aaaaaaaaaaa4",
			OwnerID:     demoBobID,
			Title:       "Sourdough Baking",
			Description: "Starter care, shaping, and oven technique.",
			Category:    skill.CategoryCooking,
			ListingType: skill.ListingTypeTeach,
			Level:       skill.LevelAdvanced,
		},
	}

	for _, l := range listings {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, owner_id, title, description, category, listing_type, level, is_active)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
			 ON CONFLICT (id) DO NOTHING`,
			l.ID,
			l.OwnerID,
			l.Title,
			l.Description,
			string(l.Category),
			string(l.ListingType),
			string(l.Level),
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
