package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillswap/internal/database"
	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	Create(ctx context.Context, s skill.Skill) (skill.Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (skill.Skill, error)
	// ListByOwner returns all of an owner's skills newest first, regardless
	// of is_active.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]skill.Skill, error)
	// ListActive returns every active skill newest first. Owner exclusion is
	// the caller's concern.
	ListActive(ctx context.Context) ([]skill.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillColumns = `id, owner_id, title, description, category, listing_type, level, is_active, created_at`

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (id, owner_id, title, description, category, listing_type, level, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+skillColumns,
		s.ID, s.OwnerID, s.Title, s.Description, string(s.Category), string(s.ListingType), string(s.Level), s.IsActive,
	)
	return scanSkill(row)
}

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	row := r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)
	s, err := scanSkill(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkills(rows)
}

func (r *PostgresSkillRepository) ListActive(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE is_active = TRUE ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkills(rows)
}

// scanSkill narrows the raw row through skill.Narrow so out-of-enum values in
// the store are caught at the boundary instead of leaking downstream.
func scanSkill(row database.Row) (skill.Skill, error) {
	var rec skill.Record
	if err := row.Scan(
		&rec.ID, &rec.OwnerID, &rec.Title, &rec.Description,
		&rec.Category, &rec.ListingType, &rec.Level, &rec.IsActive, &rec.CreatedAt,
	); err != nil {
		return skill.Skill{}, err
	}
	return skill.Narrow(rec)
}

func scanSkills(rows database.Rows) ([]skill.Skill, error) {
	out := make([]skill.Skill, 0)
	for rows.Next() {
		var rec skill.Record
		if err := rows.Scan(
			&rec.ID, &rec.OwnerID, &rec.Title, &rec.Description,
			&rec.Category, &rec.ListingType, &rec.Level, &rec.IsActive, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		s, err := skill.Narrow(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
