package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skillswap/internal/database"
	"skillswap/internal/domain/match"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrMatchNotFound = errors.New("match request not found")

type MatchRepository interface {
	Create(ctx context.Context, m match.MatchRequest) (match.MatchRequest, error)
	FindByID(ctx context.Context, id uuid.UUID) (match.MatchRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status match.Status) error
	// CountByUser counts match requests where the user is either requester or
	// provider.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

const matchColumns = `id, requester_id, provider_id, skill_id, message, status, created_at`

func (r *PostgresMatchRepository) Create(ctx context.Context, m match.MatchRequest) (match.MatchRequest, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO skill_matches (id, requester_id, provider_id, skill_id, message, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+matchColumns,
		m.ID, m.RequesterID, m.ProviderID, m.SkillID, m.Message, string(m.Status),
	)
	return scanMatch(row)
}

func (r *PostgresMatchRepository) FindByID(ctx context.Context, id uuid.UUID) (match.MatchRequest, error) {
	row := r.db.QueryRow(ctx, `SELECT `+matchColumns+` FROM skill_matches WHERE id = $1`, id)
	m, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return match.MatchRequest{}, ErrMatchNotFound
		}
		return match.MatchRequest{}, err
	}
	return m, nil
}

func (r *PostgresMatchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status match.Status) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE skill_matches SET status = $1 WHERE id = $2`,
		string(status), id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func (r *PostgresMatchRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM skill_matches WHERE requester_id = $1 OR provider_id = $1`,
		userID,
	)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanMatch(row database.Row) (match.MatchRequest, error) {
	var m match.MatchRequest
	var rawStatus string
	if err := row.Scan(&m.ID, &m.RequesterID, &m.ProviderID, &m.SkillID, &m.Message, &rawStatus, &m.CreatedAt); err != nil {
		return match.MatchRequest{}, err
	}
	status, ok := match.ParseStatus(rawStatus)
	if !ok {
		return match.MatchRequest{}, fmt.Errorf("match record: status %q outside its enumeration", rawStatus)
	}
	m.Status = status
	return m, nil
}
