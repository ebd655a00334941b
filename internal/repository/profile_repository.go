package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillswap/internal/database"
	"skillswap/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Create(ctx context.Context, p profile.Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	// FindByUserIDs returns the profiles for the given user ids keyed by
	// user id. Missing profiles are simply absent from the map.
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]profile.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Create(ctx context.Context, p profile.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (id, user_id, username, full_name, bio) VALUES ($1, $2, $3, $4, NULLIF($5, ''))`,
		p.ID, p.UserID, p.Username, p.FullName, p.Bio,
	)
	return err
}

func (r *PostgresProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, username, full_name, COALESCE(bio, ''), created_at, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	)

	var p profile.Profile
	if err := row.Scan(&p.ID, &p.UserID, &p.Username, &p.FullName, &p.Bio, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]profile.Profile, error) {
	out := make(map[uuid.UUID]profile.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, username, full_name, COALESCE(bio, ''), created_at, updated_at
		 FROM profiles WHERE user_id = ANY($1)`,
		userIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p profile.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Username, &p.FullName, &p.Bio, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out[p.UserID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
