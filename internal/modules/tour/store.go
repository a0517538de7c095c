// README: Tour store backed by PostgreSQL.
package tour

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the tours table if it does not exist yet. Called once
// at startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tours (
			id          BIGSERIAL PRIMARY KEY,
			name        VARCHAR(255) NOT NULL,
			description TEXT,
			location    VARCHAR(255) NOT NULL
		)`)
	return err
}

func (s *Store) Insert(ctx context.Context, t *Tour) error {
	return s.db.QueryRow(ctx, `
		INSERT INTO tours (name, description, location)
		VALUES ($1, $2, $3)
		RETURNING id`,
		t.Name, t.Description, t.Location,
	).Scan(&t.ID)
}

func (s *Store) Get(ctx context.Context, id int64) (*Tour, error) {
	var t Tour
	err := s.db.QueryRow(ctx, `
		SELECT id, name, description, location
		FROM tours
		WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Description, &t.Location)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) List(ctx context.Context) ([]Tour, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, description, location
		FROM tours
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tours := []Tour{}
	for rows.Next() {
		var t Tour
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Location); err != nil {
			return nil, err
		}
		tours = append(tours, t)
	}
	return tours, rows.Err()
}
