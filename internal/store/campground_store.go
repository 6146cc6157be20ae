package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"camp-backend/internal/models"
)

type PgCampgroundStore struct {
	pool *pgxpool.Pool
}

func NewPgCampgroundStore(pool *pgxpool.Pool) *PgCampgroundStore {
	return &PgCampgroundStore{pool: pool}
}

func (s *PgCampgroundStore) Create(ctx context.Context, cg *models.Campground) error {
	query := `
        INSERT INTO campgrounds (id, author_id, title, location, price, description, image)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at
    `
	err := s.pool.QueryRow(ctx, query,
		cg.ID, cg.AuthorID, cg.Title, cg.Location, cg.Price, cg.Description, cg.Image,
	).Scan(&cg.CreatedAt, &cg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("CampgroundStore.Create: %w", err)
	}
	return nil
}

func (s *PgCampgroundStore) GetByID(ctx context.Context, id string) (*models.Campground, error) {
	var cg models.Campground
	query := `
        SELECT id, author_id, title, location, price, description, image, created_at, updated_at
        FROM campgrounds WHERE id = $1
    `
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&cg.ID, &cg.AuthorID, &cg.Title, &cg.Location, &cg.Price,
		&cg.Description, &cg.Image, &cg.CreatedAt, &cg.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("CampgroundStore.GetByID: %w", err)
	}
	return &cg, nil
}

func (s *PgCampgroundStore) List(ctx context.Context) ([]models.Campground, error) {
	query := `
        SELECT id, author_id, title, location, price, description, image, created_at, updated_at
        FROM campgrounds ORDER BY created_at DESC
    `
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("CampgroundStore.List: %w", err)
	}
	defer rows.Close()

	var list []models.Campground
	for rows.Next() {
		var cg models.Campground
		if err := rows.Scan(
			&cg.ID, &cg.AuthorID, &cg.Title, &cg.Location, &cg.Price,
			&cg.Description, &cg.Image, &cg.CreatedAt, &cg.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("CampgroundStore.List: scan: %w", err)
		}
		list = append(list, cg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("CampgroundStore.List: rows: %w", err)
	}
	return list, nil
}

func (s *PgCampgroundStore) Update(ctx context.Context, cg *models.Campground) error {
	query := `
        UPDATE campgrounds SET
            title       = $1,
            location    = $2,
            price       = $3,
            description = $4,
            image       = $5,
            updated_at  = now()
        WHERE id = $6
        RETURNING updated_at
    `
	err := s.pool.QueryRow(ctx, query,
		cg.Title, cg.Location, cg.Price, cg.Description, cg.Image, cg.ID,
	).Scan(&cg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("CampgroundStore.Update: %w", err)
	}
	return nil
}

// Delete removes a campground. Its reviews go with it via the
// ON DELETE CASCADE constraint, so the two deletions are one atomic unit.
func (s *PgCampgroundStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM campgrounds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("CampgroundStore.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
