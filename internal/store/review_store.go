package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"camp-backend/internal/models"
)

type PgReviewStore struct {
	pool *pgxpool.Pool
}

func NewPgReviewStore(pool *pgxpool.Pool) *PgReviewStore {
	return &PgReviewStore{pool: pool}
}

func (s *PgReviewStore) Create(ctx context.Context, rv *models.Review) error {
	query := `
        INSERT INTO reviews (id, campground_id, author_id, rating, text)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at
    `
	err := s.pool.QueryRow(ctx, query,
		rv.ID, rv.CampgroundID, rv.AuthorID, rv.Rating, rv.Text,
	).Scan(&rv.CreatedAt)
	if err != nil {
		return fmt.Errorf("ReviewStore.Create: %w", err)
	}
	return nil
}

func (s *PgReviewStore) GetByID(ctx context.Context, id string) (*models.Review, error) {
	var rv models.Review
	query := `
        SELECT id, campground_id, author_id, rating, text, created_at
        FROM reviews WHERE id = $1
    `
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&rv.ID, &rv.CampgroundID, &rv.AuthorID, &rv.Rating, &rv.Text, &rv.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ReviewStore.GetByID: %w", err)
	}
	return &rv, nil
}

func (s *PgReviewStore) ListByCampground(ctx context.Context, campgroundID string) ([]models.Review, error) {
	query := `
        SELECT r.id, r.campground_id, r.author_id, u.username, r.rating, r.text, r.created_at
        FROM reviews r
        JOIN users u ON u.id = r.author_id
        WHERE r.campground_id = $1
        ORDER BY r.created_at DESC
    `
	rows, err := s.pool.Query(ctx, query, campgroundID)
	if err != nil {
		return nil, fmt.Errorf("ReviewStore.ListByCampground: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(
			&rv.ID, &rv.CampgroundID, &rv.AuthorID, &rv.AuthorName,
			&rv.Rating, &rv.Text, &rv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ReviewStore.ListByCampground: scan: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ReviewStore.ListByCampground: rows: %w", err)
	}
	return reviews, nil
}

func (s *PgReviewStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ReviewStore.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
