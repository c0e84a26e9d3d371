package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/entity"
)

// ReviewsRepository describes persistence operations for reviews.
type ReviewsRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListApproved(ctx context.Context, limit int) ([]entity.Review, error)
	ListAll(ctx context.Context) ([]entity.Review, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, updatedAt time.Time) (*entity.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXReviewsRepository implements ReviewsRepository using pgx.
type PGXReviewsRepository struct {
	pool pgxPool
}

// NewPGXReviewsRepository wires a pgx backed repository.
func NewPGXReviewsRepository(pool *pgxpool.Pool) *PGXReviewsRepository {
	return &PGXReviewsRepository{pool: pool}
}

const reviewColumns = `id, name, company, rating, message, status, created_at, updated_at`

// Create inserts a fully built review.
func (r *PGXReviewsRepository) Create(ctx context.Context, review *entity.Review) error {
	if review == nil {
		return fmt.Errorf("review payload is nil")
	}

	_, err := r.pool.Exec(ctx, `
        INSERT INTO reviews (`+reviewColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `,
		review.ID,
		review.Name,
		review.Company,
		review.Rating,
		review.Message,
		review.Status,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		return translatePGError("insert review", err)
	}
	return nil
}

// ListApproved returns approved reviews oldest first, capped at limit.
func (r *PGXReviewsRepository) ListApproved(ctx context.Context, limit int) ([]entity.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE status = $1 ORDER BY created_at ASC LIMIT $2`, entity.ReviewStatusApproved, limit)
}

// ListAll returns every review newest first.
func (r *PGXReviewsRepository) ListAll(ctx context.Context) ([]entity.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews ORDER BY created_at DESC`)
}

func (r *PGXReviewsRepository) list(ctx context.Context, query string, args ...any) ([]entity.Review, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]entity.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return reviews, nil
}

// UpdateStatus sets the moderation status and returns the updated row.
func (r *PGXReviewsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, updatedAt time.Time) (*entity.Review, error) {
	row := r.pool.QueryRow(ctx, `
        UPDATE reviews SET status = $1, updated_at = $2
        WHERE id = $3
        RETURNING `+reviewColumns, status, updatedAt, id)

	review, err := scanReview(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, translatePGError("update review status", err)
	}
	return &review, nil
}

// Delete removes a review by id.
func (r *PGXReviewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func scanReview(row rowScanner) (entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.Name,
		&review.Company,
		&review.Rating,
		&review.Message,
		&review.Status,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	return review, err
}
