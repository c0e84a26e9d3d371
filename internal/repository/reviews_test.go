package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/entity"
)

func fillReview(id uuid.UUID, status string, created time.Time) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*uuid.UUID) = id
		*dest[1].(*string) = "Bo"
		*dest[2].(*string) = "Acme"
		*dest[3].(*int) = 5
		*dest[4].(*string) = "Great work overall"
		*dest[5].(*string) = status
		*dest[6].(*time.Time) = created
		*dest[7].(*time.Time) = created
		return nil
	}
}

func TestPGXReviewsRepository_ListApproved(t *testing.T) {
	repo := &PGXReviewsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			if !strings.Contains(query, "ORDER BY created_at ASC LIMIT $2") {
				t.Fatalf("expected oldest-first capped query, got %s", query)
			}
			if args[0] != entity.ReviewStatusApproved || args[1] != 50 {
				t.Fatalf("unexpected args: %v", args)
			}
			return &stubRows{scans: []func(dest ...any) error{
				fillReview(uuid.New(), entity.ReviewStatusApproved, time.Now()),
			}}, nil
		},
	}}

	reviews, err := repo.ListApproved(context.Background(), entity.PublicReviewsLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Rating != 5 {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}
}

func TestPGXReviewsRepository_ListAll(t *testing.T) {
	repo := &PGXReviewsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			if !strings.Contains(query, "ORDER BY created_at DESC") {
				t.Fatalf("expected newest-first ordering, got %s", query)
			}
			return &stubRows{}, nil
		},
	}}

	reviews, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reviews == nil || len(reviews) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", reviews)
	}

	repo.pool = &stubPool{}
	if _, err := repo.ListAll(context.Background()); err == nil {
		t.Fatalf("expected query error")
	}
}

func TestPGXReviewsRepository_UpdateStatus(t *testing.T) {
	id := uuid.New()
	updatedAt := time.Now().UTC()
	repo := &PGXReviewsRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			if args[0] != entity.ReviewStatusRejected || args[1] != updatedAt || args[2] != id {
				t.Fatalf("unexpected args: %v", args)
			}
			return &stubRow{scan: fillReview(id, entity.ReviewStatusRejected, updatedAt)}
		},
	}}

	review, err := repo.UpdateStatus(context.Background(), id, entity.ReviewStatusRejected, updatedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.Status != entity.ReviewStatusRejected {
		t.Fatalf("unexpected review: %+v", review)
	}

	repo.pool = &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
		},
	}
	if _, err := repo.UpdateStatus(context.Background(), id, entity.ReviewStatusApproved, updatedAt); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestPGXReviewsRepository_Delete(t *testing.T) {
	tests := map[string]struct {
		tag       pgconn.CommandTag
		err       error
		expectErr error
	}{
		"deleted":   {tag: pgconn.NewCommandTag("DELETE 1")},
		"not found": {tag: pgconn.NewCommandTag("DELETE 0"), expectErr: ErrReviewNotFound},
		"db error":  {err: errors.New("db down")},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := &PGXReviewsRepository{pool: &stubPool{
				execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
					return tt.tag, tt.err
				},
			}}
			err := repo.Delete(context.Background(), uuid.New())
			switch {
			case tt.err != nil:
				if err == nil {
					t.Fatalf("expected error")
				}
			case tt.expectErr != nil:
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("expected %v, got %v", tt.expectErr, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestTranslatePGError(t *testing.T) {
	plain := errors.New("connection reset")
	if err := translatePGError("insert review", plain); !errors.Is(err, plain) {
		t.Fatalf("expected wrapped error, got %v", err)
	}

	err := translatePGError("insert review", &pgconn.PgError{Code: "22001"})
	var constraintErr *ConstraintError
	if !errors.As(err, &constraintErr) {
		t.Fatalf("expected ConstraintError for truncation, got %v", err)
	}

	err = translatePGError("insert review", &pgconn.PgError{Code: "23502", ColumnName: "message"})
	if !errors.As(err, &constraintErr) || constraintErr.Message != "message is required" {
		t.Fatalf("unexpected not-null translation: %v", err)
	}
}

func TestDocumentConversionRejectsBadIDs(t *testing.T) {
	if _, err := (reviewDocument{ID: "not-a-uuid"}).toEntity(); err == nil {
		t.Fatalf("expected error for malformed review id")
	}
	id := uuid.New()
	lead, err := newLeadDocument(&entity.Lead{ID: id, Email: "ana@example.com"}).toEntity()
	if err != nil || lead.ID != id {
		t.Fatalf("expected round trip of lead id, got %v (%v)", lead.ID, err)
	}
}
