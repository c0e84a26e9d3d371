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

func fillLead(id uuid.UUID, email string, created time.Time) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*uuid.UUID) = id
		*dest[1].(*string) = "Ana"
		*dest[2].(*string) = email
		*dest[3].(*string) = "+1"
		*dest[4].(*string) = "5551234567"
		*dest[5].(*string) = ""
		*dest[6].(*string) = ""
		*dest[7].(*string) = "Need a website"
		*dest[8].(*string) = "general"
		*dest[9].(*string) = entity.LeadStatusNew
		*dest[10].(*time.Time) = created
		*dest[11].(*time.Time) = created
		return nil
	}
}

func TestPGXLeadsRepository_Create(t *testing.T) {
	var captured []any
	repo := &PGXLeadsRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			if !strings.Contains(query, "INSERT INTO leads") {
				t.Fatalf("unexpected query: %s", query)
			}
			captured = args
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		},
	}}

	lead := &entity.Lead{ID: uuid.New(), Name: "Ana", Email: "ana@example.com", Status: entity.LeadStatusNew}
	if err := repo.Create(context.Background(), lead); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(captured) != 12 || captured[2] != "ana@example.com" {
		t.Fatalf("unexpected insert args: %v", captured)
	}

	if err := repo.Create(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil lead")
	}
}

func TestPGXLeadsRepository_CreateConstraintViolation(t *testing.T) {
	repo := &PGXLeadsRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, &pgconn.PgError{Code: "23514", ConstraintName: "leads_email_format"}
		},
	}}

	err := repo.Create(context.Background(), &entity.Lead{ID: uuid.New()})
	var constraintErr *ConstraintError
	if !errors.As(err, &constraintErr) {
		t.Fatalf("expected ConstraintError, got %v", err)
	}
	if constraintErr.Message != "email failed format check" {
		t.Fatalf("unexpected message: %s", constraintErr.Message)
	}
}

func TestPGXLeadsRepository_List(t *testing.T) {
	newer := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	repo := &PGXLeadsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			if !strings.Contains(query, "ORDER BY created_at DESC") {
				t.Fatalf("expected newest-first ordering, got %s", query)
			}
			return &stubRows{scans: []func(dest ...any) error{
				fillLead(uuid.New(), "b@example.com", newer),
				fillLead(uuid.New(), "a@example.com", older),
			}}, nil
		},
	}}

	leads, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leads) != 2 || leads[0].Email != "b@example.com" {
		t.Fatalf("unexpected leads: %+v", leads)
	}

	repo.pool = &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			return &stubRows{err: errors.New("iteration failed")}, nil
		},
	}
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatalf("expected iteration error")
	}
}

func TestPGXLeadsRepository_FindByID(t *testing.T) {
	id := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	repo := &PGXLeadsRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: fillLead(id, "ana@example.com", time.Now())}
		},
	}}

	lead, err := repo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lead.ID != id || lead.Email != "ana@example.com" {
		t.Fatalf("unexpected lead: %+v", lead)
	}

	repo.pool = &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
		},
	}
	if _, err := repo.FindByID(context.Background(), id); !errors.Is(err, ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}
