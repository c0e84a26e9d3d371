package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/entity"
)

// LeadsRepository describes persistence operations for leads.
type LeadsRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	List(ctx context.Context) ([]entity.Lead, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
}

// PGXLeadsRepository implements LeadsRepository using pgx.
type PGXLeadsRepository struct {
	pool pgxPool
}

// NewPGXLeadsRepository wires a pgx backed repository.
func NewPGXLeadsRepository(pool *pgxpool.Pool) *PGXLeadsRepository {
	return &PGXLeadsRepository{pool: pool}
}

const leadColumns = `id, name, email, country_code, phone, phone_e164, company, message, service, status, created_at, updated_at`

// Create inserts a fully built lead.
func (r *PGXLeadsRepository) Create(ctx context.Context, lead *entity.Lead) error {
	if lead == nil {
		return fmt.Errorf("lead payload is nil")
	}

	_, err := r.pool.Exec(ctx, `
        INSERT INTO leads (`+leadColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.CountryCode,
		lead.Phone,
		lead.PhoneE164,
		lead.Company,
		lead.Message,
		lead.Service,
		lead.Status,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		return translatePGError("insert lead", err)
	}
	return nil
}

// List returns all leads ordered by creation date (desc).
func (r *PGXLeadsRepository) List(ctx context.Context) ([]entity.Lead, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]entity.Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead row: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}
	return leads, nil
}

// FindByID retrieves a lead by identifier.
func (r *PGXLeadsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)

	lead, err := scanLead(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("query lead by id: %w", err)
	}
	return &lead, nil
}

func scanLead(row rowScanner) (entity.Lead, error) {
	var lead entity.Lead
	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.CountryCode,
		&lead.Phone,
		&lead.PhoneE164,
		&lead.Company,
		&lead.Message,
		&lead.Service,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	return lead, err
}
