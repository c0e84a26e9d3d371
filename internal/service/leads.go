package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/dto"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/entity"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/metrics"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/notify"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/repository"
)

// LeadNotifier sends the follow-up emails for a stored lead.
type LeadNotifier interface {
	NotifyAdmin(ctx context.Context, lead entity.Lead) notify.Outcome
	ConfirmToUser(ctx context.Context, lead entity.Lead) notify.Outcome
}

// LeadsConfig carries the configurable lead rules.
type LeadsConfig struct {
	Services       []string
	DefaultService string
	PhoneRegion    string
}

// LeadsService handles contact form submissions and lead lookups.
type LeadsService struct {
	repo     repository.LeadsRepository
	notifier LeadNotifier
	schema   *SchemaValidator
	cfg      LeadsConfig
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewLeadsService builds a LeadsService. metrics and logger may be nil.
func NewLeadsService(repo repository.LeadsRepository, notifier LeadNotifier, cfg LeadsConfig, m *metrics.Metrics, logger *zap.Logger) *LeadsService {
	if len(cfg.Services) == 0 {
		cfg.Services = entity.DefaultLeadServices
	}
	if cfg.DefaultService == "" {
		cfg.DefaultService = "general"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadsService{
		repo:     repo,
		notifier: notifier,
		schema:   NewSchemaValidator(cfg.Services),
		cfg:      cfg,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit validates and stores a lead, then sends the admin alert and the
// user confirmation. Notification failures never fail the submission.
func (s *LeadsService) Submit(ctx context.Context, req dto.CreateLeadRequest) (*dto.LeadCreatedResponse, error) {
	sub, err := ValidateLead(req)
	if err != nil {
		s.metrics.ObserveLeadSubmission("invalid")
		return nil, err
	}

	now := s.now().UTC()
	lead := entity.Lead{
		ID:          uuid.New(),
		Name:        sub.Name,
		Email:       sub.Email,
		CountryCode: sub.CountryCode,
		Phone:       sub.Phone,
		PhoneE164:   normalizePhone(sub.CountryCode, sub.Phone, s.cfg.PhoneRegion),
		Company:     sub.Company,
		Message:     sub.Message,
		Service:     s.resolveService(sub.Service),
		Status:      entity.LeadStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.schema.Lead(&lead); err != nil {
		s.metrics.ObserveLeadSubmission("invalid")
		return nil, err
	}

	if err := s.repo.Create(ctx, &lead); err != nil {
		var constraintErr *repository.ConstraintError
		if errors.As(err, &constraintErr) {
			s.metrics.ObserveLeadSubmission("invalid")
			return nil, &SchemaError{Errors: []string{constraintErr.Message}}
		}
		s.metrics.ObserveLeadSubmission("failed")
		return nil, fmt.Errorf("create lead: %w", err)
	}
	s.metrics.ObserveLeadSubmission("created")

	sent := dto.EmailsSent{}
	if s.notifier != nil {
		sent.Admin = s.observe(notify.KindAdminAlert, s.notifier.NotifyAdmin(ctx, lead))
		sent.User = s.observe(notify.KindUserConfirmation, s.notifier.ConfirmToUser(ctx, lead))
	}

	return &dto.LeadCreatedResponse{
		ID:         lead.ID.String(),
		Name:       lead.Name,
		Email:      lead.Email,
		Status:     lead.Status,
		EmailsSent: sent,
	}, nil
}

// List returns every lead, newest first.
func (s *LeadsService) List(ctx context.Context) ([]entity.Lead, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

// Get returns a single lead. Malformed ids are reported as not found.
func (s *LeadsService) Get(ctx context.Context, id string) (*entity.Lead, error) {
	leadID, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrLeadNotFound
	}
	lead, err := s.repo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return lead, nil
}

func (s *LeadsService) resolveService(requested string) string {
	for _, svc := range s.cfg.Services {
		if svc == requested {
			return requested
		}
	}
	return s.cfg.DefaultService
}

func (s *LeadsService) observe(kind string, out notify.Outcome) bool {
	result := "skipped"
	switch {
	case out.Succeeded:
		result = "sent"
	case out.Attempted:
		result = "failed"
	}
	s.metrics.ObserveNotification(kind, result)
	return out.Succeeded
}
