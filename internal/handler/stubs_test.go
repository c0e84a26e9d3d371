package handler

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/config"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/entity"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/notify"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/repository"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/service"
)

type memoryLeadsRepo struct {
	leads     []entity.Lead
	createErr error
}

func (m *memoryLeadsRepo) Create(ctx context.Context, lead *entity.Lead) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.leads = append(m.leads, *lead)
	return nil
}

func (m *memoryLeadsRepo) List(ctx context.Context) ([]entity.Lead, error) {
	out := append([]entity.Lead(nil), m.leads...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryLeadsRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	for _, l := range m.leads {
		if l.ID == id {
			lead := l
			return &lead, nil
		}
	}
	return nil, repository.ErrLeadNotFound
}

type memoryReviewsRepo struct {
	reviews []entity.Review
	listErr error
}

func (m *memoryReviewsRepo) Create(ctx context.Context, review *entity.Review) error {
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *memoryReviewsRepo) ListApproved(ctx context.Context, limit int) ([]entity.Review, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]entity.Review, 0)
	for _, r := range m.reviews {
		if r.Status == entity.ReviewStatusApproved {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryReviewsRepo) ListAll(ctx context.Context) ([]entity.Review, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := append([]entity.Review{}, m.reviews...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryReviewsRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string, updatedAt time.Time) (*entity.Review, error) {
	for i := range m.reviews {
		if m.reviews[i].ID == id {
			m.reviews[i].Status = status
			m.reviews[i].UpdatedAt = updatedAt
			r := m.reviews[i]
			return &r, nil
		}
	}
	return nil, repository.ErrReviewNotFound
}

func (m *memoryReviewsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range m.reviews {
		if m.reviews[i].ID == id {
			m.reviews = append(m.reviews[:i], m.reviews[i+1:]...)
			return nil
		}
	}
	return repository.ErrReviewNotFound
}

type fixedNotifier struct {
	admin, user bool
}

func (f fixedNotifier) NotifyAdmin(ctx context.Context, lead entity.Lead) notify.Outcome {
	return notify.Outcome{Attempted: true, Succeeded: f.admin}
}

func (f fixedNotifier) ConfirmToUser(ctx context.Context, lead entity.Lead) notify.Outcome {
	if !f.user {
		return notify.Outcome{Attempted: true, Err: errors.New("mailbox full")}
	}
	return notify.Outcome{Attempted: true, Succeeded: true}
}

func testConfig(env string) *config.Config {
	return &config.Config{
		Env:                 env,
		ReviewDefaultStatus: entity.ReviewStatusPending,
		LeadServices:        entity.DefaultLeadServices,
		LeadDefaultService:  "general",
		PhoneDefaultRegion:  "US",
	}
}

func newLeadsService(repo repository.LeadsRepository, notifier service.LeadNotifier) *service.LeadsService {
	return service.NewLeadsService(repo, notifier, service.LeadsConfig{
		Services:       entity.DefaultLeadServices,
		DefaultService: "general",
		PhoneRegion:    "US",
	}, nil, nil)
}

func decodeResponse(t *testing.T, body []byte) APIResponse {
	t.Helper()
	var payload APIResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to decode response: %v (%s)", err, body)
	}
	return payload
}

func newEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler(cfg, nil)
	return e
}
