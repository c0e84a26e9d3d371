package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/entity"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/notify"
)

type mockLeadsRepository struct {
	create   func(ctx context.Context, lead *entity.Lead) error
	list     func(ctx context.Context) ([]entity.Lead, error)
	findByID func(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
}

func (m *mockLeadsRepository) Create(ctx context.Context, lead *entity.Lead) error {
	if m.create != nil {
		return m.create(ctx, lead)
	}
	return errors.New("create not implemented")
}

func (m *mockLeadsRepository) List(ctx context.Context) ([]entity.Lead, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, errors.New("list not implemented")
}

func (m *mockLeadsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("findByID not implemented")
}

type mockReviewsRepository struct {
	create       func(ctx context.Context, review *entity.Review) error
	listApproved func(ctx context.Context, limit int) ([]entity.Review, error)
	listAll      func(ctx context.Context) ([]entity.Review, error)
	updateStatus func(ctx context.Context, id uuid.UUID, status string, updatedAt time.Time) (*entity.Review, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockReviewsRepository) Create(ctx context.Context, review *entity.Review) error {
	if m.create != nil {
		return m.create(ctx, review)
	}
	return errors.New("create not implemented")
}

func (m *mockReviewsRepository) ListApproved(ctx context.Context, limit int) ([]entity.Review, error) {
	if m.listApproved != nil {
		return m.listApproved(ctx, limit)
	}
	return nil, errors.New("listApproved not implemented")
}

func (m *mockReviewsRepository) ListAll(ctx context.Context) ([]entity.Review, error) {
	if m.listAll != nil {
		return m.listAll(ctx)
	}
	return nil, errors.New("listAll not implemented")
}

func (m *mockReviewsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, updatedAt time.Time) (*entity.Review, error) {
	if m.updateStatus != nil {
		return m.updateStatus(ctx, id, status, updatedAt)
	}
	return nil, errors.New("updateStatus not implemented")
}

func (m *mockReviewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return errors.New("delete not implemented")
}

type stubNotifier struct {
	admin notify.Outcome
	user  notify.Outcome
	calls []string
}

func (s *stubNotifier) NotifyAdmin(ctx context.Context, lead entity.Lead) notify.Outcome {
	s.calls = append(s.calls, "admin:"+lead.Email)
	return s.admin
}

func (s *stubNotifier) ConfirmToUser(ctx context.Context, lead entity.Lead) notify.Outcome {
	s.calls = append(s.calls, "user:"+lead.Email)
	return s.user
}

// stubCache mirrors the generation guard of the Redis cache.
type stubCache struct {
	stored      []entity.Review
	hit         bool
	getErr      error
	genErr      error
	generation  int64
	invalidated int
}

func (s *stubCache) GetApproved(ctx context.Context) ([]entity.Review, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if !s.hit {
		return nil, errors.New("miss")
	}
	return s.stored, nil
}

func (s *stubCache) Generation(ctx context.Context) (int64, error) {
	return s.generation, s.genErr
}

func (s *stubCache) SetApproved(ctx context.Context, generation int64, reviews []entity.Review) error {
	if generation != s.generation {
		return nil
	}
	s.stored = reviews
	s.hit = true
	return nil
}

func (s *stubCache) InvalidateApproved(ctx context.Context) error {
	s.invalidated++
	s.generation++
	s.stored = nil
	s.hit = false
	return nil
}

func intPtr(v int) *int { return &v }
