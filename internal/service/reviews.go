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
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/repository"
)

// ReviewsCache holds the public approved list. GetApproved returns a non-nil
// error on a miss. SetApproved must drop the write when InvalidateApproved ran
// after generation was read.
type ReviewsCache interface {
	GetApproved(ctx context.Context) ([]entity.Review, error)
	Generation(ctx context.Context) (int64, error)
	SetApproved(ctx context.Context, generation int64, reviews []entity.Review) error
	InvalidateApproved(ctx context.Context) error
}

// ReviewsService handles review submission, public listing and moderation.
type ReviewsService struct {
	repo          repository.ReviewsRepository
	cache         ReviewsCache
	schema        *SchemaValidator
	defaultStatus string
	metrics       *metrics.Metrics
	logger        *zap.Logger
	now           func() time.Time
}

// NewReviewsService builds a ReviewsService. cache, metrics and logger may be nil.
// defaultStatus is the status given to new reviews.
func NewReviewsService(repo repository.ReviewsRepository, cache ReviewsCache, defaultStatus string, m *metrics.Metrics, logger *zap.Logger) *ReviewsService {
	if !entity.IsReviewStatus(defaultStatus) {
		defaultStatus = entity.ReviewStatusPending
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewsService{
		repo:          repo,
		cache:         cache,
		schema:        NewSchemaValidator(nil),
		defaultStatus: defaultStatus,
		metrics:       m,
		logger:        logger,
		now:           time.Now,
	}
}

// Submit validates and stores a review with the configured default status.
func (s *ReviewsService) Submit(ctx context.Context, req dto.CreateReviewRequest) (*entity.Review, error) {
	sub, err := ValidateReview(req)
	if err != nil {
		s.metrics.ObserveReviewSubmission("invalid")
		return nil, err
	}

	now := s.now().UTC()
	review := entity.Review{
		ID:        uuid.New(),
		Name:      sub.Name,
		Company:   sub.Company,
		Rating:    sub.Rating,
		Message:   sub.Message,
		Status:    s.defaultStatus,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.schema.Review(&review); err != nil {
		s.metrics.ObserveReviewSubmission("invalid")
		return nil, err
	}

	if err := s.repo.Create(ctx, &review); err != nil {
		s.metrics.ObserveReviewSubmission("failed")
		return nil, s.translate("create review", err)
	}
	s.metrics.ObserveReviewSubmission("created")

	s.invalidate(ctx)
	return &review, nil
}

// ListPublic returns approved reviews oldest first, capped at entity.PublicReviewsLimit.
func (s *ReviewsService) ListPublic(ctx context.Context) ([]entity.Review, error) {
	fill := false
	var generation int64
	if s.cache != nil {
		cached, err := s.cache.GetApproved(ctx)
		if err == nil {
			return cached, nil
		}
		s.logger.Debug("approved reviews not served from cache", zap.Error(err))

		if generation, err = s.cache.Generation(ctx); err != nil {
			s.logger.Warn("read approved reviews cache generation", zap.Error(err))
		} else {
			fill = true
		}
	}

	reviews, err := s.repo.ListApproved(ctx, entity.PublicReviewsLimit)
	if err != nil {
		return nil, fmt.Errorf("list approved reviews: %w", err)
	}

	if fill {
		if err := s.cache.SetApproved(ctx, generation, reviews); err != nil {
			s.logger.Warn("cache approved reviews", zap.Error(err))
		}
	}
	return reviews, nil
}

// ListAll returns every review, newest first.
func (s *ReviewsService) ListAll(ctx context.Context) ([]entity.Review, error) {
	reviews, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// UpdateStatus moves a review to any moderation state.
func (s *ReviewsService) UpdateStatus(ctx context.Context, id, status string) (*entity.Review, error) {
	status, err := ValidateReviewStatus(status)
	if err != nil {
		return nil, err
	}
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrReviewNotFound
	}

	review, err := s.repo.UpdateStatus(ctx, reviewID, status, s.now().UTC())
	if err != nil {
		return nil, s.translate("update review status", err)
	}
	s.metrics.ObserveModeration(status)
	s.invalidate(ctx)
	return review, nil
}

// Delete removes a review.
func (s *ReviewsService) Delete(ctx context.Context, id string) error {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrReviewNotFound
	}
	if err := s.repo.Delete(ctx, reviewID); err != nil {
		return s.translate("delete review", err)
	}
	s.metrics.ObserveModeration("deleted")
	s.invalidate(ctx)
	return nil
}

func (s *ReviewsService) translate(op string, err error) error {
	if errors.Is(err, repository.ErrReviewNotFound) {
		return err
	}
	var constraintErr *repository.ConstraintError
	if errors.As(err, &constraintErr) {
		return &SchemaError{Errors: []string{constraintErr.Message}}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *ReviewsService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateApproved(ctx); err != nil {
		s.logger.Warn("invalidate approved reviews cache", zap.Error(err))
	}
}
