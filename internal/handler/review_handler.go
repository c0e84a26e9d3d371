package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/config"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/dto"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/service"
)

// ReviewsHandler exposes public review and moderation endpoints.
type ReviewsHandler struct {
	reviews *service.ReviewsService
	errors  errorResponder
}

// NewReviewsHandler creates a new handler instance.
func NewReviewsHandler(reviews *service.ReviewsService, cfg *config.Config, logger *zap.Logger) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviews, errors: newErrorResponder(cfg, logger)}
}

// Create handles POST /api/reviews.
func (h *ReviewsHandler) Create(c echo.Context) error {
	var req dto.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, msgInvalidPayload)
	}

	review, err := h.reviews.Submit(c.Request().Context(), req)
	if err != nil {
		return h.errors.respond(c, "create review", err, msgInternal)
	}
	return Success(c, http.StatusCreated, "Review submitted successfully", review)
}

// ListPublic handles GET /api/reviews.
func (h *ReviewsHandler) ListPublic(c echo.Context) error {
	reviews, err := h.reviews.ListPublic(c.Request().Context())
	if err != nil {
		return h.errors.respond(c, "list approved reviews", err, msgInternal)
	}
	return Success(c, http.StatusOK, "", reviews)
}

// ListAll handles GET /api/reviews/admin.
func (h *ReviewsHandler) ListAll(c echo.Context) error {
	reviews, err := h.reviews.ListAll(c.Request().Context())
	if err != nil {
		return h.errors.respond(c, "list reviews", err, msgInternal)
	}
	return Success(c, http.StatusOK, "", reviews)
}

// UpdateStatus handles PUT /api/reviews/admin/:id/status.
func (h *ReviewsHandler) UpdateStatus(c echo.Context) error {
	var req dto.UpdateReviewStatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, msgInvalidPayload)
	}

	id := c.Param("id")
	review, err := h.reviews.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return h.errors.respond(c, "update review status", err, msgInternal, zap.String("review_id", id))
	}
	return Success(c, http.StatusOK, "Review status updated successfully", review)
}

// Delete handles DELETE /api/reviews/admin/:id.
func (h *ReviewsHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.reviews.Delete(c.Request().Context(), id); err != nil {
		return h.errors.respond(c, "delete review", err, msgInternal, zap.String("review_id", id))
	}
	return Success(c, http.StatusOK, "Review deleted successfully", nil)
}
