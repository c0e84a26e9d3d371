package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/config"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/dto"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/service"
)

const msgLeadCreated = "Thank you! Your message has been sent successfully. We will get back to you within 24 hours."

// ContactHandler exposes the contact form and lead lookup endpoints.
type ContactHandler struct {
	leads  *service.LeadsService
	errors errorResponder
}

// NewContactHandler creates a new handler instance.
func NewContactHandler(leads *service.LeadsService, cfg *config.Config, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{leads: leads, errors: newErrorResponder(cfg, logger)}
}

// Create handles POST /api/contact.
func (h *ContactHandler) Create(c echo.Context) error {
	var req dto.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, msgInvalidPayload)
	}

	resp, err := h.leads.Submit(c.Request().Context(), req)
	if err != nil {
		return h.errors.respond(c, "create lead", err, "Failed to create lead")
	}
	return Success(c, http.StatusCreated, msgLeadCreated, resp)
}

// List handles GET /api/contact.
func (h *ContactHandler) List(c echo.Context) error {
	leads, err := h.leads.List(c.Request().Context())
	if err != nil {
		return h.errors.respond(c, "list leads", err, "Failed to fetch leads")
	}
	return Success(c, http.StatusOK, "", leads)
}

// Get handles GET /api/contact/:id.
func (h *ContactHandler) Get(c echo.Context) error {
	id := c.Param("id")
	lead, err := h.leads.Get(c.Request().Context(), id)
	if err != nil {
		return h.errors.respond(c, "get lead", err, "Failed to fetch lead", zap.String("lead_id", id))
	}
	return Success(c, http.StatusOK, "", lead)
}
