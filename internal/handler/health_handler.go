package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Health reports liveness. It does not touch the store.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "Server is running",
		Timestamp: time.Now().UTC().Format(isoMillis),
	})
}
