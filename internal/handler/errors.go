package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/config"
	middlewarepkg "github.com/Shazil-Web3/Hanzala-agnecy/internal/middleware"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/repository"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/service"
)

const (
	msgInvalidPayload = "Invalid request payload"
	msgInternal       = "Internal server error"
	msgRouteNotFound  = "Route not found"
	msgUnhandled      = "Something went wrong!"
)

// errorResponder turns service errors into envelopes and hides internals outside development.
type errorResponder struct {
	exposeDetail bool
	logger       *zap.Logger
}

func newErrorResponder(cfg *config.Config, logger *zap.Logger) errorResponder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return errorResponder{exposeDetail: cfg != nil && cfg.IsDevelopment(), logger: logger}
}

// respond writes the envelope for err. failMessage is used for unexpected failures.
func (r errorResponder) respond(c echo.Context, op string, err error, failMessage string, fields ...zap.Field) error {
	var subErr *service.SubmissionError
	var schemaErr *service.SchemaError

	switch {
	case errors.As(err, &subErr):
		return Failure(c, http.StatusBadRequest, subErr.Message, subErr.Details(), "")
	case errors.As(err, &schemaErr):
		return Failure(c, http.StatusBadRequest, schemaErr.Error(), schemaErr.Errors, "")
	case errors.Is(err, repository.ErrLeadNotFound):
		return Error(c, http.StatusNotFound, "Lead not found")
	case errors.Is(err, repository.ErrReviewNotFound):
		return Error(c, http.StatusNotFound, "Review not found")
	}

	fields = append(fields,
		zap.String("operation", op),
		zap.String("request_id", middlewarepkg.RequestIDFromContext(c)),
		zap.Error(err),
	)
	r.logger.Error("request failed", fields...)
	return Failure(c, http.StatusInternalServerError, failMessage, nil, r.detail(err))
}

func (r errorResponder) detail(err error) string {
	if r.exposeDetail && err != nil {
		return err.Error()
	}
	return msgInternal
}

// HTTPErrorHandler renders routing errors and unhandled failures in the envelope format.
func HTTPErrorHandler(cfg *config.Config, logger *zap.Logger) echo.HTTPErrorHandler {
	r := newErrorResponder(cfg, logger)
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			switch he.Code {
			case http.StatusNotFound:
				_ = Error(c, http.StatusNotFound, msgRouteNotFound)
				return
			case http.StatusInternalServerError:
			default:
				msg := http.StatusText(he.Code)
				if s, ok := he.Message.(string); ok && s != "" {
					msg = s
				}
				_ = Error(c, he.Code, msg)
				return
			}
		}

		r.logger.Error("unhandled error",
			zap.String("request_id", middlewarepkg.RequestIDFromContext(c)),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
		_ = Failure(c, http.StatusInternalServerError, msgUnhandled, nil, r.detail(err))
	}
}
