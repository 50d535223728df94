package handler

import (
	"net/http"

	"shoply/internal/delivery/http/response"
	domainerrors "shoply/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseIDParam parses the :id path parameter as a UUID. A malformed value
// is a client error, not a missing resource.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	return id, nil
}

// domainValidationError wraps a field-level problem as the shared
// validation error so it renders with the standard envelope.
func domainValidationError(details string) error {
	return domainerrors.ErrValidationFailed.WithDetails(details)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
