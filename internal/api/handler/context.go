package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/event-platform/internal/api/middleware"
	"github.com/eventhub/event-platform/internal/core/domain"
)

// authedUser extracts the user attached by the Auth middleware and performs a
// fast-fail check before any service call: presence proves the gate ran.
// Handlers trust this record without re-verifying the token.
func authedUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
