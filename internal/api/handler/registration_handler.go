package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/event-platform/internal/api/metrics"
	"github.com/eventhub/event-platform/internal/core/ports"
)

// RegistrationHandler handles HTTP requests for event registrations.
type RegistrationHandler struct {
	service ports.RegistrationService
}

func NewRegistrationHandler(service ports.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// Register handles POST /v1/events/:id/registrations. Any authenticated user.
//
// @Summary      Register for an event
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID"
// @Success      201  {object}  domain.Registration
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/events/{id}/registrations [post]
func (h *RegistrationHandler) Register(c echo.Context) error {
	user, err := authedUser(c)
	if err != nil {
		return err
	}

	reg, err := h.service.Register(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, reg)
}

// Mine handles GET /v1/registrations/mine.
//
// @Summary      List own registrations
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Registration
// @Router       /v1/registrations/mine [get]
func (h *RegistrationHandler) Mine(c echo.Context) error {
	user, err := authedUser(c)
	if err != nil {
		return err
	}

	regs, err := h.service.ListMine(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, regs)
}

// All handles GET /v1/registrations. Admin only.
//
// @Summary      List all registrations
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Registration
// @Router       /v1/registrations [get]
func (h *RegistrationHandler) All(c echo.Context) error {
	regs, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, regs)
}

// Cancel handles DELETE /v1/registrations/:id. Owner or admin.
//
// @Summary      Cancel a registration
// @Tags         registrations
// @Security     BearerAuth
// @Param        id  path  string  true  "Registration ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/registrations/{id} [delete]
func (h *RegistrationHandler) Cancel(c echo.Context) error {
	user, err := authedUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Cancel(c.Request().Context(), c.Param("id"), user); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
