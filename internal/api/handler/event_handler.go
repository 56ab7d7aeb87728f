package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/event-platform/internal/api/metrics"
	"github.com/eventhub/event-platform/internal/core/domain"
	"github.com/eventhub/event-platform/internal/core/ports"
)

// EventHandler handles HTTP requests for event operations. Role gates are
// applied at the route; ownership is enforced by the service.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// Create handles POST /v1/events. Organizer only.
//
// @Summary      Create a new event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	user, err := authedUser(c)
	if err != nil {
		return err
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	event, err := h.service.Create(c.Request().Context(), user.ID, ports.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Date:        req.Date,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}

	metrics.EventsCreatedTotal.WithLabelValues(event.Category).Inc()
	return c.JSON(http.StatusCreated, event)
}

// List handles GET /v1/events with an optional ?status= filter.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status (pending|approved|rejected)"
// @Success      200     {array}   domain.Event
// @Router       /v1/events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Mine handles GET /v1/events/mine. Organizer only.
//
// @Summary      List own events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Event
// @Router       /v1/events/mine [get]
func (h *EventHandler) Mine(c echo.Context) error {
	user, err := authedUser(c)
	if err != nil {
		return err
	}

	events, err := h.service.ListByOrganizer(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Get handles GET /v1/events/:id.
//
// @Summary      Get an event by ID
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  map[string]string
// @Router       /v1/events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Update handles PUT /v1/events/:id. Organizer only; must own the event.
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Event ID"
// @Param        body  body      updateEventRequest  true  "Fields to update"
// @Success      200   {object}  domain.Event
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	user, err := authedUser(c)
	if err != nil {
		return err
	}

	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	event, err := h.service.Update(c.Request().Context(), c.Param("id"), user.ID, toEventUpdate(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /v1/events/:id. Organizer only; must own the event.
//
// @Summary      Delete an event
// @Tags         events
// @Security     BearerAuth
// @Param        id  path  string  true  "Event ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	user, err := authedUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Review handles PATCH /v1/events/:id/status. Admin only.
//
// @Summary      Approve or reject an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Event ID"
// @Param        body  body      reviewEventRequest  true  "Review decision"
// @Success      200   {object}  domain.Event
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/events/{id}/status [patch]
func (h *EventHandler) Review(c echo.Context) error {
	user, err := authedUser(c)
	if err != nil {
		return err
	}

	var req reviewEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	event, err := h.service.Review(c.Request().Context(), c.Param("id"), user.ID, domain.EventStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.EventReviewsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, event)
}
