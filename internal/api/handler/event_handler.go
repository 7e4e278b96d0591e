package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmp/property-portal/internal/core/ports"
)

// EventHandler serves a property's calendar.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List godoc
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        property  query  string  true  "Property id"
// @Success      200       {array}  domain.Event
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	events, err := h.service.List(c.Request().Context(), claims, c.QueryParam("property"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Create godoc
// @Summary      Create event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      eventRequest  true  "Event"
// @Success      201   {object}  idResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req eventRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := h.service.Create(c.Request().Context(), claims, ports.EventInput{
		Property:    req.Property,
		Title:       req.Title,
		Date:        req.Date,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, idResponse{ID: id})
}

// Update godoc
// @Summary      Update event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Event id"
// @Param        body  body      updateEventRequest  true  "Fields"
// @Success      200   {object}  statusResponse
// @Router       /api/events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req updateEventRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	fields := ports.EventFields{
		Title:       req.Title,
		Date:        req.Date,
		Location:    req.Location,
		Description: req.Description,
	}
	if err := h.service.Update(c.Request().Context(), claims, c.Param("id"), req.Property, fields); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse)
}

// Delete godoc
// @Summary      Delete event
// @Tags         events
// @Param        id        path   string  true  "Event id"
// @Param        property  query  string  true  "Property id"
// @Success      204
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), claims, c.Param("id"), c.QueryParam("property")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
