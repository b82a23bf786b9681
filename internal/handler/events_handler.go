package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "smartcampus/internal/errors"
	"smartcampus/internal/model"
	"smartcampus/internal/service"
)

// EventsHandler bundles HTTP handlers for campus events.
type EventsHandler struct {
	svc service.ResourceService[model.Event, *model.Event]
}

// NewEventsHandler creates a handler layer.
func NewEventsHandler(svc service.ResourceService[model.Event, *model.Event]) *EventsHandler {
	return &EventsHandler{svc: svc}
}

type createEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type updateEventRequest struct {
	ID          string  `json:"id"`
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
}

// List godoc
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} model.Event
// @Router /events [get]
func (h *EventsHandler) List(c echo.Context) error {
	events, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Success 201 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Router /events [post]
func (h *EventsHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	ev := &model.Event{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
		Category:    orDefault(req.Category, model.EventDefaultCategory),
		Status:      model.EventDefaultStatus,
	}
	created, err := h.svc.Create(c.Request().Context(), ev)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Success 200 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events [put]
func (h *EventsHandler) Update(c echo.Context) error {
	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrMissingFields
	}
	updated, err := h.svc.Update(c.Request().Context(), req.ID, func(ev *model.Event) {
		if req.Title != nil {
			ev.Title = *req.Title
		}
		if req.Date != nil {
			ev.Date = *req.Date
		}
		if req.Time != nil {
			ev.Time = *req.Time
		}
		if req.Location != nil {
			ev.Location = *req.Location
		}
		if req.Description != nil {
			ev.Description = *req.Description
		}
		if req.Category != nil {
			ev.Category = *req.Category
		}
		if req.Status != nil {
			ev.Status = *req.Status
		}
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id query string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /events [delete]
func (h *EventsHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.QueryParam("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Event deleted successfully"})
}
