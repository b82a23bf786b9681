package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "smartcampus/internal/errors"
	"smartcampus/internal/model"
	"smartcampus/internal/service"
)

// TimetableHandler bundles HTTP handlers for timetable entries.
type TimetableHandler struct {
	svc service.ResourceService[model.TimetableEntry, *model.TimetableEntry]
}

// NewTimetableHandler creates a handler layer.
func NewTimetableHandler(svc service.ResourceService[model.TimetableEntry, *model.TimetableEntry]) *TimetableHandler {
	return &TimetableHandler{svc: svc}
}

type createTimetableRequest struct {
	Subject string `json:"subject" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Room    string `json:"room" validate:"required"`
	Faculty string `json:"faculty" validate:"required"`
	Day     string `json:"day" validate:"required"`
}

type updateTimetableRequest struct {
	ID      string  `json:"id"`
	Subject *string `json:"subject"`
	Time    *string `json:"time"`
	Room    *string `json:"room"`
	Faculty *string `json:"faculty"`
	Day     *string `json:"day"`
}

// List godoc
// @Summary List timetable entries
// @Tags timetable
// @Produce json
// @Success 200 {array} model.TimetableEntry
// @Router /timetable [get]
func (h *TimetableHandler) List(c echo.Context) error {
	entries, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Create godoc
// @Summary Create a timetable entry
// @Tags timetable
// @Accept json
// @Produce json
// @Success 201 {object} model.TimetableEntry
// @Failure 400 {object} errors.ErrorResponse
// @Router /timetable [post]
func (h *TimetableHandler) Create(c echo.Context) error {
	var req createTimetableRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	entry := &model.TimetableEntry{
		Subject: req.Subject,
		Time:    req.Time,
		Room:    req.Room,
		Faculty: req.Faculty,
		Day:     req.Day,
	}
	created, err := h.svc.Create(c.Request().Context(), entry)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a timetable entry
// @Tags timetable
// @Accept json
// @Produce json
// @Success 200 {object} model.TimetableEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /timetable [put]
func (h *TimetableHandler) Update(c echo.Context) error {
	var req updateTimetableRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrMissingFields
	}
	updated, err := h.svc.Update(c.Request().Context(), req.ID, func(e *model.TimetableEntry) {
		if req.Subject != nil {
			e.Subject = *req.Subject
		}
		if req.Time != nil {
			e.Time = *req.Time
		}
		if req.Room != nil {
			e.Room = *req.Room
		}
		if req.Faculty != nil {
			e.Faculty = *req.Faculty
		}
		if req.Day != nil {
			e.Day = *req.Day
		}
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a timetable entry
// @Tags timetable
// @Produce json
// @Param id query string true "Entry ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /timetable [delete]
func (h *TimetableHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.QueryParam("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Timetable entry deleted successfully"})
}
