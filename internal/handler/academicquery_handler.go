package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "smartcampus/internal/errors"
	"smartcampus/internal/model"
	"smartcampus/internal/service"
)

// AcademicQueryHandler bundles HTTP handlers for academic queries.
type AcademicQueryHandler struct {
	svc service.ResourceService[model.AcademicQuery, *model.AcademicQuery]
}

// NewAcademicQueryHandler creates a handler layer.
func NewAcademicQueryHandler(svc service.ResourceService[model.AcademicQuery, *model.AcademicQuery]) *AcademicQueryHandler {
	return &AcademicQueryHandler{svc: svc}
}

type createQueryRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Category     string `json:"category" validate:"required"`
	Priority     string `json:"priority"`
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
}

// Staff answer queries through updates: status, response and attribution.
type updateQueryRequest struct {
	ID           string  `json:"id"`
	Status       *string `json:"status"`
	Response     *string `json:"response"`
	RespondedBy  *string `json:"respondedBy"`
	ResponseDate *string `json:"responseDate"`
}

// List godoc
// @Summary List academic queries
// @Tags academic-query
// @Produce json
// @Success 200 {array} model.AcademicQuery
// @Router /academic-query [get]
func (h *AcademicQueryHandler) List(c echo.Context) error {
	queries, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, queries)
}

// Create godoc
// @Summary Submit an academic query
// @Tags academic-query
// @Accept json
// @Produce json
// @Success 201 {object} model.AcademicQuery
// @Failure 400 {object} errors.ErrorResponse
// @Router /academic-query [post]
func (h *AcademicQueryHandler) Create(c echo.Context) error {
	var req createQueryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	q := &model.AcademicQuery{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Priority:     orDefault(req.Priority, model.QueryDefaultPriority),
		Status:       model.QueryStatusOpen,
		StudentName:  orDefault(req.StudentName, "Anonymous"),
		StudentEmail: req.StudentEmail,
	}
	created, err := h.svc.Create(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update an academic query
// @Tags academic-query
// @Accept json
// @Produce json
// @Success 200 {object} model.AcademicQuery
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /academic-query [put]
func (h *AcademicQueryHandler) Update(c echo.Context) error {
	var req updateQueryRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrMissingFields
	}
	updated, err := h.svc.Update(c.Request().Context(), req.ID, func(q *model.AcademicQuery) {
		if req.Status != nil {
			q.Status = *req.Status
		}
		if req.Response != nil {
			q.Response = req.Response
		}
		if req.RespondedBy != nil {
			q.RespondedBy = req.RespondedBy
		}
		if req.ResponseDate != nil {
			q.ResponseDate = req.ResponseDate
		}
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an academic query
// @Tags academic-query
// @Produce json
// @Param id query string true "Query ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /academic-query [delete]
func (h *AcademicQueryHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.QueryParam("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Query deleted successfully"})
}
