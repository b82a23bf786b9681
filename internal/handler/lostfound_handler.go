package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "smartcampus/internal/errors"
	"smartcampus/internal/model"
	"smartcampus/internal/service"
	"smartcampus/internal/storage"
)

// LostFoundHandler bundles HTTP handlers for lost-and-found reports.
type LostFoundHandler struct {
	svc    service.ResourceService[model.LostFoundItem, *model.LostFoundItem]
	images storage.ImageStore
}

// NewLostFoundHandler creates a handler layer. images may be nil, in which
// case submitted images are dropped.
func NewLostFoundHandler(svc service.ResourceService[model.LostFoundItem, *model.LostFoundItem], images storage.ImageStore) *LostFoundHandler {
	return &LostFoundHandler{svc: svc, images: images}
}

type createLostFoundRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Status      string `json:"status"`
	ReportedBy  string `json:"reportedBy"`
	Contact     string `json:"contact"`
	Image       string `json:"image"`
}

type updateLostFoundRequest struct {
	ID          string  `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Location    *string `json:"location"`
	Status      *string `json:"status"`
	Image       *string `json:"image"`
}

// List godoc
// @Summary List lost-and-found items
// @Tags lostfound
// @Produce json
// @Success 200 {array} model.LostFoundItem
// @Router /lostfound [get]
func (h *LostFoundHandler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary Report a lost or found item
// @Tags lostfound
// @Accept json
// @Produce json
// @Success 201 {object} model.LostFoundItem
// @Failure 400 {object} errors.ErrorResponse
// @Router /lostfound [post]
func (h *LostFoundHandler) Create(c echo.Context) error {
	var req createLostFoundRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item := &model.LostFoundItem{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Status:      orDefault(req.Status, model.LostFoundStatusLost),
		ReportedBy:  orDefault(req.ReportedBy, "Anonymous"),
		Contact:     req.Contact,
		Date:        time.Now().UTC().Format("2006-01-02"),
	}

	if req.Image != "" && h.images != nil {
		// the object key needs the id before the record is written
		item.ID = uuid.New().String()
		url, err := h.images.Store(c.Request().Context(), "lostfound", item.ID, req.Image)
		if err != nil {
			log.Printf("lostfound: image upload failed: %v", err)
			return apperrors.ErrUpstream
		}
		item.Image = &url
	}

	created, err := h.svc.Create(c.Request().Context(), item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a lost-and-found item
// @Tags lostfound
// @Accept json
// @Produce json
// @Success 200 {object} model.LostFoundItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /lostfound [put]
func (h *LostFoundHandler) Update(c echo.Context) error {
	var req updateLostFoundRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrMissingFields
	}
	// reject before uploading so a bad request cannot strand an object
	if req.ID == "" {
		return apperrors.ErrMissingID
	}

	var imageURL *string
	if req.Image != nil && *req.Image != "" && h.images != nil {
		url, err := h.images.Store(c.Request().Context(), "lostfound", req.ID, *req.Image)
		if err != nil {
			log.Printf("lostfound: image upload failed: %v", err)
			return apperrors.ErrUpstream
		}
		imageURL = &url
	}

	updated, err := h.svc.Update(c.Request().Context(), req.ID, func(item *model.LostFoundItem) {
		if req.Title != nil {
			item.Title = *req.Title
		}
		if req.Description != nil {
			item.Description = *req.Description
		}
		if req.Category != nil {
			item.Category = *req.Category
		}
		if req.Location != nil {
			item.Location = *req.Location
		}
		if req.Status != nil {
			item.Status = *req.Status
		}
		if imageURL != nil {
			item.Image = imageURL
		}
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a lost-and-found item
// @Tags lostfound
// @Produce json
// @Param id query string true "Item ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /lostfound [delete]
func (h *LostFoundHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.QueryParam("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Lost found item deleted successfully"})
}
