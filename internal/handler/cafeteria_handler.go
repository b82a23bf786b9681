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

// CafeteriaHandler bundles the menu, order and feedback handlers.
type CafeteriaHandler struct {
	menu     service.ResourceService[model.MenuItem, *model.MenuItem]
	orders   service.ResourceService[model.Order, *model.Order]
	feedback service.FeedbackService
	images   storage.ImageStore
}

// NewCafeteriaHandler creates a handler layer. images may be nil.
func NewCafeteriaHandler(
	menu service.ResourceService[model.MenuItem, *model.MenuItem],
	orders service.ResourceService[model.Order, *model.Order],
	feedback service.FeedbackService,
	images storage.ImageStore,
) *CafeteriaHandler {
	return &CafeteriaHandler{menu: menu, orders: orders, feedback: feedback, images: images}
}

type createMenuItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	Available   *bool   `json:"available"`
	Image       string  `json:"image"`
}

type updateMenuItemRequest struct {
	ID          string   `json:"id"`
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Available   *bool    `json:"available"`
	Image       *string  `json:"image"`
}

type createOrderRequest struct {
	ItemID       string  `json:"itemId" validate:"required"`
	ItemName     string  `json:"itemName" validate:"required"`
	Price        float64 `json:"price" validate:"required"`
	CustomerName string  `json:"customerName" validate:"required"`
}

type createFeedbackRequest struct {
	ItemID   string  `json:"itemId" validate:"required"`
	Rating   float64 `json:"rating" validate:"required"`
	Comment  string  `json:"comment"`
	UserName string  `json:"userName"`
}

// ListMenu godoc
// @Summary List menu items
// @Tags cafeteria
// @Produce json
// @Success 200 {array} model.MenuItem
// @Router /cafeteria [get]
func (h *CafeteriaHandler) ListMenu(c echo.Context) error {
	items, err := h.menu.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// CreateMenuItem godoc
// @Summary Create a menu item
// @Tags cafeteria
// @Accept json
// @Produce json
// @Success 201 {object} model.MenuItem
// @Failure 400 {object} errors.ErrorResponse
// @Router /cafeteria [post]
func (h *CafeteriaHandler) CreateMenuItem(c echo.Context) error {
	var req createMenuItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item := &model.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Available:   req.Available == nil || *req.Available,
	}

	if req.Image != "" && h.images != nil {
		item.ID = uuid.New().String()
		url, err := h.images.Store(c.Request().Context(), "cafeteria", item.ID, req.Image)
		if err != nil {
			log.Printf("cafeteria: image upload failed: %v", err)
			return apperrors.ErrUpstream
		}
		item.Image = &url
	}

	created, err := h.menu.Create(c.Request().Context(), item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateMenuItem godoc
// @Summary Update a menu item
// @Tags cafeteria
// @Accept json
// @Produce json
// @Success 200 {object} model.MenuItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cafeteria [put]
func (h *CafeteriaHandler) UpdateMenuItem(c echo.Context) error {
	var req updateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrMissingFields
	}
	// reject before uploading so a bad request cannot strand an object
	if req.ID == "" {
		return apperrors.ErrMissingID
	}

	var imageURL *string
	if req.Image != nil && *req.Image != "" && h.images != nil {
		url, err := h.images.Store(c.Request().Context(), "cafeteria", req.ID, *req.Image)
		if err != nil {
			log.Printf("cafeteria: image upload failed: %v", err)
			return apperrors.ErrUpstream
		}
		imageURL = &url
	}

	updated, err := h.menu.Update(c.Request().Context(), req.ID, func(item *model.MenuItem) {
		if req.Name != nil {
			item.Name = *req.Name
		}
		if req.Price != nil {
			item.Price = *req.Price
		}
		if req.Category != nil {
			item.Category = *req.Category
		}
		if req.Description != nil {
			item.Description = *req.Description
		}
		if req.Available != nil {
			item.Available = *req.Available
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

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Tags cafeteria
// @Produce json
// @Param id query string true "Item ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /cafeteria [delete]
func (h *CafeteriaHandler) DeleteMenuItem(c echo.Context) error {
	if err := h.menu.Delete(c.Request().Context(), c.QueryParam("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Menu item deleted successfully"})
}

// ListOrders godoc
// @Summary List orders
// @Tags cafeteria
// @Produce json
// @Success 200 {array} model.Order
// @Router /cafeteria/orders [get]
func (h *CafeteriaHandler) ListOrders(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// CreateOrder godoc
// @Summary Place an order
// @Tags cafeteria
// @Accept json
// @Produce json
// @Success 201 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Router /cafeteria/orders [post]
func (h *CafeteriaHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	order := &model.Order{
		ItemID:       req.ItemID,
		ItemName:     req.ItemName,
		Price:        req.Price,
		CustomerName: req.CustomerName,
		OrderTime:    time.Now().UTC(),
		Status:       model.OrderDefaultStatus,
	}
	created, err := h.orders.Create(c.Request().Context(), order)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// CreateFeedback godoc
// @Summary Submit feedback for a menu item
// @Tags cafeteria
// @Accept json
// @Produce json
// @Success 201 {object} model.Feedback
// @Failure 400 {object} errors.ErrorResponse
// @Router /cafeteria/feedback [post]
func (h *CafeteriaHandler) CreateFeedback(c echo.Context) error {
	var req createFeedbackRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	fb := &model.Feedback{
		ItemID:   req.ItemID,
		Rating:   req.Rating,
		Comment:  req.Comment,
		UserName: req.UserName,
	}
	created, err := h.feedback.Submit(c.Request().Context(), fb)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// ListFeedback godoc
// @Summary List feedback for a menu item
// @Tags cafeteria
// @Produce json
// @Param itemId query string true "Menu item ID"
// @Success 200 {array} model.Feedback
// @Failure 400 {object} errors.ErrorResponse
// @Router /cafeteria/feedback [get]
func (h *CafeteriaHandler) ListFeedback(c echo.Context) error {
	fbs, err := h.feedback.ListByItem(c.Request().Context(), c.QueryParam("itemId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fbs)
}
