package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"rewear/internal/delivery/http/middleware"
	"rewear/internal/delivery/http/response"
	"rewear/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ItemHandler holds dependencies for listing-related handlers.
type ItemHandler struct {
	uc     usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(uc usecase.ItemUsecase, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		uc:     uc,
		logger: logger,
	}
}

// Overview returns the dashboard counters plus featured items.
func (h *ItemHandler) Overview(c echo.Context) error {
	output, err := h.uc.Overview(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"totalItems":       output.Stats.TotalItems,
		"swapsCompleted":   output.Stats.SwapsCompleted,
		"awaitingApproval": output.Stats.ItemsAwaiting,
		"flaggedItems":     output.Stats.FlaggedItems,
		"featuredItems":    toItemResponses(output.Featured),
	}, "")
}

// Browse handles the filtered item listing request.
func (h *ItemHandler) Browse(c echo.Context) error {
	input := usecase.BrowseItemsInput{
		Category:  c.QueryParam("category"),
		Status:    c.QueryParam("status"),
		Condition: c.QueryParam("condition"),
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
		Page:      intQueryParam(c, "page", 0),
		Limit:     intQueryParam(c, "limit", 0),
	}
	if raw := c.QueryParam("minPoints"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			input.MinPoints = &v
		}
	}
	if raw := c.QueryParam("maxPoints"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			input.MaxPoints = &v
		}
	}

	output, err := h.uc.Browse(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"items":      toItemResponses(output.Page.Items),
		"pagination": toPaginationMeta(output.Page),
		"categories": output.Categories,
		"conditions": output.Conditions,
	}, "")
}

// GetItem returns a single listing.
func (h *ItemHandler) GetItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item id")
	}

	item, err := h.uc.GetItem(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemResponse(item), "")
}

type itemRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Size        string   `json:"size" validate:"required,max=50"`
	Color       string   `json:"color" validate:"omitempty,max=50"`
	Brand       string   `json:"brand" validate:"omitempty,max=100"`
	Points      int      `json:"points" validate:"required,gt=0"`
	Category    string   `json:"category" validate:"required,max=100"`
	Condition   string   `json:"condition" validate:"required"`
	Images      []string `json:"images" validate:"required,min=1,dive,url"`
}

// CreateItem handles the listing creation request.
func (h *ItemHandler) CreateItem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.CreateItem(c.Request().Context(), usecase.CreateItemInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Size:        req.Size,
		Color:       req.Color,
		Brand:       req.Brand,
		Points:      req.Points,
		Category:    req.Category,
		Condition:   req.Condition,
		Images:      req.Images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toItemResponse(item),
		"Item listed successfully. Pending approval.")
}

// UpdateItem handles the owner's listing edit request.
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item id")
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.UpdateItem(c.Request().Context(), usecase.UpdateItemInput{
		ItemID:      itemID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Size:        req.Size,
		Color:       req.Color,
		Brand:       req.Brand,
		Points:      req.Points,
		Category:    req.Category,
		Condition:   req.Condition,
		Images:      req.Images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemResponse(item), "Item updated")
}

// ListedItems returns the caller's own listings.
func (h *ItemHandler) ListedItems(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	page, err := h.uc.ListedByUser(c.Request().Context(), userID,
		intQueryParam(c, "page", 1), intQueryParam(c, "limit", 0))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"items":      toItemResponses(page.Items),
		"pagination": toPaginationMeta(page),
	}, "")
}

// BoughtItems returns the items the caller acquired through accepted trades.
func (h *ItemHandler) BoughtItems(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	page, err := h.uc.BoughtByUser(c.Request().Context(), userID,
		intQueryParam(c, "page", 1), intQueryParam(c, "limit", 0))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"items":      toItemResponses(page.Items),
		"pagination": toPaginationMeta(page),
	}, "")
}

// intQueryParam parses an integer query parameter, falling back on absence or
// malformed input.
func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}
