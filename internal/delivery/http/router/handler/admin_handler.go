package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"rewear/internal/delivery/http/response"
	"rewear/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AdminHandler holds dependencies for the moderation handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

type moderateItemRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject flag unflag"`
}

// ModerateItem applies an approve/reject/flag/unflag decision on a listing.
func (h *AdminHandler) ModerateItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item id")
	}

	var req moderateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.ModerateItem(c.Request().Context(), usecase.ModerateItemInput{
		ItemID: itemID,
		Action: usecase.ModerationAction(req.Action),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toItemResponse(item),
		moderationMessage(usecase.ModerationAction(req.Action)))
}

func moderationMessage(action usecase.ModerationAction) string {
	switch action {
	case usecase.ModerationApprove:
		return "Item approved"
	case usecase.ModerationReject:
		return "Item rejected"
	case usecase.ModerationFlag:
		return "Item flagged"
	case usecase.ModerationUnflag:
		return "Item unflagged"
	default:
		return "Item updated"
	}
}

// ListUsers returns a page of accounts for the admin surface.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	output, err := h.uc.ListUsers(c.Request().Context(),
		intQueryParam(c, "page", 1), intQueryParam(c, "limit", 0))
	if err != nil {
		return errors.WithStack(err)
	}

	users := make([]*userResponse, 0, len(output.Users))
	for _, user := range output.Users {
		users = append(users, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"users":      users,
		"totalUsers": output.TotalUsers,
		"page":       output.Page,
		"limit":      output.Limit,
	}, "")
}

// ItemsReport streams the inventory report workbook.
func (h *AdminHandler) ItemsReport(c echo.Context) error {
	report, err := h.uc.ItemsReport(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	filename := fmt.Sprintf("items-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.Blob(http.StatusOK, xlsxContentType, report)
}
