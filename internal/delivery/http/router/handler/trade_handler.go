package handler

import (
	"log/slog"
	"net/http"

	"rewear/internal/delivery/http/middleware"
	"rewear/internal/delivery/http/response"
	"rewear/internal/domain/entity"
	"rewear/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TradeHandler holds dependencies for buy/offer transaction handlers.
type TradeHandler struct {
	uc     usecase.TradeUsecase
	logger *slog.Logger
}

// NewTradeHandler is the constructor for TradeHandler, injected by Fx.
func NewTradeHandler(uc usecase.TradeUsecase, logger *slog.Logger) *TradeHandler {
	return &TradeHandler{
		uc:     uc,
		logger: logger,
	}
}

type buyRequest struct {
	Message string `json:"message" validate:"omitempty,max=500"`
}

// Buy handles a direct purchase request at the item's listed points.
func (h *TradeHandler) Buy(c echo.Context) error {
	buyerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item id")
	}

	var req buyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	trade, err := h.uc.Buy(c.Request().Context(), usecase.BuyItemInput{
		ItemID:  itemID,
		BuyerID: buyerID,
		Message: req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTradeResponse(trade),
		"Purchase request sent to seller")
}

type offerRequest struct {
	Amount  int    `json:"amount" validate:"required,gt=0"`
	Message string `json:"message" validate:"omitempty,max=500"`
}

// Offer handles a buyer-proposed amount on a listing.
func (h *TradeHandler) Offer(c echo.Context) error {
	buyerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item id")
	}

	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	trade, err := h.uc.Offer(c.Request().Context(), usecase.OfferItemInput{
		ItemID:  itemID,
		BuyerID: buyerID,
		Amount:  req.Amount,
		Message: req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTradeResponse(trade),
		"Offer sent to seller")
}

// SellerTransactions lists pending trades against the caller's listings.
func (h *TradeHandler) SellerTransactions(c echo.Context) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	trades, err := h.uc.SellerTransactions(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTradeResponses(trades), "")
}

// BuyerTransactions lists the caller's own trades.
func (h *TradeHandler) BuyerTransactions(c echo.Context) error {
	buyerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	trades, err := h.uc.BuyerTransactions(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTradeResponses(trades), "")
}

type respondRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
}

// Respond applies the seller's accept/reject decision on a pending trade.
func (h *TradeHandler) Respond(c echo.Context) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	tradeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid trade id")
	}

	var req respondRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	trade, err := h.uc.Respond(c.Request().Context(), usecase.RespondTradeInput{
		TradeID:  tradeID,
		SellerID: sellerID,
		Action:   entity.TradeAction(req.Action),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Trade rejected"
	if trade.Status == entity.TradeStatusAccepted {
		message = "Trade accepted"
	}

	return response.Success(c, http.StatusOK, toTradeResponse(trade), message)
}
