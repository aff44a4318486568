package handler

import (
	"log/slog"
	"net/http"

	"rewear/internal/delivery/http/middleware"
	"rewear/internal/delivery/http/response"
	"rewear/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CoinHandler holds dependencies for reward coin and coupon handlers.
type CoinHandler struct {
	uc     usecase.CoinUsecase
	logger *slog.Logger
}

// NewCoinHandler is the constructor for CoinHandler, injected by Fx.
func NewCoinHandler(uc usecase.CoinUsecase, logger *slog.Logger) *CoinHandler {
	return &CoinHandler{
		uc:     uc,
		logger: logger,
	}
}

// Balance returns the caller's current coin balance.
func (h *CoinHandler) Balance(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	balance, err := h.uc.Balance(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"balance": balance}, "")
}

// Transactions returns the caller's latest coin ledger entries.
func (h *CoinHandler) Transactions(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	entries, err := h.uc.Transactions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCoinEntryResponses(entries), "")
}

// AvailableCoupons returns the redemption catalog annotated with affordability.
func (h *CoinHandler) AvailableCoupons(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	coupons, err := h.uc.AvailableCoupons(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupons, "")
}

type createCouponRequest struct {
	OptionID string `json:"optionId" validate:"required"`
}

// CreateCoupon exchanges coins for a catalog coupon.
func (h *CoinHandler) CreateCoupon(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	var req createCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	coupon, err := h.uc.CreateCoupon(c.Request().Context(), userID, req.OptionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCouponResponse(coupon),
		"Coupon created successfully")
}

// RedemptionCoupons returns the caller's usable coupons.
func (h *CoinHandler) RedemptionCoupons(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	coupons, err := h.uc.RedemptionCoupons(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCouponResponses(coupons), "")
}

type redeemCouponRequest struct {
	CouponID string `json:"couponId" validate:"required,uuid"`
}

// RedeemCoupon consumes a coupon the caller owns.
func (h *CoinHandler) RedeemCoupon(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	var req redeemCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	couponID, err := uuid.Parse(req.CouponID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coupon id")
	}

	coupon, err := h.uc.RedeemCoupon(c.Request().Context(), userID, couponID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCouponResponse(coupon),
		"Coupon redeemed successfully")
}

// CouponQR renders a coupon as a PNG QR code.
func (h *CoinHandler) CouponQR(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "Authentication required")
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coupon id")
	}

	png, err := h.uc.CouponQR(c.Request().Context(), userID, couponID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
