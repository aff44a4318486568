// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"rewear/internal/domain/entity"
	"rewear/internal/domain/repository"

	"github.com/google/uuid"
)

// userResponse is the public view of an account. Credential and OTP state
// never leaves the server.
type userResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"emailVerified"`
	CoinBalance   int       `json:"coinBalance"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toUserResponse(user *entity.User) *userResponse {
	if user == nil {
		return nil
	}

	return &userResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role.String(),
		EmailVerified: user.EmailVerified,
		CoinBalance:   user.CoinBalance,
		Active:        user.Active,
		CreatedAt:     user.CreatedAt,
	}
}

type itemResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Size        string    `json:"size"`
	Color       string    `json:"color,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	Points      int       `json:"points"`
	Status      string    `json:"status"`
	Flagged     bool      `json:"flagged"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	Condition   string    `json:"condition"`
	UserID      uuid.UUID `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toItemResponse(item *entity.Item) *itemResponse {
	if item == nil {
		return nil
	}

	return &itemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Size:        item.Size,
		Color:       item.Color,
		Brand:       item.Brand,
		Points:      item.Points,
		Status:      string(item.Status),
		Flagged:     item.Flagged,
		Images:      item.Images,
		Category:    item.Category,
		Condition:   string(item.Condition),
		UserID:      item.UserID,
		CreatedAt:   item.CreatedAt,
	}
}

func toItemResponses(items []*entity.Item) []*itemResponse {
	out := make([]*itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}

	return out
}

type tradeResponse struct {
	ID          uuid.UUID     `json:"id"`
	ItemID      uuid.UUID     `json:"itemId"`
	BuyerID     uuid.UUID     `json:"buyerId"`
	SellerID    uuid.UUID     `json:"sellerId"`
	OfferAmount int           `json:"offerAmount"`
	Kind        string        `json:"kind"`
	Status      string        `json:"status"`
	Message     string        `json:"message,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	Item        *itemResponse `json:"item,omitempty"`
	Buyer       *userResponse `json:"buyer,omitempty"`
	Seller      *userResponse `json:"seller,omitempty"`
}

func toTradeResponse(trade *entity.Trade) *tradeResponse {
	if trade == nil {
		return nil
	}

	return &tradeResponse{
		ID:          trade.ID,
		ItemID:      trade.ItemID,
		BuyerID:     trade.BuyerID,
		SellerID:    trade.SellerID,
		OfferAmount: trade.OfferAmount,
		Kind:        string(trade.Kind),
		Status:      string(trade.Status),
		Message:     trade.Message,
		CreatedAt:   trade.CreatedAt,
		Item:        toItemResponse(trade.Item),
		Buyer:       toUserResponse(trade.Buyer),
		Seller:      toUserResponse(trade.Seller),
	}
}

func toTradeResponses(trades []*entity.Trade) []*tradeResponse {
	out := make([]*tradeResponse, 0, len(trades))
	for _, trade := range trades {
		out = append(out, toTradeResponse(trade))
	}

	return out
}

type couponResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	DiscountType  string     `json:"discountType"`
	DiscountValue int        `json:"discountValue"`
	MinPurchase   int        `json:"minPurchaseAmount"`
	CoinsRequired int        `json:"coinsRequired"`
	Active        bool       `json:"active"`
	ExpiresAt     time.Time  `json:"expiresAt"`
	UsedAt        *time.Time `json:"usedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func toCouponResponse(coupon *entity.Coupon) *couponResponse {
	if coupon == nil {
		return nil
	}

	return &couponResponse{
		ID:            coupon.ID,
		Title:         coupon.Title,
		Description:   coupon.Description,
		DiscountType:  string(coupon.DiscountType),
		DiscountValue: coupon.DiscountValue,
		MinPurchase:   coupon.MinPurchase,
		CoinsRequired: coupon.CoinsRequired,
		Active:        coupon.Active,
		ExpiresAt:     coupon.ExpiresAt,
		UsedAt:        coupon.UsedAt,
		CreatedAt:     coupon.CreatedAt,
	}
}

func toCouponResponses(coupons []*entity.Coupon) []*couponResponse {
	out := make([]*couponResponse, 0, len(coupons))
	for _, coupon := range coupons {
		out = append(out, toCouponResponse(coupon))
	}

	return out
}

type coinEntryResponse struct {
	ID           uuid.UUID `json:"id"`
	Kind         string    `json:"type"`
	Amount       int       `json:"amount"`
	Description  string    `json:"description"`
	BalanceAfter int       `json:"balanceAfter"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toCoinEntryResponses(entries []*entity.CoinEntry) []*coinEntryResponse {
	out := make([]*coinEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, &coinEntryResponse{
			ID:           entry.ID,
			Kind:         string(entry.Kind),
			Amount:       entry.Amount,
			Description:  entry.Description,
			BalanceAfter: entry.BalanceAfter,
			CreatedAt:    entry.CreatedAt,
		})
	}

	return out
}

type thoughtResponse struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func toThoughtResponses(thoughts []*entity.CommunityThought) []*thoughtResponse {
	out := make([]*thoughtResponse, 0, len(thoughts))
	for _, thought := range thoughts {
		out = append(out, toThoughtResponse(thought))
	}

	return out
}

func toThoughtResponse(thought *entity.CommunityThought) *thoughtResponse {
	if thought == nil {
		return nil
	}

	return &thoughtResponse{
		ID:        thought.ID,
		Author:    thought.Author,
		Text:      thought.Text,
		CreatedAt: thought.CreatedAt,
	}
}

// paginationMeta mirrors the pagination block the dashboard client expects.
type paginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

func toPaginationMeta(page *repository.ItemPage) paginationMeta {
	totalPages := page.TotalPages()

	return paginationMeta{
		Page:       page.Page,
		Limit:      page.Limit,
		TotalItems: page.TotalItems,
		TotalPages: totalPages,
		HasNext:    page.Page < totalPages,
		HasPrev:    page.Page > 1,
	}
}
