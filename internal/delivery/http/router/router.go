// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rewear/internal/delivery/http/middleware"
	"rewear/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ItemHandler      *handler.ItemHandler
	TradeHandler     *handler.TradeHandler
	CoinHandler      *handler.CoinHandler
	CommunityHandler *handler.CommunityHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	itemHandler      *handler.ItemHandler
	tradeHandler     *handler.TradeHandler
	coinHandler      *handler.CoinHandler
	communityHandler *handler.CommunityHandler
	adminHandler     *handler.AdminHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		itemHandler:      params.ItemHandler,
		tradeHandler:     params.TradeHandler,
		coinHandler:      params.CoinHandler,
		communityHandler: params.CommunityHandler,
		adminHandler:     params.AdminHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/verify-email", r.authHandler.VerifyEmail)
		authGroup.POST("/resend-otp", r.authHandler.ResendOTP)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}
	authedAuthGroup := api.Group("/auth")
	authedAuthGroup.Use(r.authMiddleware.Authenticate)
	{
		authedAuthGroup.GET("/profile", r.authHandler.GetProfile)
		authedAuthGroup.PUT("/profile", r.authHandler.UpdateProfile)
		authedAuthGroup.POST("/logout", r.authHandler.Logout)
	}

	// Marketplace routes; browsing is public, everything else requires a login
	dashGroup := api.Group("/dashboard")
	{
		dashGroup.GET("/overview", r.itemHandler.Overview)
		dashGroup.GET("/items", r.itemHandler.Browse)
		dashGroup.GET("/items/:id", r.itemHandler.GetItem)
	}
	authedDashGroup := api.Group("/dashboard")
	authedDashGroup.Use(r.authMiddleware.Authenticate)
	{
		authedDashGroup.POST("/items", r.itemHandler.CreateItem)
		authedDashGroup.PUT("/items/:id", r.itemHandler.UpdateItem)
		authedDashGroup.GET("/user/listed", r.itemHandler.ListedItems)
		authedDashGroup.GET("/user/bought", r.itemHandler.BoughtItems)

		authedDashGroup.POST("/items/:id/buy", r.tradeHandler.Buy)
		authedDashGroup.POST("/items/:id/offer", r.tradeHandler.Offer)
		authedDashGroup.GET("/seller/transactions", r.tradeHandler.SellerTransactions)
		authedDashGroup.GET("/buyer/transactions", r.tradeHandler.BuyerTransactions)
		authedDashGroup.PUT("/transactions/:id/respond", r.tradeHandler.Respond)
	}

	// Coin and coupon routes all require a login
	coinGroup := api.Group("/coins")
	coinGroup.Use(r.authMiddleware.Authenticate)
	{
		coinGroup.GET("/balance", r.coinHandler.Balance)
		coinGroup.GET("/transactions", r.coinHandler.Transactions)
		coinGroup.GET("/available-coupons", r.coinHandler.AvailableCoupons)
		coinGroup.POST("/create-coupon", r.coinHandler.CreateCoupon)
		coinGroup.GET("/redemption-coupons", r.coinHandler.RedemptionCoupons)
		coinGroup.POST("/redeem-coupon", r.coinHandler.RedeemCoupon)
		coinGroup.GET("/coupons/:id/qr", r.coinHandler.CouponQR)
	}

	// Community board
	communityGroup := api.Group("/community")
	{
		communityGroup.GET("/thoughts", r.communityHandler.ListThoughts)
		communityGroup.POST("/thoughts", r.communityHandler.PostThought)
	}

	// Moderation surface requires an admin or owner role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireModerator())
	{
		adminGroup.PUT("/items/:id/moderate", r.adminHandler.ModerateItem)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/reports/items.xlsx", r.adminHandler.ItemsReport)
	}
}
