// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"

	"expatmart/config"
	"expatmart/internal/delivery/api/middleware"
	"expatmart/internal/delivery/api/router/handler"
	"expatmart/internal/domain/entity"
	"expatmart/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// multipart envelope on top of the document itself
const uploadOverhead = 1 << 20

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	TestHandler         *handler.TestHandler
	ProfileHandler      *handler.ProfileHandler
	DeviceHandler       *handler.DeviceHandler
	ListingHandler      *handler.ListingHandler
	VendorHandler       *handler.VendorHandler
	OrderHandler        *handler.OrderHandler
	PaymentHandler      *handler.PaymentHandler
	EscrowHandler       *handler.EscrowHandler
	BookingHandler      *handler.BookingHandler
	GroupBuyHandler     *handler.GroupBuyHandler
	NotificationHandler *handler.NotificationHandler
	ComplianceHandler   *handler.ComplianceHandler
	CurrencyHandler     *handler.CurrencyHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimiter         *middleware.RateLimiter `optional:"true"`
	Metrics             *metrics.Metrics        `optional:"true"`
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/ready", r.HealthHandler.Ready)

	if r.Metrics != nil && r.Config.Metrics != nil && r.Config.Metrics.Enabled {
		e.GET(r.Config.Metrics.Path, echo.WrapHandler(r.Metrics.Handler()))
	}

	// Provider callbacks authenticate with their signature, not a user token.
	e.POST("/webhooks/payments/:provider", r.PaymentHandler.Webhook)

	auth := r.AuthMiddleware.Authenticate
	adminOnly := r.AuthMiddleware.RequireRole(entity.RoleAdmin)

	apiV1 := e.Group("/api/v1", r.AuthMiddleware.OptionalAuthenticate)
	if r.RateLimiter != nil {
		apiV1.Use(r.RateLimiter.Handle)
	}

	// Currency
	apiV1.GET("/currencies", r.CurrencyHandler.ListCurrencies)
	apiV1.GET("/currencies/rates", r.CurrencyHandler.GetRates)
	apiV1.GET("/currencies/convert", r.CurrencyHandler.Convert)
	apiV1.GET("/currencies/:code", r.CurrencyHandler.GetCurrency)

	// Listings
	apiV1.GET("/listings", r.ListingHandler.SearchListings)
	apiV1.GET("/listings/popular", r.ListingHandler.PopularSearches)
	apiV1.GET("/listings/:id", r.ListingHandler.GetListing)
	apiV1.POST("/listings", r.ListingHandler.CreateListing, auth)
	apiV1.PUT("/listings/:id", r.ListingHandler.UpdateListing, auth)
	apiV1.DELETE("/listings/:id", r.ListingHandler.DeleteListing, auth)

	// Vendors and products
	apiV1.GET("/vendors", r.VendorHandler.ListVendors)
	apiV1.GET("/vendors/:id", r.VendorHandler.GetVendor)
	apiV1.GET("/vendors/:id/products", r.VendorHandler.ListProducts)
	apiV1.POST("/vendors", r.VendorHandler.RegisterVendor, auth)
	apiV1.POST("/vendors/:id/follow", r.VendorHandler.FollowVendor, auth)
	apiV1.DELETE("/vendors/:id/follow", r.VendorHandler.UnfollowVendor, auth)
	apiV1.GET("/products/:id", r.VendorHandler.GetProduct)
	apiV1.POST("/products", r.VendorHandler.CreateProduct, auth)
	apiV1.PUT("/products/:id", r.VendorHandler.UpdateProduct, auth)
	apiV1.DELETE("/products/:id", r.VendorHandler.DeleteProduct, auth)
	apiV1.POST("/products/:id/publish", r.VendorHandler.PublishProduct, auth)
	apiV1.PATCH("/products/:id/inventory", r.VendorHandler.UpdateInventory, auth)

	// Services and bookings
	apiV1.GET("/services", r.BookingHandler.ListServices)
	apiV1.GET("/services/:id", r.BookingHandler.GetService)
	apiV1.POST("/services", r.BookingHandler.CreateService, auth)
	apiV1.POST("/services/:id/bookings", r.BookingHandler.BookService, auth)
	apiV1.PATCH("/bookings/:id/status", r.BookingHandler.UpdateBookingStatus, auth)

	// Group buys
	apiV1.GET("/group-buys", r.GroupBuyHandler.ListDeals)
	apiV1.GET("/group-buys/:id", r.GroupBuyHandler.GetDeal)
	apiV1.POST("/group-buys", r.GroupBuyHandler.CreateDeal, auth)
	apiV1.POST("/group-buys/:id/join", r.GroupBuyHandler.JoinDeal, auth)

	// Orders, payments and escrow
	apiV1.POST("/orders", r.OrderHandler.CreateOrder, auth)
	apiV1.GET("/orders/:id", r.OrderHandler.GetOrder, auth)
	apiV1.PATCH("/orders/:id/status", r.OrderHandler.UpdateOrderStatus, auth)
	apiV1.GET("/orders/:id/escrow", r.EscrowHandler.GetEscrowByOrder, auth)
	apiV1.POST("/payments", r.PaymentHandler.CreatePayment, auth)
	apiV1.GET("/payments/:id", r.PaymentHandler.GetPayment, auth)
	apiV1.POST("/payments/:id/verify", r.PaymentHandler.VerifyPayment, auth)
	apiV1.POST("/payments/:id/refund", r.PaymentHandler.RefundPayment, auth)
	apiV1.GET("/escrow/:id", r.EscrowHandler.GetEscrow, auth)
	apiV1.POST("/escrow/:id/release", r.EscrowHandler.ReleaseEscrow, auth)
	apiV1.POST("/escrow/:id/refund", r.EscrowHandler.RefundEscrow, auth)
	apiV1.POST("/escrow/:id/dispute", r.EscrowHandler.DisputeEscrow, auth)

	// Caller-scoped resources
	me := apiV1.Group("/me", auth)
	{
		me.GET("/profile", r.ProfileHandler.GetProfile)
		me.PUT("/profile", r.ProfileHandler.UpsertProfile)
		me.GET("/vendor", r.VendorHandler.GetMyVendor)
		me.PUT("/vendor", r.VendorHandler.UpdateMyVendor)
		me.GET("/orders", r.OrderHandler.ListOrders)
		me.GET("/payments", r.PaymentHandler.ListPayments)
		me.GET("/bookings", r.BookingHandler.ListBookings)

		me.POST("/devices", r.DeviceHandler.RegisterDevice)
		me.GET("/devices", r.DeviceHandler.GetUserDevices)
		me.PUT("/devices/:id/token", r.DeviceHandler.UpdateFCMToken)
		me.DELETE("/devices/:id", r.DeviceHandler.DeactivateDevice)

		me.GET("/notifications", r.NotificationHandler.ListNotifications)
		me.GET("/notifications/unread-count", r.NotificationHandler.GetUnreadCount)
		me.POST("/notifications/read-all", r.NotificationHandler.MarkAllAsRead)
		me.POST("/notifications/:id/read", r.NotificationHandler.MarkAsRead)
		me.DELETE("/notifications/:id", r.NotificationHandler.DeleteNotification)
		me.GET("/notification-preferences", r.NotificationHandler.GetPreferences)
		me.PUT("/notification-preferences", r.NotificationHandler.UpdatePreferences)

		me.POST("/kyc", r.ComplianceHandler.SubmitKYC, r.uploadLimit())
		me.GET("/kyc", r.ComplianceHandler.GetKYCStatus)
	}

	admin := apiV1.Group("/admin", auth, adminOnly)
	{
		admin.POST("/vendors/:id/approve", r.VendorHandler.ApproveVendor)
		admin.POST("/vendors/:id/suspend", r.VendorHandler.SuspendVendor)
		admin.GET("/kyc", r.ComplianceHandler.ListPendingKYC)
		admin.POST("/kyc/:id/review", r.ComplianceHandler.ReviewKYC)
		admin.GET("/security-events", r.ComplianceHandler.ListSecurityEvents)
		admin.GET("/notification-templates", r.NotificationHandler.ListTemplates)
		admin.PUT("/notification-templates", r.NotificationHandler.UpsertTemplate)
		admin.POST("/notifications", r.NotificationHandler.SendNotification)
		admin.POST("/notifications/template", r.NotificationHandler.SendTemplatedNotification)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.Config.TestRoutes != nil && r.Config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.TestHandler.TestPublicEndpoint)

		testGroup.Use(r.AuthMiddleware.Authenticate)
		{
			testGroup.GET("/auth", r.TestHandler.TestAuthMiddleware)
			testGroup.POST("/notification", r.TestHandler.TestNotification)
		}
	}
}

// uploadLimit replaces the global body limit on document uploads.
func (r *router) uploadLimit() echo.MiddlewareFunc {
	return echomiddleware.BodyLimit(strconv.FormatInt(r.Config.Storage.MaxDocumentSize+uploadOverhead, 10))
}

// IsUploadRoute reports whether the global body limit must be skipped.
func IsUploadRoute(c echo.Context) bool {
	return c.Path() == "/api/v1/me/kyc" && c.Request().Method == "POST"
}
