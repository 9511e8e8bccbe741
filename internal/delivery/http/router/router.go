// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	ShopHandler         *handler.ShopHandler
	AuthHandler         *handler.AuthHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	NotificationHandler *handler.NotificationHandler
	ToastHandler        *handler.ToastHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every route below sees the resolved session.
	e.Use(p.AuthMiddleware.Resolve)

	// Public storefront
	e.GET("/", p.ShopHandler.Home)
	e.GET("/products", p.ShopHandler.Products)
	e.GET("/products/:id", p.ShopHandler.ProductDetail)
	e.GET("/feedback", p.ShopHandler.FeedbackForm)
	e.POST("/feedback", p.ShopHandler.SubmitFeedback)

	// Auth flows
	e.GET("/login", p.AuthHandler.LoginForm)
	e.POST("/login", p.AuthHandler.Login)
	e.GET("/register", p.AuthHandler.RegisterForm)
	e.POST("/register", p.AuthHandler.Register)
	e.POST("/logout", p.AuthHandler.Logout)
	e.GET("/forgot-password", p.AuthHandler.ForgotPasswordForm)
	e.POST("/forgot-password", p.AuthHandler.ForgotPassword)
	e.GET("/reset-password", p.AuthHandler.ResetPasswordForm)
	e.POST("/reset-password", p.AuthHandler.ResetPassword)

	// Cart works for guests too; the guard only kicks in at checkout.
	e.GET("/cart", p.CartHandler.CartPage)
	e.POST("/cart/items", p.CartHandler.AddItem)
	e.POST("/cart/items/batch-delete", p.CartHandler.RemoveBatch)
	e.POST("/cart/items/:id", p.CartHandler.UpdateItem)
	e.POST("/cart/items/:id/delete", p.CartHandler.RemoveItem)
	e.POST("/cart/clear", p.CartHandler.Clear)

	// Toast queue polled by the browser
	e.GET("/toasts", p.ToastHandler.Active)
	e.POST("/toasts/:id/hide", p.ToastHandler.Hide)

	// Routes that require a signed-in identity
	authed := e.Group("", p.AuthMiddleware.RequireAuth)
	{
		authed.GET("/profile", p.AuthHandler.Profile)
		authed.GET("/checkout", p.OrderHandler.CheckoutForm)
		authed.POST("/checkout", p.OrderHandler.Checkout)
		authed.GET("/orders", p.OrderHandler.Orders)
		authed.GET("/orders/:id", p.OrderHandler.OrderDetail)
		authed.POST("/products/:id/comments", p.ShopHandler.AddComment)
		authed.GET("/notifications", p.NotificationHandler.Page)
		authed.GET("/notifications/poll", p.NotificationHandler.Poll)
		authed.POST("/notifications/refresh", p.NotificationHandler.Refresh)
		authed.POST("/notifications/:id/read", p.NotificationHandler.MarkRead)
		authed.POST("/notifications/read-all", p.NotificationHandler.MarkAllRead)
	}

	// Back office: signed-in and admin role
	admin := e.Group("/admin", p.AuthMiddleware.RequireAuth, p.AuthMiddleware.RequireAdmin)
	{
		admin.GET("", p.AdminHandler.Dashboard)
		admin.GET("/products", p.AdminHandler.Products)
		admin.GET("/products/new", p.AdminHandler.NewProductForm)
		admin.POST("/products", p.AdminHandler.CreateProduct)
		admin.GET("/products/:id/edit", p.AdminHandler.EditProductForm)
		admin.POST("/products/:id", p.AdminHandler.UpdateProduct)
		admin.POST("/products/:id/delete", p.AdminHandler.DeleteProduct)
		admin.GET("/categories", p.AdminHandler.Categories)
		admin.POST("/categories", p.AdminHandler.CreateCategory)
		admin.POST("/categories/:id", p.AdminHandler.UpdateCategory)
		admin.POST("/categories/:id/delete", p.AdminHandler.DeleteCategory)
		admin.GET("/orders", p.AdminHandler.Orders)
		admin.POST("/orders/:id/status", p.AdminHandler.UpdateOrderStatus)
		admin.GET("/accounts", p.AdminHandler.Accounts)
		admin.POST("/accounts/:id/lock", p.AdminHandler.SetAccountLocked)
		admin.GET("/feedbacks", p.AdminHandler.Feedbacks)
		admin.POST("/feedbacks/:id/reply", p.AdminHandler.ReplyFeedback)
		admin.GET("/comments", p.AdminHandler.Comments)
		admin.POST("/comments/:id/delete", p.AdminHandler.DeleteComment)
	}
}
