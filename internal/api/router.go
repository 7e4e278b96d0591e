package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/mmp/property-portal/internal/api/handler"
	"github.com/mmp/property-portal/internal/api/middleware"
	"github.com/mmp/property-portal/internal/core/ports"
)

const jsonBodyLimit = "1M"

// Handlers groups every HTTP handler mounted under /api.
type Handlers struct {
	Auth       *handler.AuthHandler
	Users      *handler.UserHandler
	Properties *handler.PropertyHandler
	Budgets    *handler.BudgetHandler
	Contacts   *handler.ContactHandler
	Events     *handler.EventHandler
	Orders     *handler.OrderHandler
	Settings   *handler.SettingsHandler
	Social     *handler.SocialFeedHandler
	Files      *handler.FileHandler
}

// RegisterRoutes mounts the API on e. Every route except login and logout
// requires a verified session token.
func RegisterRoutes(e *echo.Echo, h Handlers, verifier ports.TokenVerifier, cookieName string) {
	api := e.Group("/api", middleware.ClientIP())

	// The upload route enforces its own, larger cap.
	api.Use(echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
		Limit: jsonBodyLimit,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/api/files"
		},
	}))

	// --- Auth routes ---
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/logout", h.Auth.Logout)

	authed := api.Group("", middleware.Auth(verifier, cookieName))
	authed.GET("/me", h.Auth.Me)

	// --- User administration ---
	users := authed.Group("/users", middleware.RequireAdmin())
	users.GET("", h.Users.List)
	users.POST("", h.Users.Create)
	users.PUT("/:username", h.Users.Update)
	users.DELETE("/:username", h.Users.Delete)

	// --- Property-scoped resources ---
	authed.GET("/properties", h.Properties.List)
	authed.POST("/properties", h.Properties.Create)

	authed.GET("/budgets", h.Budgets.Get)
	authed.PUT("/budgets", h.Budgets.Put)

	authed.GET("/contacts", h.Contacts.List)
	authed.POST("/contacts", h.Contacts.Create)
	authed.PUT("/contacts/:id", h.Contacts.Update)
	authed.DELETE("/contacts/:id", h.Contacts.Delete)

	authed.GET("/events", h.Events.List)
	authed.POST("/events", h.Events.Create)
	authed.PUT("/events/:id", h.Events.Update)
	authed.DELETE("/events/:id", h.Events.Delete)

	authed.GET("/orders", h.Orders.List)
	authed.POST("/orders", h.Orders.Create)
	authed.PUT("/orders/:id", h.Orders.Update)
	authed.DELETE("/orders/:id", h.Orders.Delete)

	authed.GET("/campaigns", h.Settings.GetCampaigns)
	authed.PUT("/campaigns", h.Settings.PutCampaigns)
	authed.GET("/targets", h.Settings.GetTargets)
	authed.PUT("/targets", h.Settings.PutTargets)

	authed.GET("/social-feed", h.Social.List)
	authed.POST("/social-feed", h.Social.Create)
	authed.DELETE("/social-feed/:id", h.Social.Delete)

	authed.POST("/files", h.Files.Upload)
	authed.GET("/files/:id", h.Files.Download)
}
