package handler

import (
	"github.com/alexedwards/scs/v2"
	"github.com/eventforge/backend/internal/auth"
	"github.com/eventforge/backend/internal/config"
	"github.com/eventforge/backend/internal/middleware"
	"github.com/eventforge/backend/internal/repository"
	"github.com/eventforge/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Dependencies is everything the HTTP layer needs.
type Dependencies struct {
	Config   *config.Config
	Store    repository.Store
	Strategy auth.Strategy
	// Sessions is nil unless cookie sessions are enabled.
	Sessions *scs.SessionManager
	// Redis is optional; it is only used for the health check.
	Redis *redis.Client
}

// NewRouter builds the gin engine with all middleware and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	setupValidator()

	respond := &Responder{ExposeDetail: !cfg.IsProduction()}
	authService := service.NewAuthService(deps.Store.Users(), cfg.JWTSecret, cfg.JWTExpiry)

	authHandler := NewAuthHandler(authService, deps.Sessions, respond)
	adminHandler := NewAdminHandler(authService, respond)
	portfolioHandler := NewPortfolioHandler(deps.Store.Portfolio(), respond)
	testimonialHandler := NewTestimonialHandler(deps.Store.Testimonials(), respond)
	contactHandler := NewContactHandler(deps.Store.Contacts(), respond)
	healthHandler := NewHealthHandler(deps.Store, deps.Redis)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.SecurityHeaders(cfg.IsProduction()),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.QueryTimeout(cfg.DBQueryTimeout),
	)

	// Only routes that read or write the session load it, so health and
	// public reads keep answering while the session store is down.
	loadSession := func(c *gin.Context) { c.Next() }
	if deps.Sessions != nil {
		loadSession = middleware.LoadSession(deps.Sessions)
	}
	requireAuth := middleware.RequireAuth(deps.Strategy)

	router.GET("/metrics", middleware.MetricsHandler())

	api := router.Group("/api")
	api.GET("/health", healthHandler.Health)

	// Public routes
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", loadSession, authHandler.Login)
		authRoutes.POST("/register", loadSession, authHandler.Register)
		authRoutes.POST("/logout", loadSession, authHandler.Logout)
		authRoutes.GET("/verify", loadSession, requireAuth, authHandler.Verify)
	}

	portfolio := api.Group("/portfolio")
	{
		portfolio.GET("", portfolioHandler.List)
		portfolio.GET("/:id", portfolioHandler.Get)
		portfolio.POST("", loadSession, requireAuth, portfolioHandler.Create)
		portfolio.PUT("/:id", loadSession, requireAuth, portfolioHandler.Update)
		portfolio.DELETE("/:id", loadSession, requireAuth, portfolioHandler.Delete)
	}

	testimonials := api.Group("/testimonials")
	{
		testimonials.GET("", testimonialHandler.List)
		testimonials.GET("/:id", testimonialHandler.Get)
		testimonials.POST("", loadSession, requireAuth, testimonialHandler.Create)
		testimonials.PUT("/:id", loadSession, requireAuth, testimonialHandler.Update)
		testimonials.DELETE("/:id", loadSession, requireAuth, testimonialHandler.Delete)
	}

	contact := api.Group("/contact")
	{
		contact.POST("", contactHandler.Create)
		contact.GET("", loadSession, requireAuth, contactHandler.List)
		contact.GET("/:id", loadSession, requireAuth, contactHandler.Get)
		contact.PATCH("/:id/read", loadSession, requireAuth, contactHandler.MarkRead)
		contact.DELETE("/:id", loadSession, requireAuth, contactHandler.Delete)
	}

	// Protected routes (require authentication)
	admin := api.Group("/admin", loadSession, requireAuth)
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.POST("/users", adminHandler.CreateUser)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
	}

	return router
}
