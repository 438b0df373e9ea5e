package routes

import (
	"net/http"

	"github.com/ArowuTest/engage-crm/internal/config"
	"github.com/ArowuTest/engage-crm/internal/handlers"
	"github.com/ArowuTest/engage-crm/internal/middleware"
	"github.com/ArowuTest/engage-crm/internal/services"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies holds the services the router wires into handlers
type HandlerDependencies struct {
	AuthService      services.AuthService
	CustomerService  services.CustomerService
	SegmentService   services.SegmentService
	CampaignService  services.CampaignService
	DashboardService services.DashboardService
	LoginLimiter     *middleware.IPRateLimiter
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Create handlers
	authHandler := handlers.NewAuthHandler(deps.AuthService)
	customerHandler := handlers.NewCustomerHandler(deps.CustomerService)
	orderHandler := handlers.NewOrderHandler(deps.CustomerService)
	segmentHandler := handlers.NewSegmentHandler(deps.SegmentService)
	campaignHandler := handlers.NewCampaignHandler(deps.CampaignService)
	dashboardHandler := handlers.NewDashboardHandler(deps.DashboardService)

	loginLimiter := deps.LoginLimiter
	if loginLimiter == nil {
		loginLimiter = middleware.NewIPRateLimiter(cfg.RateLimit.Login.RPS, cfg.RateLimit.Login.Burst)
	}

	// Public routes
	public := router.Group("/api/v1")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		// Auth routes
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", loginLimiter.Middleware(), authHandler.Login)
		}
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(deps.AuthService))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.POST("/auth/logout", authHandler.Logout)

		// Customer routes
		customers := protected.Group("/customers")
		{
			customers.GET("", customerHandler.ListCustomers)
			customers.POST("", customerHandler.CreateCustomer)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.DELETE("/:id", customerHandler.DeleteCustomer)
			customers.GET("/:id/orders", customerHandler.ListCustomerOrders)
			customers.POST("/:id/visits", customerHandler.RecordVisit)
		}

		// Order routes
		orders := protected.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.POST("", orderHandler.CreateOrder)
		}

		// Segment routes
		segments := protected.Group("/segments")
		{
			segments.GET("", segmentHandler.ListSegments)
			segments.POST("", segmentHandler.CreateSegment)
			segments.POST("/preview", segmentHandler.PreviewSegment)
			segments.GET("/fields", segmentHandler.RuleOptions)
			segments.GET("/:id", segmentHandler.GetSegment)
			segments.GET("/:id/customers", segmentHandler.SegmentCustomers)
		}

		// Campaign routes
		campaigns := protected.Group("/campaigns")
		{
			campaigns.GET("", campaignHandler.ListCampaigns)
			campaigns.POST("", campaignHandler.DispatchCampaign)
			campaigns.GET("/:id", campaignHandler.GetCampaign)
			campaigns.GET("/:id/logs", campaignHandler.CampaignLogs)
		}

		protected.GET("/dashboard/stats", dashboardHandler.Stats)
	}

	return router
}
