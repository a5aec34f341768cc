// internal/router/router.go
package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/atelier-backend/internal/config"
	"github.com/javajoker/atelier-backend/internal/handlers"
	"github.com/javajoker/atelier-backend/internal/middleware"
	"github.com/javajoker/atelier-backend/internal/services"
	"github.com/javajoker/atelier-backend/internal/store"
	"github.com/javajoker/atelier-backend/internal/utils"
)

// Router is the HTTP engine plus the limiters it owns.
type Router struct {
	*gin.Engine
	limiters []*middleware.RateLimiter
}

// Close stops the rate limiters' cleanup goroutines.
func (r *Router) Close() {
	for _, limiter := range r.limiters {
		limiter.Stop()
	}
}

func Initialize(docs *store.DocumentStore, cfg *config.Config) (*Router, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	productService := services.NewProductService(docs)
	messageService := services.NewMessageService(docs)
	messageService.SetNotifier(services.NewNotificationService(cfg))
	contentService := services.NewContentService(docs)
	authService := services.NewAuthService(docs, cfg)
	adminService := services.NewAdminService(productService, messageService)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	messageHandler := handlers.NewMessageHandler(messageService)
	contentHandler := handlers.NewContentHandler(contentService)
	authHandler := handlers.NewAuthHandler(authService)
	uploadHandler := handlers.NewUploadHandler(storageService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Set session secret
	utils.SetJWTSecret(cfg.Session.Secret)

	messageLimiter := middleware.PerMinute(cfg.RateLimit.MessagesPerMinute, cfg.RateLimit.MessagesBurst)
	loginLimiter := middleware.PerMinute(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.AuditLogMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/auth", loginLimiter.Middleware(), authHandler.Login)
		api.GET("/categories", contentHandler.GetCategories)

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)

			protected := products.Group("")
			protected.Use(middleware.AdminRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.PUT("", productHandler.UpdateProduct)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.DELETE("", productHandler.DeleteProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		// Home content
		api.GET("/home", contentHandler.GetHome)
		api.PUT("/home", middleware.AdminRequired(), contentHandler.ReplaceHome)

		// Contact info and the public contact form
		api.GET("/contact", contentHandler.GetContact)
		api.PUT("/contact", middleware.AdminRequired(), contentHandler.ReplaceContact)
		api.POST("/contact", messageLimiter.Middleware(), messageHandler.SubmitMessage)

		// Messages
		messages := api.Group("/messages")
		{
			messages.POST("", messageLimiter.Middleware(), messageHandler.SubmitMessage)

			protected := messages.Group("")
			protected.Use(middleware.AdminRequired())
			{
				protected.GET("", messageHandler.GetMessages)
				protected.DELETE("", messageHandler.DeleteMessage)
				protected.DELETE("/:id", messageHandler.DeleteMessage)
			}
		}

		api.POST("/upload", middleware.AdminRequired(), uploadHandler.Upload)

		// Admin dashboard
		admin := api.Group("/admin")
		admin.Use(middleware.AdminRequired())
		{
			admin.GET("/stats", adminHandler.GetDashboardStats)
		}
	}

	// Serve locally stored uploads
	prefix := strings.Trim(cfg.Storage.UploadsURLPrefix, "/")
	if cfg.Storage.ServeUploads && !cfg.UsesS3() && prefix != "" {
		r.Static("/"+prefix, cfg.Storage.UploadsDir)
	}

	return &Router{
		Engine:   r,
		limiters: []*middleware.RateLimiter{messageLimiter, loginLimiter},
	}, nil
}
