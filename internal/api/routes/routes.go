package routes

import (
	"time"

	"biolinker-backend/internal/api/handlers"
	"biolinker-backend/internal/api/middleware"
	"biolinker-backend/internal/auth"
	"biolinker-backend/internal/cache"
	"biolinker-backend/internal/config"
	"biolinker-backend/internal/database/models"
	apperrors "biolinker-backend/internal/errors"
	"biolinker-backend/internal/repository"
	"biolinker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	linkRepo := repository.NewLinkRepository(db)

	// Optional public page cache
	var pageCache service.PublicPageCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		pageCache = cache.NewPublicPageCache(client, time.Duration(cfg.PublicPageCacheTTLSec)*time.Second)
		logrus.WithField("addr", cfg.RedisAddr).Info("public page cache enabled")
	}

	// Initialize services
	profileService := service.NewProfileService(profileRepo, linkRepo, pageCache, validator)
	linkService := service.NewLinkService(linkRepo, profileRepo, pageCache, validator)
	authService := auth.NewService(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	profileHandler := handlers.NewProfileHandler(profileService)
	linkHandler := handlers.NewLinkHandler(linkService, profileService)
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(authService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Auth routes
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Public page, no auth
		api.GET("/public/profiles/:username", profileHandler.GetPublicProfile)

		// Authenticated dashboard routes
		profiles := api.Group("/profiles", authMiddleware.RequireAuth())
		{
			profiles.GET("/me", profileHandler.GetMyProfile)
			profiles.POST("", profileHandler.CreateProfile)
			profiles.PATCH("/me", profileHandler.UpdateProfile)
		}

		links := api.Group("/links", authMiddleware.RequireAuth())
		{
			links.GET("", linkHandler.ListLinks)
			links.POST("", linkHandler.CreateLink)
			links.PATCH("/:id", linkHandler.UpdateLink)
			links.DELETE("/:id", linkHandler.DeleteLink)
			links.POST("/reorder", linkHandler.ReorderLinks)
		}
	}

	if cfg.SeedDemoData {
		seedDemoProfile(authService, profileRepo, linkRepo)
	}

	return router
}

// seedDemoProfile creates the /demo public page on first boot so a fresh
// install has something to show. Errors are logged, never fatal.
func seedDemoProfile(authService *auth.Service, profileRepo repository.ProfileRepositoryInterface, linkRepo repository.LinkRepositoryInterface) {
	if _, err := profileRepo.GetByUsername("demo"); err == nil {
		return
	} else if !apperrors.IsNotFound(err) {
		logrus.WithError(err).Warn("demo seed: lookup failed")
		return
	}

	user, _, err := authService.Register("demo@example.com", "demo-password-1")
	if err != nil {
		logrus.WithError(err).Warn("demo seed: user creation failed")
		return
	}

	profile := &models.Profile{
		UserID:          user.ID,
		Username:        "demo",
		DisplayName:     "Demo User",
		ShowUsername:    true,
		Bio:             "Welcome to Bio Linker! This is a demo profile.",
		Theme:           models.ThemeCustom,
		BackgroundColor: "linear-gradient(to right, #6366f1, #a855f7, #ec4899)",
		TextColor:       "#ffffff",
		ButtonColor:     "rgba(255, 255, 255, 0.2)",
		ButtonTextColor: "#ffffff",
		Font:            "Inter",
	}
	if err := profileRepo.Create(profile); err != nil {
		logrus.WithError(err).Warn("demo seed: profile creation failed")
		return
	}

	demoLinks := []models.Link{
		{ProfileID: profile.ID, Title: "My Portfolio", URL: "https://example.com", Icon: "Globe", IsVisible: true},
		{ProfileID: profile.ID, Title: "Twitter", URL: "https://twitter.com", Icon: "Twitter", IsVisible: true},
		{ProfileID: profile.ID, Title: "Instagram", URL: "https://instagram.com", Icon: "Instagram", IsVisible: true},
	}
	for i := range demoLinks {
		if err := linkRepo.Create(&demoLinks[i]); err != nil {
			logrus.WithError(err).Warn("demo seed: link creation failed")
			return
		}
	}

	logrus.Info("seeded demo profile: /demo")
}
