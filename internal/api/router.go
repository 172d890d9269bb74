package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tanglome/content-api/internal/api/handler"
	"github.com/tanglome/content-api/internal/api/middleware"
	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/service"
	"github.com/tanglome/content-api/internal/infrastructure/config"
	mongodb "github.com/tanglome/content-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tanglome/content-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with every route registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("content_api"))

	limiter := redisdb.NewFixedWindowLimiter(rdb, cfg.RateLimitWindow, cfg.RateLimitMax)
	e.Use(middleware.RateLimit(limiter, log))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)
	caseStudyRepo := mongodb.NewCaseStudyRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.ResetTokenTTL, cfg.AuthorEmails, log)
	blogService := service.NewBlogService(blogRepo, log)
	caseStudyService := service.NewCaseStudyService(caseStudyRepo, log)
	userService := service.NewUserService(userRepo, blogRepo, caseStudyRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Development(), log)
	blogHandler := handler.NewBlogHandler(blogService)
	caseStudyHandler := handler.NewCaseStudyHandler(caseStudyService)
	userHandler := handler.NewUserHandler(authService, userService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	requireAuth := middleware.Auth(authService)
	requireAdmin := middleware.RequireRoles(domain.RoleAdmin)

	// --- Ops endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	apiGroup := e.Group("/api")

	// --- Auth routes ---
	auth := apiGroup.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, requireAuth)
	auth.PUT("/profile", authHandler.UpdateProfile, requireAuth)
	auth.PUT("/password", authHandler.ChangePassword, requireAuth)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	// --- Blog routes ---
	blogs := apiGroup.Group("/blogs")
	blogs.GET("", blogHandler.List)
	blogs.GET("/:slug", blogHandler.GetBySlug)
	blogs.POST("", blogHandler.Create, requireAuth)
	blogs.PUT("/:id", blogHandler.Update, requireAuth)
	blogs.DELETE("/:id", blogHandler.Delete, requireAuth)
	blogs.POST("/:id/like", blogHandler.Like)
	blogs.POST("/:id/bookmark", blogHandler.Bookmark)
	blogs.POST("/:id/share", blogHandler.Share)

	// --- Case study routes ---
	caseStudies := apiGroup.Group("/case-studies")
	caseStudies.GET("", caseStudyHandler.List)
	caseStudies.GET("/:slug", caseStudyHandler.GetBySlug)
	caseStudies.POST("", caseStudyHandler.Create, requireAuth)
	caseStudies.PUT("/:id", caseStudyHandler.Update, requireAuth)
	caseStudies.DELETE("/:id", caseStudyHandler.Delete, requireAuth)
	caseStudies.POST("/:id/like", caseStudyHandler.Like)
	caseStudies.POST("/:id/bookmark", caseStudyHandler.Bookmark)
	caseStudies.POST("/:id/share", caseStudyHandler.Share)
	caseStudies.POST("/:id/download", caseStudyHandler.Download)

	// --- User routes ---
	users := apiGroup.Group("/users", requireAuth)
	users.GET("/profile", userHandler.Profile)
	users.PUT("/profile", userHandler.UpdateProfile)
	users.PUT("/avatar", userHandler.UpdateAvatar)
	users.GET("/stats", userHandler.Stats)
	users.GET("/content", userHandler.Content)
	users.GET("/bookmarks", userHandler.Bookmarks)
	users.GET("/reading-history", userHandler.ReadingHistory)
	users.DELETE("/account", userHandler.DeleteAccount)

	admin := users.Group("/admin", requireAdmin)
	admin.GET("/all", userHandler.ListUsers)
	admin.PUT("/:id/role", userHandler.UpdateRole)
	admin.DELETE("/:id", userHandler.DeleteUser)

	return e
}
