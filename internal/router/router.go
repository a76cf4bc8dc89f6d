package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/handler"
	"github.com/studytrack/studytrack-backend/internal/middleware"
	"github.com/studytrack/studytrack-backend/internal/response"
	"github.com/studytrack/studytrack-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Student      *handler.StudentHandler
	LearningPath *handler.LearningPathHandler
	Dashboard    *handler.DashboardHandler
	Media        *handler.MediaHandler
	Audit        *handler.AuditHandler
	Activity     *handler.ActivityHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Serve uploaded photos statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for credential endpoints (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)
		auth.POST("/register", authLimiter.Middleware(), handlers.Auth.Register)

		// Authenticated profile routes
		auth.POST("/logout",
			middleware.RequireJWT(authService),
			middleware.CheckActiveSession(authService),
			handlers.Auth.Logout,
		)
		auth.GET("/me",
			middleware.RequireJWT(authService),
			middleware.CheckActiveSession(authService),
			handlers.Auth.Me,
		)
	}

	// ─── 2. Authenticated Group (JWT + Active Session) ─────────────────
	api := router.Group("/api/v1")
	api.Use(
		middleware.RequireJWT(authService),
		middleware.CheckActiveSession(authService),
	)
	{
		api.GET("/students", handlers.Student.List)
		api.GET("/students/:student_id", handlers.Student.Get)
		api.GET("/students/:student_id/learning-paths", handlers.LearningPath.ListByStudent)
	}

	// ─── 3. Admin Group (JWT + Admin + Active Session) ─────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(
		middleware.RequireAdmin(authService),
		middleware.CheckActiveSession(authService),
	)
	{
		adminAPI.GET("/dashboard", handlers.Dashboard.Overview)

		// Photo upload
		adminAPI.POST("/media/upload", handlers.Media.Upload)

		// Student management
		adminAPI.POST("/students", handlers.Student.Create)
		adminAPI.PUT("/students/:student_id", handlers.Student.Update)
		adminAPI.DELETE("/students/:student_id", handlers.Student.Delete)
		adminAPI.POST("/students/import", handlers.Student.ImportRoster)
		adminAPI.GET("/students/export", handlers.Student.ExportRoster)

		// Learning paths
		adminAPI.POST("/students/:student_id/learning-paths", handlers.LearningPath.Create)
		adminAPI.PUT("/learning-paths/:path_id", handlers.LearningPath.Update)
		adminAPI.POST("/learning-paths/:path_id/complete", handlers.LearningPath.Complete)
		adminAPI.DELETE("/learning-paths/:path_id", handlers.LearningPath.Delete)

		// Account management
		adminAPI.GET("/users", handlers.User.List)
		adminAPI.POST("/users", handlers.User.Create)
		adminAPI.PUT("/users/:user_id", handlers.User.Update)
		adminAPI.POST("/users/:user_id/lock", handlers.User.ToggleLock)
		adminAPI.DELETE("/users/:user_id", handlers.User.Delete)

		// Audit trail
		adminAPI.GET("/audit", handlers.Audit.List)
	}

	// ─── 4. WebSocket Group (Admin WS Auth) ────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireWSAuth(authService))
	{
		ws.GET("/admin/activity", handlers.Activity.Stream)
	}

	return router
}
