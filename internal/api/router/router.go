package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"patrol-watch/backend/config"
	"patrol-watch/backend/internal/api/handler"
	"patrol-watch/backend/internal/api/middleware"
	"patrol-watch/backend/internal/model"
	"patrol-watch/backend/internal/repository"
	"patrol-watch/backend/pkg/jwt"
	"patrol-watch/backend/pkg/redis"
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	repo *repository.Repository,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── Health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API ──
	api := r.Group("/api")
	{
		// Auth (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		// Everything else requires a valid token that still resolves to a
		// stored user.
		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb, repo.User))
		{
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.POST("/auth/logout", h.Auth.Logout)

			// Checkpoint catalog
			points := authorized.Group("/patrol-points")
			{
				points.GET("", h.PatrolPoint.ListPatrolPoints)
				points.POST("", middleware.RoleAuth(model.RoleAdmin), h.PatrolPoint.CreatePatrolPoint)
				points.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.PatrolPoint.DeletePatrolPoint)
			}

			// Route catalog
			routes := authorized.Group("/routes")
			{
				routes.GET("", h.Route.ListRoutes)
				routes.POST("", middleware.RoleAuth(model.RoleAdmin), h.Route.CreateRoute)
				routes.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Route.DeleteRoute)
			}

			// Route assignments
			assignments := authorized.Group("/route-assignments")
			{
				assignments.GET("", h.Assignment.ListAssignments)
				assignments.POST("", middleware.RoleAuth(model.RoleAdmin), h.Assignment.CreateAssignment)
				assignments.GET("/today", middleware.RoleAuth(model.RoleOfficer), h.Assignment.GetTodayAssignment)
			}

			// Attendance: officers write, admins read the enriched report
			attendance := authorized.Group("/attendance")
			{
				attendance.POST("", middleware.RoleAuth(model.RoleOfficer), h.Attendance.CheckIn)
				attendance.GET("", middleware.RoleAuth(model.RoleAdmin), h.Report.ListAttendance)
				attendance.GET("/export", middleware.RoleAuth(model.RoleAdmin), h.Report.ExportAttendance)
			}

			// Users
			users := authorized.Group("/users")
			{
				users.GET("/officers", middleware.RoleAuth(model.RoleAdmin), h.User.ListOfficers)
			}
		}
	}

	return r
}
