package http

import (
	"context"
	"fmt"
	"net/http"

	handlers "github.com/Prashgeek/attendance-tracking-system/internal/adapter/handler/http"
	"github.com/Prashgeek/attendance-tracking-system/internal/auth"
	"github.com/Prashgeek/attendance-tracking-system/internal/config"
	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
	"github.com/Prashgeek/attendance-tracking-system/internal/infrastructure/database"
	authmw "github.com/Prashgeek/attendance-tracking-system/internal/middleware/auth"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Server struct {
	config    *config.Config
	logger    *zap.Logger
	echo      *echo.Echo
	repos     *database.Repositories
	publisher usecase.AuditPublisher
}

// NewServer wires middleware and routes. publisher may be nil when Redis
// is not configured.
func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories, publisher usecase.AuditPublisher) *Server {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.Service.ClientURL},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
		AllowCredentials: true,
	}))
	if cfg.Server.HTTP.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
				Rate:  rate.Limit(cfg.Server.HTTP.RateLimit),
				Burst: cfg.Server.HTTP.RateBurst,
			}),
		}))
	}

	return &Server{
		config:    cfg,
		logger:    logger,
		echo:      e,
		repos:     repos,
		publisher: publisher,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	authCfg := s.config.Auth.WithDefaults()
	tokens := auth.NewTokenManager(authCfg.JWTSecret, authCfg.TokenTTL)

	// Use cases
	auditUC := usecase.NewAuditUseCase(s.logger, s.repos.AuditLog, s.publisher)
	authUC := usecase.NewAuthUseCase(s.logger, s.repos.User, tokens, auditUC, authCfg)
	userUC := usecase.NewUserUseCase(s.logger, s.repos.User, auditUC)
	attendanceUC := usecase.NewAttendanceUseCase(s.logger, s.repos.Attendance, s.repos.User)

	// Handlers
	authHandler := handlers.NewAuthHandler(s.logger, authUC, authCfg, s.config.Service.IsProduction())
	userHandler := handlers.NewUserHandler(s.logger, userUC)
	attendanceHandler := handlers.NewAttendanceHandler(s.logger, attendanceUC)

	session := authmw.SessionMiddleware(authmw.SessionConfig{
		CookieName: authCfg.CookieName,
		Tokens:     tokens,
		Logger:     s.logger,
	})
	gate := authmw.RoleGateConfig{Logger: s.logger, Audit: auditUC}

	api := s.echo.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.POST("/forgot-password", authHandler.ForgotPassword)
	authGroup.POST("/reset-password", authHandler.ResetPassword)
	authGroup.GET("/me", authHandler.Me, session)

	// User management, admin only
	users := api.Group("/users", session, authmw.RequireRoles(gate, model.RoleAdmin))
	users.GET("", userHandler.List)
	users.GET("/stats", userHandler.Stats)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)
	users.POST("/reset-password", userHandler.ResetPassword)

	// Attendance
	attendance := api.Group("/attendance", session)
	attendance.POST("/checkin", attendanceHandler.CheckIn, authmw.RequireRoles(gate, model.RoleStudent, model.RoleTeacher))
	attendance.POST("/mark", attendanceHandler.Mark, authmw.RequireRoles(gate, model.RoleAdmin, model.RoleTeacher))
	attendance.POST("/mark-bulk", attendanceHandler.MarkBulk, authmw.RequireRoles(gate, model.RoleAdmin, model.RoleTeacher))
	attendance.GET("", attendanceHandler.List, authmw.RequireRoles(gate, model.RoleAdmin, model.RoleTeacher))
	attendance.GET("/summary", attendanceHandler.Summary, authmw.RequireRoles(gate, model.RoleAdmin, model.RoleTeacher))
	attendance.GET("/user/:id", attendanceHandler.UserRecords)
	attendance.GET("/user/:id/stats", attendanceHandler.UserStats)
	attendance.DELETE("/:id", attendanceHandler.Delete, authmw.RequireRoles(gate, model.RoleAdmin))
}
