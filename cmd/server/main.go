// Package main runs the webinar registration HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aayakar/webinar-backend/config"
	"github.com/aayakar/webinar-backend/internal/admins"
	"github.com/aayakar/webinar-backend/internal/emails"
	"github.com/aayakar/webinar-backend/internal/mailer"
	"github.com/aayakar/webinar-backend/internal/middleware"
	"github.com/aayakar/webinar-backend/internal/registrants"
	"github.com/aayakar/webinar-backend/internal/stats"
	"github.com/aayakar/webinar-backend/pkg/database"
	"github.com/aayakar/webinar-backend/pkg/queue"
	"github.com/aayakar/webinar-backend/pkg/redis"
	"github.com/aayakar/webinar-backend/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), database.PoolSettings{
		MaxConns:        int32(cfg.Database.MaxConns),
		MinConns:        int32(cfg.Database.MinConns),
		MaxConnLifetime: time.Duration(cfg.Database.ConnLifetimeMin) * time.Minute,
	}, logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	rdb, err := redis.NewClient(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		logger.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()
	jobQueue := queue.NewQueue(rdb.Client, logger)

	// Admins
	jwtService := admins.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpireHours)
	adminRepo := admins.NewRepository(pool)
	adminHandler := admins.NewHandler(adminRepo, jwtService, logger)

	// Registrants
	emailLogsRepo := emails.NewRepository(pool)
	emailsHandler := emails.NewHandler(emailLogsRepo)
	sendgridMailer := mailer.NewSendGrid(cfg.Email, logger)
	registrantRepo := registrants.NewRepository(pool)
	registrantHandler := registrants.NewHandler(registrantRepo, emailLogsRepo, sendgridMailer, jobQueue, logger)

	// Statistics
	statsRepo := stats.NewRepository(pool)
	statsHandler := stats.NewHandler(statsRepo, logger)

	jwtValidate := func(token string) (uuid.UUID, error) {
		claims, err := jwtService.Validate(token)
		if err != nil {
			return uuid.Nil, err
		}
		return claims.AdminID, nil
	}
	authRequired := middleware.Auth(jwtValidate, adminRepo)
	publicLimit := middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "Webinar API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Webinar Backend API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"users":  "/api/v1/users",
				"admin":  "/api/v1/admin",
				"health": "/health",
			},
		})
	})
	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})

	api := router.Group("/api/v1")

	// Public
	api.POST("/users/register", publicLimit, registrantHandler.Register)
	api.POST("/admin/login", adminHandler.Login)
	api.POST("/admin/create", publicLimit, adminHandler.Create) // initial setup, unauthenticated

	// Admin protected
	users := api.Group("/users")
	users.Use(authRequired)
	{
		users.GET("", registrantHandler.List)
		users.GET("/stats", statsHandler.Get)
		users.GET("/:id", registrantHandler.GetByID)
		users.PUT("/:id/status", registrantHandler.UpdateStatus)
		users.DELETE("/:id", registrantHandler.Delete)
		users.DELETE("", registrantHandler.DeleteMany)
		users.POST("/:id/resend-confirmation", registrantHandler.ResendConfirmation)
		users.POST("/reminders", registrantHandler.QueueReminders)
	}

	admin := api.Group("/admin")
	admin.Use(authRequired)
	{
		admin.GET("/profile", adminHandler.GetProfile)
		admin.PUT("/profile", adminHandler.UpdateProfile)
		admin.PUT("/password", adminHandler.ChangePassword)
		admin.GET("/emails", emailsHandler.List)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
