package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"news-publisher/internal/auth"
	"news-publisher/internal/config"
	"news-publisher/internal/handler"
	"news-publisher/internal/infrastructure/database"
	"news-publisher/internal/logger"
	"news-publisher/internal/metrics"
	"news-publisher/internal/middleware"
	"news-publisher/internal/notify"
	"news-publisher/internal/repository"
	"news-publisher/internal/service"
	"news-publisher/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	articleRepo := repository.NewPostgresArticleRepository(pool)
	eventRepo := repository.NewPostgresReviewEventRepository(pool)
	profileRepo := repository.NewPostgresProfileRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)
	likeRepo := repository.NewPostgresLikeRepository(pool)
	stepUpRepo := repository.NewPostgresStepUpRepository(pool)

	// Initialize shared components
	v := validator.NewValidator()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL)

	var codeSender service.CodeSender
	if cfg.SMTPAddr != "" {
		codeSender = notify.NewSMTPSender(cfg.SMTPAddr, cfg.SMTPFrom)
	} else {
		logger.Warn("SMTP_ADDR not set, step-up codes will be logged")
		codeSender = notify.NewLogSender()
	}

	// Initialize services
	workflowService := service.NewWorkflowService(articleRepo, v, cfg.AutoPublishOnApprove)
	articleService := service.NewArticleService(articleRepo, eventRepo, v)
	authService := service.NewAuthService(profileRepo, tokens, v)
	profileService := service.NewProfileService(profileRepo)
	engagementService := service.NewEngagementService(articleRepo, commentRepo, likeRepo, v)
	stepUpService := service.NewStepUpService(stepUpRepo, codeSender, service.StepUpConfig{
		Window:   cfg.StepUpWindow,
		Attempts: cfg.StepUpAttempts,
		Lockout:  cfg.StepUpLockout,
		CodeTTL:  cfg.StepUpCodeTTL,
	}, nil)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	articleHandler := handler.NewArticleHandler(articleService)
	workflowHandler := handler.NewWorkflowHandler(workflowService)
	profileHandler := handler.NewProfileHandler(profileService)
	engagementHandler := handler.NewEngagementHandler(engagementService)
	stepUpHandler := handler.NewStepUpHandler(stepUpService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authRequired := middleware.Auth(tokens, profileRepo)
	authOptional := middleware.OptionalAuth(tokens, profileRepo)
	stepUpGate := middleware.StepUp(stepUpService)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)

			stepUp := authGroup.Group("/step-up", authRequired)
			{
				stepUp.GET("", stepUpHandler.Status)
				stepUp.POST("/challenge", stepUpHandler.Challenge)
				stepUp.POST("/verify", stepUpHandler.Verify)
			}
		}

		articles := v1.Group("/articles")
		{
			// Public reads; a token personalizes visibility.
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/:id", authOptional, articleHandler.GetArticle)
			articles.GET("/:id/comments", engagementHandler.ListComments)
			articles.GET("/:id/likes", authOptional, engagementHandler.LikeSummary)

			// Authoring
			articles.POST("", authRequired, articleHandler.CreateArticle)
			articles.GET("/mine", authRequired, articleHandler.ListMyArticles)
			articles.PUT("/:id", authRequired, articleHandler.UpdateArticle)
			articles.DELETE("/:id", authRequired, articleHandler.DeleteArticle)
			articles.GET("/:id/events", authRequired, articleHandler.ListArticleEvents)
			articles.POST("/:id/submit", authRequired, workflowHandler.SubmitArticle)
			articles.POST("/:id/resubmit", authRequired, workflowHandler.ResubmitArticle)

			// Engagement
			articles.POST("/:id/comments", authRequired, engagementHandler.AddComment)
			articles.POST("/:id/like", authRequired, engagementHandler.Like)
			articles.DELETE("/:id/like", authRequired, engagementHandler.Unlike)

			// Review operations sit behind the step-up gate.
			articles.GET("/pending", authRequired, articleHandler.ListPendingArticles)
			articles.POST("/:id/approve", authRequired, stepUpGate, workflowHandler.ApproveArticle)
			articles.POST("/:id/reject", authRequired, stepUpGate, workflowHandler.RejectArticle)
			articles.POST("/:id/publish", authRequired, stepUpGate, workflowHandler.PublishArticle)
			articles.POST("/:id/archive", authRequired, stepUpGate, workflowHandler.ArchiveArticle)
		}

		profiles := v1.Group("/profiles", authRequired)
		{
			profiles.GET("/me", profileHandler.Me)
			profiles.PUT("/me", profileHandler.UpdateMe)
		}

		admin := v1.Group("/admin", authRequired, stepUpGate)
		{
			admin.GET("/profiles", profileHandler.ListProfiles)
			admin.PUT("/profiles/:id/role", profileHandler.ChangeRole)
			admin.PUT("/profiles/:id/active", profileHandler.SetActive)
			admin.GET("/profiles/:id/events", profileHandler.ListProfileEvents)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
