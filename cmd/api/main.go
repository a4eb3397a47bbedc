package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	httphandlers "github.com/rafabene/userhub-backend/internal/handlers/http"
	"github.com/rafabene/userhub-backend/internal/handlers/middleware"
	"github.com/rafabene/userhub-backend/internal/infrastructure/config"
	"github.com/rafabene/userhub-backend/internal/infrastructure/directory"
	"github.com/rafabene/userhub-backend/internal/infrastructure/i18n"
	"github.com/rafabene/userhub-backend/internal/infrastructure/logging"
	"github.com/rafabene/userhub-backend/internal/infrastructure/metrics"
	"github.com/rafabene/userhub-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/userhub-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting userhub backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n (locales embutidos)
	i18nService, err := i18n.NewService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Métricas Prometheus
	metrics.Init()

	// Inicializar repositories
	profileRepo := postgres.NewProfileRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	stateRepo := postgres.NewAccountStateRepository(db)
	prefRepo := postgres.NewPreferenceRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	usageRepo := postgres.NewUsageRepository(db)
	contentRepo := postgres.NewContentRepository(db)
	pendingRepo := postgres.NewPendingSignupRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Cliente do diretório de contas do provedor de auth
	directoryClient := directory.NewClient(&cfg.Directory, logger)

	// Inicializar services
	activityService := services.NewActivityService(activityRepo, logger)
	adminService := services.NewAdminService(
		directoryClient,
		profileRepo,
		roleRepo,
		stateRepo,
		prefRepo,
		activityRepo,
		usageRepo,
		contentRepo,
		pendingRepo,
		uow,
		logger,
	)
	profileService := services.NewProfileService(profileRepo, prefRepo, activityService, logger)
	signupService := services.NewSignupService(
		profileRepo,
		prefRepo,
		stateRepo,
		pendingRepo,
		activityService,
		uow,
		logger,
		cfg.Signup.RequireAdminApproval,
	)
	usageService := services.NewUsageService(usageRepo, contentRepo, stateRepo, logger)

	// Inicializar handlers
	adminHandler := httphandlers.NewAdminHandler(adminService)
	profileHandler := httphandlers.NewProfileHandler(profileService, signupService)
	usageHandler := httphandlers.NewUsageHandler(usageService)
	activityHandler := httphandlers.NewActivityHandler(activityService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(corsMiddleware(cfg.CORS.AllowedOrigins))

	// Métricas por rota
	router.Use(metrics.Instrument())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Endpoint Prometheus
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Autenticação
	auth := middleware.NewAuthMiddleware(cfg.JWT.Secret, logger)

	// API routes
	v1 := router.Group("/api/v1")
	v1.Use(auth.Authenticate())
	{
		// Cadastro de perfil pós-provedor de auth
		v1.POST("/signup", profileHandler.Register)

		// Recursos do usuário (dono ou staff)
		users := v1.Group("/users/:id")
		{
			users.GET("", auth.RequireSelfOrRole(entities.RoleModerator), profileHandler.GetProfile)
			users.PUT("", auth.RequireSelfOrRole(entities.RoleAdmin), profileHandler.UpdateProfile)
			users.GET("/preferences", auth.RequireSelfOrRole(entities.RoleModerator), profileHandler.GetPreferences)
			users.PUT("/preferences", auth.RequireSelfOrRole(entities.RoleAdmin), profileHandler.UpdatePreferences)
			users.GET("/usage", auth.RequireSelfOrRole(entities.RoleModerator), usageHandler.GetUsage)
			users.GET("/activities", auth.RequireSelfOrRole(entities.RoleModerator), activityHandler.ListActivities)
			users.POST("/activities", auth.RequireSelfOrRole(entities.RoleAdmin), activityHandler.LogActivity)
		}

		// Painel administrativo
		admin := v1.Group("/admin")
		{
			admin.GET("/users", auth.RequireRole(entities.RoleModerator), adminHandler.ListUsers)
			admin.GET("/overview", auth.RequireRole(entities.RoleModerator), adminHandler.Overview)
			admin.POST("/users/:id/approve", auth.RequireRole(entities.RoleAdmin), adminHandler.ApproveSignup)
			admin.POST("/users/:id/reject", auth.RequireRole(entities.RoleAdmin), adminHandler.RejectSignup)
			admin.PUT("/users/:id/role", auth.RequireRole(entities.RoleAdmin), adminHandler.UpdateRole)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// corsMiddleware monta o CORS a partir da lista de origens configurada
func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Accept-Language")

	if allowedOrigins == "*" || allowedOrigins == "" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	}

	return cors.New(corsConfig)
}
