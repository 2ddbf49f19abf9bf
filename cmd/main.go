package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Formlink/config"
	"github.com/lshigami/Formlink/database"
	_ "github.com/lshigami/Formlink/docs" // Swagger docs
	adminctrl "github.com/lshigami/Formlink/internal/controller/admin"
	authctrl "github.com/lshigami/Formlink/internal/controller/auth"
	userctrl "github.com/lshigami/Formlink/internal/controller/user"
	"github.com/lshigami/Formlink/internal/logger"
	"github.com/lshigami/Formlink/internal/middleware"
	"github.com/lshigami/Formlink/internal/model"
	"github.com/lshigami/Formlink/internal/repository"
	"github.com/lshigami/Formlink/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Formlink API
// @version 1.0
// @description Forms management API: admins create and assign forms, users submit responses tracked to completion.
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewFormRepository,
			repository.NewAssignmentRepository,
			repository.NewResponseRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewUserService,
			service.NewFormService,
			service.NewAssignmentService,
			service.NewSubmissionService,
		),

		fx.Provide(
			authctrl.NewAuthController,
			adminctrl.NewAdminFormController,
			userctrl.NewFormController,
			userctrl.NewResponseController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *authctrl.AuthController,
	adminFormCtrl *adminctrl.AdminFormController,
	formCtrl *userctrl.FormController,
	responseCtrl *userctrl.ResponseController,
) {
	// Open auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/refresh", authCtrl.Refresh)
		authGroup.POST("/logout", authCtrl.Logout)
	}

	// Everything under /api requires a valid access token; admin routes
	// additionally require the admin role.
	api := router.Group("/api", middleware.Auth(cfg))
	{
		api.GET("/forms", formCtrl.ListForms)
		api.POST("/forms", middleware.RequireAdmin(), adminFormCtrl.CreateForm)
		api.GET("/forms/:id", formCtrl.GetForm)
		api.DELETE("/forms/:id", middleware.RequireAdmin(), adminFormCtrl.DeleteForm)
		api.POST("/forms/:id/assign", middleware.RequireAdmin(), adminFormCtrl.AssignUsers)

		api.GET("/assigned/:userId", formCtrl.ListAssigned)

		api.GET("/users", middleware.RequireAdmin(), adminFormCtrl.ListUsers)

		api.POST("/responses/:id/submit", responseCtrl.SubmitResponse)
		api.GET("/responses/:id/submissions", responseCtrl.GetUserSubmissions)
		api.GET("/responses/:id/:userId", responseCtrl.GetResponse)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Formlink API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Form{},
		&model.Assignment{},
		&model.Response{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
