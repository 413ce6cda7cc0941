package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yournews/handlers"
	"yournews/helper"
	"yournews/logging"
	"yournews/repositories"
	"yournews/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func init() {
	serveCommand := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			db := openDB(cfg)
			sqlDB, err := db.DB()
			if err != nil {
				loggingFatal("Failed to get database handle", err)
			}
			defer sqlDB.Close()

			dispatcher := newNotifier(cfg)
			dispatcher.Start()

			userRepo := repositories.NewUserRepository(db)
			publisherRepo := repositories.NewPublisherRepository(db)
			subRepo := repositories.NewSubscriptionRepository(db)
			articleRepo := repositories.NewArticleRepository(db)
			newsletterRepo := repositories.NewNewsletterRepository(db)
			appRepo := repositories.NewRoleApplicationRepository(db)

			visibility := services.NewVisibilityFilter(subRepo)
			authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiration)
			articleService := services.NewArticleService(articleRepo, subRepo, visibility, dispatcher)
			newsletterService := services.NewNewsletterService(newsletterRepo, subRepo, visibility, dispatcher)
			subscriptionService := services.NewSubscriptionService(subRepo, userRepo, publisherRepo)
			directoryService := services.NewDirectoryService(userRepo, publisherRepo)
			roleService := services.NewRoleService(appRepo, userRepo, publisherRepo, dispatcher)

			h := helper.NewHTTPHelper()
			gin.SetMode(gin.ReleaseMode)
			router := handlers.SetupRouter(h, handlers.RouterConfig{
				JWTSecret:   cfg.JWTSecret,
				Users:       userRepo,
				CORSOrigins: cfg.CORSOrigins,
			}, handlers.Handlers{
				Auth:         handlers.NewAuthHandler(authService, h),
				Article:      handlers.NewArticleHandler(articleService, h, cfg.PageSize),
				Newsletter:   handlers.NewNewsletterHandler(newsletterService, h, cfg.PageSize),
				Subscription: handlers.NewSubscriptionHandler(subscriptionService, h),
				Directory:    handlers.NewDirectoryHandler(directoryService, h),
				Role:         handlers.NewRoleHandler(roleService, h),
				Health:       handlers.NewHealthHandler(sqlDB),
			})

			server := &http.Server{
				Addr:         ":" + cfg.ServerPort,
				Handler:      router,
				ReadTimeout:  cfg.ReadTimeout,
				WriteTimeout: cfg.WriteTimeout,
				IdleTimeout:  cfg.IdleTimeout,
			}

			go func() {
				logging.Info().Str("port", cfg.ServerPort).Msg("Starting server")
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					loggingFatal("Server shut down unexpectedly", err)
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			logging.Info().Msg("Shutting down server")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logging.Error().Err(err).Msg("Server shutdown error")
			}

			// requests are done, deliver what they queued
			logging.Info().Msg("Draining notification queue")
			dispatcher.Close()

			logging.Info().Msg("Server exited")
		},
	}
	RootCommand.AddCommand(serveCommand)
}
