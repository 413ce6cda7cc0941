package handlers

import (
	"yournews/helper"
	"yournews/middleware"
	"yournews/models"
	"yournews/repositories"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth         *AuthHandler
	Article      *ArticleHandler
	Newsletter   *NewsletterHandler
	Subscription *SubscriptionHandler
	Directory    *DirectoryHandler
	Role         *RoleHandler
	Health       *HealthHandler
}

type RouterConfig struct {
	JWTSecret   []byte
	Users       repositories.UserRepository
	CORSOrigins []string
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func SetupRouter(h *helper.HTTPHelper, cfg RouterConfig, hs Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg.CORSOrigins))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())

	router.GET("/health", hs.Health.Health)
	router.GET("/ready", hs.Health.Ready)
	router.GET("/live", hs.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	role := func(roles ...models.UserRole) gin.HandlerFunc {
		return middleware.RequireRole(h, roles...)
	}

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", hs.Auth.Register)
			auth.POST("/token", hs.Auth.Token)
		}

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware(h, cfg.JWTSecret, cfg.Users))
		{
			protected.GET("/profile", hs.Auth.GetProfile)

			articles := protected.Group("/articles")
			{
				articles.GET("", hs.Article.GetArticles)
				articles.GET("/by_journalist", hs.Article.GetArticlesByJournalist)
				articles.GET("/by_publisher", hs.Article.GetArticlesByPublisher)
				articles.GET("/:id", hs.Article.GetArticle)
				articles.POST("", role(models.RoleJournalist), hs.Article.CreateArticle)
				articles.PUT("/:id", role(models.RoleJournalist, models.RoleEditor, models.RoleAdmin), hs.Article.UpdateArticle)
				articles.DELETE("/:id", role(models.RoleJournalist, models.RoleEditor, models.RoleAdmin), hs.Article.DeleteArticle)
				articles.POST("/:id/approve", role(models.RoleEditor, models.RoleAdmin), hs.Article.ApproveArticle)
				articles.POST("/:id/reject", role(models.RoleEditor, models.RoleAdmin), hs.Article.RejectArticle)
			}

			newsletters := protected.Group("/newsletters")
			{
				newsletters.GET("", hs.Newsletter.GetNewsletters)
				newsletters.GET("/:id", hs.Newsletter.GetNewsletter)
				newsletters.POST("", role(models.RoleJournalist), hs.Newsletter.CreateNewsletter)
				newsletters.PUT("/:id", role(models.RoleJournalist, models.RoleEditor, models.RoleAdmin), hs.Newsletter.UpdateNewsletter)
				newsletters.DELETE("/:id", role(models.RoleJournalist, models.RoleEditor, models.RoleAdmin), hs.Newsletter.DeleteNewsletter)
			}

			protected.GET("/publishers", hs.Directory.GetPublishers)
			protected.GET("/publishers/:id", hs.Directory.GetPublisher)
			protected.GET("/journalists", hs.Directory.GetJournalists)
			protected.GET("/journalists/:id", hs.Directory.GetJournalist)

			subscriptions := protected.Group("/subscriptions", role(models.RoleReader))
			{
				subscriptions.GET("", hs.Subscription.GetSubscriptions)
				subscriptions.POST("/journalists/:id", hs.Subscription.SubscribeJournalist)
				subscriptions.DELETE("/journalists/:id", hs.Subscription.UnsubscribeJournalist)
				subscriptions.POST("/publishers/:id", hs.Subscription.SubscribePublisher)
				subscriptions.DELETE("/publishers/:id", hs.Subscription.UnsubscribePublisher)
			}

			protected.POST("/role-applications", role(models.RoleReader), hs.Role.Apply)

			admin := protected.Group("/admin", role(models.RoleAdmin))
			{
				admin.GET("/role-applications", hs.Role.GetApplications)
				admin.POST("/role-applications/:id/approve", hs.Role.ApproveApplication)
				admin.POST("/role-applications/:id/reject", hs.Role.RejectApplication)
				admin.PUT("/users/:id/role", hs.Role.ChangeRole)
			}
		}
	}

	return router
}
