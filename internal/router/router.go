package router

import (
	"net/http"
	"toron/internal/handlers"
	"toron/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	topicHandler := handlers.NewTopicHandler()
	claimHandler := handlers.NewClaimHandler()
	rebuttalHandler := handlers.NewRebuttalHandler()
	voteHandler := handlers.NewVoteHandler()
	reportHandler := handlers.NewReportHandler()
	notificationHandler := handlers.NewNotificationHandler()
	userHandler := handlers.NewUserHandler()
	adminHandler := handlers.NewAdminHandler()
	aiHandler := handlers.NewAIHandler()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// 公共路由 (Public Routes)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)
	}

	topics := api.Group("/topics")
	{
		topics.GET("", topicHandler.List)
		topics.GET("/:id", topicHandler.Get)
		topics.POST("", middleware.AuthRequired(), middleware.AdminRequired(), topicHandler.Create)
	}

	claims := api.Group("/claims")
	{
		claims.GET("/topic/:topicID", claimHandler.ListByTopic)
		claims.GET("/:id", claimHandler.Get)
		claims.GET("/:id/evidence", claimHandler.EvidenceList)
		claims.POST("", middleware.AuthRequired(), claimHandler.Create)
	}

	rebuttals := api.Group("/rebuttals")
	{
		rebuttals.GET("/claim/:claimID", rebuttalHandler.ListByClaim)
		rebuttals.GET("/:id", rebuttalHandler.Get)
		rebuttals.POST("", middleware.AuthRequired(), rebuttalHandler.Create)
	}

	api.GET("/users/:id", userHandler.Profile)

	ai := api.Group("/ai")
	{
		ai.POST("/search-evidence", aiHandler.SearchEvidence)
		ai.POST("/improve-text", aiHandler.ImproveText)
	}

	// 受保护路由 (Protected Routes)
	votes := api.Group("/votes", middleware.AuthRequired())
	{
		votes.POST("", voteHandler.Cast)
		votes.GET("/claim/:id", voteHandler.ClaimVote)
		votes.GET("/rebuttal/:id", voteHandler.RebuttalVote)
	}

	api.POST("/reports", middleware.AuthRequired(), reportHandler.Create)

	notifications := api.Group("/notifications", middleware.AuthRequired())
	{
		notifications.GET("", notificationHandler.List)
		notifications.POST("/:id/read", notificationHandler.Read)
		notifications.POST("/read-all", notificationHandler.ReadAll)
		notifications.DELETE("/:id", notificationHandler.Delete)
	}

	admin := api.Group("/admin", middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.PUT("/claims/:id/sticker", adminHandler.SetSticker)
	}
}
