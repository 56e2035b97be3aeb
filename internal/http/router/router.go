package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sponsoring-app/sponsoring-backend/internal/config"
	"github.com/sponsoring-app/sponsoring-backend/internal/http/handlers"
	"github.com/sponsoring-app/sponsoring-backend/internal/http/middleware"
	newHandler "github.com/sponsoring-app/sponsoring-backend/internal/interface/http/handler"
	"github.com/sponsoring-app/sponsoring-backend/internal/service"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	eventHandler *handlers.EventHandler,
	mediaHandler *handlers.MediaHandler,
	notificationHandler *handlers.NotificationHandler,
	wsHandler *handlers.WSHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *service.TokenManager,
	collaborationHandler *newHandler.CollaborationHandler,
	conversationHandler *newHandler.ConversationHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.StaticFS("/media/files", http.Dir(cfg.MediaStoragePath))

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authRateLimit := middleware.RateLimitMiddleware(5, cfg.RateLimitPeriod)
	authGroup.Use(authRateLimit)
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	protectedAuth := api.Group("/auth")
	protectedAuth.Use(middleware.AuthMiddleware(tokenManager))
	{
		protectedAuth.POST("/logout", authHandler.Logout)
		protectedAuth.GET("/sessions", authHandler.ListSessions)
		protectedAuth.DELETE("/sessions/:sessionId", middleware.UUIDValidator("sessionId"), authHandler.DeleteSession)
	}

	// Trasy publiczne
	api.GET("/events", eventHandler.ListEvents)
	api.GET("/events/:id", middleware.UUIDValidator("id"), eventHandler.GetEvent)
	api.GET("/users/:id", middleware.UUIDValidator("id"), profileHandler.GetProfile)
	api.GET("/media/:id", middleware.UUIDValidator("id"), mediaHandler.GetMedia)
	api.GET("/ws", wsHandler.Handle)

	// Trasy chronione
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokenManager))
	{
		protected.GET("/profile", profileHandler.GetMyProfile)
		protected.PUT("/profile", profileHandler.UpdateMyProfile)

		protected.POST("/media/photos", mediaHandler.UploadPhoto)
		protected.DELETE("/media/:id", middleware.UUIDValidator("id"), mediaHandler.DeleteMedia)

		protected.GET("/notifications", notificationHandler.ListNotifications)
		protected.GET("/notifications/unread/count", notificationHandler.CountUnread)
		protected.PUT("/notifications/:id/read", middleware.UUIDValidator("id"), notificationHandler.MarkAsRead)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.DELETE("/notifications/:id", middleware.UUIDValidator("id"), notificationHandler.DeleteNotification)

		// Wydarzenia zarządza wyłącznie organizacja
		organization := protected.Group("/")
		organization.Use(middleware.RequireRole("organization"))
		{
			organization.POST("/events", eventHandler.CreateEvent)
			organization.PUT("/events/:id", middleware.UUIDValidator("id"), eventHandler.UpdateEvent)
			organization.POST("/events/:id/publish", middleware.UUIDValidator("id"), eventHandler.PublishEvent)
			organization.DELETE("/events/:id", middleware.UUIDValidator("id"), eventHandler.DeleteEvent)
			organization.POST("/events/:id/options", middleware.UUIDValidator("id"), eventHandler.CreateOption)
			organization.PUT("/events/:id/options/:optionId", middleware.UUIDValidator("id"), middleware.UUIDValidator("optionId"), eventHandler.UpdateOption)
			organization.DELETE("/events/:id/options/:optionId", middleware.UUIDValidator("id"), middleware.UUIDValidator("optionId"), eventHandler.DeleteOption)
		}
		protected.GET("/events/my", eventHandler.ListMyEvents)

		// Współprace sponsorskie
		sponsor := protected.Group("/")
		sponsor.Use(middleware.RequireRole("sponsor"))
		{
			sponsor.POST("/events/:id/collaborations", middleware.UUIDValidator("id"), collaborationHandler.CreateCollaboration)
		}
		protected.GET("/collaborations/my", collaborationHandler.ListMyCollaborations)
		protected.GET("/collaborations/:id", middleware.UUIDValidator("id"), collaborationHandler.GetCollaboration)
		protected.PATCH("/collaborations/:id/status", middleware.UUIDValidator("id"), collaborationHandler.ChangeStatus)
		protected.PUT("/collaborations/:id/terms", middleware.UUIDValidator("id"), collaborationHandler.UpdateTerms)

		// Konwersacje i wiadomości
		protected.POST("/conversations", conversationHandler.StartConversation)
		protected.GET("/conversations/my", conversationHandler.ListMyConversations)
		protected.GET("/conversations/:conversationId/messages", middleware.UUIDValidator("conversationId"), conversationHandler.ListMessages)
		protected.GET("/conversations/:conversationId/messages/recent", middleware.UUIDValidator("conversationId"), conversationHandler.ListRecentMessages)
		protected.POST("/conversations/:conversationId/messages", middleware.UUIDValidator("conversationId"), conversationHandler.SendMessage)
		protected.PUT("/conversations/:conversationId/messages/:messageId", middleware.UUIDValidator("conversationId"), middleware.UUIDValidator("messageId"), conversationHandler.UpdateMessage)
		protected.DELETE("/conversations/:conversationId/messages/:messageId", middleware.UUIDValidator("conversationId"), middleware.UUIDValidator("messageId"), conversationHandler.DeleteMessage)
	}

	return r
}
