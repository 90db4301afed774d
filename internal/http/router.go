package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"socialstream/internal/auth"
	"socialstream/internal/http/controller"
	"socialstream/internal/http/middleware"
	"socialstream/internal/ws"
)

func NewRouter(handler *controller.Handler, wsHandler *ws.Handler, verifier *auth.Verifier, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.ZapLogger(logger), middleware.ZapRecovery(logger), otelgin.Middleware("socialstream"))

	router.GET("/health", func(c *gin.Context) {
		c.Status(200)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// The websocket handshake carries its own credential; auth happens
	// inside the lifecycle handler, not in middleware.
	router.GET("/ws", wsHandler.Serve)

	authed := router.Group("/", middleware.RequireAuth(verifier))

	authed.POST("/comments", handler.CreateComment)
	authed.GET("/comments", handler.ListComments)
	authed.GET("/comments/liked", handler.ListLikedComments)
	authed.POST("/comments/reply", handler.ReplyToComment)
	authed.GET("/comments/:id", handler.GetComment)
	authed.PATCH("/comments/:id", handler.UpdateComment)
	authed.DELETE("/comments/:id", handler.DeleteComment)
	authed.POST("/comments/:id/like", handler.LikeComment)
	authed.GET("/comments/:id/likes", handler.GetCommentLikes)

	authed.GET("/notifications", handler.ListNotifications)
	authed.GET("/notifications/unread-count", handler.UnreadNotificationsCount)
	authed.PATCH("/notifications/read-all", handler.MarkAllNotificationsRead)
	authed.PATCH("/notifications/:id/read", handler.MarkNotificationRead)

	authed.POST("/followers/follow/:userId", handler.FollowUser)
	authed.DELETE("/followers/unfollow/:userId", handler.UnfollowUser)
	authed.GET("/followers/is-following/:userId", handler.IsFollowing)
	authed.GET("/followers/:userId/followers", handler.ListFollowers)
	authed.GET("/followers/:userId/following", handler.ListFollowing)

	authed.GET("/users/profile", handler.GetProfile)
	authed.PATCH("/users/profile", handler.UpdateProfile)
	authed.GET("/users/:username", handler.GetProfileByUsername)

	authed.POST("/events/publish", handler.PublishEvent)

	return router
}
