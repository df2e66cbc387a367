package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thien06012001/backend/internal/infrastructure/http/middleware"
	"github.com/thien06012001/backend/pkg/config"
	"github.com/thien06012001/backend/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg                 *config.Config
	jwtManager          *jwt.Manager
	authHandler         *Auth
	userHandler         *User
	eventHandler        *Event
	invitationHandler   *Invitation
	requestHandler      *Request
	postHandler         *Post
	notificationHandler *Notification
	settingHandler      *Setting
	adminHandler        *Admin
	storageHandler      *Storage
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	jwtManager *jwt.Manager,
	authHandler *Auth,
	userHandler *User,
	eventHandler *Event,
	invitationHandler *Invitation,
	requestHandler *Request,
	postHandler *Post,
	notificationHandler *Notification,
	settingHandler *Setting,
	adminHandler *Admin,
	storageHandler *Storage,
) *Router {
	return &Router{
		cfg:                 cfg,
		jwtManager:          jwtManager,
		authHandler:         authHandler,
		userHandler:         userHandler,
		eventHandler:        eventHandler,
		invitationHandler:   invitationHandler,
		requestHandler:      requestHandler,
		postHandler:         postHandler,
		notificationHandler: notificationHandler,
		settingHandler:      settingHandler,
		adminHandler:        adminHandler,
		storageHandler:      storageHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")
	authed := middleware.EchoAuth(rt.jwtManager)

	rt.setupAuthRoutes(api, authed)
	rt.setupUserRoutes(api, authed)
	rt.setupEventRoutes(api, authed)
	rt.setupInvitationRoutes(api, authed)
	rt.setupRequestRoutes(api, authed)
	rt.setupPostRoutes(api, authed)
	rt.setupNotificationRoutes(api, authed)
	rt.setupSettingRoutes(api, authed)
	rt.setupAdminRoutes(api, authed)
	rt.setupStorageRoutes(api, authed)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group, authed echo.MiddlewareFunc) {
	authGroup := g.Group("/auth")

	authGroup.POST("/register", rt.authHandler.Register)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/refresh", rt.authHandler.Refresh)
	authGroup.GET("/me", rt.authHandler.Me, authed)
}

// setupUserRoutes configures user routes
func (rt *Router) setupUserRoutes(g *echo.Group, authed echo.MiddlewareFunc) {
	userGroup := g.Group("/users", authed)

	userGroup.GET("/:id", rt.userHandler.GetUser)
	userGroup.PUT("/:id", rt.userHandler.UpdateUser)
	userGroup.GET("/:id/events", rt.userHandler.GetOwnedEvents)
	userGroup.GET("/:id/joined-events", rt.userHandler.GetJoinedEvents)
}

// setupEventRoutes configures event routes. Public events are browsable
// without a token; everything else requires auth.
func (rt *Router) setupEventRoutes(g *echo.Group, authed echo.MiddlewareFunc) {
	eventGroup := g.Group("/events")

	eventGroup.GET("", rt.eventHandler.ListEvents)
	eventGroup.GET("/:id", rt.eventHandler.GetEvent)

	// The sweep endpoint is meant for an external cron hitting the API
	eventGroup.POST("/reminders/ping", rt.eventHandler.PingReminders)

	eventGroup.POST("", rt.eventHandler.CreateEvent, authed)
	eventGroup.PUT("/:id", rt.eventHandler.UpdateEvent, authed)
	eventGroup.PUT("/:id/reminders", rt.eventHandler.UpdateReminders, authed)
	eventGroup.DELETE("/:id", rt.eventHandler.DeleteEvent, authed)

	eventGroup.GET("/:id/participants", rt.eventHandler.GetParticipants, authed)
	eventGroup.DELETE("/:id/participants/me", rt.eventHandler.LeaveEvent, authed)
	eventGroup.DELETE("/:id/participants/:userID", rt.eventHandler.KickParticipant, authed)

	eventGroup.GET("/:id/invitations", rt.invitationHandler.GetEventInvitations, authed)
	eventGroup.POST("/:id/invitations", rt.invitationHandler.InviteUser, authed)
	eventGroup.POST("/:id/invitations/email", rt.invitationHandler.InviteByEmail, authed)
	eventGroup.POST("/:id/invitations/bulk", rt.invitationHandler.BulkInvite, authed)

	eventGroup.GET("/:id/requests", rt.requestHandler.GetEventRequests, authed)
	eventGroup.POST("/:id/requests", rt.requestHandler.CreateRequest, authed)
	eventGroup.DELETE("/:id/requests/me", rt.requestHandler.CancelRequest, authed)

	eventGroup.GET("/:id/discussions", rt.postHandler.GetEventPosts, authed)
	eventGroup.POST("/:id/discussions", rt.postHandler.CreatePost, authed)
}

// setupInvitationRoutes configures invitee-facing invitation routes
func (rt *Router) setupInvitationRoutes(g *echo.Group, authed echo.MiddlewareFunc) {
	invitationGroup := g.Group("/invitations", authed)

	invitationGroup.GET("", rt.invitationHandler.GetMyInvitations)
	invitationGroup.POST("/:id/accept", rt.invitationHandler.AcceptInvitation)
	invitationGroup.POST("/:id/reject", rt.invitationHandler.RejectInvitation)
	invitationGroup.DELETE("/:id", rt.invitationHandler.DeleteInvitation)
}

// setupRequestRoutes configures owner-facing join request routes
func (rt *Router) setupRequestRoutes(g *echo.Group, authed echo.MiddlewareFunc) {
	requestGroup := g.Group("/requests", authed)

	requestGroup.POST("/:id/approve", rt.requestHandler.ApproveRequest)
	requestGroup.POST("/:id/reject", rt.requestHandler.RejectRequest)
}

// setupPostRoutes configures discussion routes addressed by post/comment ID
func (rt *Router) setupPostRoutes(g *echo.Group, authed echo.MiddlewareFunc) {
	postGroup := g.Group("/posts", authed)

	postGroup.GET("/:id", rt.postHandler.GetPost)
	postGroup.PUT("/:id", rt.postHandler.UpdatePost)
	postGroup.DELETE("/:id", rt.postHandler.DeletePost)
	postGroup.GET("/:id/comments", rt.postHandler.GetPostComments)
	postGroup.POST("/:id/comments", rt.postHandler.CreateComment)

	commentGroup := g.Group("/comments", authed)
	commentGroup.PUT("/:id", rt.postHandler.UpdateComment)
	commentGroup.DELETE("/:id", rt.postHandler.DeleteComment)
}

// setupNotificationRoutes configures notification routes
func (rt *Router) setupNotificationRoutes(g *echo.Group, authed echo.MiddlewareFunc) {
	notificationGroup := g.Group("/notifications", authed)

	notificationGroup.GET("", rt.notificationHandler.GetMyNotifications)
	notificationGroup.GET("/unread", rt.notificationHandler.GetUnread)
	notificationGroup.GET("/unread/count", rt.notificationHandler.CountUnread)
	notificationGroup.POST("/:id/read", rt.notificationHandler.MarkAsRead)
	notificationGroup.POST("/read-all", rt.notificationHandler.MarkAllAsRead)
	notificationGroup.DELETE("/:id", rt.notificationHandler.DeleteNotification)
	notificationGroup.DELETE("", rt.notificationHandler.DeleteAllNotifications)
}

// setupSettingRoutes configures tenant settings routes
func (rt *Router) setupSettingRoutes(g *echo.Group, authed echo.MiddlewareFunc) {
	settingGroup := g.Group("/settings", authed)

	settingGroup.GET("", rt.settingHandler.GetSettings)
	settingGroup.PUT("", rt.settingHandler.UpdateSettings, middleware.RequireAdmin())
}

// setupAdminRoutes configures admin routes
func (rt *Router) setupAdminRoutes(g *echo.Group, authed echo.MiddlewareFunc) {
	adminGroup := g.Group("/admin", authed, middleware.RequireAdmin())

	adminGroup.GET("/users", rt.adminHandler.ListUsers)
	adminGroup.DELETE("/users/:id", rt.adminHandler.DeleteUser)
	adminGroup.GET("/events", rt.adminHandler.ListEvents)
	adminGroup.DELETE("/events/:id", rt.adminHandler.DeleteEvent)
}

// setupStorageRoutes configures upload routes
func (rt *Router) setupStorageRoutes(g *echo.Group, authed echo.MiddlewareFunc) {
	// Storage is optional; without MinIO configured uploads are disabled
	if rt.storageHandler == nil {
		return
	}
	g.POST("/uploads", rt.storageHandler.Upload, authed)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
