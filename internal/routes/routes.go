package routes

import (
	"net/http"

	"freelancehub_backend/internal/handlers"
	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/push"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the full API surface onto the router.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, hub *push.Hub) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}
	v1.GET("/jobs", h.Job.ListJobs)
	v1.GET("/jobs/:id", h.Job.GetJob)

	// Authenticated
	authed := v1.Group("")
	authed.Use(middleware.Auth())
	{
		authed.GET("/users/me", h.User.GetMe)
		authed.PUT("/users/me", h.User.UpdateMe)
		authed.GET("/users/:id", h.User.GetUser)
		authed.GET("/users/:id/portfolio", h.User.GetPortfolio)

		portfolio := authed.Group("/portfolio", middleware.RequireRole(models.UserRoleFreelancer))
		{
			portfolio.POST("", h.User.AddPortfolioItem)
			portfolio.PUT("/:id", h.User.UpdatePortfolioItem)
			portfolio.DELETE("/:id", h.User.DeletePortfolioItem)
		}

		clientOnly := middleware.RequireRole(models.UserRoleClient, models.UserRoleAdmin)
		freelancerOnly := middleware.RequireRole(models.UserRoleFreelancer)

		authed.POST("/jobs", clientOnly, h.Job.CreateJob)
		authed.PUT("/jobs/:id", clientOnly, h.Job.UpdateJob)
		authed.DELETE("/jobs/:id", clientOnly, h.Job.DeleteJob)
		authed.GET("/jobs/:id/applications", clientOnly, h.Application.ListJobApplications)

		authed.POST("/applications", freelancerOnly, h.Application.Apply)
		authed.GET("/applications/my", freelancerOnly, h.Application.ListMyApplications)
		authed.GET("/applications/:id", h.Application.GetApplication)
		authed.PUT("/applications/:id/decision", clientOnly, h.Application.Decide)

		authed.POST("/contracts", clientOnly, h.Contract.CreateContract)
		authed.GET("/contracts", h.Contract.ListContracts)
		authed.GET("/contracts/:id", h.Contract.GetContract)
		authed.PUT("/contracts/:id", h.Contract.UpdateContract)

		authed.GET("/contracts/:id/meetings", h.Meeting.ListContractMeetings)
		authed.POST("/meetings", h.Meeting.ScheduleMeeting)
		authed.GET("/meetings/:id", h.Meeting.GetMeeting)
		authed.PUT("/meetings/:id", h.Meeting.UpdateMeeting)

		authed.POST("/work-progress", freelancerOnly, h.WorkProgress.SubmitProgress)
		authed.GET("/contracts/:id/progress", h.WorkProgress.ListContractProgress)
		authed.PUT("/work-progress/:id/review", clientOnly, h.WorkProgress.ReviewProgress)

		authed.POST("/contracts/:id/messages", h.Chat.SendMessage)
		authed.GET("/contracts/:id/messages", h.Chat.GetMessages)
		authed.PUT("/contracts/:id/messages/read", h.Chat.MarkThreadRead)
		authed.GET("/contracts/:id/messages/unread-count", h.Chat.UnreadCount)

		notifications := authed.Group("/notifications")
		{
			notifications.GET("", h.Notification.ListNotifications)
			notifications.GET("/unread-count", h.Notification.UnreadCount)
			notifications.PUT("/read", h.Notification.MarkAsRead)
			notifications.PUT("/read-all", h.Notification.MarkAllAsRead)
			notifications.DELETE("/:id", h.Notification.DeleteNotification)
			notifications.GET("/preferences", h.Notification.GetPreferences)
			notifications.PUT("/preferences", h.Notification.UpdatePreferences)
		}

		authed.GET("/dashboard", h.Dashboard.Summary)

		authed.GET("/ws", hub.ServeWS)
	}
}
