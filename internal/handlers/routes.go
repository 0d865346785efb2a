package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/teamhub/teamhub/internal/middleware"
)

// RegisterRoutes mounts the full API surface. Both the server and the tests
// go through here so the route table only exists once.
func RegisterRoutes(
	r *gin.Engine,
	authHandler *AuthHandler,
	documentHandler *DocumentHandler,
	ticketHandler *TicketHandler,
	linksHandler *LinksHandler,
	streamHandler *StreamHandler,
) {
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "TeamHub API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.Me)
		}

		// Document routes (protected; mutations admin-only)
		docs := api.Group("/documents")
		docs.Use(middleware.RequireAuth())
		{
			docs.GET("", documentHandler.ListDocuments)
			docs.GET("/overview", documentHandler.GetDocumentOverview)
			docs.GET("/stream", streamHandler.StreamDocuments)
			docs.POST("", middleware.RequireAdmin(), documentHandler.CreateDocument)
			docs.GET("/:id", documentHandler.GetDocument)
			docs.PATCH("/:id", middleware.RequireAdmin(), documentHandler.UpdateDocument)
			docs.DELETE("/:id", middleware.RequireAdmin(), documentHandler.DeleteDocument)
			docs.POST("/:id/visibility", middleware.RequireAdmin(), documentHandler.ToggleDocumentVisibility)
			docs.POST("/:id/pin", middleware.RequireAdmin(), documentHandler.ToggleDocumentPin)
			docs.POST("/:id/status", middleware.RequireAdmin(), documentHandler.ToggleDocumentStatus)
		}

		// Ticket routes (protected; both roles mutate, gated in the service)
		tickets := api.Group("/tickets")
		tickets.Use(middleware.RequireAuth())
		{
			tickets.GET("", ticketHandler.ListTickets)
			tickets.GET("/board", ticketHandler.GetBoard)
			tickets.GET("/stream", streamHandler.StreamTickets)
			tickets.POST("", ticketHandler.CreateTicket)
			tickets.GET("/:id", ticketHandler.GetTicket)
			tickets.PATCH("/:id", ticketHandler.UpdateTicket)
			tickets.POST("/:id/move", ticketHandler.MoveTicket)
			tickets.DELETE("/:id", ticketHandler.DeleteTicket)
			tickets.POST("/:id/restore", middleware.RequireAdmin(), ticketHandler.RestoreTicket)
			tickets.POST("/:id/visibility", middleware.RequireAdmin(), ticketHandler.ToggleTicketVisibility)
		}

		// Global link routes (protected; writes admin-only)
		links := api.Group("/links")
		links.Use(middleware.RequireAuth())
		{
			links.GET("", linksHandler.GetLinks)
			links.GET("/stream", streamHandler.StreamLinks)
			links.PUT("", middleware.RequireAdmin(), linksHandler.PutLinks)
		}
	}
}
