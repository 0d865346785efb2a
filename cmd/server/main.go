package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/teamhub/teamhub/internal/config"
	"github.com/teamhub/teamhub/internal/constants"
	"github.com/teamhub/teamhub/internal/database"
	"github.com/teamhub/teamhub/internal/handlers"
	"github.com/teamhub/teamhub/internal/services"
	"github.com/teamhub/teamhub/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	sessionStore, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	// Initialize the entity store and the engines on top of it
	entityStore := store.NewGormStore(database.GetDB())
	authService := services.NewAuthService(cfg.AdminAccessCode, cfg.TeamAccessCode)
	documentService := services.NewDocumentService(entityStore)
	ticketService := services.NewTicketService(entityStore, cfg.TeamMembers)
	settingsService := services.NewSettingsService(entityStore)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	linksHandler := handlers.NewLinksHandler(settingsService)
	streamHandler := handlers.NewStreamHandler(entityStore)

	// Mount the API
	handlers.RegisterRoutes(r, authHandler, documentHandler, ticketHandler, linksHandler, streamHandler)

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
