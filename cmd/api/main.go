package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/justsurfingit/job-application-assistant/internal/auth"
	"github.com/justsurfingit/job-application-assistant/internal/config"
	"github.com/justsurfingit/job-application-assistant/internal/handlers"
	"github.com/justsurfingit/job-application-assistant/internal/services"
	"github.com/justsurfingit/job-application-assistant/internal/session"
	"github.com/justsurfingit/job-application-assistant/internal/sheets"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg := config.Load()
	ctx := context.Background()

	// 2. Gemini Client
	// Missing or broken credentials leave the capability nil; the services
	// answer with a "not configured" message instead of crashing a turn.
	var completer services.Completer
	if cfg.GeminiConfigured() {
		llm, err := services.NewLLMService(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("⚠️  Failed to create Gemini client: %v", err)
		} else {
			completer = llm
			log.Println("✅ Gemini AI connected.")
		}
	}

	// 3. Google Sheets Store
	var store sheets.TabularStore
	if cfg.SheetsConfigured() {
		httpClient, err := auth.SheetsClient(ctx, cfg.GoogleCredentials)
		if err != nil {
			log.Printf("⚠️  Google Sheets auth failed: %v", err)
		} else {
			s, err := sheets.NewSheetsStore(ctx, httpClient, cfg.SheetID)
			if err != nil {
				log.Printf("⚠️  Failed to open spreadsheet %s: %v", config.Mask(cfg.SheetID), err)
			} else {
				store = s
				log.Println("✅ Google Sheets connected.")
			}
		}
	}

	// 4. Core Services
	sessions := session.NewStore()
	extractor := services.NewExtractorService(completer)
	tracker := services.NewTrackerService(store)
	responder := services.NewResponderService(completer)
	chat := services.NewChatService(sessions, extractor, tracker, responder)

	// 5. Handlers
	chatHandler := handlers.NewChatHandler(chat, sessions, cfg)

	// 6. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/config", chatHandler.GetConfigStatus)

		api.POST("/chat", chatHandler.PostChat)
		api.POST("/chat/sample", chatHandler.PostSample)
		api.GET("/chat/history", chatHandler.GetHistory)
		api.POST("/chat/reset", chatHandler.PostReset)
	}

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
