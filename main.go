// File: ticketbharat/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ticketbharat/catalog"
	"ticketbharat/config"
	"ticketbharat/handlers"
	"ticketbharat/middleware"
	"ticketbharat/routes"
	"ticketbharat/services/flow"
	ai "ticketbharat/services/intelligence"
	"ticketbharat/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	sessionClient := utils.GetSessionCacheClient()
	utils.StartHealthMonitor(map[string]*redis.Client{"sessions": sessionClient})

	// Catalog fixture; referential integrity is checked once at startup.
	cat := catalog.NewStaticProvider()
	if err := cat.Validate(); err != nil {
		logger.Sugar().Fatalf("main: invalid catalog fixture: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Services.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	sessionStore := flow.NewRedisSessionStore(sessionClient, sessionTTL)
	paymentHandler := flow.NewMockPaymentHandler(logger)
	engine := flow.NewEngine(cat, paymentHandler)

	var generator ai.Generator
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		gemini, err := ai.NewGeminiClient(key)
		if err != nil {
			logger.Sugar().Fatalf("main: gemini client: %v", err)
		}
		defer gemini.Close()
		generator = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set; FAQ resolver will run on the local fallback only")
	}
	resolver := ai.NewDefaultFaqResolver(generator, cat, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Chat:      handlers.NewChatHandler(engine, sessionStore, resolver, logger),
		Catalog:   handlers.NewCatalogHandler(cat),
		Dashboard: handlers.NewDashboardHandler(cat),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
