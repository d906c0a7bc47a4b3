package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Omarrio321/Aran-Repairs/config"
	"github.com/Omarrio321/Aran-Repairs/handlers"
	"github.com/Omarrio321/Aran-Repairs/middleware"
	"github.com/Omarrio321/Aran-Repairs/routes"
	bookingSvc "github.com/Omarrio321/Aran-Repairs/services/booking"
	cartSvc "github.com/Omarrio321/Aran-Repairs/services/cart"
	"github.com/Omarrio321/Aran-Repairs/services/intelligence"
	"github.com/Omarrio321/Aran-Repairs/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCartCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Stores.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := bookingSvc.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)
	cartStore := cartSvc.NewRedisStore(utils.GetCartCacheClient())

	// Services.
	bookingService := &bookingSvc.DefaultSessionService{
		Store: sessionStore,
	}
	cartService := &cartSvc.DefaultCartService{
		Store: cartStore,
	}
	diagnosisService := intelligence.NewDefaultDiagnosisService(config.AppConfig.GeminiAPIKey)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:   handlers.NewBookingHandler(bookingService, logger),
		Cart:      handlers.NewCartHandler(cartService, logger),
		Diagnosis: handlers.NewDiagnosisHandler(diagnosisService, logger),
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
