package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ozlemtrn/oynaogren/internal/api"
	"github.com/ozlemtrn/oynaogren/internal/catalog"
	"github.com/ozlemtrn/oynaogren/internal/config"
	"github.com/ozlemtrn/oynaogren/internal/core"
	"github.com/ozlemtrn/oynaogren/internal/db"
)

func main() {
	// A missing .env is fine in deployed environments; config comes from the
	// real environment there.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer logger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	gin.SetMode(appConfig.GinMode)

	ctx := context.Background()
	clients, err := db.NewClients(ctx, appConfig)
	if err != nil {
		logger.Fatal("Failed to initialize Firebase clients", zap.Error(err))
	}
	defer clients.Close()

	progressRepo := db.NewFirestoreProgressRepository(clients.Firestore)

	progressService := core.NewProgressService(progressRepo, catalog.UnitNumbers(), catalog.Questions())
	livesService := core.NewLivesService(progressRepo)
	billingService := core.NewBillingService(progressRepo, core.BillingConfig{
		SecretKey:     appConfig.StripeSecretKey,
		WebhookSecret: appConfig.StripeWebhookSecret,
		PriceIDLife1:  appConfig.StripePriceIDLife1,
		PriceIDLife5:  appConfig.StripePriceIDLife5,
		ClientURL:     appConfig.ClientURL,
	})
	storyService := core.NewStoryService(progressRepo, catalog.Stories())

	router := gin.New()
	api.SetupRoutes(router, appConfig, logger, clients.Auth, progressService, livesService, billingService, storyService)

	srv := &http.Server{
		Addr:    ":" + appConfig.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", appConfig.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}
