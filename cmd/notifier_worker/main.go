package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rentdesk/property-management-api/internal/config"
	"github.com/rentdesk/property-management-api/internal/mailer"
	"github.com/rentdesk/property-management-api/internal/service/queue"
	"github.com/rentdesk/property-management-api/internal/worker"
	"github.com/rentdesk/property-management-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	// Initialize SES
	sesConfig := config.DefaultSESConfig()
	sesClient, err := sesConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SES", err)
	}
	sesMailer := mailer.NewSESMailer(sesClient, sesConfig)

	appLogger.Info("SES connection established for notifier worker")

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	appLogger.Info("SQS connection established for notifier worker")

	// Initialize notifier worker
	notifierWorker := worker.NewNotifierWorker(
		sqsService,
		sesMailer,
		appLogger,
		2,             // 2 worker goroutines
		5*time.Second, // Poll every 5 seconds
	)

	// Start the worker
	notifierWorker.Start()
	appLogger.Info("Notifier worker started")

	// Wait for interrupt signal to gracefully shutdown the worker
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Stop the worker
	appLogger.Info("Shutting down worker...")
	notifierWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
