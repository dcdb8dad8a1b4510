package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookie/application"
	"bookie/config"
	"bookie/database"
	"bookie/domain/interfaces"
	"bookie/domain/services"
	"bookie/infrastructure"
	"bookie/infrastructure/oddsapi"
	"bookie/repository"
)

// Run initializes and starts the settlement service
func Run(ctx context.Context) error {
	log.Println("Starting settlement service...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Run pending migrations
	if err := database.RunMigrationsWithURL(cfg.GetDatabaseURL()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize NATS event publishing
	log.Println("Connecting to NATS...")
	natsClient := infrastructure.NewNATSClient(cfg.NATSServers)
	if err := natsClient.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	publisher := infrastructure.NewNATSEventPublisher(natsClient)

	// Initialize Discord notifications when configured
	var notifier interfaces.ResultNotifier
	if cfg.NotificationsEnabled() {
		log.Println("Initializing Discord notifier...")
		discordNotifier, err := infrastructure.NewDiscordNotifier(cfg.DiscordToken, cfg.SettlementChannelID)
		if err != nil {
			return fmt.Errorf("failed to initialize Discord notifier: %w", err)
		}
		notifier = discordNotifier
	} else {
		log.Println("Discord notifications not configured, skipping")
	}

	// Initialize the settlement engine
	oddsClient := oddsapi.NewClient(cfg.OddsAPIBaseURL, cfg.OddsAPIKey, cfg.OddsSportKey)
	settlementService := services.NewSettlementService(
		repository.NewBetRepository(db),
		repository.NewSettlementRunRepository(db),
		oddsClient,
		publisher,
		notifier,
	)

	// Start the polling worker
	worker := application.NewSettlementWorker(settlementService, cfg.PollSchedule)
	if err := worker.Start(ctx); err != nil {
		return fmt.Errorf("failed to start settlement worker: %w", err)
	}

	// Wait for context cancellation
	log.Printf("Settlement service running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down settlement service...")

	natsClient.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}
