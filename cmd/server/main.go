package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rental-storefront/internal/booking"
	"rental-storefront/internal/config"
	"rental-storefront/internal/handler"
	"rental-storefront/internal/ledger"
	"rental-storefront/internal/lifecycle"
	"rental-storefront/internal/logger"
	"rental-storefront/internal/rentalapi"
	"rental-storefront/internal/session"
	"rental-storefront/internal/storage"
	"rental-storefront/internal/wallet"

	_ "rental-storefront/docs"
)

// @title Rental Storefront API
// @version 1.0
// @description Booking and wallet gateway for the car rental storefront
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Setup logger
	log := logger.New(true)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Redis backs the durable balance cache and session identities
	redisCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	redisClient, err := storage.NewClient(redisCtx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	// Remote rental/payment service client
	api := rentalapi.NewClient(cfg.RentalAPI, log)

	// Wallet store over the durable cache
	balanceCache := wallet.NewRedisCache(redisClient)
	walletStore := wallet.NewStore(api, balanceCache, log)

	// Sessions
	identityStore := session.NewRedisStore(redisClient)
	sessions := session.NewManager(identityStore, walletStore, cfg.Session.JWTSecret, cfg.Session.TTL, log)

	// Booking flow
	coordinator := booking.NewCoordinator(api, walletStore, log)
	wizards := booking.NewManager(api, walletStore, coordinator, log)

	// Transaction ledger polling
	poller := ledger.NewPoller(api, cfg.Ledger.PollInterval, log)
	defer poller.Close()

	lifecycleSvc := lifecycle.NewService(api, walletStore, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// http handler
	h := handler.NewHandler(api, sessions, wizards, walletStore, poller, lifecycleSvc, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
