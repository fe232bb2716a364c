package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dayaniravi123/meduber/internal/api"
	"github.com/dayaniravi123/meduber/internal/config"
	"github.com/dayaniravi123/meduber/internal/database"
	"github.com/dayaniravi123/meduber/internal/logger"
	"github.com/dayaniravi123/meduber/internal/monitoring"
	"github.com/dayaniravi123/meduber/internal/services"
	"github.com/dayaniravi123/meduber/internal/session"
	"github.com/dayaniravi123/meduber/internal/store"
	"github.com/dayaniravi123/meduber/internal/websocket"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}
	if err := database.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed provider directory")
	}

	// Set up the durable stores and the session manager
	prefs := store.NewSQLiteKeyValueStore(db)
	creds := store.NewSQLiteCredentialStore(db)
	sessionManager := session.NewManager(creds, prefs)

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Every session state change is pushed to connected clients.
	sessionManager.Subscribe(func(state session.State) {
		hub.BroadcastMessage("session.update", state)
	})

	// Restore the session from durable storage before serving requests.
	sessionManager.Bootstrap(context.Background())

	// Set up services
	eventService := services.NewEventService(db)
	directoryService := services.NewDirectoryService(db)
	selectionService := services.NewSelectionService(prefs, sessionManager, eventService)

	// Set up and run the background stats updater
	statUpdater := monitoring.NewStatUpdater(hub)
	go statUpdater.Run()

	// Set up and run the maintenance scheduler
	maintenance, err := monitoring.NewMaintenance(eventService, cfg.MaintenanceSchedule, cfg.EventRetentionDays)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid maintenance schedule")
	}
	go maintenance.Run()

	// Set up router
	router := api.NewRouter(hub, sessionManager, directoryService, selectionService, eventService, statUpdater, cfg.AllowedOrigin)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	statUpdater.Stop()
	maintenance.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
