package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tailscale.com/tsnet"

	"github.com/claude/ironlog/internal/catalog"
	"github.com/claude/ironlog/internal/config"
	"github.com/claude/ironlog/internal/server"
	"github.com/claude/ironlog/internal/session"
	"github.com/claude/ironlog/internal/storage"
	"github.com/claude/ironlog/internal/workout"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// logNotifier stands in for device haptics: each trigger is logged so
// a client polling the session can mirror it.
type logNotifier struct {
	log *slog.Logger
}

func (n logNotifier) SetCompleted()    { n.log.Info("haptic", "event", "set_completed") }
func (n logNotifier) RestExpired()     { n.log.Info("haptic", "event", "rest_expired") }
func (n logNotifier) WorkoutFinished() { n.log.Info("haptic", "event", "workout_finished") }

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("IronLog starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Open store and run migrations
	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		log.Error("failed to open database", "path", cfg.Database.Path, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	// Seed the built-in exercise catalog (idempotent)
	ctx := context.Background()
	if err := db.SeedExercises(ctx, catalog.Exercises()); err != nil {
		log.Error("exercise seed failed", "error", err)
		os.Exit(1)
	}
	log.Info("exercise catalog seeded", "count", len(catalog.Exercises()))

	// Wire the session layer
	notify := logNotifier{log: log}
	manager := session.NewManager(cfg.Workout.DefaultRestSeconds, cfg.Workout.DefaultSetCount, notify)
	committer := workout.NewCommitter(db, log)

	srv := server.New(db, manager, committer, notify, cfg.Auth.APIKey, log)

	// Drive the rest timer at one tick per second
	tickerDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				manager.TickRest()
			case <-tickerDone:
				return
			}
		}
	}()

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)
	close(tickerDone)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
