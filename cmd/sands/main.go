// Command sands runs Utopian Sands, a seven-event text adventure that
// reveals the player's moral alignment.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/utopian-sands/internal/config"
	"github.com/talgya/utopian-sands/internal/console"
	"github.com/talgya/utopian-sands/internal/engine"
	"github.com/talgya/utopian-sands/internal/entropy"
	"github.com/talgya/utopian-sands/internal/persistence"
	"github.com/talgya/utopian-sands/internal/story"
)

var version = "dev"

func main() {
	fs := flag.NewFlagSet("sands", flag.ContinueOnError)
	cfg, err := config.Parse(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if cfg.ShowVersion {
		fmt.Println("sands", version)
		return
	}

	// Logs go to stderr; stdout carries the story.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	if err := story.Validate(story.Events()); err != nil {
		slog.Error("story content is invalid", "error", err)
		os.Exit(1)
	}

	// ── Database ──────────────────────────────────────────────────────
	if dir := filepath.Dir(cfg.SavePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Error("failed to create save directory", "dir", dir, "error", err)
			os.Exit(1)
		}
	}
	db, err := persistence.Open(cfg.SavePath)
	if err != nil {
		slog.Error("failed to open save file", "path", cfg.SavePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("save file opened", "path", cfg.SavePath, "slot", cfg.Slot)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.ListSlots {
		if err := listSlots(ctx, db); err != nil {
			slog.Error("failed to list slots", "error", err)
			os.Exit(1)
		}
		return
	}
	if cfg.Reset {
		if err := db.Delete(ctx, cfg.Slot); err != nil {
			slog.Error("failed to reset slot", "slot", cfg.Slot, "error", err)
			os.Exit(1)
		}
		slog.Info("slot reset", "slot", cfg.Slot)
	}

	// ── Signals ───────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, exiting", "signal", sig)
		cancel()
		db.Close()
		fmt.Println()
		os.Exit(130)
	}()

	// ── Play ──────────────────────────────────────────────────────────
	game := engine.NewGame(
		console.NewTerminal(cfg.TypeDelay),
		db,
		entropy.New(cfg.Seed),
		cfg.Slot,
	)
	if err := game.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("game ended with error", "error", err)
		db.Close()
		os.Exit(1)
	}

	if err := db.SaveMeta("last_played", time.Now().UTC().Format(time.RFC3339)); err != nil {
		slog.Warn("failed to record last played time", "error", err)
	}
}

func listSlots(ctx context.Context, db *persistence.DB) error {
	slots, err := db.Slots(ctx)
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		fmt.Println("No saved games.")
		return nil
	}
	last, _ := db.GetMeta("last_slot")
	for _, slot := range slots {
		marker := " "
		if slot == last {
			marker = "*"
		}
		snap, err := db.Load(ctx, slot)
		if err != nil {
			fmt.Printf("%s %-12s (unreadable: %v)\n", marker, slot, err)
			continue
		}
		fmt.Printf("%s %-12s %s, %d of %d events, saved %s\n", marker, slot,
			snap.Player.Name, snap.Cursor, len(story.Events()), humanize.Time(snap.SavedAt))
	}
	return nil
}
