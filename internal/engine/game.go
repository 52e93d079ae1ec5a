package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/utopian-sands/internal/console"
	"github.com/talgya/utopian-sands/internal/entropy"
	"github.com/talgya/utopian-sands/internal/persistence"
	"github.com/talgya/utopian-sands/internal/player"
	"github.com/talgya/utopian-sands/internal/story"
)

// Game is the top-level loop: title screen, main menu, character creation
// or resume, the session itself, and the end-of-run prompts.
type Game struct {
	ui    Console
	store Store
	rng   entropy.Source
	slot  string

	// NewEvents builds a fresh event list per session.
	NewEvents func() []*story.Event
	// NewID mints session IDs.
	NewID func() uuid.UUID
}

// NewGame wires a game to its console, save store and random source.
func NewGame(ui Console, store Store, rng entropy.Source, slot string) *Game {
	return &Game{
		ui:        ui,
		store:     store,
		rng:       rng,
		slot:      slot,
		NewEvents: story.Events,
		NewID:     uuid.New,
	}
}

// Run plays until the player quits, dies, suspends, declines another run,
// or input ends. End of input is not an error.
func (g *Game) Run(ctx context.Context) error {
	for {
		again, err := g.playOnce(ctx)
		if errors.Is(err, console.ErrClosed) {
			slog.Info("input closed, exiting")
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (g *Game) playOnce(ctx context.Context) (bool, error) {
	g.title()
	answer, err := g.ui.Ask("\nEnter choice (1-3): ")
	if err != nil {
		return false, err
	}

	var sess *Session
	switch console.ParseMainMenu(answer) {
	case console.MenuQuit:
		g.ui.Show("", "Goodbye.")
		return false, nil
	case console.MenuLoadGame:
		sess = g.resume(ctx)
	}
	if sess == nil {
		if sess, err = g.create(); err != nil {
			return false, err
		}
	}

	if err := sess.Run(ctx); err != nil {
		return false, err
	}
	if sess.Status != StatusCompleted {
		return false, nil
	}

	if _, err := sess.Ending(); err != nil {
		return false, err
	}
	g.ui.Show("", "Would you like to save your final results?")
	answer, err = g.ui.Ask("")
	if err != nil {
		return false, err
	}
	if console.Affirmative(answer) {
		sess.Save(ctx)
	}

	g.ui.Show("", "Play again to explore different alignments!")
	answer, err = g.ui.Ask("")
	if err != nil {
		return false, err
	}
	return console.Affirmative(answer), nil
}

func (g *Game) title() {
	rule := strings.Repeat("=", endingWidth)
	g.ui.Show(
		rule,
		center("UTOPIAN SANDS", endingWidth),
		center(`"play god in your personal sandbox"`, endingWidth),
		rule,
		"",
		"A text-based adventure that reveals your true moral alignment.",
		"Based on the classic ninefold alignment system from tabletop RPGs.",
		"",
		"There are no right or wrong answers:",
		"",
		"Only your truth.",
		"",
		strings.Repeat("-", menuWidth),
		"MAIN MENU",
		strings.Repeat("-", menuWidth),
		"[1] Start New Game",
		"[2] Load Saved Game",
		"[3] Quit",
	)
}

// resume loads the configured slot. Any failure is reported and yields nil
// so the caller falls back to a new character.
func (g *Game) resume(ctx context.Context) *Session {
	if g.store == nil {
		g.ui.Show("", "No saved game found.")
		return nil
	}
	snap, err := g.store.Load(ctx, g.slot)
	switch {
	case errors.Is(err, persistence.ErrNoSave):
		g.ui.Show("", "No saved game found.")
		return nil
	case err != nil:
		slog.Error("load failed", "slot", g.slot, "error", err)
		g.ui.Show("", "Error loading game.")
		return nil
	}

	sess, err := NewSession(snap.SessionID, snap.Player, snap.Cursor, g.options())
	if err != nil {
		slog.Error("load failed", "slot", g.slot, "error", err)
		g.ui.Show("", "Error loading game.")
		return nil
	}
	g.ui.Show("", "Game loaded successfully!")
	if !snap.SavedAt.IsZero() {
		g.ui.Show(fmt.Sprintf("Saved %s, %s has played %d of %d events.",
			humanize.Time(snap.SavedAt), snap.Player.Name, snap.Cursor, len(sess.events)))
	}
	sess.log.Info("game loaded", "slot", g.slot, "cursor", snap.Cursor)
	return sess
}

func (g *Game) create() (*Session, error) {
	g.ui.Show("", strings.Repeat("-", menuWidth), "CHARACTER CREATION", strings.Repeat("-", menuWidth))
	name, err := g.ui.Ask("Enter your name: ")
	if err != nil {
		return nil, err
	}
	p := player.New(strings.TrimSpace(name))

	g.ui.Show(
		"", fmt.Sprintf("Welcome, %s.", p.Name),
		"", "Remember: There are no 'right' or 'wrong' choices.",
		"Only choices that reveal who you truly are.",
	)
	if _, err := g.ui.Ask("\nPress Enter to begin your journey..."); err != nil {
		return nil, err
	}

	sess, err := NewSession(g.NewID(), p, 0, g.options())
	if err != nil {
		return nil, err
	}
	sess.log.Info("new game", "name", p.Name)
	return sess, nil
}

func (g *Game) options() Options {
	return Options{
		Console: g.ui,
		Store:   g.store,
		RNG:     g.rng,
		Events:  g.NewEvents(),
		Slot:    g.slot,
	}
}
