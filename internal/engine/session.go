// Package engine sequences the seven events, offers the between-event
// controls, and renders the ending.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/talgya/utopian-sands/internal/alignment"
	"github.com/talgya/utopian-sands/internal/console"
	"github.com/talgya/utopian-sands/internal/entropy"
	"github.com/talgya/utopian-sands/internal/persistence"
	"github.com/talgya/utopian-sands/internal/player"
	"github.com/talgya/utopian-sands/internal/story"
)

// Console is the terminal surface the engine talks to.
type Console interface {
	Show(lines ...string)
	Choose(options []string) (int, error)
	Ask(prompt string) (string, error)
}

// Store persists sessions between runs.
type Store interface {
	Save(ctx context.Context, snap persistence.Snapshot) error
	Load(ctx context.Context, slot string) (persistence.Snapshot, error)
}

// Status is where a session stands.
type Status int

const (
	StatusReady     Status = iota // More events to play
	StatusGameOver                // Health reached zero
	StatusCompleted               // All events played, ending available
	StatusSuspended               // Player quit after saving
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusGameOver:
		return "game over"
	case StatusCompleted:
		return "completed"
	case StatusSuspended:
		return "suspended"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

const (
	bannerWidth = 50
	menuWidth   = 30
	endingWidth = 60
)

// Options configures a Session. Events defaults to story.Events().
type Options struct {
	Console Console
	Store   Store
	RNG     entropy.Source
	Events  []*story.Event
	Slot    string
}

// Session is one playthrough: a player, the index of the next event to
// run, and the collaborators needed to run it.
type Session struct {
	ID     uuid.UUID
	Player *player.State
	Cursor int
	Status Status

	slot   string
	events []*story.Event
	ui     Console
	store  Store
	rng    entropy.Source
	log    *slog.Logger
}

// NewSession creates a session positioned at cursor. The cursor may equal
// the number of events, meaning every event has been played.
func NewSession(id uuid.UUID, p *player.State, cursor int, opts Options) (*Session, error) {
	if p == nil {
		return nil, errors.New("new session: nil player")
	}
	events := opts.Events
	if events == nil {
		events = story.Events()
	}
	if cursor < 0 || cursor > len(events) {
		return nil, fmt.Errorf("new session: cursor %d outside 0..%d", cursor, len(events))
	}
	if opts.RNG == nil {
		opts.RNG = entropy.Crypto{}
	}
	return &Session{
		ID:     id,
		Player: p,
		Cursor: cursor,
		Status: StatusReady,
		slot:   opts.Slot,
		events: events,
		ui:     opts.Console,
		store:  opts.Store,
		rng:    opts.RNG,
		log:    slog.With("session", id.String()),
	}, nil
}

// Run plays events until the session ends, dies, or is suspended, offering
// the control menu between events.
func (s *Session) Run(ctx context.Context) error {
	for s.Status == StatusReady {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(ctx); err != nil {
			return err
		}
		if s.Status != StatusReady {
			break
		}
		if err := s.control(ctx); err != nil {
			return err
		}
	}
	s.log.Info("session finished", "status", s.Status, "cursor", s.Cursor)
	return nil
}

// Step plays the event at the cursor. A dead player or an exhausted cursor
// ends the session without playing anything.
func (s *Session) Step(ctx context.Context) error {
	if s.Status != StatusReady {
		return nil
	}
	if s.checkOver() {
		return nil
	}

	s.ui.Show("", fmt.Sprintf("[Event %d of %d]", s.Cursor+1, len(s.events)))
	ev := s.events[s.Cursor]
	if err := s.play(ev); err != nil {
		return fmt.Errorf("event %d: %w", ev.ID, err)
	}
	s.Cursor++
	s.log.Debug("event played", "event", ev.ID, "cursor", s.Cursor,
		"law_chaos", s.Player.LawChaos, "good_evil", s.Player.GoodEvil, "health", s.Player.Health)

	s.checkOver()
	return nil
}

func (s *Session) checkOver() bool {
	switch {
	case s.Player.Dead():
		s.ui.Show("", "GAME OVER", "Your journey has come to an unfortunate end...")
		s.Status = StatusGameOver
	case s.Cursor >= len(s.events):
		s.Status = StatusCompleted
	default:
		return false
	}
	return true
}

func (s *Session) play(ev *story.Event) error {
	s.ui.Show("", strings.Repeat("=", bannerWidth), center(ev.Title, bannerWidth))
	for _, line := range ev.Tagline {
		s.ui.Show(center(line, bannerWidth))
	}
	s.ui.Show(strings.Repeat("=", bannerWidth))

	for st := ev.Root; st != nil; {
		if len(st.Intro) > 0 {
			s.ui.Show("")
			s.ui.Show(st.Intro...)
		}

		labels := make([]string, len(st.Options))
		for i, opt := range st.Options {
			labels[i] = opt.Label
		}
		choice, err := s.ui.Choose(labels)
		if err != nil {
			return err
		}
		if choice < 1 || choice > len(st.Options) {
			return fmt.Errorf("choice %d outside 1..%d", choice, len(st.Options))
		}
		if st.LogFmt != "" {
			s.Player.LogChoice(fmt.Sprintf(st.LogFmt, choice))
		}

		opt := &st.Options[choice-1]
		out := story.Apply(s.Player, &opt.Result, s.rng)
		if len(out.Narration) > 0 {
			s.ui.Show("")
			s.ui.Show(out.Narration...)
		}
		if out.Spent != "" {
			s.log.Debug("item spent", "event", ev.ID, "item", out.Spent)
		}
		st = opt.Next
	}

	s.showStats()
	return nil
}

func (s *Session) showStats() {
	s.ui.Show(
		"",
		strings.Repeat("-", 40),
		"CURRENT STATS",
		strings.Repeat("-", 40),
		fmt.Sprintf("Health: %d%%", s.Player.Health),
		fmt.Sprintf("Guilt: %d%%", s.Player.Guilt),
	)
}

func (s *Session) control(ctx context.Context) error {
	s.ui.Show("", strings.Repeat("-", menuWidth), "Options: [c]ontinue, [s]ave, [q]uit, [v]iew stats")
	answer, err := s.ui.Ask("Choose: ")
	if err != nil {
		return err
	}

	switch console.ParseControl(answer) {
	case console.ControlSave:
		s.Save(ctx)
	case console.ControlQuit:
		s.ui.Show("", "Game saved. Come back soon to continue your journey!")
		s.Save(ctx)
		s.Status = StatusSuspended
	case console.ControlStats:
		s.showStats()
		if _, err := s.ui.Ask("\nPress Enter to continue..."); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the session to its slot. Failures are reported to the player
// and logged but never end the session.
func (s *Session) Save(ctx context.Context) bool {
	if s.store == nil {
		s.ui.Show("", "Error saving game.")
		return false
	}
	err := s.store.Save(ctx, persistence.Snapshot{
		Slot:      s.slot,
		SessionID: s.ID,
		Player:    s.Player.Clone(),
		Cursor:    s.Cursor,
	})
	if err != nil {
		s.log.Error("save failed", "slot", s.slot, "error", err)
		s.ui.Show("", "Error saving game.")
		return false
	}
	s.log.Info("game saved", "slot", s.slot, "cursor", s.Cursor)
	s.ui.Show("", "Game saved successfully!")
	return true
}

// Ending resolves the final alignment and renders the destiny screen. It
// returns an error unless every event has been played.
func (s *Session) Ending() (alignment.Resolution, error) {
	if s.Status != StatusCompleted {
		return alignment.Resolution{}, fmt.Errorf("ending: session is %s", s.Status)
	}
	res := alignment.Resolve(s.Player)
	p := s.Player
	rule := strings.Repeat("=", endingWidth)

	s.ui.Show(
		"", rule, "FINAL DESTINY", rule,
		"", fmt.Sprintf("%s's Journey Summary:", p.Name),
		fmt.Sprintf("Final Health: %d%%", p.Health),
		fmt.Sprintf("Final Guilt: %d%%", p.Guilt),
		fmt.Sprintf("Choices Made: %d", len(p.ChoiceLog)),
		"", "Final Reputation:",
		fmt.Sprintf("  Authorities: %d/100", p.Reputation.Authorities),
		fmt.Sprintf("  Citizens: %d/100", p.Reputation.Citizens),
		fmt.Sprintf("  Underworld: %d/100", p.Reputation.Underworld),
		"", "Alignment Axes:",
		fmt.Sprintf("  Law/Chaos: %d (Law < 0 < Chaos)", p.LawChaos),
		fmt.Sprintf("  Good/Evil: %d (Good < 0 < Evil)", p.GoodEvil),
		"", rule,
		"YOUR FINAL ALIGNMENT: "+res.Label,
		rule,
		res.Title,
		"",
	)
	s.ui.Show(strings.Split(res.Description, "\n")...)
	if res.Tendency != "" {
		s.ui.Show("", fmt.Sprintf("Your journey showed a tendency toward %s choices.", res.Tendency))
	}
	s.ui.Show("", rule, "Your story for today has reached its conclusion...", "Thank you for playing!")

	s.log.Info("ending resolved", "label", res.Label, "most_common", res.MostCommon,
		"law_chaos", p.LawChaos, "good_evil", p.GoodEvil)
	return res, nil
}

func center(text string, width int) string {
	pad := (width - len(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
