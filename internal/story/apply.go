package story

import (
	"log/slog"

	"github.com/talgya/utopian-sands/internal/entropy"
	"github.com/talgya/utopian-sands/internal/player"
)

// Outcome reports what applying a consequence did, for display and logging.
type Outcome struct {
	Narration []string
	Tags      []player.Tag
	Draws     []Draw
	Spent     string // Item consumed by a Spend, if any
}

// Draw records one randomized branch decision.
type Draw struct {
	Chance float64
	Value  float64
	Hit    bool // Value < Chance
}

// Apply mutates s according to c and returns what happened. rng is only
// consulted by randomized branches.
func Apply(s *player.State, c *Consequence, rng entropy.Source) Outcome {
	var out Outcome
	apply(s, c, rng, &out)
	return out
}

func apply(s *player.State, c *Consequence, rng entropy.Source, out *Outcome) {
	if c == nil {
		return
	}

	s.ApplyAlignment(c.Law, c.Good, c.Tag)
	if c.Tag.Valid() {
		out.Tags = append(out.Tags, c.Tag)
	}
	if !c.Reputation.IsZero() {
		s.ApplyReputation(c.Reputation)
	}

	out.Narration = append(out.Narration, c.Narration...)

	if c.Fatal {
		s.Kill()
	} else if c.Health != 0 {
		s.AdjustHealth(c.Health)
	}
	if c.Guilt != 0 {
		s.AdjustGuilt(c.Guilt)
	}
	for _, item := range c.Gain {
		s.AddItem(item)
	}

	if c.Spend != nil {
		applySpend(s, c.Spend, rng, out)
	}
	if c.Branch != nil {
		applyBranch(s, c.Branch, rng, out)
	}
}

func applySpend(s *player.State, sp *Spend, rng entropy.Source, out *Outcome) {
	for _, item := range sp.Items {
		if s.RemoveItem(item) {
			out.Spent = item
			out.Narration = append(out.Narration, sp.Narration...)
			return
		}
	}
	apply(s, sp.Otherwise, rng, out)
}

func applyBranch(s *player.State, b *Branch, rng entropy.Source, out *Outcome) {
	var pass bool
	if b.Gate != nil {
		pass = s.Reputation.Of(b.Gate.Faction) > b.Gate.Above
	} else {
		v := rng.Float()
		pass = v < b.Chance
		out.Draws = append(out.Draws, Draw{Chance: b.Chance, Value: v, Hit: pass})
		slog.Debug("randomized branch", "chance", b.Chance, "value", v, "hit", pass)
	}

	if pass {
		apply(s, b.Then, rng, out)
	} else {
		apply(s, b.Else, rng, out)
	}
}
