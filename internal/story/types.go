// Package story holds the authored events as declarative data and the single
// interpreter that applies a chosen option's consequence to a player.
package story

import (
	"github.com/talgya/utopian-sands/internal/player"
)

// Event is one authored story beat.
type Event struct {
	ID      int
	Title   string
	Tagline []string // Subtitle lines under the banner
	Root    *Stage
}

// Stage is a single menu within an event. Events 4 and 7 chain two stages:
// the first-stage option picks which second-stage table is shown.
type Stage struct {
	Intro   []string
	LogFmt  string // Choice-log entry, %d is the 1-based choice; empty logs nothing
	Options []Option
}

// Option is one labeled menu entry.
type Option struct {
	Label  string
	Result Consequence
	Next   *Stage
}

// Consequence is the effect record for one option. Fields are applied in
// declaration order by Apply.
type Consequence struct {
	Law  int
	Good int
	Tag  player.Tag

	Reputation player.ReputationDelta

	Narration []string

	Health int
	Fatal  bool // Sets health to 0 instead of adding Health
	Guilt  int

	Gain []string

	Spend  *Spend
	Branch *Branch
}

// Spend consumes the first item of Items found in the inventory. When none
// is held, Otherwise applies and the inventory is left untouched.
type Spend struct {
	Items     []string
	Narration []string
	Otherwise *Consequence
}

// Branch picks between two follow-up consequences. With a Gate set, the
// gate decides; otherwise one uniform draw is compared against Chance.
type Branch struct {
	Chance float64
	Gate   *Gate
	Then   *Consequence
	Else   *Consequence
}

// Gate passes when the player's standing with Faction is strictly above Above.
type Gate struct {
	Faction player.Faction
	Above   int
}

// Randomized reports whether applying the branch consumes a random draw.
func (b *Branch) Randomized() bool {
	return b != nil && b.Gate == nil
}
