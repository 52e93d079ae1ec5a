package player

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Axis bounds. Negative law/chaos is lawful, positive is chaotic. Negative
// good/evil is good, positive is evil.
const (
	MinAxis = -100
	MaxAxis = 100
)

// Starting values for a fresh player.
const (
	InitialHealth   = 100
	DefaultName     = "Stranger"
	DefaultLocation = "Utopian Society"
)

// State is everything a run accumulates about the player. One instance is
// owned by exactly one session.
type State struct {
	Name     string `json:"name"`
	Location string `json:"location"`

	// Alignment axes, each in [-100, 100].
	LawChaos int `json:"law_chaos"`
	GoodEvil int `json:"good_evil"`

	// Per-choice bucket counts.
	Tally Tally `json:"choices"`

	Reputation Reputation `json:"reputation"`

	// Health is not clamped above; the run ends once it reaches 0 or less.
	Health int `json:"health"`
	// Guilt is unbounded in both directions.
	Guilt int `json:"guilt"`

	Inventory []string `json:"inventory"`
	ChoiceLog []string `json:"choices_history"`
}

// New creates a fresh player. An empty name becomes DefaultName.
func New(name string) *State {
	if name == "" {
		name = DefaultName
	}
	return &State{
		Name:     name,
		Location: DefaultLocation,
		Reputation: Reputation{
			Authorities: InitialReputation,
			Citizens:    InitialReputation,
			Underworld:  InitialReputation,
		},
		Health:    InitialHealth,
		Inventory: []string{},
		ChoiceLog: []string{},
	}
}

// ApplyAlignment shifts both axes, clamps them, and increments the tag's
// bucket unless tag is NoTag.
func (s *State) ApplyAlignment(lawDelta, goodDelta int, tag Tag) {
	s.LawChaos = clamp(s.LawChaos+lawDelta, MinAxis, MaxAxis)
	s.GoodEvil = clamp(s.GoodEvil+goodDelta, MinAxis, MaxAxis)
	s.Tally.add(tag)
}

// ApplyReputation shifts each faction's standing and clamps to [0, 100].
func (s *State) ApplyReputation(d ReputationDelta) {
	s.Reputation.apply(d)
}

// AdjustHealth adds delta to health. The result may exceed 100 or drop below 0.
func (s *State) AdjustHealth(delta int) {
	s.Health += delta
}

// Kill sets health to exactly 0.
func (s *State) Kill() {
	s.Health = 0
}

// AdjustGuilt adds delta to guilt.
func (s *State) AdjustGuilt(delta int) {
	s.Guilt += delta
}

// Dead reports whether the run must end.
func (s *State) Dead() bool {
	return s.Health <= 0
}

// AddItem appends an item to the inventory.
func (s *State) AddItem(item string) {
	s.Inventory = append(s.Inventory, item)
}

// HasItem reports whether the inventory holds at least one item.
func (s *State) HasItem(item string) bool {
	return slices.Contains(s.Inventory, item)
}

// RemoveItem drops the first occurrence of item. It returns false, leaving
// the inventory untouched, when the item is absent.
func (s *State) RemoveItem(item string) bool {
	i := slices.Index(s.Inventory, item)
	if i < 0 {
		return false
	}
	s.Inventory = slices.Delete(s.Inventory, i, i+1)
	return true
}

// LogChoice records a resolved choice.
func (s *State) LogChoice(entry string) {
	s.ChoiceLog = append(s.ChoiceLog, entry)
}

// TallyTotal returns the number of tags applied so far.
func (s *State) TallyTotal() int {
	return s.Tally.Total()
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	c := *s
	c.Inventory = slices.Clone(s.Inventory)
	c.ChoiceLog = slices.Clone(s.ChoiceLog)
	if c.Inventory == nil {
		c.Inventory = []string{}
	}
	if c.ChoiceLog == nil {
		c.ChoiceLog = []string{}
	}
	return &c
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
