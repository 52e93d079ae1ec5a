package player

// Faction identifies one of the three groups that keep a view of the player.
type Faction uint8

const (
	Authorities Faction = iota // Police, officials, the law
	Citizens                   // Ordinary people
	Underworld                 // Criminals
)

// NumFactions is the number of tracked factions.
const NumFactions = 3

// Reputation bounds.
const (
	MinReputation     = 0
	MaxReputation     = 100
	InitialReputation = 50
)

func (f Faction) String() string {
	switch f {
	case Authorities:
		return "authorities"
	case Citizens:
		return "citizens"
	case Underworld:
		return "underworld"
	default:
		return "unknown"
	}
}

// Reputation holds per-faction standing, each in [0, 100].
type Reputation struct {
	Authorities int `json:"authorities"`
	Citizens    int `json:"citizens"`
	Underworld  int `json:"underworld"`
}

// ReputationDelta is a change to apply to each faction's standing.
type ReputationDelta struct {
	Authorities int
	Citizens    int
	Underworld  int
}

// IsZero reports whether the delta changes nothing.
func (d ReputationDelta) IsZero() bool {
	return d == ReputationDelta{}
}

// Of returns the standing with faction f.
func (r Reputation) Of(f Faction) int {
	switch f {
	case Authorities:
		return r.Authorities
	case Citizens:
		return r.Citizens
	case Underworld:
		return r.Underworld
	default:
		return 0
	}
}

func (r *Reputation) apply(d ReputationDelta) {
	r.Authorities = clamp(r.Authorities+d.Authorities, MinReputation, MaxReputation)
	r.Citizens = clamp(r.Citizens+d.Citizens, MinReputation, MaxReputation)
	r.Underworld = clamp(r.Underworld+d.Underworld, MinReputation, MaxReputation)
}
