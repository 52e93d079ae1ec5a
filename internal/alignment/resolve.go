// Package alignment reduces a finished run to one of nine endings.
package alignment

import (
	"fmt"
	"strings"

	"github.com/talgya/utopian-sands/internal/player"
)

// Threshold is the axis magnitude a value must exceed to leave "Neutral".
const Threshold = 33

// Axis qualifiers.
const (
	Lawful  = "Lawful"
	Chaotic = "Chaotic"
	Good    = "Good"
	Evil    = "Evil"
	Neutral = "Neutral"
)

// TrueNeutralLabel is used when both axes classify as Neutral.
const TrueNeutralLabel = "True Neutral"

// Resolution is the classified end state of a run.
type Resolution struct {
	Law   string // Lawful, Neutral or Chaotic
	Moral string // Good, Neutral or Evil
	Label string // e.g. "Lawful Good", "True Neutral"

	Outcome

	MostCommon player.Tag
	// Tendency names the most common choice tag when it disagrees with
	// Label. Empty otherwise.
	Tendency string
}

// ClassifyLaw maps the law/chaos axis to its qualifier.
func ClassifyLaw(lawChaos int) string {
	switch {
	case lawChaos < -Threshold:
		return Lawful
	case lawChaos > Threshold:
		return Chaotic
	default:
		return Neutral
	}
}

// ClassifyMoral maps the good/evil axis to its qualifier.
func ClassifyMoral(goodEvil int) string {
	switch {
	case goodEvil < -Threshold:
		return Good
	case goodEvil > Threshold:
		return Evil
	default:
		return Neutral
	}
}

// Classify combines both axes into one of the nine labels.
func Classify(lawChaos, goodEvil int) (law, moral, label string) {
	law = ClassifyLaw(lawChaos)
	moral = ClassifyMoral(goodEvil)
	if law == Neutral && moral == Neutral {
		return law, moral, TrueNeutralLabel
	}
	return law, moral, law + " " + moral
}

// Resolve classifies s. It panics if the label has no ending, which can only
// happen if the outcome table is edited inconsistently.
func Resolve(s *player.State) Resolution {
	law, moral, label := Classify(s.LawChaos, s.GoodEvil)

	outcome, ok := Lookup(label)
	if !ok {
		panic(fmt.Sprintf("alignment: no ending for label %q", label))
	}

	mostCommon := s.Tally.MostCommon()
	res := Resolution{
		Law:        law,
		Moral:      moral,
		Label:      label,
		Outcome:    outcome,
		MostCommon: mostCommon,
	}
	if mostCommon.String() != labelKey(label) {
		res.Tendency = mostCommon.Title()
	}
	return res
}

// labelKey turns "Lawful Good" into "lawful_good".
func labelKey(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}
