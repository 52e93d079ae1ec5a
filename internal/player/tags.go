// Package player provides the player data model: the two alignment axes,
// the nine-bucket choice tally, faction reputation, health, guilt and
// inventory, plus the invariant-preserving mutators that consequences use.
package player

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tag is one of the nine specific-alignment buckets a choice can be tagged with.
type Tag uint8

// The declaration order is the tie-break order when picking the most common
// tag. Do not reorder. The zero value is NoTag.
const (
	NoTag Tag = iota
	LawfulGood
	NeutralGood
	ChaoticGood
	LawfulNeutral
	TrueNeutral
	ChaoticNeutral
	LawfulEvil
	NeutralEvil
	ChaoticEvil
)

// NumTags is the number of specific-alignment buckets.
const NumTags = 9

var tagNames = [NumTags]string{
	"lawful_good",
	"neutral_good",
	"chaotic_good",
	"lawful_neutral",
	"true_neutral",
	"chaotic_neutral",
	"lawful_evil",
	"neutral_evil",
	"chaotic_evil",
}

// AllTags lists every tag in canonical order.
func AllTags() []Tag {
	tags := make([]Tag, NumTags)
	for i := range tags {
		tags[i] = Tag(i + 1)
	}
	return tags
}

// Valid reports whether t is one of the nine canonical buckets.
func (t Tag) Valid() bool {
	return t >= LawfulGood && t <= ChaoticEvil
}

// String returns the snake_case bucket key, e.g. "lawful_good".
func (t Tag) String() string {
	if t == NoTag {
		return "none"
	}
	if !t.Valid() {
		return fmt.Sprintf("tag(%d)", uint8(t))
	}
	return tagNames[t-1]
}

// Title returns the display form, e.g. "Lawful Good".
func (t Tag) Title() string {
	words := strings.Split(t.String(), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// ParseTag maps a snake_case bucket key back to its Tag.
func ParseTag(s string) (Tag, error) {
	for i, name := range tagNames {
		if name == s {
			return Tag(i + 1), nil
		}
	}
	return NoTag, fmt.Errorf("unknown alignment tag %q", s)
}

// Tally counts how many resolved choices were tagged with each bucket.
// A fixed array keeps all nine keys present at all times.
type Tally [NumTags]int

// Count returns the bucket count for tag, or 0 for NoTag.
func (t Tally) Count(tag Tag) int {
	if !tag.Valid() {
		return 0
	}
	return t[tag-1]
}

func (t *Tally) add(tag Tag) {
	if tag.Valid() {
		t[tag-1]++
	}
}

// Total returns the sum across all buckets.
func (t Tally) Total() int {
	sum := 0
	for _, n := range t {
		sum += n
	}
	return sum
}

// MostCommon returns the bucket with the highest count. Ties go to the
// bucket declared first.
func (t Tally) MostCommon() Tag {
	best := 0
	for i := 1; i < NumTags; i++ {
		if t[i] > t[best] {
			best = i
		}
	}
	return Tag(best + 1)
}

// MarshalJSON encodes the tally as an object keyed by bucket name.
func (t Tally) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, NumTags)
	for i, n := range t {
		m[tagNames[i]] = n
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes an object keyed by bucket name. Unknown keys and
// negative counts are rejected.
func (t *Tally) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out Tally
	for k, n := range m {
		tag, err := ParseTag(k)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("negative count %d for %s", n, k)
		}
		out[tag-1] = n
	}
	*t = out
	return nil
}
