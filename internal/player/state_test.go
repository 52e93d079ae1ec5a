package player

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	s := New("")

	assert.Equal(t, DefaultName, s.Name)
	assert.Equal(t, DefaultLocation, s.Location)
	assert.Equal(t, 0, s.LawChaos)
	assert.Equal(t, 0, s.GoodEvil)
	assert.Equal(t, 100, s.Health)
	assert.Equal(t, 0, s.Guilt)
	assert.Equal(t, Reputation{Authorities: 50, Citizens: 50, Underworld: 50}, s.Reputation)
	assert.Equal(t, 0, s.TallyTotal())
	assert.Empty(t, s.Inventory)
	assert.Empty(t, s.ChoiceLog)
}

func TestApplyAlignmentClamps(t *testing.T) {
	s := New("Ada")
	s.ApplyAlignment(90, -90, ChaoticGood)
	s.ApplyAlignment(40, -40, ChaoticGood)

	assert.Equal(t, 100, s.LawChaos)
	assert.Equal(t, -100, s.GoodEvil)
	assert.Equal(t, 2, s.Tally.Count(ChaoticGood))

	s.ApplyAlignment(-250, 250, NoTag)
	assert.Equal(t, -100, s.LawChaos)
	assert.Equal(t, 100, s.GoodEvil)
	assert.Equal(t, 2, s.TallyTotal(), "NoTag must not increment any bucket")
}

func TestApplyReputationClamps(t *testing.T) {
	s := New("Ada")
	s.ApplyReputation(ReputationDelta{Authorities: -80, Citizens: 70, Underworld: 10})

	assert.Equal(t, 0, s.Reputation.Authorities)
	assert.Equal(t, 100, s.Reputation.Citizens)
	assert.Equal(t, 60, s.Reputation.Underworld)
	assert.Equal(t, 60, s.Reputation.Of(Underworld))
}

func TestRandomDeltasStayInBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	s := New("Ada")
	tagged := 0

	for i := 0; i < 2000; i++ {
		tag := NoTag
		if rng.IntN(4) > 0 {
			tag = AllTags()[rng.IntN(NumTags)]
			tagged++
		}
		before := s.TallyTotal()
		s.ApplyAlignment(rng.IntN(121)-60, rng.IntN(121)-60, tag)
		s.ApplyReputation(ReputationDelta{
			Authorities: rng.IntN(81) - 40,
			Citizens:    rng.IntN(81) - 40,
			Underworld:  rng.IntN(81) - 40,
		})

		require.GreaterOrEqual(t, s.TallyTotal(), before)
		require.True(t, s.LawChaos >= MinAxis && s.LawChaos <= MaxAxis, "law/chaos out of range: %d", s.LawChaos)
		require.True(t, s.GoodEvil >= MinAxis && s.GoodEvil <= MaxAxis, "good/evil out of range: %d", s.GoodEvil)
		for _, f := range []Faction{Authorities, Citizens, Underworld} {
			v := s.Reputation.Of(f)
			require.True(t, v >= MinReputation && v <= MaxReputation, "%s out of range: %d", f, v)
		}
	}
	assert.Equal(t, tagged, s.TallyTotal())
}

func TestHealthNotClampedAbove(t *testing.T) {
	s := New("Ada")
	s.AdjustHealth(30)
	assert.Equal(t, 130, s.Health)
	assert.False(t, s.Dead())

	s.AdjustHealth(-200)
	assert.Equal(t, -70, s.Health)
	assert.True(t, s.Dead())

	s.AdjustHealth(170)
	s.Kill()
	assert.Equal(t, 0, s.Health)
	assert.True(t, s.Dead())
}

func TestGuiltGoesNegative(t *testing.T) {
	s := New("Ada")
	s.AdjustGuilt(-40)
	assert.Equal(t, -40, s.Guilt)
}

func TestRemoveItemOnlyFirstOccurrence(t *testing.T) {
	s := New("Ada")
	s.AddItem("Stolen Fruit")
	s.AddItem("Stolen Goods")
	s.AddItem("Stolen Goods")

	require.True(t, s.RemoveItem("Stolen Goods"))
	assert.Equal(t, []string{"Stolen Fruit", "Stolen Goods"}, s.Inventory)

	require.False(t, s.RemoveItem("Money"))
	assert.Equal(t, []string{"Stolen Fruit", "Stolen Goods"}, s.Inventory)
}

func TestCloneIsDeep(t *testing.T) {
	s := New("Ada")
	s.AddItem("Trained Dog")
	s.LogChoice("Dog event: Choice 4")
	s.ApplyAlignment(10, 0, ChaoticNeutral)

	c := s.Clone()
	c.AddItem("Attack Dog")
	c.LogChoice("extra")
	c.ApplyAlignment(10, 0, ChaoticNeutral)

	assert.Equal(t, []string{"Trained Dog"}, s.Inventory)
	assert.Equal(t, []string{"Dog event: Choice 4"}, s.ChoiceLog)
	assert.Equal(t, 1, s.Tally.Count(ChaoticNeutral))
	assert.Equal(t, 10, s.LawChaos)
}

func TestStateJSONRoundTrip(t *testing.T) {
	s := New("Ada")
	s.ApplyAlignment(-20, -15, LawfulGood)
	s.ApplyAlignment(5, 5, ChaoticEvil)
	s.ApplyReputation(ReputationDelta{Authorities: 10, Citizens: 5})
	s.AdjustGuilt(25)
	s.AdjustHealth(-10)
	s.AddItem("Stolen Fruit")
	s.LogChoice("Falling event: Choice 5")

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var got State
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *s, got)
}

func TestTallyJSONHasAllKeys(t *testing.T) {
	data, err := json.Marshal(Tally{})
	require.NoError(t, err)

	var m map[string]int
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Len(t, m, NumTags)
	for _, tag := range AllTags() {
		assert.Contains(t, m, tag.String())
	}
}

func TestTallyJSONRejectsBadInput(t *testing.T) {
	var tally Tally
	assert.Error(t, json.Unmarshal([]byte(`{"lawful_awesome": 1}`), &tally))
	assert.Error(t, json.Unmarshal([]byte(`{"lawful_good": -1}`), &tally))
}

func TestMostCommonTieBreak(t *testing.T) {
	tests := []struct {
		name  string
		tally Tally
		want  Tag
	}{
		{name: "empty tally picks first bucket", tally: tallyOf(nil), want: LawfulGood},
		{name: "clear winner", tally: tallyOf(map[Tag]int{ChaoticEvil: 3, TrueNeutral: 1}), want: ChaoticEvil},
		{name: "tie goes to earlier bucket", tally: tallyOf(map[Tag]int{NeutralEvil: 2, ChaoticGood: 2}), want: ChaoticGood},
		{name: "tie between last two", tally: tallyOf(map[Tag]int{NeutralEvil: 4, ChaoticEvil: 4}), want: NeutralEvil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				assert.Equal(t, tc.want, tc.tally.MostCommon())
			}
		})
	}
}

func tallyOf(counts map[Tag]int) Tally {
	var tally Tally
	for tag, n := range counts {
		for i := 0; i < n; i++ {
			tally.add(tag)
		}
	}
	return tally
}

func TestTagNames(t *testing.T) {
	assert.Equal(t, "lawful_good", LawfulGood.String())
	assert.Equal(t, "Chaotic Neutral", ChaoticNeutral.Title())
	assert.Equal(t, "True Neutral", TrueNeutral.Title())

	tag, err := ParseTag("neutral_evil")
	require.NoError(t, err)
	assert.Equal(t, NeutralEvil, tag)

	_, err = ParseTag("nope")
	assert.Error(t, err)
	assert.False(t, NoTag.Valid())
	assert.Equal(t, 0, Tally{}.Count(NoTag))
	assert.Len(t, AllTags(), NumTags)
	assert.Equal(t, LawfulGood, AllTags()[0])
	assert.Equal(t, ChaoticEvil, AllTags()[NumTags-1])
}
