package hands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feltkit/holdem/cards"
	"github.com/feltkit/holdem/domain/hands"
)

func mustCards(t *testing.T, s string) []cards.Card {
	t.Helper()
	cs, err := cards.ParseCards(s)
	require.NoError(t, err)
	return cs
}

func mustCombination(t *testing.T, s string) hands.Combination {
	t.Helper()
	c, err := hands.NewCombination(mustCards(t, s))
	require.NoError(t, err)
	return c
}

func TestNewCombination_Labels(t *testing.T) {
	tests := []struct {
		name  string
		pool  string
		label hands.Label
		best  string
	}{
		{
			name:  "high card",
			pool:  "2H,4S,6D,8C,TH,QS,AD",
			label: hands.HighCard,
			best:  "AD,QS,TH,8C,6D",
		},
		{
			name:  "pair",
			pool:  "2H,2S,6D,8C,TH,QS,AD",
			label: hands.Pair,
			best:  "2H,2S,AD,QS,TH",
		},
		{
			name:  "two pair keeps the two highest pairs",
			pool:  "2H,2S,6D,6C,TH,TS,AD",
			label: hands.TwoPair,
			best:  "TH,TS,6D,6C,AD",
		},
		{
			name:  "trips",
			pool:  "AS,AD,AC,2C,3C,5C,6S",
			label: hands.Trips,
			best:  "AS,AD,AC,6S,5C",
		},
		{
			name:  "straight",
			pool:  "9H,8S,7D,6C,5H,2S,AD",
			label: hands.Straight,
			best:  "9H,8S,7D,6C,5H",
		},
		{
			name:  "flush",
			pool:  "AH,JH,9H,7H,2H,KS,KD",
			label: hands.Flush,
			best:  "AH,JH,9H,7H,2H",
		},
		{
			name:  "full house",
			pool:  "KH,KS,KD,9C,9H,2S,3D",
			label: hands.FullHouse,
			best:  "KH,KS,KD,9C,9H",
		},
		{
			name:  "quads",
			pool:  "7H,7S,7D,7C,AH,2S,3D",
			label: hands.Quads,
			best:  "7H,7S,7D,7C,AH",
		},
		{
			name:  "straight flush",
			pool:  "AS,KS,QS,JS,TS,9S,8S",
			label: hands.StraightFlush,
			best:  "AS,KS,QS,JS,TS",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combination, err := hands.NewCombination(mustCards(t, tt.pool))
			require.NoError(t, err)
			assert.Equal(t, tt.label, combination.Label())
			best := append(combination.Cards(), combination.Kickers()...)
			assert.Equal(t, mustCards(t, tt.best), best)
		})
	}
}

func TestNewCombination_RequiresFiveCards(t *testing.T) {
	_, err := hands.NewCombination(mustCards(t, "AS,KS,QS,JS"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 5 cards")
}

func TestNewCombination_AceLowIsNoStraight(t *testing.T) {
	combination := mustCombination(t, "AS,2H,3D,4C,5S,9H,JD")
	assert.NotEqual(t, hands.Straight, combination.Label())
	assert.Equal(t, hands.HighCard, combination.Label())
	assert.Empty(t, combination.Cards())
	assert.Len(t, combination.Kickers(), 5)
}

func TestNewCombination_FullHouseFromTwoTrips(t *testing.T) {
	combination := mustCombination(t, "KH,KS,KD,9C,9H,9S,2D")
	assert.Equal(t, hands.FullHouse, combination.Label())
	best := append(combination.Cards(), combination.Kickers()...)
	assert.Equal(t, mustCards(t, "KH,KS,KD,9C,9H"), best)
}

func TestNewCombination_IsPure(t *testing.T) {
	first := mustCombination(t, "AS,AD,AC,2C,3C,5C,6S")
	second := mustCombination(t, "AS,AD,AC,2C,3C,5C,6S")
	assert.True(t, first.Equal(second))
	assert.Equal(t, first.Label(), second.Label())
	assert.Equal(t, first.Cards(), second.Cards())
}

func TestCompare_LabelDominatesCardRanks(t *testing.T) {
	lowFlush := mustCombination(t, "7H,5H,4H,3H,2H")
	highStraight := mustCombination(t, "AS,KH,QD,JC,TS")
	assert.True(t, lowFlush.Over(highStraight))
	assert.False(t, highStraight.Over(lowFlush))
	assert.Negative(t, highStraight.Compare(lowFlush))
}

func TestCompare_KickersBreakTies(t *testing.T) {
	acesKingKicker := mustCombination(t, "AS,AD,KH,7C,2S")
	acesQueenKicker := mustCombination(t, "AH,AC,QH,7D,2C")
	assert.True(t, acesKingKicker.Over(acesQueenKicker))

	samePair := mustCombination(t, "AH,AC,KS,7D,2C")
	assert.True(t, acesKingKicker.Equal(samePair))
	assert.False(t, acesKingKicker.Over(samePair))
}

func TestCompare_HigherPairBeatsLowerPair(t *testing.T) {
	kings := mustCombination(t, "KH,KS,QD,7C,2S")
	queens := mustCombination(t, "QH,QS,AD,7D,2C")
	assert.True(t, kings.Over(queens))
}
