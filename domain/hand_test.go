package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feltkit/holdem/cards"
	"github.com/feltkit/holdem/domain"
	"github.com/feltkit/holdem/domain/hands"
)

// fullHouseDeck deals alice KD,3S and bob 9S,4D, then reveals the board
// KH,KS,9C + 9H + 2D with a burn before each reveal. Both players end on a
// full house, alice's kings over nines being the stronger one.
func fullHouseDeck(t *testing.T) *cards.Deck {
	t.Helper()
	cs, err := cards.ParseCards("KD,9S,3S,4D,2C,KH,KS,9C,3D,9H,4C,2D")
	require.NoError(t, err)
	return cards.NewDeck(cs...)
}

func newTestHand(t *testing.T) *domain.Hand {
	t.Helper()
	players := []domain.Player{alice, bob}
	hand, err := domain.NewHand(fullHouseDeck(t), players, domain.NewBlinds(1), evenStacks(players, 1000))
	require.NoError(t, err)
	return hand
}

func playToShowdown(t *testing.T, hand *domain.Hand) *domain.Hand {
	t.Helper()
	var err error
	hand, err = hand.Call(alice)
	require.NoError(t, err)
	hand, err = hand.Check(bob)
	require.NoError(t, err)
	for _, street := range []domain.Street{domain.Flop, domain.Turn, domain.River} {
		require.Equal(t, street, hand.CurrentStreet())
		hand, err = hand.Check(alice)
		require.NoError(t, err)
		hand, err = hand.Check(bob)
		require.NoError(t, err)
	}
	return hand
}

func TestNewHand_DealsHoleCardsRoundRobin(t *testing.T) {
	hand := newTestHand(t)

	aliceCards, err := cards.ParseCards("KD,3S")
	require.NoError(t, err)
	bobCards, err := cards.ParseCards("9S,4D")
	require.NoError(t, err)

	assert.Equal(t, aliceCards, hand.HoleCardsOf(alice))
	assert.Equal(t, bobCards, hand.HoleCardsOf(bob))
}

func TestNewHand_PostsBlindsAndPositions(t *testing.T) {
	hand := newTestHand(t)

	assert.Equal(t, domain.PreFlop, hand.CurrentStreet())
	assert.Equal(t, domain.ChipValue(3), hand.Pot())
	assert.Equal(t, alice, hand.SmallBlindPlayer())
	assert.Equal(t, bob, hand.BigBlindPlayer())
	assert.Equal(t, bob, hand.Button())
	assert.Equal(t, alice, hand.UnderTheGun())
	assert.Empty(t, hand.CommunityCards().Dealt())
}

func TestNewHand_RequiresTwoPlayers(t *testing.T) {
	_, err := domain.NewHand(fullHouseDeck(t), []domain.Player{alice}, domain.NewBlinds(1), evenStacks([]domain.Player{alice}, 1000))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 players")
}

func TestHand_StreetsAdvanceWhenRoundsFinish(t *testing.T) {
	hand := newTestHand(t)

	hand, err := hand.Call(alice)
	require.NoError(t, err)
	assert.Equal(t, domain.PreFlop, hand.CurrentStreet())

	hand, err = hand.Check(bob)
	require.NoError(t, err)
	assert.Equal(t, domain.Flop, hand.CurrentStreet())
	assert.True(t, hand.RoundPlayed(domain.PreFlop))

	flop, ok := hand.CommunityCards().Flop()
	require.True(t, ok)
	expected, err := cards.ParseCards("KH,KS,9C")
	require.NoError(t, err)
	assert.Equal(t, expected, flop)

	hand, err = hand.Check(alice)
	require.NoError(t, err)
	hand, err = hand.Check(bob)
	require.NoError(t, err)
	assert.Equal(t, domain.Turn, hand.CurrentStreet())

	turnCard, ok := hand.CommunityCards().Turn()
	require.True(t, ok)
	assert.Equal(t, "9H", turnCard.String())
}

func TestHand_PotAccumulatesAcrossStreets(t *testing.T) {
	hand := newTestHand(t)

	hand, err := hand.Call(alice)
	require.NoError(t, err)
	hand, err = hand.Check(bob)
	require.NoError(t, err)
	assert.Equal(t, domain.ChipValue(4), hand.Pot())

	hand, err = hand.Bet(alice, 10)
	require.NoError(t, err)
	hand, err = hand.Call(bob)
	require.NoError(t, err)
	assert.Equal(t, domain.Turn, hand.CurrentStreet())
	assert.Equal(t, domain.ChipValue(24), hand.Pot())

	stack, err := hand.Stacks().Of(alice)
	require.NoError(t, err)
	assert.Equal(t, domain.ChipValue(988), stack)
}

func TestHand_FinishedRiverRejectsFurtherPlays(t *testing.T) {
	hand := playToShowdown(t, newTestHand(t))

	require.True(t, hand.IsFinished())
	assert.Equal(t, domain.River, hand.CurrentStreet())

	_, err := hand.Check(alice)
	assert.ErrorIs(t, err, domain.ErrHandFinished)
	_, err = hand.Bet(alice, 10)
	assert.ErrorIs(t, err, domain.ErrHandFinished)
}

func TestHand_ShowDownRequiresFinishedHand(t *testing.T) {
	hand := newTestHand(t)

	_, err := hand.ShowDown()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "betting is still open")
}

func TestHand_ShowDownPicksTheStrongerFullHouse(t *testing.T) {
	hand := playToShowdown(t, newTestHand(t))

	showdown, err := hand.ShowDown()
	require.NoError(t, err)

	aliceHand, err := showdown.CombinationOf(alice)
	require.NoError(t, err)
	bobHand, err := showdown.CombinationOf(bob)
	require.NoError(t, err)

	assert.Equal(t, hands.FullHouse, aliceHand.Label())
	assert.Equal(t, hands.FullHouse, bobHand.Label())
	assert.True(t, aliceHand.Over(bobHand))
	assert.Equal(t, alice, showdown.Winner())

	_, err = showdown.CombinationOf(carol)
	require.Error(t, err)
	var invalid domain.InvalidShowdownPlayerError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []domain.Player{alice, bob}, invalid.Players)
}

func TestHand_FoldCascadesToTheRiver(t *testing.T) {
	hand := newTestHand(t)

	hand, err := hand.Fold(alice)
	require.NoError(t, err)

	assert.True(t, hand.IsFinished())
	assert.Equal(t, domain.River, hand.CurrentStreet())
	assert.Equal(t, []domain.Player{bob}, hand.RemainingPlayers())
	assert.Len(t, hand.CommunityCards().Dealt(), 5)

	showdown, err := hand.ShowDown()
	require.NoError(t, err)
	assert.Equal(t, bob, showdown.Winner())
}

func TestHand_ActionsDoNotMutateThePriorHand(t *testing.T) {
	before := newTestHand(t)

	after, err := before.Call(alice)
	require.NoError(t, err)

	assert.Equal(t, domain.ChipValue(3), before.Pot())
	assert.Equal(t, domain.ChipValue(4), after.Pot())
	assert.Len(t, before.Plays(), 2)
	assert.Len(t, after.Plays(), 3)
}

func TestHand_MementoRestoresTheStartingState(t *testing.T) {
	fresh := newTestHand(t)

	played, err := fresh.Call(alice)
	require.NoError(t, err)
	played, err = played.Check(bob)
	require.NoError(t, err)

	restored, err := played.Memento().Restore()
	require.NoError(t, err)

	assert.True(t, restored.Equal(fresh))
	assert.False(t, restored.Equal(played))
	assert.Equal(t, fresh.HoleCardsOf(alice), restored.HoleCardsOf(alice))
}

func TestHand_EqualityFollowsThePlayHistory(t *testing.T) {
	first := newTestHand(t)
	second := newTestHand(t)
	assert.True(t, first.Equal(second))

	firstCalled, err := first.Call(alice)
	require.NoError(t, err)
	secondCalled, err := second.Call(alice)
	require.NoError(t, err)
	assert.True(t, firstCalled.Equal(secondCalled))

	folded, err := second.Fold(alice)
	require.NoError(t, err)
	assert.False(t, firstCalled.Equal(folded))
	assert.False(t, firstCalled.Equal(nil))
}

func TestHand_PlaysListsTheHistoryInStreetOrder(t *testing.T) {
	hand := playToShowdown(t, newTestHand(t))

	plays := hand.Plays()
	require.Len(t, plays, 10)
	assert.Equal(t, domain.SmallBlindPlay, plays[0].Type)
	assert.Equal(t, domain.BigBlindPlay, plays[1].Type)
	assert.Equal(t, domain.CallPlay, plays[2].Type)
	for _, play := range plays[3:] {
		assert.Equal(t, domain.CheckPlay, play.Type)
	}
}

func TestStreet_BuildCommunityCards(t *testing.T) {
	cs, err := cards.ParseCards("AH,KH,QH,JH,TH")
	require.NoError(t, err)
	deck := cards.NewDeck(cs...)

	board, err := domain.PreFlop.BuildCommunityCards(deck, domain.NoCommunityCards())
	require.NoError(t, err)
	assert.Empty(t, board.Dealt())

	board, err = domain.Flop.BuildCommunityCards(deck, board)
	require.NoError(t, err)
	flop, ok := board.Flop()
	require.True(t, ok)
	assert.Equal(t, cs[:3], flop)

	board, err = domain.Turn.BuildCommunityCards(deck, board)
	require.NoError(t, err)
	board, err = domain.River.BuildCommunityCards(deck, board)
	require.NoError(t, err)
	assert.Equal(t, cs, board.Dealt())

	_, err = domain.River.BuildCommunityCards(deck, board)
	assert.ErrorIs(t, err, cards.ErrEmptyDeck)
}

func TestStreet_Order(t *testing.T) {
	next, ok := domain.PreFlop.Next()
	require.True(t, ok)
	assert.Equal(t, domain.Flop, next)

	_, ok = domain.River.Next()
	assert.False(t, ok)

	assert.False(t, domain.PreFlop.ShouldBurn())
	assert.True(t, domain.Flop.ShouldBurn())
	assert.Equal(t, domain.River, domain.Turn.Latest(domain.River))
}

func TestCommunityCards_BuildOrderIsEnforced(t *testing.T) {
	cs, err := cards.ParseCards("AH,KH,QH,JH")
	require.NoError(t, err)

	_, err = domain.NewFlop(cs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 3 cards")

	_, err = domain.NoCommunityCards().WithTurn(cs[0])
	require.Error(t, err)

	flop, err := domain.NewFlop(cs[:3])
	require.NoError(t, err)
	_, err = flop.WithRiver(cs[3])
	require.Error(t, err)
}
