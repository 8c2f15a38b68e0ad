package application_test

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feltkit/holdem/application"
	"github.com/feltkit/holdem/cards"
	"github.com/feltkit/holdem/domain"
	"github.com/feltkit/holdem/persistence"
)

const (
	alice = domain.Player("alice")
	bob   = domain.Player("bob")
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func twoSeats() []application.Seat {
	return []application.Seat{
		{Player: alice, Stack: 1000},
		{Player: bob, Stack: 1000},
	}
}

func storeWithHand(t *testing.T, id domain.HandID) *persistence.MemoryStore {
	t.Helper()
	cs, err := cards.ParseCards("KD,9S,3S,4D,2C,KH,KS,9C,3D,9H,4C,2D")
	require.NoError(t, err)
	hand, err := domain.NewHand(cards.NewDeck(cs...), []domain.Player{alice, bob}, domain.NewBlinds(1), domain.NewStacks(map[domain.Player]domain.ChipValue{
		alice: 1000,
		bob:   1000,
	}))
	require.NoError(t, err)
	store := persistence.NewMemoryStore()
	require.NoError(t, store.SaveHand(id, hand))
	return store
}

func TestCreateGame_DealsAndSavesAHand(t *testing.T) {
	store := persistence.NewMemoryStore()
	service := application.NewCreateGameService(store, discardLogger())

	id, err := service.Handle(application.CreateGameCommand{
		GameID:     "game-1",
		Seats:      twoSeats(),
		SmallBlind: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.HandID("game-1"), id)

	hand, err := store.LoadByID(id)
	require.NoError(t, err)
	assert.Equal(t, []domain.Player{alice, bob}, hand.Players())
	assert.Equal(t, domain.ChipValue(15), hand.Pot())
	assert.Equal(t, domain.PreFlop, hand.CurrentStreet())
	assert.Len(t, hand.HoleCardsOf(alice), 2)
}

func TestCreateGame_MintsAnIDWhenNoneIsGiven(t *testing.T) {
	store := persistence.NewMemoryStore()
	service := application.NewCreateGameService(store, discardLogger())

	id, err := service.Handle(application.CreateGameCommand{
		Seats:      twoSeats(),
		SmallBlind: 1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = store.LoadByID(id)
	assert.NoError(t, err)
}

func TestCreateGame_RejectsBadCommands(t *testing.T) {
	service := application.NewCreateGameService(persistence.NewMemoryStore(), discardLogger())

	_, err := service.Handle(application.CreateGameCommand{
		Seats:      []application.Seat{{Player: alice, Stack: 1000}},
		SmallBlind: 1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need at least 2")

	_, err = service.Handle(application.CreateGameCommand{
		Seats:      twoSeats(),
		SmallBlind: 0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "small blind must be positive")
}

func TestGameAction_AppliesAndSaves(t *testing.T) {
	store := storeWithHand(t, "hand-1")
	service := application.NewGameActionService(store, discardLogger())

	updated, err := service.Handle(application.GameActionCommand{
		HandID:   "hand-1",
		PlayerID: alice,
		Action:   "CALL",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ChipValue(4), updated.Pot())

	stored, err := store.LoadByID("hand-1")
	require.NoError(t, err)
	assert.True(t, stored.Equal(updated))
}

func TestGameAction_ActionNamesMapOntoThePlayTypes(t *testing.T) {
	store := storeWithHand(t, "hand-1")
	service := application.NewGameActionService(store, discardLogger())

	steps := []application.GameActionCommand{
		{HandID: "hand-1", PlayerID: alice, Action: "CALL"},
		{HandID: "hand-1", PlayerID: bob, Action: "CHECK"},
		{HandID: "hand-1", PlayerID: alice, Action: "BET", TargetChips: 40},
		{HandID: "hand-1", PlayerID: bob, Action: "RAISE", TargetChips: 80},
		{HandID: "hand-1", PlayerID: alice, Action: "FOLD"},
	}
	var hand *domain.Hand
	var err error
	for _, step := range steps {
		hand, err = service.Handle(step)
		require.NoError(t, err, "action %s", step.Action)
	}
	assert.True(t, hand.IsFinished())
	assert.Equal(t, []domain.Player{bob}, hand.RemainingPlayers())
}

func TestGameAction_UnknownActionIsARejectedCommand(t *testing.T) {
	store := storeWithHand(t, "hand-1")
	service := application.NewGameActionService(store, discardLogger())

	_, err := service.Handle(application.GameActionCommand{
		HandID:   "hand-1",
		PlayerID: alice,
		Action:   "SHOVE",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, application.ErrUnknownAction)
}

func TestGameAction_UnknownHandID(t *testing.T) {
	service := application.NewGameActionService(persistence.NewMemoryStore(), discardLogger())

	_, err := service.Handle(application.GameActionCommand{
		HandID:   "missing",
		PlayerID: alice,
		Action:   "CALL",
	})
	require.Error(t, err)
	var notFound persistence.CouldNotLoadHandError
	assert.ErrorAs(t, err, &notFound)
}

func TestGameAction_IllegalPlayLeavesTheStoredHandUntouched(t *testing.T) {
	store := storeWithHand(t, "hand-1")
	service := application.NewGameActionService(store, discardLogger())

	before, err := store.LoadByID("hand-1")
	require.NoError(t, err)

	_, err = service.Handle(application.GameActionCommand{
		HandID:   "hand-1",
		PlayerID: bob,
		Action:   "CALL",
	})
	require.Error(t, err)
	var illegal domain.IllegalPlayError
	assert.ErrorAs(t, err, &illegal)

	after, err := store.LoadByID("hand-1")
	require.NoError(t, err)
	assert.True(t, after.Equal(before))
}

func TestCommandNames(t *testing.T) {
	assert.Equal(t, "CREATE_GAME", application.CreateGameCommand{}.Name())
	assert.Equal(t, "GAME_ACTION", application.GameActionCommand{}.Name())
}
