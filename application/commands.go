// Package application exposes the engine's use cases: creating a game and
// applying wagering actions to a stored hand. Services talk to storage
// through the Load/Save ports only.
package application

import "github.com/feltkit/holdem/domain"

// Seat pairs a player with their starting stack. Seat order is the seating
// order of the hand: the first seat posts the small blind.
type Seat struct {
	Player domain.Player
	Stack  domain.ChipValue
}

// CreateGameCommand requests a fresh hand with the given seats and small
// blind. An empty GameID asks the service to mint one.
type CreateGameCommand struct {
	GameID     domain.HandID
	Seats      []Seat
	SmallBlind domain.ChipValue
}

func (CreateGameCommand) Name() string {
	return "CREATE_GAME"
}

// GameActionCommand applies one wagering action to a stored hand. Action is
// one of BET, RAISE, FOLD, CHECK, CALL; TargetChips only matters for BET
// and RAISE.
type GameActionCommand struct {
	HandID      domain.HandID
	PlayerID    domain.Player
	Action      string
	TargetChips domain.ChipValue
}

func (GameActionCommand) Name() string {
	return "GAME_ACTION"
}
