package domain

import (
	"fmt"

	"github.com/feltkit/holdem/domain/hands"
)

// InvalidShowdownPlayerError is returned when a combination is requested
// for a player that did not reach the showdown.
type InvalidShowdownPlayerError struct {
	Player  Player
	Players []Player
}

func (e InvalidShowdownPlayerError) Error() string {
	return fmt.Sprintf("player %s did not reach the showdown, valid players are %v", e.Player, e.Players)
}

// ShowDown ranks the remaining players' best five card combinations out of
// their hole cards and the board. Ties go to the earliest seat: a later
// player takes the lead only with a strictly stronger combination.
type ShowDown struct {
	players      []Player
	combinations map[Player]hands.Combination
	winner       Player
}

// NewShowDown evaluates the best combination of each player and picks the
// winner in seat order.
func NewShowDown(community CommunityCards, holeCards HoleCards, players []Player) (*ShowDown, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("cannot show down without players")
	}

	combinations := make(map[Player]hands.Combination, len(players))
	var winner Player
	for i, player := range players {
		pool := append(holeCards.Of(player), community.Dealt()...)
		combination, err := hands.NewCombination(pool)
		if err != nil {
			return nil, fmt.Errorf("evaluating combination of %s: %w", player, err)
		}
		combinations[player] = combination
		if i == 0 || combination.Over(combinations[winner]) {
			winner = player
		}
	}

	seats := make([]Player, len(players))
	copy(seats, players)
	return &ShowDown{players: seats, combinations: combinations, winner: winner}, nil
}

// Winner is the player holding the strongest combination, earliest seat
// first on ties.
func (s *ShowDown) Winner() Player {
	return s.winner
}

// CombinationOf returns the best combination the player can make.
func (s *ShowDown) CombinationOf(player Player) (hands.Combination, error) {
	combination, ok := s.combinations[player]
	if !ok {
		return hands.Combination{}, InvalidShowdownPlayerError{Player: player, Players: s.Players()}
	}
	return combination, nil
}

// Players lists the showdown participants in seat order.
func (s *ShowDown) Players() []Player {
	players := make([]Player, len(s.players))
	copy(players, s.players)
	return players
}
