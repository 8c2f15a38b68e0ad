package domain

import (
	"fmt"
	"sort"
)

// UnknownPlayerError is returned when a play references a player that has
// no entry in the stack ledger.
type UnknownPlayerError struct {
	Player  Player
	Players []Player
}

func (e UnknownPlayerError) Error() string {
	return fmt.Sprintf("tried to apply play for %s, expected any of %v", e.Player, e.Players)
}

// InsufficientChipsError is returned when a player plays more chips than
// their stack holds.
type InsufficientChipsError struct {
	Player Player
	Stack  ChipValue
	Played ChipValue
}

func (e InsufficientChipsError) Error() string {
	return fmt.Sprintf("%s has only %s, but tried to play %s", e.Player, e.Stack, e.Played)
}

// Stacks maps every seated player to their chip balance. Apply is a pure
// function: it returns a new Stacks and never mutates the receiver.
type Stacks map[Player]ChipValue

// NewStacks copies the given balances into a fresh ledger.
func NewStacks(balances map[Player]ChipValue) Stacks {
	s := make(Stacks, len(balances))
	for player, chips := range balances {
		s[player] = chips
	}
	return s
}

// Of returns the balance of a player.
func (s Stacks) Of(player Player) (ChipValue, error) {
	chips, ok := s[player]
	if !ok {
		return 0, UnknownPlayerError{Player: player, Players: s.Players()}
	}
	return chips, nil
}

// Apply reduces the acting player's balance by the play's chip delta and
// returns the resulting ledger. Unknown players and balances that would go
// negative are errors.
func (s Stacks) Apply(play Play) (Stacks, error) {
	stack, ok := s[play.Player]
	if !ok {
		return nil, UnknownPlayerError{Player: play.Player, Players: s.Players()}
	}
	remaining, err := stack.Minus(play.Added)
	if err != nil {
		return nil, InsufficientChipsError{Player: play.Player, Stack: stack, Played: play.Added}
	}
	updated := s.clone()
	updated[play.Player] = remaining
	return updated, nil
}

// Players lists the players holding a stack, in identifier order.
func (s Stacks) Players() []Player {
	players := make([]Player, 0, len(s))
	for player := range s {
		players = append(players, player)
	}
	sort.Slice(players, func(i, j int) bool { return players[i] < players[j] })
	return players
}

// Equal reports whether both ledgers hold the same balances.
func (s Stacks) Equal(other Stacks) bool {
	if len(s) != len(other) {
		return false
	}
	for player, chips := range s {
		otherChips, ok := other[player]
		if !ok || otherChips != chips {
			return false
		}
	}
	return true
}

func (s Stacks) clone() Stacks {
	return NewStacks(s)
}
