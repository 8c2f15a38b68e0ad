package domain

import (
	"fmt"

	"github.com/feltkit/holdem/cards"
)

// Street is one of the four betting positions of a hand, in fixed order.
// Each street knows whether entering it burns a card and how many community
// cards it reveals.
type Street int

const (
	PreFlop Street = iota
	Flop
	Turn
	River
)

// Streets lists all four streets in play order.
var Streets = []Street{PreFlop, Flop, Turn, River}

func (s Street) String() string {
	switch s {
	case PreFlop:
		return "PRE_FLOP"
	case Flop:
		return "FLOP"
	case Turn:
		return "TURN"
	case River:
		return "RIVER"
	default:
		return fmt.Sprintf("Street(%d)", int(s))
	}
}

// ShouldBurn reports whether a card is burned before this street's reveal.
// Only the pre-flop reveals nothing and burns nothing.
func (s Street) ShouldBurn() bool {
	return s != PreFlop
}

// Next returns the following street; ok is false on the river.
func (s Street) Next() (Street, bool) {
	if s == River {
		return s, false
	}
	return s + 1, true
}

// Previous returns the preceding street; ok is false on the pre-flop.
func (s Street) Previous() (Street, bool) {
	if s == PreFlop {
		return s, false
	}
	return s - 1, true
}

// Latest returns the later of two streets.
func (s Street) Latest(other Street) Street {
	if s > other {
		return s
	}
	return other
}

// BuildCommunityCards reveals this street's community cards by drawing from
// the deck and extending the current board: the flop draws three fresh
// cards, turn and river append one card each. The pre-flop reveals nothing.
func (s Street) BuildCommunityCards(deck *cards.Deck, current CommunityCards) (CommunityCards, error) {
	switch s {
	case PreFlop:
		return NoCommunityCards(), nil
	case Flop:
		drawn := make([]cards.Card, 0, 3)
		for i := 0; i < 3; i++ {
			card, err := deck.Draw()
			if err != nil {
				return CommunityCards{}, err
			}
			drawn = append(drawn, card)
		}
		return NewFlop(drawn)
	case Turn:
		card, err := deck.Draw()
		if err != nil {
			return CommunityCards{}, err
		}
		return current.WithTurn(card)
	case River:
		card, err := deck.Draw()
		if err != nil {
			return CommunityCards{}, err
		}
		return current.WithRiver(card)
	default:
		return CommunityCards{}, fmt.Errorf("unknown street: %d", int(s))
	}
}
