package domain

import (
	"fmt"

	"github.com/feltkit/holdem/cards"
)

// CommunityCards is the board revealed so far: an optional flop of exactly
// three cards, then an optional turn card, then an optional river card.
// Cards can only be added in that order.
type CommunityCards struct {
	flop  []cards.Card
	turn  *cards.Card
	river *cards.Card
}

// NoCommunityCards is the empty board of a pre-flop hand.
func NoCommunityCards() CommunityCards {
	return CommunityCards{}
}

// NewFlop builds a board holding exactly three flop cards.
func NewFlop(flop []cards.Card) (CommunityCards, error) {
	if len(flop) != 3 {
		return CommunityCards{}, fmt.Errorf("flop requires exactly 3 cards, got %d", len(flop))
	}
	board := make([]cards.Card, 3)
	copy(board, flop)
	return CommunityCards{flop: board}, nil
}

// WithTurn adds the turn card. The flop must already be present.
func (c CommunityCards) WithTurn(card cards.Card) (CommunityCards, error) {
	if c.flop == nil {
		return CommunityCards{}, fmt.Errorf("cannot add turn card %s without a flop", card)
	}
	c.turn = &card
	return c, nil
}

// WithRiver adds the river card. Flop and turn must already be present.
func (c CommunityCards) WithRiver(card cards.Card) (CommunityCards, error) {
	if c.turn == nil {
		return CommunityCards{}, fmt.Errorf("cannot add river card %s without a turn", card)
	}
	c.river = &card
	return c, nil
}

// Flop returns the three flop cards, if dealt.
func (c CommunityCards) Flop() ([]cards.Card, bool) {
	if c.flop == nil {
		return nil, false
	}
	flop := make([]cards.Card, 3)
	copy(flop, c.flop)
	return flop, true
}

// Turn returns the turn card, if dealt.
func (c CommunityCards) Turn() (cards.Card, bool) {
	if c.turn == nil {
		return cards.Card{}, false
	}
	return *c.turn, true
}

// River returns the river card, if dealt.
func (c CommunityCards) River() (cards.Card, bool) {
	if c.river == nil {
		return cards.Card{}, false
	}
	return *c.river, true
}

// Dealt returns all revealed cards in reveal order.
func (c CommunityCards) Dealt() []cards.Card {
	dealt := make([]cards.Card, 0, 5)
	dealt = append(dealt, c.flop...)
	if c.turn != nil {
		dealt = append(dealt, *c.turn)
	}
	if c.river != nil {
		dealt = append(dealt, *c.river)
	}
	return dealt
}

func (c CommunityCards) String() string {
	return cards.FormatCards(c.Dealt())
}
