package domain

import "github.com/feltkit/holdem/cards"

// HoleCards assigns exactly two private cards to every player of a hand.
// The assignment happens once, at hand creation.
type HoleCards map[Player][]cards.Card

// DealHoleCards draws two cards per player round-robin: one card to each
// seat in order, then a second pass. Replaying a scripted deck depends on
// this exact order.
func DealHoleCards(deck *cards.Deck, players []Player) (HoleCards, error) {
	assignment := make(HoleCards, len(players))
	for pass := 0; pass < 2; pass++ {
		for _, player := range players {
			card, err := deck.Draw()
			if err != nil {
				return nil, err
			}
			assignment[player] = append(assignment[player], card)
		}
	}
	return assignment, nil
}

// Of returns the player's two hole cards.
func (h HoleCards) Of(player Player) []cards.Card {
	held := make([]cards.Card, len(h[player]))
	copy(held, h[player])
	return held
}
