package domain

import "github.com/feltkit/holdem/cards"

// Memento captures the inputs a hand was created from. Restoring a memento
// and replaying the recorded plays reproduces the hand exactly, which is
// what the persistence layer relies on.
type Memento struct {
	deck    *cards.Deck
	players []Player
	blinds  Blinds
	stacks  Stacks
}

func newMemento(deck *cards.Deck, players []Player, blinds Blinds, stacks Stacks) *Memento {
	return &Memento{deck: deck, players: players, blinds: blinds, stacks: stacks}
}

// Restore deals a fresh hand from the captured inputs.
func (m *Memento) Restore() (*Hand, error) {
	return NewHand(m.deck.Copy(), m.Players(), m.blinds, m.stacks.clone())
}

// Deck returns an independent copy of the original deck.
func (m *Memento) Deck() *cards.Deck {
	return m.deck.Copy()
}

// Players lists the original seats in order.
func (m *Memento) Players() []Player {
	players := make([]Player, len(m.players))
	copy(players, m.players)
	return players
}

// Blinds returns the original blind configuration.
func (m *Memento) Blinds() Blinds {
	return m.blinds
}

// Stacks returns the original stack ledger.
func (m *Memento) Stacks() Stacks {
	return m.stacks.clone()
}
