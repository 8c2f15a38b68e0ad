package application

import "github.com/feltkit/holdem/domain"

// LoadHandPort reconstructs a stored hand. The loaded hand must be equal,
// in domain terms, to one built from the same deck, players, blinds and
// play sequence.
type LoadHandPort interface {
	LoadByID(id domain.HandID) (*domain.Hand, error)
}

// SaveHandPort persists enough of a hand to reconstruct it via load.
type SaveHandPort interface {
	SaveHand(id domain.HandID, hand *domain.Hand) error
}

// HandStore combines both ports.
type HandStore interface {
	LoadHandPort
	SaveHandPort
}
