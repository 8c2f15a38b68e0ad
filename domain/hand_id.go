package domain

import "github.com/google/uuid"

// HandID identifies a stored hand.
type HandID string

// NewHandID mints a random identifier.
func NewHandID() HandID {
	return HandID(uuid.NewString())
}

func (id HandID) String() string {
	return string(id)
}
