package domain

import "fmt"

// Blinds is the forced-bet configuration of a hand. The big blind is
// always twice the small blind.
type Blinds struct {
	small ChipValue
}

// NewBlinds creates a blind configuration from the small blind amount.
func NewBlinds(smallBlind ChipValue) Blinds {
	return Blinds{small: smallBlind}
}

// SmallBlind returns the small blind amount.
func (b Blinds) SmallBlind() ChipValue {
	return b.small
}

// BigBlind returns the big blind amount.
func (b Blinds) BigBlind() ChipValue {
	return b.small * 2
}

// Value returns the combined value of both blinds.
func (b Blinds) Value() ChipValue {
	return b.SmallBlind().Plus(b.BigBlind())
}

func (b Blinds) String() string {
	return fmt.Sprintf("Blinds{small=%s, big=%s}", b.SmallBlind(), b.BigBlind())
}
