package domain

import "fmt"

// NegativeChipsError is returned when an operation would produce a chip
// value below zero. Chip values never clamp.
type NegativeChipsError struct {
	Value int64
}

func (e NegativeChipsError) Error() string {
	return fmt.Sprintf("cannot create chip value below 0, but tried to create chip value of %d", e.Value)
}

// ChipValue is a non-negative amount of chips.
type ChipValue int64

// NewChipValue validates and creates a chip value. Negative amounts are rejected.
func NewChipValue(v int64) (ChipValue, error) {
	if v < 0 {
		return 0, NegativeChipsError{Value: v}
	}
	return ChipValue(v), nil
}

// Minus subtracts another chip value. Going below zero is an error, not a clamp.
func (c ChipValue) Minus(other ChipValue) (ChipValue, error) {
	return NewChipValue(int64(c) - int64(other))
}

// Plus adds another chip value.
func (c ChipValue) Plus(other ChipValue) ChipValue {
	return c + other
}

// LessThan reports whether c is strictly smaller than other.
func (c ChipValue) LessThan(other ChipValue) bool {
	return c < other
}

// Value returns the raw chip amount.
func (c ChipValue) Value() int64 {
	return int64(c)
}

func (c ChipValue) String() string {
	return fmt.Sprintf("%d", int64(c))
}

// MinRaise computes the minimum legal raise target given the previous
// committed total: a raise must at least double it.
func MinRaise(previousBet ChipValue) ChipValue {
	return previousBet * 2
}
