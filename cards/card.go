package cards

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "S"
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
)

// Suits lists all four suits in a fixed order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Rank represents a card rank. The numeric value is the rank's strength:
// 2 is the lowest, the ace (14) the highest. There is no wraparound.
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Ranks lists all ranks from weakest to strongest.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// String returns the single-letter representation of a rank ("2".."9", "T", "J", "Q", "K", "A").
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// String returns the compact representation of a card, e.g. "AS" or "TD".
func (c Card) String() string {
	return c.Rank.String() + string(c.Suit)
}

// ParseCard creates a card from its compact representation
// e.g., "AS" -> ace of spades, "TD" or "10D" -> ten of diamonds
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %q", s)
	}

	var suit Suit
	switch s[len(s)-1:] {
	case "s", "S":
		suit = Spades
	case "h", "H":
		suit = Hearts
	case "d", "D":
		suit = Diamonds
	case "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit %q, expected one of [SHDC]", s[len(s)-1:])
	}

	var rank Rank
	switch strings.ToUpper(s[:len(s)-1]) {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "T", "10":
		rank = Ten
	case "9":
		rank = Nine
	case "8":
		rank = Eight
	case "7":
		rank = Seven
	case "6":
		rank = Six
	case "5":
		rank = Five
	case "4":
		rank = Four
	case "3":
		rank = Three
	case "2":
		rank = Two
	default:
		return Card{}, fmt.Errorf("invalid card rank %q, expected one of [23456789TJQKA]", s[:len(s)-1])
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses a comma-separated list of compact cards, e.g. "AH,KD,2S".
func ParseCards(s string) ([]Card, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	cards := make([]Card, 0, len(parts))
	for _, part := range parts {
		card, err := ParseCard(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// FormatCards renders cards as a comma-separated compact list, the inverse of ParseCards.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}
