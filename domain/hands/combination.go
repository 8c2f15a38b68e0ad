// Package hands ranks poker card combinations. Given a pool of at least
// five cards (hole cards plus board) it finds the strongest five card hand
// and makes combinations comparable with each other.
package hands

import (
	"fmt"

	"github.com/feltkit/holdem/cards"
)

// Label classifies a combination. Higher values beat lower ones.
type Label int

const (
	HighCard Label = iota
	Pair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

// Labels lists all labels, weakest first.
var Labels = []Label{HighCard, Pair, TwoPair, Trips, Straight, Flush, FullHouse, Quads, StraightFlush}

func (l Label) String() string {
	switch l {
	case HighCard:
		return "HIGH_CARD"
	case Pair:
		return "PAIR"
	case TwoPair:
		return "TWO_PAIR"
	case Trips:
		return "TRIPS"
	case Straight:
		return "STRAIGHT"
	case Flush:
		return "FLUSH"
	case FullHouse:
		return "FULL_HOUSE"
	case Quads:
		return "QUADS"
	case StraightFlush:
		return "STRAIGHT_FLUSH"
	default:
		return fmt.Sprintf("LABEL(%d)", int(l))
	}
}

// Combination is the strongest five card hand found in a pool. The cards
// making up the combination are kept apart from the kickers that pad it to
// five, since both take part in comparisons but at different weight.
type Combination struct {
	label   Label
	cards   []cards.Card
	kickers []cards.Card
}

// NewCombination evaluates a pool of at least five cards and returns its
// strongest combination. Detectors run strongest label first, so the first
// match is the best hand the pool can make.
func NewCombination(pool []cards.Card) (Combination, error) {
	if len(pool) < 5 {
		return Combination{}, fmt.Errorf("a combination requires at least 5 cards, got %d", len(pool))
	}
	a := analyze(pool)
	for _, d := range detectors {
		matched := d.find(a)
		if matched == nil {
			continue
		}
		return Combination{
			label:   d.label,
			cards:   matched,
			kickers: a.kickersFor(matched),
		}, nil
	}
	return Combination{}, fmt.Errorf("no combination found in %s", cards.FormatCards(pool))
}

// Label classifies the combination.
func (c Combination) Label() Label {
	return c.label
}

// Cards are the cards forming the combination itself, most significant
// first.
func (c Combination) Cards() []cards.Card {
	out := make([]cards.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Kickers pad the combination to five cards, strongest first.
func (c Combination) Kickers() []cards.Card {
	out := make([]cards.Card, len(c.kickers))
	copy(out, c.kickers)
	return out
}

// Compare orders combinations: first by label, then by the ranks of the
// combination cards and kickers position by position. The result is
// negative, zero or positive as c is weaker than, equal to or stronger
// than other. Suits never break ties.
func (c Combination) Compare(other Combination) int {
	if c.label != other.label {
		return int(c.label) - int(other.label)
	}
	ours := append(c.Cards(), c.kickers...)
	theirs := append(other.Cards(), other.kickers...)
	for i := range ours {
		if i >= len(theirs) {
			break
		}
		if d := int(ours[i].Rank) - int(theirs[i].Rank); d != 0 {
			return d
		}
	}
	return 0
}

// Over reports whether c strictly beats other.
func (c Combination) Over(other Combination) bool {
	return c.Compare(other) > 0
}

// Equal reports whether the combinations tie.
func (c Combination) Equal(other Combination) bool {
	return c.Compare(other) == 0
}

func (c Combination) String() string {
	switch {
	case len(c.cards) == 0:
		return fmt.Sprintf("%s (%s)", c.label, cards.FormatCards(c.kickers))
	case len(c.kickers) == 0:
		return fmt.Sprintf("%s (%s)", c.label, cards.FormatCards(c.cards))
	default:
		return fmt.Sprintf("%s (%s) kickers (%s)", c.label, cards.FormatCards(c.cards), cards.FormatCards(c.kickers))
	}
}
