package cards

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyDeck is returned when drawing, burning or peeking on an empty deck.
// A standard hand never exhausts a 52-card deck, so hitting this error means
// the deck was constructed too short.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is an ordered sequence of cards. Draw and Burn consume from the front.
// Copies are independent: mutating one never affects another.
type Deck struct {
	cards []Card
}

// NewDeck creates a deck holding exactly the given cards in the given order.
func NewDeck(cs ...Card) *Deck {
	cards := make([]Card, len(cs))
	copy(cards, cs)
	return &Deck{cards: cards}
}

// Standard52 creates a full deck of 52 cards in a fixed, unshuffled order.
func Standard52() *Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return &Deck{cards: cards}
}

// Shuffled creates a full 52-card deck in random order.
func Shuffled() *Deck {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	deck := Standard52()
	r.Shuffle(len(deck.cards), func(i, j int) {
		deck.cards[i], deck.cards[j] = deck.cards[j], deck.cards[i]
	})
	return deck
}

// Size returns the number of cards left in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// IsEmpty reports whether all cards have been consumed.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Top peeks at the next card without consuming it.
func (d *Deck) Top() (Card, error) {
	if d.IsEmpty() {
		return Card{}, ErrEmptyDeck
	}
	return d.cards[0], nil
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if d.IsEmpty() {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Burn discards the top card face-down.
func (d *Deck) Burn() error {
	if d.IsEmpty() {
		return ErrEmptyDeck
	}
	d.cards = d.cards[1:]
	return nil
}

// Copy returns an independent snapshot of the deck.
func (d *Deck) Copy() *Deck {
	return NewDeck(d.cards...)
}

// Cards returns a copy of the remaining cards in order.
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Equal reports whether two decks hold the same cards in the same order.
func (d *Deck) Equal(other *Deck) bool {
	if d.Size() != other.Size() {
		return false
	}
	for i, c := range d.cards {
		if c != other.cards[i] {
			return false
		}
	}
	return true
}
