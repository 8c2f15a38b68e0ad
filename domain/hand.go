package domain

import (
	"errors"
	"fmt"

	"github.com/feltkit/holdem/cards"
)

// ErrHandFinished rejects wagering actions on a hand whose river round is
// already finished.
var ErrHandFinished = errors.New("hand is finished, no further plays allowed")

// Hand models a single hand of Texas Hold'em from deal to showdown. It is a
// persistent value: every wagering action produces a new Hand and leaves
// prior values untouched, so snapshots can be read concurrently without
// locking.
//
// At creation the hand deals two hole cards per seat round-robin and opens
// the pre-flop round with both blinds posted. Whenever the current round
// finishes, the hand burns a card (flop, turn and river only), reveals the
// street's community cards and opens the next round with the non-folded
// players and their carried-over stacks.
type Hand struct {
	deck      *cards.Deck
	players   []Player
	blinds    Blinds
	holeCards HoleCards
	rounds    map[Street]*BettingRound
	community CommunityCards
	memento   *Memento
}

// NewHand deals a fresh hand: hole cards round-robin from the deck, then
// the pre-flop betting round with blinds posted by the first two seats.
// The original inputs are captured in a memento for deterministic replay.
func NewHand(deck *cards.Deck, players []Player, blinds Blinds, stacks Stacks) (*Hand, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("a hand requires at least 2 players, got %d", len(players))
	}
	for _, player := range players {
		if _, ok := stacks[player]; !ok {
			return nil, UnknownPlayerError{Player: player, Players: stacks.Players()}
		}
	}

	seats := make([]Player, len(players))
	copy(seats, players)
	memento := newMemento(deck.Copy(), seats, blinds, stacks.clone())

	working := deck.Copy()
	holeCards, err := DealHoleCards(working, seats)
	if err != nil {
		return nil, err
	}
	preFlop, err := NewPreFlopRound(stacks, blinds, seats)
	if err != nil {
		return nil, err
	}

	return &Hand{
		deck:      working,
		players:   seats,
		blinds:    blinds,
		holeCards: holeCards,
		rounds:    map[Street]*BettingRound{PreFlop: preFlop},
		community: NoCommunityCards(),
		memento:   memento,
	}, nil
}

// OnCurrentRound applies a wagering transformation to the current betting
// round and wraps the result into a new Hand, advancing streets as rounds
// finish. Acting on a finished hand is an error.
func (h *Hand) OnCurrentRound(apply func(*BettingRound) (*BettingRound, error)) (*Hand, error) {
	street := h.CurrentStreet()
	if h.rounds[street].IsFinished() {
		return nil, ErrHandFinished
	}
	updated, err := apply(h.rounds[street])
	if err != nil {
		return nil, err
	}

	rounds := make(map[Street]*BettingRound, len(h.rounds)+1)
	for s, round := range h.rounds {
		rounds[s] = round
	}
	rounds[street] = updated

	next := &Hand{
		deck:      h.deck.Copy(),
		players:   h.players,
		blinds:    h.blinds,
		holeCards: h.holeCards,
		rounds:    rounds,
		community: h.community,
		memento:   h.memento,
	}
	if err := next.advanceStreets(); err != nil {
		return nil, err
	}
	return next, nil
}

// Bet forwards a bet by the player to the current round.
func (h *Hand) Bet(player Player, amount ChipValue) (*Hand, error) {
	return h.OnCurrentRound(func(r *BettingRound) (*BettingRound, error) {
		return r.Bet(player, amount)
	})
}

// Call forwards a call by the player to the current round.
func (h *Hand) Call(player Player) (*Hand, error) {
	return h.OnCurrentRound(func(r *BettingRound) (*BettingRound, error) {
		return r.Call(player)
	})
}

// RaiseTo forwards a raise by the player to the current round.
func (h *Hand) RaiseTo(player Player, target ChipValue) (*Hand, error) {
	return h.OnCurrentRound(func(r *BettingRound) (*BettingRound, error) {
		return r.RaiseTo(player, target)
	})
}

// Check forwards a check by the player to the current round.
func (h *Hand) Check(player Player) (*Hand, error) {
	return h.OnCurrentRound(func(r *BettingRound) (*BettingRound, error) {
		return r.Check(player)
	})
}

// Fold forwards a fold by the player to the current round.
func (h *Hand) Fold(player Player) (*Hand, error) {
	return h.OnCurrentRound(func(r *BettingRound) (*BettingRound, error) {
		return r.Fold(player)
	})
}

// AllIn forwards an all-in by the player to the current round.
func (h *Hand) AllIn(player Player) (*Hand, error) {
	return h.OnCurrentRound(func(r *BettingRound) (*BettingRound, error) {
		return r.AllIn(player)
	})
}

// advanceStreets opens follow-up streets while the latest round is
// finished: burn if the street requires it, reveal the community cards and
// seat the remaining players with their carried-over stacks. A fresh round
// can itself be finished (single player left), so this cascades up to the
// river.
func (h *Hand) advanceStreets() error {
	for {
		street := h.latestStreet()
		round := h.rounds[street]
		if !round.IsFinished() {
			return nil
		}
		next, ok := street.Next()
		if !ok {
			return nil // finished river: the hand stays there for showdown
		}
		fresh, err := NewBettingRound(round.Stacks(), round.RemainingPlayers())
		if err != nil {
			return err
		}
		if next.ShouldBurn() {
			if err := h.deck.Burn(); err != nil {
				return err
			}
		}
		community, err := next.BuildCommunityCards(h.deck, h.community)
		if err != nil {
			return err
		}
		h.rounds[next] = fresh
		h.community = community
	}
}

// CurrentStreet is the street of the latest round recorded. Streets advance
// eagerly when rounds finish, so the latest round is unfinished unless the
// hand is over on the river.
func (h *Hand) CurrentStreet() Street {
	return h.latestStreet()
}

func (h *Hand) latestStreet() Street {
	street := PreFlop
	for s := range h.rounds {
		street = street.Latest(s)
	}
	return street
}

// CurrentRound returns the betting round of the current street.
func (h *Hand) CurrentRound() *BettingRound {
	return h.rounds[h.CurrentStreet()]
}

// IsFinished reports whether the hand has reached a terminal betting state,
// i.e. the river round is finished.
func (h *Hand) IsFinished() bool {
	return h.CurrentRound().IsFinished()
}

// RoundPlayed reports whether the street's round has been recorded and
// finished.
func (h *Hand) RoundPlayed(street Street) bool {
	round, ok := h.rounds[street]
	return ok && round.IsFinished()
}

// Round returns the betting round recorded for a street, if any.
func (h *Hand) Round(street Street) (*BettingRound, bool) {
	round, ok := h.rounds[street]
	return round, ok
}

// Stacks returns the stack ledger of the current round.
func (h *Hand) Stacks() Stacks {
	return h.CurrentRound().Stacks()
}

// Pot sums the pots of all recorded rounds, blinds included.
func (h *Hand) Pot() ChipValue {
	var pot ChipValue
	for _, round := range h.rounds {
		pot = pot.Plus(round.Pot())
	}
	return pot
}

// Plays returns the hand's canonical ordered play history: every play of
// every recorded round, in street order.
func (h *Hand) Plays() []Play {
	var plays []Play
	for _, street := range Streets {
		if round, ok := h.rounds[street]; ok {
			plays = append(plays, round.Plays()...)
		}
	}
	return plays
}

// RemainingPlayers lists the players that have not folded, in seat order.
func (h *Hand) RemainingPlayers() []Player {
	return h.CurrentRound().RemainingPlayers()
}

// HoleCardsOf returns the player's two private cards.
func (h *Hand) HoleCardsOf(player Player) []cards.Card {
	return h.holeCards.Of(player)
}

// CommunityCards returns the board revealed so far.
func (h *Hand) CommunityCards() CommunityCards {
	return h.community
}

// Players lists all seats of the hand in order.
func (h *Hand) Players() []Player {
	players := make([]Player, len(h.players))
	copy(players, h.players)
	return players
}

// Blinds returns the hand's blind configuration.
func (h *Hand) Blinds() Blinds {
	return h.blinds
}

// SmallBlindPlayer is the seat that posted the small blind.
func (h *Hand) SmallBlindPlayer() Player {
	return h.players[0]
}

// BigBlindPlayer is the seat that posted the big blind.
func (h *Hand) BigBlindPlayer() Player {
	return h.players[1]
}

// Button is the dealer seat.
func (h *Hand) Button() Player {
	return h.players[1]
}

// UnderTheGun is the first seat to act pre-flop.
func (h *Hand) UnderTheGun() Player {
	return h.players[0]
}

// Memento returns the snapshot of the hand's starting inputs.
func (h *Hand) Memento() *Memento {
	return h.memento
}

// ShowDown compares the remaining players' best hands. It is available
// only once the hand has reached a terminal betting state.
func (h *Hand) ShowDown() (*ShowDown, error) {
	if !h.IsFinished() {
		return nil, fmt.Errorf("cannot show down on street %s: betting is still open", h.CurrentStreet())
	}
	return NewShowDown(h.community, h.holeCards, h.RemainingPlayers())
}

// Equal derives hand equality from the starting inputs and the canonical
// ordered play history, not from aggregate state: two hands with the same
// net stacks but different play sequences are not equal.
func (h *Hand) Equal(other *Hand) bool {
	if other == nil {
		return false
	}
	if len(h.players) != len(other.players) {
		return false
	}
	for i, player := range h.players {
		if other.players[i] != player {
			return false
		}
	}
	if h.blinds != other.blinds {
		return false
	}
	if !h.memento.Deck().Equal(other.memento.Deck()) {
		return false
	}
	ours, theirs := h.Plays(), other.Plays()
	if len(ours) != len(theirs) {
		return false
	}
	for i, play := range ours {
		if theirs[i] != play {
			return false
		}
	}
	return true
}
