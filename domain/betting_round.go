package domain

import (
	"errors"
	"fmt"
)

// IllegalPlayError rejects a wagering action that breaks a legality rule:
// wrong player on turn, a bet/check where a call/raise/fold is required, or
// a raise below the minimum. The prior round value stays valid.
type IllegalPlayError struct {
	Reason string
}

func (e IllegalPlayError) Error() string {
	return e.Reason
}

// BettingRound is the per-street wagering state machine. It is immutable:
// every action returns a new round value and leaves the receiver untouched.
// Whether the round is finished is derived from the recorded plays, never
// stored.
type BettingRound struct {
	players []Player
	stacks  Stacks
	plays   []Play
	turn    Player
}

// NewBettingRound opens a round for the given players in seating order.
// The first seat acts first. Every player must hold a stack entry.
func NewBettingRound(stacks Stacks, players []Player) (*BettingRound, error) {
	if len(players) == 0 {
		return nil, errors.New("cannot create betting round without players")
	}
	for _, player := range players {
		if _, ok := stacks[player]; !ok {
			return nil, UnknownPlayerError{Player: player, Players: stacks.Players()}
		}
	}
	seats := make([]Player, len(players))
	copy(seats, players)
	return &BettingRound{
		players: seats,
		stacks:  stacks.clone(),
		turn:    seats[0],
	}, nil
}

// NewPreFlopRound opens the first round of a hand with both blinds posted
// automatically: the small blind by the first seat, the big blind by the
// second.
func NewPreFlopRound(stacks Stacks, blinds Blinds, players []Player) (*BettingRound, error) {
	round, err := NewBettingRound(stacks, players)
	if err != nil {
		return nil, err
	}
	round, err = round.nextState(smallBlindBy(round.turn, blinds.SmallBlind()))
	if err != nil {
		return nil, err
	}
	return round.nextState(bigBlindBy(round.turn, blinds.BigBlind()))
}

// Bet opens the wagering: legal only while no chips have been bet this
// round. Once a chip-increasing play exists the player must call, raise or
// fold instead.
func (r *BettingRound) Bet(player Player, amount ChipValue) (*BettingRound, error) {
	if err := r.assertOnTurn(player); err != nil {
		return nil, err
	}
	if last, ok := r.lastPotIncreasingPlay(); ok {
		return nil, IllegalPlayError{Reason: fmt.Sprintf("cannot BET, need to CALL/RAISE/FOLD to: %s", last)}
	}
	return r.nextState(betBy(player, amount))
}

// Call matches the last chip-increasing play's committed total, paying the
// difference to what the player has already put into the pot.
func (r *BettingRound) Call(player Player) (*BettingRound, error) {
	if err := r.assertOnTurn(player); err != nil {
		return nil, err
	}
	last, ok := r.lastPotIncreasingPlay()
	if !ok {
		return nil, IllegalPlayError{Reason: "cannot CALL, no BET to CALL/RAISE/FOLD on"}
	}
	target := last.Total
	already := r.ChipsPutIntoPotBy(player)
	amount, err := target.Minus(already)
	if err != nil {
		return nil, err
	}
	return r.nextState(callBy(player, target, amount))
}

// RaiseTo raises the player's committed total for this round to target.
// The target must be at least double the previous committed total.
func (r *BettingRound) RaiseTo(player Player, target ChipValue) (*BettingRound, error) {
	if err := r.assertOnTurn(player); err != nil {
		return nil, err
	}
	last, ok := r.lastPotIncreasingPlay()
	if !ok {
		return nil, IllegalPlayError{Reason: "cannot RAISE, no BET to CALL/RAISE/FOLD on"}
	}
	previousBet := last.Total
	minimum := MinRaise(previousBet)
	if target.LessThan(minimum) {
		return nil, IllegalPlayError{Reason: fmt.Sprintf(
			"cannot RAISE, current bet is %s, expected raise to %s or higher, got %s",
			previousBet, minimum, target,
		)}
	}
	already := r.ChipsPutIntoPotBy(player)
	amount, err := target.Minus(already)
	if err != nil {
		return nil, err
	}
	return r.nextState(raiseBy(player, target, amount))
}

// Check passes the action without betting. Legal while nobody has bet, or
// for the big blind checking their own option.
func (r *BettingRound) Check(player Player) (*BettingRound, error) {
	if err := r.assertOnTurn(player); err != nil {
		return nil, err
	}
	if last, ok := r.lastPotIncreasingPlay(); ok {
		target, hasTarget := r.lastTargetIncreasingPlay()
		bigBlindOption := hasTarget && target.PlayedBy(player) && target.IsBigBlind()
		if !bigBlindOption {
			return nil, IllegalPlayError{Reason: fmt.Sprintf("cannot CHECK, need to CALL/RAISE/FOLD to: %s", last)}
		}
	}
	return r.nextState(checkBy(player))
}

// Fold gives up the hand. Always legal for the player on turn.
func (r *BettingRound) Fold(player Player) (*BettingRound, error) {
	if err := r.assertOnTurn(player); err != nil {
		return nil, err
	}
	return r.nextState(foldBy(player))
}

// AllIn commits the player's entire remaining stack, as a bet when nobody
// has bet yet, otherwise as a raise.
func (r *BettingRound) AllIn(player Player) (*BettingRound, error) {
	remaining, err := r.RemainingChips(player)
	if err != nil {
		return nil, err
	}
	if _, ok := r.lastPotIncreasingPlay(); !ok {
		return r.Bet(player, remaining)
	}
	return r.RaiseTo(player, remaining)
}

// IsFinished derives whether the round is over from the recorded plays:
//  1. If the last target-increasing play is the forced big blind, the round
//     is finished once only one active player remains, or once the big
//     blind has checked their option.
//  2. If everyone has acted and every play is a check, it is finished.
//  3. If only one active player remains, it is finished.
//  4. Otherwise it is finished once every active player has contributed the
//     same non-zero total to the pot.
func (r *BettingRound) IsFinished() bool {
	if increasing, ok := r.lastTargetIncreasingPlay(); ok && increasing.IsBigBlind() {
		if len(r.RemainingPlayers()) == 1 {
			return true
		}
		last, _ := r.LastPlay()
		return last.PlayedBy(increasing.Player) && last.IsCheck()
	}
	if r.allPlayersHavePlayed() && r.allPlaysAreChecks() {
		return true
	}
	if len(r.RemainingPlayers()) < 2 {
		return true
	}
	distinct := make(map[ChipValue]bool)
	for _, player := range r.RemainingPlayers() {
		distinct[r.ChipsPutIntoPotBy(player)] = true
	}
	return len(distinct) == 1 && !distinct[0]
}

// Turn returns the player whose action is next; ok is false once the round
// is finished.
func (r *BettingRound) Turn() (Player, bool) {
	if r.IsFinished() {
		return "", false
	}
	return r.turn, true
}

// Pot sums all chips added by the recorded plays, blinds included.
func (r *BettingRound) Pot() ChipValue {
	var pot ChipValue
	for _, play := range r.plays {
		pot = pot.Plus(play.Added)
	}
	return pot
}

// ChipsPutIntoPotBy sums the chip deltas of all plays by the given player.
func (r *BettingRound) ChipsPutIntoPotBy(player Player) ChipValue {
	var total ChipValue
	for _, play := range r.plays {
		if play.PlayedBy(player) {
			total = total.Plus(play.Added)
		}
	}
	return total
}

// LastPotIncreasingPlay returns the most recent play that added chips to
// the pot, if any. Its committed total is what a call has to match.
func (r *BettingRound) LastPotIncreasingPlay() (Play, bool) {
	return r.lastPotIncreasingPlay()
}

// LastPlay returns the most recent play, if any.
func (r *BettingRound) LastPlay() (Play, bool) {
	if len(r.plays) == 0 {
		return Play{}, false
	}
	return r.plays[len(r.plays)-1], true
}

// RemainingPlayers lists the seats that have not folded, in seating order.
func (r *BettingRound) RemainingPlayers() []Player {
	remaining := make([]Player, 0, len(r.players))
	for _, player := range r.players {
		if !r.hasFolded(player) {
			remaining = append(remaining, player)
		}
	}
	return remaining
}

// RemainingChips returns the player's current stack.
func (r *BettingRound) RemainingChips(player Player) (ChipValue, error) {
	return r.stacks.Of(player)
}

// Stacks returns a copy of the round's stack ledger.
func (r *BettingRound) Stacks() Stacks {
	return r.stacks.clone()
}

// Plays returns the ordered play history of the round.
func (r *BettingRound) Plays() []Play {
	plays := make([]Play, len(r.plays))
	copy(plays, r.plays)
	return plays
}

func (r *BettingRound) lastPotIncreasingPlay() (Play, bool) {
	for i := len(r.plays) - 1; i >= 0; i-- {
		if r.plays[i].Type.IncreasesPot() {
			return r.plays[i], true
		}
	}
	return Play{}, false
}

func (r *BettingRound) lastTargetIncreasingPlay() (Play, bool) {
	for i := len(r.plays) - 1; i >= 0; i-- {
		if r.plays[i].Type.IncreasesTarget() {
			return r.plays[i], true
		}
	}
	return Play{}, false
}

func (r *BettingRound) nextState(play Play) (*BettingRound, error) {
	updatedStacks, err := r.stacks.Apply(play)
	if err != nil {
		return nil, err
	}
	plays := make([]Play, len(r.plays), len(r.plays)+1)
	copy(plays, r.plays)
	plays = append(plays, play)
	return &BettingRound{
		players: r.players,
		stacks:  updatedStacks,
		plays:   plays,
		turn:    r.nextActiveSeat(r.turn),
	}, nil
}

// nextActiveSeat finds the next seat in order that has not folded, skipping
// any number of consecutive folds and wrapping around the seat list. When
// everyone else has folded it comes back to the current seat.
func (r *BettingRound) nextActiveSeat(current Player) Player {
	index := r.seatIndex(current)
	for step := 1; step <= len(r.players); step++ {
		candidate := r.players[(index+step)%len(r.players)]
		if !r.hasFolded(candidate) {
			return candidate
		}
	}
	return current
}

func (r *BettingRound) seatIndex(player Player) int {
	for i, seat := range r.players {
		if seat == player {
			return i
		}
	}
	return 0
}

func (r *BettingRound) hasFolded(player Player) bool {
	for _, play := range r.plays {
		if play.IsFold() && play.PlayedBy(player) {
			return true
		}
	}
	return false
}

func (r *BettingRound) allPlayersHavePlayed() bool {
	for _, player := range r.players {
		played := false
		for _, play := range r.plays {
			if play.PlayedBy(player) {
				played = true
				break
			}
		}
		if !played {
			return false
		}
	}
	return true
}

func (r *BettingRound) allPlaysAreChecks() bool {
	for _, play := range r.plays {
		if !play.IsCheck() {
			return false
		}
	}
	return true
}

func (r *BettingRound) assertOnTurn(player Player) error {
	if player != r.turn {
		return IllegalPlayError{Reason: fmt.Sprintf(
			"wrong player: %s, next player is: %s", player, r.turn,
		)}
	}
	return nil
}
