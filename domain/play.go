package domain

import "fmt"

// PlayType is the kind of wagering action recorded in a betting round.
type PlayType int

const (
	SmallBlindPlay PlayType = iota
	BigBlindPlay
	BetPlay
	CallPlay
	RaisePlay
	CheckPlay
	FoldPlay
)

func (t PlayType) String() string {
	switch t {
	case SmallBlindPlay:
		return "SMALL_BLIND"
	case BigBlindPlay:
		return "BIG_BLIND"
	case BetPlay:
		return "BET"
	case CallPlay:
		return "CALL"
	case RaisePlay:
		return "RAISE"
	case CheckPlay:
		return "CHECK"
	case FoldPlay:
		return "FOLD"
	default:
		return fmt.Sprintf("PlayType(%d)", int(t))
	}
}

// IncreasesPot reports whether plays of this type add chips to the pot.
func (t PlayType) IncreasesPot() bool {
	switch t {
	case SmallBlindPlay, BigBlindPlay, BetPlay, CallPlay, RaisePlay:
		return true
	default:
		return false
	}
}

// IncreasesTarget reports whether plays of this type raise the total a
// player must commit to stay in the round. Calls match the target but do
// not move it.
func (t PlayType) IncreasesTarget() bool {
	switch t {
	case SmallBlindPlay, BigBlindPlay, BetPlay, RaisePlay:
		return true
	default:
		return false
	}
}

// Play is one immutable wagering action. Added is the number of chips this
// action moved into the pot; Total is the player's committed total for the
// round after the action. Both are zero for checks and folds.
type Play struct {
	Player Player
	Type   PlayType
	Added  ChipValue
	Total  ChipValue
}

func foldBy(player Player) Play {
	return Play{Player: player, Type: FoldPlay}
}

func checkBy(player Player) Play {
	return Play{Player: player, Type: CheckPlay}
}

func betBy(player Player, amount ChipValue) Play {
	return Play{Player: player, Type: BetPlay, Added: amount, Total: amount}
}

func callBy(player Player, target, added ChipValue) Play {
	return Play{Player: player, Type: CallPlay, Added: added, Total: target}
}

func raiseBy(player Player, target, added ChipValue) Play {
	return Play{Player: player, Type: RaisePlay, Added: added, Total: target}
}

func smallBlindBy(player Player, amount ChipValue) Play {
	return Play{Player: player, Type: SmallBlindPlay, Added: amount, Total: amount}
}

func bigBlindBy(player Player, amount ChipValue) Play {
	return Play{Player: player, Type: BigBlindPlay, Added: amount, Total: amount}
}

// PlayedBy reports whether the play was made by the given player.
func (p Play) PlayedBy(player Player) bool {
	return p.Player == player
}

// IsCheck reports whether the play is a check.
func (p Play) IsCheck() bool {
	return p.Type == CheckPlay
}

// IsFold reports whether the play is a fold.
func (p Play) IsFold() bool {
	return p.Type == FoldPlay
}

// IsBigBlind reports whether the play is the forced big-blind post.
func (p Play) IsBigBlind() bool {
	return p.Type == BigBlindPlay
}

// IsBlind reports whether the play is one of the forced blind posts.
func (p Play) IsBlind() bool {
	return p.Type == SmallBlindPlay || p.Type == BigBlindPlay
}

func (p Play) String() string {
	if p.Type.IncreasesPot() {
		return fmt.Sprintf("Play{%s %s added %s to %s}", p.Player, p.Type, p.Added, p.Total)
	}
	return fmt.Sprintf("Play{%s %s}", p.Player, p.Type)
}
