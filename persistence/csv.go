package persistence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/feltkit/holdem/cards"
	"github.com/feltkit/holdem/domain"
)

// A hand serializes to one five-field record:
//
//	id ; player-stack,... ; smallBlind ; deck ; plays
//
// Seats and stacks come from the memento, so a loaded hand replays from
// every player's starting balance. The deck field holds the original deck
// in its entirety, which makes the replay deterministic. Plays are the
// ordered non-blind actions as player-code pairs ("alice-CH", "bob-R-80");
// the forced blinds are not recorded since dealing reposts them.

const recordFields = 5

func playCode(t domain.PlayType) (string, bool) {
	switch t {
	case domain.CheckPlay:
		return "CH", true
	case domain.CallPlay:
		return "CA", true
	case domain.RaisePlay:
		return "R", true
	case domain.BetPlay:
		return "B", true
	case domain.FoldPlay:
		return "F", true
	default:
		return "", false
	}
}

func encodeHand(id domain.HandID, hand *domain.Hand) []string {
	memento := hand.Memento()
	stacks := memento.Stacks()

	seats := make([]string, 0, len(memento.Players()))
	for _, player := range memento.Players() {
		seats = append(seats, fmt.Sprintf("%s-%d", player, stacks[player].Value()))
	}

	plays := make([]string, 0, len(hand.Plays()))
	for _, play := range hand.Plays() {
		code, ok := playCode(play.Type)
		if !ok {
			continue // blinds are reposted on load
		}
		entry := fmt.Sprintf("%s-%s", play.Player, code)
		if play.Type == domain.BetPlay || play.Type == domain.RaisePlay {
			entry = fmt.Sprintf("%s-%d", entry, play.Total.Value())
		}
		plays = append(plays, entry)
	}

	return []string{
		id.String(),
		strings.Join(seats, ","),
		strconv.FormatInt(hand.Blinds().SmallBlind().Value(), 10),
		cards.FormatCards(memento.Deck().Cards()),
		strings.Join(plays, ","),
	}
}

func decodeHand(record []string) (domain.HandID, *domain.Hand, error) {
	if len(record) != recordFields {
		return "", nil, fmt.Errorf("malformed hand record: expected %d fields, got %d", recordFields, len(record))
	}
	id := domain.HandID(record[0])

	players, stacks, err := decodeSeats(record[1])
	if err != nil {
		return "", nil, fmt.Errorf("hand %s: %w", id, err)
	}

	smallBlind, err := strconv.ParseInt(record[2], 10, 64)
	if err != nil {
		return "", nil, fmt.Errorf("hand %s: parsing small blind %q: %w", id, record[2], err)
	}
	blind, err := domain.NewChipValue(smallBlind)
	if err != nil {
		return "", nil, fmt.Errorf("hand %s: %w", id, err)
	}

	deckCards, err := cards.ParseCards(record[3])
	if err != nil {
		return "", nil, fmt.Errorf("hand %s: parsing deck: %w", id, err)
	}

	hand, err := domain.NewHand(cards.NewDeck(deckCards...), players, domain.NewBlinds(blind), stacks)
	if err != nil {
		return "", nil, fmt.Errorf("hand %s: dealing: %w", id, err)
	}
	hand, err = replayPlays(hand, record[4])
	if err != nil {
		return "", nil, fmt.Errorf("hand %s: %w", id, err)
	}
	return id, hand, nil
}

func decodeSeats(field string) ([]domain.Player, domain.Stacks, error) {
	entries := strings.Split(field, ",")
	players := make([]domain.Player, 0, len(entries))
	balances := make(map[domain.Player]domain.ChipValue, len(entries))
	for _, entry := range entries {
		name, stack, ok := strings.Cut(entry, "-")
		if !ok {
			return nil, nil, fmt.Errorf("malformed seat %q", entry)
		}
		chips, err := strconv.ParseInt(stack, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing stack of seat %q: %w", entry, err)
		}
		value, err := domain.NewChipValue(chips)
		if err != nil {
			return nil, nil, err
		}
		player := domain.Player(name)
		players = append(players, player)
		balances[player] = value
	}
	return players, domain.NewStacks(balances), nil
}

func replayPlays(hand *domain.Hand, field string) (*domain.Hand, error) {
	if field == "" {
		return hand, nil
	}
	for _, entry := range strings.Split(field, ",") {
		parts := strings.Split(entry, "-")
		if len(parts) < 2 {
			return nil, fmt.Errorf("malformed play %q", entry)
		}
		player := domain.Player(parts[0])

		var err error
		switch parts[1] {
		case "CH":
			hand, err = hand.Check(player)
		case "CA":
			hand, err = hand.Call(player)
		case "F":
			hand, err = hand.Fold(player)
		case "B", "R":
			if len(parts) < 3 {
				return nil, fmt.Errorf("play %q is missing its chip target", entry)
			}
			target, parseErr := strconv.ParseInt(parts[2], 10, 64)
			if parseErr != nil {
				return nil, fmt.Errorf("parsing chip target of play %q: %w", entry, parseErr)
			}
			if parts[1] == "B" {
				hand, err = hand.Bet(player, domain.ChipValue(target))
			} else {
				hand, err = hand.RaiseTo(player, domain.ChipValue(target))
			}
		default:
			return nil, fmt.Errorf("could not parse play %q for player %s", parts[1], player)
		}
		if err != nil {
			return nil, fmt.Errorf("replaying play %q: %w", entry, err)
		}
	}
	return hand, nil
}
