package application

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/feltkit/holdem/cards"
	"github.com/feltkit/holdem/domain"
)

// CreateGameService deals a fresh hand from a shuffled deck and saves it.
type CreateGameService struct {
	save   SaveHandPort
	logger *log.Logger
}

func NewCreateGameService(save SaveHandPort, logger *log.Logger) *CreateGameService {
	return &CreateGameService{
		save:   save,
		logger: logger.WithPrefix("create-game"),
	}
}

// Handle creates the hand described by the command and returns its id,
// minting one when the command carries none.
func (s *CreateGameService) Handle(cmd CreateGameCommand) (domain.HandID, error) {
	if len(cmd.Seats) < 2 {
		return "", fmt.Errorf("cannot create a game with %d seats, need at least 2", len(cmd.Seats))
	}
	if cmd.SmallBlind.LessThan(1) {
		return "", fmt.Errorf("small blind must be positive, got %s", cmd.SmallBlind)
	}

	id := cmd.GameID
	if id == "" {
		id = domain.NewHandID()
	}

	players := make([]domain.Player, 0, len(cmd.Seats))
	balances := make(map[domain.Player]domain.ChipValue, len(cmd.Seats))
	for _, seat := range cmd.Seats {
		players = append(players, seat.Player)
		balances[seat.Player] = seat.Stack
	}

	hand, err := domain.NewHand(cards.Shuffled(), players, domain.NewBlinds(cmd.SmallBlind), domain.NewStacks(balances))
	if err != nil {
		return "", fmt.Errorf("dealing hand: %w", err)
	}
	if err := s.save.SaveHand(id, hand); err != nil {
		return "", fmt.Errorf("saving hand %s: %w", id, err)
	}

	s.logger.Info("game created", "hand_id", id, "players", len(players), "small_blind", cmd.SmallBlind)
	return id, nil
}
