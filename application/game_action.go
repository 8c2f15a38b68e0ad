package application

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/feltkit/holdem/domain"
)

// ErrUnknownAction rejects a command whose action name is not one of the
// five player-initiated play types. This is a rejected command, not a
// state-machine error: the stored hand is left untouched.
var ErrUnknownAction = errors.New("unknown action")

// GameActionService loads a hand, applies one wagering action and saves
// the result.
type GameActionService struct {
	store  HandStore
	logger *log.Logger
}

func NewGameActionService(store HandStore, logger *log.Logger) *GameActionService {
	return &GameActionService{
		store:  store,
		logger: logger.WithPrefix("game-action"),
	}
}

// Handle applies the command's action to the stored hand and returns the
// updated hand.
func (s *GameActionService) Handle(cmd GameActionCommand) (*domain.Hand, error) {
	hand, err := s.store.LoadByID(cmd.HandID)
	if err != nil {
		return nil, err
	}

	updated, err := s.apply(hand, cmd)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveHand(cmd.HandID, updated); err != nil {
		return nil, fmt.Errorf("saving hand %s: %w", cmd.HandID, err)
	}

	s.logger.Info("action applied",
		"hand_id", cmd.HandID,
		"player", cmd.PlayerID,
		"action", cmd.Action,
		"street", updated.CurrentStreet(),
		"pot", updated.Pot(),
	)
	return updated, nil
}

func (s *GameActionService) apply(hand *domain.Hand, cmd GameActionCommand) (*domain.Hand, error) {
	switch cmd.Action {
	case "BET":
		return hand.Bet(cmd.PlayerID, cmd.TargetChips)
	case "RAISE":
		return hand.RaiseTo(cmd.PlayerID, cmd.TargetChips)
	case "FOLD":
		return hand.Fold(cmd.PlayerID)
	case "CHECK":
		return hand.Check(cmd.PlayerID)
	case "CALL":
		return hand.Call(cmd.PlayerID)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}
}
