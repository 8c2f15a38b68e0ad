// Package cli is a thin text adapter over the application services: create
// a game, apply wagering actions, print hand state.
package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pterm/pterm"
	"github.com/sanity-io/litter"

	"github.com/feltkit/holdem/application"
	"github.com/feltkit/holdem/cards"
	"github.com/feltkit/holdem/domain"
)

// App wires the use-case services to a terminal.
type App struct {
	create *application.CreateGameService
	action *application.GameActionService
	load   application.LoadHandPort
	logger *log.Logger
}

func New(store application.HandStore, logger *log.Logger) *App {
	return &App{
		create: application.NewCreateGameService(store, logger),
		action: application.NewGameActionService(store, logger),
		load:   store,
		logger: logger.WithPrefix("cli"),
	}
}

// CreateGame creates a hand and prints its id.
func (a *App) CreateGame(cmd application.CreateGameCommand) error {
	id, err := a.create.Handle(cmd)
	if err != nil {
		return err
	}
	pterm.Success.Printfln("game created: %s", id)
	return nil
}

// Apply forwards one wagering action and renders the resulting state.
func (a *App) Apply(cmd application.GameActionCommand) error {
	hand, err := a.action.Handle(cmd)
	if err != nil {
		return err
	}
	return a.render(cmd.HandID, hand)
}

// Show renders the stored hand. With debug set it dumps the full domain
// state instead of the table view.
func (a *App) Show(id domain.HandID, debug bool) error {
	hand, err := a.load.LoadByID(id)
	if err != nil {
		return err
	}
	if debug {
		fmt.Println(litter.Sdump(hand.Plays()))
		fmt.Println(litter.Sdump(hand.Stacks()))
		return nil
	}
	return a.render(id, hand)
}

func (a *App) render(id domain.HandID, hand *domain.Hand) error {
	pterm.DefaultSection.Printfln("hand %s, %s, pot %s", id, hand.CurrentStreet(), hand.Pot())

	rows := pterm.TableData{{"player", "stack", "committed", "state"}}
	for _, player := range hand.Players() {
		stack, err := hand.Stacks().Of(player)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			player.String(),
			stack.String(),
			hand.CurrentRound().ChipsPutIntoPotBy(player).String(),
			a.stateOf(hand, player),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}

	if board := hand.CommunityCards().Dealt(); len(board) > 0 {
		pterm.Info.Printfln("board: %s", hand.CommunityCards())
	}
	if hand.IsFinished() {
		return a.renderShowdown(hand)
	}
	return nil
}

func (a *App) stateOf(hand *domain.Hand, player domain.Player) string {
	for _, remaining := range hand.RemainingPlayers() {
		if remaining == player {
			if onTurn, ok := hand.CurrentRound().Turn(); ok && onTurn == player {
				return "to act"
			}
			return "in hand"
		}
	}
	return "folded"
}

func (a *App) renderShowdown(hand *domain.Hand) error {
	showdown, err := hand.ShowDown()
	if err != nil {
		return err
	}
	for _, player := range showdown.Players() {
		combination, err := showdown.CombinationOf(player)
		if err != nil {
			return err
		}
		pterm.Printfln("%s: %s holding %s", player, combination, cards.FormatCards(hand.HoleCardsOf(player)))
	}
	pterm.Success.Printfln("winner: %s", showdown.Winner())
	return nil
}
