package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/feltkit/holdem/application"
	"github.com/feltkit/holdem/cli"
	"github.com/feltkit/holdem/domain"
	"github.com/feltkit/holdem/persistence"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `help:"Path to HCL configuration file" default:"holdem.hcl"`
	Debug   bool             `help:"Enable debug logging"`

	Create CreateCmd `cmd:"" help:"Create a new hand"`
	Act    ActCmd    `cmd:"" help:"Apply a wagering action to a hand"`
	Show   ShowCmd   `cmd:"" help:"Print the state of a hand"`
}

type runtime struct {
	app    *cli.App
	config *persistence.Config
}

type CreateCmd struct {
	ID         string   `help:"Hand id, minted when empty"`
	SmallBlind int64    `help:"Small blind, defaults to the configured value"`
	Seats      []string `arg:"" name:"seat" help:"player or player=stack, in seating order"`
}

func (c *CreateCmd) Run(rt *runtime) error {
	smallBlind := c.SmallBlind
	if smallBlind == 0 {
		smallBlind = rt.config.Table.SmallBlind
	}

	seats := make([]application.Seat, 0, len(c.Seats))
	for _, entry := range c.Seats {
		name, stackString, hasStack := strings.Cut(entry, "=")
		stack := rt.config.Table.StartingStack
		if hasStack {
			parsed, err := strconv.ParseInt(stackString, 10, 64)
			if err != nil {
				return fmt.Errorf("parsing stack of seat %q: %w", entry, err)
			}
			stack = parsed
		}
		chips, err := domain.NewChipValue(stack)
		if err != nil {
			return err
		}
		seats = append(seats, application.Seat{Player: domain.Player(name), Stack: chips})
	}

	blind, err := domain.NewChipValue(smallBlind)
	if err != nil {
		return err
	}
	return rt.app.CreateGame(application.CreateGameCommand{
		GameID:     domain.HandID(c.ID),
		Seats:      seats,
		SmallBlind: blind,
	})
}

type ActCmd struct {
	HandID string `arg:"" help:"Hand id"`
	Player string `arg:"" help:"Acting player"`
	Action string `arg:"" help:"One of BET, RAISE, FOLD, CHECK, CALL"`
	Target int64  `arg:"" optional:"" help:"Chip target for BET and RAISE"`
}

func (c *ActCmd) Run(rt *runtime) error {
	target, err := domain.NewChipValue(c.Target)
	if err != nil {
		return err
	}
	return rt.app.Apply(application.GameActionCommand{
		HandID:      domain.HandID(c.HandID),
		PlayerID:    domain.Player(c.Player),
		Action:      strings.ToUpper(c.Action),
		TargetChips: target,
	})
}

type ShowCmd struct {
	HandID string `arg:"" help:"Hand id"`
	Dump   bool   `help:"Dump raw domain state instead of the table view"`
}

func (c *ShowCmd) Run(rt *runtime) error {
	return rt.app.Show(domain.HandID(c.HandID), c.Dump)
}

func main() {
	var flags CLI
	ctx := kong.Parse(&flags,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em hand engine with CSV persistence"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := log.New(os.Stderr)
	if flags.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	config, err := persistence.LoadConfig(flags.Config)
	ctx.FatalIfErrorf(err)

	store := persistence.NewFileStore(config.Storage.CSVPath, logger)
	rt := &runtime{
		app:    cli.New(store, logger),
		config: config,
	}
	ctx.FatalIfErrorf(ctx.Run(rt))
}
