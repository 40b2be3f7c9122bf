package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type globalOptions struct {
	APIURL      string        `long:"api-url" env:"NEURONET_API_URL" description:"backend base url" default:"http://127.0.0.1:5000"`
	DataDir     string        `long:"data-dir" env:"NEURONET_DATA_DIR" description:"directory of the local session store" default:".neuronet"`
	Profile     string        `long:"profile" env:"NEURONET_PROFILE" description:"client behavior profile" default:"standard" choice:"standard" choice:"classic"`
	Page        string        `long:"page" env:"NEURONET_PAGE" description:"page layout to render" default:"home" choice:"home" choice:"dashboard" choice:"marketplace" choice:"wallet"`
	RPS         int           `long:"rps" env:"NEURONET_RPS" description:"max backend requests per second, 0 for unlimited" default:"20"`
	RevealDelay time.Duration `long:"reveal-delay" env:"NEURONET_REVEAL_DELAY" description:"how long a new private key stays revealed" default:"3s"`
}

// cli carries what every subcommand needs.
type cli struct {
	ctx    context.Context
	logger *zap.Logger
	out    io.Writer
	opts   globalOptions
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	c := &cli{ctx: ctx, logger: logger, out: os.Stdout}
	parser := newParser(c)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 1
	}
	return 0
}

func newParser(c *cli) *flags.Parser {
	parser := flags.NewParser(&c.opts, flags.Default)
	parser.SubcommandsOptional = false

	commands := []struct {
		name, short, long string
		data              any
	}{
		{"watch", "Poll the network and render the page", "Restores the saved wallet, polls the backend on a fixed interval and re-renders the page after every cycle.", &watchCommand{cli: c}},
		{"create-wallet", "Create a new wallet", "Creates a wallet on the backend, stores it locally and prints its keys once.", &createWalletCommand{cli: c}},
		{"load-wallet", "Load a wallet from its private key", "Resolves the wallet owning the private key and stores it locally.", &loadWalletCommand{cli: c}},
		{"start-mining", "Mine a block with the active wallet", "Asks the backend to mine a block and refreshes the network stats.", &startMiningCommand{cli: c}},
		{"wallet-info", "Show the balance of the active wallet", "Fetches the balance of the stored wallet.", &walletInfoCommand{cli: c}},
		{"logout", "Forget the stored wallet", "Removes the stored wallet session.", &logoutCommand{cli: c}},
	}
	for _, cmd := range commands {
		if _, err := parser.AddCommand(cmd.name, cmd.short, cmd.long, cmd.data); err != nil {
			panic("register command " + cmd.name + ": " + err.Error())
		}
	}
	return parser
}
