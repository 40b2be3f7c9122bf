package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neuronet-client/internal/app"
	"github.com/goodnatureofminers/neuronet-client/internal/transport"
	"go.uber.org/zap"
)

type watchCommand struct {
	PollInterval time.Duration `long:"poll-interval" env:"NEURONET_POLL_INTERVAL" description:"interval between network polls" default:"10s"`
	StatusAddr   string        `long:"status-addr" env:"NEURONET_STATUS_ADDR" description:"serve /status and /metrics on this address"`

	cli *cli
}

func (w *watchCommand) Execute([]string) error {
	c := w.cli
	var r *runtime
	r, err := c.open(app.Options{
		PollInterval: w.PollInterval,
		OnCycle: func(error) {
			fmt.Fprintf(c.out, "\n-- %s --\n", time.Now().Format(time.TimeOnly))
			if renderErr := r.controller.Page().Render(c.out); renderErr != nil {
				c.logger.Warn("render page failed", zap.Error(renderErr))
			}
		},
	})
	if err != nil {
		return err
	}
	defer r.Close()

	if w.StatusAddr != "" {
		s := transport.NewServer(w.StatusAddr, transport.NewMux(r.controller, c.logger.Named("transport")))
		go func() {
			if serveErr := transport.Serve(c.ctx, s, c.logger); serveErr != nil {
				c.logger.Error("status server failed", zap.Error(serveErr))
			}
		}()
	}

	h := r.controller.Start(c.ctx)
	<-h.Done()
	c.logger.Info("watch stopped")
	return nil
}

type createWalletCommand struct {
	cli *cli
}

func (cmd *createWalletCommand) Execute([]string) error {
	return cmd.cli.action(func(r *runtime) error {
		if err := r.controller.CreateWallet(cmd.cli.ctx); err != nil {
			return err
		}
		s := r.controller.State().Session
		if s == nil {
			return errors.New("wallet was not activated")
		}
		out := cmd.cli.out
		fmt.Fprintf(out, "Address:     %s\n", s.Address)
		fmt.Fprintf(out, "Public key:  %s\n", s.PublicKey)
		fmt.Fprintf(out, "Private key: %s\n", s.PrivateKey)
		return nil
	})
}

type loadWalletCommand struct {
	PrivateKey string `long:"private-key" env:"NEURONET_PRIVATE_KEY" description:"private key of the wallet to load, also accepted as the first argument"`

	cli *cli
}

func (cmd *loadWalletCommand) Execute(args []string) error {
	key := cmd.PrivateKey
	if key == "" && len(args) > 0 {
		key = args[0]
	}
	return cmd.cli.action(func(r *runtime) error {
		return r.controller.LoadWallet(cmd.cli.ctx, key)
	})
}

type startMiningCommand struct {
	cli *cli
}

func (cmd *startMiningCommand) Execute([]string) error {
	return cmd.cli.action(func(r *runtime) error {
		if err := r.controller.StartMining(cmd.cli.ctx); err != nil {
			return err
		}
		return r.controller.Page().Render(cmd.cli.out)
	})
}

type walletInfoCommand struct {
	cli *cli
}

func (cmd *walletInfoCommand) Execute([]string) error {
	return cmd.cli.action(func(r *runtime) error {
		info, err := r.controller.WalletInfo(cmd.cli.ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.cli.out, "%s\t%.2f\n", info.Address, info.Balance)
		return nil
	})
}

type logoutCommand struct {
	cli *cli
}

func (cmd *logoutCommand) Execute([]string) error {
	return cmd.cli.action(func(r *runtime) error {
		return r.controller.Logout(cmd.cli.ctx)
	})
}
