package main

import (
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/neuronet-client/internal/app"
	"github.com/goodnatureofminers/neuronet-client/internal/backend"
	"github.com/goodnatureofminers/neuronet-client/internal/metrics"
	"github.com/goodnatureofminers/neuronet-client/internal/model"
	"github.com/goodnatureofminers/neuronet-client/internal/notify"
	"github.com/goodnatureofminers/neuronet-client/internal/storage/kvstore"
	"github.com/goodnatureofminers/neuronet-client/internal/view"
	"go.uber.org/zap"
)

// runtime is an opened client: the session store and the controller on top of it.
type runtime struct {
	store      *kvstore.Store
	controller *app.Controller
}

func (r *runtime) Close() {
	r.controller.Close()
	_ = r.store.Close()
}

func (c *cli) open(opts app.Options, sinks ...notify.Sink) (*runtime, error) {
	profile, err := model.ProfileByName(c.opts.Profile)
	if err != nil {
		return nil, err
	}
	layout, err := view.LayoutByName(c.opts.Page)
	if err != nil {
		return nil, err
	}

	store, err := kvstore.Open(c.opts.DataDir, c.logger.Named("kvstore"))
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	client := backend.NewClient(c.opts.APIURL, &http.Client{}, c.opts.RPS, metrics.NewBackendClient(profile.Name))

	opts.Profile = profile
	opts.Layout = layout
	opts.RevealDelay = c.opts.RevealDelay
	controller, err := app.New(client, store, opts, c.logger, sinks...)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	c.logger.Debug("client ready",
		zap.String("api_url", c.opts.APIURL),
		zap.String("data_dir", c.opts.DataDir),
		zap.String("profile", profile.Name),
		zap.String("page", layout.Name),
	)
	return &runtime{store: store, controller: controller}, nil
}

// action opens a runtime that prints notifications as they happen, restores the
// stored wallet and runs fn.
func (c *cli) action(fn func(r *runtime) error) error {
	r, err := c.open(app.Options{}, notify.NewWriterSink(c.out))
	if err != nil {
		return err
	}
	defer r.Close()

	r.controller.Restore(c.ctx)
	return fn(r)
}
