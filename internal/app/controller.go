// Package app wires the session, poller and notification components into a client.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goodnatureofminers/neuronet-client/internal/metrics"
	"github.com/goodnatureofminers/neuronet-client/internal/model"
	"github.com/goodnatureofminers/neuronet-client/internal/notify"
	"github.com/goodnatureofminers/neuronet-client/internal/poller"
	"github.com/goodnatureofminers/neuronet-client/internal/session"
	"github.com/goodnatureofminers/neuronet-client/internal/view"
	"go.uber.org/zap"
)

// Options configure a Controller. Zero durations select the component defaults.
type Options struct {
	Profile         model.Profile
	Layout          view.Layout
	PollInterval    time.Duration
	RevealDelay     time.Duration
	NotificationTTL time.Duration

	// OnSessionChange runs after a wallet session becomes active.
	OnSessionChange func(s model.WalletSession)
	// OnCycle runs after every scheduled poll cycle on the poller goroutine.
	// It must not call Stop on the schedule handle; Cancel is safe.
	OnCycle func(err error)
}

// Controller is the client: it owns the page, the wallet session and the poll schedule.
type Controller struct {
	logger    *zap.Logger
	opts      Options
	page      *view.Page
	presenter *notify.Presenter
	sessions  *session.Manager
	poller    *poller.Poller

	mu    sync.RWMutex
	state State
}

// New builds a Controller. Extra sinks receive every notification next to the page.
func New(b Backend, store Store, opts Options, logger *zap.Logger, sinks ...notify.Sink) (*Controller, error) {
	if b == nil {
		return nil, errors.New("backend is required")
	}
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if opts.Profile.Name == "" {
		opts.Profile = model.StandardProfile
	}
	if opts.Layout.Name == "" {
		opts.Layout = view.HomeLayout
	}

	logger = logger.With(zap.String("profile", opts.Profile.Name), zap.String("page", opts.Layout.Name))
	c := &Controller{
		logger: logger,
		opts:   opts,
		page:   view.NewPage(opts.Layout),
	}

	c.presenter = notify.NewPresenter(
		logger.Named("notify"),
		metrics.NewNotifier(),
		opts.NotificationTTL,
		append([]notify.Sink{c.page}, sinks...)...,
	)

	c.sessions = session.NewManager(b, store, c.presenter, c.page, opts.Profile, session.Hooks{
		SessionChanged: c.sessionChanged,
		SessionCleared: c.sessionCleared,
		Refresh:        c.refresh,
	}, logger.Named("session"))
	c.sessions.SetRevealDelay(opts.RevealDelay)

	p, err := poller.New(b, c.sessions, c.presenter, c.page, metrics.NewPoller(opts.Layout.Name), opts.Profile, opts.PollInterval, poller.Hooks{
		Stats:  c.statsFetched,
		Blocks: c.blocksFetched,
		Cycle:  c.cycleDone,
	}, logger.Named("poller"))
	if err != nil {
		return nil, err
	}
	c.poller = p
	return c, nil
}

// Page returns the page the controller renders into.
func (c *Controller) Page() *view.Page {
	return c.page
}

// Restore activates the persisted wallet session, if any.
func (c *Controller) Restore(ctx context.Context) bool {
	return c.sessions.Restore(ctx)
}

// Start restores the session, seeds the chart and schedules polling.
// The returned handle stops the schedule.
func (c *Controller) Start(ctx context.Context) *poller.Handle {
	c.sessions.Restore(ctx)
	c.poller.SeedChart()
	c.syncChart()
	return c.poller.Schedule(ctx)
}

// Refresh runs a single poll cycle.
func (c *Controller) Refresh(ctx context.Context) error {
	err := c.poller.PollOnce(ctx)
	c.recordCycle(err)
	return err
}

// CreateWallet creates, reveals and activates a new wallet.
func (c *Controller) CreateWallet(ctx context.Context) error {
	return c.sessions.Create(ctx)
}

// LoadWallet activates the wallet owning privateKey.
func (c *Controller) LoadWallet(ctx context.Context, privateKey string) error {
	return c.sessions.Load(ctx, privateKey)
}

// StartMining asks the backend to mine with the active wallet.
func (c *Controller) StartMining(ctx context.Context) error {
	return c.poller.StartMining(ctx)
}

// WalletInfo fetches the balance of the active wallet.
func (c *Controller) WalletInfo(ctx context.Context) (model.WalletInfo, error) {
	return c.sessions.RefreshWalletInfo(ctx)
}

// Logout forgets the active wallet.
func (c *Controller) Logout(ctx context.Context) error {
	return c.sessions.Logout(ctx)
}

// State returns a copy of the controller state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.clone()
}

// Snapshot returns the serializable controller view.
func (c *Controller) Snapshot() Snapshot {
	st := c.State()
	snap := Snapshot{
		Profile: c.opts.Profile.Name,
		Stats:   st.Stats,
		Page:    c.page.Snapshot(),
	}
	if st.Session != nil {
		snap.Connected = true
		snap.Address = st.Session.Address
	}
	if !st.LastPoll.IsZero() {
		snap.LastPoll = &st.LastPoll
	}
	if st.LastPollErr != nil {
		snap.LastPollErr = st.LastPollErr.Error()
	}
	return snap
}

// Close stops pending notification timers.
func (c *Controller) Close() {
	c.presenter.Close()
}

func (c *Controller) sessionChanged(_ context.Context, s model.WalletSession) {
	c.mu.Lock()
	c.state.Session = &s
	c.mu.Unlock()

	if c.opts.OnSessionChange != nil {
		c.opts.OnSessionChange(s)
	}
}

func (c *Controller) sessionCleared() {
	c.mu.Lock()
	c.state.Session = nil
	c.mu.Unlock()
}

func (c *Controller) refresh(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil {
		c.logger.Warn("refresh after wallet action failed", zap.Error(err))
	}
}

func (c *Controller) statsFetched(stats model.NetworkStats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Stats = &stats
}

func (c *Controller) blocksFetched(rows []view.BlockRow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.RecentBlocks = append([]view.BlockRow(nil), rows...)
}

func (c *Controller) cycleDone(err error) {
	c.recordCycle(err)
	if c.opts.OnCycle != nil {
		c.opts.OnCycle(err)
	}
}

func (c *Controller) recordCycle(err error) {
	c.mu.Lock()
	c.state.LastPoll = time.Now()
	c.state.LastPollErr = err
	c.mu.Unlock()
	c.syncChart()
}

func (c *Controller) syncChart() {
	w := c.poller.Window()
	if w == nil {
		return
	}
	points := w.Points()
	c.mu.Lock()
	c.state.Chart = points
	c.mu.Unlock()
}
