// Package poller keeps the page in sync with the backend network state.
package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/neuronet-client/internal/backend"
	"github.com/goodnatureofminers/neuronet-client/internal/clock"
	"github.com/goodnatureofminers/neuronet-client/internal/model"
	"github.com/goodnatureofminers/neuronet-client/internal/session"
	"github.com/goodnatureofminers/neuronet-client/internal/view"
	"go.uber.org/zap"
)

// Poller fetches network stats and recent blocks and projects them into the page.
type Poller struct {
	logger   *zap.Logger
	backend  Backend
	sessions SessionSource
	notifier Notifier
	display  Display
	metrics  Metrics
	profile  model.Profile
	hooks    Hooks
	interval time.Duration
	every    func(context.Context, time.Duration, func(context.Context)) error
	window   *Window
}

// New builds a Poller. A non-positive interval selects DefaultInterval.
// The chart window exists only when the display has a chart.
func New(
	b Backend,
	sessions SessionSource,
	notifier Notifier,
	display Display,
	metrics Metrics,
	profile model.Profile,
	interval time.Duration,
	hooks Hooks,
	logger *zap.Logger,
) (*Poller, error) {
	if display == nil {
		return nil, errors.New("poller display is required")
	}
	if metrics == nil {
		return nil, errors.New("poller metrics is required")
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	p := &Poller{
		logger:   logger,
		backend:  b,
		sessions: sessions,
		notifier: notifier,
		display:  display,
		metrics:  metrics,
		profile:  profile,
		hooks:    hooks,
		interval: interval,
		every:    clock.Every,
	}
	if display.HasChart() {
		p.window = NewWindow(chartCapacity)
	}
	return p, nil
}

// Window returns the chart window, or nil when the page has no chart.
func (p *Poller) Window() *Window {
	return p.window
}

// SeedChart fills the chart with placeholder points and renders it.
func (p *Poller) SeedChart() {
	if p.window == nil {
		return
	}
	p.window.Seed()
	p.display.SetChart(p.window.Points())
}

// PollOnce runs one cycle: stats first, then the recent blocks panel.
// Only a failed stats fetch fails the cycle.
func (p *Poller) PollOnce(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveCycle(err, started)
	}()

	stats, err := p.backend.NetworkStats(ctx)
	if err != nil {
		p.logger.Warn("update network stats failed", zap.Error(err))
		return fmt.Errorf("fetch network stats: %w", err)
	}

	p.projectStats(stats)
	p.metrics.ObserveHeight(stats.BlockchainLength)
	if p.hooks.Stats != nil {
		p.hooks.Stats(stats)
	}

	if p.window != nil {
		p.window.Push(model.ChartPoint{
			Label: fmt.Sprintf("Block %d", stats.BlockchainLength),
			Value: float64(stats.PendingTransactions),
		})
		p.display.SetChart(p.window.Points())
	}

	if p.wantsRecentBlocks() {
		if blocksErr := p.updateRecentBlocks(ctx); blocksErr != nil {
			p.logger.Warn("update recent blocks failed", zap.Error(blocksErr))
		}
	}
	return nil
}

func (p *Poller) projectStats(s model.NetworkStats) {
	intelligence := formatFixed(s.TotalIntelligence, p.profile.IntelligencePrecision)
	difficulty := formatNumber(s.CurrentDifficulty)

	p.display.Set(view.SlotTotalNFTs, formatInt(s.TotalNFTs))
	p.display.Set(view.SlotBlockHeight, formatInt(s.BlockchainLength))
	p.display.Set(view.SlotNetworkIntelligence, intelligence)
	p.display.Set(view.SlotTotalIntelligence, intelligence)
	p.display.Set(view.SlotCurrentDifficulty, difficulty)
	p.display.Set(view.SlotNetworkDifficulty, difficulty)
	p.display.Set(view.SlotPendingTx, formatInt(s.PendingTransactions))
	p.display.Set(view.SlotMiningReward, formatNumber(s.MiningReward)+currencySuffix)
	p.display.Set(view.SlotTotalValue, formatNumber(s.TotalValue)+currencySuffix)

	p.display.Set(view.SlotMarketTotalNFTs, formatInt(s.TotalNFTs))
	p.display.Set(view.SlotMarketTotalValue, formatNumber(s.TotalValue))
	p.display.Set(view.SlotMarketAvgIntelligence, formatNumber(s.AverageIntelligence))
}

func (p *Poller) wantsRecentBlocks() bool {
	if !p.display.HasRecentBlocks() {
		return false
	}
	if !p.profile.RecentBlocksRequireSession {
		return true
	}
	_, ok := p.sessions.Current()
	return ok
}

func (p *Poller) updateRecentBlocks(ctx context.Context) error {
	chain, err := p.backend.Blockchain(ctx)
	if err != nil {
		return err
	}
	// An empty chain keeps whatever the panel shows.
	if len(chain) == 0 {
		return nil
	}

	rows := recentRows(chain, recentBlocksLimit)
	p.display.SetRecentBlocks(rows)
	p.metrics.ObserveRecentBlocks(len(rows))
	if p.hooks.Blocks != nil {
		p.hooks.Blocks(rows)
	}
	return nil
}

// StartMining asks the backend to mine a block for the active wallet and
// refreshes the stats on success.
func (p *Poller) StartMining(ctx context.Context) error {
	if _, ok := p.sessions.Current(); !ok {
		p.notifier.Notify(msgConnectFirst, model.KindWarning)
		p.display.OpenDialog()
		return session.ErrNoSession
	}

	message, err := p.backend.StartMining(ctx)
	if err != nil {
		p.logger.Error("start mining failed", zap.Error(err))
		if errors.Is(err, backend.ErrBusiness) {
			p.notifier.Notify(backend.Reason(err, msgMiningFailed), model.KindError)
		} else {
			p.notifier.Notify("Error starting mining: "+err.Error(), model.KindError)
		}
		return err
	}

	p.notifier.Notify(message, model.KindSuccess)
	if err = p.PollOnce(ctx); err != nil {
		p.logger.Warn("refresh after mining failed", zap.Error(err))
	}
	return nil
}

// Handle controls a running schedule.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop cancels the schedule and waits for the loop to exit. It is safe to call
// more than once and from several goroutines, but not from a Cycle hook: the
// loop waits for the hook, so use Cancel there.
func (h *Handle) Stop() {
	h.cancel()
	<-h.done
}

// Cancel stops the schedule without waiting for the loop to exit.
// No further cycle starts once it returns.
func (h *Handle) Cancel() {
	h.cancel()
}

// Done is closed once the schedule has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Schedule polls immediately and then every interval until ctx is canceled or
// the returned handle is stopped. Failed cycles are logged and the schedule
// continues.
func (p *Poller) Schedule(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	p.logger.Info("starting network poller", zap.Duration("interval", p.interval))
	go func() {
		defer close(h.done)
		err := p.every(ctx, p.interval, func(ctx context.Context) {
			cycleErr := p.PollOnce(ctx)
			if cycleErr != nil && ctx.Err() == nil {
				p.logger.Warn("poll cycle failed", zap.Error(cycleErr))
			}
			if p.hooks.Cycle != nil {
				p.hooks.Cycle(cycleErr)
			}
		})
		p.logger.Info("network poller stopped", zap.Error(err))
	}()
	return h
}
