package poller

import (
	"context"
	"time"

	"github.com/goodnatureofminers/neuronet-client/internal/model"
	"github.com/goodnatureofminers/neuronet-client/internal/view"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Backend interface {
		NetworkStats(ctx context.Context) (model.NetworkStats, error)
		Blockchain(ctx context.Context) ([]model.BlockSummary, error)
		StartMining(ctx context.Context) (string, error)
	}
	SessionSource interface {
		Current() (model.WalletSession, bool)
	}
	Notifier interface {
		Notify(message string, kind model.Kind) uint64
	}
	Display interface {
		Set(s view.Slot, text string) bool
		HasRecentBlocks() bool
		SetRecentBlocks(rows []view.BlockRow) bool
		HasChart() bool
		SetChart(points []model.ChartPoint) bool
		OpenDialog()
	}
	Metrics interface {
		ObserveCycle(err error, started time.Time)
		ObserveHeight(height int64)
		ObserveRecentBlocks(rows int)
	}
)

// Hooks receive the outcome of poll cycles. Every field is optional.
type Hooks struct {
	// Stats runs with every successfully fetched stats snapshot.
	Stats func(stats model.NetworkStats)
	// Blocks runs with every rendered recent blocks panel.
	Blocks func(rows []view.BlockRow)
	// Cycle runs at the end of every scheduled cycle.
	Cycle func(err error)
}
