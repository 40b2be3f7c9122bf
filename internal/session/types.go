package session

import (
	"context"

	"github.com/goodnatureofminers/neuronet-client/internal/backend"
	"github.com/goodnatureofminers/neuronet-client/internal/model"
	"github.com/goodnatureofminers/neuronet-client/internal/view"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Backend interface {
		CreateWallet(ctx context.Context) (backend.CreatedWallet, error)
		LoadWallet(ctx context.Context, privateKey string) (backend.LoadedWallet, error)
		WalletInfo(ctx context.Context) (model.WalletInfo, error)
	}
	Store interface {
		Get(ctx context.Context, key string) ([]byte, error)
		Set(ctx context.Context, key string, value []byte) error
		Delete(ctx context.Context, key string) error
	}
	Notifier interface {
		Notify(message string, kind model.Kind) uint64
	}
	Display interface {
		Set(s view.Slot, text string) bool
		SetTone(s view.Slot, tone view.Tone) bool
		Reveal(s model.WalletSession)
		CloseDialog()
	}
)

// Hooks are optional capabilities registered by the host.
type Hooks struct {
	// SessionChanged runs after a session becomes active.
	SessionChanged func(ctx context.Context, s model.WalletSession)
	// SessionCleared runs whenever the manager ends up without a session.
	SessionCleared func()
	// Refresh asks the host to refresh network data after a wallet action.
	Refresh func(ctx context.Context)
}
