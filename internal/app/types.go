package app

import (
	"context"

	"github.com/goodnatureofminers/neuronet-client/internal/backend"
	"github.com/goodnatureofminers/neuronet-client/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Backend is the full set of API calls the client issues.
	Backend interface {
		CreateWallet(ctx context.Context) (backend.CreatedWallet, error)
		LoadWallet(ctx context.Context, privateKey string) (backend.LoadedWallet, error)
		WalletInfo(ctx context.Context) (model.WalletInfo, error)
		NetworkStats(ctx context.Context) (model.NetworkStats, error)
		Blockchain(ctx context.Context) ([]model.BlockSummary, error)
		StartMining(ctx context.Context) (string, error)
	}
	// Store persists the wallet session.
	Store interface {
		Get(ctx context.Context, key string) ([]byte, error)
		Set(ctx context.Context, key string, value []byte) error
		Delete(ctx context.Context, key string) error
	}
)
