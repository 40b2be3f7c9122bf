// Package backend is the HTTP client for the NeuroNet backend API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goodnatureofminers/neuronet-client/internal/model"
	"go.uber.org/ratelimit"
)

const (
	pathCreateWallet = "/api/create-wallet"
	pathLoadWallet   = "/api/load-wallet"
	pathWalletInfo   = "/api/wallet-info"
	pathNetworkStats = "/api/network-stats"
	pathBlockchain   = "/api/blockchain"
	pathStartMining  = "/api/start-mining"
)

// Client calls the backend API with metrics instrumentation and request pacing.
type Client struct {
	baseURL string
	http    HTTPDoer
	limiter ratelimit.Limiter
	metrics Metrics
}

// NewClient constructs a Client. rps <= 0 disables pacing.
func NewClient(baseURL string, httpClient HTTPDoer, rps int, metrics Metrics) *Client {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		limiter: limiter,
		metrics: metrics,
	}
}

// CreateWallet asks the backend to issue a new wallet.
func (c *Client) CreateWallet(ctx context.Context) (w CreatedWallet, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("create_wallet", err, started)
	}()

	var env envelope
	if err = c.do(ctx, http.MethodPost, pathCreateWallet, nil, &env); err != nil {
		return CreatedWallet{}, fmt.Errorf("create wallet: %w", err)
	}
	if err = checkEnvelope(env); err != nil {
		return CreatedWallet{}, fmt.Errorf("create wallet: %w", err)
	}
	return CreatedWallet{Address: env.Address, PrivateKey: env.PrivateKey, PublicKey: env.PublicKey}, nil
}

// LoadWallet resolves the wallet owning privateKey.
func (c *Client) LoadWallet(ctx context.Context, privateKey string) (w LoadedWallet, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("load_wallet", err, started)
	}()

	var env envelope
	if err = c.do(ctx, http.MethodPost, pathLoadWallet, loadWalletRequest{PrivateKey: privateKey}, &env); err != nil {
		return LoadedWallet{}, fmt.Errorf("load wallet: %w", err)
	}
	if err = checkEnvelope(env); err != nil {
		return LoadedWallet{}, fmt.Errorf("load wallet: %w", err)
	}
	return LoadedWallet{Address: env.Address, PublicKey: env.PublicKey}, nil
}

// WalletInfo returns the address and balance of the wallet the backend considers active.
func (c *Client) WalletInfo(ctx context.Context) (info model.WalletInfo, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("wallet_info", err, started)
	}()

	if err = c.do(ctx, http.MethodGet, pathWalletInfo, nil, &info); err != nil {
		return model.WalletInfo{}, fmt.Errorf("wallet info: %w", err)
	}
	return info, nil
}

// NetworkStats returns the aggregate chain statistics.
func (c *Client) NetworkStats(ctx context.Context) (stats model.NetworkStats, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("network_stats", err, started)
	}()

	if err = c.do(ctx, http.MethodGet, pathNetworkStats, nil, &stats); err != nil {
		return model.NetworkStats{}, fmt.Errorf("network stats: %w", err)
	}
	return stats, nil
}

// Blockchain returns the full chain as block summaries, oldest first.
func (c *Client) Blockchain(ctx context.Context) (chain []model.BlockSummary, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("blockchain", err, started)
	}()

	var resp struct {
		Chain []model.BlockSummary `json:"chain"`
	}
	if err = c.do(ctx, http.MethodGet, pathBlockchain, nil, &resp); err != nil {
		return nil, fmt.Errorf("blockchain: %w", err)
	}
	return resp.Chain, nil
}

// StartMining asks the backend to mine pending transactions and returns its message.
func (c *Client) StartMining(ctx context.Context) (message string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("start_mining", err, started)
	}()

	var env envelope
	if err = c.do(ctx, http.MethodPost, pathStartMining, nil, &env); err != nil {
		return "", fmt.Errorf("start mining: %w", err)
	}
	if err = checkEnvelope(env); err != nil {
		return "", fmt.Errorf("start mining: %w", err)
	}
	return env.Message, nil
}

func checkEnvelope(env envelope) error {
	if !env.Success || env.Error != "" {
		return &BusinessError{Message: env.Error}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	c.limiter.Take()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		if json.Unmarshal(data, &env) == nil && env.Error != "" {
			return &BusinessError{Message: env.Error}
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
