// Package session manages the active wallet session and its persistence.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goodnatureofminers/neuronet-client/internal/backend"
	"github.com/goodnatureofminers/neuronet-client/internal/clock"
	"github.com/goodnatureofminers/neuronet-client/internal/model"
	"github.com/goodnatureofminers/neuronet-client/internal/storage/kvstore"
	"github.com/goodnatureofminers/neuronet-client/internal/view"
	"go.uber.org/zap"
)

// Manager owns the active wallet session.
type Manager struct {
	logger      *zap.Logger
	backend     Backend
	store       Store
	notifier    Notifier
	display     Display
	profile     model.Profile
	hooks       Hooks
	sleep       func(context.Context, time.Duration) error
	revealDelay time.Duration

	mu      sync.RWMutex
	current *model.WalletSession
}

// NewManager builds a Manager. display may be nil when nothing is rendered.
func NewManager(
	b Backend,
	store Store,
	notifier Notifier,
	display Display,
	profile model.Profile,
	hooks Hooks,
	logger *zap.Logger,
) *Manager {
	return &Manager{
		logger:      logger.With(zap.String("profile", profile.Name)),
		backend:     b,
		store:       store,
		notifier:    notifier,
		display:     display,
		profile:     profile,
		hooks:       hooks,
		sleep:       clock.SleepWithContext,
		revealDelay: revealDelay,
	}
}

// SetRevealDelay overrides how long a newly created wallet stays revealed.
// Non-positive values are ignored.
func (m *Manager) SetRevealDelay(d time.Duration) {
	if d > 0 {
		m.revealDelay = d
	}
}

// Current returns the active session.
func (m *Manager) Current() (model.WalletSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return model.WalletSession{}, false
	}
	return *m.current, true
}

// Restore activates the persisted session, if any. Missing or malformed
// records leave the session unset; Restore never fails.
func (m *Manager) Restore(ctx context.Context) bool {
	data, err := m.store.Get(ctx, model.SessionKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			m.logger.Warn("read stored session failed", zap.Error(err))
		}
		m.clear()
		return false
	}

	var s model.WalletSession
	if err := json.Unmarshal(data, &s); err != nil {
		m.logger.Warn("stored session is not valid json, ignoring", zap.Error(err))
		m.clear()
		return false
	}
	if !s.Valid() {
		m.logger.Warn("stored session is incomplete, ignoring", zap.String("address", s.Address))
		m.clear()
		return false
	}

	m.logger.Info("restored wallet session", zap.String("address", s.Address))
	m.activate(ctx, s)
	return true
}

// Create asks the backend for a new wallet, reveals and persists it, then
// after the reveal delay closes the dialog and refreshes network data.
func (m *Manager) Create(ctx context.Context) error {
	created, err := m.backend.CreateWallet(ctx)
	if err != nil {
		m.logger.Error("create wallet failed", zap.Error(err))
		m.notifier.Notify("Error creating wallet: "+describe(err), model.KindError)
		return err
	}

	s := model.WalletSession{
		Address:    created.Address,
		PublicKey:  created.PublicKey,
		PrivateKey: created.PrivateKey,
	}
	if !s.Valid() {
		err = errors.New("backend returned incomplete wallet")
		m.notifier.Notify("Error creating wallet: "+err.Error(), model.KindError)
		return err
	}

	if m.display != nil {
		m.display.Reveal(s)
	}
	if err = m.persist(ctx, s); err != nil {
		m.notifier.Notify("Error saving wallet: "+err.Error(), model.KindError)
		return err
	}
	m.activate(ctx, s)

	if err = m.sleep(ctx, m.revealDelay); err != nil {
		return err
	}
	if m.display != nil {
		m.display.CloseDialog()
	}
	m.notifier.Notify(msgCreated, model.KindSuccess)
	m.refresh(ctx)
	return nil
}

// Load activates the wallet owning candidateKey.
func (m *Manager) Load(ctx context.Context, candidateKey string) error {
	key := strings.TrimSpace(candidateKey)
	if key == "" {
		kind := m.profile.EmptyKeyKind
		if kind == "" {
			kind = model.KindError
		}
		m.notifier.Notify(msgEmptyKey, kind)
		return ErrEmptyKey
	}
	if m.profile.ValidateKeyLocally {
		if err := ValidatePrivateKey(key); err != nil {
			m.notifier.Notify(msgInvalidKeyFormat, model.KindError)
			return err
		}
	}

	loaded, err := m.backend.LoadWallet(ctx, key)
	if err != nil {
		m.logger.Error("load wallet failed", zap.Error(err))
		if errors.Is(err, backend.ErrBusiness) {
			m.notifier.Notify(backend.Reason(err, msgKeyRejected), model.KindError)
		} else {
			m.notifier.Notify("Error loading wallet: "+err.Error(), model.KindError)
		}
		return err
	}

	s := model.WalletSession{
		Address:    loaded.Address,
		PublicKey:  loaded.PublicKey,
		PrivateKey: key,
	}
	if !s.Valid() {
		err = errors.New("backend returned incomplete wallet")
		m.notifier.Notify("Error loading wallet: "+err.Error(), model.KindError)
		return err
	}
	if err = m.persist(ctx, s); err != nil {
		m.notifier.Notify("Error saving wallet: "+err.Error(), model.KindError)
		return err
	}
	m.activate(ctx, s)

	if m.display != nil {
		m.display.CloseDialog()
	}
	m.notifier.Notify(msgLoaded, model.KindSuccess)
	m.refresh(ctx)
	return nil
}

// Logout forgets the active session and its stored record.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Delete(ctx, model.SessionKey); err != nil {
		m.notifier.Notify("Error removing wallet: "+err.Error(), model.KindError)
		return err
	}
	m.clear()
	m.notifier.Notify(msgDisconnected, model.KindInfo)
	return nil
}

// UpdateIndicator renders the connection state for address. An empty
// address renders the disconnected state. Missing elements are skipped.
func (m *Manager) UpdateIndicator(address string) {
	if m.display == nil {
		return
	}
	if address == "" {
		m.display.Set(view.SlotWalletStatus, notConnected)
		m.display.SetTone(view.SlotWalletDisplay, view.ToneNeutral)
		return
	}
	m.display.Set(view.SlotWalletStatus, view.ShortAddress(address, m.profile.ShortAddressHead, m.profile.ShortAddressTail))
	m.display.SetTone(view.SlotWalletDisplay, view.ToneSuccess)
}

// RefreshWalletInfo renders the balance of the active wallet into the indicator.
func (m *Manager) RefreshWalletInfo(ctx context.Context) (model.WalletInfo, error) {
	if _, ok := m.Current(); !ok {
		return model.WalletInfo{}, ErrNoSession
	}
	info, err := m.backend.WalletInfo(ctx)
	if err != nil {
		m.logger.Warn("fetch wallet info failed", zap.Error(err))
		return model.WalletInfo{}, err
	}
	if m.display != nil {
		m.display.Set(view.SlotWalletStatus, fmt.Sprintf("%s... | Balance: %.2f",
			prefix(info.Address, walletInfoAddressPrefix), info.Balance))
	}
	return info, nil
}

func (m *Manager) persist(ctx context.Context, s model.WalletSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := m.store.Set(ctx, model.SessionKey, data); err != nil {
		m.logger.Error("persist session failed", zap.Error(err))
		return err
	}
	return nil
}

func (m *Manager) activate(ctx context.Context, s model.WalletSession) {
	m.mu.Lock()
	m.current = &s
	m.mu.Unlock()

	m.UpdateIndicator(s.Address)
	if m.hooks.SessionChanged != nil {
		m.hooks.SessionChanged(ctx, s)
	}
	if m.profile.FetchWalletInfo {
		_, _ = m.RefreshWalletInfo(ctx)
	}
}

func (m *Manager) clear() {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	m.UpdateIndicator("")
	if m.hooks.SessionCleared != nil {
		m.hooks.SessionCleared()
	}
}

func (m *Manager) refresh(ctx context.Context) {
	if m.hooks.Refresh != nil {
		m.hooks.Refresh(ctx)
	}
}

func describe(err error) string {
	if errors.Is(err, backend.ErrBusiness) {
		return backend.Reason(err, backend.ErrBusiness.Error())
	}
	return err.Error()
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
