// Package view models the display surface the client renders into.
package view

import (
	"sort"
	"sync"

	"github.com/goodnatureofminers/neuronet-client/internal/model"
)

// Tone is the background state of a display element.
type Tone string

const (
	ToneNeutral Tone = ""
	ToneSuccess Tone = "success"
)

// BlockRow is one entry of the recent blocks panel.
type BlockRow struct {
	Index      int64   `json:"index"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Hash       string  `json:"hash"`
	TxCount    int     `json:"tx_count"`
	Difficulty float64 `json:"difficulty"`
}

// Dialog is the wallet dialog state. Revealed is set right after wallet creation.
type Dialog struct {
	Open     bool                 `json:"open"`
	Revealed *model.WalletSession `json:"revealed,omitempty"`
}

// SlotValue is the content of a display element.
type SlotValue struct {
	Text string `json:"text"`
	Tone Tone   `json:"tone,omitempty"`
}

// Page is an in-memory display surface. Elements not in the layout are absent
// and writes to them are ignored. Page is safe for concurrent use.
type Page struct {
	layout Layout

	mu            sync.RWMutex
	slots         map[Slot]*SlotValue
	blocks        []BlockRow
	chart         []model.ChartPoint
	dialog        Dialog
	notifications []model.Notification
}

// NewPage builds an empty page for layout.
func NewPage(layout Layout) *Page {
	slots := make(map[Slot]*SlotValue, len(layout.Slots))
	for _, s := range layout.Slots {
		slots[s] = &SlotValue{}
	}
	return &Page{layout: layout, slots: slots}
}

// Name returns the layout name.
func (p *Page) Name() string {
	if p == nil {
		return ""
	}
	return p.layout.Name
}

// Has reports whether the page carries slot.
func (p *Page) Has(s Slot) bool {
	if p == nil {
		return false
	}
	_, ok := p.slots[s]
	return ok
}

// Set writes text into slot. It reports false when the slot is absent.
func (p *Page) Set(s Slot, text string) bool {
	if !p.Has(s) {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slots[s].Text = text
	return true
}

// SetTone changes the background of slot. It reports false when the slot is absent.
func (p *Page) SetTone(s Slot, tone Tone) bool {
	if !p.Has(s) {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slots[s].Tone = tone
	return true
}

// Text returns the current text of slot.
func (p *Page) Text(s Slot) (string, bool) {
	if !p.Has(s) {
		return "", false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.slots[s].Text, true
}

// Tone returns the current tone of slot.
func (p *Page) Tone(s Slot) (Tone, bool) {
	if !p.Has(s) {
		return ToneNeutral, false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.slots[s].Tone, true
}

// HasRecentBlocks reports whether the page has a recent blocks panel.
func (p *Page) HasRecentBlocks() bool {
	return p != nil && p.layout.RecentBlocks
}

// SetRecentBlocks replaces the recent blocks panel.
func (p *Page) SetRecentBlocks(rows []BlockRow) bool {
	if !p.HasRecentBlocks() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.blocks = append(p.blocks[:0], rows...)
	return true
}

// RecentBlocks returns a copy of the recent blocks panel.
func (p *Page) RecentBlocks() []BlockRow {
	if p == nil {
		return nil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]BlockRow(nil), p.blocks...)
}

// HasChart reports whether the page has a chart.
func (p *Page) HasChart() bool {
	return p != nil && p.layout.Chart
}

// SetChart replaces the chart series.
func (p *Page) SetChart(points []model.ChartPoint) bool {
	if !p.HasChart() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chart = append(p.chart[:0], points...)
	return true
}

// Chart returns a copy of the chart series.
func (p *Page) Chart() []model.ChartPoint {
	if p == nil {
		return nil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.ChartPoint(nil), p.chart...)
}

// OpenDialog shows the wallet dialog.
func (p *Page) OpenDialog() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog.Open = true
}

// CloseDialog hides the wallet dialog and forgets revealed material.
func (p *Page) CloseDialog() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog = Dialog{}
}

// Reveal shows freshly issued wallet material in the open dialog.
func (p *Page) Reveal(s model.WalletSession) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialog.Open = true
	p.dialog.Revealed = &s
}

// Dialog returns the wallet dialog state.
func (p *Page) Dialog() Dialog {
	if p == nil {
		return Dialog{}
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	d := p.dialog
	if d.Revealed != nil {
		r := *d.Revealed
		d.Revealed = &r
	}
	return d
}

// Show implements notify.Sink.
func (p *Page) Show(n model.Notification) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notifications = append(p.notifications, n)
}

// Remove implements notify.Sink. Removing an unknown id is a no-op.
func (p *Page) Remove(id uint64) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, n := range p.notifications {
		if n.ID == id {
			p.notifications = append(p.notifications[:i], p.notifications[i+1:]...)
			return
		}
	}
}

// Snapshot is a serializable copy of the page.
type Snapshot struct {
	Page          string               `json:"page"`
	Slots         map[Slot]SlotValue   `json:"slots"`
	RecentBlocks  []BlockRow           `json:"recent_blocks,omitempty"`
	Chart         []model.ChartPoint   `json:"chart,omitempty"`
	Dialog        Dialog               `json:"dialog"`
	Notifications []model.Notification `json:"notifications"`
}

// Snapshot copies the page state. Revealed key material is not included.
func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	slots := make(map[Slot]SlotValue, len(p.slots))
	for k, v := range p.slots {
		slots[k] = *v
	}
	notifications := append([]model.Notification{}, p.notifications...)
	sort.Slice(notifications, func(i, j int) bool { return notifications[i].ID < notifications[j].ID })
	return Snapshot{
		Page:          p.layout.Name,
		Slots:         slots,
		RecentBlocks:  append([]BlockRow(nil), p.blocks...),
		Chart:         append([]model.ChartPoint(nil), p.chart...),
		Dialog:        Dialog{Open: p.dialog.Open},
		Notifications: notifications,
	}
}
