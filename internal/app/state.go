package app

import (
	"time"

	"github.com/goodnatureofminers/neuronet-client/internal/model"
	"github.com/goodnatureofminers/neuronet-client/internal/view"
)

// State is what the controller knows about the wallet and the network.
type State struct {
	Session      *model.WalletSession
	Stats        *model.NetworkStats
	Chart        []model.ChartPoint
	RecentBlocks []view.BlockRow
	LastPoll     time.Time
	LastPollErr  error
}

// Snapshot is the serializable view of the controller. It never carries key material.
type Snapshot struct {
	Profile     string              `json:"profile"`
	Connected   bool                `json:"connected"`
	Address     string              `json:"address,omitempty"`
	Stats       *model.NetworkStats `json:"stats,omitempty"`
	LastPoll    *time.Time          `json:"last_poll,omitempty"`
	LastPollErr string              `json:"last_poll_error,omitempty"`
	Page        view.Snapshot       `json:"page"`
}

func (s State) clone() State {
	out := State{
		Chart:        append([]model.ChartPoint(nil), s.Chart...),
		RecentBlocks: append([]view.BlockRow(nil), s.RecentBlocks...),
		LastPoll:     s.LastPoll,
		LastPollErr:  s.LastPollErr,
	}
	if s.Session != nil {
		session := *s.Session
		out.Session = &session
	}
	if s.Stats != nil {
		stats := *s.Stats
		out.Stats = &stats
	}
	return out
}
