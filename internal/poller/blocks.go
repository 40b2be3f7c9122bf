package poller

import (
	"github.com/goodnatureofminers/neuronet-client/internal/model"
	"github.com/goodnatureofminers/neuronet-client/internal/view"
)

// recentRows projects the newest limit blocks of chain, newest first.
func recentRows(chain []model.BlockSummary, limit int) []view.BlockRow {
	if len(chain) > limit {
		chain = chain[len(chain)-limit:]
	}
	rows := make([]view.BlockRow, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		b := chain[i]
		rows = append(rows, view.BlockRow{
			Index:      b.Index,
			Date:       FormatDate(b.Timestamp),
			Time:       FormatTime(b.Timestamp),
			Hash:       shortHash(b.Hash),
			TxCount:    b.TxCount(),
			Difficulty: b.Difficulty,
		})
	}
	return rows
}

func shortHash(h string) string {
	if len(h) > hashPrefixLength {
		h = h[:hashPrefixLength]
	}
	return h + "..."
}
