package model

import "encoding/json"

// NetworkStats is a point-in-time snapshot of the backend chain metrics.
type NetworkStats struct {
	TotalNFTs           int64   `json:"total_nfts"`
	BlockchainLength    int64   `json:"blockchain_length"`
	TotalIntelligence   float64 `json:"total_intelligence"`
	CurrentDifficulty   float64 `json:"current_difficulty"`
	PendingTransactions int64   `json:"pending_transactions"`
	MiningReward        float64 `json:"mining_reward"`
	TotalValue          float64 `json:"total_value"`
	AverageIntelligence float64 `json:"average_intelligence"`
}

// BlockSummary is the display projection of one ledger entry.
type BlockSummary struct {
	Index        int64   `json:"index"`
	Timestamp    float64 `json:"timestamp"`
	Hash         string  `json:"hash"`
	Transactions TxList  `json:"transactions"`
	Difficulty   float64 `json:"difficulty"`
}

// TxList holds raw transactions. Anything other than a JSON array decodes as empty.
type TxList []json.RawMessage

// UnmarshalJSON implements json.Unmarshaler.
func (l *TxList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = nil
		return nil
	}
	*l = raw
	return nil
}

// TxCount returns the number of transactions carried by the block.
func (b BlockSummary) TxCount() int {
	return len(b.Transactions)
}

// ChartPoint is a single observation in the network chart.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
