package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

var slotLabels = map[Slot]string{
	SlotTotalNFTs:             "Total NFTs",
	SlotBlockHeight:           "Block height",
	SlotNetworkIntelligence:   "Network intelligence",
	SlotTotalIntelligence:     "Total intelligence",
	SlotCurrentDifficulty:     "Difficulty",
	SlotNetworkDifficulty:     "Difficulty",
	SlotPendingTx:             "Pending transactions",
	SlotMiningReward:          "Mining reward",
	SlotTotalValue:            "Total value",
	SlotMarketTotalNFTs:       "Market NFTs",
	SlotMarketTotalValue:      "Market value",
	SlotMarketAvgIntelligence: "Average intelligence",
}

// Render writes a text frame of the page to w.
func (p *Page) Render(w io.Writer) error {
	snap := p.Snapshot()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	status := snap.Slots[SlotWalletStatus].Text
	if _, ok := snap.Slots[SlotWalletStatus]; ok {
		marker := "○"
		if snap.Slots[SlotWalletDisplay].Tone == ToneSuccess {
			marker = "●"
		}
		fmt.Fprintf(tw, "%s Wallet\t%s\n", marker, status)
	}

	for _, s := range p.layout.Slots {
		label, ok := slotLabels[s]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", label, snap.Slots[s].Text)
	}

	if p.layout.RecentBlocks && len(snap.RecentBlocks) > 0 {
		fmt.Fprintln(tw, "\nRecent blocks")
		for _, b := range snap.RecentBlocks {
			fmt.Fprintf(tw, "Block #%d\t%s %s\t%s\tTransactions: %d\tDifficulty: %g\n",
				b.Index, b.Date, b.Time, b.Hash, b.TxCount, b.Difficulty)
		}
	}

	if p.layout.Chart && len(snap.Chart) > 0 {
		fmt.Fprintln(tw, "\nTransactions")
		for _, pt := range snap.Chart {
			fmt.Fprintf(tw, "%s\t%s %g\n", pt.Label, bar(pt.Value), pt.Value)
		}
	}

	if len(snap.Notifications) > 0 {
		fmt.Fprintln(tw)
		for _, n := range snap.Notifications {
			fmt.Fprintf(tw, "%s %s\n", n.Kind.Icon(), n.Message)
		}
	}

	return tw.Flush()
}

const maxBar = 50

func bar(v float64) string {
	n := int(v)
	if n < 0 {
		n = 0
	}
	if n > maxBar {
		n = maxBar
	}
	return strings.Repeat("▇", n)
}

// ShortAddress truncates addr to its first head and last tail characters.
// Addresses that would not get shorter are returned whole.
func ShortAddress(addr string, head, tail int) string {
	if head < 0 || tail < 0 || len(addr) <= head+tail {
		return addr
	}
	return addr[:head] + "..." + addr[len(addr)-tail:]
}
