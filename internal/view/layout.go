package view

import "fmt"

// Slot names a display element on a page.
type Slot string

const (
	SlotTotalNFTs             Slot = "totalNfts"
	SlotBlockHeight           Slot = "blockHeight"
	SlotNetworkIntelligence   Slot = "networkIntelligence"
	SlotTotalIntelligence     Slot = "totalIntelligence"
	SlotCurrentDifficulty     Slot = "currentDifficulty"
	SlotNetworkDifficulty     Slot = "networkDifficulty"
	SlotPendingTx             Slot = "pendingTx"
	SlotMiningReward          Slot = "miningReward"
	SlotTotalValue            Slot = "totalValue"
	SlotMarketTotalNFTs       Slot = "marketTotalNFTs"
	SlotMarketTotalValue      Slot = "marketTotalValue"
	SlotMarketAvgIntelligence Slot = "marketAvgIntelligence"
	SlotWalletStatus          Slot = "walletStatus"
	SlotWalletDisplay         Slot = "walletDisplay"
)

// Layout lists the elements a page type carries.
type Layout struct {
	Name         string
	Slots        []Slot
	RecentBlocks bool
	Chart        bool
}

var walletSlots = []Slot{SlotWalletStatus, SlotWalletDisplay}

var (
	// HomeLayout is the landing page with the full stats grid and recent blocks.
	HomeLayout = Layout{
		Name: "home",
		Slots: append([]Slot{
			SlotTotalNFTs, SlotBlockHeight, SlotNetworkIntelligence, SlotCurrentDifficulty,
			SlotPendingTx, SlotMiningReward, SlotTotalValue,
		}, walletSlots...),
		RecentBlocks: true,
	}
	// DashboardLayout is the compact stats page with the transactions chart.
	DashboardLayout = Layout{
		Name: "dashboard",
		Slots: append([]Slot{
			SlotTotalNFTs, SlotBlockHeight, SlotTotalIntelligence, SlotNetworkDifficulty,
		}, walletSlots...),
		RecentBlocks: true,
		Chart:        true,
	}
	// MarketplaceLayout shows the NFT market aggregates.
	MarketplaceLayout = Layout{
		Name: "marketplace",
		Slots: append([]Slot{
			SlotMarketTotalNFTs, SlotMarketTotalValue, SlotMarketAvgIntelligence,
		}, walletSlots...),
	}
	// WalletLayout carries only the connection indicator.
	WalletLayout = Layout{
		Name:  "wallet",
		Slots: walletSlots,
	}
)

// LayoutByName resolves a page type.
func LayoutByName(name string) (Layout, error) {
	for _, l := range []Layout{HomeLayout, DashboardLayout, MarketplaceLayout, WalletLayout} {
		if l.Name == name {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("unknown page %q", name)
}
