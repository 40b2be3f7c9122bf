package poller

import "time"

const (
	// DefaultInterval is the fixed period between poll cycles.
	DefaultInterval = 10 * time.Second

	recentBlocksLimit = 5
	hashPrefixLength  = 20
	currencySuffix    = " NN"

	// chartCapacity bounds the chart window.
	chartCapacity = 10
	// chartSeedMax is the exclusive upper bound of seeded chart values.
	chartSeedMax = 50

	// millisecondThreshold separates second from millisecond timestamps.
	millisecondThreshold = 1e12
)

const (
	msgConnectFirst = "Please connect wallet first"
	msgMiningFailed = "Mining failed"
)
