package model

import "fmt"

// Profile captures the behavioral differences between client flavors.
type Profile struct {
	Name string
	// ValidateKeyLocally rejects malformed private keys before calling the backend.
	ValidateKeyLocally bool
	// ShortAddressHead and ShortAddressTail control the truncated address display.
	ShortAddressHead int
	ShortAddressTail int
	// RecentBlocksRequireSession skips the recent blocks panel while disconnected.
	RecentBlocksRequireSession bool
	// FetchWalletInfo shows the wallet balance in the indicator.
	FetchWalletInfo bool
	// IntelligencePrecision is the number of decimals for intelligence totals, -1 for as-is.
	IntelligencePrecision int
	// EmptyKeyKind is the notification kind for a blank private key. Empty means KindError.
	EmptyKeyKind Kind
}

var (
	// StandardProfile validates keys locally and shows 10/6 addresses.
	StandardProfile = Profile{
		Name:                       "standard",
		ValidateKeyLocally:         true,
		ShortAddressHead:           10,
		ShortAddressTail:           6,
		RecentBlocksRequireSession: true,
		IntelligencePrecision:      -1,
		EmptyKeyKind:               KindError,
	}
	// ClassicProfile defers key validation to the backend and shows the wallet balance.
	ClassicProfile = Profile{
		Name:                  "classic",
		ShortAddressHead:      8,
		ShortAddressTail:      8,
		FetchWalletInfo:       true,
		IntelligencePrecision: 2,
		EmptyKeyKind:          KindWarning,
	}
)

// ProfileByName resolves a profile name.
func ProfileByName(name string) (Profile, error) {
	switch name {
	case "", StandardProfile.Name:
		return StandardProfile, nil
	case ClassicProfile.Name:
		return ClassicProfile, nil
	default:
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
}
