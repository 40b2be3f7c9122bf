package session

import "time"

const (
	// revealDelay gives the user time to copy a freshly issued private key.
	revealDelay = 3 * time.Second

	notConnected = "Not Connected"

	walletInfoAddressPrefix = 8
)

const (
	msgCreated          = "Wallet created successfully! Save your private key!"
	msgLoaded           = "Wallet loaded successfully!"
	msgDisconnected     = "Wallet disconnected"
	msgEmptyKey         = "Please enter your private key"
	msgInvalidKeyFormat = "Invalid private key format. Must be 64 hexadecimal characters."
	msgKeyRejected      = "Invalid private key"
)
