// Package model defines the domain models shared by the client components.
package model

// SessionKey is the storage key holding the serialized wallet session.
const SessionKey = "neuroWallet"

// WalletSession is the wallet currently held by the client.
// The JSON names match the record shape written by earlier clients.
type WalletSession struct {
	Address    string `json:"address"`
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// Valid reports whether every field is populated. Partial sessions are invalid.
func (s WalletSession) Valid() bool {
	return s.Address != "" && s.PublicKey != "" && s.PrivateKey != ""
}

// WalletInfo is the balance view returned by the backend for the active wallet.
type WalletInfo struct {
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
}
