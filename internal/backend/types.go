package backend

import (
	"net/http"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// HTTPDoer sends HTTP requests.
	HTTPDoer interface {
		Do(req *http.Request) (*http.Response, error)
	}
	// Metrics records metrics for backend calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// envelope is the union of the fields returned by the action endpoints.
type envelope struct {
	Success    bool   `json:"success"`
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

type loadWalletRequest struct {
	PrivateKey string `json:"private_key"`
}

// CreatedWallet is the material issued by the backend for a new wallet.
type CreatedWallet struct {
	Address    string
	PrivateKey string
	PublicKey  string
}

// LoadedWallet is the identity the backend derived from a private key.
type LoadedWallet struct {
	Address   string
	PublicKey string
}
