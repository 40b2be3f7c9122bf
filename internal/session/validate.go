package session

import (
	"errors"
	"regexp"
)

var (
	// ErrEmptyKey is returned when no private key was entered.
	ErrEmptyKey = errors.New("empty private key")
	// ErrInvalidKeyFormat is returned for keys that are not 64 lowercase hex characters.
	ErrInvalidKeyFormat = errors.New("invalid private key format")
	// ErrNoSession is returned by operations that need an active wallet.
	ErrNoSession = errors.New("no active wallet session")
)

var privateKeyPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// ValidatePrivateKey checks that key is exactly 64 lowercase hexadecimal characters.
func ValidatePrivateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if !privateKeyPattern.MatchString(key) {
		return ErrInvalidKeyFormat
	}
	return nil
}
