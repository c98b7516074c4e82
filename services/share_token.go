package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// ShareTokenBytes is the raw token length; hex-encoded it yields a 32
// character string.
const ShareTokenBytes = 16

// GenerateShareToken returns a fresh opaque capability token. Collisions are
// vanishingly unlikely; the store's uniqueness constraint is the backstop and
// the service layer retries on conflict.
func GenerateShareToken() (string, error) {
	raw := make([]byte, ShareTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.New("failed to generate share token")
	}
	return hex.EncodeToString(raw), nil
}
