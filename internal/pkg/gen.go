package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

// GenerateNewSessionID - generates a new unique player session ID.
func GenerateNewSessionID() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-session-id"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}

// GenerateGameID - generates a unique identifier for a game room.
func GenerateGameID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(99999999))
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return n.String(), nil
}
