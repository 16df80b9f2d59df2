package pkg

import (
	"crypto/rand"
	"math/big"
)

// GenerateGameID - generates a unique identifier for the game.
func GenerateGameID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(99999999))
	if err != nil {
		return "", err
	}
	return n.String(), nil
}
