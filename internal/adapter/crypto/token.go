package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"gitlab.com/classhub-2025.net/internal/core/ports/primary"
)

// tokenBytes is the raw entropy per access token, well above the 128-bit
// floor required for unguessable opaque tokens.
const tokenBytes = 32

var _ primary.TokenCipher = (*TokenCipherImpl)(nil)

type TokenCipherImpl struct{}

func NewTokenCipher() primary.TokenCipher {
	return &TokenCipherImpl{}
}

// NewToken returns a hex-encoded 256-bit random opaque token.
func (TokenCipherImpl) NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Digest returns the hex-encoded SHA3-256 digest of a raw token. The
// digest is what gets stored; the raw token never is.
func (TokenCipherImpl) Digest(token string) string {
	sum := sha3.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
