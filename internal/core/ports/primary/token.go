package primary

// TokenCipher produces opaque access tokens and their storable digests.
// Raw tokens are handed to clients exactly once; only digests are stored.
type TokenCipher interface {
	// NewToken returns a fresh cryptographically random opaque token.
	NewToken() (string, error)
	// Digest is the deterministic one-way transform of a raw token used
	// for exact-equality lookup. Same input, same output.
	Digest(token string) string
}
