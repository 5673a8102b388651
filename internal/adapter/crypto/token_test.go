package crypto

import (
	"encoding/hex"
	"testing"
)

func TestNewTokenIsRandomHex(t *testing.T) {
	cipher := NewTokenCipher()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := cipher.NewToken()
		if err != nil {
			t.Fatalf("NewToken returned error: %v", err)
		}
		if len(token) != tokenBytes*2 {
			t.Fatalf("token length = %d, want %d", len(token), tokenBytes*2)
		}
		if _, err := hex.DecodeString(token); err != nil {
			t.Fatalf("token is not hex: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}

func TestDigestIsDeterministic(t *testing.T) {
	cipher := NewTokenCipher()

	token, err := cipher.NewToken()
	if err != nil {
		t.Fatalf("NewToken returned error: %v", err)
	}

	first := cipher.Digest(token)
	second := cipher.Digest(token)
	if first != second {
		t.Errorf("same token produced different digests: %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(first))
	}
}

func TestDistinctTokensProduceDistinctDigests(t *testing.T) {
	cipher := NewTokenCipher()

	digests := make(map[string]string)
	for i := 0; i < 100; i++ {
		token, err := cipher.NewToken()
		if err != nil {
			t.Fatalf("NewToken returned error: %v", err)
		}
		digest := cipher.Digest(token)
		if prev, ok := digests[digest]; ok {
			t.Fatalf("digest collision between %s and %s", prev, token)
		}
		digests[digest] = token
	}
}

func TestDigestDoesNotLeakToken(t *testing.T) {
	cipher := NewTokenCipher()

	token, err := cipher.NewToken()
	if err != nil {
		t.Fatalf("NewToken returned error: %v", err)
	}
	if cipher.Digest(token) == token {
		t.Error("digest equals the raw token")
	}
}
