package auth

import (
	"context"

	"gitlab.com/classhub-2025.net/internal/domain"
)

type IAuthService interface {
	ProviderName() domain.Provider
	// IssueLoginState mints and persists a one-time anti-replay state and
	// returns the consent-screen URL carrying it.
	IssueLoginState(ctx context.Context) (string, error)
	// ConsumeLoginState atomically spends a state. True exactly once.
	ConsumeLoginState(ctx context.Context, state string) (bool, error)
	// HandleCallback completes the login flow: spends the state, exchanges
	// the code, finds or creates the user and returns a fresh access token.
	HandleCallback(ctx context.Context, state, code string) (string, error)
	// CreateUserFromExternalIdentity registers a new user for a never-seen
	// external identity and returns their first access token.
	CreateUserFromExternalIdentity(ctx context.Context, identity *domain.ExternalIdentity) (string, error)
	// ReissueTokenForExistingUser rotates the token of a known external
	// identity, invalidating all previously issued tokens.
	ReissueTokenForExistingUser(ctx context.Context, externalID string) (string, error)
}
