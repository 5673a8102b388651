package secondary

import (
	"context"

	"gitlab.com/classhub-2025.net/internal/domain"
)

// IdentityProviderPort abstracts the third-party OAuth2 provider.
type IdentityProviderPort interface {
	// AuthCodeURL builds the consent-screen URL carrying the anti-replay state.
	AuthCodeURL(state string) string
	// Exchange trades the authorization code for the external identity.
	Exchange(ctx context.Context, code string) (*domain.ExternalIdentity, error)
}
