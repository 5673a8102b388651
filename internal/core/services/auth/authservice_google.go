package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/classhub-2025.net/internal/core/ports/primary"
	"gitlab.com/classhub-2025.net/internal/core/ports/secondary"
	"gitlab.com/classhub-2025.net/internal/core/services/session"
	"gitlab.com/classhub-2025.net/internal/domain"
	"gitlab.com/classhub-2025.net/internal/static/errs"
)

var _ IAuthService = &googleAuthService{}

type googleAuthService struct {
	userPort       secondary.UserPort
	loginStatePort secondary.LoginStatePort
	identityPort   secondary.IdentityProviderPort
	sessionService session.ISessionService
	tokenCipher    primary.TokenCipher
	logger         primary.Logger
}

func NewGoogleAuthService(
	userPort secondary.UserPort,
	loginStatePort secondary.LoginStatePort,
	identityPort secondary.IdentityProviderPort,
	sessionService session.ISessionService,
	tokenCipher primary.TokenCipher,
	logger primary.Logger,
) IAuthService {
	return &googleAuthService{
		userPort:       userPort,
		loginStatePort: loginStatePort,
		identityPort:   identityPort,
		sessionService: sessionService,
		tokenCipher:    tokenCipher,
		logger:         logger,
	}
}

func (g googleAuthService) ProviderName() domain.Provider {
	return domain.ProviderGoogle
}

func (g googleAuthService) IssueLoginState(ctx context.Context) (string, error) {
	state, err := g.tokenCipher.NewToken()
	if err != nil {
		return "", errs.GeneratingToken
	}

	if err := g.loginStatePort.Save(ctx, state); err != nil {
		return "", fmt.Errorf("failed to persist login state: %w", err)
	}

	return g.identityPort.AuthCodeURL(state), nil
}

func (g googleAuthService) ConsumeLoginState(ctx context.Context, state string) (bool, error) {
	return g.loginStatePort.Consume(ctx, state)
}

// HandleCallback aborts the whole flow on an unknown or replayed state: no
// code exchange happens and no token is issued.
func (g googleAuthService) HandleCallback(ctx context.Context, state, code string) (string, error) {
	ok, err := g.loginStatePort.Consume(ctx, state)
	if err != nil {
		return "", fmt.Errorf("failed to consume login state: %w", err)
	}
	if !ok {
		g.logger.Warn("Rejected login callback with unknown or replayed state")
		return "", errs.InvalidState
	}

	identity, err := g.identityPort.Exchange(ctx, code)
	if err != nil {
		return "", err
	}
	if identity.Subject == "" {
		return "", errs.InvalidState
	}

	existing, err := g.userPort.GetByGoogleID(ctx, identity.Subject)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return g.sessionService.IssueToken(ctx, existing.ID)
	}

	return g.CreateUserFromExternalIdentity(ctx, identity)
}

func (g googleAuthService) CreateUserFromExternalIdentity(ctx context.Context, identity *domain.ExternalIdentity) (string, error) {
	user := &domain.Users{
		ID:       uuid.New(),
		Name:     identity.Name,
		GoogleID: identity.Subject,
	}
	if identity.Picture != "" {
		user.Picture = &identity.Picture
	}

	if err := g.userPort.Create(ctx, user); err != nil {
		g.logger.Error("Failed to create user", "googleId", identity.Subject, "error", err)
		return "", errs.FailedToCreateUser
	}
	g.logger.Info("Created user from external identity", "userId", user.ID, "provider", g.ProviderName())

	return g.sessionService.IssueToken(ctx, user.ID)
}

func (g googleAuthService) ReissueTokenForExistingUser(ctx context.Context, externalID string) (string, error) {
	user, err := g.userPort.GetByGoogleID(ctx, externalID)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return "", errs.NotFound
	}

	return g.sessionService.IssueToken(ctx, user.ID)
}
