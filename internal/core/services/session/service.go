package session

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/classhub-2025.net/internal/domain"
)

type ISessionService interface {
	// IssueToken mints a fresh opaque token for the user and overwrites the
	// stored digest, invalidating every previously issued token.
	IssueToken(ctx context.Context, userID uuid.UUID) (string, error)
	// Verify resolves the presented token to its owning user and timetable.
	Verify(ctx context.Context, token string) (*domain.UserSession, error)
}
