package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/classhub-2025.net/internal/domain"
)

type UserPort interface {
	Create(ctx context.Context, user *domain.Users) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Users, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error)
	GetByTokenDigest(ctx context.Context, digest string) (*domain.Users, error)
	UpdateTokenDigest(ctx context.Context, id uuid.UUID, digest string) error
}
