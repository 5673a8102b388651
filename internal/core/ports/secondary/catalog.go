package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/classhub-2025.net/internal/domain"
)

type CatalogPort interface {
	ListRooms(ctx context.Context) ([]*domain.Room, error)
	ListClasses(ctx context.Context) ([]*domain.ClassWithRoom, error)
	GetClass(ctx context.Context, id uuid.UUID) (*domain.Class, error)
	// Seed inserts the static reference data, skipping rows that already
	// exist. Safe to run on every start.
	Seed(ctx context.Context, rooms []domain.Room, classes []domain.Class) error
}
