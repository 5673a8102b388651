package catalog

import (
	"context"

	"gitlab.com/classhub-2025.net/internal/domain"
)

type ICatalogService interface {
	ListRooms(ctx context.Context) ([]*domain.Room, error)
	ListClasses(ctx context.Context) ([]*domain.ClassWithRoom, error)
	SeedReferenceData(ctx context.Context) error
}
