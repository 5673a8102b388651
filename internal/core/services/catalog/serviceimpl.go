package catalog

import (
	"context"
	"fmt"

	"gitlab.com/classhub-2025.net/internal/core/ports/primary"
	"gitlab.com/classhub-2025.net/internal/core/ports/secondary"
	"gitlab.com/classhub-2025.net/internal/domain"
	"gitlab.com/classhub-2025.net/internal/static/seed"
)

var _ ICatalogService = &CatalogService{}

// CatalogService serves the immutable rooms/classes reference data and
// loads the seed tables at startup.
type CatalogService struct {
	catalogPort secondary.CatalogPort
	logger      primary.Logger
}

func NewCatalogService(catalogPort secondary.CatalogPort, logger primary.Logger) *CatalogService {
	return &CatalogService{
		catalogPort: catalogPort,
		logger:      logger,
	}
}

func (s *CatalogService) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	return s.catalogPort.ListRooms(ctx)
}

func (s *CatalogService) ListClasses(ctx context.Context) ([]*domain.ClassWithRoom, error) {
	return s.catalogPort.ListClasses(ctx)
}

func (s *CatalogService) SeedReferenceData(ctx context.Context) error {
	if err := s.catalogPort.Seed(ctx, seed.Rooms(), seed.Classes()); err != nil {
		return fmt.Errorf("failed to seed reference data: %w", err)
	}
	return nil
}
