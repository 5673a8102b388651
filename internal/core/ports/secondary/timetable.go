package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/classhub-2025.net/internal/domain"
)

type TimetablePort interface {
	// GetGrid returns all 30 cells for a user; absent rows are empty cells.
	GetGrid(ctx context.Context, userID uuid.UUID) (domain.Grid, error)
	// SetCell overwrites exactly the one (day, period) cell. A nil classID
	// clears the cell. The other 29 cells are untouched.
	SetCell(ctx context.Context, userID uuid.UUID, day domain.Day, period domain.Period, classID *uuid.UUID) error
}
