package timetable

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/classhub-2025.net/internal/domain"
)

type ITimetableService interface {
	// Get returns the user's full 30-cell grid snapshot.
	Get(ctx context.Context, userID uuid.UUID) (domain.Grid, error)
	// SetCell verifies the session, overwrites the one targeted cell and
	// returns the updated grid snapshot. A nil classID empties the cell.
	SetCell(ctx context.Context, token string, day domain.Day, period domain.Period, classID *uuid.UUID) (domain.Grid, error)
}
