package timetable

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/classhub-2025.net/internal/core/ports/primary"
	"gitlab.com/classhub-2025.net/internal/core/ports/secondary"
	"gitlab.com/classhub-2025.net/internal/core/services/session"
	"gitlab.com/classhub-2025.net/internal/domain"
)

var _ ITimetableService = &TimetableService{}

type TimetableService struct {
	timetablePort  secondary.TimetablePort
	sessionService session.ISessionService
	logger         primary.Logger
}

func NewTimetableService(
	timetablePort secondary.TimetablePort,
	sessionService session.ISessionService,
	logger primary.Logger,
) *TimetableService {
	return &TimetableService{
		timetablePort:  timetablePort,
		sessionService: sessionService,
		logger:         logger,
	}
}

func (s *TimetableService) Get(ctx context.Context, userID uuid.UUID) (domain.Grid, error) {
	return s.timetablePort.GetGrid(ctx, userID)
}

// SetCell trusts the caller-supplied class reference; whether the class's
// own slot matches (day, period) is the caller's concern, not checked here.
// Repeating the call with identical arguments is an idempotent overwrite.
func (s *TimetableService) SetCell(ctx context.Context, token string, day domain.Day, period domain.Period, classID *uuid.UUID) (domain.Grid, error) {
	sess, err := s.sessionService.Verify(ctx, token)
	if err != nil {
		return domain.Grid{}, err
	}

	if err := s.timetablePort.SetCell(ctx, sess.UserID, day, period, classID); err != nil {
		return domain.Grid{}, fmt.Errorf("failed to persist cell: %w", err)
	}

	grid, err := s.timetablePort.GetGrid(ctx, sess.UserID)
	if err != nil {
		return domain.Grid{}, fmt.Errorf("failed to reload timetable: %w", err)
	}

	s.logger.Debug("Updated timetable cell", "userId", sess.UserID, "day", day.String(), "period", int(period))
	return grid, nil
}
