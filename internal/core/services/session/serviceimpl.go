package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/classhub-2025.net/internal/core/ports/primary"
	"gitlab.com/classhub-2025.net/internal/core/ports/secondary"
	"gitlab.com/classhub-2025.net/internal/domain"
	"gitlab.com/classhub-2025.net/internal/static/errs"
)

var _ ISessionService = &SessionService{}

// SessionService owns the single-active-session model: one current token
// digest per user, last login wins.
type SessionService struct {
	userPort      secondary.UserPort
	timetablePort secondary.TimetablePort
	tokenCipher   primary.TokenCipher
	logger        primary.Logger
}

func NewSessionService(
	userPort secondary.UserPort,
	timetablePort secondary.TimetablePort,
	tokenCipher primary.TokenCipher,
	logger primary.Logger,
) *SessionService {
	return &SessionService{
		userPort:      userPort,
		timetablePort: timetablePort,
		tokenCipher:   tokenCipher,
		logger:        logger,
	}
}

// IssueToken returns the raw token exactly once; only its digest is stored.
func (s *SessionService) IssueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := s.tokenCipher.NewToken()
	if err != nil {
		s.logger.Error("Failed to generate access token", "error", err)
		return "", errs.GeneratingToken
	}

	if err := s.userPort.UpdateTokenDigest(ctx, userID, s.tokenCipher.Digest(token)); err != nil {
		return "", fmt.Errorf("failed to store token digest: %w", err)
	}

	return token, nil
}

// Verify fails with InvalidSession when the digest matches no user. That
// is the designed outcome for a token superseded by a newer login.
func (s *SessionService) Verify(ctx context.Context, token string) (*domain.UserSession, error) {
	user, err := s.userPort.GetByTokenDigest(ctx, s.tokenCipher.Digest(token))
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if user == nil {
		return nil, errs.InvalidSession
	}

	grid, err := s.timetablePort.GetGrid(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load timetable: %w", err)
	}

	return &domain.UserSession{
		UserID:    user.ID,
		Name:      user.Name,
		Picture:   user.Picture,
		Timetable: grid,
	}, nil
}
