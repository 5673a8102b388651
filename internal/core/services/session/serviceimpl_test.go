package session

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"gitlab.com/classhub-2025.net/internal/adapter/crypto"
	"gitlab.com/classhub-2025.net/internal/domain"
	"gitlab.com/classhub-2025.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeUserPort struct {
	users map[uuid.UUID]*domain.Users
}

func newFakeUserPort() *fakeUserPort {
	return &fakeUserPort{users: make(map[uuid.UUID]*domain.Users)}
}

func (f *fakeUserPort) Create(ctx context.Context, user *domain.Users) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserPort) Get(ctx context.Context, id uuid.UUID) (*domain.Users, error) {
	return f.users[id], nil
}

func (f *fakeUserPort) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	for _, u := range f.users {
		if u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserPort) GetByTokenDigest(ctx context.Context, digest string) (*domain.Users, error) {
	for _, u := range f.users {
		if u.TokenDigest != nil && *u.TokenDigest == digest {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserPort) UpdateTokenDigest(ctx context.Context, id uuid.UUID, digest string) error {
	u, ok := f.users[id]
	if !ok {
		return errors.New("no such user")
	}
	u.TokenDigest = &digest
	return nil
}

type fakeTimetablePort struct {
	grids map[uuid.UUID]domain.Grid
}

func newFakeTimetablePort() *fakeTimetablePort {
	return &fakeTimetablePort{grids: make(map[uuid.UUID]domain.Grid)}
}

func (f *fakeTimetablePort) GetGrid(ctx context.Context, userID uuid.UUID) (domain.Grid, error) {
	return f.grids[userID], nil
}

func (f *fakeTimetablePort) SetCell(ctx context.Context, userID uuid.UUID, day domain.Day, period domain.Period, classID *uuid.UUID) error {
	grid := f.grids[userID]
	grid.Set(day, period, classID)
	f.grids[userID] = grid
	return nil
}

func newTestService() (*SessionService, *fakeUserPort, *fakeTimetablePort) {
	users := newFakeUserPort()
	timetables := newFakeTimetablePort()
	svc := NewSessionService(users, timetables, crypto.NewTokenCipher(), nopLogger{})
	return svc, users, timetables
}

func addUser(t *testing.T, users *fakeUserPort, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	if err := users.Create(context.Background(), &domain.Users{ID: id, Name: name, GoogleID: "gg-" + name}); err != nil {
		t.Fatalf("failed to add user: %v", err)
	}
	return id
}

func TestIssueTokenThenVerify(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()
	userID := addUser(t, users, "alice")

	token, err := svc.IssueToken(ctx, userID)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("IssueToken returned empty token")
	}

	sess, err := svc.Verify(ctx, token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if sess.UserID != userID {
		t.Errorf("session user = %v, want %v", sess.UserID, userID)
	}
	if sess.Name != "alice" {
		t.Errorf("session name = %q, want %q", sess.Name, "alice")
	}
}

func TestRawTokenIsNeverStored(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()
	userID := addUser(t, users, "alice")

	token, err := svc.IssueToken(ctx, userID)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	stored := users.users[userID].TokenDigest
	if stored == nil {
		t.Fatal("no digest stored")
	}
	if *stored == token {
		t.Error("raw token was stored instead of its digest")
	}
}

func TestReissueInvalidatesPreviousToken(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()
	userID := addUser(t, users, "alice")

	oldToken, err := svc.IssueToken(ctx, userID)
	if err != nil {
		t.Fatalf("first IssueToken failed: %v", err)
	}
	newToken, err := svc.IssueToken(ctx, userID)
	if err != nil {
		t.Fatalf("second IssueToken failed: %v", err)
	}

	if _, err := svc.Verify(ctx, oldToken); !errors.Is(err, errs.InvalidSession) {
		t.Errorf("Verify(oldToken) error = %v, want InvalidSession", err)
	}
	if _, err := svc.Verify(ctx, newToken); err != nil {
		t.Errorf("Verify(newToken) failed: %v", err)
	}
}

func TestVerifyUnknownToken(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()
	addUser(t, users, "alice")

	if _, err := svc.Verify(ctx, "never-issued"); !errors.Is(err, errs.InvalidSession) {
		t.Errorf("Verify error = %v, want InvalidSession", err)
	}
}

func TestReloginKeepsTimetable(t *testing.T) {
	svc, users, timetables := newTestService()
	ctx := context.Background()
	userID := addUser(t, users, "alice")
	classID := uuid.New()

	t1, err := svc.IssueToken(ctx, userID)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if err := timetables.SetCell(ctx, userID, domain.Friday, 2, &classID); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}

	t2, err := svc.IssueToken(ctx, userID)
	if err != nil {
		t.Fatalf("re-login IssueToken failed: %v", err)
	}

	if _, err := svc.Verify(ctx, t1); !errors.Is(err, errs.InvalidSession) {
		t.Errorf("Verify(t1) error = %v, want InvalidSession", err)
	}

	sess, err := svc.Verify(ctx, t2)
	if err != nil {
		t.Fatalf("Verify(t2) failed: %v", err)
	}
	cell := sess.Timetable.At(domain.Friday, 2)
	if cell.Empty() || *cell.ClassID != classID {
		t.Error("timetable changed across re-login")
	}
}
