package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"gitlab.com/classhub-2025.net/internal/adapter/crypto"
	"gitlab.com/classhub-2025.net/internal/core/services/session"
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

type fakeTimetablePort struct{}

func (fakeTimetablePort) GetGrid(ctx context.Context, userID uuid.UUID) (domain.Grid, error) {
	return domain.Grid{}, nil
}

func (fakeTimetablePort) SetCell(ctx context.Context, userID uuid.UUID, day domain.Day, period domain.Period, classID *uuid.UUID) error {
	return nil
}

type fakeLoginStatePort struct {
	states map[string]bool
}

func newFakeLoginStatePort() *fakeLoginStatePort {
	return &fakeLoginStatePort{states: make(map[string]bool)}
}

func (f *fakeLoginStatePort) Save(ctx context.Context, state string) error {
	f.states[state] = true
	return nil
}

func (f *fakeLoginStatePort) Consume(ctx context.Context, state string) (bool, error) {
	if !f.states[state] {
		return false, nil
	}
	delete(f.states, state)
	return true, nil
}

type fakeIdentityPort struct {
	identity domain.ExternalIdentity
}

func (f *fakeIdentityPort) AuthCodeURL(state string) string {
	return "https://accounts.example.com/o/oauth2/auth?state=" + state
}

func (f *fakeIdentityPort) Exchange(ctx context.Context, code string) (*domain.ExternalIdentity, error) {
	if code == "bad-code" {
		return nil, errs.UpstreamFailure
	}
	identity := f.identity
	return &identity, nil
}

func newTestService() (IAuthService, session.ISessionService, *fakeUserPort, *fakeLoginStatePort) {
	users := newFakeUserPort()
	states := newFakeLoginStatePort()
	cipher := crypto.NewTokenCipher()
	sessions := session.NewSessionService(users, fakeTimetablePort{}, cipher, nopLogger{})
	identity := &fakeIdentityPort{identity: domain.ExternalIdentity{
		Provider: domain.ProviderGoogle,
		Subject:  "gg-12345",
		Name:     "Alice Sato",
		Email:    "alice@example.edu",
		Picture:  "https://img.example.com/alice.png",
	}}
	svc := NewGoogleAuthService(users, states, identity, sessions, cipher, nopLogger{})
	return svc, sessions, users, states
}

func stateFromURL(t *testing.T, url string) string {
	t.Helper()
	i := strings.Index(url, "state=")
	if i < 0 {
		t.Fatalf("no state in URL %q", url)
	}
	return url[i+len("state="):]
}

func TestIssueLoginStatePersistsState(t *testing.T) {
	svc, _, _, states := newTestService()
	ctx := context.Background()

	url, err := svc.IssueLoginState(ctx)
	if err != nil {
		t.Fatalf("IssueLoginState failed: %v", err)
	}

	state := stateFromURL(t, url)
	if !states.states[state] {
		t.Errorf("state %q was not persisted", state)
	}
}

func TestConsumeLoginStateTrueExactlyOnce(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	url, err := svc.IssueLoginState(ctx)
	if err != nil {
		t.Fatalf("IssueLoginState failed: %v", err)
	}
	state := stateFromURL(t, url)

	ok, err := svc.ConsumeLoginState(ctx, state)
	if err != nil || !ok {
		t.Fatalf("first consume = (%v, %v), want (true, nil)", ok, err)
	}
	ok, err = svc.ConsumeLoginState(ctx, state)
	if err != nil || ok {
		t.Fatalf("second consume = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestHandleCallbackCreatesNewUser(t *testing.T) {
	svc, sessions, users, _ := newTestService()
	ctx := context.Background()

	url, err := svc.IssueLoginState(ctx)
	if err != nil {
		t.Fatalf("IssueLoginState failed: %v", err)
	}

	token, err := svc.HandleCallback(ctx, stateFromURL(t, url), "good-code")
	if err != nil {
		t.Fatalf("HandleCallback failed: %v", err)
	}

	sess, err := sessions.Verify(ctx, token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if sess.Name != "Alice Sato" {
		t.Errorf("session name = %q, want %q", sess.Name, "Alice Sato")
	}
	if len(users.users) != 1 {
		t.Errorf("user count = %d, want 1", len(users.users))
	}
}

func TestHandleCallbackLogsInExistingUser(t *testing.T) {
	svc, _, users, _ := newTestService()
	ctx := context.Background()

	// first login creates the user
	url, _ := svc.IssueLoginState(ctx)
	if _, err := svc.HandleCallback(ctx, stateFromURL(t, url), "good-code"); err != nil {
		t.Fatalf("first HandleCallback failed: %v", err)
	}

	// second login with the same identity must not create another user
	url2, _ := svc.IssueLoginState(ctx)
	if _, err := svc.HandleCallback(ctx, stateFromURL(t, url2), "good-code"); err != nil {
		t.Fatalf("second HandleCallback failed: %v", err)
	}

	if len(users.users) != 1 {
		t.Errorf("user count = %d, want 1", len(users.users))
	}
}

func TestHandleCallbackRejectsReplayedState(t *testing.T) {
	svc, sessions, _, _ := newTestService()
	ctx := context.Background()

	url, _ := svc.IssueLoginState(ctx)
	state := stateFromURL(t, url)

	token, err := svc.HandleCallback(ctx, state, "good-code")
	if err != nil {
		t.Fatalf("first callback failed: %v", err)
	}

	// replayed redirect with the same state
	if _, err := svc.HandleCallback(ctx, state, "good-code"); !errors.Is(err, errs.InvalidState) {
		t.Fatalf("replayed callback error = %v, want InvalidState", err)
	}

	// the first token is still the valid one, no second token was issued
	if _, err := sessions.Verify(ctx, token); err != nil {
		t.Errorf("original token invalidated by replayed callback: %v", err)
	}
}

func TestHandleCallbackRejectsUnknownState(t *testing.T) {
	svc, _, users, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.HandleCallback(ctx, "forged-state", "good-code"); !errors.Is(err, errs.InvalidState) {
		t.Fatalf("callback error = %v, want InvalidState", err)
	}
	if len(users.users) != 0 {
		t.Error("user created despite rejected state")
	}
}

func TestReissueTokenForExistingUser(t *testing.T) {
	svc, sessions, _, _ := newTestService()
	ctx := context.Background()

	url, _ := svc.IssueLoginState(ctx)
	oldToken, err := svc.HandleCallback(ctx, stateFromURL(t, url), "good-code")
	if err != nil {
		t.Fatalf("HandleCallback failed: %v", err)
	}

	newToken, err := svc.ReissueTokenForExistingUser(ctx, "gg-12345")
	if err != nil {
		t.Fatalf("ReissueTokenForExistingUser failed: %v", err)
	}

	if _, err := sessions.Verify(ctx, oldToken); !errors.Is(err, errs.InvalidSession) {
		t.Errorf("old token still valid after reissue: %v", err)
	}
	if _, err := sessions.Verify(ctx, newToken); err != nil {
		t.Errorf("new token does not verify: %v", err)
	}
}

func TestReissueTokenForUnknownIdentity(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.ReissueTokenForExistingUser(ctx, "nobody"); !errors.Is(err, errs.NotFound) {
		t.Errorf("error = %v, want NotFound", err)
	}
}
