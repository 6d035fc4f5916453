package account

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dapsigames/game-hub/internal/store"
)

var testSecret = []byte("test-secret")

func newTestService(t *testing.T) *MockService {
	t.Helper()
	s := store.New(filepath.Join(t.TempDir(), "hub.db"), nil)
	if err := s.Init(); err != nil {
		t.Fatalf("store init failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	svc := NewMock(s, testSecret, nil)
	svc.Latency = 0
	return svc
}

func TestLoginDemoAccount(t *testing.T) {
	svc := newTestService(t)

	user, token, err := svc.Login(context.Background(), DemoEmail, DemoPassword)
	if err != nil {
		t.Fatalf("demo login failed: %v", err)
	}
	if user.ID != "demo-user" || user.Username != "DemoPlayer" {
		t.Errorf("unexpected demo user %+v", user)
	}
	if user.TotalScore != 2840 || user.GamesPlayed != 47 {
		t.Errorf("demo user should carry seeded scores, got %d/%d",
			user.TotalScore, user.GamesPlayed)
	}
	if token == "" {
		t.Error("login returned empty token")
	}

	current, ok := svc.Current()
	if !ok {
		t.Fatal("no session after login")
	}
	if current.ID != "demo-user" {
		t.Errorf("session holds %q, want demo-user", current.ID)
	}
}

func TestLoginFabricatesUnknownAccount(t *testing.T) {
	svc := newTestService(t)

	user, _, err := svc.Login(context.Background(), "alice@example.com", "whatever")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	// Unknown credentials never fail; an account is fabricated from the
	// email's local part.
	if user.Username != "alice" {
		t.Errorf("expected username 'alice', got %q", user.Username)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("unexpected email %q", user.Email)
	}
	if user.ID == "" {
		t.Error("fabricated user has no id")
	}
	if user.TotalScore != 0 || user.GamesPlayed != 0 {
		t.Error("fabricated user should start at zero")
	}
}

func TestRegisterAndRelogin(t *testing.T) {
	svc := newTestService(t)

	user, token, err := svc.Register(context.Background(), "bob", "bob@example.com", "hunter22")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Username != "bob" || token == "" {
		t.Errorf("unexpected register result %+v / %q", user, token)
	}

	svc.Logout()
	if _, ok := svc.Current(); ok {
		t.Fatal("session survived logout")
	}

	// Logging back in finds the registered record, not a fabricated one.
	again, _, err := svc.Login(context.Background(), "bob@example.com", "hunter22")
	if err != nil {
		t.Fatalf("re-login failed: %v", err)
	}
	if again.ID != user.ID {
		t.Errorf("re-login got id %q, want %q", again.ID, user.ID)
	}
	if again.Username != "bob" {
		t.Errorf("re-login got username %q, want bob", again.Username)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	if _, _, err := svc.Register(context.Background(), "bob", "bob@example.com", "hunter22"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, _, err := svc.Register(context.Background(), "robert", "bob@example.com", "other")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdateScore(t *testing.T) {
	svc := newTestService(t)

	if _, _, err := svc.Register(context.Background(), "bob", "bob@example.com", "hunter22"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.UpdateScore(context.Background(), "sudoku-solver", 120)
	if err != nil {
		t.Fatalf("UpdateScore failed: %v", err)
	}
	if user.TotalScore != 120 || user.GamesPlayed != 1 {
		t.Errorf("expected 120/1, got %d/%d", user.TotalScore, user.GamesPlayed)
	}

	user, err = svc.UpdateScore(context.Background(), "memory-palace", 80)
	if err != nil {
		t.Fatalf("second UpdateScore failed: %v", err)
	}
	if user.TotalScore != 200 || user.GamesPlayed != 2 {
		t.Errorf("expected 200/2, got %d/%d", user.TotalScore, user.GamesPlayed)
	}

	// The user table mirrors the session totals, so the score survives a
	// logout/login cycle.
	svc.Logout()
	again, _, err := svc.Login(context.Background(), "bob@example.com", "hunter22")
	if err != nil {
		t.Fatalf("re-login failed: %v", err)
	}
	if again.TotalScore != 200 || again.GamesPlayed != 2 {
		t.Errorf("scores lost across sessions: %d/%d", again.TotalScore, again.GamesPlayed)
	}
}

func TestUpdateScoreWithoutSession(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateScore(context.Background(), "sudoku-solver", 50)
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestLoginCanceledContext(t *testing.T) {
	svc := newTestService(t)
	svc.Latency = time.Second // force the latency path

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := svc.Login(ctx, DemoEmail, DemoPassword); err == nil {
		t.Error("login with canceled context should fail")
	}
}

func TestTokenRoundtrip(t *testing.T) {
	svc := newTestService(t)

	user, token, err := svc.Login(context.Background(), DemoEmail, DemoPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	subject, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if subject != user.ID {
		t.Errorf("token subject %q, want %q", subject, user.ID)
	}

	if _, err := ParseToken(token, []byte("wrong-secret")); err == nil {
		t.Error("token should not verify with the wrong secret")
	}
	if _, err := ParseToken("not-a-token", testSecret); err == nil {
		t.Error("garbage token should not parse")
	}
}
