package account

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dapsigames/game-hub/internal/store"
)

// Demo credential pair. Logging in with these returns a fixed seeded
// account instead of fabricating one.
const (
	DemoEmail    = "demo@dapsigames.com"
	DemoPassword = "demo123"
)

// storedUser is a user-table row: the public record plus the password
// hash, which never leaves this package.
type storedUser struct {
	User
	PasswordHash string `json:"passwordHash,omitempty"`
}

// MockService simulates the whole auth workflow against the local
// store. No real backend, no token validation, no security guarantees.
type MockService struct {
	store  *store.Store
	log    *zap.Logger
	secret []byte
	now    func() time.Time

	// Latency is the simulated backend delay applied to Login and
	// Register. Tests set it to zero.
	Latency time.Duration
}

// NewMock creates the mock service. secret signs session tokens.
func NewMock(s *store.Store, secret []byte, log *zap.Logger) *MockService {
	if log == nil {
		log = zap.NewNop()
	}
	return &MockService{
		store:   s,
		log:     log,
		secret:  secret,
		now:     time.Now,
		Latency: 400 * time.Millisecond,
	}
}

func (m *MockService) demoUser() User {
	return User{
		ID:          "demo-user",
		Username:    "DemoPlayer",
		Email:       DemoEmail,
		TotalScore:  2840,
		GamesPlayed: 47,
		CreatedAt:   "2024-01-15T10:30:00Z",
	}
}

// Login simulates backend latency, then either returns the demo account
// for the demo credential pair or fabricates an account from the email.
func (m *MockService) Login(ctx context.Context, email, password string) (*User, string, error) {
	if err := m.simulateLatency(ctx); err != nil {
		return nil, "", err
	}

	var user User
	if email == DemoEmail && password == DemoPassword {
		user = m.demoUser()
	} else if stored, ok := m.findByEmail(email); ok {
		user = stored.User
	} else {
		user = User{
			ID:        uuid.New().String(),
			Username:  usernameFromEmail(email),
			Email:     email,
			CreatedAt: m.now().UTC().Format(time.RFC3339),
		}
	}

	token, err := m.signToken(user)
	if err != nil {
		return nil, "", err
	}

	m.openSession(user, token)
	return &user, token, nil
}

// Register creates an account in the local user table and logs it in.
func (m *MockService) Register(ctx context.Context, username, email, password string) (*User, string, error) {
	if err := m.simulateLatency(ctx); err != nil {
		return nil, "", err
	}

	users := m.loadUsers()
	for _, u := range users {
		if u.Email == email {
			return nil, "", ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		CreatedAt: m.now().UTC().Format(time.RFC3339),
	}
	users = append(users, storedUser{User: user, PasswordHash: string(hash)})
	m.store.WriteJSON(store.KeyUserTable, users)

	token, err := m.signToken(user)
	if err != nil {
		return nil, "", err
	}

	m.openSession(user, token)
	return &user, token, nil
}

// Logout clears the session keys only; the user-table entry stays.
func (m *MockService) Logout() {
	m.store.Remove(store.KeySessionUser)
	m.store.Remove(store.KeySessionToken)
}

// Current returns the session user when both session keys are present.
func (m *MockService) Current() (*User, bool) {
	var user User
	if !m.store.ReadJSON(store.KeySessionUser, &user) {
		return nil, false
	}
	var token string
	if !m.store.ReadJSON(store.KeySessionToken, &token) || token == "" {
		return nil, false
	}
	return &user, true
}

// UpdateScore increments the session user's cumulative score and play
// count, persists the session, and best-effort mirrors the change into
// the user table.
func (m *MockService) UpdateScore(ctx context.Context, gameID string, score int) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user, ok := m.Current()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	user.TotalScore += score
	user.GamesPlayed++
	m.store.WriteJSON(store.KeySessionUser, user)

	users := m.loadUsers()
	for i := range users {
		if users[i].ID == user.ID {
			users[i].TotalScore = user.TotalScore
			users[i].GamesPlayed = user.GamesPlayed
			m.store.WriteJSON(store.KeyUserTable, users)
			break
		}
	}

	m.log.Debug("score updated",
		zap.String("gameId", gameID), zap.Int("score", score),
		zap.Int("totalScore", user.TotalScore))
	return user, nil
}

func (m *MockService) openSession(user User, token string) {
	m.store.WriteJSON(store.KeySessionUser, user)
	m.store.WriteJSON(store.KeySessionToken, token)
}

func (m *MockService) loadUsers() []storedUser {
	var users []storedUser
	m.store.ReadJSON(store.KeyUserTable, &users)
	return users
}

func (m *MockService) findByEmail(email string) (storedUser, bool) {
	for _, u := range m.loadUsers() {
		if u.Email == email {
			return u, true
		}
	}
	return storedUser{}, false
}

func (m *MockService) simulateLatency(ctx context.Context) error {
	if m.Latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(m.Latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// usernameFromEmail fabricates a username from the email's local part.
func usernameFromEmail(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
