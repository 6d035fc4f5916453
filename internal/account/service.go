/*
Package account defines the account service seam and its mock,
store-backed implementation.

The Service interface is what callers depend on; the mock simulates
login, registration, sessions, and score tracking against the local
key-value store with fabricated data. A real network-backed
implementation can replace it without touching callers.
*/
package account

import (
	"context"
	"errors"
)

var (
	// ErrEmailTaken is returned when registering an email that already
	// exists in the user table.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotLoggedIn is returned by operations that need a session.
	ErrNotLoggedIn = errors.New("not logged in")
)

// User is an account record. TotalScore and GamesPlayed accumulate as
// score updates arrive.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	TotalScore  int    `json:"totalScore"`
	GamesPlayed int    `json:"gamesPlayed"`
	CreatedAt   string `json:"createdAt"`
	Avatar      string `json:"avatar,omitempty"`
}

// Service is the authentication/score seam. Implementations return the
// logged-in user plus an opaque session token.
type Service interface {
	// Login authenticates and opens a session.
	Login(ctx context.Context, email, password string) (*User, string, error)

	// Register creates an account and logs it in. Duplicate emails fail
	// with ErrEmailTaken.
	Register(ctx context.Context, username, email, password string) (*User, string, error)

	// Logout clears the current session. The underlying account record
	// is retained.
	Logout()

	// UpdateScore adds a game result to the current session's totals.
	UpdateScore(ctx context.Context, gameID string, score int) (*User, error)

	// Current returns the session user, if any.
	Current() (*User, bool)
}
