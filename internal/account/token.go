package account

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is how long a mock session token nominally lives. Nothing
// enforces it; the claim exists so the token shape matches a real one.
const tokenTTL = 7 * 24 * time.Hour

// signToken mints an HS256 session token for a user.
func (m *MockService) signToken(user User) (string, error) {
	now := m.now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ParseToken verifies a token's signature and returns its subject.
// Mock-grade: used only so the demo round-trips like a real flow.
func ParseToken(token string, secret []byte) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	return parsed.Claims.GetSubject()
}
