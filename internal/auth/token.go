package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the owner identity inside an access token.
type Claims struct {
	jwt.RegisteredClaims
	Email        string `json:"email,omitempty"`
	Name         string `json:"name,omitempty"`
	RestaurantID string `json:"restaurantId,omitempty"`
}

// TokenManager mints and verifies HS256 owner tokens.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewTokenManager builds a manager around a shared HMAC secret.
func NewTokenManager(secret []byte, issuer, audience string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue mints a signed token for an owner account.
func (m *TokenManager) Issue(accountID, email, name, restaurantID string) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email:        email,
		Name:         name,
		RestaurantID: restaurantID,
	}
	if m.audience != "" {
		claims.Audience = jwt.ClaimStrings{m.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies signature, lifetime, issuer, audience, and subject.
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithLeeway(30*time.Second), jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("access token is not valid")
	}

	if m.issuer != "" && claims.Issuer != m.issuer {
		return nil, fmt.Errorf("access token issuer mismatch")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, fmt.Errorf("access token has no subject")
	}
	if m.audience != "" && !contains(claims.Audience, m.audience) {
		return nil, fmt.Errorf("access token audience mismatch")
	}

	now := m.now()
	if claims.ExpiresAt != nil && now.After(claims.ExpiresAt.Time) {
		return nil, fmt.Errorf("access token expired")
	}
	if claims.NotBefore != nil && now.Before(claims.NotBefore.Time.Add(-30*time.Second)) {
		return nil, fmt.Errorf("access token not yet valid")
	}

	return claims, nil
}

func contains(values []string, item string) bool {
	for _, value := range values {
		if value == item {
			return true
		}
	}
	return false
}
