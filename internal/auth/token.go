package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinKeyBytes is the shortest HS512 signing key accepted
const MinKeyBytes = 64

var (
	// ErrShortKey is returned when the signing key is below MinKeyBytes
	ErrShortKey = errors.New("signing key must be at least 64 bytes for HS512")
	// ErrEmptySubject is returned when a token is requested for nobody
	ErrEmptySubject = errors.New("token subject is required")
)

// TokenService issues and verifies HS512 bearer tokens
type TokenService struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenService creates a token service signing with key; issued tokens expire after ttl
func NewTokenService(key []byte, ttl time.Duration) (*TokenService, error) {
	if len(key) < MinKeyBytes {
		return nil, ErrShortKey
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &TokenService{key: key, ttl: ttl, now: time.Now}, nil
}

// TTL returns the lifetime of issued tokens
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for subject with iat = now and exp = now + ttl
func (s *TokenService) Issue(subject string) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Validate reports whether the token is well-formed, HS512-signed with our key and unexpired
func (s *TokenService) Validate(token string) bool {
	_, err := s.Parse(token)
	return err == nil
}

// Parse verifies the token and returns its claims
func (s *TokenService) Parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
