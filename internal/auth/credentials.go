package auth

import (
	"crypto/subtle"
	"errors"
)

// ErrInvalidCredentials is returned for any username/password mismatch
var ErrInvalidCredentials = errors.New("invalid username or password")

// Credentials is the single configured login pair
type Credentials struct {
	Username string
	Password string
}

// Verify compares both fields in constant time. Empty input never matches.
func (c Credentials) Verify(username, password string) bool {
	if username == "" || password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password))
	return userOK&passOK == 1
}
