package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 15 * time.Minute

var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator issues and verifies the bearer tokens that guard the
// mutating routes. There is a single operator account whose bcrypt hash
// comes from configuration.
type Authenticator struct {
	secret    []byte
	adminUser string
	adminHash []byte
}

func NewAuthenticator(secret, adminUser, adminPasswordHash string) *Authenticator {
	return &Authenticator{
		secret:    []byte(secret),
		adminUser: adminUser,
		adminHash: []byte(adminPasswordHash),
	}
}

// Login checks the credentials and returns a signed token.
func (a *Authenticator) Login(username, password string) (string, error) {
	if username != a.adminUser {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(a.adminHash, []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return a.GenerateToken(username)
}

func (a *Authenticator) GenerateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ParseToken validates signature, algorithm and expiry.
func (a *Authenticator) ParseToken(tokenStr string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return token, nil
}
