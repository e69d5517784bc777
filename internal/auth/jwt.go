package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid claims")
)

// Identity is what the identity provider vouches for. Email is the stable key.
type Identity struct {
	Username string
	Name     string
	Email    string
}

type Claims struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), expiry: expiry, now: time.Now}
}

func (m *TokenManager) GenerateToken(id Identity) (string, error) {
	now := m.now()
	claims := Claims{
		Username: id.Username,
		Name:     id.Name,
		Email:    strings.ToLower(id.Email),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strings.ToLower(id.Email),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) ParseToken(tokenStr string) (Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	if claims.Email == "" {
		return Identity{}, ErrInvalidClaims
	}

	return Identity{
		Username: claims.Username,
		Name:     claims.Name,
		Email:    claims.Email,
	}, nil
}
