package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrSessionRevoked = errors.New("session has been signed out")
)

// Session is an authenticated admin session carried by a signed token.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TokenIssuer signs and validates admin session tokens (HS256).
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue creates a token for the given admin email. The session id doubles as
// the token's "jti" so a sign-out can revoke it.
func (i *TokenIssuer) Issue(email string) (string, Session, error) {
	now := i.now()
	session := Session{
		ID:        uuid.NewString(),
		Email:     email,
		IsAdmin:   true,
		ExpiresAt: now.Add(i.ttl).Truncate(time.Second),
	}

	claims := jwt.RegisteredClaims{
		Subject:   email,
		ID:        session.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("sign token: %w", err)
	}
	return tokenString, session, nil
}

// Validate parses a token and returns its session.
func (i *TokenIssuer) Validate(tokenString string) (Session, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}
	if claims.ID == "" || claims.Subject == "" {
		return Session{}, ErrInvalidToken
	}

	return Session{
		ID:        claims.ID,
		Email:     claims.Subject,
		IsAdmin:   true,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
