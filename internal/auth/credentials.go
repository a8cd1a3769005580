// Package auth implements the single-operator admin sign-in: a static
// credential pair, signed session tokens with expiry, and sign-out revocation.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials is the configured admin credential pair. The password is kept
// only as a bcrypt hash.
type Credentials struct {
	email string
	hash  []byte
}

func NewCredentials(email, password string) (*Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &Credentials{email: strings.TrimSpace(email), hash: hash}, nil
}

// Matches compares a sign-in attempt against the configured pair.
func (c *Credentials) Matches(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(email)), []byte(c.email)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil
	return emailOK && passwordOK
}

// Authenticator signs admins in and out and checks session tokens.
type Authenticator struct {
	credentials *Credentials
	issuer      *TokenIssuer
	sessions    SessionStore
}

func NewAuthenticator(creds *Credentials, issuer *TokenIssuer, sessions SessionStore) *Authenticator {
	return &Authenticator{credentials: creds, issuer: issuer, sessions: sessions}
}

// SignIn checks the credential pair and issues a session token.
func (a *Authenticator) SignIn(email, password string) (string, Session, error) {
	if !a.credentials.Matches(email, password) {
		return "", Session{}, ErrInvalidCredentials
	}
	return a.issuer.Issue(email)
}

// Authenticate validates a token and rejects revoked sessions.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (Session, error) {
	session, err := a.issuer.Validate(token)
	if err != nil {
		return Session{}, err
	}
	revoked, err := a.sessions.IsRevoked(ctx, session.ID)
	if err != nil {
		return Session{}, fmt.Errorf("check session: %w", err)
	}
	if revoked {
		return Session{}, ErrSessionRevoked
	}
	return session, nil
}

// SignOut revokes the session until its token would have expired anyway.
func (a *Authenticator) SignOut(ctx context.Context, session Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return a.sessions.Revoke(ctx, session.ID, ttl)
}
