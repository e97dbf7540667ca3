// Package services contains application services for the expenzo client.
// This file defines the authentication service: signup, login with session
// persistence, and a liveness probe.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/expenzo/internal/client/client"
	"github.com/dmitrijs2005/expenzo/internal/client/models"
	"github.com/dmitrijs2005/expenzo/internal/client/session"
)

// SessionStore is the part of session.Store the client services use.
type SessionStore interface {
	Save(ctx context.Context, s session.Session) error
	Load(ctx context.Context) (session.Session, error)
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Signup: create an account; returns the server's message.
//   - Login: authenticate and persist the session; returns the server's answer.
//   - Ping: check server liveness.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	Ping(ctx context.Context) error
}

type authService struct {
	client   client.Client
	sessions SessionStore
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(c client.Client, s SessionStore) AuthService {
	return &authService{client: c, sessions: s}
}

func (a *authService) Signup(ctx context.Context, name, email, password string) (string, error) {
	msg, err := a.client.Signup(ctx, name, email, password)
	if err != nil {
		return "", fmt.Errorf("signup error: %w", err)
	}
	return msg, nil
}

// Login stores the returned token and name so later protected calls and
// restarts of the CLI find them.
func (a *authService) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.sessions.Save(ctx, session.Session{Token: res.JwtToken, Username: res.Name}); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return res, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
