package services

import (
	"context"
	"fmt"
	"time"

	"gamelog/internal/client/client"
	"gamelog/internal/client/repositories/metadata"
	"gamelog/internal/common"
	"gamelog/internal/logging"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService handles login, logout and session restore. The token is a
// bearer string issued by the backend; the client never refreshes it — an
// expired or rejected token simply surfaces as common.ErrUnauthorized.
type AuthService struct {
	client client.Client
	meta   metadata.Repository
	sync   *SyncService
	log    logging.Logger
}

func NewAuthService(c client.Client, meta metadata.Repository, sync *SyncService, log logging.Logger) *AuthService {
	return &AuthService{client: c, meta: meta, sync: sync, log: log}
}

// Login authenticates and persists the session so a restart stays logged in.
func (a *AuthService) Login(ctx context.Context, username, password string) error {
	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := a.meta.Set(ctx, metadata.KeyToken, []byte(token)); err != nil {
		return err
	}
	return a.meta.Set(ctx, metadata.KeyUsername, []byte(username))
}

// Logout runs a forced sync pass first: pending local changes must reach the
// server before the session is dropped. Any failure (offline included)
// aborts the logout so the caller can warn the user and keep the session.
func (a *AuthService) Logout(ctx context.Context) error {
	if err := a.sync.Sync(ctx, true); err != nil {
		return fmt.Errorf("sync before logout: %w", err)
	}

	if err := a.meta.Clear(ctx); err != nil {
		return err
	}
	a.client.SetToken("")
	return nil
}

// RestoreSession installs a previously stored token, if one exists and its
// exp claim has not passed. The signature is deliberately not verified —
// only the server can do that; the local check just avoids starting a
// session that every request would reject anyway.
func (a *AuthService) RestoreSession(ctx context.Context) (string, error) {
	token, err := a.meta.Get(ctx, metadata.KeyToken)
	if err != nil {
		return "", err
	}
	if token == nil {
		return "", common.ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(string(token), claims); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
		return "", fmt.Errorf("%w: token expired", common.ErrUnauthorized)
	}

	username, err := a.meta.Get(ctx, metadata.KeyUsername)
	if err != nil {
		return "", err
	}

	a.client.SetToken(string(token))
	return string(username), nil
}
