package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Skotchmaster/dummyjson/internal/models"
	"github.com/Skotchmaster/dummyjson/internal/repo"
	"github.com/Skotchmaster/dummyjson/pkg/tokens"
)

const DefaultTokenTTL = 60 * time.Minute

// Session is the result of a successful login.
type Session struct {
	User      models.User
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	Catalog *repo.Catalog
	Secret  []byte
	TTL     time.Duration
	Now     func() time.Time
}

// Login checks the credentials against the catalog users and issues an
// access token. ttl overrides the configured lifetime when positive.
func (s *AuthService) Login(ctx context.Context, username, password string, ttl time.Duration) (Session, error) {
	if username == "" || password == "" {
		return Session{}, fmt.Errorf("username and password are required: %w", ErrValidation)
	}

	u, ok := s.Catalog.UserByUsername(username)
	if !ok || u.Password != password {
		return Session{}, fmt.Errorf("invalid credentials: %w", ErrValidation)
	}

	if ttl <= 0 {
		ttl = s.TTL
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	exp := clock(s.Now).Add(ttl)

	token, err := tokens.NewAccessToken(u.ID, u.Username, exp, s.Secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign token: %w", err)
	}
	return Session{User: u, Token: token, ExpiresAt: exp}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID int) (models.User, error) {
	u, ok := s.Catalog.User(userID)
	if !ok {
		return models.User{}, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	return u, nil
}
