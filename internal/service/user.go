package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Skotchmaster/dummyjson/internal/models"
	"github.com/Skotchmaster/dummyjson/internal/query"
	"github.com/Skotchmaster/dummyjson/internal/repo"
)

var UserSchema = query.SchemaFor[models.User]()

type UserService struct {
	Catalog *repo.Catalog
	Events  EventPublisher
	Now     func() time.Time
}

func userText(u models.User) []string {
	return []string{u.FirstName, u.LastName, u.MaidenName, u.Username, u.Email}
}

func (s *UserService) List(ctx context.Context, opts query.Options) Page {
	return listPage(UserSchema, s.Catalog.Users(), opts)
}

func (s *UserService) Search(ctx context.Context, opts query.Options) Page {
	return listPage(UserSchema, query.Search(s.Catalog.Users(), opts.Q, userText), opts)
}

// Filter keeps the users whose value at the dotted key path equals value,
// compared case-insensitively as text.
func (s *UserService) Filter(ctx context.Context, key, value string, opts query.Options) (Page, error) {
	m, err := query.NewPathMatcher(key, value)
	if err != nil {
		return Page{}, fmt.Errorf("filter key: %w: %v", ErrValidation, err)
	}

	var matchErr error
	users := query.Filter(s.Catalog.Users(), func(u models.User) bool {
		ok, err := m.Match(u)
		if err != nil && matchErr == nil {
			matchErr = err
		}
		return ok
	})
	if matchErr != nil {
		return Page{}, fmt.Errorf("filter users: %w: %v", ErrComputation, matchErr)
	}
	return listPage(UserSchema, users, opts), nil
}

func (s *UserService) Get(ctx context.Context, id int, sel []string) (any, error) {
	u, ok := s.Catalog.User(id)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return query.ProjectOne(UserSchema, u, sel), nil
}

// EnsureUser reports ErrNotFound for ids outside the catalog.
func (s *UserService) EnsureUser(ctx context.Context, id int) error {
	if _, ok := s.Catalog.User(id); !ok {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *UserService) Add(ctx context.Context, body map[string]any) (models.User, error) {
	u, err := overlay(models.User{}, body)
	if err != nil {
		return models.User{}, err
	}
	u.ID = s.Catalog.NextUserID()

	publish(ctx, s.Events, TopicUsers, "user_added", u.ID)
	return u, nil
}

func (s *UserService) Update(ctx context.Context, id int, body map[string]any) (models.User, error) {
	u, ok := s.Catalog.User(id)
	if !ok {
		return models.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	u, err := overlay(u, body)
	if err != nil {
		return models.User{}, err
	}

	publish(ctx, s.Events, TopicUsers, "user_updated", id)
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int) (map[string]any, error) {
	u, ok := s.Catalog.User(id)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	publish(ctx, s.Events, TopicUsers, "user_deleted", id)
	return deletedView(UserSchema, u, clock(s.Now)), nil
}
