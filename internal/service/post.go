package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Skotchmaster/dummyjson/internal/models"
	"github.com/Skotchmaster/dummyjson/internal/query"
	"github.com/Skotchmaster/dummyjson/internal/repo"
)

var PostSchema = query.SchemaFor[models.Post]()

type PostService struct {
	Catalog *repo.Catalog
	Events  EventPublisher
	Now     func() time.Time
}

func (s *PostService) List(ctx context.Context, opts query.Options) Page {
	return listPage(PostSchema, s.Catalog.Posts(), opts)
}

func (s *PostService) Search(ctx context.Context, opts query.Options) Page {
	posts := query.Search(s.Catalog.Posts(), opts.Q, func(p models.Post) []string {
		return []string{p.Title, p.Body}
	})
	return listPage(PostSchema, posts, opts)
}

func (s *PostService) ByUser(ctx context.Context, userID int, opts query.Options) Page {
	return listPage(PostSchema, s.Catalog.PostsByUser(userID), opts)
}

func (s *PostService) Get(ctx context.Context, id int, sel []string) (any, error) {
	p, ok := s.Catalog.Post(id)
	if !ok {
		return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	return query.ProjectOne(PostSchema, p, sel), nil
}

func (s *PostService) Add(ctx context.Context, body map[string]any) (models.Post, error) {
	p, err := overlay(models.Post{}, body)
	if err != nil {
		return models.Post{}, err
	}
	if p.UserID <= 0 {
		return models.Post{}, fmt.Errorf("userId is required: %w", ErrValidation)
	}
	p.ID = s.Catalog.NextPostID()

	publish(ctx, s.Events, TopicPosts, "post_added", p.ID)
	return p, nil
}

func (s *PostService) Update(ctx context.Context, id int, body map[string]any) (models.Post, error) {
	p, ok := s.Catalog.Post(id)
	if !ok {
		return models.Post{}, fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	p, err := overlay(p, body)
	if err != nil {
		return models.Post{}, err
	}

	publish(ctx, s.Events, TopicPosts, "post_updated", id)
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, id int) (map[string]any, error) {
	p, ok := s.Catalog.Post(id)
	if !ok {
		return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
	}

	publish(ctx, s.Events, TopicPosts, "post_deleted", id)
	return deletedView(PostSchema, p, clock(s.Now)), nil
}
