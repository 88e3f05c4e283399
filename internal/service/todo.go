package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Skotchmaster/dummyjson/internal/models"
	"github.com/Skotchmaster/dummyjson/internal/query"
	"github.com/Skotchmaster/dummyjson/internal/repo"
)

var TodoSchema = query.SchemaFor[models.Todo]()

type TodoService struct {
	Catalog *repo.Catalog
	Events  EventPublisher
	Now     func() time.Time
	// Rand returns a value in [0, n). Defaults to math/rand/v2.
	Rand func(n int) int
}

func (s *TodoService) List(ctx context.Context, opts query.Options) Page {
	return listPage(TodoSchema, s.Catalog.Todos(), opts)
}

func (s *TodoService) ByUser(ctx context.Context, userID int, opts query.Options) Page {
	return listPage(TodoSchema, s.Catalog.TodosByUser(userID), opts)
}

func (s *TodoService) Random(ctx context.Context) (models.Todo, error) {
	todos := s.Catalog.Todos()
	if len(todos) == 0 {
		return models.Todo{}, fmt.Errorf("no todos: %w", ErrNotFound)
	}
	pick := rand.IntN
	if s.Rand != nil {
		pick = s.Rand
	}
	return todos[pick(len(todos))].Clone(), nil
}

func (s *TodoService) Get(ctx context.Context, id int, sel []string) (any, error) {
	t, ok := s.Catalog.Todo(id)
	if !ok {
		return nil, fmt.Errorf("todo %d: %w", id, ErrNotFound)
	}
	return query.ProjectOne(TodoSchema, t, sel), nil
}

func (s *TodoService) Add(ctx context.Context, body map[string]any) (models.Todo, error) {
	t, err := overlay(models.Todo{}, body)
	if err != nil {
		return models.Todo{}, err
	}
	if t.UserID <= 0 {
		return models.Todo{}, fmt.Errorf("userId is required: %w", ErrValidation)
	}
	t.ID = s.Catalog.NextTodoID()

	publish(ctx, s.Events, TopicTodos, "todo_added", t.ID)
	return t, nil
}

func (s *TodoService) Update(ctx context.Context, id int, body map[string]any) (models.Todo, error) {
	t, ok := s.Catalog.Todo(id)
	if !ok {
		return models.Todo{}, fmt.Errorf("todo %d: %w", id, ErrNotFound)
	}
	t, err := overlay(t, body)
	if err != nil {
		return models.Todo{}, err
	}

	publish(ctx, s.Events, TopicTodos, "todo_updated", id)
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id int) (map[string]any, error) {
	t, ok := s.Catalog.Todo(id)
	if !ok {
		return nil, fmt.Errorf("todo %d: %w", id, ErrNotFound)
	}

	publish(ctx, s.Events, TopicTodos, "todo_deleted", id)
	return deletedView(TodoSchema, t, clock(s.Now)), nil
}
