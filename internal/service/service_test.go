package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/dummyjson/internal/models"
	"github.com/Skotchmaster/dummyjson/internal/repo"
)

var fixedNow = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

func frozenClock() time.Time { return fixedNow }

func embeddedCatalog(t *testing.T) *repo.Catalog {
	t.Helper()
	c, err := repo.LoadCatalog(repo.Embedded())
	require.NoError(t, err)
	return c
}

func smallCatalog() *repo.Catalog {
	return repo.NewCatalog(repo.Dataset{
		Products: []models.Product{
			{ID: 1, Title: "iPhone 9", Description: "An apple mobile", Price: 549, DiscountPercentage: 12.96, Brand: "Apple", Category: "smartphones", Images: []string{"a.jpg"}},
			{ID: 2, Title: "Galaxy", Description: "Samsung phone", Price: 100, DiscountPercentage: 10, Brand: "Samsung", Category: "smartphones"},
			{ID: 3, Title: "Perfume Oil", Description: "Mega discount", Price: 13, DiscountPercentage: 8.4, Brand: "Impression", Category: "fragrances"},
		},
		Carts: []models.Cart{
			{ID: 4, UserID: 2, Products: []models.CartProduct{{ID: 2, Title: "Galaxy", Price: 100, Quantity: 2, Total: 200, DiscountPercentage: 10, DiscountedPrice: 180}}, Total: 200, DiscountedTotal: 180, TotalProducts: 1, TotalQuantity: 2},
		},
		Users: []models.User{
			{ID: 1, FirstName: "Terry", LastName: "Medhurst", Username: "atuny0", Password: "9uQFF1Lh", Email: "atuny0@sohu.com", Hair: models.Hair{Color: "Black", Type: "Strands"}},
			{ID: 2, FirstName: "Sheldon", LastName: "Quigley", Username: "hbingley1", Password: "CQutx25i8r", Email: "hbingley1@plala.or.jp", Hair: models.Hair{Color: "Blond", Type: "Curly"}},
		},
		Posts: []models.Post{
			{ID: 1, Title: "His mother had always taught him", Body: "not to ever think", UserID: 1, Tags: []string{"history"}},
			{ID: 2, Title: "He was an expert", Body: "but not in a discipline", UserID: 2},
		},
		Todos: []models.Todo{
			{ID: 1, Todo: "Do something nice", Completed: true, UserID: 1},
			{ID: 2, Todo: "Memorize the fifty states", UserID: 2},
		},
	})
}

type recordedEvent struct {
	Topic string
	Key   string
	Event any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (f *fakePublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{Topic: topic, Key: key, Event: event})
	return f.err
}

func (f *fakePublisher) recorded() []recordedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedEvent(nil), f.events...)
}
