package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Skotchmaster/dummyjson/internal/models"
	"github.com/Skotchmaster/dummyjson/internal/query"
	"github.com/Skotchmaster/dummyjson/internal/repo"
	"github.com/Skotchmaster/dummyjson/pkg/logging"
)

var ProductSchema = query.SchemaFor[models.Product]()

// ProductIndex is an external full-text index over the product catalog. It
// returns matching product ids in catalog order.
type ProductIndex interface {
	Match(ctx context.Context, q string) ([]int, error)
}

type ProductService struct {
	Catalog *repo.Catalog
	Index   ProductIndex
	Events  EventPublisher
	Now     func() time.Time
}

func productText(p models.Product) []string {
	return []string{p.Title, p.Description, p.Category, p.Brand}
}

func (s *ProductService) List(ctx context.Context, opts query.Options) Page {
	return listPage(ProductSchema, s.Catalog.Products(), opts)
}

// Search uses the index when one is configured and falls back to scanning
// the catalog if the index fails.
func (s *ProductService) Search(ctx context.Context, opts query.Options) Page {
	if s.Index != nil && opts.Q != "" {
		ids, err := s.Index.Match(ctx, opts.Q)
		if err == nil {
			items := make([]models.Product, 0, len(ids))
			for _, id := range ids {
				if p, ok := s.Catalog.Product(id); ok {
					items = append(items, p)
				}
			}
			return listPage(ProductSchema, items, opts)
		}
		logging.FromContext(ctx).Warn("product_index_search_failed", "reason", "falling back to catalog scan", "error", err)
	}
	return listPage(ProductSchema, query.Search(s.Catalog.Products(), opts.Q, productText), opts)
}

func (s *ProductService) Categories(ctx context.Context) []string {
	return s.Catalog.Categories()
}

func (s *ProductService) ByCategory(ctx context.Context, name string, opts query.Options) Page {
	return listPage(ProductSchema, s.Catalog.ProductsByCategory(name), opts)
}

func (s *ProductService) Get(ctx context.Context, id int, sel []string) (any, error) {
	p, ok := s.Catalog.Product(id)
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return query.ProjectOne(ProductSchema, p, sel), nil
}

func (s *ProductService) Add(ctx context.Context, body map[string]any) (models.Product, error) {
	p, err := overlay(models.Product{}, body)
	if err != nil {
		return models.Product{}, err
	}
	p.ID = s.Catalog.NextProductID()

	publish(ctx, s.Events, TopicProducts, "product_added", p.ID)
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id int, body map[string]any) (models.Product, error) {
	p, ok := s.Catalog.Product(id)
	if !ok {
		return models.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	p, err := overlay(p, body)
	if err != nil {
		return models.Product{}, err
	}

	publish(ctx, s.Events, TopicProducts, "product_updated", id)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) (map[string]any, error) {
	p, ok := s.Catalog.Product(id)
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}

	publish(ctx, s.Events, TopicProducts, "product_deleted", id)
	return deletedView(ProductSchema, p, clock(s.Now)), nil
}
