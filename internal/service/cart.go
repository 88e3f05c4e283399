package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Skotchmaster/dummyjson/internal/models"
	"github.com/Skotchmaster/dummyjson/internal/query"
	"github.com/Skotchmaster/dummyjson/internal/repo"
)

var CartSchema = query.SchemaFor[models.Cart]()

// CartLine is a requested product id and quantity.
type CartLine struct {
	ID       int
	Quantity int
}

type AddCartInput struct {
	UserID   int
	Products []CartLine
}

// UpdateCartInput leaves the lines untouched when Products is nil.
type UpdateCartInput struct {
	Merge    bool
	Products []CartLine
	UserID   *int
}

type CartService struct {
	Catalog *repo.Catalog
	Events  EventPublisher
	Now     func() time.Time
}

func (s *CartService) List(ctx context.Context, opts query.Options) Page {
	return listPage(CartSchema, s.Catalog.Carts(), opts)
}

func (s *CartService) ByUser(ctx context.Context, userID int, opts query.Options) Page {
	return listPage(CartSchema, s.Catalog.CartsByUser(userID), opts)
}

func (s *CartService) Get(ctx context.Context, id int, sel []string) (any, error) {
	c, ok := s.Catalog.Cart(id)
	if !ok {
		return nil, fmt.Errorf("cart %d: %w", id, ErrNotFound)
	}
	return query.ProjectOne(CartSchema, c, sel), nil
}

// lines prices the requested products. Unknown product ids are skipped and
// repeated ids are folded into one line with the quantities summed.
func (s *CartService) lines(in []CartLine) []models.CartProduct {
	out := make([]models.CartProduct, 0, len(in))
	pos := make(map[int]int, len(in))
	for _, l := range in {
		p, ok := s.Catalog.Product(l.ID)
		if !ok {
			continue
		}
		qty := max(l.Quantity, 1)
		if i, dup := pos[l.ID]; dup {
			out[i] = cartLine(p, out[i].Quantity+qty)
			continue
		}
		pos[l.ID] = len(out)
		out = append(out, cartLine(p, qty))
	}
	return out
}

func (s *CartService) Add(ctx context.Context, in AddCartInput) (models.Cart, error) {
	if in.UserID <= 0 {
		return models.Cart{}, fmt.Errorf("userId is required: %w", ErrValidation)
	}
	if len(in.Products) == 0 {
		return models.Cart{}, fmt.Errorf("products must not be empty: %w", ErrValidation)
	}

	c := withTotals(models.Cart{
		ID:       s.Catalog.NextCartID(),
		UserID:   in.UserID,
		Products: s.lines(in.Products),
	})

	publish(ctx, s.Events, TopicCarts, "cart_added", c.ID)
	return c, nil
}

func (s *CartService) Update(ctx context.Context, id int, in UpdateCartInput) (models.Cart, error) {
	c, ok := s.Catalog.Cart(id)
	if !ok {
		return models.Cart{}, fmt.Errorf("cart %d: %w", id, ErrNotFound)
	}

	if in.UserID != nil {
		c.UserID = *in.UserID
	}

	if in.Products != nil {
		incoming := s.lines(in.Products)
		if in.Merge {
			c.Products = mergeLines(c.Products, incoming)
		} else {
			c.Products = incoming
		}
	}
	c = withTotals(c)

	publish(ctx, s.Events, TopicCarts, "cart_updated", id)
	return c, nil
}

// mergeLines replaces the quantity of lines already in the cart and
// appends the rest, keeping the existing order.
func mergeLines(existing, incoming []models.CartProduct) []models.CartProduct {
	out := make([]models.CartProduct, len(existing), len(existing)+len(incoming))
	copy(out, existing)

	pos := make(map[int]int, len(out))
	for i, l := range out {
		pos[l.ID] = i
	}
	for _, l := range incoming {
		if i, ok := pos[l.ID]; ok {
			out[i] = l
			continue
		}
		pos[l.ID] = len(out)
		out = append(out, l)
	}
	return out
}

func (s *CartService) Delete(ctx context.Context, id int) (map[string]any, error) {
	c, ok := s.Catalog.Cart(id)
	if !ok {
		return nil, fmt.Errorf("cart %d: %w", id, ErrNotFound)
	}

	publish(ctx, s.Events, TopicCarts, "cart_deleted", id)
	return deletedView(CartSchema, c, clock(s.Now)), nil
}
