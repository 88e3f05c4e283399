package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/dummyjson/internal/models"
	"github.com/Skotchmaster/dummyjson/internal/query"
)

func TestCartService_AddScenario(t *testing.T) {
	t.Parallel()

	cat := embeddedCatalog(t)
	svc := &CartService{Catalog: cat}

	got, err := svc.Add(context.Background(), AddCartInput{
		UserID:   5,
		Products: []CartLine{{ID: 1, Quantity: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, cat.NextCartID(), got.ID)
	assert.Equal(t, 5, got.UserID)
	assert.Equal(t, 3, got.TotalQuantity)
	assert.Equal(t, 1, got.TotalProducts)
	assert.Equal(t, 1647.0, got.Total)
	assert.Equal(t, 1433.55, got.DiscountedTotal)
	assert.Len(t, cat.Carts(), 20)
}

func TestCartService_AddValidation(t *testing.T) {
	t.Parallel()

	svc := &CartService{Catalog: smallCatalog()}

	tests := []struct {
		name string
		in   AddCartInput
	}{
		{name: "missing user", in: AddCartInput{Products: []CartLine{{ID: 1, Quantity: 1}}}},
		{name: "no products", in: AddCartInput{UserID: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), tt.in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCartService_AddFoldsAndSkips(t *testing.T) {
	t.Parallel()

	svc := &CartService{Catalog: smallCatalog()}
	got, err := svc.Add(context.Background(), AddCartInput{
		UserID:   1,
		Products: []CartLine{{ID: 2, Quantity: 1}, {ID: 404, Quantity: 9}, {ID: 2, Quantity: 2}, {ID: 3, Quantity: 0}},
	})
	require.NoError(t, err)

	require.Len(t, got.Products, 2)
	assert.Equal(t, 3, got.Products[0].Quantity)
	assert.Equal(t, 1, got.Products[1].Quantity)
	assert.Equal(t, 4, got.TotalQuantity)
	assert.Equal(t, 313.0, got.Total)
	assert.Equal(t, 281.91, got.DiscountedTotal)
	assert.LessOrEqual(t, got.DiscountedTotal, got.Total)
}

func TestCartService_UpdateMerge(t *testing.T) {
	t.Parallel()

	svc := &CartService{Catalog: smallCatalog()}

	got, err := svc.Update(context.Background(), 4, UpdateCartInput{
		Merge:    true,
		Products: []CartLine{{ID: 2, Quantity: 5}, {ID: 3, Quantity: 1}},
	})
	require.NoError(t, err)

	require.Len(t, got.Products, 2)
	assert.Equal(t, 2, got.Products[0].ID)
	assert.Equal(t, 5, got.Products[0].Quantity)
	assert.Equal(t, 3, got.Products[1].ID)
	assert.Equal(t, 513.0, got.Total)
	assert.Equal(t, 461.91, got.DiscountedTotal)
	assert.Equal(t, 6, got.TotalQuantity)
	assert.Equal(t, 2, got.UserID)

	orig, ok := svc.Catalog.Cart(4)
	require.True(t, ok)
	assert.Len(t, orig.Products, 1)
	assert.Equal(t, 2, orig.Products[0].Quantity)
}

func TestCartService_UpdateReplace(t *testing.T) {
	t.Parallel()

	svc := &CartService{Catalog: smallCatalog()}
	owner := 9

	got, err := svc.Update(context.Background(), 4, UpdateCartInput{
		Products: []CartLine{{ID: 1, Quantity: 1}},
		UserID:   &owner,
	})
	require.NoError(t, err)

	require.Len(t, got.Products, 1)
	assert.Equal(t, 1, got.Products[0].ID)
	assert.Equal(t, 549.0, got.Total)
	assert.Equal(t, 9, got.UserID)
}

func TestCartService_UpdateKeepsLinesWithoutProducts(t *testing.T) {
	t.Parallel()

	svc := &CartService{Catalog: smallCatalog()}
	got, err := svc.Update(context.Background(), 4, UpdateCartInput{Merge: true})
	require.NoError(t, err)
	assert.Equal(t, 200.0, got.Total)
	assert.Equal(t, 180.0, got.DiscountedTotal)

	_, err = svc.Update(context.Background(), 99, UpdateCartInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartService_ReadsAndDelete(t *testing.T) {
	t.Parallel()

	svc := &CartService{Catalog: smallCatalog(), Now: frozenClock}

	assert.Equal(t, 1, svc.List(context.Background(), query.Options{}).Total)
	assert.Equal(t, 1, svc.ByUser(context.Background(), 2, query.Options{}).Total)
	assert.Equal(t, 0, svc.ByUser(context.Background(), 77, query.Options{}).Total)

	c, err := svc.Get(context.Background(), 4, nil)
	require.NoError(t, err)
	assert.Equal(t, 200.0, c.(models.Cart).Total)

	deleted, err := svc.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, true, deleted["isDeleted"])
	assert.Equal(t, 4, deleted["id"])

	_, err = svc.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartService_UpdateAndDeleteAreStable(t *testing.T) {
	t.Parallel()

	svc := &CartService{Catalog: smallCatalog(), Now: frozenClock}
	in := UpdateCartInput{Merge: true, Products: []CartLine{{ID: 2, Quantity: 5}, {ID: 3, Quantity: 1}}}

	first, err := svc.Update(context.Background(), 4, in)
	require.NoError(t, err)
	second, err := svc.Update(context.Background(), 4, in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 513.0, second.Total)

	gone, err := svc.Delete(context.Background(), 4)
	require.NoError(t, err)
	goneAgain, err := svc.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, gone, goneAgain)
	assert.Equal(t, fixedNow.Format(DeletedOnLayout), gone["deletedOn"])
	assert.Equal(t, 200.0, gone["total"])
}
