package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Skotchmaster/dummyjson/internal/models"
)

func TestCartLine(t *testing.T) {
	t.Parallel()

	p := models.Product{ID: 1, Title: "iPhone 9", Price: 549, DiscountPercentage: 12.96}

	l := cartLine(p, 3)
	assert.Equal(t, 3, l.Quantity)
	assert.Equal(t, 1647.0, l.Total)
	assert.Equal(t, 1433.55, l.DiscountedPrice)
}

func TestCartLine_RoundsHalfUp(t *testing.T) {
	t.Parallel()

	l := cartLine(models.Product{Price: 10.005, DiscountPercentage: 0}, 1)
	assert.Equal(t, 10.01, l.Total)

	l = cartLine(models.Product{Price: 0.1, DiscountPercentage: 50}, 3)
	assert.Equal(t, 0.3, l.Total)
	assert.Equal(t, 0.15, l.DiscountedPrice)
}

func TestCartLine_ClampsInputs(t *testing.T) {
	t.Parallel()

	l := cartLine(models.Product{Price: 20, DiscountPercentage: 150}, 0)
	assert.Equal(t, 1, l.Quantity)
	assert.Equal(t, 20.0, l.Total)
	assert.Equal(t, 0.0, l.DiscountedPrice)

	l = cartLine(models.Product{Price: 20, DiscountPercentage: -5}, 1)
	assert.Equal(t, 20.0, l.DiscountedPrice)
}

func TestWithTotals(t *testing.T) {
	t.Parallel()

	c := withTotals(models.Cart{Products: []models.CartProduct{
		{Quantity: 2, Total: 0.1, DiscountedPrice: 0.1},
		{Quantity: 1, Total: 0.2, DiscountedPrice: 0.15},
	}})

	assert.Equal(t, 0.3, c.Total)
	assert.Equal(t, 0.25, c.DiscountedTotal)
	assert.Equal(t, 2, c.TotalProducts)
	assert.Equal(t, 3, c.TotalQuantity)
}
