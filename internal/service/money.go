package service

import (
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/dummyjson/internal/models"
)

var hundred = decimal.NewFromInt(100)

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// cartLine prices quantity units of p. The line total is rounded first and
// the discount is applied to the rounded total.
func cartLine(p models.Product, quantity int) models.CartProduct {
	quantity = max(quantity, 1)

	total := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(quantity))).Round(2)

	pct := decimal.NewFromFloat(p.DiscountPercentage)
	pct = decimal.Max(decimal.Zero, decimal.Min(pct, hundred))
	discounted := total.Mul(hundred.Sub(pct)).Div(hundred)

	return models.CartProduct{
		ID:                 p.ID,
		Title:              p.Title,
		Price:              p.Price,
		Quantity:           quantity,
		Total:              round2(total),
		DiscountPercentage: p.DiscountPercentage,
		DiscountedPrice:    round2(discounted),
		Thumbnail:          p.Thumbnail,
	}
}

// withTotals recomputes every derived cart field from its lines.
func withTotals(c models.Cart) models.Cart {
	total := decimal.Zero
	discounted := decimal.Zero
	quantity := 0
	for _, l := range c.Products {
		total = total.Add(decimal.NewFromFloat(l.Total))
		discounted = discounted.Add(decimal.NewFromFloat(l.DiscountedPrice))
		quantity += l.Quantity
	}

	c.Total = round2(total)
	c.DiscountedTotal = round2(discounted)
	c.TotalProducts = len(c.Products)
	c.TotalQuantity = quantity
	return c
}
