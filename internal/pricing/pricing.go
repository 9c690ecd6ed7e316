// Package pricing derives bundle cost, selling price, marketplace settlement and margin.
// Nothing here is cached; every value is recomputed from the current catalog and rates.
package pricing

import (
	"fmt"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/shopspring/decimal"
)

// DefaultMarkup is applied to cost when a bundle has no custom selling price.
const DefaultMarkup = "1.15"

// Unavailable is shown in place of a component that a bundle references but the catalog no longer has.
const Unavailable = "N/A"

var hundred = decimal.NewFromInt(100)

type Engine struct {
	markup decimal.Decimal
}

// NewEngine parses markup as a decimal factor, e.g. "1.15".
func NewEngine(markup string) (*Engine, error) {
	m, err := decimal.NewFromString(markup)
	if err != nil {
		return nil, fmt.Errorf("invalid markup %q: %w", markup, err)
	}
	if m.IsNegative() {
		return nil, fmt.Errorf("invalid markup %q: must not be negative", markup)
	}
	return &Engine{markup: m}, nil
}

// Default returns an engine with the 1.15 markup.
func Default() *Engine {
	return &Engine{markup: decimal.RequireFromString(DefaultMarkup)}
}

func (e *Engine) Markup() decimal.Decimal {
	return e.markup
}

// BundleCost sums the catalog prices of every slot. Unresolvable references add 0.
func (e *Engine) BundleCost(b model.Bundle, catalog *model.Catalog) int64 {
	var total int64
	for _, cat := range model.Categories {
		if comp, ok := catalog.Find(cat, b.ComponentID(cat)); ok {
			total += comp.Base().Price
		}
	}
	return total
}

// SellingPrice is the custom price when set, otherwise cost times markup rounded half away from zero.
func (e *Engine) SellingPrice(b model.Bundle, cost int64) int64 {
	if b.CustomSellingPrice != nil {
		return *b.CustomSellingPrice
	}
	return e.DefaultSellingPrice(cost)
}

func (e *Engine) DefaultSellingPrice(cost int64) int64 {
	return decimal.NewFromInt(cost).Mul(e.markup).Round(0).IntPart()
}

// SettlementPrice is what the marketplace pays out: price * (1 - rate/100).
func SettlementPrice(price int64, m model.Marketplace, rates model.CommissionRates) decimal.Decimal {
	rate := decimal.NewFromFloat(rates.Rate(m))
	factor := decimal.NewFromInt(1).Sub(rate.Div(hundred))
	return decimal.NewFromInt(price).Mul(factor)
}

// Margin is settlement minus cost.
func Margin(settlement decimal.Decimal, cost int64) decimal.Decimal {
	return settlement.Sub(decimal.NewFromInt(cost))
}
