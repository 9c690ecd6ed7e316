package pricing

import (
	"github.com/ikkim/pcbuild-backend/internal/app/model"
)

// Line is one slot of a bundle resolved against the catalog.
type Line struct {
	Category     model.Category `json:"category"`
	CategoryName string         `json:"categoryName"`
	ComponentID  string         `json:"componentId"`
	ProductName  string         `json:"productName"`
	Name         string         `json:"name"`
	Price        int64          `json:"price"`
	Available    bool           `json:"available"`
}

type MarketplaceQuote struct {
	Marketplace model.Marketplace `json:"marketplace"`
	DisplayName string            `json:"displayName"`
	Rate        float64           `json:"rate"`
	Settlement  float64           `json:"settlement"`
	Margin      float64           `json:"margin"`
}

type BundleQuote struct {
	BundleID     string             `json:"bundleId"`
	Name         string             `json:"name"`
	Lines        []Line             `json:"lines"`
	Cost         int64              `json:"cost"`
	SellingPrice int64              `json:"sellingPrice"`
	CustomPrice  bool               `json:"customPrice"`
	Marketplaces []MarketplaceQuote `json:"marketplaces"`
}

type ItemSettlement struct {
	ItemID          string             `json:"itemId"`
	Category        string             `json:"category"`
	ProductName     string             `json:"productName"`
	Cost            int64              `json:"cost"`
	AdditionalPrice int64              `json:"additionalPrice"`
	UpgradePrice    *int64             `json:"upgradePrice"`
	Marketplaces    []MarketplaceQuote `json:"marketplaces"`
}

// Lines resolves every slot of b in the given category order.
func Lines(b model.Bundle, catalog *model.Catalog, order []model.Category) []Line {
	lines := make([]Line, 0, len(order))
	for _, cat := range order {
		line := Line{
			Category:     cat,
			CategoryName: cat.DisplayName(),
			ComponentID:  b.ComponentID(cat),
		}
		if comp, ok := catalog.Find(cat, line.ComponentID); ok {
			base := comp.Base()
			line.ProductName = base.ProductName
			line.Name = base.Name
			line.Price = base.Price
			line.Available = true
		} else {
			line.ProductName = Unavailable
			line.Name = Unavailable
		}
		lines = append(lines, line)
	}
	return lines
}

// QuoteBundle derives every price shown for a bundle.
func (e *Engine) QuoteBundle(b model.Bundle, catalog *model.Catalog, rates model.CommissionRates) BundleQuote {
	cost := e.BundleCost(b, catalog)
	selling := e.SellingPrice(b, cost)
	return BundleQuote{
		BundleID:     b.ID,
		Name:         b.Name,
		Lines:        Lines(b, catalog, model.Categories),
		Cost:         cost,
		SellingPrice: selling,
		CustomPrice:  b.CustomSellingPrice != nil,
		Marketplaces: marketplaceQuotes(selling, cost, rates),
	}
}

// SettleItem computes the per-marketplace payout of an additional item's price.
func SettleItem(item model.AdditionalItem, rates model.CommissionRates) ItemSettlement {
	return ItemSettlement{
		ItemID:          item.ID,
		Category:        item.Category,
		ProductName:     item.ProductName,
		Cost:            item.Cost,
		AdditionalPrice: item.AdditionalPrice,
		UpgradePrice:    item.UpgradePrice,
		Marketplaces:    marketplaceQuotes(item.AdditionalPrice, item.Cost, rates),
	}
}

func marketplaceQuotes(price, cost int64, rates model.CommissionRates) []MarketplaceQuote {
	out := make([]MarketplaceQuote, 0, len(model.Marketplaces))
	for _, m := range model.Marketplaces {
		settlement := SettlementPrice(price, m, rates)
		out = append(out, MarketplaceQuote{
			Marketplace: m,
			DisplayName: m.DisplayName(),
			Rate:        rates.Rate(m),
			Settlement:  settlement.InexactFloat64(),
			Margin:      Margin(settlement, cost).InexactFloat64(),
		})
	}
	return out
}
