// Package document renders the sales paperwork for a pre-built bundle:
// the customer-facing quote (견적서) and the cost invoice (거래명세표).
package document

import (
	"fmt"
	"time"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/pricing"
)

// Missing is shown for a slot whose component no longer exists.
// Documents use "-" while the bundle detail view uses pricing.Unavailable ("N/A").
const Missing = "-"

const (
	QuoteTitle   = "견 적 서"
	InvoiceTitle = "거래명세표"
)

type QuoteRow struct {
	Category     model.Category `json:"category"`
	CategoryName string         `json:"categoryName"`
	ProductName  string         `json:"productName"`
}

// Quote lists product names only; its total is the selling price.
type Quote struct {
	Title      string     `json:"title"`
	BundleName string     `json:"bundleName"`
	Rows       []QuoteRow `json:"rows"`
	Total      int64      `json:"total"`
}

// InvoiceRow carries the unit cost. Cost is nil for a missing component.
type InvoiceRow struct {
	Category     model.Category `json:"category"`
	CategoryName string         `json:"categoryName"`
	ProductName  string         `json:"productName"`
	Name         string         `json:"name"`
	Cost         *int64         `json:"cost"`
}

type Invoice struct {
	Title      string       `json:"title"`
	BundleName string       `json:"bundleName"`
	Rows       []InvoiceRow `json:"rows"`
	TotalCost  int64        `json:"totalCost"`
}

type Set struct {
	BundleID    string    `json:"bundleId"`
	Quote       Quote     `json:"quote"`
	Invoice     Invoice   `json:"invoice"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Build renders both documents in display order against the given catalog.
func Build(b model.Bundle, catalog *model.Catalog, engine *pricing.Engine, now time.Time) Set {
	cost := engine.BundleCost(b, catalog)
	lines := pricing.Lines(b, catalog, model.DisplayOrder)

	quote := Quote{
		Title:      QuoteTitle,
		BundleName: b.Name,
		Rows:       make([]QuoteRow, 0, len(lines)),
		Total:      engine.SellingPrice(b, cost),
	}
	invoice := Invoice{
		Title:      InvoiceTitle,
		BundleName: b.Name,
		Rows:       make([]InvoiceRow, 0, len(lines)),
		TotalCost:  cost,
	}

	for _, line := range lines {
		qr := QuoteRow{Category: line.Category, CategoryName: line.CategoryName, ProductName: Missing}
		ir := InvoiceRow{Category: line.Category, CategoryName: line.CategoryName, ProductName: Missing, Name: Missing}
		if line.Available {
			qr.ProductName = line.ProductName
			ir.ProductName = line.ProductName
			ir.Name = line.Name
			ir.Cost = model.Int64Ptr(line.Price)
		}
		quote.Rows = append(quote.Rows, qr)
		invoice.Rows = append(invoice.Rows, ir)
	}

	return Set{
		BundleID:    b.ID,
		Quote:       quote,
		Invoice:     invoice,
		GeneratedAt: now,
	}
}

// Filename is the workbook name used for downloads and uploads.
func (s Set) Filename() string {
	return fmt.Sprintf("%s-%s.xlsx", s.BundleID, s.GeneratedAt.Format("20060102-150405"))
}
