package service

import (
	"github.com/ikkim/pcbuild-backend/internal/pricing"
)

// SettlementService derives prices on read. Nothing it returns is cached or stored.
type SettlementService interface {
	BundleQuotes() []pricing.BundleQuote
	BundleQuote(id string) (*pricing.BundleQuote, error)
	ItemSettlements() []pricing.ItemSettlement
}

type settlementService struct {
	engine      *pricing.Engine
	catalog     CatalogService
	bundles     BundleService
	items       AdditionalItemService
	commissions CommissionService
}

func NewSettlementService(
	engine *pricing.Engine,
	catalog CatalogService,
	bundles BundleService,
	items AdditionalItemService,
	commissions CommissionService,
) SettlementService {
	return &settlementService{
		engine:      engine,
		catalog:     catalog,
		bundles:     bundles,
		items:       items,
		commissions: commissions,
	}
}

func (s *settlementService) BundleQuotes() []pricing.BundleQuote {
	snapshot := s.catalog.Snapshot()
	rates := s.commissions.Get()

	bundles := s.bundles.List()
	quotes := make([]pricing.BundleQuote, 0, len(bundles))
	for _, b := range bundles {
		quotes = append(quotes, s.engine.QuoteBundle(b, &snapshot, rates))
	}
	return quotes
}

func (s *settlementService) BundleQuote(id string) (*pricing.BundleQuote, error) {
	b, err := s.bundles.Get(id)
	if err != nil {
		return nil, err
	}
	snapshot := s.catalog.Snapshot()
	quote := s.engine.QuoteBundle(*b, &snapshot, s.commissions.Get())
	return &quote, nil
}

func (s *settlementService) ItemSettlements() []pricing.ItemSettlement {
	rates := s.commissions.Get()
	items := s.items.List()
	out := make([]pricing.ItemSettlement, 0, len(items))
	for _, item := range items {
		out = append(out, pricing.SettleItem(item, rates))
	}
	return out
}
