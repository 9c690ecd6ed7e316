package model

import (
	"errors"
	"fmt"
)

// Marketplace is a sales channel that takes a commission.
type Marketplace string

const (
	MarketplaceNaver   Marketplace = "naver"
	MarketplaceCoupang Marketplace = "coupang"
	MarketplaceMarket  Marketplace = "market"
)

var Marketplaces = []Marketplace{MarketplaceNaver, MarketplaceCoupang, MarketplaceMarket}

// MaxCommissionRate keeps every settlement price non-negative.
const MaxCommissionRate = 100

var ErrCommissionOutOfRange = errors.New("commission rate must be between 0 and 100")

func (m Marketplace) DisplayName() string {
	switch m {
	case MarketplaceNaver:
		return "네이버"
	case MarketplaceCoupang:
		return "쿠팡"
	case MarketplaceMarket:
		return "기타 마켓"
	}
	return string(m)
}

// CommissionRates are percentages, e.g. 6 means 6%.
type CommissionRates struct {
	Naver   float64 `json:"naver"`
	Coupang float64 `json:"coupang"`
	Market  float64 `json:"market"`
}

func (r CommissionRates) Rate(m Marketplace) float64 {
	switch m {
	case MarketplaceNaver:
		return r.Naver
	case MarketplaceCoupang:
		return r.Coupang
	case MarketplaceMarket:
		return r.Market
	}
	return 0
}

func (r CommissionRates) Validate() error {
	for _, m := range Marketplaces {
		if rate := r.Rate(m); rate < 0 || rate > MaxCommissionRate {
			return fmt.Errorf("%w: %s", ErrCommissionOutOfRange, m)
		}
	}
	return nil
}
