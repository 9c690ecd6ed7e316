package service

import (
	"context"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/app/repository"
	"github.com/ikkim/pcbuild-backend/pkg/logger"
)

type CommissionService interface {
	Get() model.CommissionRates
	Set(ctx context.Context, rates model.CommissionRates) error
}

type commissionService struct {
	store *stateStore[model.CommissionRates]
}

func NewCommissionService(ctx context.Context, repo repository.StateRepository) CommissionService {
	return &commissionService{
		store: loadState(ctx, repo, model.StateKeyCommissionRates, model.DefaultCommissionRates),
	}
}

func (s *commissionService) Get() model.CommissionRates {
	var out model.CommissionRates
	s.store.read(func(r *model.CommissionRates) {
		out = *r
	})
	return out
}

func (s *commissionService) Set(ctx context.Context, rates model.CommissionRates) error {
	if err := rates.Validate(); err != nil {
		return err
	}

	_ = s.store.update(ctx, func(r *model.CommissionRates) (bool, error) {
		*r = rates
		return true, nil
	})

	logger.Info("Commission rates updated", map[string]interface{}{
		"naver":   rates.Naver,
		"coupang": rates.Coupang,
		"market":  rates.Market,
	})
	return nil
}
