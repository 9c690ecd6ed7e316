package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/app/repository"
	"github.com/ikkim/pcbuild-backend/pkg/logger"
)

var (
	ErrBundleNotFound = errors.New("bundle not found")
	ErrInvalidPrice   = errors.New("selling price must not be negative")
)

type BundleService interface {
	List() []model.Bundle
	Get(id string) (*model.Bundle, error)
	Add(ctx context.Context, b model.Bundle) (*model.Bundle, error)
	Update(ctx context.Context, b model.Bundle) (bool, error)
	Delete(ctx context.Context, id string) bool
	Reprice(ctx context.Context, id string, name *string, price *int64) (*model.Bundle, error)
}

type bundleService struct {
	store *stateStore[[]model.Bundle]
}

func NewBundleService(ctx context.Context, repo repository.StateRepository) BundleService {
	store := loadState(ctx, repo, model.StateKeyBundles, model.DefaultBundles)
	if store.value == nil {
		store.value = []model.Bundle{}
	}
	return &bundleService{store: store}
}

func copyBundle(b model.Bundle) model.Bundle {
	if b.CustomSellingPrice != nil {
		b.CustomSellingPrice = model.Int64Ptr(*b.CustomSellingPrice)
	}
	return b
}

func validateBundle(b model.Bundle) error {
	if b.CustomSellingPrice != nil && *b.CustomSellingPrice < 0 {
		return ErrInvalidPrice
	}
	return nil
}

func (s *bundleService) List() []model.Bundle {
	var out []model.Bundle
	s.store.read(func(bundles *[]model.Bundle) {
		out = make([]model.Bundle, 0, len(*bundles))
		for _, b := range *bundles {
			out = append(out, copyBundle(b))
		}
	})
	return out
}

func (s *bundleService) Get(id string) (*model.Bundle, error) {
	var found *model.Bundle
	s.store.read(func(bundles *[]model.Bundle) {
		for _, b := range *bundles {
			if b.ID == id {
				c := copyBundle(b)
				found = &c
				return
			}
		}
	})
	if found == nil {
		return nil, ErrBundleNotFound
	}
	return found, nil
}

// Add assigns a fresh id. Component references are stored as given and are not checked against the catalog.
func (s *bundleService) Add(ctx context.Context, b model.Bundle) (*model.Bundle, error) {
	if err := validateBundle(b); err != nil {
		return nil, err
	}
	b = copyBundle(b)
	b.ID = model.NewBundleID()

	_ = s.store.update(ctx, func(bundles *[]model.Bundle) (bool, error) {
		*bundles = append(*bundles, b)
		return true, nil
	})

	logger.Info("Bundle added", map[string]interface{}{
		"id":   b.ID,
		"name": b.Name,
	})
	return &b, nil
}

func (s *bundleService) Update(ctx context.Context, b model.Bundle) (bool, error) {
	if err := validateBundle(b); err != nil {
		return false, err
	}
	b = copyBundle(b)

	var updated bool
	_ = s.store.update(ctx, func(bundles *[]model.Bundle) (bool, error) {
		for i := range *bundles {
			if (*bundles)[i].ID == b.ID {
				(*bundles)[i] = b
				updated = true
				break
			}
		}
		return updated, nil
	})

	logger.Info("Bundle update applied", map[string]interface{}{
		"id":      b.ID,
		"updated": updated,
	})
	return updated, nil
}

func (s *bundleService) Delete(ctx context.Context, id string) bool {
	var deleted bool
	_ = s.store.update(ctx, func(bundles *[]model.Bundle) (bool, error) {
		kept := (*bundles)[:0]
		for _, b := range *bundles {
			if b.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, b)
		}
		*bundles = kept
		return deleted, nil
	})

	logger.Info("Bundle delete applied", map[string]interface{}{
		"id":      id,
		"deleted": deleted,
	})
	return deleted
}

// Reprice edits the name and selling price in place. A nil price clears the custom price so the
// markup applies again; a nil or blank name leaves the name unchanged.
func (s *bundleService) Reprice(ctx context.Context, id string, name *string, price *int64) (*model.Bundle, error) {
	if price != nil && *price < 0 {
		return nil, ErrInvalidPrice
	}

	var result *model.Bundle
	err := s.store.update(ctx, func(bundles *[]model.Bundle) (bool, error) {
		for i := range *bundles {
			b := &(*bundles)[i]
			if b.ID != id {
				continue
			}
			if name != nil && strings.TrimSpace(*name) != "" {
				b.Name = strings.TrimSpace(*name)
			}
			if price != nil {
				b.CustomSellingPrice = model.Int64Ptr(*price)
			} else {
				b.CustomSellingPrice = nil
			}
			c := copyBundle(*b)
			result = &c
			return true, nil
		}
		return false, ErrBundleNotFound
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Bundle repriced", map[string]interface{}{
		"id":           id,
		"custom_price": price != nil,
	})
	return result, nil
}
