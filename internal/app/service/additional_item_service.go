package service

import (
	"context"
	"errors"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/app/repository"
	"github.com/ikkim/pcbuild-backend/pkg/logger"
)

var (
	ErrAdditionalItemNotFound = errors.New("additional item not found")
	ErrInvalidAdditionalItem  = errors.New("invalid additional item")
)

type AdditionalItemService interface {
	List() []model.AdditionalItem
	Get(id string) (*model.AdditionalItem, error)
	Add(ctx context.Context, item model.AdditionalItem) (*model.AdditionalItem, error)
	Update(ctx context.Context, item model.AdditionalItem) (bool, error)
	Delete(ctx context.Context, id string) bool
	BulkAdd(ctx context.Context, items []model.AdditionalItem) ([]model.AdditionalItem, error)
}

type additionalItemService struct {
	store *stateStore[[]model.AdditionalItem]
}

func NewAdditionalItemService(ctx context.Context, repo repository.StateRepository) AdditionalItemService {
	store := loadState(ctx, repo, model.StateKeyAdditionalItems, model.DefaultAdditionalItems)
	if store.value == nil {
		store.value = []model.AdditionalItem{}
	}
	return &additionalItemService{store: store}
}

func validateAdditionalItem(item model.AdditionalItem) error {
	if item.Cost < 0 || item.AdditionalPrice < 0 {
		return ErrInvalidAdditionalItem
	}
	if item.UpgradePrice != nil && *item.UpgradePrice < 0 {
		return ErrInvalidAdditionalItem
	}
	return nil
}

func copyItem(item model.AdditionalItem) model.AdditionalItem {
	if item.UpgradePrice != nil {
		item.UpgradePrice = model.Int64Ptr(*item.UpgradePrice)
	}
	return item
}

func (s *additionalItemService) List() []model.AdditionalItem {
	var out []model.AdditionalItem
	s.store.read(func(items *[]model.AdditionalItem) {
		out = make([]model.AdditionalItem, 0, len(*items))
		for _, item := range *items {
			out = append(out, copyItem(item))
		}
	})
	return out
}

func (s *additionalItemService) Get(id string) (*model.AdditionalItem, error) {
	var found *model.AdditionalItem
	s.store.read(func(items *[]model.AdditionalItem) {
		for _, item := range *items {
			if item.ID == id {
				c := copyItem(item)
				found = &c
				return
			}
		}
	})
	if found == nil {
		return nil, ErrAdditionalItemNotFound
	}
	return found, nil
}

// Add always assigns a fresh id.
func (s *additionalItemService) Add(ctx context.Context, item model.AdditionalItem) (*model.AdditionalItem, error) {
	if err := validateAdditionalItem(item); err != nil {
		return nil, err
	}
	item = copyItem(item)
	item.ID = model.NewAdditionalItemID()

	_ = s.store.update(ctx, func(items *[]model.AdditionalItem) (bool, error) {
		*items = append(*items, item)
		return true, nil
	})

	logger.Info("Additional item added", map[string]interface{}{
		"id":       item.ID,
		"category": item.Category,
	})
	return &item, nil
}

// Update replaces the item with the same id. Unknown ids are a no-op.
func (s *additionalItemService) Update(ctx context.Context, item model.AdditionalItem) (bool, error) {
	if err := validateAdditionalItem(item); err != nil {
		return false, err
	}
	item = copyItem(item)

	var updated bool
	_ = s.store.update(ctx, func(items *[]model.AdditionalItem) (bool, error) {
		for i := range *items {
			if (*items)[i].ID == item.ID {
				(*items)[i] = item
				updated = true
				break
			}
		}
		return updated, nil
	})

	logger.Info("Additional item update applied", map[string]interface{}{
		"id":      item.ID,
		"updated": updated,
	})
	return updated, nil
}

func (s *additionalItemService) Delete(ctx context.Context, id string) bool {
	var deleted bool
	_ = s.store.update(ctx, func(items *[]model.AdditionalItem) (bool, error) {
		kept := (*items)[:0]
		for _, item := range *items {
			if item.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, item)
		}
		*items = kept
		return deleted, nil
	})

	logger.Info("Additional item delete applied", map[string]interface{}{
		"id":      id,
		"deleted": deleted,
	})
	return deleted
}

// BulkAdd appends imported items in order. Provided ids are kept; blank ids get a fresh one.
// Either every item is appended or none is.
func (s *additionalItemService) BulkAdd(ctx context.Context, items []model.AdditionalItem) ([]model.AdditionalItem, error) {
	added := make([]model.AdditionalItem, 0, len(items))
	for _, item := range items {
		if err := validateAdditionalItem(item); err != nil {
			return nil, err
		}
		item = copyItem(item)
		if item.ID == "" {
			item.ID = model.NewAdditionalItemID()
		}
		added = append(added, item)
	}

	_ = s.store.update(ctx, func(current *[]model.AdditionalItem) (bool, error) {
		*current = append(*current, added...)
		return len(added) > 0, nil
	})

	logger.Info("Additional items imported", map[string]interface{}{
		"count": len(added),
	})
	return added, nil
}
