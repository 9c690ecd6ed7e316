package service

import (
	"context"
	"errors"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/app/repository"
	"github.com/ikkim/pcbuild-backend/pkg/logger"
)

var ErrComponentNotFound = errors.New("component not found")

type CatalogService interface {
	Snapshot() model.Catalog
	List(cat model.Category) []model.Component
	Get(cat model.Category, id string) (model.Component, error)
	Add(ctx context.Context, comp model.Component) (model.Component, error)
	Update(ctx context.Context, comp model.Component) bool
	Delete(ctx context.Context, cat model.Category, id string) bool
	ReplaceCategory(ctx context.Context, cat model.Category, comps []model.Component) error
}

type catalogService struct {
	store *stateStore[model.Catalog]
}

// NewCatalogService loads the catalog once; a missing or corrupt blob falls back to the built-in catalog.
func NewCatalogService(ctx context.Context, repo repository.StateRepository) CatalogService {
	store := loadState(ctx, repo, model.StateKeyComponents, model.DefaultCatalog)
	store.value.Normalize()
	return &catalogService{store: store}
}

func (s *catalogService) Snapshot() model.Catalog {
	var out model.Catalog
	s.store.read(func(c *model.Catalog) {
		out = c.Clone()
	})
	out.Normalize()
	return out
}

func (s *catalogService) List(cat model.Category) []model.Component {
	var out []model.Component
	s.store.read(func(c *model.Catalog) {
		snapshot := c.Clone()
		out = snapshot.Components(cat)
	})
	return out
}

func (s *catalogService) Get(cat model.Category, id string) (model.Component, error) {
	var (
		comp model.Component
		ok   bool
	)
	s.store.read(func(c *model.Catalog) {
		comp, ok = c.Find(cat, id)
	})
	if !ok {
		return nil, ErrComponentNotFound
	}
	return comp, nil
}

func (s *catalogService) Add(ctx context.Context, comp model.Component) (model.Component, error) {
	var added model.Component
	err := s.store.update(ctx, func(c *model.Catalog) (bool, error) {
		var err error
		added, err = c.Add(comp)
		return err == nil, err
	})
	if err != nil {
		logger.Warn("Failed to add component", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	logger.Info("Component added", map[string]interface{}{
		"category": added.Category(),
		"id":       added.Base().ID,
	})
	return added, nil
}

// Update replaces the component with the same id in its category. Unknown ids are a no-op.
func (s *catalogService) Update(ctx context.Context, comp model.Component) bool {
	var updated bool
	_ = s.store.update(ctx, func(c *model.Catalog) (bool, error) {
		updated = c.Update(comp)
		return updated, nil
	})

	logger.Info("Component update applied", map[string]interface{}{
		"category": comp.Category(),
		"id":       comp.Base().ID,
		"updated":  updated,
	})
	return updated
}

// Delete removes a component. Bundles referencing it are left as they are and price it at 0.
func (s *catalogService) Delete(ctx context.Context, cat model.Category, id string) bool {
	var deleted bool
	_ = s.store.update(ctx, func(c *model.Catalog) (bool, error) {
		deleted = c.Delete(cat, id)
		return deleted, nil
	})

	logger.Info("Component delete applied", map[string]interface{}{
		"category": cat,
		"id":       id,
		"deleted":  deleted,
	})
	return deleted
}

func (s *catalogService) ReplaceCategory(ctx context.Context, cat model.Category, comps []model.Component) error {
	err := s.store.update(ctx, func(c *model.Catalog) (bool, error) {
		if err := c.ReplaceCategory(cat, comps); err != nil {
			return false, err
		}
		c.Normalize()
		return true, nil
	})
	if err != nil {
		logger.Warn("Failed to replace category", map[string]interface{}{
			"category": cat,
			"error":    err.Error(),
		})
		return err
	}

	logger.Info("Category replaced", map[string]interface{}{
		"category": cat,
		"count":    len(comps),
	})
	return nil
}
