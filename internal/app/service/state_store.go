package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/ikkim/pcbuild-backend/internal/app/repository"
	"github.com/ikkim/pcbuild-backend/pkg/logger"
)

// stateStore holds one persisted blob in memory. Reads share a lock; each mutation runs
// under the write lock and is followed by a best-effort write of the whole value.
type stateStore[T any] struct {
	mu    sync.RWMutex
	repo  repository.StateRepository
	key   string
	value T
}

// loadState reads key once. A missing or undecodable blob yields fallback().
func loadState[T any](ctx context.Context, repo repository.StateRepository, key string, fallback func() T) *stateStore[T] {
	s := &stateStore[T]{repo: repo, key: key}

	data, err := repo.Load(ctx, key)
	switch {
	case errors.Is(err, repository.ErrStateNotFound):
		logger.Info("No persisted state, using defaults", map[string]interface{}{
			"key": key,
		})
		s.value = fallback()
	case err != nil:
		logger.Warn("Failed to read persisted state, using defaults", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		s.value = fallback()
	default:
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			logger.Warn("Persisted state is corrupt, using defaults", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
			s.value = fallback()
		} else {
			s.value = v
		}
	}
	return s
}

func (s *stateStore[T]) read(fn func(v *T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.value)
}

// update applies fn and persists when fn reports a change. fn must leave v untouched when it returns an error.
func (s *stateStore[T]) update(ctx context.Context, fn func(v *T) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed, err := fn(&s.value)
	if err != nil {
		return err
	}
	if changed {
		s.persist(ctx)
	}
	return nil
}

// persist writes the current value. Failures are logged and swallowed; the in-memory value stays authoritative.
func (s *stateStore[T]) persist(ctx context.Context) {
	data, err := json.Marshal(s.value)
	if err != nil {
		logger.Error("Failed to encode state", err, map[string]interface{}{
			"key": s.key,
		})
		return
	}
	if err := s.repo.Save(context.WithoutCancel(ctx), s.key, data); err != nil {
		logger.Error("Failed to persist state", err, map[string]interface{}{
			"key": s.key,
		})
	}
}
