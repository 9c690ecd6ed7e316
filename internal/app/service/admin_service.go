package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/app/repository"
	"github.com/ikkim/pcbuild-backend/pkg/logger"
)

var (
	ErrInvalidPassphrase  = errors.New("invalid passphrase")
	ErrPassphraseRequired = errors.New("passphrase and confirmation are required")
	ErrPassphraseMismatch = errors.New("passphrase confirmation does not match")
)

type AdminService interface {
	Login(passphrase string) error
	Verify(passphrase string) bool
	ChangePassphrase(ctx context.Context, passphrase, confirm string) error
}

type adminService struct {
	store *stateStore[string]
}

// NewAdminService loads the stored passphrase, falling back to fallback when none is stored.
func NewAdminService(ctx context.Context, repo repository.StateRepository, fallback string) AdminService {
	if fallback == "" {
		fallback = model.DefaultPassphrase
	}
	store := loadState(ctx, repo, model.StateKeyPassphrase, func() string { return fallback })
	if store.value == "" {
		store.value = fallback
	}
	return &adminService{store: store}
}

// Verify compares by exact equality.
func (s *adminService) Verify(passphrase string) bool {
	var ok bool
	s.store.read(func(current *string) {
		ok = subtle.ConstantTimeCompare([]byte(*current), []byte(passphrase)) == 1
	})
	return ok
}

func (s *adminService) Login(passphrase string) error {
	if !s.Verify(passphrase) {
		logger.Warn("Admin login failed")
		return ErrInvalidPassphrase
	}
	logger.Info("Admin login succeeded")
	return nil
}

func (s *adminService) ChangePassphrase(ctx context.Context, passphrase, confirm string) error {
	if strings.TrimSpace(passphrase) == "" || strings.TrimSpace(confirm) == "" {
		return ErrPassphraseRequired
	}
	if passphrase != confirm {
		return ErrPassphraseMismatch
	}

	_ = s.store.update(ctx, func(current *string) (bool, error) {
		*current = passphrase
		return true, nil
	})

	logger.Info("Admin passphrase changed")
	return nil
}
