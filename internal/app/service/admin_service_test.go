package service

import (
	"context"
	"testing"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_DefaultPassphrase(t *testing.T) {
	svc := NewAdminService(context.Background(), setupStateRepo(t), "")

	assert.NoError(t, svc.Login("admin"))
	assert.ErrorIs(t, svc.Login("Admin"), ErrInvalidPassphrase)
	assert.ErrorIs(t, svc.Login(""), ErrInvalidPassphrase)
}

func TestAdminService_ConfiguredFallback(t *testing.T) {
	svc := NewAdminService(context.Background(), setupStateRepo(t), "changeme")
	assert.True(t, svc.Verify("changeme"))
	assert.False(t, svc.Verify("admin"))
}

func TestAdminService_ChangePassphrase(t *testing.T) {
	ctx := context.Background()
	repo := setupStateRepo(t)
	svc := NewAdminService(ctx, repo, "")

	tests := []struct {
		name    string
		pass    string
		confirm string
		wantErr error
	}{
		{"empty passphrase", "", "x", ErrPassphraseRequired},
		{"blank confirmation", "x", "  ", ErrPassphraseRequired},
		{"mismatch", "s3cret", "s3cre7", ErrPassphraseMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.ChangePassphrase(ctx, tt.pass, tt.confirm), tt.wantErr)
			assert.True(t, svc.Verify("admin"))
		})
	}

	require.NoError(t, svc.ChangePassphrase(ctx, "s3cret", "s3cret"))
	assert.False(t, svc.Verify("admin"))
	assert.True(t, svc.Verify("s3cret"))

	data, err := repo.Load(ctx, model.StateKeyPassphrase)
	require.NoError(t, err)
	assert.JSONEq(t, `"s3cret"`, string(data))

	reloaded := NewAdminService(ctx, repo, "")
	assert.True(t, reloaded.Verify("s3cret"))
}

func TestCommissionService(t *testing.T) {
	ctx := context.Background()
	repo := setupStateRepo(t)
	svc := NewCommissionService(ctx, repo)

	assert.Equal(t, model.DefaultCommissionRates(), svc.Get())

	err := svc.Set(ctx, model.CommissionRates{Naver: -1, Coupang: 11, Market: 8})
	assert.ErrorIs(t, err, model.ErrCommissionOutOfRange)
	assert.Equal(t, model.DefaultCommissionRates(), svc.Get())

	err = svc.Set(ctx, model.CommissionRates{Naver: 6, Coupang: 120, Market: 8})
	assert.ErrorIs(t, err, model.ErrCommissionOutOfRange)
	assert.Equal(t, model.DefaultCommissionRates(), svc.Get())

	rates := model.CommissionRates{Naver: 5.5, Coupang: 10.8, Market: 0}
	require.NoError(t, svc.Set(ctx, rates))

	reloaded := NewCommissionService(ctx, repo)
	assert.Equal(t, rates, reloaded.Get())
}
