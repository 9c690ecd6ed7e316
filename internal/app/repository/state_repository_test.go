package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/db"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStateTest(t *testing.T) StateRepository {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	return NewStateRepository(testDB)
}

func TestStateRepository_LoadMissing(t *testing.T) {
	repo := setupStateTest(t)

	data, err := repo.Load(context.Background(), model.StateKeyComponents)
	assert.ErrorIs(t, err, ErrStateNotFound)
	assert.Nil(t, data)
}

func TestStateRepository_SaveAndLoad(t *testing.T) {
	repo := setupStateTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, model.StateKeyCommissionRates, []byte(`{"naver":6,"coupang":11,"market":8}`)))

	data, err := repo.Load(ctx, model.StateKeyCommissionRates)
	require.NoError(t, err)
	assert.JSONEq(t, `{"naver":6,"coupang":11,"market":8}`, string(data))
}

func TestStateRepository_SaveOverwrites(t *testing.T) {
	repo := setupStateTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, model.StateKeyPassphrase, []byte(`"admin"`)))
	require.NoError(t, repo.Save(ctx, model.StateKeyPassphrase, []byte(`"s3cret"`)))

	data, err := repo.Load(ctx, model.StateKeyPassphrase)
	require.NoError(t, err)
	assert.JSONEq(t, `"s3cret"`, string(data))
}

func TestStateRepository_KeysAreIndependent(t *testing.T) {
	repo := setupStateTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, model.StateKeyBundles, []byte(`[]`)))
	_, err := repo.Load(ctx, model.StateKeyAdditionalItems)
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestStateRepository_RejectsInvalidJSON(t *testing.T) {
	repo := setupStateTest(t)

	err := repo.Save(context.Background(), model.StateKeyComponents, []byte(`{not json`))
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestRedisStateRepository_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	repo := NewRedisStateRepository(client, "test:")

	_, err := repo.Load(context.Background(), model.StateKeyComponents)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStateNotFound)

	assert.ErrorIs(t, repo.Save(context.Background(), model.StateKeyComponents, []byte("{")), ErrInvalidState)
	assert.Error(t, repo.Save(context.Background(), model.StateKeyComponents, []byte("{}")))
}
