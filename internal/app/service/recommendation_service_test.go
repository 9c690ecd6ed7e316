package service

import (
	"context"
	"testing"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/compat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRecommendation(t *testing.T, gen *fakeGenerator) (RecommendationService, CatalogService) {
	catalog := NewCatalogService(context.Background(), setupStateRepo(t))
	return NewRecommendationService(catalog, gen), catalog
}

func TestRecommendationService_ValidBuild(t *testing.T) {
	defaults := model.DefaultCatalog()
	gen := &fakeGenerator{raw: mustJSON(t, validBuild(t, &defaults))}
	svc, _ := setupRecommendation(t, gen)

	rec, err := svc.Recommend(context.Background(), "QHD 게이밍용 PC", 2500000)
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)

	assert.Equal(t, "cpu-1", rec.Build.CPU.ID)
	assert.Equal(t, "게이밍 최강 CPU", rec.Build.CPU.Advantage)
	assert.Equal(t, int64(2283000), rec.Build.TotalPrice)
	assert.True(t, rec.Compatibility.OK, "%v", rec.Compatibility.Violations)
	assert.Equal(t, compat.SchemaVersion, rec.Compatibility.SchemaVersion)
}

func TestRecommendationService_ViolationsAreReportedNotRaised(t *testing.T) {
	defaults := model.DefaultCatalog()
	gen := &fakeGenerator{raw: mustJSON(t, validBuild(t, &defaults))}
	svc, _ := setupRecommendation(t, gen)

	rec, err := svc.Recommend(context.Background(), "게이밍", 1000000)
	require.NoError(t, err)
	assert.False(t, rec.Compatibility.OK)

	var rules []compat.Rule
	for _, v := range rec.Compatibility.Violations {
		rules = append(rules, v.Rule)
	}
	assert.Contains(t, rules, compat.RuleBudget)
}

func TestRecommendationService_Failures(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"transport error", &fakeGenerator{err: errBackendDown}},
		{"not json", &fakeGenerator{raw: []byte("죄송합니다, 견적을 만들 수 없습니다.")}},
		{"wrong shape", &fakeGenerator{raw: []byte(`{"cpu":{"id":"cpu-1"}}`)}},
		{"empty", &fakeGenerator{raw: []byte{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, catalog := setupRecommendation(t, tt.gen)
			before := catalog.Snapshot()

			rec, err := svc.Recommend(context.Background(), "사무용", 800000)
			assert.ErrorIs(t, err, ErrGeneration)
			assert.Nil(t, rec)
			assert.Equal(t, 1, tt.gen.calls)
			assert.Equal(t, before, catalog.Snapshot())
		})
	}
}

func TestRecommendationService_InvalidRequest(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _ := setupRecommendation(t, gen)

	_, err := svc.Recommend(context.Background(), "   ", 1000000)
	assert.ErrorIs(t, err, ErrInvalidQuoteRequest)

	_, err = svc.Recommend(context.Background(), "게이밍", 0)
	assert.ErrorIs(t, err, ErrInvalidQuoteRequest)

	assert.Zero(t, gen.calls)
}
