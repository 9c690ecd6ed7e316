package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Update(t *testing.T) {
	catalog := DefaultCatalog()

	updated := catalog.CPUs[0]
	updated.Price = 450000
	assert.True(t, catalog.Update(updated))
	assert.Equal(t, int64(450000), catalog.CPUs[0].Price)

	missing := updated
	missing.ID = "cpu-does-not-exist"
	before := catalog.Clone()
	assert.False(t, catalog.Update(missing))
	assert.Equal(t, before, catalog)
}

func TestCatalog_UpdateOnlyTouchesOwnCategory(t *testing.T) {
	catalog := Catalog{
		CPUs:     []CPU{{ComponentBase: ComponentBase{ID: "shared", Price: 1}}},
		Memories: []Memory{{ComponentBase: ComponentBase{ID: "shared", Price: 2}}},
	}

	assert.True(t, catalog.Update(Memory{ComponentBase: ComponentBase{ID: "shared", Price: 99}}))
	assert.Equal(t, int64(1), catalog.CPUs[0].Price)
	assert.Equal(t, int64(99), catalog.Memories[0].Price)
}

func TestCatalog_AddAssignsPrefixedID(t *testing.T) {
	var catalog Catalog

	first, err := catalog.Add(GraphicsCard{ComponentBase: ComponentBase{ID: "ignored", Name: "RTX"}})
	require.NoError(t, err)
	second, err := catalog.Add(GraphicsCard{ComponentBase: ComponentBase{Name: "RTX"}})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.Base().ID, "graphicscard-"))
	assert.NotEqual(t, first.Base().ID, second.Base().ID)
	assert.Len(t, catalog.GraphicsCards, 2)

	found, ok := catalog.Find(CategoryGraphicsCard, first.Base().ID)
	require.True(t, ok)
	assert.Equal(t, "RTX", found.Base().Name)
}

func TestCatalog_Delete(t *testing.T) {
	catalog := DefaultCatalog()
	count := catalog.Count(CategorySSD)

	assert.True(t, catalog.Delete(CategorySSD, "ssd-1"))
	assert.Equal(t, count-1, catalog.Count(CategorySSD))
	assert.False(t, catalog.Delete(CategorySSD, "ssd-1"))
	assert.Equal(t, count-1, catalog.Count(CategorySSD))

	_, ok := catalog.Find(CategorySSD, "ssd-1")
	assert.False(t, ok)
}

func TestCatalog_ReplaceCategory(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("replaces the whole collection", func(t *testing.T) {
		err := catalog.ReplaceCategory(CategoryOS, []Component{
			OS{ComponentBase: ComponentBase{ID: "os-a", Name: "A"}},
			OS{ComponentBase: ComponentBase{ID: "os-a", Name: "duplicate ids are kept"}},
		})
		require.NoError(t, err)
		assert.Len(t, catalog.OS, 2)
	})

	t.Run("rejects items of another category", func(t *testing.T) {
		before := catalog.Clone()
		err := catalog.ReplaceCategory(CategoryOS, []Component{
			OS{ComponentBase: ComponentBase{ID: "os-b"}},
			CPU{ComponentBase: ComponentBase{ID: "cpu-x"}},
		})
		assert.ErrorIs(t, err, ErrCategoryMismatch)
		assert.Equal(t, before, catalog)
	})

	t.Run("empty list clears the category", func(t *testing.T) {
		require.NoError(t, catalog.ReplaceCategory(CategoryPCCase, nil))
		assert.Equal(t, 0, catalog.Count(CategoryPCCase))
	})
}

func TestCatalog_CloneIsDeep(t *testing.T) {
	catalog := DefaultCatalog()
	clone := catalog.Clone()

	clone.Cases[0].FormFactor[0] = "E-ATX"
	clone.CPUCoolers[0].SupportedSockets[0] = "LGA1851"
	clone.CPUs[0].Price = 1

	assert.Equal(t, "ATX", catalog.Cases[0].FormFactor[0])
	assert.Equal(t, "AM5", catalog.CPUCoolers[0].SupportedSockets[0])
	assert.NotEqual(t, int64(1), catalog.CPUs[0].Price)
}

func TestCatalog_JSONRoundTrip(t *testing.T) {
	catalog := DefaultCatalog()

	raw, err := json.Marshal(catalog)
	require.NoError(t, err)

	for _, cat := range Categories {
		assert.Contains(t, string(raw), `"`+cat.CollectionKey()+`"`)
	}

	var decoded Catalog
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, catalog, decoded)
}

func TestOS_OmitsManufacturer(t *testing.T) {
	raw, err := json.Marshal(OS{ComponentBase: ComponentBase{ID: "os-1", ProductName: "Windows", Name: "Win", Price: 1}})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "manufacturer")
}

func TestAdditionalItem_NullUpgradePriceRoundTrip(t *testing.T) {
	items := []AdditionalItem{
		{ID: "add-1", Cost: 10, AdditionalPrice: 20, UpgradePrice: nil},
		{ID: "add-2", Cost: 10, AdditionalPrice: 20, UpgradePrice: Int64Ptr(0)},
	}

	raw, err := json.Marshal(items)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"upgradePrice":null`)
	assert.Contains(t, string(raw), `"upgradePrice":0`)

	var decoded []AdditionalItem
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded[0].UpgradePrice)
	require.NotNil(t, decoded[1].UpgradePrice)
	assert.Equal(t, int64(0), *decoded[1].UpgradePrice)
}

func TestBundle_SlotAccessors(t *testing.T) {
	var b Bundle
	for _, cat := range Categories {
		b.SetComponentID(cat, cat.IDPrefix()+"-1")
	}
	for _, cat := range Categories {
		assert.Equal(t, cat.IDPrefix()+"-1", b.ComponentID(cat))
	}

	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "customSellingPrice")
	for _, cat := range Categories {
		assert.Contains(t, string(raw), `"`+cat.BundleSlotKey()+`"`)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"CPU", CategoryCPU, false},
		{"cpu", CategoryCPU, false},
		{"graphicsCard", CategoryGraphicsCard, false},
		{"PCCase", CategoryPCCase, false},
		{"CASES", CategoryPCCase, false},
		{"power_supplies", CategoryPowerSupply, false},
		{"cpu-cooler", CategoryCPUCooler, false},
		{"os", CategoryOS, false},
		{"monitor", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommissionRates_Validate(t *testing.T) {
	assert.NoError(t, DefaultCommissionRates().Validate())
	assert.NoError(t, CommissionRates{}.Validate())
	assert.ErrorIs(t, CommissionRates{Naver: 1, Coupang: -0.5}.Validate(), ErrCommissionOutOfRange)
	assert.NoError(t, CommissionRates{Naver: 100, Coupang: 0, Market: 99.9}.Validate())
	assert.ErrorIs(t, CommissionRates{Market: 100.5}.Validate(), ErrCommissionOutOfRange)
}

func TestBuild_Sums(t *testing.T) {
	b := Build{
		CPU:          SelectedCPU{CPU: CPU{ComponentBase: ComponentBase{Price: 100}, Score: 10}},
		GraphicsCard: SelectedGraphicsCard{GraphicsCard: GraphicsCard{ComponentBase: ComponentBase{Price: 200}, Score: 20}},
		OS:           SelectedOS{OS: OS{ComponentBase: ComponentBase{Price: 5}}},
	}
	assert.Equal(t, int64(305), b.SumPrices())
	assert.Equal(t, int64(30), b.SumScores())
}
