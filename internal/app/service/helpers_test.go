package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/app/repository"
	"github.com/ikkim/pcbuild-backend/internal/db"
	"github.com/ikkim/pcbuild-backend/internal/storage"
	"github.com/stretchr/testify/require"
)

func setupStateRepo(t *testing.T) repository.StateRepository {
	t.Helper()
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	return repository.NewStateRepository(testDB)
}

var errBackendDown = errors.New("backend down")

// failingRepo reads as empty and rejects every write.
type failingRepo struct {
	mu    sync.Mutex
	saves int
}

func (r *failingRepo) Load(ctx context.Context, key string) ([]byte, error) {
	return nil, errBackendDown
}

func (r *failingRepo) Save(ctx context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	return errBackendDown
}

type fakeGenerator struct {
	raw   []byte
	err   error
	calls int
}

func (g *fakeGenerator) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) ([]byte, error) {
	g.calls++
	return g.raw, g.err
}

type fakeObjectStore struct {
	err         error
	folder      string
	filename    string
	contentType string
	body        []byte
}

func (s *fakeObjectStore) Publish(ctx context.Context, folder, filename, contentType string, body []byte) (*storage.PublishedObject, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.folder, s.filename, s.contentType, s.body = folder, filename, contentType, body
	return &storage.PublishedObject{
		Key:         folder + "/k/" + filename,
		DownloadURL: "https://example.com/" + filename + "?sig=1",
	}, nil
}

func validBuild(t *testing.T, catalog *model.Catalog) *model.Build {
	t.Helper()
	find := func(cat model.Category, id string) model.Component {
		c, ok := catalog.Find(cat, id)
		require.True(t, ok, "%s %s", cat, id)
		return c
	}
	b := &model.Build{
		CPU:          model.SelectedCPU{CPU: find(model.CategoryCPU, "cpu-1").(model.CPU), Advantage: "게이밍 최강 CPU"},
		Motherboard:  model.SelectedMotherboard{Motherboard: find(model.CategoryMotherboard, "motherboard-1").(model.Motherboard), Advantage: "가성비 B650"},
		Memory:       model.SelectedMemory{Memory: find(model.CategoryMemory, "memory-2").(model.Memory), Advantage: "넉넉한 32GB"},
		GraphicsCard: model.SelectedGraphicsCard{GraphicsCard: find(model.CategoryGraphicsCard, "graphicscard-2").(model.GraphicsCard), Advantage: "QHD 게이밍"},
		SSD:          model.SelectedSSD{SSD: find(model.CategorySSD, "ssd-1").(model.SSD), Advantage: "빠른 NVMe"},
		PCCase:       model.SelectedPCCase{PCCase: find(model.CategoryPCCase, "pccase-1").(model.PCCase), Advantage: "넓은 내부 공간"},
		PowerSupply:  model.SelectedPowerSupply{PowerSupply: find(model.CategoryPowerSupply, "powersupply-2").(model.PowerSupply), Advantage: "골드 등급"},
		CPUCooler:    model.SelectedCPUCooler{CPUCooler: find(model.CategoryCPUCooler, "cpucooler-1").(model.CPUCooler), Advantage: "조용한 공랭"},
		OS:           model.SelectedOS{OS: find(model.CategoryOS, "os-1").(model.OS), Advantage: "정품 윈도우"},
		Reasoning:    "예산 내 최고 성능",
	}
	b.TotalPrice = b.SumPrices()
	b.TotalScore = b.SumScores()
	return b
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
