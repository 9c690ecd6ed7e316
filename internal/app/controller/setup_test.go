package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/pcbuild-backend/internal/app/repository"
	"github.com/ikkim/pcbuild-backend/internal/app/service"
	"github.com/ikkim/pcbuild-backend/internal/db"
	"github.com/ikkim/pcbuild-backend/internal/pricing"
	"github.com/ikkim/pcbuild-backend/internal/storage"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	raw []byte
	err error
}

func (g *stubGenerator) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) ([]byte, error) {
	return g.raw, g.err
}

type stubObjectStore struct {
	filename string
}

func (s *stubObjectStore) Publish(ctx context.Context, folder, filename, contentType string, body []byte) (*storage.PublishedObject, error) {
	s.filename = filename
	return &storage.PublishedObject{
		Key:         folder + "/test/" + filename,
		DownloadURL: "https://files.example.com/" + filename + "?X-Amz-Signature=abc",
	}, nil
}

type testEnv struct {
	router    *gin.Engine
	catalog   service.CatalogService
	items     service.AdditionalItemService
	bundles   service.BundleService
	generator *stubGenerator
	store     *stubObjectStore
}

// setupControllerTest wires every controller over a fresh state database.
func setupControllerTest(t *testing.T) *testEnv {
	t.Helper()

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	ctx := context.Background()
	repo := repository.NewStateRepository(testDB)
	engine := pricing.Default()

	catalogService := service.NewCatalogService(ctx, repo)
	itemService := service.NewAdditionalItemService(ctx, repo)
	bundleService := service.NewBundleService(ctx, repo)
	commissionService := service.NewCommissionService(ctx, repo)
	adminService := service.NewAdminService(ctx, repo, "")
	settlementService := service.NewSettlementService(engine, catalogService, bundleService, itemService, commissionService)

	generator := &stubGenerator{}
	store := &stubObjectStore{}
	recommendationService := service.NewRecommendationService(catalogService, generator)
	documentService := service.NewDocumentService(engine, catalogService, bundleService, store, "documents")

	quoteController := NewQuoteController(recommendationService)
	adminController := NewAdminController(adminService)
	catalogController := NewCatalogController(catalogService)
	itemController := NewAdditionalItemController(itemService, settlementService)
	bundleController := NewBundleController(bundleService, settlementService)
	documentController := NewDocumentController(documentService)
	commissionController := NewCommissionController(commissionService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.POST("/quotes", quoteController.CreateQuote)
	router.POST("/admin/login", adminController.Login)
	router.PUT("/admin/passphrase", adminController.ChangePassphrase)

	router.GET("/catalog", catalogController.GetCatalog)
	router.GET("/catalog/:category", catalogController.ListComponents)
	router.POST("/catalog/:category", catalogController.CreateComponent)
	router.PUT("/catalog/:category/:id", catalogController.UpdateComponent)
	router.DELETE("/catalog/:category/:id", catalogController.DeleteComponent)
	router.POST("/catalog/:category/import", catalogController.ImportComponents)

	router.GET("/additional-items", itemController.ListItems)
	router.POST("/additional-items", itemController.CreateItem)
	router.POST("/additional-items/import", itemController.ImportItems)
	router.GET("/additional-items/settlements", itemController.GetSettlements)
	router.PUT("/additional-items/:id", itemController.UpdateItem)
	router.DELETE("/additional-items/:id", itemController.DeleteItem)

	router.GET("/bundles", bundleController.ListBundles)
	router.POST("/bundles", bundleController.CreateBundle)
	router.GET("/bundles/quotes", bundleController.ListQuotes)
	router.GET("/bundles/:id", bundleController.GetBundle)
	router.PUT("/bundles/:id", bundleController.UpdateBundle)
	router.PATCH("/bundles/:id/price", bundleController.RepriceBundle)
	router.DELETE("/bundles/:id", bundleController.DeleteBundle)
	router.GET("/bundles/:id/documents", documentController.GetDocuments)
	router.GET("/bundles/:id/documents/export", documentController.ExportDocuments)
	router.POST("/bundles/:id/documents/publish", documentController.PublishDocuments)

	router.GET("/commission-rates", commissionController.GetRates)
	router.PUT("/commission-rates", commissionController.UpdateRates)

	return &testEnv{
		router:    router,
		catalog:   catalogService,
		items:     itemService,
		bundles:   bundleService,
		generator: generator,
		store:     store,
	}
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		data, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performUpload(t *testing.T, router *gin.Engine, path, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
