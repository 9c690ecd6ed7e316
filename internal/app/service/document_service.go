package service

import (
	"context"
	"time"

	"github.com/ikkim/pcbuild-backend/internal/document"
	"github.com/ikkim/pcbuild-backend/internal/pricing"
	"github.com/ikkim/pcbuild-backend/internal/storage"
	"github.com/ikkim/pcbuild-backend/pkg/logger"
)

type ExportedDocument struct {
	Filename    string
	ContentType string
	Data        []byte
}

type PublishedDocument struct {
	BundleID string `json:"bundle_id"`
	Filename string `json:"filename"`
	*storage.PublishedObject
}

type DocumentService interface {
	Documents(bundleID string) (*document.Set, error)
	Export(bundleID string) (*ExportedDocument, error)
	Publish(ctx context.Context, bundleID string) (*PublishedDocument, error)
}

type documentService struct {
	engine  *pricing.Engine
	catalog CatalogService
	bundles BundleService
	store   storage.ObjectStore
	folder  string
	now     func() time.Time
}

func NewDocumentService(engine *pricing.Engine, catalog CatalogService, bundles BundleService, store storage.ObjectStore, folder string) DocumentService {
	return &documentService{
		engine:  engine,
		catalog: catalog,
		bundles: bundles,
		store:   store,
		folder:  folder,
		now:     time.Now,
	}
}

func (s *documentService) Documents(bundleID string) (*document.Set, error) {
	b, err := s.bundles.Get(bundleID)
	if err != nil {
		return nil, err
	}
	snapshot := s.catalog.Snapshot()
	set := document.Build(*b, &snapshot, s.engine, s.now())
	return &set, nil
}

func (s *documentService) Export(bundleID string) (*ExportedDocument, error) {
	set, err := s.Documents(bundleID)
	if err != nil {
		return nil, err
	}

	data, err := document.WriteXLSX(*set)
	if err != nil {
		logger.Error("Failed to render documents", err, map[string]interface{}{
			"bundle_id": bundleID,
		})
		return nil, err
	}

	return &ExportedDocument{
		Filename:    set.Filename(),
		ContentType: document.ContentTypeXLSX,
		Data:        data,
	}, nil
}

func (s *documentService) Publish(ctx context.Context, bundleID string) (*PublishedDocument, error) {
	exported, err := s.Export(bundleID)
	if err != nil {
		return nil, err
	}

	obj, err := s.store.Publish(ctx, s.folder, exported.Filename, exported.ContentType, exported.Data)
	if err != nil {
		logger.Error("Failed to publish documents", err, map[string]interface{}{
			"bundle_id": bundleID,
		})
		return nil, err
	}

	logger.Info("Documents published", map[string]interface{}{
		"bundle_id": bundleID,
		"key":       obj.Key,
	})
	return &PublishedDocument{
		BundleID:        bundleID,
		Filename:        exported.Filename,
		PublishedObject: obj,
	}, nil
}
