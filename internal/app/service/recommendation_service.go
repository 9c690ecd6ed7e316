package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/compat"
	"github.com/ikkim/pcbuild-backend/pkg/logger"
)

var (
	ErrGeneration          = errors.New("build generation failed")
	ErrInvalidQuoteRequest = errors.New("invalid quote request")
)

// JSONGenerator is the slice of the model client used here.
type JSONGenerator interface {
	GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) ([]byte, error)
}

type Recommendation struct {
	Build         *model.Build  `json:"build"`
	Compatibility compat.Report `json:"compatibility"`
}

type RecommendationService interface {
	Recommend(ctx context.Context, prompt string, budget int64) (*Recommendation, error)
}

type recommendationService struct {
	catalog   CatalogService
	generator JSONGenerator
}

func NewRecommendationService(catalog CatalogService, generator JSONGenerator) RecommendationService {
	return &recommendationService{
		catalog:   catalog,
		generator: generator,
	}
}

// Recommend asks the model once for a build drawn from the current catalog and re-checks it.
// Any transport, decoding or shape failure is reported as ErrGeneration.
func (s *recommendationService) Recommend(ctx context.Context, prompt string, budget int64) (*Recommendation, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" || budget <= 0 {
		return nil, ErrInvalidQuoteRequest
	}

	snapshot := s.catalog.Snapshot()
	req := compat.Request{Prompt: prompt, Budget: budget, Catalog: snapshot}

	logger.Debug("Requesting build recommendation", map[string]interface{}{
		"budget":         budget,
		"schema_version": compat.SchemaVersion,
	})

	userPrompt, err := compat.BuildPrompt(req)
	if err != nil {
		if errors.Is(err, compat.ErrInvalidBudget) {
			return nil, ErrInvalidQuoteRequest
		}
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	raw, err := s.generator.GenerateJSON(ctx, compat.SystemPrompt, userPrompt, compat.SchemaName, compat.ResponseSchema())
	if err != nil {
		logger.Error("Recommendation request failed", err, map[string]interface{}{
			"budget": budget,
		})
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	build, err := compat.ParseBuild(raw)
	if err != nil {
		logger.Error("Recommendation response rejected", err, map[string]interface{}{
			"budget": budget,
			"bytes":  len(raw),
		})
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	report := compat.Check(build, &snapshot, budget)
	if !report.OK {
		logger.Warn("Recommended build has compatibility violations", map[string]interface{}{
			"violations": len(report.Violations),
		})
	}

	logger.Info("Build recommended", map[string]interface{}{
		"budget":      budget,
		"total_price": build.TotalPrice,
		"ok":          report.OK,
	})

	return &Recommendation{Build: build, Compatibility: report}, nil
}
