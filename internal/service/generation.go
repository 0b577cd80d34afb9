// Package service validates generation requests, runs the template generator
// and records the outcome.
package service

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"medialens/internal/config"
	"medialens/internal/generator"
	"medialens/internal/metrics"
	"medialens/internal/models"
	"medialens/internal/validation"
)

const reasonInvalidInput = "invalid_input"

// Generation produces idea and search responses.
type Generation struct {
	metrics *metrics.Recorder
	catalog *config.YAMLConfig
}

// NewGeneration creates a Generation. recorder and catalog may be nil; a nil
// catalog means the built-in categories.
func NewGeneration(recorder *metrics.Recorder, catalog *config.YAMLConfig) *Generation {
	return &Generation{metrics: recorder, catalog: catalog}
}

// Ideas generates content ideas for req.
func (g *Generation) Ideas(req models.IdeaRequest) (*models.GeneratedResponse, error) {
	if valid, msg := validation.ValidateTopic(req.Title); !valid {
		return nil, g.reject(models.FeatureIdeas, msg)
	}
	if valid, msg := validation.ValidateDetails(req.Details); !valid {
		return nil, g.reject(models.FeatureIdeas, msg)
	}

	start := time.Now()
	id, err := generator.Select(req.Title, req.Category)
	if err != nil {
		return nil, g.translate(models.FeatureIdeas, err)
	}
	content, err := generator.GenerateIdeas(req.Title, req.Category, req.Details)
	if err != nil {
		return nil, g.translate(models.FeatureIdeas, err)
	}
	g.metrics.RecordGeneration(models.FeatureIdeas, string(id), time.Since(start))

	resp := models.NewGeneratedResponse(models.FeatureIdeas, string(id), req.Title, content)
	resp.Category = strings.TrimSpace(req.Category)
	resp.Details = req.Details

	if resp.Category != "" && !g.isKnownCategory(resp.Category) {
		slog.Debug("unknown category, using default template", "category", resp.Category)
	}
	return resp, nil
}

// Search generates a search result for req.
func (g *Generation) Search(req models.SearchRequest) (*models.GeneratedResponse, error) {
	if valid, msg := validation.ValidateSearchQuery(req.Query); !valid {
		return nil, g.reject(models.FeatureSearch, msg)
	}

	start := time.Now()
	id, err := generator.SelectSearch(req.Query)
	if err != nil {
		return nil, g.translate(models.FeatureSearch, err)
	}
	content, err := generator.GenerateSearchResult(req.Query)
	if err != nil {
		return nil, g.translate(models.FeatureSearch, err)
	}
	g.metrics.RecordGeneration(models.FeatureSearch, string(id), time.Since(start))

	return models.NewGeneratedResponse(models.FeatureSearch, string(id), req.Query, content), nil
}

// isKnownCategory reports whether category has a dedicated template or is
// offered by the catalog.
func (g *Generation) isKnownCategory(category string) bool {
	if validation.IsKnownCategory(category) {
		return true
	}
	return g.catalog.GetCategoryBySlug(validation.NormalizeCategory(category)) != nil
}

func (g *Generation) reject(feature, msg string) error {
	g.metrics.RecordRejection(feature, reasonInvalidInput)
	return &ValidationError{Message: msg}
}

// translate maps generator errors to errors handlers know how to present.
func (g *Generation) translate(feature string, err error) error {
	if errors.Is(err, generator.ErrInvalidInput) {
		return g.reject(feature, "Please enter something to generate from")
	}
	return err
}
