// Package pipeline runs one fetch, transform and render pass for a query.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"giniplot/internal/logger"
	"giniplot/internal/models"
)

// Fetcher retrieves the raw observations for a query
type Fetcher interface {
	Fetch(ctx context.Context, q models.Query) ([]models.Observation, error)
}

// Transformer reshapes observations into a series
type Transformer interface {
	Transform(q models.Query, observations []models.Observation) models.Series
}

// Renderer displays a series under a title
type Renderer interface {
	Render(ctx context.Context, series models.Series, title string) error
}

// Pipeline wires the three stages together
type Pipeline struct {
	fetcher     Fetcher
	transformer Transformer
	renderer    Renderer
	log         *logger.Logger
}

// New creates a pipeline
func New(fetcher Fetcher, transformer Transformer, renderer Renderer) *Pipeline {
	return &Pipeline{
		fetcher:     fetcher,
		transformer: transformer,
		renderer:    renderer,
		log:         logger.Component("pipeline"),
	}
}

// Run fetches, transforms and renders the series for q, calling each stage once.
// Nothing is rendered when an earlier stage fails.
func (p *Pipeline) Run(ctx context.Context, q models.Query) (models.Series, error) {
	if err := q.Validate(); err != nil {
		return models.Series{}, err
	}

	start := time.Now()
	p.log.Info("Fetching Gini index", logger.Fields{
		"country": q.Country,
		"range":   q.DateRange(),
	})

	observations, err := p.fetcher.Fetch(ctx, q)
	if err != nil {
		return models.Series{}, fmt.Errorf("fetch failed: %w", err)
	}

	series := p.transformer.Transform(q, observations)

	if err := p.renderer.Render(ctx, series, q.Title()); err != nil {
		return series, fmt.Errorf("render failed: %w", err)
	}

	p.log.Info("Run completed", logger.Fields{
		"records":  len(observations),
		"points":   series.Len(),
		"duration": time.Since(start).String(),
	})
	return series, nil
}
