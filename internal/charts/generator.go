// Package charts renders a Gini index series as an interactive HTML line chart
// (go-echarts) and as a static PNG (go-chart).
package charts

import (
	"errors"

	"giniplot/internal/models"
)

const (
	// DefaultTheme is the go-echarts theme used when none is configured
	DefaultTheme = "westeros"

	defaultWidth  = 900
	defaultHeight = 480

	xAxisName = "Year"
	yAxisName = "Gini index"
)

// ErrNotEnoughPoints is returned by the PNG renderer when fewer than two known values exist
var ErrNotEnoughPoints = errors.New("at least two known values are needed for a static chart")

// ChartGenerator renders line charts for a series
type ChartGenerator struct {
	theme  string
	width  int
	height int
}

// NewChartGenerator creates a chart generator with the given go-echarts theme
func NewChartGenerator(theme string) *ChartGenerator {
	if theme == "" {
		theme = DefaultTheme
	}
	return &ChartGenerator{
		theme:  theme,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// Theme returns the configured go-echarts theme
func (cg *ChartGenerator) Theme() string {
	return cg.theme
}

// legendName is the series label; an unnamed series still gets a legend entry
func legendName(series models.Series) string {
	if series.Name == "" {
		return yAxisName
	}
	return series.Name
}
