// Package transform turns raw World Bank observations into a year-indexed series.
package transform

import (
	"sort"
	"strconv"
	"strings"

	"giniplot/internal/logger"
	"giniplot/internal/models"
)

// Transformer reshapes observations for a query into a Series
type Transformer struct {
	log *logger.Logger
}

// NewTransformer creates a transformer
func NewTransformer() *Transformer {
	return &Transformer{log: logger.Component("transform")}
}

// Transform filters the observations to the query range, orders them by year,
// fills gaps with Interpolate and names the series after the country.
// The input slice is not modified.
func (t *Transformer) Transform(q models.Query, observations []models.Observation) models.Series {
	byYear := make(map[int]models.Point, len(observations))

	for _, obs := range observations {
		year, ok := ParseYear(obs.Date)
		if !ok {
			t.log.Warn("Skipping record with unparseable date", logger.Fields{"date": obs.Date})
			continue
		}
		if !q.Contains(year) {
			continue
		}

		p := models.Point{Year: year}
		if obs.Value != nil {
			p.Value = *obs.Value
			p.Valid = true
		}
		// a duplicate year keeps the last known value
		if prev, seen := byYear[year]; seen && prev.Valid && !p.Valid {
			continue
		}
		byYear[year] = p
	}

	points := make([]models.Point, 0, len(byYear))
	for _, p := range byYear {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })

	series := models.Series{
		Name:   q.Country,
		Points: Interpolate(points),
	}

	stats := series.Stats()
	t.log.Debug("Series built", logger.Fields{
		"country": q.Country,
		"points":  series.Len(),
		"known":   stats.Known,
		"missing": stats.Missing,
	})
	return series
}

// ParseYear reads the year from a World Bank date such as "2015", "2015Q2" or "2015M07"
func ParseYear(date string) (int, bool) {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year < 0 {
		return 0, false
	}
	return year, true
}

// Interpolate fills missing values of year-ordered points in the forward direction.
// A gap between two known values is filled linearly in year; values after the last
// known point repeat it; points before the first known value stay missing.
// It returns a new slice.
func Interpolate(points []models.Point) []models.Point {
	out := make([]models.Point, len(points))
	copy(out, points)

	prev := -1
	for i := range out {
		if !out[i].Valid {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			fillLinear(out, prev, i)
		}
		prev = i
	}

	if prev >= 0 {
		for i := prev + 1; i < len(out); i++ {
			out[i].Value = out[prev].Value
			out[i].Valid = true
			out[i].Interpolated = true
		}
	}
	return out
}

// fillLinear fills points strictly between the known indices lo and hi
func fillLinear(points []models.Point, lo, hi int) {
	x0, y0 := float64(points[lo].Year), points[lo].Value
	x1, y1 := float64(points[hi].Year), points[hi].Value
	for i := lo + 1; i < hi; i++ {
		x := float64(points[i].Year)
		points[i].Value = y0 + (y1-y0)*(x-x0)/(x1-x0)
		points[i].Valid = true
		points[i].Interpolated = true
	}
}
