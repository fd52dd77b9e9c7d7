package models

// Point is a single year of the series.
// Valid is false for years that have no value even after interpolation;
// Interpolated marks values that were filled rather than observed.
type Point struct {
	Year         int     `json:"year"`
	Value        float64 `json:"value"`
	Valid        bool    `json:"valid"`
	Interpolated bool    `json:"interpolated,omitempty"`
}

// Series is a year-ordered Gini index series for one country
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// SeriesStats summarizes the known values of a series
type SeriesStats struct {
	Known        int     `json:"known"`
	Interpolated int     `json:"interpolated"`
	Missing      int     `json:"missing"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Mean         float64 `json:"mean"`
	FirstYear    int     `json:"first_year"`
	LastYear     int     `json:"last_year"`
}

// Len returns the number of points
func (s Series) Len() int {
	return len(s.Points)
}

// IsEmpty reports whether the series has no points
func (s Series) IsEmpty() bool {
	return len(s.Points) == 0
}

// Years returns the years of all points in order
func (s Series) Years() []int {
	years := make([]int, len(s.Points))
	for i, p := range s.Points {
		years[i] = p.Year
	}
	return years
}

// Known returns only the points that carry a value
func (s Series) Known() []Point {
	var known []Point
	for _, p := range s.Points {
		if p.Valid {
			known = append(known, p)
		}
	}
	return known
}

// Stats computes summary statistics over the known points.
// Known includes interpolated values.
func (s Series) Stats() SeriesStats {
	var stats SeriesStats
	if len(s.Points) > 0 {
		stats.FirstYear = s.Points[0].Year
		stats.LastYear = s.Points[len(s.Points)-1].Year
	}

	sum := 0.0
	for _, p := range s.Points {
		if !p.Valid {
			stats.Missing++
			continue
		}
		if p.Interpolated {
			stats.Interpolated++
		}
		if stats.Known == 0 || p.Value < stats.Min {
			stats.Min = p.Value
		}
		if stats.Known == 0 || p.Value > stats.Max {
			stats.Max = p.Value
		}
		sum += p.Value
		stats.Known++
	}
	if stats.Known > 0 {
		stats.Mean = sum / float64(stats.Known)
	}
	return stats
}
