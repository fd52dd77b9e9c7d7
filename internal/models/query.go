package models

import (
	"errors"
	"fmt"
	"strings"
)

// CountryCodeLength is the length of an ISO 3166-1 alpha-3 country code
const CountryCodeLength = 3

// ErrInvalidQuery is returned when a query fails validation
var ErrInvalidQuery = errors.New("invalid query")

// Query selects the country and inclusive year range to chart
type Query struct {
	Country   string `json:"country"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
}

// NewQuery normalizes the country code and validates the result
func NewQuery(country string, startYear, endYear int) (Query, error) {
	q := Query{
		Country:   strings.ToUpper(strings.TrimSpace(country)),
		StartYear: startYear,
		EndYear:   endYear,
	}
	if err := q.Validate(); err != nil {
		return Query{}, err
	}
	return q, nil
}

// Validate checks the country code length and the year ordering
func (q Query) Validate() error {
	if len(q.Country) != CountryCodeLength {
		return fmt.Errorf("%w: country code %q must be %d letters", ErrInvalidQuery, q.Country, CountryCodeLength)
	}
	if q.StartYear > q.EndYear {
		return fmt.Errorf("%w: start year %d is after end year %d", ErrInvalidQuery, q.StartYear, q.EndYear)
	}
	return nil
}

// Contains reports whether year falls inside the query range
func (q Query) Contains(year int) bool {
	return year >= q.StartYear && year <= q.EndYear
}

// Title is the chart title for the query
func (q Query) Title() string {
	return fmt.Sprintf("Gini Index for %s from %d to %d", q.Country, q.StartYear, q.EndYear)
}

// DateRange is the World Bank date parameter for the query
func (q Query) DateRange() string {
	return fmt.Sprintf("%d:%d", q.StartYear, q.EndYear)
}
