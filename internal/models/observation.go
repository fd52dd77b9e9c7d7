package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Observation is one record of the World Bank indicator response.
// Value is nil when the API reports no data for that year.
type Observation struct {
	Indicator       Reference `json:"indicator"`
	Country         Reference `json:"country"`
	CountryISO3Code string    `json:"countryiso3code"`
	Date            string    `json:"date"`
	Value           *float64  `json:"value"`
	Unit            string    `json:"unit"`
	ObsStatus       string    `json:"obs_status"`
	Decimal         FlexInt   `json:"decimal"`
}

// Reference is an id/label pair used by the World Bank API
type Reference struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// PageInfo is the pagination header in the first element of the response envelope
type PageInfo struct {
	Page        FlexInt `json:"page"`
	Pages       FlexInt `json:"pages"`
	PerPage     FlexInt `json:"per_page"`
	Total       FlexInt `json:"total"`
	SourceID    string  `json:"sourceid"`
	LastUpdated string  `json:"lastupdated"`
}

// APIMessage is returned by the World Bank API in place of the page header on errors
type APIMessage struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FlexInt decodes an integer the API may send either as a number or as a quoted string
type FlexInt int

// UnmarshalJSON accepts 50, "50", "" and null
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		var f float64
		if jerr := json.Unmarshal(data, &f); jerr != nil {
			return err
		}
		v = int(f)
	}
	*n = FlexInt(v)
	return nil
}
