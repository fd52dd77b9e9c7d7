package fetchers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"giniplot/internal/logger"
	"giniplot/internal/models"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the World Bank v2 country endpoint
	DefaultBaseURL = "https://api.worldbank.org/v2/country"
	// GiniIndicatorCode selects the Gini index series
	GiniIndicatorCode = "SI.POV.GINI"
	// DefaultTimeout bounds the single API request
	DefaultTimeout = 30 * time.Second

	maxErrorBody = 512
)

// Options configures a WorldBankFetcher. It is copied at construction.
type Options struct {
	BaseURL       string
	IndicatorCode string
	Timeout       time.Duration
	UserAgent     string
}

// WorldBankFetcher retrieves one indicator series for a country from the World Bank API
type WorldBankFetcher struct {
	client *resty.Client
	opts   Options
	log    *logger.Logger
}

// NewWorldBankFetcher creates a fetcher; zero option fields fall back to the defaults
func NewWorldBankFetcher(opts Options) *WorldBankFetcher {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.IndicatorCode == "" {
		opts.IndicatorCode = GiniIndicatorCode
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &WorldBankFetcher{
		client: client,
		opts:   opts,
		log:    logger.Component("fetcher"),
	}
}

// Options returns the fetcher configuration
func (f *WorldBankFetcher) Options() Options {
	return f.opts
}

// URL builds the request URL for the query
func (f *WorldBankFetcher) URL(q models.Query) string {
	return fmt.Sprintf("%s/%s/indicator/%s?date=%s&format=json",
		f.opts.BaseURL, url.PathEscape(q.Country), url.PathEscape(f.opts.IndicatorCode), q.DateRange())
}

// Fetch validates the query and performs a single GET for its observations
func (f *WorldBankFetcher) Fetch(ctx context.Context, q models.Query) ([]models.Observation, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	requestURL := f.URL(q)
	f.log.Info("Fetching indicator", logger.Fields{
		"country":   q.Country,
		"indicator": f.opts.IndicatorCode,
		"range":     q.DateRange(),
	})

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch %s: %w", ErrNetwork, requestURL, err)
	}

	if !resp.IsSuccess() {
		return nil, &RemoteError{
			StatusCode: resp.StatusCode(),
			URL:        requestURL,
			Body:       truncate(strings.TrimSpace(resp.String()), maxErrorBody),
		}
	}

	page, observations, err := decodeEnvelope(resp.Body())
	if err != nil {
		return nil, err
	}

	f.log.Debug("Decoded response", logger.Fields{
		"records": len(observations),
		"total":   page.Total,
		"updated": page.LastUpdated,
	})
	if page.Pages > 1 {
		f.log.Warn("Response is paginated, only the first page is used", logger.Fields{
			"pages":    page.Pages,
			"per_page": page.PerPage,
			"total":    page.Total,
		})
	}

	return observations, nil
}

// decodeEnvelope unpacks the [pageInfo, records] array returned by the API
func decodeEnvelope(body []byte) (models.PageInfo, []models.Observation, error) {
	var page models.PageInfo

	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return page, nil, fmt.Errorf("%w: failed to parse response envelope: %w", ErrDecode, err)
	}
	if len(envelope) == 0 {
		return page, nil, fmt.Errorf("%w: response envelope is empty", ErrEmptyResult)
	}

	var header struct {
		models.PageInfo
		Message []models.APIMessage `json:"message"`
	}
	if err := json.Unmarshal(envelope[0], &header); err != nil {
		return page, nil, fmt.Errorf("%w: failed to parse page header: %w", ErrDecode, err)
	}
	page = header.PageInfo

	if len(envelope) < 2 {
		if len(header.Message) > 0 {
			m := header.Message[0]
			return page, nil, fmt.Errorf("%w: API message %s: %s: %s", ErrEmptyResult, m.ID, m.Key, m.Value)
		}
		return page, nil, fmt.Errorf("%w: response has no records element", ErrEmptyResult)
	}

	records := bytes.TrimSpace(envelope[1])
	if len(records) == 0 || bytes.Equal(records, []byte("null")) {
		return page, nil, fmt.Errorf("%w: no records returned", ErrEmptyResult)
	}

	var observations []models.Observation
	if err := json.Unmarshal(records, &observations); err != nil {
		return page, nil, fmt.Errorf("%w: failed to parse records: %w", ErrDecode, err)
	}
	if len(observations) == 0 {
		return page, nil, fmt.Errorf("%w: no records returned", ErrEmptyResult)
	}

	return page, observations, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
