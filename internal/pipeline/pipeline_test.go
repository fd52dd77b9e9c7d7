package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"giniplot/internal/fetchers"
	"giniplot/internal/models"
	"giniplot/internal/reports"
	"giniplot/internal/storage"
	"giniplot/internal/transform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type renderCall struct {
	series models.Series
	title  string
}

type recordingRenderer struct {
	calls []renderCall
	err   error
}

func (r *recordingRenderer) Render(ctx context.Context, series models.Series, title string) error {
	r.calls = append(r.calls, renderCall{series: series, title: title})
	return r.err
}

const usaBody = `[
  {"page":1,"pages":1,"per_page":50,"total":6,"sourceid":"2","lastupdated":"2025-07-01"},
  [
    {"indicator":{"id":"SI.POV.GINI","value":"Gini index"},"country":{"id":"US","value":"United States"},"countryiso3code":"USA","date":"2015","value":41.2,"unit":"","obs_status":"","decimal":1},
    {"indicator":{"id":"SI.POV.GINI","value":"Gini index"},"country":{"id":"US","value":"United States"},"countryiso3code":"USA","date":"2014","value":41.5,"unit":"","obs_status":"","decimal":1},
    {"indicator":{"id":"SI.POV.GINI","value":"Gini index"},"country":{"id":"US","value":"United States"},"countryiso3code":"USA","date":"2013","value":41.0,"unit":"","obs_status":"","decimal":1},
    {"indicator":{"id":"SI.POV.GINI","value":"Gini index"},"country":{"id":"US","value":"United States"},"countryiso3code":"USA","date":"2012","value":null,"unit":"","obs_status":"","decimal":1},
    {"indicator":{"id":"SI.POV.GINI","value":"Gini index"},"country":{"id":"US","value":"United States"},"countryiso3code":"USA","date":"2011","value":40.9,"unit":"","obs_status":"","decimal":1},
    {"indicator":{"id":"SI.POV.GINI","value":"Gini index"},"country":{"id":"US","value":"United States"},"countryiso3code":"USA","date":"2010","value":40.0,"unit":"","obs_status":"","decimal":1}
  ]
]`

func stubAPI(t *testing.T, status int, body string, hits *int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func newPipeline(baseURL string, renderer Renderer) *Pipeline {
	fetcher := fetchers.NewWorldBankFetcher(fetchers.Options{BaseURL: baseURL, Timeout: 5 * time.Second})
	return New(fetcher, transform.NewTransformer(), renderer)
}

func TestRunEndToEnd(t *testing.T) {
	var hits int32
	server := stubAPI(t, http.StatusOK, usaBody, &hits)
	renderer := &recordingRenderer{}

	q, err := models.NewQuery("usa", 2010, 2015)
	require.NoError(t, err)

	series, err := newPipeline(server.URL, renderer).Run(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	require.Len(t, renderer.calls, 1)
	assert.Equal(t, "Gini Index for USA from 2010 to 2015", renderer.calls[0].title)

	rendered := renderer.calls[0].series
	assert.Equal(t, "USA", rendered.Name)
	assert.Equal(t, []int{2010, 2011, 2012, 2013, 2014, 2015}, rendered.Years())
	assert.Equal(t, series, rendered)

	gap := rendered.Points[2]
	assert.True(t, gap.Valid)
	assert.True(t, gap.Interpolated)
	assert.InDelta(t, 40.95, gap.Value, 1e-9)
}

func TestRunInvalidQuery(t *testing.T) {
	cases := []models.Query{
		{Country: "US", StartYear: 2010, EndYear: 2015},
		{Country: "USA", StartYear: 2015, EndYear: 2010},
	}

	for _, q := range cases {
		var hits int32
		server := stubAPI(t, http.StatusOK, usaBody, &hits)
		renderer := &recordingRenderer{}

		_, err := newPipeline(server.URL, renderer).Run(context.Background(), q)

		assert.ErrorIs(t, err, models.ErrInvalidQuery)
		assert.Zero(t, atomic.LoadInt32(&hits), "no request for %+v", q)
		assert.Empty(t, renderer.calls)
	}
}

func TestRunFetchErrorSkipsRender(t *testing.T) {
	var hits int32
	server := stubAPI(t, http.StatusInternalServerError, "boom", &hits)
	renderer := &recordingRenderer{}

	_, err := newPipeline(server.URL, renderer).Run(context.Background(), models.Query{Country: "USA", StartYear: 2010, EndYear: 2015})

	assert.ErrorIs(t, err, fetchers.ErrRemote)
	assert.Empty(t, renderer.calls)
}

func TestRunRenderErrorPropagates(t *testing.T) {
	var hits int32
	server := stubAPI(t, http.StatusOK, usaBody, &hits)
	renderErr := errors.New("disk full")
	renderer := &recordingRenderer{err: renderErr}

	_, err := newPipeline(server.URL, renderer).Run(context.Background(), models.Query{Country: "USA", StartYear: 2010, EndYear: 2015})

	assert.ErrorIs(t, err, renderErr)
	assert.Len(t, renderer.calls, 1)
}

func TestRunEmptyRangeRendersWithPublisher(t *testing.T) {
	var hits int32
	// records exist but none fall inside the requested years
	server := stubAPI(t, http.StatusOK, usaBody, &hits)

	store, err := storage.NewLocalStorageClient(t.TempDir())
	require.NoError(t, err)
	publisher := reports.NewPublisher(store, reports.Options{Out: io.Discard})

	series, err := newPipeline(server.URL, publisher).Run(context.Background(), models.Query{Country: "USA", StartYear: 1990, EndYear: 1995})
	require.NoError(t, err)
	assert.True(t, series.IsEmpty())

	files, err := store.ListFiles(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, files)
}
