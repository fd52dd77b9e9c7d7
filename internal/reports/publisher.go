// Package reports writes the rendered chart artifacts for a series and shows them to the user.
package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"giniplot/internal/charts"
	"giniplot/internal/logger"
	"giniplot/internal/models"
	"giniplot/internal/storage"
)

// Artifact file names inside a chart folder
const (
	IndexFile   = "index.html"
	ChartHTML   = "chart.html"
	ChartPNG    = "chart.png"
	SeriesFile  = "series.json"
	SummaryFile = "summary.md"
)

// Options configures a Publisher
type Options struct {
	Theme       string
	Version     string
	OpenBrowser bool
	// Out receives the final location line; defaults to stdout
	Out io.Writer
}

// Result describes one published chart
type Result struct {
	Folder   string
	Files    []string
	Location string
}

// Publisher renders a series to chart files and stores them
type Publisher struct {
	charts  *charts.ChartGenerator
	builder *HTMLBuilder
	storage storage.StorageClient
	open    Opener
	out     io.Writer
	version string
	now     func() time.Time
	log     *logger.Logger
}

// NewPublisher creates a publisher writing to store
func NewPublisher(store storage.StorageClient, opts Options) *Publisher {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	p := &Publisher{
		charts:  charts.NewChartGenerator(opts.Theme),
		builder: NewHTMLBuilder(),
		storage: store,
		out:     out,
		version: opts.Version,
		now:     time.Now,
		log:     logger.Component("reports"),
	}
	if opts.OpenBrowser && store.IsLocal() {
		p.open = OpenInBrowser
	}
	return p
}

// Render publishes the chart and reports where it was written
func (p *Publisher) Render(ctx context.Context, series models.Series, title string) error {
	result, err := p.Publish(ctx, series, title)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "Chart written to %s\n", result.Location)

	if p.open != nil {
		if err := p.open(result.Location); err != nil {
			p.log.Warn("Could not open chart viewer", logger.Fields{"error": err.Error()})
		}
	}
	return nil
}

// Publish renders all artifacts for the series and stores them in a new folder
func (p *Publisher) Publish(ctx context.Context, series models.Series, title string) (*Result, error) {
	generatedAt := p.now().UTC()
	folder := storage.ChartFolderPath(title, generatedAt)

	files := map[string][]byte{}

	chartPage, err := p.charts.LineHTML(series, title)
	if err != nil {
		return nil, err
	}
	files[ChartHTML] = chartPage

	pngName := ChartPNG
	chartImage, err := p.charts.LinePNG(series, title)
	switch {
	case errors.Is(err, charts.ErrNotEnoughPoints):
		p.log.Warn("Skipping static chart", logger.Fields{"known_points": len(series.Known())})
		pngName = ""
	case err != nil:
		return nil, err
	default:
		files[ChartPNG] = chartImage
	}

	seriesJSON, err := json.MarshalIndent(series, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode series: %w", err)
	}
	files[SeriesFile] = seriesJSON

	summary := SummaryMarkdown(series, title)
	files[SummaryFile] = []byte(summary)

	index, err := p.builder.BuildPage(summary, PageData{
		Title:       title,
		GeneratedAt: generatedAt.Format("2006-01-02 15:04:05 UTC"),
		Version:     p.version,
		ChartHTML:   ChartHTML,
		ChartPNG:    pngName,
	})
	if err != nil {
		return nil, err
	}
	files[IndexFile] = index

	result := &Result{Folder: folder}
	// index.html last so a visible index implies a complete folder
	for _, name := range []string{ChartHTML, ChartPNG, SeriesFile, SummaryFile, IndexFile} {
		data, ok := files[name]
		if !ok {
			continue
		}
		filePath := path.Join(folder, name)
		if err := p.storage.StoreFile(ctx, filePath, data); err != nil {
			return nil, fmt.Errorf("failed to store %s: %w", name, err)
		}
		result.Files = append(result.Files, filePath)
	}
	result.Location = p.storage.Location(path.Join(folder, IndexFile))

	p.log.Info("Chart published", logger.Fields{
		"title":    title,
		"points":   series.Len(),
		"files":    len(result.Files),
		"location": result.Location,
	})
	return result, nil
}
