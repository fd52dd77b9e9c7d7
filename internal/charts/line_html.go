package charts

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"giniplot/internal/models"
)

// missingValue is how ECharts marks a gap in a line series
const missingValue = "-"

// LineHTML renders the series as a standalone go-echarts HTML page.
// Missing values are drawn as gaps; an empty series yields an empty chart.
func (cg *ChartGenerator) LineHTML(series models.Series, title string) ([]byte, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Theme:     cg.theme,
			Width:     fmt.Sprintf("%dpx", cg.width),
			Height:    fmt.Sprintf("%dpx", cg.height),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle(series),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: true,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: xAxisName,
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yAxisName,
			Type: "value",
		}),
	)

	xAxis := make([]string, len(series.Points))
	data := make([]opts.LineData, len(series.Points))
	for i, p := range series.Points {
		xAxis[i] = strconv.Itoa(p.Year)
		if p.Valid {
			data[i] = opts.LineData{Value: p.Value}
		} else {
			data[i] = opts.LineData{Value: missingValue}
		}
	}

	line.SetXAxis(xAxis).
		AddSeries(legendName(series), data).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{
			Smooth:     false,
			ShowSymbol: true,
		}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render HTML line chart: %w", err)
	}
	return buf.Bytes(), nil
}

func subtitle(series models.Series) string {
	if series.IsEmpty() {
		return "No observations in range"
	}
	stats := series.Stats()
	return fmt.Sprintf("%d years, %d with data", series.Len(), stats.Known)
}
