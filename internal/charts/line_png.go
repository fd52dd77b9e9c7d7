package charts

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"giniplot/internal/models"
)

// maxYearTicks caps the number of labelled years on the x axis
const maxYearTicks = 20

var lineColor = drawing.Color{R: 51, G: 102, B: 204, A: 255}

// LinePNG renders the known points of the series as a PNG line chart
func (cg *ChartGenerator) LinePNG(series models.Series, title string) ([]byte, error) {
	known := series.Known()
	if len(known) < 2 {
		return nil, ErrNotEnoughPoints
	}

	xValues := make([]float64, len(known))
	yValues := make([]float64, len(known))
	for i, p := range known {
		xValues[i] = float64(p.Year)
		yValues[i] = p.Value
	}

	graph := chart.Chart{
		Title: title,
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   30,
				Right:  30,
				Bottom: 30,
			},
		},
		Width:  cg.width,
		Height: cg.height,
		XAxis: chart.XAxis{
			Name:  xAxisName,
			Ticks: yearTicks(known[0].Year, known[len(known)-1].Year),
		},
		YAxis: chart.YAxis{
			Name:  yAxisName,
			Range: valueRange(yValues),
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return strconv.FormatFloat(f, 'f', 1, 64)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: legendName(series),
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 3,
					DotColor:    lineColor,
					DotWidth:    4,
				},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render PNG line chart: %w", err)
	}
	return buf.Bytes(), nil
}

// yearTicks labels whole years, thinning them out for long ranges
func yearTicks(first, last int) []chart.Tick {
	step := 1
	if span := last - first; span > maxYearTicks {
		step = (span + maxYearTicks - 1) / maxYearTicks
	}

	var ticks []chart.Tick
	for y := first; y <= last; y += step {
		ticks = append(ticks, chart.Tick{Value: float64(y), Label: strconv.Itoa(y)})
	}
	if ticks[len(ticks)-1].Value != float64(last) {
		ticks = append(ticks, chart.Tick{Value: float64(last), Label: strconv.Itoa(last)})
	}
	return ticks
}

// valueRange pads the y range so a flat series still has a drawable axis
func valueRange(values []float64) *chart.ContinuousRange {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = 1
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}
