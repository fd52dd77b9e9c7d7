package reports

import (
	"fmt"
	"strings"

	"giniplot/internal/models"
)

// SummaryMarkdown describes the series as markdown: headline statistics and a per-year table
func SummaryMarkdown(series models.Series, title string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)

	if series.IsEmpty() {
		b.WriteString("No observations fall inside the requested range.\n")
		return b.String()
	}

	stats := series.Stats()
	fmt.Fprintf(&b, "- **Years:** %d to %d (%d points)\n", stats.FirstYear, stats.LastYear, series.Len())
	fmt.Fprintf(&b, "- **Observed:** %d\n", stats.Known-stats.Interpolated)
	fmt.Fprintf(&b, "- **Interpolated:** %d\n", stats.Interpolated)
	fmt.Fprintf(&b, "- **Missing:** %d\n", stats.Missing)
	if stats.Known > 0 {
		fmt.Fprintf(&b, "- **Range:** %.1f to %.1f (mean %.2f)\n", stats.Min, stats.Max, stats.Mean)
	}

	fmt.Fprintf(&b, "\n| Year | %s | Source |\n", legend(series))
	b.WriteString("|-----:|-----:|:-------|\n")
	for _, p := range series.Points {
		switch {
		case !p.Valid:
			fmt.Fprintf(&b, "| %d | | missing |\n", p.Year)
		case p.Interpolated:
			fmt.Fprintf(&b, "| %d | %.2f | interpolated |\n", p.Year, p.Value)
		default:
			fmt.Fprintf(&b, "| %d | %.2f | observed |\n", p.Year, p.Value)
		}
	}

	return b.String()
}

func legend(series models.Series) string {
	if series.Name == "" {
		return "Value"
	}
	return series.Name
}
