package reports

import (
	"strings"
	"testing"

	"giniplot/internal/models"
)

func TestSummaryMarkdown(t *testing.T) {
	series := models.Series{
		Name: "USA",
		Points: []models.Point{
			{Year: 2009},
			{Year: 2010, Value: 40.0, Valid: true},
			{Year: 2011, Value: 40.45, Valid: true, Interpolated: true},
			{Year: 2012, Value: 40.9, Valid: true},
		},
	}

	md := SummaryMarkdown(series, "Gini Index for USA from 2009 to 2012")

	for _, want := range []string{
		"# Gini Index for USA from 2009 to 2012",
		"2009 to 2012 (4 points)",
		"**Observed:** 2",
		"**Interpolated:** 1",
		"**Missing:** 1",
		"| Year | USA | Source |",
		"| 2009 | | missing |",
		"| 2011 | 40.45 | interpolated |",
		"| 2012 | 40.90 | observed |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Expected summary to contain %q\n%s", want, md)
		}
	}
}

func TestSummaryMarkdownEmpty(t *testing.T) {
	md := SummaryMarkdown(models.Series{Name: "USA"}, "t")
	if !strings.Contains(md, "No observations") {
		t.Errorf("Unexpected empty summary: %s", md)
	}
}

func TestBuildPageEscapesTitle(t *testing.T) {
	b := NewHTMLBuilder()

	page, err := b.BuildPage("# Heading\n\n<script>alert(1)</script>\n", PageData{
		Title:     "A <b> title",
		ChartHTML: ChartHTML,
	})
	if err != nil {
		t.Fatalf("BuildPage failed: %v", err)
	}

	html := string(page)
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("Raw HTML from markdown must not be emitted")
	}
	if !strings.Contains(html, "A &lt;b&gt; title") {
		t.Error("Expected title to be escaped")
	}
	if !strings.Contains(html, `<h1 id="heading">Heading</h1>`) {
		t.Errorf("Expected rendered heading with id, got %s", html)
	}
}
