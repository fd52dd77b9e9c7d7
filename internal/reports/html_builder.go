package reports

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// PageData is the content of the index page
type PageData struct {
	Title       string
	GeneratedAt string
	Version     string
	Summary     template.HTML
	ChartHTML   string
	ChartPNG    string
}

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem auto; max-width: 960px; color: #222; }
iframe { border: 0; width: 100%; height: 520px; }
table { border-collapse: collapse; margin-top: 1rem; }
th, td { border-bottom: 1px solid #ddd; padding: 0.25rem 0.75rem; }
img { max-width: 100%; }
footer { margin-top: 2rem; font-size: 0.8rem; color: #777; }
</style>
</head>
<body>
<iframe src="{{.ChartHTML}}" title="{{.Title}}"></iframe>
{{if .ChartPNG}}<p><a href="{{.ChartPNG}}">Static chart (PNG)</a></p>{{end}}
<section class="summary">
{{.Summary}}
</section>
<footer>Generated {{.GeneratedAt}}{{if .Version}} by giniplot {{.Version}}{{end}}. Source: World Bank, indicator SI.POV.GINI.</footer>
</body>
</html>
`))

// HTMLBuilder assembles the index page from markdown and chart links
type HTMLBuilder struct {
	goldmark goldmark.Markdown
}

// NewHTMLBuilder creates an HTML builder with GitHub flavored markdown enabled
func NewHTMLBuilder() *HTMLBuilder {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	return &HTMLBuilder{
		goldmark: md,
	}
}

// ConvertMarkdownToHTML converts markdown to HTML using goldmark
func (h *HTMLBuilder) ConvertMarkdownToHTML(markdownContent string) (string, error) {
	var buf bytes.Buffer
	if err := h.goldmark.Convert([]byte(markdownContent), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// BuildPage renders the markdown summary into the index page
func (h *HTMLBuilder) BuildPage(summaryMarkdown string, data PageData) ([]byte, error) {
	summary, err := h.ConvertMarkdownToHTML(summaryMarkdown)
	if err != nil {
		return nil, err
	}
	// raw HTML in the markdown is dropped since WithUnsafe is not set
	data.Summary = template.HTML(summary)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute page template: %w", err)
	}
	return buf.Bytes(), nil
}
