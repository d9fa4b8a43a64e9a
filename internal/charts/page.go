package charts

import (
	"bytes"
	"fmt"
	"html/template"
	"rfmInsights/domain"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
)

// echartsAssets serves the runtime the chart snippets call into.
const echartsAssets = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

// The four dashboard headings, in page order.
const (
	headingValueSegments    = "RFM Value Segment Distribution"
	headingCustomerSegments = "Comparison of RFM Customer Segments"
	headingSegmentScores    = "Comparison of RFM Segments based on Scores"
	headingReengaged        = "New Distribution of RFM Segments after Re-engagement"
)

// Section is one dashboard block: a fixed heading plus the embeddable
// element and script produced by go-echarts.
type Section struct {
	Heading string
	Element template.HTML
	Script  template.HTML
}

type pageData struct {
	Title     string
	EChartsJS string
	Sections  []Section
}

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!doctype html>
<html>
<head>
    <title>{{.Title}}</title>
    <script src="{{.EChartsJS}}"></script>
</head>
<body>
{{- range .Sections}}
    <div>
        <h2>{{.Heading}}</h2>
        {{.Element}}
        {{.Script}}
    </div>
{{- end}}
</body>
</html>
`))

// RenderPage builds the four dashboard charts from a report and
// composes them into one HTML document. The first three charts show
// the pre-re-engagement table, the last one the relabeled table.
func RenderPage(report domain.RFMReport) ([]byte, error) {
	sections := []Section{
		section(headingValueSegments, valueSegmentChart(report.ValueSegmentCounts)),
		section(headingCustomerSegments, customerSegmentChart(report.CustomerSegmentCounts)),
		section(headingSegmentScores, segmentScoresChart(report.SegmentScores)),
		section(headingReengaged, reengagedSegmentChart(report.ReengagedSegmentCounts)),
	}

	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{
		Title:     "RFM Analysis",
		EChartsJS: echartsAssets,
		Sections:  sections,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render dashboard page: %w", err)
	}

	return buf.Bytes(), nil
}

func section(heading string, chart *echarts.Bar) Section {
	snippet := chart.RenderSnippet()
	return Section{
		Heading: heading,
		Element: template.HTML(snippet.Element),
		Script:  template.HTML(snippet.Script),
	}
}
