package charts

import (
	"rfmInsights/domain"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Bar palette cycled over segment bars, with a fixed highlight for the
// Champions bar and the three series colors of the score comparison.
var (
	pastelPalette = []string{
		"#66C5CC", "#F6CF71", "#F89C74", "#DCB0F2", "#87C55F",
		"#9EB9F3", "#FE88B1", "#C9DB74", "#8BE0A4", "#B497E7", "#B3B3B3",
	}

	championsColor = "#9ECAE1"

	recencySeriesColor   = "#9ECAE1"
	frequencySeriesColor = "#5E9ED9"
	monetarySeriesColor  = "#206694"
)

func valueSegmentChart(counts []domain.SegmentCount) *echarts.Bar {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "RFM Value Segment Distribution"}),
		echarts.WithXAxisOpts(opts.XAxis{Name: "RFM Value Segment"}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	names := make([]string, 0, len(counts))
	data := make([]opts.BarData, 0, len(counts))
	for i, c := range counts {
		names = append(names, c.Segment)
		data = append(data, opts.BarData{
			Value:     c.Count,
			ItemStyle: &opts.ItemStyle{Color: pastelPalette[i%len(pastelPalette)]},
		})
	}
	bar.SetXAxis(names).AddSeries("Count", data)

	return bar
}

func customerSegmentChart(counts []domain.SegmentCount) *echarts.Bar {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "Comparison of RFM Segments"}),
		echarts.WithXAxisOpts(opts.XAxis{Name: "RFM Segments"}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "Number of Customers"}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	names := make([]string, 0, len(counts))
	data := make([]opts.BarData, 0, len(counts))
	for i, c := range counts {
		color := pastelPalette[i%len(pastelPalette)]
		if c.Segment == domain.SegmentChampions {
			color = championsColor
		}
		names = append(names, c.Segment)
		data = append(data, opts.BarData{
			Value:     c.Count,
			ItemStyle: &opts.ItemStyle{Color: color},
		})
	}
	bar.SetXAxis(names).AddSeries("Number of Customers", data)

	return bar
}

func segmentScoresChart(means []domain.SegmentScoreMeans) *echarts.Bar {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{
			Title: "Comparison of RFM Segments based on Recency, Frequency, and Monetary Scores",
		}),
		echarts.WithXAxisOpts(opts.XAxis{Name: "RFM Segments"}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "Score"}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		echarts.WithColorsOpts(opts.Colors{
			recencySeriesColor,
			frequencySeriesColor,
			monetarySeriesColor,
		}),
	)

	names := make([]string, 0, len(means))
	recency := make([]opts.BarData, 0, len(means))
	frequency := make([]opts.BarData, 0, len(means))
	monetary := make([]opts.BarData, 0, len(means))
	for _, m := range means {
		names = append(names, m.Segment)
		recency = append(recency, opts.BarData{Value: m.Recency})
		frequency = append(frequency, opts.BarData{Value: m.Frequency})
		monetary = append(monetary, opts.BarData{Value: m.Monetary})
	}

	bar.SetXAxis(names).
		AddSeries("Recency Score", recency).
		AddSeries("Frequency Score", frequency).
		AddSeries("Monetary Score", monetary)

	return bar
}

func reengagedSegmentChart(counts []domain.SegmentCount) *echarts.Bar {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "New Distribution of RFM Segments after Re-engagement"}),
		echarts.WithXAxisOpts(opts.XAxis{Name: "RFM Segments"}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "Number of Customers"}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	names := make([]string, 0, len(counts))
	data := make([]opts.BarData, 0, len(counts))
	for i, c := range counts {
		names = append(names, c.Segment)
		data = append(data, opts.BarData{
			Value:     c.Count,
			ItemStyle: &opts.ItemStyle{Color: pastelPalette[i%len(pastelPalette)]},
		})
	}
	bar.SetXAxis(names).AddSeries("Number of Customers", data)

	return bar
}
