package stats

import (
	"fmt"

	"zeroclick-go/pkg/volume"
)

// DefaultZeroClickShare is the Bain survey figure: 40% of searches end
// without a click through to a website.
const DefaultZeroClickShare = 0.40

// ChartMeta is the metadata the display surface needs to render a chart.
type ChartMeta struct {
	Title  string `json:"title"`
	XLabel string `json:"x_label"`
	YLabel string `json:"y_label"`
}

// SurveyBar is one bar of the zero-click statistics chart.
type SurveyBar struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// ZeroClickSurvey returns the fixed survey figures: 80% of consumers rely on
// zero-click results in at least 40% of their searches.
func ZeroClickSurvey() ([]SurveyBar, ChartMeta) {
	bars := []SurveyBar{
		{Category: "Consumers Using Zero-Click", Percentage: 80, Color: "#1f77b4"},
		{Category: "Searches with Zero-Click", Percentage: 40, Color: "#ff7f0e"},
	}
	meta := ChartMeta{
		Title:  "Zero-Click Search Statistics (Bain Survey)",
		XLabel: "Category",
		YLabel: "Percentage (%)",
	}
	return bars, meta
}

// TrafficLossPercent answers the slider question: if percent of searches are
// zero-click, a site loses up to that same percent of its potential search
// traffic.
func TrafficLossPercent(percent int) (int, error) {
	if percent < 0 || percent > 100 {
		return 0, fmt.Errorf("percent must be between 0 and 100, got %d", percent)
	}
	return percent, nil
}

// EstimatedImpact is the mean series value scaled by the zero-click share.
// For absolute series this is searches per month that never reach a website;
// for relative series it is a share of relative interest.
func EstimatedImpact(s volume.Series, share float64) float64 {
	return s.Mean() * share
}

// SeriesChartMeta returns the line-chart metadata for a resolved series,
// labelled by the unit the series carries.
func SeriesChartMeta(term string, unit volume.Unit) ChartMeta {
	if unit == volume.UnitRelative {
		return ChartMeta{
			Title:  fmt.Sprintf("Trends Interest for '%s' (Last 3 Months)", term),
			XLabel: "Month",
			YLabel: "Relative Search Interest (0-100)",
		}
	}
	return ChartMeta{
		Title:  fmt.Sprintf("Monthly Search Volume for '%s'", term),
		XLabel: "Month",
		YLabel: "Search Volume",
	}
}
