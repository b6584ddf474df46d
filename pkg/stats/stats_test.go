package stats

import (
	"testing"

	"zeroclick-go/pkg/volume"
)

func TestZeroClickSurvey(t *testing.T) {
	bars, meta := ZeroClickSurvey()

	if len(bars) != 2 {
		t.Fatalf("Expected 2 bars, got %d", len(bars))
	}
	if bars[0].Percentage != 80 {
		t.Errorf("Expected 80%% of consumers, got %f", bars[0].Percentage)
	}
	if bars[1].Percentage != 40 {
		t.Errorf("Expected 40%% of searches, got %f", bars[1].Percentage)
	}
	if meta.Title == "" || meta.YLabel == "" {
		t.Error("Chart metadata incomplete")
	}
}

func TestTrafficLossPercent(t *testing.T) {
	tests := []struct {
		percent int
		want    int
		wantErr bool
	}{
		{0, 0, false},
		{40, 40, false},
		{100, 100, false},
		{-1, 0, true},
		{101, 0, true},
	}

	for _, tt := range tests {
		got, err := TrafficLossPercent(tt.percent)
		if tt.wantErr {
			if err == nil {
				t.Errorf("TrafficLossPercent(%d): expected error", tt.percent)
			}
			continue
		}
		if err != nil {
			t.Errorf("TrafficLossPercent(%d): unexpected error: %v", tt.percent, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TrafficLossPercent(%d) = %d, want %d", tt.percent, got, tt.want)
		}
	}
}

func TestEstimatedImpact(t *testing.T) {
	series := volume.Series{
		{Term: "best laptops", Period: "2025-01", Value: 120000},
		{Term: "best laptops", Period: "2025-02", Value: 130000},
		{Term: "best laptops", Period: "2025-03", Value: 125000},
	}

	got := EstimatedImpact(series, DefaultZeroClickShare)
	want := 125000 * 0.40
	if got != want {
		t.Errorf("EstimatedImpact = %f, want %f", got, want)
	}

	if EstimatedImpact(nil, DefaultZeroClickShare) != 0 {
		t.Error("Empty series must yield zero impact")
	}
}

func TestSeriesChartMeta(t *testing.T) {
	absolute := SeriesChartMeta("best laptops", volume.UnitAbsolute)
	if absolute.YLabel != "Search Volume" {
		t.Errorf("Unexpected absolute y-label: %s", absolute.YLabel)
	}

	relative := SeriesChartMeta("best laptops", volume.UnitRelative)
	if relative.YLabel != "Relative Search Interest (0-100)" {
		t.Errorf("Unexpected relative y-label: %s", relative.YLabel)
	}
}
