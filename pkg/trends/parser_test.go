package trends

import (
	"testing"
)

func TestParseInterestResponse_Success(t *testing.T) {
	body := `{
		"status": "success",
		"data": [
			{
				"keyword": "best laptops",
				"points": [
					{"date": "2025-06-01", "interest": 55},
					{"date": "2025-06-08", "interest": 65}
				]
			}
		]
	}`

	points, err := ParseInterestResponse([]byte(body), "Best Laptops")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(points))
	}
	if points[0].Date != "2025-06-01" || points[0].Interest != 55 {
		t.Errorf("Unexpected first point: %+v", points[0])
	}
}

func TestParseInterestResponse_TermAbsentMeansNoData(t *testing.T) {
	body := `{"status": "success", "data": []}`

	points, err := ParseInterestResponse([]byte(body), "obscure term")
	if err != nil {
		t.Fatalf("Expected no error for recognized-but-empty, got: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("Expected no points, got %d", len(points))
	}
}

func TestParseInterestResponse_ErrorStatus(t *testing.T) {
	body := `{"status": "error", "message": "quota exceeded"}`

	_, err := ParseInterestResponse([]byte(body), "best laptops")
	if err == nil {
		t.Fatal("Expected error for error status")
	}
}

func TestParseInterestResponse_MalformedJSON(t *testing.T) {
	if _, err := ParseInterestResponse([]byte("<html>503</html>"), "x"); err == nil {
		t.Error("Expected error for non-JSON body")
	}
	if _, err := ParseInterestResponse(nil, "x"); err == nil {
		t.Error("Expected error for empty body")
	}
}

func TestBucketMonthly_AveragesAndSorts(t *testing.T) {
	points := []InterestPoint{
		{Date: "2025-07-06", Interest: 80},
		{Date: "2025-06-01", Interest: 40},
		{Date: "2025-06-08", Interest: 60},
		{Date: "2025-05-25", Interest: 30},
	}

	series := BucketMonthly("best laptops", points)
	if len(series) != 3 {
		t.Fatalf("Expected 3 monthly buckets, got %d", len(series))
	}

	wantPeriods := []string{"2025-05", "2025-06", "2025-07"}
	wantValues := []float64{30, 50, 80}
	for i := range wantPeriods {
		if series[i].Period != wantPeriods[i] {
			t.Errorf("Expected period %s at index %d, got %s", wantPeriods[i], i, series[i].Period)
		}
		if series[i].Value != wantValues[i] {
			t.Errorf("Expected value %f for %s, got %f", wantValues[i], series[i].Period, series[i].Value)
		}
		if series[i].Term != "best laptops" {
			t.Errorf("Bucket %d carries wrong term %q", i, series[i].Term)
		}
	}
}

func TestBucketMonthly_SkipsTruncatedDates(t *testing.T) {
	points := []InterestPoint{
		{Date: "2025", Interest: 99},
		{Date: "2025-06-01", Interest: 50},
	}
	series := BucketMonthly("x", points)
	if len(series) != 1 {
		t.Fatalf("Expected 1 bucket, got %d", len(series))
	}
	if series[0].Period != "2025-06" {
		t.Errorf("Unexpected period %s", series[0].Period)
	}
}
