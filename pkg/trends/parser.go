package trends

import (
	"encoding/json"
	"fmt"
	"strings"

	"zeroclick-go/pkg/volume"
)

// InterestPoint is one dated relative-interest observation (0-100) as
// returned by the trends service. Dates arrive as YYYY-MM-DD; the service
// reports weekly points for the three-month window.
type InterestPoint struct {
	Date     string  `json:"date"`
	Interest float64 `json:"interest"`
}

// interestResponse is the raw trends service envelope.
type interestResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    []struct {
		Keyword string          `json:"keyword"`
		Points  []InterestPoint `json:"points"`
	} `json:"data"`
}

// ParseInterestResponse extracts the points for term from a raw service
// response. A success envelope without the term (or with no points) yields an
// empty slice and nil error - the term is recognized but has no data.
func ParseInterestResponse(body []byte, term string) ([]InterestPoint, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response body from trends API")
	}

	var resp interestResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode trends response: %w", err)
	}

	if resp.Status != "success" {
		if resp.Message != "" {
			return nil, fmt.Errorf("trends API returned status %q: %s", resp.Status, resp.Message)
		}
		return nil, fmt.Errorf("trends API returned status %q", resp.Status)
	}

	for _, entry := range resp.Data {
		if strings.EqualFold(entry.Keyword, term) {
			return entry.Points, nil
		}
	}
	return nil, nil
}

// BucketMonthly folds dated points into per-month records by averaging the
// interest of every point that falls in the month. The result is a valid
// series: one record per period, ordered ascending, all carrying term.
func BucketMonthly(term string, points []InterestPoint) volume.Series {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, p := range points {
		if len(p.Date) < 7 {
			continue
		}
		month := p.Date[:7]
		sums[month] += p.Interest
		counts[month]++
	}

	series := make(volume.Series, 0, len(sums))
	for month, sum := range sums {
		series = append(series, volume.VolumeRecord{
			Term:   term,
			Period: month,
			Value:  sum / float64(counts[month]),
		})
	}
	series.SortByPeriod()
	return series
}
