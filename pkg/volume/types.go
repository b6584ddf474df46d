package volume

import "sort"

// Unit tags which scale a series carries. Local and uploaded datasets hold
// absolute monthly search counts; the remote trends service returns a 0-100
// relative-interest score.
type Unit string

const (
	UnitAbsolute Unit = "absolute"
	UnitRelative Unit = "relative"
)

// VolumeRecord is one (term, month, value) observation.
type VolumeRecord struct {
	Term   string  `json:"term"`
	Period string  `json:"period"` // YYYY-MM
	Value  float64 `json:"value"`
}

// Series is the records of a single term, ordered by period ascending with
// unique periods.
type Series []VolumeRecord

// Dataset is the unordered backing table for the local and uploaded
// providers. It may hold multiple terms and is always replaced wholesale,
// never patched.
type Dataset []VolumeRecord

// SortByPeriod orders the series by period ascending. YYYY-MM sorts
// lexicographically.
func (s Series) SortByPeriod() {
	sort.Slice(s, func(i, j int) bool { return s[i].Period < s[j].Period })
}

// Mean returns the average value across the series, or 0 for an empty one.
func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, r := range s {
		sum += r.Value
	}
	return sum / float64(len(s))
}

// Terms returns the distinct terms of the dataset in first-seen order.
func (d Dataset) Terms() []string {
	seen := make(map[string]struct{}, len(d))
	terms := make([]string, 0)
	for _, r := range d {
		if _, ok := seen[r.Term]; ok {
			continue
		}
		seen[r.Term] = struct{}{}
		terms = append(terms, r.Term)
	}
	return terms
}
