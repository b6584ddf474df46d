package resolver

import (
	"context"
	"strings"

	"zeroclick-go/pkg/volume"
)

// LocalSampleProvider answers from the active in-memory dataset. It is a pure
// read-side scan and has no error path.
type LocalSampleProvider struct {
	store *volume.Store
}

func NewLocalSampleProvider(store *volume.Store) *LocalSampleProvider {
	return &LocalSampleProvider{store: store}
}

func (p *LocalSampleProvider) Tag() SourceTag {
	return SourceLocal
}

// Lookup collects every record whose term matches case-insensitively and
// returns them ordered by period. Duplicate periods keep the first row seen.
func (p *LocalSampleProvider) Lookup(ctx context.Context, term string) ResolutionResult {
	dataset, _ := p.store.Snapshot()
	series := matchTerm(dataset, term)
	if len(series) == 0 {
		return NotFound()
	}
	return Found(series, volume.UnitAbsolute, SourceLocal)
}

func matchTerm(dataset volume.Dataset, term string) volume.Series {
	var series volume.Series
	seen := make(map[string]struct{})
	for _, r := range dataset {
		if !strings.EqualFold(r.Term, term) {
			continue
		}
		if _, dup := seen[r.Period]; dup {
			continue
		}
		seen[r.Period] = struct{}{}
		series = append(series, r)
	}
	series.SortByPeriod()
	return series
}
