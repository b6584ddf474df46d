package resolver

import (
	"context"

	"zeroclick-go/pkg/volume"
)

// SourceTag identifies a provider in a caller-supplied resolution order.
type SourceTag string

const (
	SourceLocal    SourceTag = "local"
	SourceUploaded SourceTag = "uploaded"
	SourceRemote   SourceTag = "remote"
)

// Outcome classifies a single provider lookup.
type Outcome string

const (
	OutcomeFound    Outcome = "found"
	OutcomeNotFound Outcome = "not_found"
	OutcomeError    Outcome = "error"
)

// ResolutionResult is the tagged outcome of a lookup. Err is set only for
// OutcomeError; Series, Unit and Source are set only for OutcomeFound.
type ResolutionResult struct {
	Outcome Outcome
	Series  volume.Series
	Unit    volume.Unit
	Source  SourceTag
	Err     error
}

func Found(series volume.Series, unit volume.Unit, source SourceTag) ResolutionResult {
	return ResolutionResult{Outcome: OutcomeFound, Series: series, Unit: unit, Source: source}
}

func NotFound() ResolutionResult {
	return ResolutionResult{Outcome: OutcomeNotFound}
}

func ProviderError(err error) ResolutionResult {
	return ResolutionResult{Outcome: OutcomeError, Err: err}
}

// Provider answers "give me the volume/interest series for this term" from
// one data source. A provider must never panic or leak transport faults; it
// reports them as an OutcomeError result.
type Provider interface {
	Tag() SourceTag
	Lookup(ctx context.Context, term string) ResolutionResult
}
