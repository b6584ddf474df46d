package resolver

import (
	"context"
	"fmt"

	"zeroclick-go/pkg/logger"
)

// TraceEntry records one provider attempt for observability. The trace is
// auxiliary output; callers must not use it for control flow.
type TraceEntry struct {
	Provider SourceTag `json:"provider"`
	Outcome  Outcome   `json:"outcome"`
	Error    string    `json:"error,omitempty"`
}

// TermVolumeResolver tries providers in a caller-supplied order and returns
// the first Found result. A provider error is recorded and skipped, never
// fatal to the resolution: a broken remote dependency must not prevent the
// local or uploaded fallback from being tried.
type TermVolumeResolver struct {
	providers map[SourceTag]Provider
	log       *logger.Logger
}

func NewTermVolumeResolver(providers ...Provider) *TermVolumeResolver {
	byTag := make(map[SourceTag]Provider, len(providers))
	for _, p := range providers {
		byTag[p.Tag()] = p
	}
	return &TermVolumeResolver{
		providers: byTag,
		log:       logger.GetLogger().WithField("component", "term_volume_resolver"),
	}
}

// Resolve walks order strictly, short-circuiting on the first Found. If every
// provider reports NotFound or an error, the result is NotFound; the trace is
// the only place per-provider errors remain visible.
func (r *TermVolumeResolver) Resolve(ctx context.Context, term string, order []SourceTag) (ResolutionResult, []TraceEntry, error) {
	if term == "" {
		return ResolutionResult{}, nil, fmt.Errorf("term cannot be empty")
	}
	if len(order) == 0 {
		return ResolutionResult{}, nil, fmt.Errorf("provider order cannot be empty")
	}
	for _, tag := range order {
		if _, ok := r.providers[tag]; !ok {
			return ResolutionResult{}, nil, fmt.Errorf("unknown provider: %s", tag)
		}
	}

	trace := make([]TraceEntry, 0, len(order))
	for _, tag := range order {
		result := r.providers[tag].Lookup(ctx, term)

		entry := TraceEntry{Provider: tag, Outcome: result.Outcome}
		if result.Err != nil {
			entry.Error = result.Err.Error()
			r.log.WithError(result.Err).WithFields(map[string]interface{}{
				"provider": string(tag),
				"term":     term,
			}).Warn("Provider failed, trying next")
		}
		trace = append(trace, entry)

		if result.Outcome == OutcomeFound {
			return result, trace, nil
		}
	}

	return NotFound(), trace, nil
}
