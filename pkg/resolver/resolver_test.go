package resolver

import (
	"context"
	"fmt"
	"testing"

	"zeroclick-go/pkg/volume"
)

// stubProvider returns a fixed result and counts its invocations.
type stubProvider struct {
	tag    SourceTag
	result ResolutionResult
	calls  int
}

func (s *stubProvider) Tag() SourceTag { return s.tag }

func (s *stubProvider) Lookup(ctx context.Context, term string) ResolutionResult {
	s.calls++
	return s.result
}

func TestResolve_FallsBackPastFailingRemote(t *testing.T) {
	store := volume.NewStore(volume.SampleDataset(), volume.OriginSample)
	remote := &stubProvider{
		tag:    SourceRemote,
		result: ProviderError(fmt.Errorf("trends service unreachable")),
	}
	r := NewTermVolumeResolver(remote, NewLocalSampleProvider(store))

	result, trace, err := r.Resolve(context.Background(), "best laptops", []SourceTag{SourceRemote, SourceLocal})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Outcome != OutcomeFound {
		t.Fatalf("Expected found via fallback, got %s", result.Outcome)
	}
	if result.Source != SourceLocal {
		t.Errorf("Expected local source, got %s", result.Source)
	}

	if len(trace) != 2 {
		t.Fatalf("Expected 2 trace entries, got %d", len(trace))
	}
	if trace[0].Provider != SourceRemote || trace[0].Outcome != OutcomeError {
		t.Errorf("Unexpected first trace entry: %+v", trace[0])
	}
	if trace[0].Error == "" {
		t.Error("Expected provider error preserved in trace")
	}
	if trace[1].Provider != SourceLocal || trace[1].Outcome != OutcomeFound {
		t.Errorf("Unexpected second trace entry: %+v", trace[1])
	}
}

func TestResolve_ShortCircuitsOnFirstFound(t *testing.T) {
	series := volume.Series{{Term: "best laptops", Period: "2025-06", Value: 80}}
	remote := &stubProvider{
		tag:    SourceRemote,
		result: Found(series, volume.UnitRelative, SourceRemote),
	}
	local := &stubProvider{tag: SourceLocal, result: NotFound()}
	r := NewTermVolumeResolver(remote, local)

	result, trace, err := r.Resolve(context.Background(), "best laptops", []SourceTag{SourceRemote, SourceLocal})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Source != SourceRemote {
		t.Errorf("Expected remote source, got %s", result.Source)
	}
	if local.calls != 0 {
		t.Errorf("Expected local provider untouched, got %d calls", local.calls)
	}
	if len(trace) != 1 {
		t.Errorf("Expected 1 trace entry, got %d", len(trace))
	}
}

func TestResolve_AllFailuresMaskToNotFound(t *testing.T) {
	remote := &stubProvider{
		tag:    SourceRemote,
		result: ProviderError(fmt.Errorf("boom")),
	}
	local := &stubProvider{tag: SourceLocal, result: NotFound()}
	r := NewTermVolumeResolver(remote, local)

	result, trace, err := r.Resolve(context.Background(), "anything", []SourceTag{SourceRemote, SourceLocal})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Outcome != OutcomeNotFound {
		t.Fatalf("Expected not found, got %s", result.Outcome)
	}

	// The error stays visible in the trace only.
	if trace[0].Outcome != OutcomeError || trace[0].Error != "boom" {
		t.Errorf("Expected error trace entry, got %+v", trace[0])
	}
}

func TestResolve_RejectsBadInput(t *testing.T) {
	store := volume.NewStore(volume.SampleDataset(), volume.OriginSample)
	r := NewTermVolumeResolver(NewLocalSampleProvider(store))

	if _, _, err := r.Resolve(context.Background(), "", []SourceTag{SourceLocal}); err == nil {
		t.Error("Expected error for empty term")
	}
	if _, _, err := r.Resolve(context.Background(), "best laptops", nil); err == nil {
		t.Error("Expected error for empty provider order")
	}
	if _, _, err := r.Resolve(context.Background(), "best laptops", []SourceTag{"carrier-pigeon"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestResolve_StrictOrder(t *testing.T) {
	store := volume.NewStore(volume.SampleDataset(), volume.OriginSample)
	remote := &stubProvider{
		tag:    SourceRemote,
		result: Found(volume.Series{{Term: "best laptops", Period: "2025-06", Value: 70}}, volume.UnitRelative, SourceRemote),
	}
	r := NewTermVolumeResolver(remote, NewLocalSampleProvider(store))

	// Local first: the remote provider must not be consulted.
	result, _, err := r.Resolve(context.Background(), "best laptops", []SourceTag{SourceLocal, SourceRemote})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Source != SourceLocal {
		t.Errorf("Expected local source, got %s", result.Source)
	}
	if result.Unit != volume.UnitAbsolute {
		t.Errorf("Expected absolute unit, got %s", result.Unit)
	}
	if remote.calls != 0 {
		t.Errorf("Expected remote untouched, got %d calls", remote.calls)
	}
}
