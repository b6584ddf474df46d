package trends

import (
	"context"
	"fmt"

	"zeroclick-go/pkg/logger"
	"zeroclick-go/pkg/resolver"
	"zeroclick-go/pkg/volume"
)

// RemoteTrendsProvider resolves a term through the external trends service.
// Every transport, parse or service-side failure is converted into a provider
// error result so the resolver can fall through to the next provider; nothing
// escapes as a fault. Values are relative interest (0-100), not absolute
// volume.
type RemoteTrendsProvider struct {
	client *Client
	log    *logger.Logger
}

// NewRemoteTrendsProvider wraps a trends client. A nil client is legal and
// yields a provider error on every lookup, mirroring a service that was never
// configured.
func NewRemoteTrendsProvider(client *Client) *RemoteTrendsProvider {
	return &RemoteTrendsProvider{
		client: client,
		log:    logger.GetLogger().WithField("component", "remote_trends_provider"),
	}
}

func (p *RemoteTrendsProvider) Tag() resolver.SourceTag {
	return resolver.SourceRemote
}

func (p *RemoteTrendsProvider) Lookup(ctx context.Context, term string) resolver.ResolutionResult {
	if p.client == nil {
		return resolver.ProviderError(fmt.Errorf("trends client not initialized"))
	}

	points, err := p.client.InterestOverTime(ctx, term)
	if err != nil {
		return resolver.ProviderError(err)
	}
	if len(points) == 0 {
		return resolver.NotFound()
	}

	series := BucketMonthly(term, points)
	if len(series) == 0 {
		return resolver.NotFound()
	}
	return resolver.Found(series, volume.UnitRelative, resolver.SourceRemote)
}
