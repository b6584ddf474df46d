package resolver

import (
	"bytes"
	"context"
	"fmt"

	"zeroclick-go/pkg/logger"
	"zeroclick-go/pkg/volume"
)

// UploadedFileProvider accepts user-supplied CSV tables and swaps them in as
// the active dataset. Load is all-or-nothing: a table missing any required
// column is rejected with a SchemaError and the previous dataset stays
// active. Lookups answer only while the active dataset is upload-origin.
type UploadedFileProvider struct {
	store *volume.Store
	log   *logger.Logger
}

func NewUploadedFileProvider(store *volume.Store) *UploadedFileProvider {
	return &UploadedFileProvider{
		store: store,
		log:   logger.GetLogger().WithField("component", "uploaded_provider"),
	}
}

func (p *UploadedFileProvider) Tag() SourceTag {
	return SourceUploaded
}

// Load parses raw CSV bytes and atomically replaces the active dataset.
// Returns the new snapshot ID. A *volume.SchemaError is returned unwrapped so
// callers can surface its message directly.
func (p *UploadedFileProvider) Load(raw []byte) (string, error) {
	dataset, err := volume.DecodeCSV(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	if len(dataset) == 0 {
		return "", fmt.Errorf("uploaded table contains no data rows")
	}

	snapshotID := p.store.Replace(dataset, volume.OriginUpload)
	p.log.WithFields(map[string]interface{}{
		"snapshot_id": snapshotID,
		"rows":        len(dataset),
		"terms":       len(dataset.Terms()),
	}).Info("Active dataset replaced from upload")
	return snapshotID, nil
}

// Lookup behaves as LocalSampleProvider against the uploaded table. Before a
// successful upload (or after a sample-origin replace) it has no table of its
// own and reports NotFound.
func (p *UploadedFileProvider) Lookup(ctx context.Context, term string) ResolutionResult {
	if p.store.Origin() != volume.OriginUpload {
		return NotFound()
	}
	dataset, _ := p.store.Snapshot()
	series := matchTerm(dataset, term)
	if len(series) == 0 {
		return NotFound()
	}
	return Found(series, volume.UnitAbsolute, SourceUploaded)
}
