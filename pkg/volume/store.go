package volume

import (
	"sync"

	"github.com/google/uuid"
)

// Origin records where the active dataset came from.
type Origin string

const (
	// OriginSample covers the built-in rows and the persisted startup file.
	OriginSample Origin = "sample"
	// OriginUpload marks a table loaded from a user-supplied CSV.
	OriginUpload Origin = "upload"
)

// Store owns the process-wide active dataset. The table is only ever swapped
// wholesale, so a replace either fully lands or leaves the previous snapshot
// intact.
type Store struct {
	mu         sync.RWMutex
	records    Dataset
	origin     Origin
	snapshotID string
}

func NewStore(d Dataset, origin Origin) *Store {
	return &Store{
		records:    cloneDataset(d),
		origin:     origin,
		snapshotID: uuid.NewString(),
	}
}

// Snapshot returns a copy of the active dataset and its snapshot ID.
func (s *Store) Snapshot() (Dataset, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDataset(s.records), s.snapshotID
}

// Replace swaps in a new dataset and returns the new snapshot ID.
func (s *Store) Replace(d Dataset, origin Origin) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = cloneDataset(d)
	s.origin = origin
	s.snapshotID = uuid.NewString()
	return s.snapshotID
}

// Origin reports where the active dataset came from.
func (s *Store) Origin() Origin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.origin
}

// Terms returns the distinct terms of the active dataset.
func (s *Store) Terms() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records.Terms()
}

// Len returns the number of rows in the active dataset.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func cloneDataset(d Dataset) Dataset {
	out := make(Dataset, len(d))
	copy(out, d)
	return out
}
