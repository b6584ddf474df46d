package storage

import "zeroclick-go/pkg/volume"

// DatasetPersister round-trips the active dataset through durable storage.
type DatasetPersister interface {
	Write(d volume.Dataset) error
	Read() (volume.Dataset, error)
}
