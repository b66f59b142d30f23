package ports

import (
	"guesslab/domain/dataset"
)

// DatasetStore persists datasets as flat tabular files and loads them back
// with the typed schema intact
type DatasetStore interface {
	Save(ds *dataset.Dataset, path string) error
	Load(path string) (*dataset.Dataset, error)
}
