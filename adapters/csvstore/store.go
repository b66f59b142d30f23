package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"guesslab/domain/dataset"
)

// Store reads and writes datasets as CSV with a header row. Timestamps are
// serialized at minute resolution so files sort and diff cleanly.
type Store struct{}

// NewStore creates a CSV dataset store
func NewStore() *Store {
	return &Store{}
}

// Save writes the dataset to path, header first, rows in order
func (s *Store) Save(ds *dataset.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	names := ds.ColumnNames()
	if err := w.Write(names); err != nil {
		return err
	}

	cols := make([]*dataset.Column, len(names))
	for i, name := range names {
		col, err := ds.Column(name)
		if err != nil {
			return err
		}
		cols[i] = col
	}

	row := make([]string, len(cols))
	for i := 0; i < ds.Len(); i++ {
		for j, col := range cols {
			row[j] = col.Value(i).String()
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// Load reads a CSV written by Save and reconstructs the typed schema:
// response and cluster columns as integers, timestamp as time, everything
// else as strings.
func (s *Store) Load(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv %s: missing header row", path)
	}

	header := records[0]
	rows := records[1:]

	cols := make([]dataset.Column, len(header))
	for j, name := range header {
		col, err := parseColumn(name, rows, j)
		if err != nil {
			return nil, fmt.Errorf("csv %s: %w", path, err)
		}
		cols[j] = col
	}
	return dataset.New(cols...)
}

func parseColumn(name string, rows [][]string, idx int) (dataset.Column, error) {
	switch name {
	case dataset.ColResponse, dataset.ColCluster:
		vals := make([]int64, len(rows))
		for i, row := range rows {
			v, err := strconv.ParseInt(row[idx], 10, 64)
			if err != nil {
				return dataset.Column{}, fmt.Errorf("column %q row %d: %w", name, i+1, err)
			}
			vals[i] = v
		}
		return dataset.IntColumn(name, vals), nil
	case dataset.ColTimestamp:
		vals := make([]time.Time, len(rows))
		for i, row := range rows {
			t, err := time.Parse(dataset.TimeLayout, row[idx])
			if err != nil {
				return dataset.Column{}, fmt.Errorf("column %q row %d: %w", name, i+1, err)
			}
			vals[i] = t
		}
		return dataset.TimeColumn(name, vals), nil
	default:
		vals := make([]string, len(rows))
		for i, row := range rows {
			vals[i] = row[idx]
		}
		return dataset.StringColumn(name, vals), nil
	}
}
