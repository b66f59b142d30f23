package dataset

import (
	"strconv"
	"time"

	"guesslab/domain/core"
)

// Canonical column names for the guess dataset
const (
	ColResponse  = "response"
	ColCategory  = "category"
	ColTimestamp = "timestamp"
	ColCluster   = "cluster"
)

// TimeLayout is the serialization form for timestamps: ISO-8601 at minute
// resolution, which sorts lexically in generation order.
const TimeLayout = "2006-01-02T15:04"

// Kind identifies the element type of a column
type Kind int

const (
	KindInt Kind = iota
	KindString
	KindTime
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	}
	return "unknown"
}

// Value is a single cell of a column. It is comparable, so it can key a
// frequency map, and carries a deterministic natural order within its kind.
type Value struct {
	Kind Kind
	Int  int64
	Str  string
	Unix int64 // KindTime only, seconds since epoch
}

// IntValue wraps an integer cell
func IntValue(v int64) Value {
	return Value{Kind: KindInt, Int: v}
}

// StringValue wraps a string cell
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// TimeValue wraps a timestamp cell
func TimeValue(t time.Time) Value {
	return Value{Kind: KindTime, Unix: t.Unix()}
}

// Less reports the natural order of two values of the same kind:
// numeric for ints, lexical for strings, chronological for times.
func (v Value) Less(o Value) bool {
	switch v.Kind {
	case KindInt:
		return v.Int < o.Int
	case KindString:
		return v.Str < o.Str
	case KindTime:
		return v.Unix < o.Unix
	}
	return false
}

// String renders the value the way the CSV store serializes it
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindString:
		return v.Str
	case KindTime:
		return time.Unix(v.Unix, 0).UTC().Format(TimeLayout)
	}
	return ""
}

// Column is one named, typed column of a dataset. Exactly one of the backing
// slices is populated, matching Kind.
type Column struct {
	Name  string
	Kind  Kind
	Ints  []int64
	Strs  []string
	Times []time.Time
}

// IntColumn builds an integer column
func IntColumn(name string, vals []int64) Column {
	return Column{Name: name, Kind: KindInt, Ints: vals}
}

// StringColumn builds a string column
func StringColumn(name string, vals []string) Column {
	return Column{Name: name, Kind: KindString, Strs: vals}
}

// TimeColumn builds a timestamp column
func TimeColumn(name string, vals []time.Time) Column {
	return Column{Name: name, Kind: KindTime, Times: vals}
}

// Len returns the number of rows in the column
func (c *Column) Len() int {
	switch c.Kind {
	case KindInt:
		return len(c.Ints)
	case KindString:
		return len(c.Strs)
	case KindTime:
		return len(c.Times)
	}
	return 0
}

// Value returns the cell at row i
func (c *Column) Value(i int) Value {
	switch c.Kind {
	case KindInt:
		return IntValue(c.Ints[i])
	case KindString:
		return StringValue(c.Strs[i])
	case KindTime:
		return TimeValue(c.Times[i])
	}
	return Value{}
}

// Float64s returns the column as a numeric feature vector. Only integer
// columns are numeric in this schema.
func (c *Column) Float64s() ([]float64, bool) {
	if c.Kind != KindInt {
		return nil, false
	}
	out := make([]float64, len(c.Ints))
	for i, v := range c.Ints {
		out[i] = float64(v)
	}
	return out, true
}

// Dataset is an ordered rectangular table. Row count is fixed at creation;
// downstream stages may only append or replace whole columns of the same
// length, never change row count or order.
type Dataset struct {
	cols []Column
}

// New builds a dataset from columns, validating the rectangular shape
func New(cols ...Column) (*Dataset, error) {
	if len(cols) == 0 {
		return nil, core.NewInvalidArgumentError("columns", "must not be empty")
	}
	n := cols[0].Len()
	seen := make(map[string]bool, len(cols))
	for i := range cols {
		if cols[i].Name == "" {
			return nil, core.NewInvalidArgumentError("column name", "must not be empty")
		}
		if seen[cols[i].Name] {
			return nil, core.NewInvalidArgumentError("column "+cols[i].Name, "declared twice")
		}
		seen[cols[i].Name] = true
		if cols[i].Len() != n {
			return nil, core.NewInvalidArgumentError("column "+cols[i].Name, "length mismatch")
		}
	}
	return &Dataset{cols: cols}, nil
}

// Len returns the row count
func (d *Dataset) Len() int {
	if len(d.cols) == 0 {
		return 0
	}
	return d.cols[0].Len()
}

// ColumnNames returns the schema in declaration order
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.cols))
	for i := range d.cols {
		names[i] = d.cols[i].Name
	}
	return names
}

// HasColumn checks whether a column is part of the schema
func (d *Dataset) HasColumn(name string) bool {
	for i := range d.cols {
		if d.cols[i].Name == name {
			return true
		}
	}
	return false
}

// Column looks up a column by name
func (d *Dataset) Column(name string) (*Column, error) {
	for i := range d.cols {
		if d.cols[i].Name == name {
			return &d.cols[i], nil
		}
	}
	return nil, core.NewUnknownColumnError(name)
}

// SetColumn appends a column, or replaces it wholesale if the name already
// exists. The column must match the dataset's row count.
func (d *Dataset) SetColumn(col Column) error {
	if col.Len() != d.Len() {
		return core.NewInvalidArgumentError("column "+col.Name, "length mismatch")
	}
	for i := range d.cols {
		if d.cols[i].Name == col.Name {
			d.cols[i] = col
			return nil
		}
	}
	d.cols = append(d.cols, col)
	return nil
}
