package xlsx

import (
	"github.com/xuri/excelize/v2"

	"guesslab/domain/dataset"
)

// Exporter writes the dataset as a single flat sheet, the same table the CSV
// store produces. Opt-in from the CLI; the CSV file remains the canonical
// persisted form.
type Exporter struct{}

// NewExporter creates an XLSX exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the dataset to an .xlsx workbook at path
func (e *Exporter) Export(ds *dataset.Dataset, path string) error {
	f := excelize.NewFile()

	sheet := "Sheet1"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	names := ds.ColumnNames()
	for j, name := range names {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	cols := make([]*dataset.Column, len(names))
	for j, name := range names {
		col, err := ds.Column(name)
		if err != nil {
			return err
		}
		cols[j] = col
	}

	for i := 0; i < ds.Len(); i++ {
		for j, col := range cols {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, col.Value(i).String()); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
