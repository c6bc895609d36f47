// Package xlsx persists converted tables as single-sheet XLSX workbooks.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lenscatalog/xml2xlsx/internal/domain"
)

// sheetName is the single sheet every workbook carries
const sheetName = "Sheet1"

// Writer saves tables with excelize's stream writer, which keeps memory flat
// even for sheets near the 1,048,576-row ceiling.
type Writer struct{}

// NewWriter creates a new workbook writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write saves the table to path: the header row first, then one sheet row
// per table row in insertion order.
func (w *Writer) Write(table *domain.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("create stream writer: %w", err)
	}

	if err := writeRow(sw, 1, table.Columns); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if err := writeRow(sw, i+2, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush stream writer: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// writeRow sets one sheet row starting at column A
func writeRow(sw *excelize.StreamWriter, rowNum int, values []string) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}

	anchor, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row %d anchor: %w", rowNum, err)
	}
	if err := sw.SetRow(anchor, cells); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}
