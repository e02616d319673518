// internal/core/services/export.go
package services

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx/v3"

	"github.com/vegatek/stocktake/internal/core/domain"
)

// excelHeaders are the column titles of the exported count sheet.
var excelHeaders = []string{
	"Stock Code", "Stock Name", "Quantity", "Depot", "Note", "Count Type", "Year", "Month",
}

// ExportExcel writes the current count list as an .xlsx workbook so the
// counter can be checked offline before submission.
func (s *CountSession) ExportExcel(w io.Writer) error {
	items := s.Items()
	if err := writeExcel(items, w); err != nil {
		return err
	}
	s.logger.Info("count list exported",
		"entries", len(items))
	return nil
}

func writeExcel(items []domain.CountItem, w io.Writer) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Stock Count")
	if err != nil {
		return fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range excelHeaders {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
	}

	for _, item := range items {
		row := sheet.AddRow()
		for _, value := range []string{
			item.StockCode,
			item.StockName,
			item.Quantity.String(),
			item.DepotName,
			item.Note,
			item.CountType,
			fmt.Sprintf("%d", item.Year),
			fmt.Sprintf("%d", item.Month),
		} {
			row.AddCell().Value = value
		}
	}

	for i := range excelHeaders {
		sheet.SetColWidth(i, i, 15)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
