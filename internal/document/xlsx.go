package document

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	QuoteSheet   = "견적서"
	InvoiceSheet = "거래명세표"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// WriteXLSX renders the set as a two-sheet workbook.
func WriteXLSX(set Set) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), QuoteSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(InvoiceSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	if err := writeQuote(f, set.Quote, money, bold); err != nil {
		return nil, err
	}
	if err := writeInvoice(f, set.Invoice, money, bold); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(col, row int, value interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(w.sheet, cell, value)
}

func (w *sheetWriter) style(col, row, styleID int) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, cell, cell, styleID)
}

func writeQuote(f *excelize.File, q Quote, money, bold int) error {
	w := &sheetWriter{f: f, sheet: QuoteSheet}

	w.set(1, 1, q.Title)
	w.style(1, 1, bold)
	w.set(1, 2, "상품명")
	w.set(2, 2, q.BundleName)
	w.set(1, 4, "카테고리")
	w.set(2, 4, "상품명")
	w.style(1, 4, bold)
	w.style(2, 4, bold)

	row := 5
	for _, r := range q.Rows {
		w.set(1, row, r.CategoryName)
		w.set(2, row, r.ProductName)
		row++
	}

	w.set(1, row+1, "총 액")
	w.style(1, row+1, bold)
	w.set(2, row+1, q.Total)
	w.style(2, row+1, money)

	if w.err != nil {
		return fmt.Errorf("failed to write quote sheet: %w", w.err)
	}
	return nil
}

func writeInvoice(f *excelize.File, inv Invoice, money, bold int) error {
	w := &sheetWriter{f: f, sheet: InvoiceSheet}

	w.set(1, 1, inv.Title)
	w.style(1, 1, bold)
	w.set(1, 2, "상품명")
	w.set(2, 2, inv.BundleName)
	for i, h := range []string{"카테고리", "상품명", "부품명", "원가"} {
		w.set(i+1, 4, h)
		w.style(i+1, 4, bold)
	}

	row := 5
	for _, r := range inv.Rows {
		w.set(1, row, r.CategoryName)
		w.set(2, row, r.ProductName)
		w.set(3, row, r.Name)
		if r.Cost != nil {
			w.set(4, row, *r.Cost)
			w.style(4, row, money)
		} else {
			w.set(4, row, Missing)
		}
		row++
	}

	w.set(3, row, "원가 총액")
	w.style(3, row, bold)
	w.set(4, row, inv.TotalCost)
	w.style(4, row, money)

	if w.err != nil {
		return fmt.Errorf("failed to write invoice sheet: %w", w.err)
	}
	return nil
}
