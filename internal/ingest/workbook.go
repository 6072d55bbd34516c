package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported file format, expected .xlsx, .xlsm or .xls")

// Workbook is a read-only view of a spreadsheet file.
type Workbook interface {
	SheetNames() []string
	Rows(sheet string) ([][]string, error)
	Close() error
}

// IsSupported reports whether filename has a spreadsheet extension this
// package can read.
func IsSupported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".xls":
		return true
	}
	return false
}

func OpenWorkbook(data []byte, filename string) (Workbook, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		return &xlsxWorkbook{file: f}, nil
	case ".xls":
		wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("failed to open legacy workbook: %w", err)
		}
		return newXLSWorkbook(wb), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

type xlsxWorkbook struct {
	file *excelize.File
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.file.GetSheetList()
}

func (w *xlsxWorkbook) Rows(sheet string) ([][]string, error) {
	return w.file.GetRows(sheet)
}

func (w *xlsxWorkbook) Close() error {
	return w.file.Close()
}

type xlsWorkbook struct {
	book   *xls.WorkBook
	names  []string
	sheets map[string]*xls.WorkSheet
}

func newXLSWorkbook(book *xls.WorkBook) *xlsWorkbook {
	w := &xlsWorkbook{book: book, sheets: make(map[string]*xls.WorkSheet)}
	for i := 0; i < book.NumSheets(); i++ {
		sheet := book.GetSheet(i)
		if sheet == nil {
			continue
		}
		w.names = append(w.names, sheet.Name)
		w.sheets[sheet.Name] = sheet
	}
	return w
}

func (w *xlsWorkbook) SheetNames() []string {
	return w.names
}

func (w *xlsWorkbook) Rows(name string) ([][]string, error) {
	sheet, ok := w.sheets[name]
	if !ok {
		return nil, fmt.Errorf("sheet %q not found", name)
	}
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			cells[c] = row.Col(c)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func (w *xlsWorkbook) Close() error {
	return nil
}
