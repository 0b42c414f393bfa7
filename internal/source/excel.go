package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelFileSource reads the form responses from a local XLSX workbook,
// for deployments where the sheet is exported and dropped next to the
// binary instead of fetched over the network.
type ExcelFileSource struct {
	path  string
	sheet string
}

func NewExcelFileSource(path, sheet string) *ExcelFileSource {
	if sheet == "" {
		sheet = DefaultSheetName
	}
	return &ExcelFileSource{path: path, sheet: sheet}
}

func (s *ExcelFileSource) FetchRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	return workbookRows(f, s.sheet)
}

func workbookRows(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
