package source

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"plate-bot/internal/storage"
)

// ObjectWorkbookSource downloads the XLSX workbook from R2/S3 and parses
// it in memory.
type ObjectWorkbookSource struct {
	client *storage.R2Client
	key    string
	sheet  string
}

func NewObjectWorkbookSource(client *storage.R2Client, key, sheet string) *ObjectWorkbookSource {
	if sheet == "" {
		sheet = DefaultSheetName
	}
	return &ObjectWorkbookSource{client: client, key: key, sheet: sheet}
}

func (s *ObjectWorkbookSource) FetchRows(ctx context.Context) ([][]string, error) {
	data, err := s.client.Download(ctx, s.key)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", s.key, err)
	}
	defer f.Close()

	return workbookRows(f, s.sheet)
}
