package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const sheetFetchRetries = 3

// SheetCSVSource reads a Google Sheets document through its CSV export
// URL (the "publish to web" link). No service-account credentials are
// needed; the sheet just has to be readable by link.
type SheetCSVSource struct {
	url        string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewSheetCSVSource(url string, log zerolog.Logger) *SheetCSVSource {
	return &SheetCSVSource{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

func (s *SheetCSVSource) FetchRows(ctx context.Context) ([][]string, error) {
	var resp *http.Response
	var lastErr error
	for attempt := 0; attempt < sheetFetchRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
		if err != nil {
			return nil, fmt.Errorf("invalid sheet URL: %w", err)
		}
		resp, lastErr = s.httpClient.Do(req)
		if lastErr == nil {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt < sheetFetchRetries-1 {
			s.log.Warn().Err(lastErr).Int("attempt", attempt+1).Msg("sheet fetch failed, retrying")
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("failed to fetch sheet after %d attempts: %w", sheetFetchRetries, lastErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet export returned status %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1 // form responses have ragged rows
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheet CSV: %w", err)
	}

	s.log.Debug().Int("rows", len(rows)).Msg("fetched sheet rows")
	return rows, nil
}
