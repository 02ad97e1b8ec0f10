// README: UI config store; reads action rows from a Google Sheet tab.
package uiconfig

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// Store reads the UI tab of the configured spreadsheet.
type Store struct {
	sheets  *sheets.Service
	sheetID string
	tab     string
}

// NewStore returns a Store reading the named tab of the given spreadsheet.
func NewStore(svc *sheets.Service, sheetID, tab string) *Store {
	return &Store{sheets: svc, sheetID: sheetID, tab: tab}
}

// Fetch reads the whole tab and normalizes its rows. The first row is the
// header; a tab with no data rows yields an empty slice, not an error.
func (s *Store) Fetch(ctx context.Context) ([]ActionItem, error) {
	resp, err := s.sheets.Spreadsheets.Values.Get(s.sheetID, s.tab).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets read %s!%s: %w", s.sheetID, s.tab, err)
	}

	values := resp.Values
	if len(values) < 2 {
		return []ActionItem{}, nil
	}

	headers := make([]string, len(values[0]))
	for i, h := range values[0] {
		headers[i] = fmt.Sprint(h)
	}

	items := make([]ActionItem, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := map[string]string{}
		for i, cell := range raw {
			if i < len(headers) {
				row[headers[i]] = fmt.Sprint(cell)
			}
		}
		items = append(items, normalizeRow(row))
	}
	return prepare(items), nil
}
