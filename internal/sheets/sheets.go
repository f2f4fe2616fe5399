package sheets

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// TabularStore is the narrow spreadsheet capability the tracker needs.
// Row indices are 1-based and count the header as row 1, so the first data
// row is row 2. Tests substitute an in-memory implementation.
type TabularStore interface {
	ReadHeader() ([]string, error)
	ReadAllRecords() ([]map[string]string, error)
	AppendRow(values []string) error
	DeleteRow(index int) error
}

// SheetsStore implements TabularStore against the first worksheet of a
// Google Spreadsheet.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetID       int64 // numeric id of the first worksheet, needed for row deletion
	sheetTitle    string
}

// NewSheetsStore builds the Sheets service from an authenticated client and
// resolves the first worksheet once up front.
func NewSheetsStore(ctx context.Context, client *http.Client, spreadsheetID string) (*SheetsStore, error) {
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	meta, err := svc.Spreadsheets.Get(spreadsheetID).
		Fields("sheets(properties(sheetId,title))").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet %s: %w", spreadsheetID, err)
	}
	if len(meta.Sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no worksheets", spreadsheetID)
	}

	props := meta.Sheets[0].Properties
	return &SheetsStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetID:       props.SheetId,
		sheetTitle:    props.Title,
	}, nil
}

func (s *SheetsStore) rangeRef(a1 string) string {
	return fmt.Sprintf("'%s'!%s", s.sheetTitle, a1)
}

func (s *SheetsStore) ReadHeader() ([]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.rangeRef("1:1")).Do()
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	return cellStrings(resp.Values[0]), nil
}

// ReadAllRecords maps every data row to headerName -> cellValue. Short rows
// are padded with empty strings so lookups never miss a column.
func (s *SheetsStore) ReadAllRecords() ([]map[string]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.rangeRef("A:Z")).Do()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(resp.Values) < 2 {
		return nil, nil
	}

	header := cellStrings(resp.Values[0])
	records := make([]map[string]string, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		cells := cellStrings(row)
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(cells) {
				rec[name] = cells[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *SheetsStore) AppendRow(values []string) error {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.rangeRef("A:E"), &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

// DeleteRow removes one physical row. DeleteDimension takes half-open
// 0-based indices, so 1-based row n becomes [n-1, n).
func (s *SheetsStore) DeleteRow(index int) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    s.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(index - 1),
					EndIndex:   int64(index),
				},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Do(); err != nil {
		return fmt.Errorf("delete row %d: %w", index, err)
	}
	return nil
}

func cellStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = fmt.Sprint(c)
	}
	return out
}
