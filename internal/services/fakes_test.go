package services

import (
	"context"
	"fmt"
)

// stubCompleter is a deterministic Completer. It records the last prompt so
// tests can assert what was sent to the model.
type stubCompleter struct {
	resp   string
	err    error
	prompt string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.resp, s.err
}

// fakeStore is an in-memory TabularStore with real index-shifting on
// delete, so the descending-order contract of the remove path is actually
// exercised.
type fakeStore struct {
	header  []string
	rows    [][]string // data rows only, header excluded
	appends int
	deletes []int // physical 1-based indices, in call order

	headerErr error
	readErr   error
	appendErr error
	deleteErr error
}

func newFakeStore(rows ...[]string) *fakeStore {
	return &fakeStore{
		header: []string{"Company Name", "Role", "Date", "Platform", "Accept"},
		rows:   rows,
	}
}

func (f *fakeStore) ReadHeader() ([]string, error) {
	if f.headerErr != nil {
		return nil, f.headerErr
	}
	return f.header, nil
}

func (f *fakeStore) ReadAllRecords() ([]map[string]string, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	records := make([]map[string]string, 0, len(f.rows))
	for _, row := range f.rows {
		rec := make(map[string]string, len(f.header))
		for i, name := range f.header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (f *fakeStore) AppendRow(values []string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appends++
	f.rows = append(f.rows, values)
	return nil
}

func (f *fakeStore) DeleteRow(index int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, index)
	i := index - 2 // row 1 is the header
	if i < 0 || i >= len(f.rows) {
		return fmt.Errorf("row %d out of range", index)
	}
	f.rows = append(f.rows[:i], f.rows[i+1:]...)
	return nil
}
