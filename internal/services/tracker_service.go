package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/justsurfingit/job-application-assistant/internal/models"
	"github.com/justsurfingit/job-application-assistant/internal/sheets"
)

const (
	colCompany  = "Company Name"
	colRole     = "Role"
	colDate     = "Date"
	colPlatform = "Platform"
	colAccept   = "Accept"
)

var expectedHeaders = []string{colCompany, colRole, colDate, colPlatform, colAccept}

const sheetsNotConfiguredMsg = "Google Sheets not configured. Please check your secrets and sheet permissions."

// TrackerService owns the add/remove paths against the spreadsheet. It never
// caches sheet contents between calls; the sheet is the system of record.
// Both paths return (ok, message) values — duplicates and no-match are
// ordinary outcomes, and store failures surface as messages, never panics.
type TrackerService struct {
	store sheets.TabularStore
}

func NewTrackerService(store sheets.TabularStore) *TrackerService {
	return &TrackerService{store: store}
}

// Add appends one application unless an identical (company, role, date)
// row already exists.
func (t *TrackerService) Add(app models.JobApplication) (bool, string) {
	if t.store == nil {
		return false, sheetsNotConfiguredMsg
	}

	header, err := t.store.ReadHeader()
	if err != nil {
		return false, saveError(err)
	}
	// Containment check, not positional: extra columns are tolerated as
	// long as every expected one is present somewhere.
	if !containsAll(header, expectedHeaders) {
		return false, "Invalid sheet structure. Ensure columns are: Company Name, Role, Date, Platform, Accept"
	}

	records, err := t.store.ReadAllRecords()
	if err != nil {
		return false, saveError(err)
	}
	for _, rec := range records {
		if strings.EqualFold(rec[colCompany], app.CompanyName) &&
			strings.EqualFold(rec[colRole], app.Role) &&
			rec[colDate] == app.Date {
			return false, "This job application already exists"
		}
	}

	if err := t.store.AppendRow(app.Row()); err != nil {
		return false, saveError(err)
	}
	return true, "Successfully added to your job tracker!"
}

// Remove deletes every row whose company matches case-insensitively.
// Physical row = data index + 2 (the header is row 1). Deletion runs in
// descending row order; ascending would shift the remaining indices and
// delete the wrong rows.
func (t *TrackerService) Remove(companyName string) (bool, string) {
	if t.store == nil {
		return false, sheetsNotConfiguredMsg
	}

	records, err := t.store.ReadAllRecords()
	if err != nil {
		return false, removeError(err)
	}

	var rows []int
	for i, rec := range records {
		if strings.EqualFold(rec[colCompany], companyName) {
			rows = append(rows, i+2)
		}
	}
	if len(rows) == 0 {
		return false, fmt.Sprintf("No application found for %s in your job tracker.", titleCase(companyName))
	}

	sort.Sort(sort.Reverse(sort.IntSlice(rows)))
	for _, row := range rows {
		if err := t.store.DeleteRow(row); err != nil {
			return false, removeError(err)
		}
	}
	return true, fmt.Sprintf("Successfully removed %d application(s) for %s from your job tracker!", len(rows), titleCase(companyName))
}

func containsAll(haystack, needles []string) bool {
	set := make(map[string]struct{}, len(haystack))
	for _, h := range haystack {
		set[h] = struct{}{}
	}
	for _, n := range needles {
		if _, ok := set[n]; !ok {
			return false
		}
	}
	return true
}

func saveError(err error) string {
	return fmt.Sprintf("Error saving to sheet: %v. Ensure the service account has edit permissions.", err)
}

func removeError(err error) string {
	return fmt.Sprintf("Error removing from sheet: %v. Ensure the service account has edit permissions.", err)
}
