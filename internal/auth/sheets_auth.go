package auth

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// driveScope is needed alongside the Sheets scope so the service account can
// open spreadsheets shared with it.
const driveScope = "https://www.googleapis.com/auth/drive"

// SheetsClient turns a service-account credential bundle into an
// authenticated HTTP client for the Sheets API. Unlike an OAuth user flow
// there is nothing interactive here: the JWT config signs requests directly.
func SheetsClient(ctx context.Context, credentials []byte) (*http.Client, error) {
	config, err := google.JWTConfigFromJSON(credentials, sheets.SpreadsheetsScope, driveScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account credentials: %w", err)
	}
	return config.Client(ctx), nil
}
