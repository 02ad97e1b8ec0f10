// README: Google Sheets service initialization using a service-account credentials file.
package infra

import (
	"context"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func NewSheets(ctx context.Context, credentialsFile string) (*sheets.Service, error) {
	return sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
}
