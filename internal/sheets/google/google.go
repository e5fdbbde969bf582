package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"gastos/internal/core"
	"gastos/internal/export"
	"gastos/internal/log"
)

// Config selects the spreadsheet and the service account used to reach it.
// Exactly one of CredentialsJSON and CredentialsFile is needed.
type Config struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsJSON string
	CredentialsFile string
}

// Enabled reports whether a spreadsheet is configured at all.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.SpreadsheetID) != ""
}

// Client mirrors the comparison report into one sheet of a Google spreadsheet.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
	logger        *log.Logger
}

// NewClient authenticates with the service account in cfg.
func NewClient(ctx context.Context, cfg Config, logger *log.Logger) (*Client, error) {
	if !cfg.Enabled() {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	logger = logger.WithComponent(log.ComponentSheets)

	credentials, err := readCredentials(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentials),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	sheet := strings.TrimSpace(cfg.SheetName)
	if sheet == "" {
		sheet = export.Title
	}

	logger.InfoContext(ctx, "Google Sheets client ready", "sheet", sheet)
	return &Client{
		svc:           svc,
		spreadsheetID: strings.TrimSpace(cfg.SpreadsheetID),
		sheetName:     sheet,
		logger:        logger,
	}, nil
}

func readCredentials(cfg Config) ([]byte, error) {
	switch {
	case strings.TrimSpace(cfg.CredentialsJSON) != "":
		return []byte(cfg.CredentialsJSON), nil
	case strings.TrimSpace(cfg.CredentialsFile) != "":
		data, err := os.ReadFile(strings.TrimSpace(cfg.CredentialsFile))
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		return data, nil
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON or GOOGLE_SERVICE_ACCOUNT_FILE)")
	}
}

// WriteComparison replaces the sheet contents with the header row and rows.
func (c *Client) WriteComparison(ctx context.Context, rows []core.ComparisonRow) error {
	rng := sheetRange(c.sheetName)

	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, rng, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear %s: %w", rng, err)
	}

	vr := &gsheet.ValueRange{Values: comparisonValues(rows)}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("update %s: %w", rng, err)
	}

	c.logger.InfoContext(ctx, "Sheet updated", log.FieldOperation, log.OpExport, log.FieldRows, len(rows))
	return nil
}

// sheetRange addresses the six report columns of sheet.
func sheetRange(sheet string) string {
	return fmt.Sprintf("'%s'!A:F", strings.ReplaceAll(sheet, "'", "''"))
}

// comparisonValues lays out rows the way the spreadsheet export does:
// a header row, then amounts as numbers rounded to two places.
func comparisonValues(rows []core.ComparisonRow) [][]interface{} {
	values := make([][]interface{}, 0, len(rows)+1)

	header := make([]interface{}, len(export.Headers))
	for i, h := range export.Headers {
		header[i] = h
	}
	values = append(values, header)

	for _, r := range rows {
		values = append(values, []interface{}{
			r.Description,
			core.RoundAmount(r.Budgeted),
			core.RoundAmount(r.Actual),
			r.Category,
			r.Date.String(),
			core.RoundAmount(r.Difference),
		})
	}
	return values
}
