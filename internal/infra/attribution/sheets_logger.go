// Package attribution appends accepted submissions to the marketing spreadsheet.
package attribution

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"funnel/config"
	"funnel/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const defaultSheetName = "inquiries"

type sheetsLogger struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	sheetName     string
	loc           *time.Location
	logger        *slog.Logger
}

// NewSheetsLogger creates an AttributionLogger backed by a Google spreadsheet.
func NewSheetsLogger(ctx context.Context, cfg *config.SheetsConfig, loc *time.Location, logger *slog.Logger, opts ...option.ClientOption) (service.AttributionLogger, error) {
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("spreadsheet ID is required")
	}

	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheets service")
	}

	sheetName := cfg.SheetName
	if sheetName == "" {
		sheetName = defaultSheetName
	}
	if loc == nil {
		loc = time.UTC
	}

	return &sheetsLogger{
		values:        srv.Spreadsheets.Values,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     sheetName,
		loc:           loc,
		logger:        logger,
	}, nil
}

// LogSubmission appends one row per submission. The raw payload is kept as JSON in the
// last column.
func (l *sheetsLogger) LogSubmission(ctx context.Context, record *service.AttributionRecord) error {
	row, err := toRow(record, l.loc)
	if err != nil {
		return err
	}

	_, err = l.values.Append(l.spreadsheetID, l.sheetName+"!A1", &sheets.ValueRange{
		Values: [][]any{row},
	}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrap(err, "append attribution row")
	}

	l.logger.Debug("[Sheets] Attribution row appended",
		slog.String("inquiry_id", record.InquiryID),
	)

	return nil
}

func toRow(record *service.AttributionRecord, loc *time.Location) ([]any, error) {
	payload, err := json.Marshal(record.Payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal attribution payload")
	}

	return []any{
		record.SubmittedAt.In(loc).Format(time.DateTime),
		record.InquiryID,
		record.InquiryType,
		record.MarketerCode,
		record.ReferrerURL,
		string(payload),
	}, nil
}

// noopLogger is used when the spreadsheet is disabled.
type noopLogger struct {
	logger *slog.Logger
}

func (l *noopLogger) LogSubmission(ctx context.Context, record *service.AttributionRecord) error {
	l.logger.DebugContext(ctx, "[Sheets] Attribution logging disabled, skipping",
		slog.String("inquiry_id", record.InquiryID),
	)

	return nil
}

// Params holds dependencies for the AttributionLogger, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the AttributionLogger selected by configuration.
func New(params Params) (service.AttributionLogger, error) {
	cfg := params.Config.Sheets
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Attribution sheet not configured, using no-op logger")

		return &noopLogger{logger: params.Logger}, nil
	}

	return NewSheetsLogger(params.Ctx, cfg, params.Config.Reservation.Location(), params.Logger)
}
