package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"commerce-insights/internal/config"
	"commerce-insights/internal/dto"
	"commerce-insights/internal/models"
	"commerce-insights/internal/repositories"

	"github.com/shopspring/decimal"
)

const maxReportedRowErrors = 10

var (
	ErrImportEmptyFile     = errors.New("import file is empty")
	ErrImportInvalidHeader = errors.New("import file header is missing required columns")
	ErrImportNoValidRows   = errors.New("import file contains no valid rows")
	ErrImportMalformedCSV  = errors.New("import file is not valid CSV")
)

// invoiceDateLayouts are tried in order. The ledger exports write dates
// day-first, so those layouts come before the ISO forms.
var invoiceDateLayouts = []string{
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"2/1/2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

type importService struct {
	orderRepo repositories.OrderRepositoryInterface
	cfg       *config.ImportConfig
	metrics   MetricsRecorderInterface
}

func NewImportService(
	orderRepo repositories.OrderRepositoryInterface,
	cfg *config.ImportConfig,
	metrics MetricsRecorderInterface,
) ImportServiceInterface {
	return &importService{
		orderRepo: orderRepo,
		cfg:       cfg,
		metrics:   metrics,
	}
}

// columnIndex locates each known column in the header row. Unknown columns
// are ignored so exports with extra fields still load.
type columnIndex struct {
	invoiceNumber int
	invoiceDate   int
	customerID    int
	country       int
	quantity      int
	amount        int
	product       int
}

// ImportCSV reads an order ledger export, drops rows missing a critical
// field the way the upstream cleaning step does, and replaces the dataset
// with the valid lines. The previous dataset is only cleared once the whole
// file has parsed, so a rejected file never destroys data. The returned
// summary reports exactly what was kept and why rows were dropped.
func (s *importService) ImportCSV(ctx context.Context, reader io.Reader) (*dto.ImportSummary, error) {
	start := time.Now()

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, s.failImport("empty_file", ErrImportEmptyFile)
	}
	if err != nil {
		return nil, s.failImport("malformed_csv", fmt.Errorf("%w: %v", ErrImportMalformedCSV, err))
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, s.failImport("invalid_header", err)
	}

	summary := &dto.ImportSummary{}
	orders := make([]models.Order, 0, 1024)

	for {
		if summary.RowsRead%1000 == 0 && ctx.Err() != nil {
			return nil, s.failImport("canceled", ctx.Err())
		}

		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, s.failImport("malformed_csv", fmt.Errorf("%w: %v", ErrImportMalformedCSV, err))
		}

		summary.RowsRead++
		rowNum := summary.RowsRead + 1 // header occupies line 1

		order, reason := buildOrderFromRecord(record, cols)
		if reason != "" {
			summary.RowsSkipped++
			if len(summary.Errors) < maxReportedRowErrors {
				summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: %s", rowNum, reason))
			}
			continue
		}

		orders = append(orders, *order)
	}

	if summary.RowsRead == 0 {
		return nil, s.failImport("empty_file", ErrImportEmptyFile)
	}
	if len(orders) == 0 {
		return nil, s.failImport("no_valid_rows", ErrImportNoValidRows)
	}

	deleted, err := s.orderRepo.DeleteAll()
	if err != nil {
		slog.Error("failed to clear previous dataset", "error", err)
		return nil, s.failImport("database", fmt.Errorf("failed to clear previous dataset: %w", err))
	}
	summary.DeletedLines = deleted

	if err := s.orderRepo.CreateBatch(orders, s.cfg.BatchSize); err != nil {
		slog.Error("failed to persist imported orders",
			"rows", len(orders),
			"error", err)
		return nil, s.failImport("database", fmt.Errorf("failed to persist imported orders: %w", err))
	}

	summary.RowsImported = len(orders)
	summary.ElapsedMs = time.Since(start).Milliseconds()

	s.metrics.IncrementCounter("import.completed", nil)
	s.metrics.RecordGauge("import.rows.imported", float64(summary.RowsImported), nil)
	s.metrics.RecordProcessingTime("import.duration", time.Since(start))

	slog.Info("ledger import completed",
		"rows_read", summary.RowsRead,
		"rows_imported", summary.RowsImported,
		"rows_skipped", summary.RowsSkipped,
		"deleted_lines", summary.DeletedLines,
		"elapsed_ms", summary.ElapsedMs)

	return summary, nil
}

func (s *importService) failImport(reason string, err error) error {
	s.metrics.IncrementCounter("import.failed", map[string]string{"reason": reason})
	return err
}

func resolveColumns(header []string) (*columnIndex, error) {
	cols := &columnIndex{
		invoiceNumber: -1,
		invoiceDate:   -1,
		customerID:    -1,
		country:       -1,
		quantity:      -1,
		amount:        -1,
		product:       -1,
	}

	for i, name := range header {
		switch normalizeHeader(name) {
		case "invoice_number":
			cols.invoiceNumber = i
		case "invoice_date":
			cols.invoiceDate = i
		case "customer_id":
			cols.customerID = i
		case "country":
			cols.country = i
		case "quantity":
			cols.quantity = i
		case "amount":
			cols.amount = i
		case "product":
			cols.product = i
		}
	}

	if cols.invoiceNumber < 0 || cols.invoiceDate < 0 || cols.customerID < 0 || cols.amount < 0 {
		return nil, ErrImportInvalidHeader
	}

	return cols, nil
}

func normalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ToLower(strings.TrimSpace(name))
}

// buildOrderFromRecord converts one CSV record into an order line. A
// non-empty reason means the row is dropped, mirroring the upstream
// dropna on invoice number, date, customer and amount.
func buildOrderFromRecord(record []string, cols *columnIndex) (*models.Order, string) {
	invoiceNumber := fieldAt(record, cols.invoiceNumber)
	if invoiceNumber == "" {
		return nil, "missing invoice number"
	}

	customerID := fieldAt(record, cols.customerID)
	if customerID == "" {
		return nil, "missing customer id"
	}

	rawDate := fieldAt(record, cols.invoiceDate)
	occurredAt, ok := parseInvoiceDate(rawDate)
	if !ok {
		return nil, fmt.Sprintf("unparseable invoice date %q", rawDate)
	}

	rawAmount := fieldAt(record, cols.amount)
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return nil, fmt.Sprintf("unparseable amount %q", rawAmount)
	}

	// Quantity is informational only; a missing or malformed value keeps
	// the row and falls back to a single unit.
	quantity := 1
	if raw := fieldAt(record, cols.quantity); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			quantity = parsed
		}
	}

	return &models.Order{
		OrderRef:   invoiceNumber,
		CustomerID: customerID,
		Country:    fieldAt(record, cols.country),
		Product:    fieldAt(record, cols.product),
		Quantity:   quantity,
		Amount:     amount,
		OccurredAt: occurredAt,
	}, ""
}

func fieldAt(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseInvoiceDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range invoiceDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}
