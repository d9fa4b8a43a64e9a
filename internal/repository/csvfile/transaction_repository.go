package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"rfmInsights/domain"
	"rfmInsights/pkg/logger"
	"strconv"
	"strings"
	"time"
)

// Required columns in the source table. Extra columns are ignored.
const (
	columnCustomerID   = "CustomerID"
	columnOrderID      = "OrderID"
	columnPurchaseDate = "PurchaseDate"
	columnAmount       = "TransactionAmount"
)

// dateLayouts are tried in order when coercing purchase dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	time.RFC3339,
}

type TransactionRepository struct {
	Path string
}

func NewTransactionRepository(path string) *TransactionRepository {
	return &TransactionRepository{
		Path: path,
	}
}

// FindAll reads the whole file on every call. Unparseable dates become
// missing values and unparseable amounts become zero; an unreadable
// file or a missing required column is an error.
func (r *TransactionRepository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	f, err := os.Open(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transactions file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("transactions file is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var transactions []domain.Transaction
	badDates := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		tx := domain.Transaction{
			CustomerID: field(record, cols.customerID),
			OrderID:    field(record, cols.orderID),
		}

		if date, ok := parseDate(field(record, cols.purchaseDate)); ok {
			tx.PurchaseDate = date
			tx.PurchaseDateValid = true
		} else {
			badDates++
		}

		if amount, err := strconv.ParseFloat(field(record, cols.amount), 64); err == nil {
			tx.Amount = amount
		}

		transactions = append(transactions, tx)
	}

	if badDates > 0 {
		logger.Debug("coerced unparseable purchase dates", "rows", badDates, "path", r.Path)
	}

	return transactions, nil
}

type columnIndex struct {
	customerID   int
	orderID      int
	purchaseDate int
	amount       int
}

func mapColumns(header []string) (columnIndex, error) {
	idx := columnIndex{
		customerID:   findColumn(header, columnCustomerID),
		orderID:      findColumn(header, columnOrderID),
		purchaseDate: findColumn(header, columnPurchaseDate),
		amount:       findColumn(header, columnAmount),
	}

	for _, col := range []struct {
		name string
		pos  int
	}{
		{columnCustomerID, idx.customerID},
		{columnOrderID, idx.orderID},
		{columnPurchaseDate, idx.purchaseDate},
		{columnAmount, idx.amount},
	} {
		if col.pos < 0 {
			return columnIndex{}, fmt.Errorf("missing required column: %s", col.name)
		}
	}

	return idx, nil
}

// findColumn matches header names ignoring case, surrounding space and
// a UTF-8 BOM on the first cell.
func findColumn(header []string, name string) int {
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
