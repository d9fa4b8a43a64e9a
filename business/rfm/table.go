package rfm

import (
	"rfmInsights/domain"
	"time"
)

// buildRows derives the three metrics from the raw transaction table.
// Recency is row-level: each row keeps the age of its own purchase
// date, so two rows of one customer can score differently on recency.
// Frequency and monetary value aggregate per customer and broadcast
// back onto every row of that customer, rows with missing dates
// included.
func buildRows(transactions []domain.Transaction, evalDate time.Time) []domain.RFMRow {
	type customerAgg struct {
		frequency int
		monetary  float64
	}
	aggs := make(map[string]*customerAgg, len(transactions))
	for _, tx := range transactions {
		agg, ok := aggs[tx.CustomerID]
		if !ok {
			agg = &customerAgg{}
			aggs[tx.CustomerID] = agg
		}
		agg.frequency++
		agg.monetary += tx.Amount
	}

	rows := make([]domain.RFMRow, 0, len(transactions))
	for _, tx := range transactions {
		row := domain.RFMRow{
			CustomerID:   tx.CustomerID,
			OrderID:      tx.OrderID,
			PurchaseDate: tx.PurchaseDate,
			Amount:       tx.Amount,
		}
		if tx.PurchaseDateValid {
			row.Recency = daysBetween(tx.PurchaseDate, evalDate)
			row.HasRecency = true
		}

		agg := aggs[tx.CustomerID]
		row.Frequency = agg.frequency
		row.Monetary = agg.monetary

		rows = append(rows, row)
	}
	return rows
}

// daysBetween counts whole calendar days from one date to the other,
// ignoring the time of day on both ends. Future dates yield negative
// values and flow through scoring like any other recency.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
