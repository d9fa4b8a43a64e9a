package rfm

import (
	"rfmInsights/domain"
	"testing"
	"time"
)

func TestBuildRowsBroadcastsAggregates(t *testing.T) {
	evalDate := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		{CustomerID: "C1", OrderID: "O1", PurchaseDate: evalDate.AddDate(0, 0, -10), PurchaseDateValid: true, Amount: 100},
		{CustomerID: "C1", OrderID: "O2", PurchaseDate: evalDate.AddDate(0, 0, -40), PurchaseDateValid: true, Amount: 50},
		{CustomerID: "C2", OrderID: "O3", PurchaseDate: evalDate.AddDate(0, 0, -5), PurchaseDateValid: true, Amount: 25},
	}

	rows := buildRows(transactions, evalDate)

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	// recency stays per row even within one customer
	if rows[0].Recency != 10 || rows[1].Recency != 40 {
		t.Fatalf("recencies = %d, %d, want 10, 40", rows[0].Recency, rows[1].Recency)
	}

	// frequency and monetary broadcast to every row of the customer
	for _, i := range []int{0, 1} {
		if rows[i].Frequency != 2 || rows[i].Monetary != 150 {
			t.Fatalf("row %d: frequency=%d monetary=%v, want 2 and 150", i, rows[i].Frequency, rows[i].Monetary)
		}
	}
	if rows[2].Frequency != 1 || rows[2].Monetary != 25 {
		t.Fatalf("row 2: frequency=%d monetary=%v, want 1 and 25", rows[2].Frequency, rows[2].Monetary)
	}
}

func TestBuildRowsKeepsInputOrder(t *testing.T) {
	evalDate := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		{CustomerID: "Z", OrderID: "O1", PurchaseDate: evalDate, PurchaseDateValid: true, Amount: 1},
		{CustomerID: "A", OrderID: "O2", PurchaseDate: evalDate, PurchaseDateValid: true, Amount: 2},
		{CustomerID: "Z", OrderID: "O3", PurchaseDate: evalDate, PurchaseDateValid: true, Amount: 3},
	}

	rows := buildRows(transactions, evalDate)

	for i, wantOrder := range []string{"O1", "O2", "O3"} {
		if rows[i].OrderID != wantOrder {
			t.Fatalf("row %d: OrderID = %q, want %q", i, rows[i].OrderID, wantOrder)
		}
	}
}

func TestBuildRowsMissingDateStillCounts(t *testing.T) {
	evalDate := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		{CustomerID: "C1", OrderID: "O1", PurchaseDate: evalDate.AddDate(0, 0, -3), PurchaseDateValid: true, Amount: 10},
		{CustomerID: "C1", OrderID: "O2", Amount: 30},
	}

	rows := buildRows(transactions, evalDate)

	if rows[1].HasRecency {
		t.Fatal("row without a date must not get a recency")
	}
	if !rows[0].HasRecency || rows[0].Recency != 3 {
		t.Fatalf("row 0: recency = %d (has=%v), want 3", rows[0].Recency, rows[0].HasRecency)
	}
	for i := range rows {
		if rows[i].Frequency != 2 || rows[i].Monetary != 40 {
			t.Fatalf("row %d: aggregates must include dateless rows, got frequency=%d monetary=%v",
				i, rows[i].Frequency, rows[i].Monetary)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day ignores time of day",
			from: time.Date(2024, 6, 30, 23, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 6, 30, 1, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "one month",
			from: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			want: 30,
		},
		{
			name: "leap february",
			from: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want: 2,
		},
		{
			name: "future purchase goes negative",
			from: time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			want: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("daysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}
