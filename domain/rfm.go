package domain

import "time"

// Named customer segments, from best to worst score band.
const (
	SegmentChampions          = "Champions"
	SegmentPotentialLoyalists = "Potential Loyalists"
	SegmentAtRisk             = "At Risk Customers"
	SegmentCantLose           = "Can't Lose"
	SegmentLost               = "Lost"
)

// Value tiers over the composite score.
const (
	ValueSegmentLow  = "Low-Value"
	ValueSegmentMid  = "Mid-Value"
	ValueSegmentHigh = "High-Value"
)

// RFMRow is one scored transaction row. Recency is the age of the
// row's own purchase date; Frequency and Monetary are the customer's
// aggregates broadcast onto every row of that customer.
//
// Component scores run 1..5 and RFMScore 3..15; zero means the value
// is missing, which happens only when the purchase date failed to
// parse. Such rows keep empty segment labels.
type RFMRow struct {
	CustomerID   string    `json:"customer_id"`
	OrderID      string    `json:"order_id"`
	PurchaseDate time.Time `json:"purchase_date"`
	Amount       float64   `json:"transaction_amount"`

	Recency    int     `json:"recency"`
	HasRecency bool    `json:"has_recency"`
	Frequency  int     `json:"frequency"`
	Monetary   float64 `json:"monetary_value"`

	RecencyScore   int `json:"recency_score"`
	FrequencyScore int `json:"frequency_score"`
	MonetaryScore  int `json:"monetary_score"`
	RFMScore       int `json:"rfm_score"`

	ValueSegment    string `json:"value_segment"`
	CustomerSegment string `json:"customer_segment"`
}

type SegmentCount struct {
	Segment string `json:"segment"`
	Count   int    `json:"count"`
}

type SegmentScoreMeans struct {
	Segment   string  `json:"segment"`
	Recency   float64 `json:"recency_score_mean"`
	Frequency float64 `json:"frequency_score_mean"`
	Monetary  float64 `json:"monetary_score_mean"`
}

// RFMReport is the output of one full segmentation run. The count and
// score views are snapshotted before the re-engagement pass;
// ReengagedSegmentCounts and Rows reflect the table afterwards.
type RFMReport struct {
	EvaluatedAt time.Time `json:"evaluated_at"`
	Rows        []RFMRow  `json:"rows"`

	ValueSegmentCounts     []SegmentCount      `json:"value_segment_counts"`
	CustomerSegmentCounts  []SegmentCount      `json:"customer_segment_counts"`
	SegmentScores          []SegmentScoreMeans `json:"segment_scores"`
	ReengagedSegmentCounts []SegmentCount      `json:"reengaged_segment_counts"`
	ReengagedRows          int                 `json:"reengaged_rows"`
}
