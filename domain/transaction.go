package domain

import "time"

type Transaction struct {
	CustomerID string `json:"customer_id"`
	OrderID    string `json:"order_id"`
	// PurchaseDateValid is false when the raw value could not be parsed;
	// such rows keep flowing through the pipeline without a recency.
	PurchaseDate      time.Time `json:"purchase_date"`
	PurchaseDateValid bool      `json:"purchase_date_valid"`
	Amount            float64   `json:"transaction_amount"`
}
