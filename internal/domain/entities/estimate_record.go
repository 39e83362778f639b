package entities

import "time"

// EstimateStatus labels the pricing session that produced an estimate
// (견적 상태). It is informational only and never changes the arithmetic.

type EstimateStatus string

const (
	EstimateStatusPreliminary EstimateStatus = "가견적"
	EstimateStatusCommitted   EstimateStatus = "책임견적"
	EstimateStatusFinal       EstimateStatus = "최종견적"
)

// QuoteItem is one line of a supplier estimate sheet. When it is persisted
// inside an EstimateRecord the price of every non-etc item has already been
// multiplied and floored; etc items (labor, delivery, demolition) are stored
// at the supplier price.
type QuoteItem struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	IsEtc bool   `json:"is_etc"`
}

// EstimateRecord is the persisted snapshot of one pricing decision.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - All amounts are int64 KRW (won, no sub-unit).
//
// Domain notes:
//   - The record is written exactly once, on the operator's explicit save.
//   - Everything except Remark is immutable afterwards, so a saved estimate
//     is always an accurate historical snapshot of the numbers the operator
//     confirmed at save time.
//   - Revision counts remark edits. Remark updates may carry the revision
//     the operator last saw; a stale value is rejected instead of silently
//     overwriting a concurrent edit.
type EstimateRecord struct {
	ID             string         `json:"id"`
	Date           string         `json:"date"`
	Status         EstimateStatus `json:"status"`
	CustomerName   string         `json:"customer_name"`
	CustomerPhone  string         `json:"customer_phone"`
	Address        string         `json:"address"`
	TotalSum       int64          `json:"total_sum"`
	FinalQuote     int64          `json:"final_quote"`
	DiscountAmount int64          `json:"discount_amount"`
	FinalBenefit   int64          `json:"final_benefit"`
	MarginAmount   int64          `json:"margin_amount"`
	MarginRate     float64        `json:"margin_rate"`
	DiscountRate   float64        `json:"discount_rate"`
	ExtraDiscount  int64          `json:"extra_discount"`
	Items          []QuoteItem    `json:"items"`
	Remark         string         `json:"remark"`
	Revision       int64          `json:"revision"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
