package entities

import "time"

// ContractRecord is the per-customer contract administration document.
//
// Storage model (DynamoDB):
//   - PK: id (customer-scoped; assigned on first save)
//
// Domain notes:
//   - FinalQuotePrice and KCCSupplyPrice may be overwritten, on operator
//     demand, from a reconciled estimate found in the external quote system
//     (final benefit and KCC quote respectively). The copy is a one-shot
//     side effect: later edits to either record do not re-sync.
type ContractRecord struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	Address         string    `json:"address"`
	FinalQuotePrice int64     `json:"final_quote_price"`
	KCCSupplyPrice  int64     `json:"kcc_supply_price"`
	ContractDate    string    `json:"contract_date"`
	TenorMonths     int       `json:"tenor_months"`
	MonthlyPayment  int64     `json:"monthly_payment"`
	Remark          string    `json:"remark"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
