package request

import (
	"kcc_quote/internal/domain/entities"
)

// ContractRequest is the full contract document the admin screen submits.
// ID is empty on first save; the service assigns one.
type ContractRequest struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone"`
	Address         string `json:"address"`
	FinalQuotePrice int64  `json:"final_quote_price"`
	KCCSupplyPrice  int64  `json:"kcc_supply_price"`
	ContractDate    string `json:"contract_date"`
	TenorMonths     int    `json:"tenor_months"`
	MonthlyPayment  int64  `json:"monthly_payment"`
	Remark          string `json:"remark"`
}

func (r ContractRequest) ToEntity() entities.ContractRecord {
	return entities.ContractRecord{
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		Address:         r.Address,
		FinalQuotePrice: r.FinalQuotePrice,
		KCCSupplyPrice:  r.KCCSupplyPrice,
		ContractDate:    r.ContractDate,
		TenorMonths:     r.TenorMonths,
		MonthlyPayment:  r.MonthlyPayment,
		Remark:          r.Remark,
	}
}

// ReconcileRequest triggers the cross-system copy. Without Confirm the
// response is a preview and nothing is written.
type ReconcileRequest struct {
	Confirm bool `json:"confirm"`
}
